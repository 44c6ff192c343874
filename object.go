// object.go — the runtime value model.
//
// Value is a tagged carrier; the tag says which Go type sits in Data. The
// set is closed over integers and booleans today. Function and null/unit
// values are anticipated extension points but deliberately absent until
// call and conditional evaluation are defined.
package lasagne

import "strconv"

// ValueTag enumerates the runtime kinds a Value may hold.
type ValueTag int

const (
	VTInteger ValueTag = iota // int32
	VTBoolean                 // bool
)

func (t ValueTag) String() string {
	switch t {
	case VTInteger:
		return "integer"
	case VTBoolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// Value is the universal runtime carrier used by the evaluator. Values are
// pure data; they are copied freely and own nothing.
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// Int builds an integer Value.
func Int(n int32) Value { return Value{Tag: VTInteger, Data: n} }

// Bool builds a boolean Value.
func Bool(b bool) Value { return Value{Tag: VTBoolean, Data: b} }

// AsInt returns the int32 payload; valid only when Tag is VTInteger.
func (v Value) AsInt() int32 { return v.Data.(int32) }

// AsBool returns the bool payload; valid only when Tag is VTBoolean.
func (v Value) AsBool() bool { return v.Data.(bool) }

// String renders the value the way a literal of it is written.
func (v Value) String() string {
	switch v.Tag {
	case VTInteger:
		return strconv.FormatInt(int64(v.AsInt()), 10)
	case VTBoolean:
		if v.AsBool() {
			return "true"
		}
		return "false"
	default:
		return "<unknown>"
	}
}
