package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	lasagne "github.com/oysandvik94/lasagnelang"
)

const (
	appName     = "lasagne"
	historyFile = ".lasagne_history"
	promptMain  = "==> "
	promptCont  = "... "
)

var banner = fmt.Sprintf("lasagne %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", lasagne.Version)

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	switch cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "test":
		os.Exit(cmdTest(os.Args[2:]))
	case "version":
		fmt.Println(lasagne.Version)
		return
	case "-h", "--help", "help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`lasagne %s (built %s)

Usage:
  %s run <file.lsa>        Run a script and print its value.
  %s repl                  Start the REPL.
  %s test [path ...]       Run YAML conformance suites (default ./testdata).
  %s version               Print the compiled version.

`, lasagne.Version, lasagne.BuildDate, appName, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func cmdRun(args []string) int {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run <file.lsa>\n", appName)
		return 2
	}

	file := args[0]
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return 1
	}

	env := lasagne.NewEnv(nil)
	v, everr := lasagne.Eval(string(src), env)
	if everr != nil {
		fmt.Fprintln(os.Stderr, red(lasagne.WrapErrorWithName(everr, file, string(src)).Error()))
		return 1
	}
	fmt.Println(v)
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(_ []string) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	env := lasagne.NewEnv(nil)

	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			break
		}

		if strings.HasPrefix(strings.TrimSpace(code), ":") {
			switch strings.TrimSpace(strings.ToLower(code)) {
			case ":quit":
				return 0
			default:
				fmt.Printf("unknown command. Type :quit to exit.\n")
			}
			continue
		}

		if strings.TrimSpace(code) == "" {
			continue
		}

		v, err := lasagne.Eval(code, env)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(lasagne.WrapErrorWithName(err, "<repl>", code).Error()))
			continue
		}
		fmt.Println(blue(v.String()))
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}

	return 0
}

// readByParseProbe keeps prompting for continuation lines while the input
// so far only fails because it ran out mid-construct (an unclosed '(' or a
// block still waiting for its '~').
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		program, lerr := lasagne.ParseSource(src)
		if lerr != nil {
			return src, true
		}
		if program.Valid() {
			return src, true
		}
		if lasagne.IsIncomplete(program.Errors) {
			continue
		}
		return src, true
	}
}

// -----------------------------------------------------------------------------
// test
// -----------------------------------------------------------------------------

func cmdTest(args []string) int {
	paths := args
	if len(paths) == 0 {
		paths = []string{"testdata"}
	}

	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
			return 1
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(p, "*.yaml"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
			return 1
		}
		files = append(files, matches...)
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "%s: no suite files found\n", appName)
		return 1
	}

	failed := 0
	for _, f := range files {
		suite, err := lasagne.LoadSuite(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
			return 1
		}
		for _, res := range suite.Run() {
			if res.Pass {
				fmt.Printf("ok   %s: %s\n", f, res.Name)
				continue
			}
			failed++
			fmt.Printf("%s %s: %s: %s\n", red("FAIL"), f, res.Name, res.Detail)
		}
	}
	if failed > 0 {
		fmt.Printf("\n%d case(s) failed\n", failed)
		return 1
	}
	return 0
}
