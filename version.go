package lasagne

// Version and BuildDate are overridden at release time via
// -ldflags "-X github.com/oysandvik94/lasagnelang.Version=...".
var (
	Version   = "0.1.0-dev"
	BuildDate = "unknown"
)
