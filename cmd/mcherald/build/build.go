package build

// Populated at build time via ldflags.
var (
	Version = "development"
	Commit  = "-"
	Time    = "-"
)
