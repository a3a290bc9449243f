package version

// Version information (overridden via ldflags during release builds).
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// GitCommit is the commit the binary was built from.
	GitCommit = "unknown"
	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)
