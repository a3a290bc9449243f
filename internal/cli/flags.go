package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagTemplates   = "templates"
	FlagYes         = "yes"
	FlagSkipInstall = "skip-install"
	FlagSkipGit     = "skip-git"
	FlagDryRun      = "dry-run"
	FlagNoColor     = "no-color"
	FlagQuiet       = "quiet"
	FlagDebug       = "debug"

	// Flag descriptions
	DescTemplates   = "Template root directory"
	DescYes         = "Accept defaults without prompting"
	DescSkipInstall = "Skip dependency installation"
	DescSkipGit     = "Skip git repository setup"
	DescDryRun      = "Show actions without execution"
	DescNoColor     = "Disable colored output"
	DescQuiet       = "Suppress non-error output"
	DescDebug       = "Enable debug logging"
)
