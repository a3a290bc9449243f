package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mitoteru/sprout/internal/app"
	"github.com/mitoteru/sprout/internal/config"
	"github.com/mitoteru/sprout/internal/probe"
	"github.com/mitoteru/sprout/internal/shell"
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new [stack] [directory]",
	Short: "Scaffold a new project",
	Long: `Scaffold a new project from a stack template.

The command prompts for a project title, stack, package manager and
deployment tool, materializes the stack's template files into the
destination directory, installs dependencies, and optionally initializes
a git repository and a deployment hook.

If the stack argument is omitted, it is selected interactively.
If the directory argument is omitted, the current directory is used.

Examples:
  sprout new
  sprout new react
  sprout new react ./my-app
  sprout new preact ./my-app --skip-install
  sprout new svelte ./my-app --yes
  sprout new vanilla ./my-app --dry-run`,
	Args: cobra.MaximumNArgs(2),
	RunE: runNew,
}

// New command flags
var (
	newTemplates   string
	newYes         bool
	newSkipInstall bool
	newSkipGit     bool
	newDryRun      bool
)

func init() {
	// Flags for new
	newCmd.Flags().StringVarP(&newTemplates, FlagTemplates, "t", "", DescTemplates)
	newCmd.Flags().BoolVarP(&newYes, FlagYes, "y", false, DescYes)
	newCmd.Flags().BoolVar(&newSkipInstall, FlagSkipInstall, false, DescSkipInstall)
	newCmd.Flags().BoolVar(&newSkipGit, FlagSkipGit, false, DescSkipGit)
	newCmd.Flags().BoolVarP(&newDryRun, FlagDryRun, "d", false, DescDryRun)
}

func runNew(cmd *cobra.Command, args []string) error {
	var stackArg string
	dest := "."
	if len(args) >= 1 {
		stackArg = args[0]
	}
	if len(args) >= 2 {
		dest = args[1]
	}

	reg := config.DefaultRegistry()
	if stackArg != "" && !reg.Known(stackArg) {
		return fmt.Errorf("unknown stack %q (available stacks: %s)",
			stackArg, strings.Join(reg.IDs(), ", "))
	}

	root, err := config.TemplateRoot(newTemplates)
	if err != nil {
		return err
	}

	destAbs, err := filepath.Abs(dest)
	if err != nil {
		return fmt.Errorf("failed to resolve destination %q: %w", dest, err)
	}

	state, err := app.InspectDest(destAbs)
	if err != nil {
		return fmt.Errorf("failed to inspect destination %s: %w", destAbs, err)
	}

	session := &Session{
		Registry:     reg,
		Caps:         probe.Detect(),
		DestEmpty:    state.Empty,
		DefaultTitle: filepath.Base(destAbs),
		SkipGit:      newSkipGit,
		Stack:        stackArg,
		// npm is assumed unless yarn is present and chosen
		PackageManager: shell.ManagerNpm,
	}

	if newYes {
		if stackArg == "" {
			return fmt.Errorf("a stack argument is required with --%s (available stacks: %s)",
				FlagYes, strings.Join(reg.IDs(), ", "))
		}
		session.ApplyDefaults()
	} else {
		if err := session.Run(Questions()); err != nil {
			return err
		}
	}

	if !session.Proceed {
		printInfo("Aborted. No files were written.")
		return nil
	}

	if newDryRun {
		printInfo("[DRY RUN] Would scaffold project")
	} else {
		printProgress(fmt.Sprintf("Scaffolding %s project in %s", session.Stack, destAbs))
	}

	result, err := app.Create(cmd.Context(), app.CreateOptions{
		TemplateRoot:   root,
		Stack:          session.Stack,
		Dest:           destAbs,
		Title:          session.Title,
		PackageManager: session.PackageManager,
		DeployTool:     session.DeployTool,
		InitGit:        session.InitGit,
		SkipInstall:    newSkipInstall,
		DryRun:         newDryRun,
		Registry:       reg,
		Runner:         shell.NewRunner(),
	})
	if err != nil {
		printErrorMsg(fmt.Sprintf("Scaffolding failed: %v", err))
		return err
	}

	if newDryRun {
		printInfo("")
		printInfo("[DRY RUN] Files to create:")
		for _, file := range result.Files {
			printInfo(fmt.Sprintf("  - %s", file))
		}
		printInfo("")
		printInfo("No files written (dry run).")
		return nil
	}

	printSuccess(fmt.Sprintf("Created %d files", result.FilesWritten))

	for _, warning := range result.Warnings {
		printWarning(warning)
	}

	printInfo("")
	printInfo("Next steps:")
	printInfo(fmt.Sprintf("  cd %s", dest))
	printInfo(fmt.Sprintf("  %s start", session.PackageManager))

	return nil
}
