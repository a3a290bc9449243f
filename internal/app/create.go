package app

import (
	"context"
	"fmt"
	"os"

	"github.com/mitoteru/sprout/internal/config"
	"github.com/mitoteru/sprout/internal/debug"
	"github.com/mitoteru/sprout/internal/materialize"
	"github.com/mitoteru/sprout/internal/probe"
	"github.com/mitoteru/sprout/internal/shell"
)

// CreateOptions configures project creation.
type CreateOptions struct {
	// TemplateRoot is the resolved template root directory.
	TemplateRoot string

	// Stack is the selected stack identifier.
	Stack string

	// Dest is the destination project directory.
	Dest string

	// Title is the human-readable project title.
	Title string

	// PackageManager is "npm" or "yarn".
	PackageManager string

	// DeployTool is "now", "surge", or empty for no deployment hook.
	DeployTool string

	// InitGit initializes a git repository after materialization.
	InitGit bool

	// SkipInstall skips the dependency installation step.
	SkipInstall bool

	// DryRun reports what would be written without side effects.
	DryRun bool

	// Registry is the stack registry.
	Registry *config.Registry

	// Runner executes external processes (installer, git, deploy CLI).
	Runner shell.Runner
}

// CreateResult contains creation statistics.
type CreateResult struct {
	// Files are the destination paths written, in processing order.
	Files []string

	// FilesWritten is the number of files written.
	FilesWritten int

	// BinaryCopies is the number of files copied verbatim.
	BinaryCopies int

	// Props is the substitution context the files were rendered with.
	Props map[string]string

	// Warnings collects best-effort step failures (installer, git, deploy).
	Warnings []string
}

// Create materializes a project for the selected stack and runs the follow-up
// external steps.
//
// Configuration resolution and materialization failures are fatal. The
// external steps run only after the file tree exists and are best-effort:
// their failures are collected as warnings, not returned as errors.
func Create(ctx context.Context, opts CreateOptions) (*CreateResult, error) {
	if err := validateCreateOptions(opts); err != nil {
		return nil, err
	}

	if _, err := os.Stat(opts.TemplateRoot); err != nil {
		return nil, NewResolveError(fmt.Sprintf("template root not found: %s", opts.TemplateRoot), err)
	}

	resolved, err := config.Resolve(opts.TemplateRoot, opts.Stack, opts.Registry)
	if err != nil {
		return nil, err
	}
	debug.Debug("[app] Resolved stack %s: files=%d, deps=%d, devDeps=%d",
		opts.Stack, len(resolved.Files), len(resolved.Dependencies), len(resolved.DevDependencies))

	stackLabel, _ := opts.Registry.Label(opts.Stack)
	props := BuildProps(opts, stackLabel, probe.DeployHost(Slugify(opts.Title)))

	m := materialize.New()
	mOpts := materialize.Options{
		TemplateRoot: opts.TemplateRoot,
		DestRoot:     opts.Dest,
		Files:        resolved.Files,
		Props:        props,
	}

	var mResult *materialize.Result
	if opts.DryRun {
		mResult, err = m.DryRun(ctx, mOpts)
	} else {
		mResult, err = m.Apply(ctx, mOpts)
	}
	if err != nil {
		return nil, NewMaterializeError("failed to materialize project files", err)
	}

	result := &CreateResult{
		Files:        mResult.Files,
		FilesWritten: mResult.FilesWritten,
		BinaryCopies: mResult.BinaryCopies,
		Props:        props,
	}

	if opts.DryRun {
		return result, nil
	}

	if !opts.SkipInstall {
		installDependencies(ctx, opts, resolved, result)
	}

	if opts.InitGit {
		initGit(ctx, opts, result)
	}

	if opts.DeployTool != "" {
		registerDeploy(ctx, opts, props, result)
	}

	return result, nil
}

// installDependencies runs the package manager for the resolved dependency
// lists. Best-effort once the tree is materialized.
func installDependencies(ctx context.Context, opts CreateOptions, resolved *config.Resolved, result *CreateResult) {
	steps := [][]string{
		shell.InstallArgs(opts.PackageManager, nil, false),
	}
	if len(resolved.Dependencies) > 0 {
		steps = append(steps, shell.InstallArgs(opts.PackageManager, resolved.Dependencies, false))
	}
	if len(resolved.DevDependencies) > 0 {
		steps = append(steps, shell.InstallArgs(opts.PackageManager, resolved.DevDependencies, true))
	}

	for _, argv := range steps {
		if err := opts.Runner.Run(ctx, opts.Dest, argv); err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("dependency installation failed (%s): %v", shell.Quote(argv), err))
			return
		}
	}
}

// initGit initializes a repository in the destination and records the initial
// commit. Best-effort.
func initGit(ctx context.Context, opts CreateOptions, result *CreateResult) {
	for _, argv := range shell.GitInitArgs(opts.Title) {
		if err := opts.Runner.Run(ctx, opts.Dest, argv); err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("git setup failed (%s): %v", shell.Quote(argv), err))
			return
		}
	}
}

// registerDeploy invokes the chosen deployment CLI. Best-effort.
func registerDeploy(ctx context.Context, opts CreateOptions, props map[string]string, result *CreateResult) {
	argv := shell.DeployArgs(opts.DeployTool, ".", props["deployHost"])
	if err := opts.Runner.Run(ctx, opts.Dest, argv); err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("deployment setup failed (%s): %v", shell.Quote(argv), err))
	}
}

// validateCreateOptions validates CreateOptions.
func validateCreateOptions(opts CreateOptions) error {
	if opts.Stack == "" {
		return NewValidationError("stack cannot be empty", nil)
	}
	if opts.Dest == "" {
		return NewValidationError("destination directory cannot be empty", nil)
	}
	if opts.Title == "" {
		return NewValidationError("project title cannot be empty", nil)
	}
	if opts.Registry == nil {
		return NewValidationError("stack registry cannot be nil", nil)
	}
	if opts.Runner == nil {
		return NewValidationError("runner cannot be nil", nil)
	}
	return nil
}
