package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mitoteru/sprout/internal/debug"
	"github.com/mitoteru/sprout/internal/version"
)

// Alias version variables for compatibility
var (
	Version   = version.Version
	GitCommit = version.GitCommit
	BuildDate = version.BuildDate
)

// Global flags
var (
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sprout",
	Short: "Interactive project scaffolder",
	Long: `sprout is a CLI tool for scaffolding new projects from stack templates.

Use "sprout new [stack] [directory]" to:
  1. Pick a stack and answer a few questions
  2. Materialize the stack's template files into the directory
  3. Install dependencies and optionally set up git and deployment

Stacks bundle template files with dependency lists; run "sprout stacks"
to see what is available.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Set debug mode
		debug.SetDebug(globalDebug)
		debug.SetNoColor(globalNoColor)
		if globalNoColor {
			color.NoColor = true
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)

	// Add subcommands
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(stacksCmd)
	rootCmd.AddCommand(versionCmd)
}

// printError prints an error message to stderr
func printError(err error) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
