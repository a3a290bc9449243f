package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mitoteru/sprout/internal/config"
)

// stacksCmd represents the stacks command
var stacksCmd = &cobra.Command{
	Use:   "stacks",
	Short: "List available stacks",
	Long: `List the stacks that can be scaffolded.

Each stack bundles template files with runtime and development
dependency lists. Pass a stack identifier to "sprout new" to skip the
interactive selection.

Examples:
  sprout stacks`,
	Args: cobra.NoArgs,
	RunE: runStacks,
}

func runStacks(cmd *cobra.Command, args []string) error {
	reg := config.DefaultRegistry()

	printInfo("Available stacks:")
	for _, stack := range reg.Stacks() {
		printInfo(fmt.Sprintf("  %-10s %s", stack.ID, stack.Label))
	}

	return nil
}
