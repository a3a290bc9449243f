package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Output formatting helpers

// Glyphs are rendered at call time so the --no-color flag, applied in the
// root command's PersistentPreRun, is honored.
func successGlyph() string { return color.GreenString("✓") }
func warnGlyph() string    { return color.YellowString("⚠") }
func errorGlyph() string   { return color.RedString("✗") }
func arrowGlyph() string   { return color.BlueString("→") }

// printInfo prints an informational message
func printInfo(msg string) {
	if globalQuiet {
		return
	}
	fmt.Println(msg)
}

// printSuccess prints a success message
func printSuccess(msg string) {
	if globalQuiet {
		return
	}
	fmt.Printf("%s %s\n", successGlyph(), msg)
}

// printWarning prints a warning message
func printWarning(msg string) {
	if globalQuiet {
		return
	}
	fmt.Printf("%s %s\n", warnGlyph(), msg)
}

// printErrorMsg prints an error message (different from printError which takes error type)
func printErrorMsg(msg string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", errorGlyph(), msg)
}

// printProgress prints a progress indicator
func printProgress(msg string) {
	if globalQuiet {
		return
	}
	fmt.Printf("%s %s\n", arrowGlyph(), msg)
}
