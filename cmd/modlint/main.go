package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"modlint/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "modlint",
	Short: "Python percent-format string linter",
	Long:  `Modlint finds broken % string formatting in Python source files`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum number of diagnostics to show (0=config)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the tri-state --color flag against config and the
// actual output destination.
func useColor(flagValue, configValue string, out *os.File) bool {
	mode := flagValue
	if mode == "" || mode == "auto" {
		mode = configValue
	}
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(out)
	}
}
