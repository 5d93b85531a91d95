package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mohamed/svlang/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "svlang",
	Short: "SystemVerilog front-end toolchain",
	Long:  `svlang tokenizes, parses, and elaborates SystemVerilog designs.`,
	// SilenceErrors lets main print the error itself once, choosing the
	// exit code by its kind instead of cobra's blanket exit(1).
	SilenceErrors: true,
}

// usageError marks an error that stems from bad CLI input (an unknown
// flag value, a manifest that can't be found) rather than a diagnostic
// produced by compiling a design; main exits 2 for these and 1 for
// everything else, matching a conventional CLI's usage-vs-failure split.
type usageError struct{ err error }

func (u usageError) Error() string { return u.err.Error() }
func (u usageError) Unwrap() error { return u.err }

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "svlang:", err)
		os.Exit(exitFor(err))
	}
}

func exitFor(err error) int {
	if err == nil {
		return 0
	}
	var u usageError
	if errors.As(err, &u) {
		return 2
	}
	return 1
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command, out *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(out))
}
