package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	quiet   bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "identctl",
	Short: "Allocate and inspect process-lifetime-unique identifiers",
	Long: `identctl exercises the identkit allocator from the command line.
It can allocate fresh identifiers, classify raw values into the four
identifier regions, validate strings against the strict parse grammar, and
print private-use sentinel identifiers.

Note that identifier uniqueness is per process: every identctl invocation
starts from an empty registry.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
