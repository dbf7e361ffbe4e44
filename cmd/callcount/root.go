package main

import (
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "callcount",
	Short: "callcount - invocation matching for JVM counting probes",
	Long: `callcount decides which JVM method invocations count toward a performance
measurement. Counting rules select classes and methods by exact name, full
signature, or regex; the instrumentation agent inserts a probe wherever a
rule matches.

This tool inspects rule files and evaluates them against class/method names
without attaching to a JVM.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")

	// Add subcommands
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
