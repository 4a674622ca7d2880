// Package cmd provides the command-line interface for HawkLib.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use: "hawk",
	Short: "Hawk CLI tool can perform common tasks related to developing " +
		"robot programs with HawkLib.",
	Long: `Hawk CLI tool can perform common tasks related to developing ` +
		`robot programs with HawkLib. Currently, it supports scaffolding ` +
		`subsystems and inspecting recorded loop-time sessions.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
