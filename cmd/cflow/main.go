// Package main implements the cflow CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"cflow/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "cflow",
	Short: "AST-to-IR lowering core for a C-family imperative language",
	Long:  "cflow lowers a type-checked AST with resolved symbols into a CFG-shaped IR.",
}

func main() {
	rootCmd.Version = version.String()
	rootCmd.AddCommand(lowerCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize diagnostic output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
