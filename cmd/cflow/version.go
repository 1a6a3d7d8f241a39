package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cflow/internal/version"
)

var (
	versionShowHash bool
	versionShowDate bool

	commitColor  = color.New(color.FgRed, color.Bold)
	dateColor    = color.New(color.FgCyan, color.Bold)
	unknownColor = color.New(color.FgMagenta)
)

func init() {
	versionCmd.Flags().BoolVar(&versionShowHash, "hash", false, "include git commit hash")
	versionCmd.Flags().BoolVar(&versionShowDate, "date", false, "include build timestamp")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show cflow build fingerprint",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
		if versionShowHash {
			fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", valueOrUnknown(version.GitCommit, commitColor))
		}
		if versionShowDate {
			fmt.Fprintf(cmd.OutOrStdout(), "built:  %s\n", valueOrUnknown(version.BuildDate, dateColor))
		}
		return nil
	},
}

func valueOrUnknown(s string, col *color.Color) string {
	if s == "" {
		return unknownColor.Sprint("unknown")
	}
	return col.Sprint(s)
}
