package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "anime-api: %v\n", version)
			if commit != "" {
				fmt.Fprintf(out, "Commit: %v\n", commit)
			}
			if date != "" {
				fmt.Fprintf(out, "Build Date: %v\n", date)
			}
		},
	}
}
