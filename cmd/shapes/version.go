package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/shapes"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of shapes",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "shapes version %s\n", strings.TrimSpace(shapes.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
