package main

import (
	"fmt"
	"os"

	"github.com/aretw0/shapes/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Shapes is an interactive calculator for plane figures",
	Long: `Shapes keeps a collection of circles, triangles, rectangles, squares and
regular pentagons, and reports their areas, perimeters and formulas.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the YAML config file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
}

// configFlag returns the config path and whether the user set it explicitly.
func configFlag(cmd *cobra.Command) (string, bool) {
	path, _ := cmd.Flags().GetString("config")
	return path, cmd.Flags().Changed("config")
}
