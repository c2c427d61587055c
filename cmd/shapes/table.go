package main

import (
	"github.com/aretw0/shapes/internal/cli"
	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the shape table without prompting",
	Long: `Builds a collection from the config file and --shape flags, then prints the
table and the shapes with the largest perimeter and area.`,
	Example: `  shapes table --shape circle:5 --shape rectangle:4,6`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, required := configFlag(cmd)
		specs, _ := cmd.Flags().GetStringArray("shape")
		padding, _ := cmd.Flags().GetInt("padding")

		return cli.RunTable(cli.TableOptions{
			ConfigPath:     configPath,
			ConfigRequired: required,
			Shapes:         specs,
			Padding:        padding,
			Out:            cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)

	tableCmd.Flags().StringArrayP("shape", "s", nil, "Shape as kind:m1,m2,... (repeatable)")
	tableCmd.Flags().Int("padding", -1, "Blank cells around table values (default from config, 2)")
}
