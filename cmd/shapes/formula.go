package main

import (
	"github.com/aretw0/shapes/internal/cli"
	"github.com/spf13/cobra"
)

var formulaCmd = &cobra.Command{
	Use:   "formula [kind]",
	Short: "Print the area and perimeter formulas",
	Long:  `Prints the formulas of one shape kind (number, name or alias), or of all kinds.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plain, _ := cmd.Flags().GetBool("plain")
		kind := ""
		if len(args) > 0 {
			kind = args[0]
		}
		return cli.RunFormula(cmd.OutOrStdout(), kind, plain)
	},
}

func init() {
	rootCmd.AddCommand(formulaCmd)

	formulaCmd.Flags().Bool("plain", false, "Print plain text instead of rendered markdown")
}
