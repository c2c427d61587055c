package main

import (
	"github.com/aretw0/shapes/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive menu",
	Long:  `Starts an interactive session over an empty collection, or one seeded from the config file.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, required := configFlag(cmd)
		debug, _ := cmd.Flags().GetBool("debug")
		plain, _ := cmd.Flags().GetBool("plain")
		noBanner, _ := cmd.Flags().GetBool("no-banner")
		padding, _ := cmd.Flags().GetInt("padding")

		return cli.Execute(cli.RunOptions{
			ConfigPath:     configPath,
			ConfigRequired: required,
			Debug:          debug,
			Plain:          plain,
			NoBanner:       noBanner,
			Padding:        padding,
			In:             cmd.InOrStdin(),
			Out:            cmd.OutOrStdout(),
			Err:            cmd.ErrOrStderr(),
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("plain", false, "Use line based prompts without colors or markdown")
	runCmd.Flags().Bool("no-banner", false, "Do not print the banner")
	runCmd.Flags().Int("padding", -1, "Blank cells around table values (default from config, 2)")

	// 'run' is the default when no command is provided.
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
	rootCmd.Args = runCmd.Args
	rootCmd.RunE = runCmd.RunE
}
