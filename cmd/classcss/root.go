package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "classcss",
	Short: "Convert utility class names to readable CSS",
	Long: `Turn a string of utility class names into the CSS it stands for.
Resolution uses a built-in utility engine by default, or your own
stylesheets via --stylesheet glob patterns.`,
	// Default behavior: run convert when no subcommand is given.
	// loadConfig must be called here because PreRunE of convertCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runConvert(convertCmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress warnings and cache output")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".classcss.yaml", "Config file path")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
