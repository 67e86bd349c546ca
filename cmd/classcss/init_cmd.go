package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .classcss.yaml config file",
	Long:  `Create a .classcss.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".classcss.yaml"); err == nil && !force {
			return fmt.Errorf(".classcss.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".classcss.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .classcss.yaml")
		return nil
	},
}

const defaultConfig = `# classcss configuration
# Docs: https://github.com/classcss/classcss

# Shared settings
verbose: false
color: false

# Conversion settings
convert:
  max-input-length: 10000
  debounce-ms: 300        # informational; honored by editors, not the pipeline
  highlight: true
  output: text            # text | json
  show-cache: false
  stylesheet: []          # glob patterns; empty = built-in utility engine
  # stylesheet:
  #   - "web/styles/**/*.css"
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
