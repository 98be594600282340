package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective settings",
	Long: `Print the settings dodge would use, as YAML.

Settings are searched in order:
  --config <path>            (.yaml, .yml or .toml)
  ~/.dodge/config.yaml
  ./configs/dodge.yaml
  built-in defaults

Examples:
  dodge config
  dodge config --defaults > ~/.dodge/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	data, err := config.Marshal(settings)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
