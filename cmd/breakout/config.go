package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML.

Save it where breakout looks for a config and edit the values you want to
change. Files only need the settings they override.

Search order:
  --config <path>
  ~/.breakout/configs/breakout.{yaml,yml,toml}
  ./configs/breakout.{yaml,yml,toml}

Examples:
  breakout config > ~/.breakout/configs/breakout.yaml
  breakout play --config ~/.breakout/configs/breakout.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if _, err := cmd.OutOrStdout().Write(config.DefaultYAML()); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
		return nil
	},
}
