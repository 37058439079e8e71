package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gearlogo/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration the other commands would use, after the config
search, preset selection and override flags have been applied.

Config search order:
  1. --config <path>
  2. ~/.gearlogo/configs/logo.yaml
  3. ./configs/logo.yaml
  4. built-in defaults

With --defaults, print the built-in default document instead; it is a
good starting point for a custom config file.

Examples:
  gearlogo config
  gearlogo config --defaults > ~/.gearlogo/configs/logo.yaml
  gearlogo config --preset meshed --gear-teeth 24`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in default config")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagConfigDefaults {
		_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML())
		return err
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		logger.Warn("configuration is not valid", "error", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
