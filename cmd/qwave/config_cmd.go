package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"qwave/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long:  `Resolves the configuration file, applies flag overrides, and prints the result as YAML.`,
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Solver().Validate(); err != nil {
		logger.Warn("configuration will be rejected by the solver", "error", err)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
