package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chase/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration play and sim would use, as YAML.
The output is a complete config file and can be edited and passed back
with --config or saved as ~/.arcade/configs/chase.yaml.

Search order: --config, ~/.arcade/configs/chase.yaml, ./configs/chase.yaml,
then the built-in defaults.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	addConfigFlags(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
	return err
}
