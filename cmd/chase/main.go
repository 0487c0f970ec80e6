// chase is a terminal pursuit game: steer the player away from the
// pursuer and fire homing projectiles at it.
//
// Usage:
//
//	chase play [game]                   - Play in the terminal (default: chase)
//	chase sim --script <file>           - Replay an input script headlessly
//	chase config                        - Print the effective configuration
//	chase list                          - List available games
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--log-file <path>   - Write logs to a file (the TUI owns the terminal)
//	--debug             - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chase/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/tui-chase/internal/games/chase"
)

var (
	// Global flags
	flagFPS     int
	flagLogFile string
	flagDebug   bool

	// Shared by play, sim and config
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chase",
	Short: "Chase - outrun the pursuer in your terminal",
	Long: `Chase is a terminal pursuit game. A pursuer follows the player
across the field; the player moves with the arrow keys or WASD and fires
projectiles that fly straight, then home in on the pursuer.

Available commands:
  play     - Play in the terminal
  sim      - Replay an input script without a terminal
  config   - Print the effective configuration
  list     - Show all available games

Examples:
  chase play
  chase play --difficulty hard
  chase sim --script ./demo.yaml --ticks 300
  chase config > ~/.arcade/configs/chase.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// addConfigFlags registers the config and difficulty flags on cmd.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// newLogger builds the command logger. Without --log-file it writes to
// fallback. The returned function closes the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "chase",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// loadConfig loads the chase configuration and applies the difficulty preset.
func loadConfig(logger *log.Logger) (config.ChaseConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.ChaseConfig{}, err
	}

	cfg, src, err := config.LoadChase(flagConfig, logger)
	if err != nil {
		return config.ChaseConfig{}, err
	}
	config.ApplyChasePreset(&cfg, preset)

	logger.Info("config loaded", "source", src, "difficulty", preset, "chase_speed", cfg.Pursuer.ChaseSpeed)
	return cfg, nil
}
