package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-chase/internal/config"
	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/games/chase"
	"github.com/vovakirdan/tui-chase/internal/platform/tui"
	"github.com/vovakirdan/tui-chase/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing in the terminal.

Controls:
  Arrows/WASD        - Move (hold)
  Shift+direction    - Move at double speed
  Space/Left click   - Fire toward the mouse pointer (hold)
  P/Esc              - Pause
  R                  - Restart
  ?                  - Toggle help
  Q/Ctrl+C           - Quit

Difficulty options set the pursuer's chase speed:
  easy   - 3
  normal - 5
  hard   - 8
  fixed  - Keep the config's chase_speed

Examples:
  chase play
  chase play --difficulty easy
  chase play --config ./my-chase.yaml --log-file chase.log --debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addConfigFlags(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "chase"
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'chase list' to see available games.")
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs only go to --log-file
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	chaseCfg, err := loadConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fd := int(os.Stdout.Fd())
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(fd); termErr == nil {
		width = w
		height = h
	}

	// Ask for a difficulty unless one was given
	if flagDifficulty == "" && term.IsTerminal(fd) {
		preset, ok, selErr := tui.RunDifficultySelector(width, height, chaseCfg.Pursuer.ChaseSpeed)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		// User quit the menu
		if !ok {
			return
		}
		config.ApplyChasePreset(&chaseCfg, preset)
		logger.Info("difficulty selected", "preset", preset, "chase_speed", chaseCfg.Pursuer.ChaseSpeed)
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	if g, ok := game.(*chase.Game); ok {
		g.Configure(chaseCfg, logger)
	}

	opts := tui.Options{
		ReleaseAfter: time.Duration(chaseCfg.Input.ReleaseAfterMS) * time.Millisecond,
		Logger:       logger,
	}

	logger.Info("starting", "game", gameID, "width", width, "height", height, "fps", flagFPS)
	if runErr := tui.Run(game, cfg, opts); runErr != nil {
		logger.Error("game exited with error", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
