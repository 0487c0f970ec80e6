package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/games/chase"
	"github.com/vovakirdan/tui-chase/internal/games/chase/sim"
)

var (
	flagScript string
	flagTicks  int
	flagEvery  int
	flagRender bool
)

// Trace styles
var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	dangerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	summaryStyle = lipgloss.NewStyle().Bold(true)
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Replay an input script without a terminal",
	Long: `Runs the simulation headlessly against a YAML input script and prints
a per-tick trace. Rows where the player is inside the pursuer's radius are
highlighted.

Script format:
  ticks: 120
  events:
    - {tick: 0, kind: key_down, key: right}
    - {tick: 0, kind: pointer_move, x: 0, y: 0}
    - {tick: 0, kind: pointer_down}
    - {tick: 60, kind: pointer_up}

Kinds: key_down, key_up, pointer_move, pointer_down, pointer_up, pause, restart.

Examples:
  chase sim --script demo.yaml
  chase sim --script demo.yaml --ticks 600 --every 10 --render`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	addConfigFlags(simCmd)
	simCmd.Flags().StringVar(&flagScript, "script", "", "Path to input script YAML")
	simCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Ticks to run (0 = script length)")
	simCmd.Flags().IntVar(&flagEvery, "every", 1, "Print every n-th tick")
	simCmd.Flags().BoolVar(&flagRender, "render", false, "Print the final frame")
	//nolint:errcheck // flag is registered above
	simCmd.MarkFlagRequired("script")
}

func runSim(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	script, err := chase.LoadScript(flagScript)
	if err != nil {
		return err
	}

	ticks := script.Ticks
	if flagTicks > 0 {
		ticks = flagTicks
	}
	every := max(flagEvery, 1)

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS

	game := chase.NewWithConfig(cfg, logger)
	game.Reset(rt)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%6s %9s  %-18s %-18s %6s %5s",
		"tick", "time", "player", "pursuer", "chase", "shots")))

	chase.Replay(game, script.Frames(ticks), func(tick int, g *chase.Game) {
		if tick%every != 0 && tick != ticks-1 {
			return
		}
		writeTraceLine(out, g.Snapshot())
	})

	snap := game.Snapshot()
	fmt.Fprintln(out)
	fmt.Fprintln(out, summaryStyle.Render(fmt.Sprintf(
		"ticks=%d time=%.3fs spawned=%d hits=%d expired=%d in_flight=%d",
		snap.Tick, snap.Now.Seconds(), snap.Spawned, snap.Collisions, snap.Timeouts, len(snap.Projectiles))))

	if flagRender {
		screen := core.NewScreen(rt.ScreenW, rt.ScreenH)
		game.Render(screen)
		fmt.Fprintln(out)
		fmt.Fprintln(out, screen.String())
	}
	return nil
}

func writeTraceLine(w io.Writer, snap sim.Snapshot) {
	line := fmt.Sprintf("%6d %8.3fs  (%7.1f,%7.1f) (%7.1f,%7.1f) %6.0f %5d",
		snap.Tick, snap.Now.Seconds(),
		snap.Player.Pos.X, snap.Player.Pos.Y,
		snap.Pursuer.Pos.X, snap.Pursuer.Pos.Y,
		snap.ChaseSpeed, len(snap.Projectiles))
	if snap.InDanger {
		line = dangerStyle.Render(line + "  danger")
	}
	fmt.Fprintln(w, line)
}
