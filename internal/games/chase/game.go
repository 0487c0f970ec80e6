// Package chase adapts the pursuit simulation to the arcade platform:
// it turns input frames into simulation calls and draws the world onto
// a terminal screen.
package chase

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-chase/internal/config"
	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/games/chase/sim"
	"github.com/vovakirdan/tui-chase/internal/registry"
)

// Visual characters for rendering
const (
	PursuerChar   = '▓'
	PlayerChar    = '█'
	BallisticChar = '•'
	HomingChar    = '*'
	AimChar       = '+'
)

func init() {
	registry.Register("chase", func() registry.Game {
		return New()
	})
}

// Game runs one chase simulation on the arcade platform.
type Game struct {
	cfg     config.ChaseConfig
	logger  *log.Logger
	rt      core.RuntimeConfig
	sim     *sim.Simulation
	display *logDisplay
	paused  bool

	layout    Layout
	hasLayout bool
}

// New creates a chase game with the builtin configuration.
func New() *Game {
	return NewWithConfig(config.DefaultChaseConfig(), nil)
}

// NewWithConfig creates a chase game with the given configuration.
// A nil logger discards output.
func NewWithConfig(cfg config.ChaseConfig, logger *log.Logger) *Game {
	g := &Game{rt: core.DefaultConfig()}
	g.Configure(cfg, logger)
	return g
}

// Configure replaces the configuration and logger. It takes effect on the next Reset.
func (g *Game) Configure(cfg config.ChaseConfig, logger *log.Logger) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g.cfg = cfg
	g.logger = logger
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "chase"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Chase"
}

// Reset builds a fresh simulation.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.paused = false
	g.hasLayout = false
	g.display = newLogDisplay(g.logger)

	s, err := sim.New(SimConfig(g.cfg), g.display)
	if err != nil {
		// Configs are validated on load; this only trips for hand-built ones.
		g.logger.Error("invalid chase config, using defaults", "error", err)
		g.display = newLogDisplay(g.logger)
		s, err = sim.New(sim.DefaultConfig(), g.display)
		if err != nil {
			panic(fmt.Sprintf("chase: default config rejected: %v", err))
		}
	}
	g.sim = s
	g.logger.Debug("simulation reset", "tick_rate", rt.TickRate)
}

// Step advances the game by one tick.
// Input events are applied even while paused so held controls stay in sync
// with the keyboard; the clock and the frame body stop.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim == nil {
		g.Reset(g.rt)
	}

	if in.Has(core.ActionRestart) {
		g.Reset(g.rt)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		g.logger.Debug("pause toggled", "paused", g.paused)
	}

	for _, ev := range in.Events {
		g.apply(ev)
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.sim.Update(g.rt.TickDuration())
	return core.StepResult{State: g.State()}
}

func (g *Game) apply(ev core.InputEvent) {
	switch ev.Kind {
	case core.EventKeyDown:
		if !g.sim.KeyDown(ev.Key) {
			g.logger.Debug("unbound key", "key", ev.Key)
		}
	case core.EventKeyUp:
		g.sim.KeyUp(ev.Key)
	case core.EventPointerMove:
		g.sim.PointerMove(ev.X, ev.Y)
	case core.EventPointerDown:
		g.sim.PointerDown()
	case core.EventPointerUp:
		g.sim.PointerUp()
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.sim == nil {
		g.Reset(g.rt)
	}

	lay := NewLayout(dst.Width(), dst.Height(), g.cfg.World)
	g.layout, g.hasLayout = lay, true

	snap := g.sim.Snapshot()
	if snap.InDanger {
		dst.SetBackground(core.ColorDarkRed)
	}

	dst.DrawBox(lay.Border())

	if col, row := lay.ToCell(snap.Aim); lay.Inside(col, row) {
		dst.SetColored(col, row, AimChar, core.ColorGray)
	}

	g.fill(dst, lay, snap.Pursuer, PursuerChar, core.ColorRed)
	g.fill(dst, lay, snap.Player, PlayerChar, core.ColorBrightCyan)
	for _, p := range snap.Projectiles {
		ch, color := BallisticChar, core.ColorYellow
		if p.Phase == sim.PhaseHoming {
			ch, color = HomingChar, core.ColorOrange
		}
		g.fill(dst, lay, core.Entity{Pos: p.Pos, Size: p.Size}, ch, color)
	}

	if g.paused {
		dst.DrawTextCentered(lay.Top+lay.Rows/2, " PAUSED - press P to resume ")
	}

	g.drawStatus(dst, snap)
}

func (g *Game) fill(dst *core.Screen, lay Layout, e core.Entity, ch rune, color core.Color) {
	if r, ok := lay.Span(e); ok {
		dst.DrawRect(r, ch, color)
	}
}

func (g *Game) drawStatus(dst *core.Screen, snap sim.Snapshot) {
	status := fmt.Sprintf(" t=%5.1fs  v=(%+.0f,%+.0f)  chase=%.0f  shots=%d",
		snap.Now.Seconds(), snap.Velocity.X, snap.Velocity.Y, snap.ChaseSpeed, len(snap.Projectiles))
	if snap.Emitting {
		status += "  FIRING"
	}
	if snap.InDanger {
		status += "  DANGER"
	}
	y := dst.Height() - 1
	for i, r := range []rune(status) {
		color := core.ColorWhite
		if snap.InDanger {
			color = core.ColorBrightYellow
		}
		dst.SetColored(i, y, r, color)
	}
}

// CellToWorld converts a screen cell to world coordinates using the most
// recent layout. Before the first render the runtime screen size is used.
func (g *Game) CellToWorld(col, row int) (x, y float64) {
	lay := g.layout
	if !g.hasLayout {
		lay = NewLayout(g.rt.ScreenW, g.rt.ScreenH, g.cfg.World)
	}
	v := lay.ToWorld(col, row)
	return v.X, v.Y
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{Paused: g.paused}
	}
	return core.GameState{
		Tick:        g.sim.Tick(),
		Paused:      g.paused,
		InDanger:    g.sim.InDanger(),
		Projectiles: len(g.sim.Projectiles()),
	}
}

// Snapshot returns the simulation snapshot.
func (g *Game) Snapshot() sim.Snapshot {
	if g.sim == nil {
		g.Reset(g.rt)
	}
	return g.sim.Snapshot()
}
