package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/registry"
)

// DefaultReleaseAfter is how long a key stays held after its last press or repeat.
const DefaultReleaseAfter = 120 * time.Millisecond

// Options tunes the terminal front end.
type Options struct {
	// ReleaseAfter is the idle time after which a held key is released.
	// Terminals report presses and auto-repeats but never releases.
	// Zero releases on the next tick; negative selects DefaultReleaseAfter.
	ReleaseAfter time.Duration
	Logger       *log.Logger
}

// trigger is an input source that holds the fire button down.
type trigger uint8

const (
	triggerKey trigger = 1 << iota
	triggerMouse
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	width      int
	height     int
	quitting   bool

	held         map[string]time.Time // control -> last press or repeat
	releaseAfter time.Duration
	triggers     trigger // fire sources currently held
	now          func() time.Time
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.ReleaseAfter < 0 {
		opts.ReleaseAfter = DefaultReleaseAfter
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:         game,
		screen:       core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config:       cfg,
		keys:         NewKeyMapper(),
		help:         h,
		logger:       logger,
		inputFrame:   core.NewInputFrame(),
		width:        cfg.ScreenW,
		height:       cfg.ScreenH,
		held:         make(map[string]time.Time),
		releaseAfter: opts.ReleaseAfter,
		now:          time.Now,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	intent := m.keys.MapKey(msg)

	switch {
	case intent.Action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case intent.Screenshot:
		m.saveScreenshot()
	case intent.ToggleHelp:
		m.help.ShowAll = !m.help.ShowAll
	case intent.Action != core.ActionNone:
		m.inputFrame.Set(intent.Action)
	case intent.Control != "":
		at := m.now()
		if intent.Shifted {
			m.press(modifierControl, at)
		}
		m.press(intent.Control, at)
	}

	return m, nil
}

// press marks a control as held. Only the first press of a hold reaches the
// game; auto-repeats just extend it.
func (m *Model) press(control string, at time.Time) {
	if _, ok := m.held[control]; !ok {
		if control == fireControl {
			m.setTrigger(triggerKey, true)
		} else {
			m.inputFrame.Push(core.InputEvent{Kind: core.EventKeyDown, Key: control})
		}
	}
	m.held[control] = at
}

// releaseStale releases controls not seen for releaseAfter, in name order.
func (m *Model) releaseStale(at time.Time) {
	var stale []string
	for control, seen := range m.held {
		if at.Sub(seen) >= m.releaseAfter {
			stale = append(stale, control)
		}
	}
	slices.Sort(stale)
	for _, control := range stale {
		delete(m.held, control)
		if control == fireControl {
			m.setTrigger(triggerKey, false)
		} else {
			m.inputFrame.Push(core.InputEvent{Kind: core.EventKeyUp, Key: control})
		}
	}
}

// setTrigger records one fire source. The game sees a pointer press when the
// first source goes down and a release only when the last one lets go.
func (m *Model) setTrigger(src trigger, down bool) {
	was := m.triggers != 0
	if down {
		m.triggers |= src
	} else {
		m.triggers &^= src
	}

	switch firing := m.triggers != 0; {
	case firing && !was:
		m.inputFrame.Push(core.InputEvent{Kind: core.EventPointerDown})
	case !firing && was:
		m.inputFrame.Push(core.InputEvent{Kind: core.EventPointerUp})
	}
}

// handleMouse forwards pointer position and left button state.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if pm, ok := m.game.(registry.PointerMapper); ok {
		x, y := pm.CellToWorld(msg.X, msg.Y)
		m.inputFrame.Push(core.InputEvent{Kind: core.EventPointerMove, X: x, Y: y})
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.setTrigger(triggerMouse, true)
		}
	case tea.MouseActionRelease:
		m.setTrigger(triggerMouse, false)
	}

	return m, nil
}

// handleResize processes window resize events.
// World coordinates do not depend on the terminal, so the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	m.releaseStale(at)

	result := m.game.Step(m.inputFrame)
	if result.State.InDanger != m.gameState.InDanger {
		m.logger.Debug("danger changed", "in_danger", result.State.InDanger, "tick", result.State.Tick)
	}
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := m.help.View(m.keys.Keys())
	m.screen.Resize(m.width, max(m.height-lipgloss.Height(helpView), 1))

	m.screen.Clear()
	m.game.Render(m.screen)

	return lipgloss.JoinVertical(lipgloss.Left, RenderScreen(m.screen), helpView)
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Aim follows the pointer without a button held
	)

	_, err := p.Run()
	return err
}
