package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-chase/internal/core"
)

// Control names forwarded to the game besides the plain direction keys.
const (
	modifierControl = "shift"
	fireControl     = "fire"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Move       key.Binding
	Sprint     key.Binding
	Fire       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Sprint, k.Fire, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Sprint, k.Fire},
		{k.Pause, k.Restart, k.Screenshot},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Move: key.NewBinding(
			key.WithKeys("up", "down", "left", "right", "w", "a", "s", "d"),
			key.WithHelp("arrows/wasd", "move"),
		),
		Sprint: key.NewBinding(
			key.WithKeys("shift+up", "shift+down", "shift+left", "shift+right", "W", "A", "S", "D"),
			key.WithHelp("shift", "double speed"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space/click", "fire"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyIntent is what a key press means to the platform.
type KeyIntent struct {
	Action     core.Action // platform action, or ActionNone
	Control    string      // held control forwarded to the game
	Shifted    bool        // the modifier is held along with Control
	Screenshot bool
	ToggleHelp bool
}

// KeyMapper translates Bubble Tea key messages to platform intents.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings, for the help view.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an intent.
// Terminals report shifted arrows as "shift+up" and shifted letters as
// upper case; both become the plain control plus the modifier.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) KeyIntent {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return KeyIntent{Action: core.ActionQuit}
	case key.Matches(msg, km.keys.Pause):
		return KeyIntent{Action: core.ActionPause}
	case key.Matches(msg, km.keys.Restart):
		return KeyIntent{Action: core.ActionRestart}
	case key.Matches(msg, km.keys.Screenshot):
		return KeyIntent{Screenshot: true}
	case key.Matches(msg, km.keys.Help):
		return KeyIntent{ToggleHelp: true}
	case key.Matches(msg, km.keys.Fire):
		return KeyIntent{Control: fireControl}
	case key.Matches(msg, km.keys.Sprint):
		base := strings.ToLower(strings.TrimPrefix(msg.String(), "shift+"))
		return KeyIntent{Control: base, Shifted: true}
	case key.Matches(msg, km.keys.Move):
		return KeyIntent{Control: msg.String()}
	}
	return KeyIntent{}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
