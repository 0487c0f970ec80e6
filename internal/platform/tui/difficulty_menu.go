package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-chase/internal/config"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	menuCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// difficultyOption is one row of the difficulty menu.
type difficultyOption struct {
	preset config.DifficultyPreset
	label  string
}

// DifficultyModel lets users choose a difficulty preset before playing.
type DifficultyModel struct {
	options   []difficultyOption
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  config.DifficultyPreset
	choosing  bool
	quitting  bool
}

// NewDifficultyModel creates the menu. configured is the chase speed the
// fixed preset keeps.
func NewDifficultyModel(width, height int, configured float64) DifficultyModel {
	var options []difficultyOption
	for _, p := range []config.DifficultyPreset{config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard} {
		speed, _ := config.ChaseSpeedForPreset(p)
		options = append(options, difficultyOption{
			preset: p,
			label:  fmt.Sprintf("%-7s chase speed %.0f", strings.ToUpper(string(p[:1]))+string(p[1:]), speed),
		})
	}
	options = append(options, difficultyOption{
		preset: config.DifficultyFixed,
		label:  fmt.Sprintf("%-7s chase speed %.0f (from config)", "Fixed", configured),
	})

	return DifficultyModel{
		options:   options,
		cursor:    len(options) - 1,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selected = m.options[m.cursor].preset
		return m, tea.Quit
	}
	return m, nil
}

// View renders the difficulty selection.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("C H A S E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, opt := range m.options {
		line := "  " + opt.label
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + opt.label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("Enter: Select  |  Esc/Q: Quit"), m.width))
	return b.String()
}

// Selected returns the chosen preset, or false if still choosing or quit.
func (m DifficultyModel) Selected() (config.DifficultyPreset, bool) {
	if m.choosing || m.quitting {
		return "", false
	}
	return m.selected, true
}

// centerText pads text to center it within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunDifficultySelector shows the difficulty menu. ok is false when the user quit.
func RunDifficultySelector(width, height int, configured float64) (preset config.DifficultyPreset, ok bool, err error) {
	p := tea.NewProgram(
		NewDifficultyModel(width, height, configured),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, isModel := finalModel.(DifficultyModel)
	if !isModel {
		return "", false, nil
	}
	preset, ok = m.Selected()
	return preset, ok, nil
}
