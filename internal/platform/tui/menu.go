package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tetrus/internal/core"
	"github.com/vovakirdan/tetrus/internal/game"
	"github.com/vovakirdan/tetrus/internal/storage"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuModel is the Bubble Tea model for the mode picker shown to SSH
// sessions before a game starts.
type MenuModel struct {
	modes    []game.Mode
	best     map[string]int
	cursor   int
	width    int
	height   int
	keys     *KeyMapper
	quitting bool
	selected *game.Mode
}

// NewMenuModel creates a mode picker listing the preset modes, with best
// scores pulled from storage when available.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	modes := game.Presets()
	best := make(map[string]int, len(modes))
	if store != nil {
		for _, mode := range modes {
			if b, err := store.BestScore(mode.ID); err == nil {
				best[mode.ID] = b
			}
		}
	}

	return MenuModel{
		modes:  modes,
		best:   best,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		keys:   NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.modes)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		mode := m.modes[m.cursor]
		m.selected = &mode
	}
	return m, nil
}

// View renders the mode list.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n  " + menuTitleStyle.Render("T E T R U S") + "\n\n")

	for i, mode := range m.modes {
		line := fmt.Sprintf("  %s", mode.Name)
		if best, ok := m.best[mode.ID]; ok && best > 0 {
			line += menuDimStyle.Render(fmt.Sprintf("  (best %d)", best))
		}
		if i == m.cursor {
			sb.WriteString(menuSelectedStyle.Render("→"+line) + "\n")
		} else {
			sb.WriteString(" " + line + "\n")
		}
	}

	sb.WriteString("\n" + menuDimStyle.Render("  ↑/↓ select mode · enter play · q quit") + "\n")
	return sb.String()
}

// Selected returns the chosen mode, or nil while the user is browsing.
func (m MenuModel) Selected() *game.Mode {
	return m.selected
}

// IsQuitting reports whether the user left the menu.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}
