package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tetrus/internal/core"
	"github.com/vovakirdan/tetrus/internal/game"
	"github.com/vovakirdan/tetrus/internal/storage"
)

// EngineFactory creates a fresh engine session for the given seed.
// The model calls it at start and again on restart.
type EngineFactory func(seed int64) *game.Game

// Model is the Bubble Tea model for one play session. It collects key
// presses into an ordered action queue, feeds the engine once per tick,
// and renders the resulting snapshot.
type Model struct {
	factory EngineFactory
	engine  *game.Game
	screen  *core.Screen
	store   *storage.Store
	config  core.RuntimeConfig
	keys    *KeyMapper

	pending []core.Action
	snap    game.Snapshot
	result  game.Result

	started    bool
	scoreSaved bool
	quitting   bool
	backToMenu bool
	hasMenu    bool
}

// NewModel creates a model for a game session.
func NewModel(factory EngineFactory, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		factory: factory,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		config:  cfg,
		keys:    NewKeyMapper(),
	}
	m.engine = factory(cfg.Seed)
	m.loadBestScore()
	return m
}

// loadBestScore seeds the engine's HUD best score from storage.
func (m *Model) loadBestScore() {
	if m.store == nil {
		return
	}
	if best, err := m.store.BestScore(m.engine.Mode().ID); err == nil {
		m.engine.SetBestScore(best)
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick(msg)
	}
	return m, nil
}

// handleKey queues game actions in arrival order; after a terminal
// outcome it handles the restart/quit/back keys instead.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	if m.result.Outcome != game.OutcomeContinue {
		switch action {
		case core.ActionRestart:
			return m.restart()
		case core.ActionQuit:
			if msg.String() == "esc" && m.hasMenu {
				m.backToMenu = true
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if action != core.ActionNone && action != core.ActionRestart {
		m.pending = append(m.pending, action)
	}
	return m, nil
}

// restart begins a new session with a fresh seed, keeping mode and rules.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.config.Seed = time.Now().UnixNano()
	m.engine = m.factory(m.config.Seed)
	m.loadBestScore()
	m.pending = nil
	m.result = game.Result{}
	m.snap = game.Snapshot{}
	m.started = false
	m.scoreSaved = false
	return m, nil
}

// handleTick advances the engine one tick with the queued actions.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	now := time.Time(msg)

	if !m.started {
		m.engine.Start(now)
		m.started = true
	}

	m.result = m.engine.Update(now, m.pending)
	m.pending = m.pending[:0]
	m.snap = m.engine.Snapshot(now)

	if m.result.Outcome != game.OutcomeContinue {
		m.saveScore()
	}
	if m.result.Outcome == game.OutcomeQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Keep ticking after game over so the overlay stays responsive.
	return m, tickCmd(m.config.TickRate)
}

// saveScore records the final score once per session.
func (m *Model) saveScore() {
	if m.scoreSaved || m.store == nil {
		return
	}
	snap := m.snap
	if snap.Score > 0 {
		//nolint:errcheck // Best-effort save, session summary shows regardless
		m.store.SaveScore(snap.Mode.ID, snap.Score, snap.Lines, snap.Level)
	}
	m.scoreSaved = true
}

// View renders the latest snapshot.
func (m Model) View() string {
	if m.quitting || !m.started {
		return ""
	}
	DrawSnapshot(m.screen, m.snap)
	return RenderScreen(m.screen)
}

// IsQuitting reports whether the user asked to leave entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the user asked to return to the mode menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program for a single local session.
func Run(factory EngineFactory, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(factory, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
