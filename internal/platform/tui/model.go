package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// helpHeight is the number of terminal rows reserved under the game screen.
const helpHeight = 1

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	store    *storage.Store // score history, may be nil
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	input    core.InputFrame
	state    core.GameState
	quitting bool
	recorded bool // finished game already written to the history
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = defaultTickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg.ScreenH = max(cfg.ScreenH-helpHeight, 0)

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		config: cfg,
		input:  core.NewInputFrame(),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the action for the next tick. Several direction keys
// between two ticks resolve to the last one.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.input) {
		m.quit()
		return m, tea.Quit
	}
	return m, nil
}

// handleResize resizes the screen buffer and lets the game adapt in place.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-helpHeight, 0)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.state.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick runs one frame of the game.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.state.GameOver
	result := m.game.Step(m.input)
	m.state = result.State
	m.input.Clear()

	switch {
	case m.state.GameOver && !m.recorded:
		m.recordGame()
		m.recorded = true
	case wasOver && !m.state.GameOver:
		m.logger.Info("game restarted", "game", m.game.ID())
		m.recorded = false
	}

	return m, tickCmd(m.config.TickRate)
}

// recordGame writes the finished game to the history. Zero scores are skipped.
func (m *Model) recordGame() {
	m.logger.Info("game over", "game", m.game.ID(), "score", m.state.Score, "high", m.state.HighScore)
	if m.store == nil || m.state.Score <= 0 {
		return
	}

	rec := storage.GameRecord{GameID: m.game.ID(), Score: m.state.Score}
	if s, ok := m.game.(registry.Summarizer); ok {
		sum := s.Summary()
		rec.Length = sum.Length
		rec.Moves = sum.Moves
	}
	if _, err := m.store.SaveGame(rec); err != nil {
		m.logger.Warn("could not record game", "error", err)
	}
}

// quit flushes any unsaved game state.
func (m *Model) quit() {
	m.quitting = true
	if f, ok := m.game.(registry.Flusher); ok {
		if err := f.Flush(); err != nil {
			m.logger.Error("could not flush game state", "error", err)
		}
	}
}

// saveScreenshot saves the current screen to ~/.snake/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
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

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for game. store and logger may be nil.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	// Ctrl+C delivered as a signal bypasses handleKey.
	if m, ok := finalModel.(Model); ok && !m.quitting {
		m.quit()
	}
	return nil
}
