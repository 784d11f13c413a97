package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// statusSeconds is how long a status message stays on screen.
const statusSeconds = 2

// Options wires optional collaborators into a Model. Every field may be
// left zero.
type Options struct {
	Store    *storage.Store
	Sound    *audio.Player
	Logger   *log.Logger
	Renderer *lipgloss.Renderer
	// Resume is an encoded session to continue instead of starting fresh.
	Resume []byte
	// User names the player in logs (the SSH user for remote sessions).
	User string
}

// Model is the Bubble Tea model that hosts one game session.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	palette     *Palette
	store       *storage.Store
	sound       *audio.Player
	logger      *log.Logger
	config      core.RuntimeConfig
	keys        *KeyMapper
	hold        *Holder
	inputFrame  core.InputFrame
	gameState   core.GameState
	best        int
	status      string
	statusTicks int
	quitting    bool
}

// NewModel resets the game (and restores opts.Resume if given) and
// returns a model ready to run.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.User != "" {
		logger = logger.With("user", opts.User)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		palette:    NewPalette(opts.Renderer),
		store:      opts.Store,
		sound:      opts.Sound,
		logger:     logger,
		config:     cfg,
		keys:       NewKeyMapper(),
		hold:       NewHolder(holdTicks(cfg.TickRate)),
		inputFrame: core.NewInputFrame(),
	}

	game.Reset(cfg)
	if len(opts.Resume) > 0 {
		m.restore(opts.Resume)
	}
	m.gameState = game.State()
	if m.store != nil {
		best, err := m.store.HighScore(game.ID())
		if err != nil {
			logger.Warn("high score unavailable", "err", err)
		}
		m.best = best
	}
	logger.Info("session started", "game", game.ID(), "seed", cfg.Seed)
	return m
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
		// The game scales world units to whatever screen it is given.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveSession()
		return m, nil
	case "f2":
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("session ended", "score", m.gameState.Score)
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.hold.Press(action)
		m.inputFrame.Set(action)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.hold.Apply(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if !result.State.InPlay || result.State.Paused {
		m.hold.Release()
	}
	if m.sound != nil {
		m.sound.Play(result.Events)
	}
	for _, ev := range result.Events {
		if ev.Kind == core.EventRunOver {
			m.saveScore(ev.Value)
		}
	}

	if m.statusTicks > 0 {
		m.statusTicks--
		if m.statusTicks == 0 {
			m.status = ""
		}
	}
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) levelName() string {
	if l, ok := m.game.(registry.Leveled); ok {
		return l.LevelName()
	}
	return ""
}

// saveScore records a finished run. Storage failures are logged only.
func (m *Model) saveScore(score int) {
	if m.store == nil || score <= 0 {
		return
	}
	level := m.levelName()
	if _, err := m.store.SaveScore(m.game.ID(), level, score); err != nil {
		m.logger.Error("score not saved", "score", score, "err", err)
		return
	}
	m.logger.Info("score saved", "score", score, "level", level)
	m.best = max(m.best, score)
}

// saveSession persists the current session so it can be resumed later.
func (m *Model) saveSession() {
	r, ok := m.game.(registry.Resumable)
	if !ok || m.store == nil {
		m.setStatus("Saving not available")
		return
	}
	data, err := r.SaveSession()
	if err != nil {
		m.logger.Error("session not encoded", "err", err)
		m.setStatus("Save failed")
		return
	}
	id, err := m.store.SaveSession(m.game.ID(), m.levelName(), m.gameState.Score, data)
	if err != nil {
		m.logger.Error("session not saved", "err", err)
		m.setStatus("Save failed")
		return
	}
	m.logger.Info("session saved", "id", id, "bytes", len(data))
	m.setStatus("Saved " + id[:8])
}

func (m *Model) restore(data []byte) {
	r, ok := m.game.(registry.Resumable)
	if !ok {
		m.logger.Warn("game cannot resume sessions", "game", m.game.ID())
		return
	}
	if err := r.RestoreSession(data); err != nil {
		m.logger.Error("resume failed, starting fresh", "err", err)
		m.game.Reset(m.config)
		m.setStatus("Resume failed")
		return
	}
	m.logger.Info("session resumed", "bytes", len(data))
	m.setStatus("Resumed")
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusTicks = statusSeconds * m.config.TickRate
}

// saveScreenshot writes the current screen as plain text. Best effort.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".breakout", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot not written", "path", path, "err", err)
		return
	}
	m.setStatus("Screenshot saved")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.best > 0 && !m.gameState.InPlay {
		m.screen.DrawTextColor(1, m.screen.Height()-1, "Best: "+FormatScore(m.best), core.ColorGray)
	}
	if m.status != "" {
		x := max(m.screen.Width()-len(m.status)-1, 0)
		m.screen.DrawTextColor(x, m.screen.Height()-1, m.status, core.ColorYellow)
	}
	return m.palette.Render(m.screen)
}

// State returns the last game state seen by the host loop.
func (m Model) State() core.GameState {
	return m.gameState
}

// Status returns the current status line, if any.
func (m Model) Status() string {
	return m.status
}

// Run starts the Bubble Tea program for a local session.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
