package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/platform/audio"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// statusTicks is how long a status message stays on the bottom row.
const statusTicks = 90

// Options wires the collaborators of a terminal session.
type Options struct {
	Store  *storage.Store // May be nil
	Sink   audio.Sink     // Nil means silent
	Logger *log.Logger    // Nil discards

	// ReturnToMenu marks the quit action as a return to the caller's menu.
	// The sink stays open and BackToMenu reports true.
	ReturnToMenu bool
}

// Model is the Bubble Tea model for one shooter session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	sink       audio.Sink
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	input      *heldInput
	gameState  core.GameState
	quitting   bool
	scoreSaved bool
	selfScored bool // Game persists its own scores
	toMenu     bool
	backToMenu bool
	status     string
	statusLeft int
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	cfg = cfg.WithDefaults()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Sink == nil {
		opts.Sink = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  opts.Store,
		sink:   opts.Sink,
		logger: opts.Logger,
		config: cfg,
		keys:   NewKeyMapper(),
		input:  newHeldInput(),
		toMenu: opts.ReturnToMenu,
	}
	if aware, ok := game.(registry.ScoreAware); ok {
		if opts.Store != nil {
			aware.AttachScores(opts.Store)
		}
		m.selfScored = true
	}
	m.game.Reset(cfg)
	m.gameState = m.game.State()
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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "ctrl+y":
		m.copyFrame()
		return m, nil
	}

	m.input.Press(m.keys.MapKey(msg))
	return m, nil
}

// handleTick runs one simulation tick with the held input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.input.Frame())
	if result.Quit {
		if m.toMenu {
			m.backToMenu = true
			return m, tea.Quit
		}
		return m.quit()
	}
	m.sink.Play(result.Sounds)

	if m.gameState.GameOver && !result.State.GameOver {
		m.scoreSaved = false
	}
	m.gameState = result.State
	if result.State.Paused {
		m.input.Release()
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	if m.statusLeft > 0 {
		m.statusLeft--
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore records the final score for games that do not do it themselves.
func (m *Model) saveScore() {
	if m.selfScored || m.store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
		m.logger.Warn("could not save score", "game", m.game.ID(), "error", err)
	}
}

// IsQuitting returns true if the user asked to leave the program.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user quit a session started with ReturnToMenu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.sink.Close()
	return m, tea.Quit
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusLeft = statusTicks
}

// saveScreenshot saves the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.setStatus("screenshot failed")
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.setStatus("screenshot failed")
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.setStatus("screenshot failed")
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.setStatus("saved " + path)
	m.logger.Info("screenshot saved", "path", path)
}

// copyFrame puts the current frame on the system clipboard.
func (m *Model) copyFrame() {
	m.game.Render(m.screen)
	if err := clipboard.WriteAll(m.screen.String()); err != nil {
		m.setStatus("clipboard unavailable")
		m.logger.Warn("clipboard copy failed", "error", err)
		return
	}
	m.setStatus("frame copied")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.statusLeft > 0 {
		m.screen.DrawTextColored(0, m.screen.Height()-1, m.status, core.ColorGray)
	}
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
