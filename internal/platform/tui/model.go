package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/games/shooter"
	"github.com/vovakirdan/space-shooter/internal/storage"
)

// helpRows is the space reserved under the playfield for the key help line.
const helpRows = 1

// SessionOptions configures one terminal session.
type SessionOptions struct {
	Game          *shooter.Game
	Store         *storage.Store // nil disables score saving
	Logger        *log.Logger
	Player        string // Name stored with the run
	TickRate      int
	HoldWindow    time.Duration
	Width, Height int    // Initial terminal size, updated on resize
	ScreenshotDir string // Empty disables screenshots
}

// Outcome is how a session ended.
type Outcome struct {
	Stats shooter.Stats
	Err   error // Set when the session ended on an invariant violation
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	opts     SessionOptions
	game     *shooter.Game
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	hold     *HoldTracker
	pressed  *core.InputFrame
	lastTick time.Time
	outcome  *Outcome
	quitting bool
	notice   string
}

// NewModel creates a model for an already constructed game.
func NewModel(opts SessionOptions) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr)
	}
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		def := core.DefaultConfig()
		opts.Width, opts.Height = def.ScreenW, def.ScreenH
	}

	pressed := core.NewInputFrame()
	return Model{
		opts:    opts,
		game:    opts.Game,
		screen:  core.NewScreen(opts.Width, playRows(opts.Height)),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		hold:    NewHoldTracker(opts.HoldWindow),
		pressed: &pressed,
		outcome: &Outcome{},
	}
}

func playRows(height int) int {
	return max(height-helpRows, 1)
}

// Init starts the tick loop and sets the window title.
func (m Model) Init() tea.Cmd {
	m.opts.Logger.Info("session started", "player", m.opts.Player, "title", m.game.Title())
	return tea.Batch(
		tea.SetWindowTitle(m.game.Title()),
		tickCmd(m.opts.TickRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, playRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records presses; the game sees them on the next tick.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	if key.Matches(msg, m.keys.Screenshot) {
		m.notice = m.saveScreenshot(now)
		return m, nil
	}

	action := m.keys.Action(msg)
	switch {
	case action == core.ActionNone:
	case isHoldable(action):
		m.hold.Press(action, now)
	case action == core.ActionPause:
		// A key held across a pause toggle must be pressed again.
		m.hold.Release()
		m.pressed.Press(action)
	default:
		m.pressed.Press(action)
	}
	return m, nil
}

// handleTick runs one frame. Frame errors that do not wrap
// shooter.ErrInvariant are logged and the session continues.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	dt := frameDelta(m.lastTick, now, m.opts.TickRate)
	m.lastTick = now

	in := m.pressed.Clone()
	m.hold.Apply(&in, now)
	m.pressed.Clear()

	res, err := m.game.Step(in, dt)
	if err != nil {
		if errors.Is(err, shooter.ErrInvariant) {
			m.opts.Logger.Error("frame failed, ending session", "err", err, "tick", m.game.Stats().Ticks)
			m.outcome.Err = err
			return m.finish()
		}
		m.opts.Logger.Warn("frame error", "err", err, "tick", m.game.Stats().Ticks)
	}

	if res.Quit || m.game.Ended() {
		return m.finish()
	}
	return m, tickCmd(m.opts.TickRate)
}

// finish records the run and stops the program.
func (m Model) finish() (tea.Model, tea.Cmd) {
	m.quitting = true
	stats := m.game.Stats()
	m.outcome.Stats = stats

	m.opts.Logger.Info("session ended",
		"player", m.opts.Player,
		"reason", stats.Reason,
		"score", stats.Score,
		"kills", stats.Kills,
		"ticks", stats.Ticks,
	)
	m.saveRun(stats)
	return m, tea.Quit
}

// saveRun stores the run. Failures are logged; the score is not worth
// failing the session over.
func (m Model) saveRun(stats shooter.Stats) {
	if m.opts.Store == nil || stats.Score <= 0 || m.outcome.Err != nil {
		return
	}
	_, err := m.opts.Store.SaveRun(storage.Run{
		GameID:    shooter.ID,
		Player:    m.opts.Player,
		Score:     stats.Score,
		Kills:     stats.Kills,
		Ticks:     stats.Ticks,
		EndReason: string(stats.Reason),
	})
	if err != nil {
		m.opts.Logger.Warn("could not save score", "err", err)
		return
	}
	m.opts.Logger.Debug("score saved", "score", stats.Score)
}

// saveScreenshot writes the current frame as plain text and returns a
// status line for the help bar.
func (m Model) saveScreenshot(now time.Time) string {
	if m.opts.ScreenshotDir == "" {
		return "screenshots disabled"
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.opts.Logger.Warn("could not create screenshot directory", "err", err)
		return "screenshot failed"
	}

	name := fmt.Sprintf("%s_%s.txt", shooter.ID, now.Format("20060102_150405"))
	path := filepath.Join(m.opts.ScreenshotDir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "err", err)
		return "screenshot failed"
	}

	m.opts.Logger.Info("screenshot saved", "path", path)
	return "saved " + name
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	status := m.help.View(m.keys)
	if m.notice != "" {
		status = m.notice + "  " + status
	}
	return RenderScreen(m.screen) + "\n" + styleFor(core.ColorGray).Render(status)
}

// Outcome returns how the session ended. Valid after the program exits.
func (m Model) Outcome() Outcome {
	return *m.outcome
}

// Run starts the Bubble Tea program for one local session.
func Run(opts SessionOptions, progOpts ...tea.ProgramOption) (Outcome, error) {
	model := NewModel(opts)

	progOpts = append([]tea.ProgramOption{tea.WithAltScreen()}, progOpts...)
	final, err := tea.NewProgram(model, progOpts...).Run()
	if err != nil {
		return Outcome{}, err
	}

	m, ok := final.(Model)
	if !ok {
		return Outcome{}, nil
	}
	return m.Outcome(), nil
}
