package tui

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-whackamole/internal/config"
	"github.com/vovakirdan/tui-whackamole/internal/core"
	"github.com/vovakirdan/tui-whackamole/internal/host"
	"github.com/vovakirdan/tui-whackamole/internal/schedule"
	"github.com/vovakirdan/tui-whackamole/internal/whack"
)

// GameOptions configures a game model beyond the runtime config.
type GameOptions struct {
	Game   config.WhackConfig
	Logger *log.Logger
	OnEnd  func(whack.Result) // Called after each session, in addition to the model's own bookkeeping
}

// Model is the Bubble Tea model for one player's whack-a-mole board.
type Model struct {
	doc      *host.Document
	loop     *schedule.Loop
	ctrl     *whack.Controller
	screen   *core.Screen
	config   core.RuntimeConfig
	layout   Layout
	keys     KeyMap
	help     help.Model
	quitting bool
}

// NewModel creates a model with a fresh page, event loop and controller.
func NewModel(cfg core.RuntimeConfig, opts GameOptions) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	doc := host.NewPage(host.StandardHoles)
	loop := schedule.New(time.Now())
	ctrl := whack.New(doc, loop, whack.Options{
		Config: opts.Game,
		Rand:   rand.New(rand.NewSource(cfg.Seed)),
		Logger: opts.Logger,
		OnEnd:  opts.OnEnd,
	})

	m := Model{
		doc:    doc,
		loop:   loop,
		ctrl:   ctrl,
		screen: core.NewScreen(cfg.ScreenW, 1),
		config: cfg,
		keys:   DefaultKeyMap(host.StandardHoles),
		help:   help.New(),
	}
	m.help.Width = cfg.ScreenW
	m.relayout()
	return m
}

// relayout sizes the board to the rows the help view leaves free.
// Must run after any change to the screen size or the help mode.
func (m *Model) relayout() {
	h := core.Max(m.config.ScreenH-m.helpRows(), 1)
	m.screen.Resize(m.config.ScreenW, h)
	m.layout = NewLayout(m.config.ScreenW, h, host.StandardHoles)
}

// helpRows returns the height of the current help view.
func (m Model) helpRows() int {
	return lipgloss.Height(m.help.View(m.keys))
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

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		m.loop.AdvanceTo(time.Time(msg))
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.ctrl.StopGame()
		return m, tea.Quit
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()
		return m, nil
	case key.Matches(msg, m.keys.Start):
		m.clickStart()
		return m, nil
	case key.Matches(msg, m.keys.Difficulty):
		if !m.ctrl.Running() {
			//nolint:errcheck // Next always yields a valid preset
			m.ctrl.SetDifficulty(m.ctrl.Difficulty().Next())
		}
		return m, nil
	}

	if i := m.keys.HoleFor(msg); i >= 0 {
		m.whackHole(i)
	}
	return m, nil
}

// handleMouse turns left clicks on a hole into a whack.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if i := m.layout.HoleAt(msg.X, msg.Y); i >= 0 {
		m.whackHole(i)
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.relayout()
	return m, nil
}

// clickStart clicks the page's start control, or starts directly if the page has none.
func (m Model) clickStart() {
	if start := m.doc.QuerySelector("#" + host.StartID); start != nil {
		start.Click()
		return
	}
	//nolint:errcheck // Logged by the controller
	m.ctrl.StartGame()
}

// whackHole clicks the mole in hole i.
func (m Model) whackHole(i int) {
	holes := m.doc.QuerySelectorAll("." + host.HoleClass)
	if i >= len(holes) {
		return
	}
	for _, child := range holes[i].Children() {
		if child.HasClass(host.MoleClass) {
			child.Click()
			return
		}
	}
}

// saveScreenshot saves the current board to a text file.
func (m Model) saveScreenshot() {
	drawBoard(m.screen, m.doc, m.layout, m.status())

	dir := filepath.Join(os.Getenv("HOME"), ".whack", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("whack_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// status collects what the board shows besides the document.
func (m Model) status() boardStatus {
	s := m.ctrl.Session()
	return boardStatus{
		Difficulty: string(m.ctrl.Difficulty()),
		Running:    s.Active,
		Played:     !s.Active && s.ID != uuid.Nil,
		Score:      s.Score,
		Misses:     s.Misses,
		Err:        m.ctrl.Err(),
	}
}

// Session returns the controller's current session snapshot.
func (m Model) Session() whack.Session {
	return m.ctrl.Session()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawBoard(m.screen, m.doc, m.layout, m.status())
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local game.
func Run(cfg core.RuntimeConfig, opts GameOptions) error {
	model := NewModel(cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse clicks on holes
	)

	_, err := p.Run()
	return err
}
