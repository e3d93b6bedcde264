package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/redlight/internal/clock"
	"github.com/vovakirdan/redlight/internal/config"
	"github.com/vovakirdan/redlight/internal/core"
	"github.com/vovakirdan/redlight/internal/games/redlight"
	"github.com/vovakirdan/redlight/internal/share"
)

const (
	// maxFrameStep caps how far one frame advances the game clock, so a
	// stalled terminal does not burn through a level in a single frame.
	maxFrameStep = 250 * time.Millisecond

	levelBannerFor = time.Second

	hudLines  = 4 // Level/score line, time bar, distance bar, blank
	helpLines = 2
)

// Options configures a Model.
type Options struct {
	Game    config.Config
	Runtime core.RuntimeConfig
	Store   redlight.ScoreStore  // Nil keeps the best score in memory
	Tones   redlight.ToneEmitter // Nil plays nothing
	Sharer  *share.Chain         // Nil always falls back to manual copying
	Logger  *log.Logger          // Nil discards
}

// Model is the Bubble Tea model for one player. It owns one engine and the
// virtual clock that drives it; both are only touched from Update.
type Model struct {
	engine *redlight.Engine
	clock  *clock.Virtual
	screen *core.Screen

	keys     KeyMap
	help     help.Model
	timeBar  progress.Model
	distBar  progress.Model
	runs     table.Model
	sharer   *share.Chain
	shareURL string
	shared   *share.Result
	logger   *log.Logger

	runtime     core.RuntimeConfig
	width       int
	height      int
	lastTick    time.Time
	lastLevel   int
	bannerUntil time.Duration
	quitting    bool
}

// shareMsg carries the outcome of a share attempt.
type shareMsg share.Result

// NewModel creates a model in the menu phase.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	clk := clock.NewVirtual()
	engineOpts := []redlight.Option{
		redlight.WithLogger(logger),
		redlight.WithSeed(rt.Seed),
	}
	if opts.Tones != nil {
		engineOpts = append(engineOpts, redlight.WithToneEmitter(opts.Tones))
	}

	m := Model{
		engine:    redlight.New(opts.Game, clk, opts.Store, engineOpts...),
		clock:     clk,
		screen:    core.NewScreen(rt.ScreenW, fieldHeight(rt.ScreenH)),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		timeBar:   progress.New(progress.WithGradient("#FF5F5F", "#5FFF87"), progress.WithoutPercentage()),
		distBar:   progress.New(progress.WithSolidFill("#5FAFFF"), progress.WithoutPercentage()),
		runs:      newRunsTable(),
		sharer:    opts.Sharer,
		shareURL:  opts.Game.Share.URL,
		logger:    logger,
		runtime:   rt,
		width:     rt.ScreenW,
		height:    rt.ScreenH,
		lastLevel: 1,
	}
	m.resizeBars()
	return m
}

// Init starts the frame tick.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case shareMsg:
		res := share.Result(msg)
		m.shared = &res
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg, m.engine.Phase())
	if action == core.ActionNone && m.engine.Phase() == redlight.PhaseLeaderboard {
		var cmd tea.Cmd
		m.runs, cmd = m.runs.Update(msg)
		return m, cmd
	}
	return m.apply(action)
}

// apply runs one action against the engine.
func (m Model) apply(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionQuit:
		m.engine.Close()
		m.quitting = true
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	case core.ActionAct:
		m.engine.Act()

	case core.ActionStart:
		m.engine.StartGame()
		m.shared = nil
		m.lastLevel = 1
		m.bannerUntil = 0

	case core.ActionLeaderboard:
		m.engine.ShowLeaderboard()
		m.runs.SetRows(runRows(m.engine.Runs()))
		m.runs.GotoTop()

	case core.ActionMenu:
		m.engine.GoToMenu()

	case core.ActionShare:
		return m, shareCmd(m.sharer, share.Payload(m.engine.Score(), m.shareURL))
	}
	return m, nil
}

// shareCmd shares off the update loop; clipboard helpers may block.
func shareCmd(chain *share.Chain, text string) tea.Cmd {
	return func() tea.Msg {
		if chain == nil {
			return shareMsg{Method: share.MethodManual, Text: text}
		}
		return shareMsg(chain.Share(text))
	}
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, fieldHeight(msg.Height))
	m.help.Width = msg.Width
	m.resizeBars()
	m.runs.SetHeight(max(msg.Height-10, 3))
	return m, nil
}

func (m *Model) resizeBars() {
	w := max(min(m.width-16, 60), 10)
	m.timeBar.Width = w
	m.distBar.Width = w
}

// handleTick advances the game clock by the real time since the last frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.lastTick.IsZero() {
		m.clock.Advance(min(max(now.Sub(m.lastTick), 0), maxFrameStep))
	}
	m.lastTick = now

	snap := m.engine.Snapshot()
	if snap.Phase == redlight.PhasePlaying && snap.Level > m.lastLevel {
		m.bannerUntil = m.clock.Now() + levelBannerFor
		m.logger.Debug("level banner", "level", snap.Level)
	}
	m.lastLevel = snap.Level

	return m, tickCmd(m.runtime.TickRate)
}

// Engine exposes the engine for tests and session teardown.
func (m Model) Engine() *redlight.Engine {
	return m.engine
}

// IsQuitting returns true if the player asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// fieldHeight is the playing field height left after the HUD and help lines.
func fieldHeight(h int) int {
	return max(h-hudLines-helpLines, 1)
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		// Covers exits that bypass the quit key, such as a kill signal.
		fm.engine.Close()
	}
	return err
}
