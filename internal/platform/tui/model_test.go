package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/redlight/internal/config"
	"github.com/vovakirdan/redlight/internal/core"
	"github.com/vovakirdan/redlight/internal/games/redlight"
	"github.com/vovakirdan/redlight/internal/share"
	"github.com/vovakirdan/redlight/internal/storage"
)

type okSharer struct{ got []string }

func (s *okSharer) Method() share.Method { return share.MethodClipboard }

func (s *okSharer) Share(text string) error {
	s.got = append(s.got, text)
	return nil
}

func newTestModel(t *testing.T, store *storage.Memory, sharer *share.Chain) Model {
	t.Helper()
	return NewModel(Options{
		Game:    config.DefaultConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 42},
		Store:   store,
		Sharer:  sharer,
	})
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return nm, cmd
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		m, _ = send(t, m, k)
	}
	return m
}

// finishRun lets the level 1 countdown run out.
func finishRun(m Model) {
	m.clock.Advance(11 * time.Second)
}

func TestMenuView(t *testing.T) {
	m := newTestModel(t, storage.NewMemory(), nil)

	view := m.View()
	assert.Contains(t, view, "R E D   L I G H T")
	assert.NotContains(t, view, "High Score")

	store := storage.NewMemory()
	require.NoError(t, store.SaveBestScore(7))
	m = newTestModel(t, store, nil)
	assert.Contains(t, m.View(), "High Score: 7")
}

func TestStartAndAct(t *testing.T) {
	m := newTestModel(t, storage.NewMemory(), nil)

	m = press(t, m, keyEnter)
	require.Equal(t, redlight.PhasePlaying, m.engine.Phase())

	// The light starts green.
	m = press(t, m, keySpace, keySpace)
	snap := m.engine.Snapshot()
	assert.Equal(t, 2, snap.Score)
	assert.Equal(t, 2, snap.Distance)

	view := m.View()
	assert.Contains(t, view, "Level 1")
	assert.Contains(t, view, "Distance 2m")
	assert.Contains(t, view, "Distance to finish:  40%")
	assert.Contains(t, view, "GREEN LIGHT")
}

func TestTickAdvancesClockByElapsedTime(t *testing.T) {
	m := newTestModel(t, storage.NewMemory(), nil)
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	m, cmd := send(t, m, TickMsg(t0))
	assert.NotNil(t, cmd, "tick should schedule the next frame")
	assert.Equal(t, time.Duration(0), m.clock.Now(), "first frame only records the time")

	m, _ = send(t, m, TickMsg(t0.Add(100*time.Millisecond)))
	assert.Equal(t, 100*time.Millisecond, m.clock.Now())

	// A stalled frame advances at most maxFrameStep.
	m, _ = send(t, m, TickMsg(t0.Add(10*time.Second)))
	assert.Equal(t, 100*time.Millisecond+maxFrameStep, m.clock.Now())

	// Time never runs backwards.
	m, _ = send(t, m, TickMsg(t0))
	assert.Equal(t, 100*time.Millisecond+maxFrameStep, m.clock.Now())
}

func TestCountdownRunsOnFrames(t *testing.T) {
	m := newTestModel(t, storage.NewMemory(), nil)
	m = press(t, m, keyEnter)

	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m, _ = send(t, m, TickMsg(t0))
	for i := 1; i <= 8; i++ {
		m, _ = send(t, m, TickMsg(t0.Add(time.Duration(i)*125*time.Millisecond)))
	}
	assert.Equal(t, 9, m.engine.Snapshot().TimeRemaining)
}

func TestLevelUpBanner(t *testing.T) {
	m := newTestModel(t, storage.NewMemory(), nil)
	m = press(t, m, keyEnter)

	m = press(t, m, keySpace, keySpace, keySpace, keySpace, keySpace)
	require.Equal(t, 2, m.engine.Snapshot().Level)

	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m, _ = send(t, m, TickMsg(t0))
	assert.Contains(t, m.View(), "LEVEL UP!")

	for i := 1; i <= 5; i++ {
		m, _ = send(t, m, TickMsg(t0.Add(time.Duration(i)*250*time.Millisecond)))
	}
	assert.NotContains(t, m.View(), "LEVEL UP!")
}

func TestGameOverView(t *testing.T) {
	store := storage.NewMemory()
	m := newTestModel(t, store, nil)
	m = press(t, m, keyEnter, keySpace, keySpace, keySpace)
	finishRun(m)

	require.Equal(t, redlight.PhaseGameOver, m.engine.Phase())
	view := m.View()
	assert.Contains(t, view, "E L I M I N A T E D")
	assert.Contains(t, view, "Time ran out")
	assert.Contains(t, view, "★ NEW HIGH SCORE! ★")
	assert.Contains(t, view, "Score: 3")
	assert.Contains(t, view, "Distance: 3m")

	best, err := store.BestScore()
	require.NoError(t, err)
	assert.Equal(t, 3, best)
}

func TestMoveKeysKeepGameOverScreen(t *testing.T) {
	m := newTestModel(t, storage.NewMemory(), nil)
	m = press(t, m, keyEnter, keySpace)
	finishRun(m)
	require.Equal(t, redlight.PhaseGameOver, m.engine.Phase())

	m = press(t, m, keySpace, keySpace, keyUp, runes("w"))
	assert.Equal(t, redlight.PhaseGameOver, m.engine.Phase())
	assert.Contains(t, m.View(), "E L I M I N A T E D")

	m = press(t, m, keyEnter)
	assert.Equal(t, redlight.PhasePlaying, m.engine.Phase())
}

func TestMoveKeysKeepGameOverAfterCaught(t *testing.T) {
	m := newTestModel(t, storage.NewMemory(), nil)
	m = press(t, m, keyEnter)

	// Mash the move key until the light catches the runner.
	for i := 0; i < 200 && !m.engine.Snapshot().CaughtPending; i++ {
		m = press(t, m, keySpace)
		m.clock.Advance(50 * time.Millisecond)
	}
	require.True(t, m.engine.Snapshot().CaughtPending)

	m.clock.Advance(1500 * time.Millisecond)
	require.Equal(t, redlight.PhaseGameOver, m.engine.Phase())

	m = press(t, m, keySpace)
	assert.Equal(t, redlight.PhaseGameOver, m.engine.Phase())
	assert.Contains(t, m.View(), "You moved during Red Light!")
}

func TestShareWithoutSharerFallsBackToManual(t *testing.T) {
	m := newTestModel(t, storage.NewMemory(), nil)
	m = press(t, m, keyEnter, keySpace)
	finishRun(m)

	m, cmd := send(t, m, runes("s"))
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())

	assert.Contains(t, m.View(), "Copy this: I scored 1 points in Red Light, Green Light!")
	assert.Equal(t, redlight.PhaseGameOver, m.engine.Phase(), "sharing never changes the game")
}

func TestShareThroughChain(t *testing.T) {
	sharer := &okSharer{}
	m := newTestModel(t, storage.NewMemory(), share.NewChain(nil, sharer))
	m = press(t, m, keyEnter, keySpace, keySpace)
	finishRun(m)

	m, cmd := send(t, m, runes("s"))
	m, _ = send(t, m, cmd())

	assert.Contains(t, m.View(), "Score copied to clipboard!")
	require.Len(t, sharer.got, 1)
	assert.True(t, strings.HasPrefix(sharer.got[0], "I scored 2 points"))

	// A new run clears the status.
	m = press(t, m, keyEnter)
	finishRun(m)
	assert.NotContains(t, m.View(), "Score copied")
}

func TestLeaderboardListsRuns(t *testing.T) {
	m := newTestModel(t, storage.NewMemory(), nil)

	m = press(t, m, runes("l"))
	require.Equal(t, redlight.PhaseLeaderboard, m.engine.Phase())
	assert.Contains(t, m.View(), "No runs yet")

	m = press(t, m, keyEsc, keyEnter, keySpace, keySpace)
	finishRun(m)
	m = press(t, m, keyEsc, runes("l"))

	require.Equal(t, redlight.PhaseLeaderboard, m.engine.Phase())
	assert.Len(t, m.runs.Rows(), 1)
	view := m.View()
	assert.Contains(t, view, "High Score: 2")
	assert.Contains(t, view, "time up ★")

	m = press(t, m, keyEsc)
	assert.Equal(t, redlight.PhaseMenu, m.engine.Phase())
}

func TestEscDoesNotAbandonRun(t *testing.T) {
	m := newTestModel(t, storage.NewMemory(), nil)
	m = press(t, m, keyEnter, keyEsc)
	assert.Equal(t, redlight.PhasePlaying, m.engine.Phase())
}

func TestQuitClosesEngine(t *testing.T) {
	store := storage.NewMemory()
	m := newTestModel(t, store, nil)
	m = press(t, m, keyEnter, keySpace)

	m, cmd := send(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.IsQuitting())
	assert.Empty(t, m.View())

	// The abandoned run never reaches game over or the store.
	finishRun(m)
	assert.Equal(t, redlight.PhasePlaying, m.engine.Phase())
	assert.Equal(t, 0, m.clock.Pending())
	best, err := store.BestScore()
	require.NoError(t, err)
	assert.Equal(t, 0, best)
}

func TestResizeKeepsRoomForHUD(t *testing.T) {
	m := newTestModel(t, storage.NewMemory(), nil)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, m.screen.Width())
	assert.Equal(t, 40-hudLines-helpLines, m.screen.Height())

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 10, Height: 3})
	assert.Equal(t, 1, m.screen.Height())
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, storage.NewMemory(), nil)
	assert.False(t, m.help.ShowAll)
	m = press(t, m, runes("?"))
	assert.True(t, m.help.ShowAll)
}
