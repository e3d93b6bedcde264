package redlight

import (
	"strings"
	"testing"

	"github.com/vovakirdan/redlight/internal/core"
)

func TestRenderPlayingField(t *testing.T) {
	e, _ := newTestEngine(&fakeStore{})
	e.StartGame()

	screen := core.NewScreen(60, 20)
	e.Render(screen)

	if !strings.Contains(screen.Row(0), "GREEN LIGHT") {
		t.Errorf("row 0 = %q, expected the green lamp", screen.Row(0))
	}
	if !strings.Contains(screen.Row(2), "FINISH") {
		t.Errorf("row 2 = %q, expected the finish line", screen.Row(2))
	}
	if !strings.Contains(screen.Row(19), "START") {
		t.Errorf("row 19 = %q, expected the start line", screen.Row(19))
	}
	if screen.Get(30, 18) != RunnerChar {
		t.Errorf("runner should stand on the start line, got %q", screen.Get(30, 18))
	}
	if c := screen.GetCell(30, 0); c.Color != core.ColorBrightGreen {
		t.Errorf("lamp color = %v, expected bright green", c.Color)
	}
}

func TestRenderRunnerMovesUp(t *testing.T) {
	e, _ := newTestEngine(&fakeStore{})
	e.StartGame()
	actGo(e, 4) // 80% of the way

	screen := core.NewScreen(60, 20)
	e.Render(screen)

	// span 16 rows, 0.8 * 16 = 12.8 -> 13 rows above the bottom lane
	if screen.Get(30, 5) != RunnerChar {
		t.Errorf("runner not at row 5:\n%s", screen.String())
	}
}

func TestRenderCaughtOverlay(t *testing.T) {
	e, _ := newTestEngine(&fakeStore{})
	e.StartGame()
	e.state.Signal = SignalStop
	e.Act()

	screen := core.NewScreen(60, 20)
	e.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "RED LIGHT") {
		t.Error("expected the red lamp")
	}
	if !strings.Contains(out, "CAUGHT!") || !strings.Contains(out, "You moved during Red Light!") {
		t.Errorf("expected the caught overlay:\n%s", out)
	}
	// 31x4 box centered on the middle of the track
	if screen.Get(15, 8) != '┌' || screen.Get(45, 11) != '┘' {
		t.Errorf("expected a box around the overlay:\n%s", out)
	}
}

func TestRenderTooSmall(t *testing.T) {
	e, _ := newTestEngine(&fakeStore{})
	screen := core.NewScreen(16, 4)
	e.Render(screen)

	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("expected a size warning, got %q", screen.String())
	}
}
