package redlight

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/redlight/internal/core"
)

// Visual constants for the playing field.
const (
	RunnerChar = '▲'
	RailChar   = '│'
	LineChar   = '═'
	trackHalfW = 7
)

// Render draws the playing field: the signal lamp, the track with its start
// and finish lines, the runner and the caught overlay.
func (e *Engine) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w < 2*trackHalfW+3 || h < 8 {
		dst.DrawTextCentered(h/2, "Window too small")
		return
	}

	snap := e.Snapshot()
	cx := w / 2

	// Signal lamp
	if snap.Signal == SignalGo {
		dst.DrawTextCenteredWithColor(0, "●  GREEN LIGHT  ●", core.ColorBrightGreen)
	} else {
		dst.DrawTextCenteredWithColor(0, "■   RED LIGHT   ■", core.ColorBrightRed)
	}

	finishY := 2
	startY := h - 1
	left, right := cx-trackHalfW, cx+trackHalfW

	dst.DrawHLineWithColor(left, finishY, right-left+1, LineChar, core.ColorYellow)
	dst.DrawTextWithColor(right+2, finishY, "FINISH", core.ColorYellow)
	dst.DrawHLineWithColor(left, startY, right-left+1, LineChar, core.ColorGray)
	dst.DrawTextWithColor(right+2, startY, "START", core.ColorGray)

	lane := startY - finishY - 1
	dst.DrawVLineWithColor(left, finishY+1, lane, RailChar, core.ColorGray)
	dst.DrawVLineWithColor(right, finishY+1, lane, RailChar, core.ColorGray)

	// Runner
	runnerY := startY - 1 - int(math.Round(snap.Progress*float64(lane)))
	runnerY = core.Clamp(runnerY, finishY+1, startY-1)
	runnerColor := core.ColorBrightWhite
	if snap.CaughtPending {
		runnerColor = core.ColorBrightRed
	}
	dst.SetWithColor(cx, runnerY, RunnerChar, runnerColor)

	if snap.CaughtPending {
		drawCaught(dst, cx, (finishY+startY)/2)
	}
}

// drawCaught boxes the caught message over the track when it fits.
func drawCaught(dst *core.Screen, cx, cy int) {
	const msg = "You moved during Red Light!"
	box := core.CenteredRect(cx, cy, utf8.RuneCountInString(msg)+4, 4)
	if box.Inside(dst.Width(), dst.Height()) {
		dst.DrawRect(box, ' ')
		dst.DrawBoxWithColor(box, core.ColorBrightRed)
	}
	dst.DrawTextCenteredWithColor(box.Y+1, "CAUGHT!", core.ColorBrightRed)
	dst.DrawTextCenteredWithColor(box.Y+2, msg, core.ColorRed)
}
