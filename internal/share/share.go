// Package share copies a score message to the player's clipboard.
//
// Sharing never affects the game: every failure falls through to the next
// method, and the last resort is showing the text for manual copying.
package share

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/charmbracelet/log"
)

// ErrUnsupported is returned when a share method cannot work in this environment.
var ErrUnsupported = errors.New("share method unsupported")

// Method names how a payload reached the player.
type Method string

const (
	MethodOSC52     Method = "osc52"
	MethodClipboard Method = "clipboard"
	MethodManual    Method = "manual"
)

// Payload builds the share text for a score. url is appended when set.
func Payload(score int, url string) string {
	text := fmt.Sprintf("I scored %d points in Red Light, Green Light! Can you beat my score?", score)
	if url = strings.TrimSpace(url); url != "" {
		text += " " + url
	}
	return text
}

// Sharer delivers text by one method.
type Sharer interface {
	Method() Method
	Share(text string) error
}

// OSC52 sets the terminal's clipboard with an OSC 52 escape sequence.
// It works wherever the sequence reaches the player's terminal, SSH included.
type OSC52 struct {
	Out  io.Writer
	Tmux bool // Wrap the sequence for tmux passthrough
}

// Method returns MethodOSC52.
func (OSC52) Method() Method { return MethodOSC52 }

// Share writes the escape sequence to Out.
func (o OSC52) Share(text string) error {
	if o.Out == nil {
		return ErrUnsupported
	}
	seq := osc52.New(text)
	if o.Tmux {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(o.Out); err != nil {
		return fmt.Errorf("share: osc52 write failed: %w", err)
	}
	return nil
}

// SystemClipboard uses the local system clipboard.
type SystemClipboard struct{}

// Method returns MethodClipboard.
func (SystemClipboard) Method() Method { return MethodClipboard }

// Share writes text to the system clipboard.
func (SystemClipboard) Share(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("share: clipboard write failed: %w", err)
	}
	return nil
}

// Result reports how the text was shared.
type Result struct {
	Method Method
	Text   string
}

// Chain tries each sharer in order and falls back to manual copying.
type Chain struct {
	sharers []Sharer
	logger  *log.Logger
}

// NewChain creates a chain. A nil logger discards.
func NewChain(logger *log.Logger, sharers ...Sharer) *Chain {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Chain{sharers: sharers, logger: logger}
}

// Share delivers text by the first method that works.
func (c *Chain) Share(text string) Result {
	for _, s := range c.sharers {
		if err := s.Share(text); err != nil {
			c.logger.Debug("share method failed", "method", s.Method(), "err", err)
			continue
		}
		return Result{Method: s.Method(), Text: text}
	}
	return Result{Method: MethodManual, Text: text}
}
