package share

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSharer struct {
	method Method
	err    error
	got    []string
}

func (s *stubSharer) Method() Method { return s.method }

func (s *stubSharer) Share(text string) error {
	s.got = append(s.got, text)
	return s.err
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestPayload(t *testing.T) {
	assert.Equal(t,
		"I scored 42 points in Red Light, Green Light! Can you beat my score?",
		Payload(42, ""))
	assert.Equal(t,
		"I scored 7 points in Red Light, Green Light! Can you beat my score? https://example.com/play",
		Payload(7, "  https://example.com/play "))
}

func TestChainUsesFirstWorkingMethod(t *testing.T) {
	broken := &stubSharer{method: MethodOSC52, err: ErrUnsupported}
	works := &stubSharer{method: MethodClipboard}
	never := &stubSharer{method: "other"}

	res := NewChain(nil, broken, works, never).Share("hello")

	assert.Equal(t, Result{Method: MethodClipboard, Text: "hello"}, res)
	assert.Equal(t, []string{"hello"}, broken.got)
	assert.Equal(t, []string{"hello"}, works.got)
	assert.Empty(t, never.got)
}

func TestChainFallsBackToManual(t *testing.T) {
	res := NewChain(nil,
		&stubSharer{method: MethodOSC52, err: ErrUnsupported},
		&stubSharer{method: MethodClipboard, err: errors.New("no xclip")},
	).Share("copy me")

	assert.Equal(t, MethodManual, res.Method)
	assert.Equal(t, "copy me", res.Text)

	assert.Equal(t, MethodManual, NewChain(nil).Share("x").Method)
}

func TestOSC52WritesSequence(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, OSC52{Out: &buf}.Share("score 42"))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\x1b]52;c;"), "got %q", out)
	assert.Contains(t, out, base64.StdEncoding.EncodeToString([]byte("score 42")))
}

func TestOSC52Failures(t *testing.T) {
	assert.ErrorIs(t, OSC52{}.Share("x"), ErrUnsupported)
	assert.Error(t, OSC52{Out: failingWriter{}}.Share("x"))
}
