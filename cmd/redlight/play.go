package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/redlight/internal/audio"
	"github.com/vovakirdan/redlight/internal/config"
	"github.com/vovakirdan/redlight/internal/core"
	"github.com/vovakirdan/redlight/internal/platform/tui"
	"github.com/vovakirdan/redlight/internal/share"
)

var (
	flagAudio    bool
	flagNoAudio  bool
	flagShareURL string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Enter      - Play / try again
  Space/Up   - Move (only while the light is green!)
  L          - Leaderboard (from the menu)
  S          - Share your score (after game over)
  Esc        - Back to the menu
  Q/Ctrl+C   - Quit

Logs are written to ~/.redlight/redlight.log.

Examples:
  redlight play
  redlight play --no-audio
  redlight play --seed 42
  redlight play --share-url https://example.com/redlight`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagAudio, "audio", true, "Play cue tones")
	playCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Disable cue tones")
	playCmd.Flags().StringVar(&flagShareURL, "share-url", "", "URL appended to shared scores")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("audio") {
		cfg.Audio.Enabled = flagAudio
	}
	if flagNoAudio {
		cfg.Audio.Enabled = false
	}
	if flagShareURL != "" {
		cfg.Share.URL = flagShareURL
	}

	// The TUI owns stdout, so logs go to a file.
	logOut, closeLog := openLogFile()
	defer closeLog()
	logger, err := newLogger(logOut, "redlight")
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore(logger)
	defer store.Close()

	tones := audio.NewEmitter(cfg.Audio, logger)
	defer tones.Close()

	err = tui.Run(tui.Options{
		Game: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:  store,
		Tones:  tones,
		Sharer: localSharer(logger),
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// localSharer picks the share methods for this terminal. Over SSH the system
// clipboard belongs to the remote host, so OSC 52 goes first there.
func localSharer(logger *log.Logger) *share.Chain {
	osc := share.OSC52{Out: os.Stderr, Tmux: os.Getenv("TMUX") != ""}
	if os.Getenv("SSH_TTY") != "" || os.Getenv("SSH_CONNECTION") != "" {
		return share.NewChain(logger, osc)
	}
	return share.NewChain(logger, share.SystemClipboard{}, osc)
}

// openLogFile opens ~/.redlight/redlight.log for appending.
// Logs are dropped when the file cannot be opened.
func openLogFile() (io.Writer, func()) {
	dir := config.DataDir()
	if dir == "" {
		return io.Discard, func() {}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "redlight.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}
