package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/redlight/internal/platform/tui"
	"github.com/vovakirdan/redlight/internal/server"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagHTTPAddr    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server for remote play",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game. All players share the best score
stored in the database. Remote sessions are silent, and sharing copies to
the player's own clipboard over OSC 52.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.redlight/host_key

Examples:
  redlight serve                           # SSH on :23234, health on :8080
  redlight serve --ssh :2222               # Listen on port 2222
  redlight serve --http ""                 # No health endpoint
  redlight serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", ":8080", "Health endpoint address (empty to disable)")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "redlight")
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := openStore(logger)
	defer store.Close()

	sshCfg := tui.DefaultSSHServerConfig()
	sshCfg.Address = flagSSHAddr
	sshCfg.HostKeyPath = flagHostKey
	sshCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	sshCfg.TickRate = flagFPS
	sshCfg.Seed = flagSeed

	sshServer, err := tui.NewSSHServer(sshCfg, cfg, store, logger.WithPrefix("redlight-ssh"))
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runners := []func(context.Context) error{sshServer.Run}
	if flagHTTPAddr != "" {
		runners = append(runners, server.New(flagHTTPAddr, logger.WithPrefix("redlight-http")).Run)
	}

	logger.Info("connect with", "cmd", "ssh localhost -p "+port(flagSSHAddr))
	return runAll(ctx, logger, runners...)
}

// runAll runs every server until ctx is cancelled or one of them fails,
// then stops the rest and returns the first error.
func runAll(ctx context.Context, logger *log.Logger, runners ...func(context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errs := make(chan error, len(runners))
	for _, run := range runners {
		go func() {
			err := run(ctx)
			if err != nil {
				logger.Error("server error", "err", err)
			}
			cancel()
			errs <- err
		}()
	}

	var first error
	for range runners {
		if err := <-errs; err != nil && first == nil {
			first = err
		}
	}
	return first
}

// port returns the port part of a host:port address.
func port(addr string) string {
	_, p, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return p
}
