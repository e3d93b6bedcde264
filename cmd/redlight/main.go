// redlight is a Red Light, Green Light reflex game for the terminal.
//
// Usage:
//
//	redlight play            - Play in this terminal
//	redlight serve           - Start the SSH server for remote play
//	redlight health          - Run only the health endpoint
//	redlight best [--reset]  - Show or reset the best score
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible signal sequences
//	--db <path>         - Set database path (default: ~/.redlight/scores.db)
//	--config <path>     - Use a custom game config YAML
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "redlight",
	Short: "Red Light, Green Light - a reflex game in your terminal",
	Long: `Move toward the finish line while the light is green and freeze
when it turns red. Each level needs more moves and gives you more time,
while the light changes faster.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  health   - Run only the health endpoint
  best     - Show or reset the best score

Examples:
  redlight play
  redlight play --no-audio
  redlight serve --ssh :2222 --http :8080
  redlight best --reset`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.redlight/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(bestCmd)
}
