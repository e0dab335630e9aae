// crisscross traces rays and beams across a tile grid from the terminal.
//
// Usage:
//
//	crisscross list                  - List built-in scenarios
//	crisscross cast [scenario]       - Print the tiles a ray crosses
//	crisscross beam [scenario]       - Print the crossings of a beam
//	crisscross crossing [scenario]   - Find where a ray leaves the valid region
//	crisscross record <scenario>     - Store a scenario's cast
//	crisscross verify <scenario>     - Compare a scenario against its stored cast
//	crisscross history               - Show recently recorded casts
//	crisscross scene [scenario]      - Print the resolved scene as YAML
//	crisscross view [scenario]       - Interactive viewer
//	crisscross serve                 - Serve the viewer over SSH
//
// Global flags:
//
//	--db <path>      - Set database path (default: ~/.crisscross/casts.db)
//	--config <path>  - Scene YAML used when no scenario is named
//	--verbose        - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import scenarios to register them
	_ "github.com/vovakirdan/crisscross/internal/scenarios"
)

var (
	// Global flags
	flagDBPath  string
	flagConfig  string
	flagVerbose bool

	logger = newLogger()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crisscross",
	Short: "crisscross - trace rays and beams across a tile grid",
	Long: `crisscross walks a ray (or a fan of parallel rays) across a uniform
tile grid and reports every tile-boundary crossing in order.

Available commands:
  list      - Show built-in scenarios
  cast      - Trace a single ray
  beam      - Trace a beam of parallel rays
  crossing  - Find the last valid and first invalid crossing
  record    - Store a scenario's cast in the database
  verify    - Compare a scenario against its stored cast
  history   - Show recently recorded casts
  scene     - Print the resolved scene as YAML
  view      - Interactive viewer
  serve     - Start SSH server for the viewer

Examples:
  crisscross list
  crisscross cast ray-30 --plot
  crisscross cast --angle 45 --origin 0,0.5,0,0.5
  crisscross beam beam-wide-120 --width 3
  crisscross crossing --region 0,0,2,3
  crisscross serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.crisscross/casts.db", "Path to casts database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to scene YAML (used when no scenario is given)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(castCmd)
	rootCmd.AddCommand(beamCmd)
	rootCmd.AddCommand(crossingCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(serveCmd)
}

func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "crisscross",
	})
}
