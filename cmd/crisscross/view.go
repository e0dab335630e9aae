package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/crisscross/internal/platform/tui"
	"github.com/vovakirdan/crisscross/internal/registry"
	"github.com/vovakirdan/crisscross/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagNoRecord    bool
)

var viewCmd = &cobra.Command{
	Use:   "view [scenario]",
	Short: "Interactive viewer",
	Long: `Open the interactive viewer on a scenario or the configured scene.

Controls:
  Left/Right        - Rotate by 5° (Shift: 1°)
  W/A/S/D           - Move the origin by a tenth of a tile
  B                 - Toggle beam mode
  +/-               - Widen/narrow the beam
  C                 - Toggle crossing mode
  R                 - Record the current cast
  Tab               - Recorded casts
  ?                 - Help
  Q/Ctrl+C          - Quit

Examples:
  crisscross view
  crisscross view beam-wide-120`,
	Args: cobra.MaximumNArgs(1),
	RunE: runView,
}

var serveCmd = &cobra.Command{
	Use:   "serve [scenario]",
	Short: "Start the viewer SSH server",
	Long: `Start an SSH server that opens the viewer for every connection.

Each SSH connection gets its own viewer on the same starting scene.
Recorded casts go to the shared database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.crisscross/host_key

Examples:
  crisscross serve                           # Listen on :23235 with auto-generated key
  crisscross serve --ssh :2222               # Listen on port 2222
  crisscross serve beam-0 --no-record        # Start on a beam, read-only

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func init() {
	addSceneFlags(viewCmd)
	addSceneFlags(serveCmd)

	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not open the casts database")
}

// startKind picks the viewer's starting query.
func startKind(args []string) registry.Kind {
	if len(args) > 0 {
		if sc, err := registry.Create(args[0]); err == nil {
			return sc.Kind
		}
	}
	return registry.KindRay
}

func runView(cmd *cobra.Command, args []string) error {
	scene, id, err := loadScene(cmd, args)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open casts database, recording disabled", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	logger.Debug("starting viewer", "scenario", id)

	// The viewer owns the terminal; only debug runs let log lines through.
	var viewLogger *log.Logger
	if flagVerbose {
		viewLogger = logger
	}
	return tui.Run(scene, startKind(args), store, viewLogger)
}

func runServe(cmd *cobra.Command, args []string) error {
	scene, _, err := loadScene(cmd, args)
	if err != nil {
		return err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Scene = scene
	cfg.Kind = startKind(args)
	cfg.DBPath = flagDBPath
	cfg.HostKeyPath = flagHostKey
	cfg.Logger = logger.WithPrefix("crisscross-ssh")
	if cmd.Flags().Changed("ssh") {
		cfg.Address = flagSSHAddr
	}
	if cmd.Flags().Changed("idle-timeout") {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	if flagNoRecord {
		cfg.DBPath = ""
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting crisscross SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
