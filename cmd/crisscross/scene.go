package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/crisscross/internal/canvas"
	"github.com/vovakirdan/crisscross/internal/config"
	"github.com/vovakirdan/crisscross/internal/registry"
	"github.com/vovakirdan/crisscross/internal/scenarios"
)

// customSceneID names casts of scenes that did not come from the registry.
const customSceneID = "custom"

// Scene override flags shared by cast, beam, crossing and view.
var (
	flagAngle  float64
	flagOrigin string
	flagWidth  float64
	flagRegion string
	flagPlot   bool
	flagScale  int
)

func addSceneFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&flagAngle, "angle", 0, "Cast angle in degrees, counter-clockwise from +x")
	cmd.Flags().StringVar(&flagOrigin, "origin", "", "Origin as x,rel_x,y,rel_y")
}

func addPlotFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagPlot, "plot", false, "Draw the cast on the grid")
	cmd.Flags().IntVar(&flagScale, "scale", 0, "Columns per tile when plotting (0 = fit terminal)")
}

// loadScene resolves the scene for a command: a named scenario when one is
// given, otherwise the scene config. Flag overrides are applied on top.
func loadScene(cmd *cobra.Command, args []string) (config.Scene, string, error) {
	var (
		scene config.Scene
		id    = customSceneID
	)
	if len(args) > 0 {
		if !registry.Exists(args[0]) {
			return config.Scene{}, "", fmt.Errorf("unknown scenario %q (run 'crisscross list')", args[0])
		}
		sc, err := registry.Create(args[0])
		if err != nil {
			return config.Scene{}, "", err
		}
		scene, id = sc.Scene, sc.ID
	} else {
		s, err := config.LoadScene(flagConfig)
		if err != nil {
			return config.Scene{}, "", err
		}
		scene = s
		logger.Debug("loaded scene config", "name", s.Name, "path", flagConfig)
	}

	flags := cmd.Flags()
	if flags.Lookup("angle") != nil && flags.Changed("angle") {
		scene.Angle = flagAngle
	}
	if flags.Lookup("origin") != nil && flags.Changed("origin") {
		origin, err := parseOrigin(flagOrigin)
		if err != nil {
			return config.Scene{}, "", err
		}
		scene.Origin = origin
	}
	if flags.Lookup("width") != nil && flags.Changed("width") {
		scene.Beam.Enabled = true
		scene.Beam.Width = flagWidth
	}
	if flags.Lookup("region") != nil && flags.Changed("region") {
		region, err := parseRegion(flagRegion)
		if err != nil {
			return config.Scene{}, "", err
		}
		scene.Region = region
	}

	if err := scene.Validate(); err != nil {
		return config.Scene{}, "", err
	}
	return scene, id, nil
}

// parseOrigin parses "x,rel_x,y,rel_y".
func parseOrigin(s string) (config.PositionConfig, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return config.PositionConfig{}, fmt.Errorf("origin %q: expected x,rel_x,y,rel_y", s)
	}
	x, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 32)
	if err != nil {
		return config.PositionConfig{}, fmt.Errorf("origin x: %w", err)
	}
	relX, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return config.PositionConfig{}, fmt.Errorf("origin rel_x: %w", err)
	}
	y, err := strconv.ParseUint(strings.TrimSpace(parts[2]), 10, 32)
	if err != nil {
		return config.PositionConfig{}, fmt.Errorf("origin y: %w", err)
	}
	relY, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
	if err != nil {
		return config.PositionConfig{}, fmt.Errorf("origin rel_y: %w", err)
	}
	return config.PositionConfig{X: uint32(x), RelX: relX, Y: uint32(y), RelY: relY}, nil
}

// parseRegion parses "min_x,min_y,max_x,max_y" into an enabled region.
func parseRegion(s string) (config.RegionConfig, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return config.RegionConfig{}, fmt.Errorf("region %q: expected min_x,min_y,max_x,max_y", s)
	}
	var v [4]uint32
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return config.RegionConfig{}, fmt.Errorf("region %q: %w", s, err)
		}
		v[i] = uint32(n)
	}
	return config.RegionConfig{Enabled: true, MinX: v[0], MinY: v[1], MaxX: v[2], MaxY: v[3]}, nil
}

// terminalSize returns the stdout terminal size, falling back to 80x24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// plotResult prints the drawing of res, styled when stdout is a terminal.
func plotResult(res scenarios.Result) error {
	scale := flagScale
	if scale <= 0 {
		grid, err := res.Scene.GridValue()
		if err != nil {
			return err
		}
		w, h := terminalSize()
		scale = canvas.FitScale(grid, w, h-2)
		if s := res.Scene.Canvas.Scale; s > 0 {
			scale = min(scale, s)
		}
	}
	c, err := res.Draw(scale)
	if err != nil {
		return err
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(c.Render())
	} else {
		fmt.Println(c.String())
	}
	return nil
}
