package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crisscross/internal/core"
	"github.com/vovakirdan/crisscross/internal/registry"
	"github.com/vovakirdan/crisscross/internal/scenarios"
)

var castCmd = &cobra.Command{
	Use:   "cast [scenario]",
	Short: "Trace a single ray",
	Long: `Print every tile-boundary crossing of a ray, nearest first.

Without a scenario the scene is read from --config (or the default search
path). Flags override the scene.

Examples:
  crisscross cast ray-30
  crisscross cast ray-45 --plot
  crisscross cast --angle 150 --origin 2,0.5,1,0.25`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, args, registry.KindRay)
	},
}

var beamCmd = &cobra.Command{
	Use:   "beam [scenario]",
	Short: "Trace a beam of parallel rays",
	Long: `Print the merged crossings of a fan of parallel rays spread across
--width, perpendicular to the cast direction. Each line carries the index of
the fan ray that produced it.

Examples:
  crisscross beam beam-0
  crisscross beam --width 2 --angle 120 --plot`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, args, registry.KindBeam)
	},
}

var crossingCmd = &cobra.Command{
	Use:   "crossing [scenario]",
	Short: "Find where a ray leaves the valid region",
	Long: `Walk a ray until the first crossing outside the valid region (or on a
blocked tile) and print it together with the last valid crossing before it.

Examples:
  crisscross crossing crossing-x2
  crisscross crossing --region 0,0,3,1 --angle 30 --origin 0,0,0,0`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, args, registry.KindCrossing)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{castCmd, beamCmd, crossingCmd} {
		addSceneFlags(cmd)
		addPlotFlags(cmd)
	}
	beamCmd.Flags().Float64Var(&flagWidth, "width", 0, "Beam width in world units")
	crossingCmd.Flags().StringVar(&flagRegion, "region", "", "Valid region as min_x,min_y,max_x,max_y")
}

func runQuery(cmd *cobra.Command, args []string, kind registry.Kind) error {
	scene, id, err := loadScene(cmd, args)
	if err != nil {
		return err
	}
	if kind == registry.KindBeam && !scene.Beam.Enabled {
		scene.Beam.Enabled = true
	}

	res, err := scenarios.Cast(scene, kind)
	if err != nil {
		return err
	}
	logger.Debug("cast", "scenario", id, "kind", kind, "angle", scene.Angle, "tiles", len(res.Records()))

	fmt.Printf("%s %s  grid %dx%d@%g  origin %s  angle %g°\n",
		kind, id, scene.Grid.Cols, scene.Grid.Rows, scene.Grid.TileSize,
		scene.OriginPosition().Rounded(3), scene.Angle)
	fmt.Println()

	switch kind {
	case registry.KindBeam:
		printBeam(res)
	case registry.KindCrossing:
		printCrossing(res)
	default:
		printTiles(res.Tiles)
	}

	if flagPlot {
		fmt.Println()
		return plotResult(res)
	}
	return nil
}

func printTiles(tiles []core.TilePosition) {
	if len(tiles) == 0 {
		fmt.Println("No crossings: the ray leaves the grid inside its first tile.")
		return
	}
	for i, tp := range tiles {
		fmt.Printf("  %3d  %s\n", i, tp)
	}
}

func printBeam(res scenarios.Result) {
	fmt.Printf("Fan of %d rays:\n", len(res.Origins))
	for i, o := range res.Origins {
		fmt.Printf("  ray %d  %s\n", i, o)
	}
	fmt.Println()

	if len(res.Intersects) == 0 {
		fmt.Println("No crossings.")
		return
	}
	for i, bi := range res.Intersects {
		fmt.Printf("  %3d  ray %d  %s\n", i, bi.Ray, bi.Tile)
	}
}

func printCrossing(res scenarios.Result) {
	printTiles(res.Tiles)
	fmt.Println()

	c := res.Crossing
	switch {
	case c.Valid == nil:
		fmt.Println("No crossing: the first tile is already invalid or the ray never crosses a boundary.")
	case c.Invalid == nil:
		fmt.Printf("Never leaves the valid region. Last valid: %s\n", c.Valid)
	default:
		fmt.Printf("Last valid:    %s\n", c.Valid)
		fmt.Printf("First invalid: %s\n", c.Invalid)
	}
}
