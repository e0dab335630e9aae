package canvas

// Color represents a foreground color for a canvas cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorBrightYellow
	ColorOrange
	ColorGray
)

// Roles used by the plotters.
const (
	ColorGrid     = ColorGray
	ColorOrigin   = ColorBrightYellow
	ColorRay      = ColorCyan
	ColorCrossing = ColorGreen
	ColorInvalid  = ColorRed
	ColorBlocked  = ColorMagenta
	ColorRegion   = ColorBlue
)

// rayPalette colors beam crossings by ray index.
var rayPalette = []Color{ColorCyan, ColorGreen, ColorOrange, ColorMagenta, ColorYellow, ColorBlue}

// RayColor returns the color used for the ray at index i of a beam.
func RayColor(i int) Color {
	if i < 0 {
		i = -i
	}
	return rayPalette[i%len(rayPalette)]
}
