package core

import (
	"fmt"
	"math"
)

const (
	deg90  = math.Pi * 0.5
	deg270 = math.Pi * 1.5
	tau    = math.Pi * 2
)

// Angle is a direction in radians, measured counter-clockwise from the
// positive x axis (grid origin at the bottom left).
type Angle float64

// FromDegrees converts degrees to an Angle.
func FromDegrees(deg float64) Angle {
	return Angle(deg * math.Pi / 180)
}

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 {
	return float64(a) * 180 / math.Pi
}

// Radians returns the raw radian value.
func (a Angle) Radians() float64 {
	return float64(a)
}

// Clamp maps the angle into [0, 2π).
// Values within Epsilon of a full turn snap to 0 so that 360° classifies
// exactly like 0°.
func (a Angle) Clamp() Angle {
	r := math.Mod(float64(a), tau)
	if r < 0 {
		r += tau
	}
	if tau-r < Epsilon {
		r = 0
	}
	return Angle(r)
}

// Opposite returns the angle rotated by -π. The result is not clamped.
func (a Angle) Opposite() Angle {
	return a - math.Pi
}

// Sin returns the sine of the angle.
func (a Angle) Sin() float64 {
	return math.Sin(float64(a))
}

// Cos returns the cosine of the angle.
func (a Angle) Cos() float64 {
	return math.Cos(float64(a))
}

// Tan returns the tangent of the angle.
func (a Angle) Tan() float64 {
	return math.Tan(float64(a))
}

// Validate returns ErrInvalidAngle for NaN or infinite values.
func (a Angle) Validate() error {
	f := float64(a)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidAngle, f)
	}
	return nil
}

// DirectionX is the horizontal step direction of a ray.
type DirectionX uint8

const (
	Right DirectionX = iota
	Left
	ParallelX // never crosses a vertical grid line
)

// String returns the string representation of a direction.
func (d DirectionX) String() string {
	switch d {
	case Right:
		return "Right"
	case Left:
		return "Left"
	case ParallelX:
		return "Parallel"
	default:
		return "Unknown"
	}
}

// DirectionY is the vertical step direction of a ray.
type DirectionY uint8

const (
	Up DirectionY = iota
	Down
	ParallelY // never crosses a horizontal grid line
)

// String returns the string representation of a direction.
func (d DirectionY) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case ParallelY:
		return "Parallel"
	default:
		return "Unknown"
	}
}

// DirectionX classifies the angle horizontally. The angle is used as is, so
// callers that need [0, 2π) semantics must Clamp first.
func (a Angle) DirectionX() DirectionX {
	x := float64(a)
	switch {
	case FloatsEqual(x, deg90) || FloatsEqual(x, deg270):
		return ParallelX
	case x < deg90 || x > deg270:
		return Right
	default:
		return Left
	}
}

// DirectionY classifies the angle vertically. See DirectionX.
func (a Angle) DirectionY() DirectionY {
	y := float64(a)
	switch {
	case FloatsEqual(y, 0) || FloatsEqual(y, math.Pi):
		return ParallelY
	case y < math.Pi:
		return Up
	default:
		return Down
	}
}
