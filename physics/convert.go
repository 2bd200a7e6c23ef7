package physics

import "github.com/jakecoffman/cp"

// Vec is a point or vector in pixel space (origin top-left, y down).
type Vec struct {
	X float64
	Y float64
}

// Converter translates between pixel space and the engine's physical space.
// Pixel space has its origin at the top-left of the screen with y increasing
// downward; the engine works in meters with y increasing upward. Positions
// are flipped in pixel space first, then scaled; the inverse applies the
// steps in the opposite order. Velocities only negate y since a vector has
// no anchor to translate.
type Converter struct {
	// PPM is the pixels-per-meter scale factor.
	PPM float64
	// ScreenHeight is the screen height in pixels, used to flip positions.
	ScreenHeight float64
}

func (c Converter) ToPhysical(px float64) float64 {
	return px / c.PPM
}

func (c Converter) ToPixels(m float64) float64 {
	return m * c.PPM
}

func (c Converter) FlipY(p Vec) Vec {
	return Vec{X: p.X, Y: c.ScreenHeight - p.Y}
}

func (c Converter) FlipVelY(v Vec) Vec {
	return Vec{X: v.X, Y: -v.Y}
}

// PosToPhysical converts a pixel position to an engine position.
func (c Converter) PosToPhysical(p Vec) cp.Vector {
	f := c.FlipY(p)
	return cp.Vector{X: c.ToPhysical(f.X), Y: c.ToPhysical(f.Y)}
}

// PosToPixels converts an engine position to a pixel position.
func (c Converter) PosToPixels(v cp.Vector) Vec {
	return c.FlipY(Vec{X: c.ToPixels(v.X), Y: c.ToPixels(v.Y)})
}

// VelToPhysical converts a pixels-per-second velocity to engine units.
func (c Converter) VelToPhysical(p Vec) cp.Vector {
	f := c.FlipVelY(p)
	return cp.Vector{X: c.ToPhysical(f.X), Y: c.ToPhysical(f.Y)}
}

// VelToPixels converts an engine velocity to pixels per second.
func (c Converter) VelToPixels(v cp.Vector) Vec {
	return c.FlipVelY(Vec{X: c.ToPixels(v.X), Y: c.ToPixels(v.Y)})
}
