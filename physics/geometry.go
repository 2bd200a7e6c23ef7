package physics

import (
	"errors"
	"fmt"
)

// Geometry describes a shape's collider in pixel space. The variants are
// Circle, Rect, Line, and Polygon.
type Geometry interface {
	validate() error
	geometry() // sealed
}

// Circle is a circle with center (X, Y) and radius R, all in pixels.
type Circle struct {
	X, Y float64
	R    float64
}

// Rect is an axis-aligned box whose top-left corner sits at (X, Y) with pixel
// size W x H. The engine wants a center position and half-extents; the
// constructor shifts by half the size before flipping and halves the size
// before scaling.
type Rect struct {
	X, Y float64
	W, H float64
}

// Line is a segment between two pixel points. Static and Kinematic lines are
// zero-thickness edges. A Dynamic line has no zero-thickness mass-bearing
// representation, so it becomes a one-pixel-tall quadrilateral through both
// endpoints; contact behavior depends on this thin polygon, keep it.
type Line struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Polygon is a convex polygon given by its pixel vertices in any winding.
type Polygon struct {
	Pts []Vec
}

func (Circle) geometry()  {}
func (Rect) geometry()    {}
func (Line) geometry()    {}
func (Polygon) geometry() {}

func (c Circle) validate() error {
	if c.R <= 0 {
		return fmt.Errorf("physics: circle radius must be positive, got %v", c.R)
	}
	return nil
}

func (r Rect) validate() error {
	if r.W <= 0 || r.H <= 0 {
		return fmt.Errorf("physics: rect size must be positive, got %vx%v", r.W, r.H)
	}
	return nil
}

func (l Line) validate() error {
	if l.X1 == l.X2 && l.Y1 == l.Y2 {
		return errors.New("physics: line endpoints must differ")
	}
	return nil
}

func (p Polygon) validate() error {
	if len(p.Pts) < 3 {
		return fmt.Errorf("physics: polygon needs at least 3 vertices, got %d", len(p.Pts))
	}
	return nil
}
