package physics

import "errors"

// BodyKind selects a shape's collision behavior. It is chosen at construction
// and never changes; turning a static wall into a dynamic crate means
// deleting the shape and building a new one.
type BodyKind int

const (
	// Static bodies never move and have infinite mass.
	Static BodyKind = iota
	// Kinematic bodies move by prescribed velocity and ignore forces and
	// collisions. Drive them with SetVelocity.
	Kinematic
	// Dynamic bodies respond fully to gravity, forces, and contacts.
	Dynamic
)

func (k BodyKind) String() string {
	switch k {
	case Static:
		return "static"
	case Kinematic:
		return "kinematic"
	case Dynamic:
		return "dynamic"
	default:
		return "unknown"
	}
}

var (
	// ErrMissingMaterial is returned when a Dynamic shape is constructed
	// without material properties.
	ErrMissingMaterial = errors.New("physics: dynamic shape requires a material")
	// ErrUnexpectedMaterial is returned when a Static or Kinematic shape is
	// constructed with material properties it cannot carry.
	ErrUnexpectedMaterial = errors.New("physics: static/kinematic shape cannot carry a material")
	// ErrUnknownKind is returned for a BodyKind outside Static/Kinematic/Dynamic.
	ErrUnknownKind = errors.New("physics: unknown body kind")
)

// Material holds the physical surface properties attached to a Dynamic
// shape's collider. All values are non-negative; restitution is usually in
// [0, 1] but is not clamped. Mutating a live shape goes through the Shape
// setters, not this struct.
type Material struct {
	Density     float64
	Friction    float64
	Restitution float64
}

// DefaultMaterial mirrors the defaults of the original facade: unit density,
// frictionless, perfectly bouncy.
func DefaultMaterial() Material {
	return Material{Density: 1, Friction: 0, Restitution: 1}
}

// Group is a fixed-width collision-category bitmask. A shape carries a
// category (the groups it belongs to) and a mask (the groups it collides
// with); two shapes generate contacts only when each one's category
// intersects the other's mask.
type Group uint

// GroupNone matches no category; GroupAll matches every category.
const (
	GroupNone Group = 0
	GroupAll  Group = ^Group(0)
)

const (
	// GroupDefault is the category every shape starts in.
	GroupDefault Group = 1 << iota
	GroupSecond
	GroupThird
)
