package physics

import (
	"fmt"
	"image/color"
	"math"

	"github.com/jakecoffman/cp"
)

// Shape wraps one engine body and its collider, doing the pixel/physical
// conversion on every read and write. A Shape owns its body for its entire
// lifetime; the body is released exactly once, through Registry.Delete.
type Shape struct {
	world *World
	id    uint64

	kind  BodyKind
	geom  Geometry
	color color.Color

	body  *cp.Body
	shape *cp.Shape

	// physical-space collider points kept for drawing; local to the body
	segA, segB cp.Vector   // Line endpoints
	polyVerts  []cp.Vector // Polygon vertices
}

// NewShape creates a body and collider in w from pixel-space geometry and
// registers it with the world. A Dynamic shape requires a material; Static
// and Kinematic shapes must not be given one, since they have no mass or
// contact response of their own.
func NewShape(w *World, kind BodyKind, geom Geometry, mat *Material, clr color.Color) (*Shape, error) {
	if err := geom.validate(); err != nil {
		return nil, err
	}

	switch kind {
	case Static, Kinematic:
		if mat != nil {
			return nil, fmt.Errorf("%w (kind %s)", ErrUnexpectedMaterial, kind)
		}
	case Dynamic:
		if mat == nil {
			return nil, ErrMissingMaterial
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}

	if clr == nil {
		clr = color.White
	}

	s := &Shape{
		world: w,
		kind:  kind,
		geom:  geom,
		color: clr,
	}
	s.build(mat)

	s.id = w.track(s)
	s.shape.UserData = s.id
	s.shape.SetCollisionType(shapeCollisionType)
	s.SetCollisionGroup(GroupDefault, GroupAll)

	if mat != nil {
		s.shape.SetDensity(mat.Density)
		s.shape.SetFriction(mat.Friction)
		s.shape.SetElasticity(mat.Restitution)
	}

	return s, nil
}

// build creates the engine body and collider. Circle and Rect bodies sit at
// the geometry's center; Line and Polygon bodies sit at the physical origin
// with their vertices as local coordinates, matching how the engine treats
// free-standing segments.
func (s *Shape) build(mat *Material) {
	conv := s.world.conv

	switch g := s.geom.(type) {
	case Circle:
		r := conv.ToPhysical(g.R)
		s.newBody(mat, func(density float64) (float64, float64) {
			mass := density * math.Pi * r * r
			return mass, cp.MomentForCircle(mass, 0, r, cp.Vector{})
		})
		s.body.SetPosition(conv.PosToPhysical(Vec{X: g.X, Y: g.Y}))
		s.shape = cp.NewCircle(s.body, r, cp.Vector{})

	case Rect:
		w := conv.ToPhysical(g.W)
		h := conv.ToPhysical(g.H)
		s.newBody(mat, func(density float64) (float64, float64) {
			mass := density * w * h
			return mass, cp.MomentForBox(mass, w, h)
		})
		center := Vec{X: g.X + g.W/2, Y: g.Y + g.H/2}
		s.body.SetPosition(conv.PosToPhysical(center))
		s.shape = cp.NewBox(s.body, w, h, 0)

	case Line:
		a := conv.PosToPhysical(Vec{X: g.X1, Y: g.Y1})
		b := conv.PosToPhysical(Vec{X: g.X2, Y: g.Y2})
		s.segA, s.segB = a, b
		thickness := conv.ToPhysical(1)
		s.newBody(mat, func(density float64) (float64, float64) {
			mass := density * a.Distance(b) * thickness
			return mass, cp.MomentForSegment(mass, a, b, thickness/2)
		})
		if s.kind == Dynamic {
			// No zero-thickness collider can carry mass, so a dynamic line
			// becomes a quad one pixel tall through both endpoints.
			a2 := conv.PosToPhysical(Vec{X: g.X1, Y: g.Y1 + 1})
			b2 := conv.PosToPhysical(Vec{X: g.X2, Y: g.Y2 + 1})
			verts := []cp.Vector{a, a2, b2, b}
			s.shape = cp.NewPolyShape(s.body, len(verts), verts, cp.NewTransformIdentity(), 0)
		} else {
			s.shape = cp.NewSegment(s.body, a, b, 0)
		}

	case Polygon:
		verts := make([]cp.Vector, len(g.Pts))
		for i, p := range g.Pts {
			verts[i] = conv.PosToPhysical(p)
		}
		s.polyVerts = verts
		s.newBody(mat, func(density float64) (float64, float64) {
			mass := density * polygonArea(verts)
			return mass, cp.MomentForPoly(mass, len(verts), verts, cp.Vector{}, 0)
		})
		s.shape = cp.NewPolyShape(s.body, len(verts), verts, cp.NewTransformIdentity(), 0)
	}

	s.world.space.AddBody(s.body)
	s.world.space.AddShape(s.shape)
}

// newBody selects the body-creation path by kind. massMoment is only
// consulted for Dynamic bodies.
func (s *Shape) newBody(mat *Material, massMoment func(density float64) (float64, float64)) {
	switch s.kind {
	case Static:
		s.body = cp.NewStaticBody()
	case Kinematic:
		s.body = cp.NewKinematicBody()
	case Dynamic:
		mass, moment := massMoment(mat.Density)
		s.body = cp.NewBody(mass, moment)
	}
}

func polygonArea(verts []cp.Vector) float64 {
	var sum float64
	for i, v := range verts {
		next := verts[(i+1)%len(verts)]
		sum += v.X*next.Y - next.X*v.Y
	}
	return math.Abs(sum) / 2
}

// Kind reports the shape's collision classification.
func (s *Shape) Kind() BodyKind {
	return s.kind
}

// Geometry returns the pixel-space geometry the shape was constructed with.
func (s *Shape) Geometry() Geometry {
	return s.geom
}

func (s *Shape) Color() color.Color {
	return s.color
}

func (s *Shape) SetColor(clr color.Color) {
	s.color = clr
}

// Body exposes the underlying engine body.
func (s *Shape) Body() *cp.Body {
	return s.body
}

// Collider exposes the underlying engine collider.
func (s *Shape) Collider() *cp.Shape {
	return s.shape
}

// Position returns the shape's pixel position: the center for a Circle, the
// top-left corner for a Rect, and the body origin for a Line or Polygon.
func (s *Shape) Position() Vec {
	p := s.world.conv.PosToPixels(s.body.Position())
	if r, ok := s.geom.(Rect); ok {
		p.X -= r.W / 2
		p.Y -= r.H / 2
	}
	return p
}

// SetPosition teleports the shape to a pixel position, using the same
// per-geometry convention as Position.
func (s *Shape) SetPosition(p Vec) {
	if r, ok := s.geom.(Rect); ok {
		p.X += r.W / 2
		p.Y += r.H / 2
	}
	s.body.SetPosition(s.world.conv.PosToPhysical(p))
	if s.kind == Static {
		// Static colliders are not re-cached by Step, so refresh their
		// bounds after a teleport.
		s.body.EachShape(func(sh *cp.Shape) {
			sh.CacheBB()
		})
	}
}

// Velocity returns the body's linear velocity in pixels per second.
func (s *Shape) Velocity() Vec {
	return s.world.conv.VelToPixels(s.body.Velocity())
}

// SetVelocity sets the body's linear velocity in pixels per second. This is
// the right way to drive a Kinematic shape, which responds to velocity, not
// to force.
func (s *Shape) SetVelocity(v Vec) {
	s.body.SetVelocityVector(s.world.conv.VelToPhysical(v))
}

// AngularVelocity returns the body's angular velocity in radians per second.
func (s *Shape) AngularVelocity() float64 {
	return s.body.AngularVelocity()
}

func (s *Shape) SetAngularVelocity(w float64) {
	s.body.SetAngularVelocity(w)
}

// mustMaterial guards the material accessors: only Dynamic shapes carry
// density, friction, and restitution. Calling these on a Static or Kinematic
// shape is a programming error at the call site.
func (s *Shape) mustMaterial() {
	if s.kind != Dynamic {
		panic(fmt.Sprintf("physics: %s shape carries no material", s.kind))
	}
}

func (s *Shape) Density() float64 {
	s.mustMaterial()
	return s.shape.Density()
}

func (s *Shape) SetDensity(density float64) {
	s.mustMaterial()
	s.shape.SetDensity(density)
}

func (s *Shape) Friction() float64 {
	s.mustMaterial()
	return s.shape.Friction()
}

func (s *Shape) SetFriction(friction float64) {
	s.mustMaterial()
	s.shape.SetFriction(friction)
}

func (s *Shape) Restitution() float64 {
	s.mustMaterial()
	return s.shape.Elasticity()
}

func (s *Shape) SetRestitution(restitution float64) {
	s.mustMaterial()
	s.shape.SetElasticity(restitution)
}

// SetCollisionGroup assigns the shape's collision category and the set of
// categories it collides with. Two shapes generate contacts only when the
// bitmask test passes both ways.
func (s *Shape) SetCollisionGroup(category, mask Group) {
	s.shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, uint(category), uint(mask)))
}

// CollisionGroup reports the shape's current category and mask.
func (s *Shape) CollisionGroup() (category, mask Group) {
	filter := s.shape.Filter
	return Group(filter.Categories), Group(filter.Mask)
}
