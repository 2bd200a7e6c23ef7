package physics

import "github.com/jakecoffman/cp"

// collision type shared by every facade shape so one handler sees all pairs
const shapeCollisionType cp.CollisionType = 1

// Options configures a World. Zero fields fall back to the defaults below.
type Options struct {
	// ScreenHeight is the screen height in pixels, anchoring the y flip.
	ScreenHeight float64
	// PPM is the pixels-per-meter scale factor.
	PPM float64
	// Gravity is in pixels per second squared, y pointing down the screen.
	Gravity Vec
	// StepHz is the fixed simulation rate; Step advances by 1/StepHz seconds.
	StepHz int
	// Iterations is the solver iteration count per step.
	Iterations int
}

const (
	defaultScreenHeight = 480
	defaultPPM          = 20
	defaultStepHz       = 60
	defaultIterations   = 10
)

func (o Options) withDefaults() Options {
	if o.ScreenHeight <= 0 {
		o.ScreenHeight = defaultScreenHeight
	}
	if o.PPM <= 0 {
		o.PPM = defaultPPM
	}
	if o.StepHz <= 0 {
		o.StepHz = defaultStepHz
	}
	if o.Iterations <= 0 {
		o.Iterations = defaultIterations
	}
	return o
}

// World owns the engine space shared by a set of shapes. It is not safe for
// concurrent use; create shapes, mutate them, and call Step from a single
// control loop.
type World struct {
	space *cp.Space
	conv  Converter

	stepDT float64

	nextID   uint64
	shapes   map[uint64]*Shape
	touching map[contactKey]struct{}
}

// Contact is a pair of shapes whose colliders overlap as of the last Step.
// Pairs rejected by collision-group filtering never appear.
type Contact struct {
	A, B *Shape
}

type contactKey struct {
	a, b uint64
}

func makeContactKey(a, b uint64) contactKey {
	if a > b {
		a, b = b, a
	}
	return contactKey{a: a, b: b}
}

func NewWorld(opts Options) *World {
	opts = opts.withDefaults()

	conv := Converter{PPM: opts.PPM, ScreenHeight: opts.ScreenHeight}

	space := cp.NewSpace()
	space.Iterations = uint(opts.Iterations)
	space.SetGravity(conv.VelToPhysical(opts.Gravity))

	w := &World{
		space:    space,
		conv:     conv,
		stepDT:   1.0 / float64(opts.StepHz),
		shapes:   map[uint64]*Shape{},
		touching: map[contactKey]struct{}{},
	}

	handler := space.NewCollisionHandler(shapeCollisionType, shapeCollisionType)
	handler.UserData = w
	handler.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, userData interface{}) bool {
		world := userData.(*World)
		if key, ok := arbiterKey(arb); ok {
			world.touching[key] = struct{}{}
		}
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, _ *cp.Space, userData interface{}) {
		world := userData.(*World)
		if key, ok := arbiterKey(arb); ok {
			delete(world.touching, key)
		}
	}

	return w
}

func arbiterKey(arb *cp.Arbiter) (contactKey, bool) {
	sa, sb := arb.Shapes()
	ida, okA := sa.UserData.(uint64)
	idb, okB := sb.UserData.(uint64)
	if !okA || !okB {
		return contactKey{}, false
	}
	return makeContactKey(ida, idb), true
}

// Space exposes the underlying engine space for callers that need raw access.
func (w *World) Space() *cp.Space {
	return w.space
}

// Converter returns the pixel/physical converter bound to this world.
func (w *World) Converter() Converter {
	return w.conv
}

// StepDT returns the fixed time delta one Step advances by, in seconds.
func (w *World) StepDT() float64 {
	return w.stepDT
}

// Step advances the simulation by the fixed time delta.
func (w *World) Step() {
	w.space.Step(w.stepDT)
}

// SetGravity replaces the world gravity, given in pixels per second squared
// with y pointing down the screen.
func (w *World) SetGravity(g Vec) {
	w.space.SetGravity(w.conv.VelToPhysical(g))
}

// Contacts returns the shape pairs touching as of the last Step, in
// unspecified order. Pairs involving deleted shapes are dropped.
func (w *World) Contacts() []Contact {
	if len(w.touching) == 0 {
		return nil
	}
	contacts := make([]Contact, 0, len(w.touching))
	for key := range w.touching {
		a, okA := w.shapes[key.a]
		b, okB := w.shapes[key.b]
		if !okA || !okB {
			continue
		}
		contacts = append(contacts, Contact{A: a, B: b})
	}
	return contacts
}

func (w *World) track(s *Shape) uint64 {
	w.nextID++
	w.shapes[w.nextID] = s
	return w.nextID
}

// destroy removes a shape's collider and body from the engine. It is called
// exactly once per shape, by Registry.Delete.
func (w *World) destroy(s *Shape) {
	if _, ok := w.shapes[s.id]; !ok {
		return
	}
	delete(w.shapes, s.id)
	for key := range w.touching {
		if key.a == s.id || key.b == s.id {
			delete(w.touching, key)
		}
	}
	w.space.RemoveShape(s.shape)
	w.space.RemoveBody(s.body)
}
