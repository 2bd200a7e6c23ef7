package physics

import "github.com/hajimehoshi/ebiten/v2"

// Registry tracks the live set of shapes sharing one world and is the sole
// authority for destroying them. Shapes are tracked by identity; insertion
// order is irrelevant and draw order is unspecified.
type Registry struct {
	world  *World
	shapes map[*Shape]struct{}
}

func NewRegistry(w *World) *Registry {
	return &Registry{
		world:  w,
		shapes: map[*Shape]struct{}{},
	}
}

// Add inserts shapes into the tracked set. Adding a shape twice is a no-op.
func (r *Registry) Add(shapes ...*Shape) {
	for _, s := range shapes {
		if s == nil {
			continue
		}
		r.shapes[s] = struct{}{}
	}
}

// Delete removes a shape from the tracked set and destroys its engine body.
// Deleting an absent shape is a no-op, so double deletion never reaches the
// engine twice: removal from the set happens before destruction.
func (r *Registry) Delete(s *Shape) {
	if s == nil {
		return
	}
	if _, ok := r.shapes[s]; !ok {
		return
	}
	delete(r.shapes, s)
	r.world.destroy(s)
}

// Len reports the number of tracked shapes.
func (r *Registry) Len() int {
	return len(r.shapes)
}

// DrawAll draws every tracked shape in unspecified order. Don't rely on it
// for z-ordering.
func (r *Registry) DrawAll(screen *ebiten.Image) {
	for s := range r.shapes {
		s.Draw(screen)
	}
}
