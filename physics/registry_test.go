package physics

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func countBodies(w *World) int {
	n := 0
	w.Space().EachBody(func(*cp.Body) {
		n++
	})
	return n
}

func TestRegistryAddIsSetSemantics(t *testing.T) {
	w := newTestWorld()
	reg := NewRegistry(w)

	s, err := NewShape(w, Static, Circle{X: 10, Y: 10, R: 5}, nil, nil)
	if err != nil {
		t.Fatalf("new shape: %v", err)
	}

	reg.Add(s)
	reg.Add(s)
	reg.Add(nil)
	if got := reg.Len(); got != 1 {
		t.Fatalf("len after duplicate add: got %d, want 1", got)
	}

	mat := DefaultMaterial()
	batch := make([]*Shape, 0, 3)
	for i := 0; i < 3; i++ {
		b, err := NewShape(w, Dynamic, Circle{X: float64(100 + 80*i), Y: 100, R: 10}, &mat, nil)
		if err != nil {
			t.Fatalf("new shape: %v", err)
		}
		batch = append(batch, b)
	}
	reg.Add(batch...)
	if got := reg.Len(); got != 4 {
		t.Fatalf("len after batch add: got %d, want 4", got)
	}
}

func TestRegistryDeleteIsIdempotent(t *testing.T) {
	w := newTestWorld()
	reg := NewRegistry(w)

	mat := DefaultMaterial()
	s, err := NewShape(w, Dynamic, Rect{X: 50, Y: 50, W: 20, H: 20}, &mat, nil)
	if err != nil {
		t.Fatalf("new shape: %v", err)
	}
	other, err := NewShape(w, Static, Line{X1: 0, Y1: 400, X2: 640, Y2: 400}, nil, nil)
	if err != nil {
		t.Fatalf("new shape: %v", err)
	}
	reg.Add(s, other)

	before := countBodies(w)
	reg.Delete(s)
	afterFirst := countBodies(w)
	if afterFirst != before-1 {
		t.Fatalf("first delete: body count %d -> %d, want one fewer", before, afterFirst)
	}
	if got := reg.Len(); got != 1 {
		t.Fatalf("len after delete: got %d, want 1", got)
	}

	// A second delete of the same shape, or of one never added, must not
	// reach the engine again.
	reg.Delete(s)
	stray, err := NewShape(w, Dynamic, Circle{X: 500, Y: 50, R: 2}, &mat, nil)
	if err != nil {
		t.Fatalf("new shape: %v", err)
	}
	reg.Delete(stray)
	if got := countBodies(w); got != afterFirst+1 {
		t.Fatalf("repeat delete changed the engine: body count %d, want %d", got, afterFirst+1)
	}
	if got := reg.Len(); got != 1 {
		t.Fatalf("len after repeat delete: got %d, want 1", got)
	}

	// The world can still step after deletions.
	w.Step()
}
