package physics

import (
	"math"
	"testing"
)

func TestConverterRoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		ppm    float64
		height float64
		p      Vec
	}{
		{"origin", 20, 480, Vec{X: 0, Y: 0}},
		{"center", 20, 480, Vec{X: 320, Y: 240}},
		{"bottom_right", 20, 480, Vec{X: 640, Y: 480}},
		{"offscreen", 20, 480, Vec{X: -35.5, Y: 612.25}},
		{"other_scale", 32, 720, Vec{X: 101.125, Y: 47}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			conv := Converter{PPM: c.ppm, ScreenHeight: c.height}
			got := conv.PosToPixels(conv.PosToPhysical(c.p))
			if math.Abs(got.X-c.p.X) > 1e-9 || math.Abs(got.Y-c.p.Y) > 1e-9 {
				t.Fatalf("position round trip: got (%v, %v), want (%v, %v)", got.X, got.Y, c.p.X, c.p.Y)
			}
			gotV := conv.VelToPixels(conv.VelToPhysical(c.p))
			if math.Abs(gotV.X-c.p.X) > 1e-9 || math.Abs(gotV.Y-c.p.Y) > 1e-9 {
				t.Fatalf("velocity round trip: got (%v, %v), want (%v, %v)", gotV.X, gotV.Y, c.p.X, c.p.Y)
			}
		})
	}
}

func TestConverterFlipAndScale(t *testing.T) {
	conv := Converter{PPM: 20, ScreenHeight: 480}

	// Flip is an involution anchored at the screen height.
	p := Vec{X: 100, Y: 350}
	if got := conv.FlipY(conv.FlipY(p)); got != p {
		t.Fatalf("double flip: got %v, want %v", got, p)
	}
	if got := conv.FlipY(p); got.Y != 130 {
		t.Fatalf("flip y: got %v, want 130", got.Y)
	}

	// Velocity flips have no translation term.
	v := Vec{X: 400, Y: -50}
	if got := conv.FlipVelY(v); got.X != 400 || got.Y != 50 {
		t.Fatalf("flip velocity: got %v", got)
	}

	if got := conv.ToPhysical(100); got != 5 {
		t.Fatalf("to physical: got %v, want 5", got)
	}
	if got := conv.ToPixels(5); got != 100 {
		t.Fatalf("to pixels: got %v, want 100", got)
	}
}

// Flipping before scaling matters: doing it in the wrong order skews every
// round trip by the screen height. The composed helpers must agree with the
// documented order.
func TestConverterComposedOrder(t *testing.T) {
	conv := Converter{PPM: 20, ScreenHeight: 480}
	p := Vec{X: 100, Y: 350}

	f := conv.FlipY(p)
	want := conv.PosToPhysical(p)
	if got := (Vec{X: conv.ToPhysical(f.X), Y: conv.ToPhysical(f.Y)}); got.X != want.X || got.Y != want.Y {
		t.Fatalf("composed conversion disagrees with flip-then-scale: got %v, want %v", got, want)
	}
}
