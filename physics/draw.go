package physics

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Draw renders the shape's current transformed geometry in pixel space.
func (s *Shape) Draw(screen *ebiten.Image) {
	conv := s.world.conv

	switch g := s.geom.(type) {
	case Circle:
		center := conv.PosToPixels(s.body.Position())
		vector.DrawFilledCircle(screen, float32(center.X), float32(center.Y), float32(g.R), s.color, true)

	case Rect:
		if s.body.Angle() == 0 {
			p := s.Position()
			vector.FillRect(screen, float32(p.X), float32(p.Y), float32(g.W), float32(g.H), s.color, true)
			return
		}
		w := conv.ToPhysical(g.W)
		h := conv.ToPhysical(g.H)
		corners := []cp.Vector{
			{X: -w / 2, Y: -h / 2},
			{X: w / 2, Y: -h / 2},
			{X: w / 2, Y: h / 2},
			{X: -w / 2, Y: h / 2},
		}
		s.fillLocalPolygon(screen, corners)

	case Line:
		a := conv.PosToPixels(s.body.LocalToWorld(s.segA))
		b := conv.PosToPixels(s.body.LocalToWorld(s.segB))
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, s.color, true)

	case Polygon:
		s.fillLocalPolygon(screen, s.polyVerts)
	}
}

// fillLocalPolygon fills the polygon given by body-local physical vertices,
// transformed through the body and converted to pixels.
func (s *Shape) fillLocalPolygon(screen *ebiten.Image, local []cp.Vector) {
	if len(local) < 3 {
		return
	}
	conv := s.world.conv

	var path vector.Path
	for i, v := range local {
		p := conv.PosToPixels(s.body.LocalToWorld(v))
		if i == 0 {
			path.MoveTo(float32(p.X), float32(p.Y))
		} else {
			path.LineTo(float32(p.X), float32(p.Y))
		}
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	cr, cg, cb, ca := s.color.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(cr) / 0xffff
		vs[i].ColorG = float32(cg) / 0xffff
		vs[i].ColorB = float32(cb) / 0xffff
		vs[i].ColorA = float32(ca) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vs, is, whiteSubImage, op)
}
