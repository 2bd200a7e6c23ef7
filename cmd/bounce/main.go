// Command bounce is a minimal gravity scene: a ball bouncing between a
// movable static box and a diagonal line.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/colornames"

	"github.com/mkarls/pixelphys/config"
	"github.com/mkarls/pixelphys/physics"
)

type game struct {
	cfg      config.Config
	world    *physics.World
	registry *physics.Registry

	box *physics.Shape
}

func newGame(cfg config.Config) *game {
	world := physics.NewWorld(physics.Options{
		ScreenHeight: float64(cfg.ScreenHeight),
		PPM:          cfg.PPM,
		Gravity:      physics.Vec{X: 0, Y: 200},
		StepHz:       cfg.TargetFPS,
		Iterations:   cfg.Iterations,
	})
	registry := physics.NewRegistry(world)

	g := &game{cfg: cfg, world: world, registry: registry}

	var err error
	g.box, err = physics.NewShape(world, physics.Static, physics.Rect{X: 100, Y: 350, W: 200, H: 50}, nil, colornames.Cornflowerblue)
	if err != nil {
		log.Fatal(err)
	}

	mat := physics.Material{Density: 1, Friction: 0, Restitution: 1}
	ball, err := physics.NewShape(world, physics.Dynamic, physics.Circle{X: 150, Y: 250, R: 10}, &mat, colornames.Lightgreen)
	if err != nil {
		log.Fatal(err)
	}
	ball.SetVelocity(physics.Vec{X: 32, Y: 0})

	sw := float64(cfg.ScreenWidth)
	sh := float64(cfg.ScreenHeight)
	line, err := physics.NewShape(world, physics.Static, physics.Line{X1: 10, Y1: 10, X2: sw - 10, Y2: sh - 10}, nil, colornames.Coral)
	if err != nil {
		log.Fatal(err)
	}

	registry.Add(g.box, ball, line)
	return g
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	direction := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		direction += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		direction -= 1
	}
	pos := g.box.Position()
	g.box.SetPosition(physics.Vec{X: pos.X + direction*3, Y: pos.Y})

	g.world.Step()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.registry.DrawAll(screen)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  A/D move the box, Esc quit", ebiten.ActualFPS()))
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to the yaml config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("pixelphys bounce")
	ebiten.SetTPS(cfg.TargetFPS)

	if err := ebiten.RunGame(newGame(cfg)); err != nil {
		log.Fatal(err)
	}
}
