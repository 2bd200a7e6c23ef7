package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"

	"github.com/mkarls/pixelphys/config"
	"github.com/mkarls/pixelphys/physics"
)

const driveSpeed = 400 // pixels per second for the kinematic shapes

type Game struct {
	cfg     config.Config
	watcher *config.Watcher

	input    *Input
	world    *physics.World
	registry *physics.Registry

	kinematicRect    *physics.Shape
	kinematicCircle  *physics.Shape
	kinematicLine    *physics.Shape
	kinematicPolygon *physics.Shape
	dynamicRect      *physics.Shape
	dynamicCircle    *physics.Shape
	mouseBall        *physics.Shape
}

func mustShape(s *physics.Shape, err error) *physics.Shape {
	if err != nil {
		log.Fatalf("create shape: %v", err)
	}
	return s
}

func NewGame(cfg config.Config, watcher *config.Watcher) *Game {
	world := physics.NewWorld(physics.Options{
		ScreenHeight: float64(cfg.ScreenHeight),
		PPM:          cfg.PPM,
		Gravity:      physics.Vec{X: cfg.Gravity.X, Y: cfg.Gravity.Y},
		StepHz:       cfg.TargetFPS,
		Iterations:   cfg.Iterations,
	})
	registry := physics.NewRegistry(world)

	g := &Game{
		cfg:      cfg,
		watcher:  watcher,
		input:    NewInput(),
		world:    world,
		registry: registry,
	}

	sw := float64(cfg.ScreenWidth)
	sh := float64(cfg.ScreenHeight)

	// Border lines keep everything on screen.
	registry.Add(
		mustShape(physics.NewShape(world, physics.Static, physics.Line{X1: 10, Y1: 10, X2: sw - 10, Y2: 10}, nil, colornames.Coral)),
		mustShape(physics.NewShape(world, physics.Static, physics.Line{X1: sw - 10, Y1: 10, X2: sw - 10, Y2: sh - 10}, nil, colornames.Coral)),
		mustShape(physics.NewShape(world, physics.Static, physics.Line{X1: sw - 10, Y1: sh - 10, X2: 10, Y2: sh - 10}, nil, colornames.Coral)),
		mustShape(physics.NewShape(world, physics.Static, physics.Line{X1: 10, Y1: sh - 10, X2: 10, Y2: 10}, nil, colornames.Coral)),
	)

	octagon := physics.Polygon{Pts: []physics.Vec{
		{X: 300, Y: 80}, {X: 320, Y: 80}, {X: 340, Y: 100}, {X: 340, Y: 120},
		{X: 320, Y: 140}, {X: 300, Y: 140}, {X: 280, Y: 120}, {X: 280, Y: 100},
	}}

	bouncy := physics.Material{Density: 1, Friction: 0, Restitution: 0.7}

	g.kinematicRect = mustShape(physics.NewShape(world, physics.Kinematic, physics.Rect{X: 100, Y: 350, W: 120, H: 50}, nil, colornames.Cornflowerblue))
	g.kinematicCircle = mustShape(physics.NewShape(world, physics.Kinematic, physics.Circle{X: 370, Y: 275, R: 25}, nil, colornames.Deepskyblue))
	g.kinematicLine = mustShape(physics.NewShape(world, physics.Kinematic, physics.Line{X1: 30, Y1: 20, X2: 130, Y2: 100}, nil, colornames.Violet))
	g.kinematicPolygon = mustShape(physics.NewShape(world, physics.Kinematic, octagon, nil, colornames.Mediumpurple))
	g.dynamicRect = mustShape(physics.NewShape(world, physics.Dynamic, physics.Rect{X: 200, Y: 250, W: 25, H: 45}, &bouncy, colornames.Cadetblue))
	g.dynamicCircle = mustShape(physics.NewShape(world, physics.Dynamic, physics.Circle{X: 150, Y: 250, R: 30}, &bouncy, colornames.Lightgreen))
	g.mouseBall = mustShape(physics.NewShape(world, physics.Kinematic, physics.Circle{X: 500, Y: 150, R: 10}, nil, colornames.White))

	dynLineMat := physics.Material{Density: 1, Friction: 0, Restitution: 1}
	dynPolyMat := physics.DefaultMaterial()
	registry.Add(
		g.kinematicRect, g.kinematicCircle, g.kinematicLine, g.kinematicPolygon,
		g.dynamicRect, g.dynamicCircle, g.mouseBall,
		mustShape(physics.NewShape(world, physics.Dynamic, physics.Line{X1: 10, Y1: 10, X2: 100, Y2: 10}, &dynLineMat, colornames.Yellow)),
		mustShape(physics.NewShape(world, physics.Static, physics.Circle{X: 320, Y: 275, R: 25}, nil, colornames.Springgreen)),
		mustShape(physics.NewShape(world, physics.Static, physics.Rect{X: 230, Y: 250, W: 25, H: 45}, nil, colornames.Slategray)),
		mustShape(physics.NewShape(world, physics.Dynamic, octagon, &dynPolyMat, colornames.Seagreen)),
	)

	g.dynamicCircle.SetVelocity(physics.Vec{X: 350, Y: -450})

	// The dynamic circle only collides with default-group shapes, and the
	// mouse ball lives in its own group so it can pass through everything
	// except the scene geometry.
	g.dynamicCircle.SetCollisionGroup(physics.GroupSecond, physics.GroupDefault)
	g.mouseBall.SetCollisionGroup(physics.GroupThird, physics.GroupDefault)

	return g
}

func (g *Game) Update() error {
	g.input.Update()
	if g.input.QuitPressed {
		return ebiten.Termination
	}

	g.reloadConfig()

	drive := physics.Vec{X: g.input.MoveX * driveSpeed, Y: g.input.MoveY * driveSpeed}
	for _, s := range []*physics.Shape{g.kinematicRect, g.kinematicCircle, g.kinematicLine, g.kinematicPolygon} {
		s.SetVelocity(drive)
	}

	// Carry the mouse's velocity into the probe ball so contacts push
	// dynamic shapes convincingly, then snap it to the cursor.
	fps := float64(g.cfg.TargetFPS)
	g.mouseBall.SetVelocity(physics.Vec{X: g.input.MouseDX * fps, Y: g.input.MouseDY * fps})
	g.mouseBall.SetPosition(physics.Vec{X: g.input.MouseX, Y: g.input.MouseY})

	if g.input.DeletePressed {
		g.registry.Delete(g.kinematicRect)
	}

	// Jitter keeps the demo ball bouncing around.
	g.dynamicCircle.SetAngularVelocity(rand.Float64()*50 - 25)
	g.dynamicCircle.SetFriction(rand.Float64() * 0.2)

	g.world.Step()

	for _, c := range g.world.Contacts() {
		if (c.A == g.kinematicLine && c.B == g.dynamicRect) ||
			(c.B == g.kinematicLine && c.A == g.dynamicRect) {
			log.Println("collision between the kinematic line and the dynamic rect")
		}
	}

	return nil
}

// reloadConfig applies gravity changes from the config file without a
// restart, if a watcher was started.
func (g *Game) reloadConfig() {
	if g.watcher == nil {
		return
	}
	select {
	case path, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		cfg, err := config.Load(path)
		if err != nil {
			log.Printf("reload config: %v", err)
			return
		}
		g.cfg.Gravity = cfg.Gravity
		g.world.SetGravity(physics.Vec{X: cfg.Gravity.X, Y: cfg.Gravity.Y})
		log.Printf("config reloaded, gravity (%v, %v)", cfg.Gravity.X, cfg.Gravity.Y)
	case err, ok := <-g.watcher.Errors:
		if !ok {
			g.watcher = nil
			return
		}
		if err != nil {
			log.Printf("config watcher: %v", err)
		}
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.registry.DrawAll(screen)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  shapes: %d  WASD drive, mouse probe, Q delete, Esc quit", ebiten.ActualFPS(), g.registry.Len()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}
