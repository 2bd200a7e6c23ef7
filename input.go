package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the input state polled once per loop iteration.
type Input struct {
	// MoveX is -1 for left (A), +1 for right (D).
	MoveX float64
	// MoveY is -1 for up (W), +1 for down (S), in screen direction.
	MoveY float64
	// DeletePressed is true on the frame Q is pressed.
	DeletePressed bool
	// QuitPressed is true on the frame Escape is pressed.
	QuitPressed bool
	// MouseX/MouseY are the cursor position in pixels.
	MouseX float64
	MouseY float64
	// MouseDX/MouseDY are the cursor motion since the previous frame.
	MouseDX float64
	MouseDY float64

	prevMouseX float64
	prevMouseY float64
	hasPrev    bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard and mouse for this frame.
func (i *Input) Update() {
	i.MoveX = 0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		i.MoveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		i.MoveX += 1
	}

	i.MoveY = 0
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		i.MoveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		i.MoveY += 1
	}

	i.DeletePressed = inpututil.IsKeyJustPressed(ebiten.KeyQ)
	i.QuitPressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	mx, my := ebiten.CursorPosition()
	i.MouseX = float64(mx)
	i.MouseY = float64(my)
	if i.hasPrev {
		i.MouseDX = i.MouseX - i.prevMouseX
		i.MouseDY = i.MouseY - i.prevMouseY
	}
	i.prevMouseX = i.MouseX
	i.prevMouseY = i.MouseY
	i.hasPrev = true
}
