package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/ghostlight/geom"
	"github.com/milk9111/ghostlight/physics"
)

// InputSystem polls the keyboard and mouse and feeds the simulation.
type InputSystem struct {
	sim *physics.World
}

func NewInputSystem(sim *physics.World) *InputSystem {
	return &InputSystem{sim: sim}
}

func (i *InputSystem) Update() {
	if i == nil || i.sim == nil {
		return
	}

	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	up := ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	down := ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	sprint := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	hide := ebiten.IsKeyPressed(ebiten.KeyC)

	i.sim.SetPlayerInput(left, right, up, down, sprint, hide)

	mx, my := ebiten.CursorPosition()
	flashlightToggle := inpututil.IsKeyJustPressed(ebiten.KeyF) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	i.sim.SetMouseInput(geom.Vec{X: float64(mx), Y: float64(my)}, flashlightToggle)
}
