package system

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ghostlight/ecs"
	"github.com/milk9111/ghostlight/ecs/component"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

// Update advances every animator and copies the active frame into the
// entity's sprite.
func (a *AnimationSystem) Update(w *ecs.World, dt float64) {
	ecs.ForEach2(w, component.AnimatorComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, anim *component.Animator, sprite *component.Sprite) {
		if anim.Sheet == nil {
			return
		}
		def, ok := anim.Defs[anim.Current]
		if !ok || def.FrameCount <= 0 {
			return
		}

		anim.Advance(dt)

		x := (def.ColStart + anim.Frame) * def.FrameW
		y := def.Row * def.FrameH
		rect := image.Rect(x, y, x+def.FrameW, y+def.FrameH)
		sprite.Image = anim.Sheet.SubImage(rect).(*ebiten.Image)
	})
}
