package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/ghostlight/assets"
	"github.com/milk9111/ghostlight/ecs"
	"github.com/milk9111/ghostlight/ecs/component"
	"github.com/milk9111/ghostlight/prefabs"
)

var shadeColor = color.RGBA{R: 0x22, G: 0x10, B: 0x33, A: 0xd0}

// NewShade builds a script-driven apparition from its authored spec,
// targeting the given entity.
func NewShade(w *ecs.World, spec prefabs.ShadeSpec, target ecs.Entity) (ecs.Entity, error) {
	if w == nil {
		return ecs.Entity{}, fmt.Errorf("entity: world is nil")
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X: spec.Spawn.X, Y: spec.Spawn.Y, ScaleX: 1, ScaleY: 1,
	}); err != nil {
		return ecs.Entity{}, err
	}

	width, height := spec.Size.X, spec.Size.Y
	if width <= 0 {
		width = 28
	}
	if height <= 0 {
		height = 28
	}
	if err := ecs.Add(w, e, component.SizeComponent.Kind(), &component.Size{Width: width, Height: height}); err != nil {
		return ecs.Entity{}, err
	}

	if err := ecs.Add(w, e, component.AIAgentComponent.Kind(), &component.AIAgent{
		ChaseSpeed:         spec.ChaseSpeed,
		DetectionRange:     spec.DetectionRange,
		Target:             component.EntityRef(target),
		PathfindingEnabled: spec.Pathfinding,
	}); err != nil {
		return ecs.Entity{}, err
	}

	if err := ecs.Add(w, e, component.TagComponent.Kind(), &component.Tag{Name: "Shade"}); err != nil {
		return ecs.Entity{}, err
	}

	if spec.Script != "" {
		if err := ecs.Add(w, e, component.AIScriptComponent.Kind(), &component.AIScript{Path: spec.Script}); err != nil {
			return ecs.Entity{}, err
		}
		if err := ecs.Add(w, e, component.AIStateComponent.Kind(), &component.AIState{}); err != nil {
			return ecs.Entity{}, err
		}
	}

	if err := addShadeVisuals(w, e, spec, int(width), int(height)); err != nil {
		return ecs.Entity{}, err
	}
	return e, nil
}

func addShadeVisuals(w *ecs.World, e ecs.Entity, spec prefabs.ShadeSpec, width, height int) error {
	anim := &component.Animator{Defs: map[string]component.AnimationDef{}}
	sheetW, sheetH := width, height
	for name, def := range spec.Animation.Defs {
		anim.Defs[name] = component.AnimationDef{
			Name:       name,
			Row:        def.Row,
			ColStart:   def.ColStart,
			FrameCount: def.FrameCount,
			FrameW:     def.FrameW,
			FrameH:     def.FrameH,
			FPS:        def.FPS,
			Loop:       def.Loop,
		}
		if wNeeded := (def.ColStart + def.FrameCount) * def.FrameW; wNeeded > sheetW {
			sheetW = wNeeded
		}
		if hNeeded := (def.Row + 1) * def.FrameH; hNeeded > sheetH {
			sheetH = hNeeded
		}
	}
	anim.Sheet = assets.LoadImageOr(spec.Animation.Sheet, sheetW, sheetH, shadeColor)
	if spec.Animation.Current != "" {
		anim.Play(spec.Animation.Current)
	}

	if err := ecs.Add(w, e, component.AnimatorComponent.Kind(), anim); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		OriginX: spec.Sprite.OriginX,
		OriginY: spec.Sprite.OriginY,
	}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: 2})
}
