package entity

import (
	"fmt"

	"github.com/milk9111/ghostlight/ecs"
	"github.com/milk9111/ghostlight/ecs/component"
)

// NewPlayerMirror creates the ECS-side stand-in for the simulation's
// player. Its transform is synced from the physics body every frame so
// shades can target it.
func NewPlayerMirror(w *ecs.World, x, y float64) (ecs.Entity, error) {
	if w == nil {
		return ecs.Entity{}, fmt.Errorf("entity: world is nil")
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return ecs.Entity{}, err
	}
	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return ecs.Entity{}, err
	}
	return e, nil
}
