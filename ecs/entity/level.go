package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/ghostlight/assets"
	"github.com/milk9111/ghostlight/ecs"
	"github.com/milk9111/ghostlight/ecs/component"
	"github.com/milk9111/ghostlight/prefabs"
)

var (
	wallColor     = color.RGBA{R: 0x3a, G: 0x3a, B: 0x44, A: 0xff}
	hideSpotColor = color.RGBA{R: 0x1e, G: 0x33, B: 0x1e, A: 0xff}
	exitColor     = color.RGBA{R: 0xc8, G: 0xb4, B: 0x40, A: 0xff}
)

// NewWall builds a blocking level rect that shades steer around.
func NewWall(w *ecs.World, rect prefabs.RectSpec) (ecs.Entity, error) {
	return newLevelRect(w, rect, "Wall", wallColor, 1)
}

// NewHideSpot builds a non-blocking locker marker.
func NewHideSpot(w *ecs.World, rect prefabs.RectSpec) (ecs.Entity, error) {
	return newLevelRect(w, rect, component.TagBackground, hideSpotColor, 0)
}

// NewExit builds the non-blocking escape marker.
func NewExit(w *ecs.World, rect prefabs.RectSpec) (ecs.Entity, error) {
	return newLevelRect(w, rect, component.TagBackground, exitColor, 0)
}

func newLevelRect(w *ecs.World, rect prefabs.RectSpec, tag string, clr color.Color, layer int) (ecs.Entity, error) {
	if w == nil {
		return ecs.Entity{}, fmt.Errorf("entity: world is nil")
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X: rect.X, Y: rect.Y, ScaleX: 1, ScaleY: 1,
	}); err != nil {
		return ecs.Entity{}, err
	}
	if err := ecs.Add(w, e, component.SizeComponent.Kind(), &component.Size{Width: rect.W, Height: rect.H}); err != nil {
		return ecs.Entity{}, err
	}
	if err := ecs.Add(w, e, component.TagComponent.Kind(), &component.Tag{Name: tag}); err != nil {
		return ecs.Entity{}, err
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Image: assets.Placeholder(int(rect.W), int(rect.H), clr),
	}); err != nil {
		return ecs.Entity{}, err
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layer}); err != nil {
		return ecs.Entity{}, err
	}
	return e, nil
}
