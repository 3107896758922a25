package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/ghostlight/ecs"
	"github.com/milk9111/ghostlight/ecs/component"
)

type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Draw renders every sprite entity, lowest layer first.
func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	entities := ecs.Query(w, component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := 0, 0
		if layer, ok := ecs.Get(w, entities[i], component.RenderLayerComponent.Kind()); ok {
			li = layer.Index
		}
		if layer, ok := ecs.Get(w, entities[j], component.RenderLayerComponent.Kind()); ok {
			lj = layer.Index
		}
		if li != lj {
			return li < lj
		}
		return entities[i].ID < entities[j].ID
	})

	for _, e := range entities {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok || s.Image == nil {
			continue
		}

		img := s.Image
		if s.UseSource {
			if sub, ok := s.Image.SubImage(s.Source).(*ebiten.Image); ok {
				img = sub
			}
		}

		op := &ebiten.DrawImageOptions{}
		op.Filter = ebiten.FilterNearest
		op.GeoM.Translate(-s.OriginX, -s.OriginY)

		sx, sy := t.ScaleX, t.ScaleY
		if sx == 0 {
			sx = 1
		}
		if sy == 0 {
			sy = 1
		}

		flip := false
		if anim, ok := ecs.Get(w, e, component.AnimatorComponent.Kind()); ok {
			flip = anim.FlipX
		}
		if flip {
			sx = -sx
			op.GeoM.Translate(float64(-img.Bounds().Dx()), 0)
		}

		op.GeoM.Scale(sx, sy)
		op.GeoM.Rotate(t.Rotation)
		op.GeoM.Translate(t.X, t.Y)

		screen.DrawImage(img, op)
	}
}

// ScreenDraw adapts an ebiten image to the DebugDraw interface.
type ScreenDraw struct {
	Screen *ebiten.Image
}

func (s *ScreenDraw) Line(x1, y1, x2, y2 float64, clr color.Color) {
	if s == nil || s.Screen == nil {
		return
	}
	vector.StrokeLine(s.Screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, clr, false)
}

func (s *ScreenDraw) Circle(x, y, r float64, clr color.Color) {
	if s == nil || s.Screen == nil {
		return
	}
	vector.StrokeCircle(s.Screen, float32(x), float32(y), float32(r), 1, clr, false)
}
