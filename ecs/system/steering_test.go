package system

import (
	"image/color"
	"math"
	"testing"

	"github.com/milk9111/ghostlight/ecs"
	"github.com/milk9111/ghostlight/ecs/component"
	"github.com/milk9111/ghostlight/nav"
)

func newShade(w *ecs.World, x, y, chaseSpeed, detectionRange float64, target ecs.Entity, pathfinding bool) ecs.Entity {
	e := ecs.CreateEntity(w)
	ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	ecs.Add(w, e, component.AIAgentComponent.Kind(), &component.AIAgent{
		ChaseSpeed:         chaseSpeed,
		DetectionRange:     detectionRange,
		Target:             component.EntityRef(target),
		PathfindingEnabled: pathfinding,
	})
	return e
}

func newTarget(w *ecs.World, x, y float64) ecs.Entity {
	e := ecs.CreateEntity(w)
	ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	return e
}

func shadeTransform(t *testing.T, w *ecs.World, e ecs.Entity) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t.Fatal("shade lost its transform")
	}
	return tr
}

func TestAISystem_DirectChase(t *testing.T) {
	w := ecs.NewWorld()
	target := newTarget(w, 100, 0)
	shade := newShade(w, 0, 0, 60, 200, target, false)

	s := NewAISystem(nil)
	s.Update(w, 0.1)

	tr := shadeTransform(t, w, shade)
	if math.Abs(tr.X-6) > 1e-9 || tr.Y != 0 {
		t.Fatalf("expected (6, 0), got (%v, %v)", tr.X, tr.Y)
	}
}

func TestAISystem_TargetOutOfRange(t *testing.T) {
	w := ecs.NewWorld()
	target := newTarget(w, 300, 0)
	shade := newShade(w, 0, 0, 60, 200, target, true)

	s := NewAISystem(nav.NewGrid(10, 10, 10))
	s.Update(w, 0.1)

	tr := shadeTransform(t, w, shade)
	if tr.X != 0 || tr.Y != 0 {
		t.Fatalf("expected no movement, got (%v, %v)", tr.X, tr.Y)
	}
	if _, ok := ecs.Get(w, shade, component.PathFollowerComponent.Kind()); ok {
		t.Fatal("expected no path cache for out-of-range target")
	}
}

func TestAISystem_DeadTarget(t *testing.T) {
	w := ecs.NewWorld()
	target := newTarget(w, 50, 0)
	shade := newShade(w, 0, 0, 60, 200, target, false)
	ecs.DestroyEntity(w, target)

	s := NewAISystem(nil)
	s.Update(w, 0.1)

	tr := shadeTransform(t, w, shade)
	if tr.X != 0 || tr.Y != 0 {
		t.Fatalf("expected no movement toward dead target, got (%v, %v)", tr.X, tr.Y)
	}
}

func TestAISystem_AxisSeparatedSliding(t *testing.T) {
	w := ecs.NewWorld()
	target := newTarget(w, 100, 100)
	shade := newShade(w, 0, 0, 100, 500, target, false)
	ecs.Add(w, shade, component.SizeComponent.Kind(), &component.Size{Width: 10, Height: 10})

	blocker := ecs.CreateEntity(w)
	ecs.Add(w, blocker, component.TransformComponent.Kind(), &component.Transform{X: 12, Y: 0, ScaleX: 1, ScaleY: 1})
	ecs.Add(w, blocker, component.SizeComponent.Kind(), &component.Size{Width: 10, Height: 10})
	ecs.Add(w, blocker, component.TagComponent.Kind(), &component.Tag{Name: "Wall"})

	s := NewAISystem(nil)
	s.Update(w, 0.1)

	// Full diagonal move and the horizontal-only retry both clip
	// the wall, so only the vertical component lands.
	tr := shadeTransform(t, w, shade)
	step := 10 / math.Sqrt2
	if tr.X != 0 {
		t.Fatalf("expected horizontal movement blocked, got X=%v", tr.X)
	}
	if math.Abs(tr.Y-step) > 1e-9 {
		t.Fatalf("expected Y=%v, got %v", step, tr.Y)
	}
}

func TestAISystem_BackgroundBlockersIgnored(t *testing.T) {
	w := ecs.NewWorld()
	target := newTarget(w, 100, 100)
	shade := newShade(w, 0, 0, 100, 500, target, false)
	ecs.Add(w, shade, component.SizeComponent.Kind(), &component.Size{Width: 10, Height: 10})

	for _, name := range []string{component.TagBackground, component.TagStressTest} {
		b := ecs.CreateEntity(w)
		ecs.Add(w, b, component.TransformComponent.Kind(), &component.Transform{X: 12, Y: 0, ScaleX: 1, ScaleY: 1})
		ecs.Add(w, b, component.SizeComponent.Kind(), &component.Size{Width: 10, Height: 10})
		ecs.Add(w, b, component.TagComponent.Kind(), &component.Tag{Name: name})
	}

	s := NewAISystem(nil)
	s.Update(w, 0.1)

	tr := shadeTransform(t, w, shade)
	step := 10 / math.Sqrt2
	if math.Abs(tr.X-step) > 1e-9 || math.Abs(tr.Y-step) > 1e-9 {
		t.Fatalf("expected unobstructed diagonal move, got (%v, %v)", tr.X, tr.Y)
	}
}

func TestAISystem_PathFollowing(t *testing.T) {
	w := ecs.NewWorld()
	target := newTarget(w, 55, 5)
	shade := newShade(w, 5, 5, 100, 500, target, true)

	s := NewAISystem(nav.NewGrid(10, 10, 10))
	s.Update(w, 0.1)

	pf, ok := ecs.Get(w, shade, component.PathFollowerComponent.Kind())
	if !ok {
		t.Fatal("expected path cache")
	}
	if len(pf.Path) != 6 {
		t.Fatalf("expected 6 path nodes, got %d", len(pf.Path))
	}
	if pf.Index != 1 {
		t.Fatalf("expected starting cell skipped, index=%d", pf.Index)
	}

	// First waypoint after the start cell is the center of (1,0).
	tr := shadeTransform(t, w, shade)
	if math.Abs(tr.X-15) > 1e-9 || math.Abs(tr.Y-5) > 1e-9 {
		t.Fatalf("expected (15, 5), got (%v, %v)", tr.X, tr.Y)
	}
}

func TestAISystem_RepathInterval(t *testing.T) {
	w := ecs.NewWorld()
	target := newTarget(w, 55, 5)
	// Zero chase speed keeps positions fixed so only the cache changes.
	shade := newShade(w, 5, 5, 0, 500, target, true)

	s := NewAISystem(nav.NewGrid(10, 10, 10))
	s.Update(w, 0.01)

	pf, _ := ecs.Get(w, shade, component.PathFollowerComponent.Kind())
	if len(pf.Path) != 6 {
		t.Fatalf("expected initial 6-node path, got %d", len(pf.Path))
	}

	// Move the target; the cached route must survive until the interval
	// elapses.
	tt, _ := ecs.Get(w, target, component.TransformComponent.Kind())
	tt.X, tt.Y = 5, 95

	s.Update(w, 0.01)
	if len(pf.Path) != 6 {
		t.Fatalf("expected stale path inside interval, got %d nodes", len(pf.Path))
	}

	s.Update(w, 0.5)
	if len(pf.Path) != 10 {
		t.Fatalf("expected recomputed 10-node path, got %d", len(pf.Path))
	}
}

func TestAISystem_BlockedGoalClearsWaypoint(t *testing.T) {
	w := ecs.NewWorld()
	target := newTarget(w, 55, 5)
	shade := newShade(w, 5, 5, 100, 500, target, true)

	grid := nav.NewGrid(10, 10, 10)
	grid.SetWalkable(5, 0, false)
	s := NewAISystem(grid)
	s.Update(w, 0.1)

	// No route exists, so steering falls back to moving straight at the
	// target.
	tr := shadeTransform(t, w, shade)
	if math.Abs(tr.X-15) > 1e-9 || tr.Y != 5 {
		t.Fatalf("expected direct fallback move to (15, 5), got (%v, %v)", tr.X, tr.Y)
	}
}

func TestAISystem_AnimationSelection(t *testing.T) {
	newAnimator := func() *component.Animator {
		return &component.Animator{
			Defs: map[string]component.AnimationDef{
				"walk_horizontal": {Name: "walk_horizontal", FrameCount: 4, FPS: 8, Loop: true},
				"walk_vertical":   {Name: "walk_vertical", FrameCount: 4, FPS: 8, Loop: true},
			},
		}
	}

	t.Run("leftward movement flips horizontal clip", func(t *testing.T) {
		w := ecs.NewWorld()
		target := newTarget(w, -100, 0)
		shade := newShade(w, 0, 0, 60, 200, target, false)
		anim := newAnimator()
		ecs.Add(w, shade, component.AnimatorComponent.Kind(), anim)

		NewAISystem(nil).Update(w, 0.1)

		if anim.Current != "walk_horizontal" || !anim.FlipX {
			t.Fatalf("expected flipped horizontal clip, got %q flip=%v", anim.Current, anim.FlipX)
		}
	})

	t.Run("vertical movement picks vertical clip", func(t *testing.T) {
		w := ecs.NewWorld()
		target := newTarget(w, 0, 100)
		shade := newShade(w, 0, 0, 60, 200, target, false)
		anim := newAnimator()
		ecs.Add(w, shade, component.AnimatorComponent.Kind(), anim)

		NewAISystem(nil).Update(w, 0.1)

		if anim.Current != "walk_vertical" {
			t.Fatalf("expected vertical clip, got %q", anim.Current)
		}
	})

	t.Run("repeated updates do not restart the clip", func(t *testing.T) {
		w := ecs.NewWorld()
		target := newTarget(w, 1000, 0)
		shade := newShade(w, 0, 0, 60, 2000, target, false)
		anim := newAnimator()
		ecs.Add(w, shade, component.AnimatorComponent.Kind(), anim)

		s := NewAISystem(nil)
		s.Update(w, 0.1)
		anim.Frame = 2
		s.Update(w, 0.1)

		if anim.Frame != 2 {
			t.Fatalf("expected frame preserved across updates, got %d", anim.Frame)
		}
	})
}

type captureDraw struct {
	lines   int
	circles int
}

func (c *captureDraw) Line(x1, y1, x2, y2 float64, clr color.Color) { c.lines++ }

func (c *captureDraw) Circle(x, y, r float64, clr color.Color) { c.circles++ }

func TestAISystem_RenderDebug(t *testing.T) {
	w := ecs.NewWorld()
	target := newTarget(w, 55, 5)
	shade := newShade(w, 5, 5, 100, 500, target, true)
	_ = shade

	s := NewAISystem(nav.NewGrid(10, 10, 10))
	s.Update(w, 0.1)

	var dd captureDraw
	s.RenderDebug(&dd, w)

	if dd.circles < 2 {
		t.Fatalf("expected detection and target circles, got %d", dd.circles)
	}
	if dd.lines == 0 {
		t.Fatal("expected path lines")
	}
}
