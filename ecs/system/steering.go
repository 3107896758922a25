package system

import (
	"image/color"
	"math"

	"github.com/milk9111/ghostlight/ecs"
	"github.com/milk9111/ghostlight/ecs/component"
	"github.com/milk9111/ghostlight/geom"
	"github.com/milk9111/ghostlight/nav"
)

const (
	defaultRepathInterval = 0.5
	reachThresholdFactor  = 0.3
)

// DebugDraw receives primitive draw calls from RenderDebug. The render
// layer supplies an ebiten-backed implementation; tests can supply a
// recording one.
type DebugDraw interface {
	Line(x1, y1, x2, y2 float64, clr color.Color)
	Circle(x, y, r float64, clr color.Color)
}

// AISystem steers shade entities toward their targets, routing through the
// navigation grid when pathfinding is enabled and sliding around blockers
// axis by axis.
type AISystem struct {
	grid *nav.Grid
}

// NewAISystem takes the navigation grid as an explicit resource so tests
// can run isolated simulations against their own grids.
func NewAISystem(grid *nav.Grid) *AISystem {
	return &AISystem{grid: grid}
}

// SetupPathfindingGrid replaces the navigation grid. Call from the level
// loader before marking wall cells, never during Update.
func (s *AISystem) SetupPathfindingGrid(width, height int, tileSize float64) {
	s.grid = nav.NewGrid(width, height, tileSize)
}

func (s *AISystem) SetWalkable(x, y int, walkable bool) {
	if s.grid == nil {
		return
	}
	s.grid.SetWalkable(x, y, walkable)
}

func (s *AISystem) Grid() *nav.Grid {
	return s.grid
}

func (s *AISystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil || dt <= 0 {
		return
	}

	ecs.ForEach2(w, component.AIAgentComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, agent *component.AIAgent, t *component.Transform) {
		target := ecs.Entity(agent.Target)
		if !ecs.IsAlive(w, target) {
			return
		}
		tt, ok := ecs.Get(w, target, component.TransformComponent.Kind())
		if !ok {
			return
		}

		pos := geom.Vec{X: t.X, Y: t.Y}
		targetPos := geom.Vec{X: tt.X, Y: tt.Y}
		if pos.Distance(targetPos) > agent.DetectionRange {
			return
		}

		goal := targetPos
		if agent.PathfindingEnabled && s.grid != nil {
			if wp, ok := s.followPath(w, e, pos, targetPos, dt); ok {
				goal = wp
			}
		}

		dir := goal.Sub(pos).Normalize()
		move := dir.Scale(agent.ChaseSpeed * dt)
		if move.X == 0 && move.Y == 0 {
			return
		}

		applied := s.tryMove(w, e, t, move)
		s.faceMovement(w, e, applied)
	})
}

// followPath keeps the entity's cached route fresh and returns the active
// waypoint. Recomputes on the repath interval or whenever the cache is
// empty; advances past waypoints within 0.3 tiles and clears the route once
// exhausted.
func (s *AISystem) followPath(w *ecs.World, e ecs.Entity, pos, targetPos geom.Vec, dt float64) (geom.Vec, bool) {
	pf, ok := ecs.Get(w, e, component.PathFollowerComponent.Kind())
	if !ok {
		pf = &component.PathFollower{}
		if err := ecs.Add(w, e, component.PathFollowerComponent.Kind(), pf); err != nil {
			return geom.Vec{}, false
		}
	}

	pf.RepathTimer += dt
	if pf.RepathTimer >= defaultRepathInterval || len(pf.Path) == 0 {
		pf.Path = nav.FindPath(s.grid, s.grid.WorldToGrid(pos), s.grid.WorldToGrid(targetPos))
		pf.Index = 0
		pf.RepathTimer = 0
	}
	if len(pf.Path) == 0 {
		return geom.Vec{}, false
	}

	reach := reachThresholdFactor * s.grid.TileSize
	wp := s.grid.GridToWorld(pf.Path[pf.Index])
	for pos.Distance(wp) < reach {
		pf.Index++
		if pf.Index >= len(pf.Path) {
			pf.Clear()
			return geom.Vec{}, false
		}
		wp = s.grid.GridToWorld(pf.Path[pf.Index])
	}
	return wp, true
}

// tryMove attempts the full displacement, then the horizontal component
// only, then the vertical component only, taking the first that does not
// collide with another blocking entity. Returns the displacement applied.
func (s *AISystem) tryMove(w *ecs.World, e ecs.Entity, t *component.Transform, move geom.Vec) geom.Vec {
	attempts := [3]geom.Vec{
		move,
		{X: move.X},
		{Y: move.Y},
	}
	for _, m := range attempts {
		if m.X == 0 && m.Y == 0 {
			continue
		}
		if !s.collides(w, e, t, m) {
			t.X += m.X
			t.Y += m.Y
			return m
		}
	}
	return geom.Vec{}
}

func (s *AISystem) collides(w *ecs.World, e ecs.Entity, t *component.Transform, move geom.Vec) bool {
	moved, ok := entityBounds(w, e, t.X+move.X, t.Y+move.Y)
	if !ok {
		return false
	}

	hit := false
	ecs.ForEach2(w, component.SizeComponent.Kind(), component.TransformComponent.Kind(), func(other ecs.Entity, _ *component.Size, ot *component.Transform) {
		if hit || other == e {
			return
		}
		if tag, ok := ecs.Get(w, other, component.TagComponent.Kind()); ok {
			if tag.Name == component.TagBackground || tag.Name == component.TagStressTest {
				return
			}
		}
		bounds, ok := entityBounds(w, other, ot.X, ot.Y)
		if !ok {
			return
		}
		if moved.Intersects(bounds) {
			hit = true
		}
	})
	return hit
}

func entityBounds(w *ecs.World, e ecs.Entity, x, y float64) (geom.AABB, bool) {
	size, ok := ecs.Get(w, e, component.SizeComponent.Kind())
	if !ok {
		return geom.AABB{}, false
	}
	sx, sy := 1.0, 1.0
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		if t.ScaleX != 0 {
			sx = math.Abs(t.ScaleX)
		}
		if t.ScaleY != 0 {
			sy = math.Abs(t.ScaleY)
		}
	}
	return geom.AABB{X: x, Y: y, Width: size.Width * sx, Height: size.Height * sy}, true
}

// faceMovement picks the walk clip and flip state from the dominant axis of
// the applied displacement.
func (s *AISystem) faceMovement(w *ecs.World, e ecs.Entity, applied geom.Vec) {
	if applied.X == 0 && applied.Y == 0 {
		return
	}
	anim, ok := ecs.Get(w, e, component.AnimatorComponent.Kind())
	if !ok {
		return
	}
	if math.Abs(applied.X) >= math.Abs(applied.Y) {
		anim.SetOrientation(component.OrientationHorizontal)
		anim.FlipX = applied.X < 0
	} else {
		anim.SetOrientation(component.OrientationVertical)
	}
}

// RenderDebug draws cached routes and detection radii through the supplied
// callback.
func (s *AISystem) RenderDebug(dd DebugDraw, w *ecs.World) {
	if s == nil || dd == nil || w == nil {
		return
	}

	pathColor := color.RGBA{R: 0x3f, G: 0xbf, B: 0x7f, A: 0xff}
	rangeColor := color.RGBA{R: 0xbf, G: 0x3f, B: 0x3f, A: 0xff}
	targetColor := color.RGBA{R: 0xff, G: 0xff, B: 0x3f, A: 0xff}

	ecs.ForEach2(w, component.AIAgentComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, agent *component.AIAgent, t *component.Transform) {
		dd.Circle(t.X, t.Y, agent.DetectionRange, rangeColor)

		target := ecs.Entity(agent.Target)
		if tt, ok := ecs.Get(w, target, component.TransformComponent.Kind()); ok {
			dd.Circle(tt.X, tt.Y, 6, targetColor)
		}

		if s.grid == nil {
			return
		}
		pf, ok := ecs.Get(w, e, component.PathFollowerComponent.Kind())
		if !ok || len(pf.Path) == 0 {
			return
		}
		prev := geom.Vec{X: t.X, Y: t.Y}
		for i := pf.Index; i < len(pf.Path); i++ {
			wp := s.grid.GridToWorld(pf.Path[i])
			dd.Line(prev.X, prev.Y, wp.X, wp.Y, pathColor)
			prev = wp
		}
	})
}
