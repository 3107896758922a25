package physics

import (
	"github.com/milk9111/ghostlight/geom"
	"github.com/milk9111/ghostlight/sound"
)

// Status is the world-level game condition.
type Status int

const (
	StatusRunning Status = iota
	StatusCaught
	StatusEscaped
)

const (
	caughtDistance = 22.0
	emitThreshold  = 5.0
)

// World owns the simulation actors and runs one cooperative frame at a time:
// actor forces and integration, wall resolution, body-vs-body resolution,
// sound emission, game-condition check. All pairwise tests are brute force.
type World struct {
	Player *Player
	Ghosts []*Ghost

	Walls     []geom.AABB
	HideSpots []geom.AABB
	Exit      geom.AABB

	Sounds *sound.Field

	Condition Status

	elapsed float64
}

func NewWorld() *World {
	return &World{Sounds: sound.NewField()}
}

// SetPlayerInput forwards held movement flags to the player.
func (w *World) SetPlayerInput(left, right, up, down, sprint, hide bool) {
	if w.Player == nil {
		return
	}
	w.Player.SetMoveInput(left, right, up, down, sprint, hide)
}

// SetMouseInput forwards the aim point and flashlight toggle to the player.
func (w *World) SetMouseInput(pos geom.Vec, flashlightToggle bool) {
	if w.Player == nil {
		return
	}
	w.Player.SetMouseInput(pos, flashlightToggle)
}

// Elapsed returns accumulated simulation seconds.
func (w *World) Elapsed() float64 {
	return w.elapsed
}

// Update advances the world by dt seconds.
func (w *World) Update(dt float64) {
	if w.Condition != StatusRunning {
		return
	}
	w.elapsed += dt

	if w.Player != nil {
		w.Player.Update(dt, w.HideSpots)
	}
	for _, g := range w.Ghosts {
		g.Update(dt, w.Player, w.Sounds)
	}

	bodies := w.bodies()
	for _, b := range bodies {
		for _, wall := range w.Walls {
			ResolveWall(b, wall)
		}
	}
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			ResolveBodies(bodies[i], bodies[j])
		}
	}

	if w.Player != nil && w.Player.SoundLevel > emitThreshold {
		w.Sounds.AddSound(w.Player.Body.Center(), w.Player.SoundLevel, w.elapsed)
	}
	w.Sounds.Update(w.elapsed)

	w.checkCondition()
}

func (w *World) bodies() []*Body {
	out := make([]*Body, 0, len(w.Ghosts)+1)
	if w.Player != nil {
		out = append(out, w.Player.Body)
	}
	for _, g := range w.Ghosts {
		out = append(out, g.Body)
	}
	return out
}

func (w *World) checkCondition() {
	if w.Player == nil {
		return
	}
	pos := w.Player.Body.Center()
	if !w.Player.Hidden {
		for _, g := range w.Ghosts {
			if g.Body.Center().Distance(pos) < caughtDistance {
				w.Condition = StatusCaught
				return
			}
		}
	}
	if w.Exit.Width > 0 && w.Exit.Contains(pos) {
		w.Condition = StatusEscaped
	}
}
