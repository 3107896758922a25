package main

import (
	"fmt"

	"github.com/milk9111/ghostlight/ecs"
	"github.com/milk9111/ghostlight/ecs/component"
	"github.com/milk9111/ghostlight/ecs/entity"
	"github.com/milk9111/ghostlight/ecs/system"
	"github.com/milk9111/ghostlight/geom"
	"github.com/milk9111/ghostlight/physics"
	"github.com/milk9111/ghostlight/prefabs"
)

// Level is one loaded scenario: the physics simulation, its ECS collaborator
// world, and the systems bound to both.
type Level struct {
	Spec *prefabs.LevelSpec

	Sim    *physics.World
	World  *ecs.World
	AI     *system.AISystem
	Script *system.ScriptSystem

	PlayerMirror ecs.Entity
}

// LoadLevel reads the level and tuning files and builds everything.
func LoadLevel(name string) (*Level, error) {
	spec, err := prefabs.LoadLevelSpec(name)
	if err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}

	tuning, err := prefabs.LoadTuningSpec()
	if err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}

	return BuildLevel(spec, tuning)
}

// BuildLevel assembles a Level from parsed specs.
func BuildLevel(spec *prefabs.LevelSpec, tuning *prefabs.TuningSpec) (*Level, error) {
	if spec == nil {
		return nil, fmt.Errorf("level: nil spec")
	}
	if tuning == nil {
		tuning = &prefabs.TuningSpec{}
	}

	sim := physics.NewWorld()
	sim.Player = physics.NewPlayer(geom.Vec{X: spec.Player.X, Y: spec.Player.Y}, tuning.Player)
	for _, g := range spec.Ghosts {
		waypoints := make([]geom.Vec, 0, len(g.Waypoints))
		for _, wp := range g.Waypoints {
			waypoints = append(waypoints, geom.Vec{X: wp.X, Y: wp.Y})
		}
		sim.Ghosts = append(sim.Ghosts, physics.NewGhost(geom.Vec{X: g.Spawn.X, Y: g.Spawn.Y}, waypoints, tuning.Ghost))
	}
	for _, r := range spec.Walls {
		sim.Walls = append(sim.Walls, geom.AABB{X: r.X, Y: r.Y, Width: r.W, Height: r.H})
	}
	for _, r := range spec.HideSpots {
		sim.HideSpots = append(sim.HideSpots, geom.AABB{X: r.X, Y: r.Y, Width: r.W, Height: r.H})
	}
	sim.Exit = geom.AABB{X: spec.Exit.X, Y: spec.Exit.Y, Width: spec.Exit.W, Height: spec.Exit.H}

	ai := system.NewAISystem(spec.BuildNavGrid())
	script := system.NewScriptSystem(sim.Sounds)

	world := ecs.NewWorld()
	mirror, err := entity.NewPlayerMirror(world, spec.Player.X, spec.Player.Y)
	if err != nil {
		return nil, fmt.Errorf("level: player mirror: %w", err)
	}
	for _, r := range spec.Walls {
		if _, err := entity.NewWall(world, r); err != nil {
			return nil, fmt.Errorf("level: wall: %w", err)
		}
	}
	for _, r := range spec.HideSpots {
		if _, err := entity.NewHideSpot(world, r); err != nil {
			return nil, fmt.Errorf("level: hide spot: %w", err)
		}
	}
	if spec.Exit.W > 0 {
		if _, err := entity.NewExit(world, spec.Exit); err != nil {
			return nil, fmt.Errorf("level: exit: %w", err)
		}
	}
	for i, s := range spec.Shades {
		if _, err := entity.NewShade(world, s, mirror); err != nil {
			return nil, fmt.Errorf("level: shade %d: %w", i, err)
		}
	}

	return &Level{
		Spec:         spec,
		Sim:          sim,
		World:        world,
		AI:           ai,
		Script:       script,
		PlayerMirror: mirror,
	}, nil
}

// SyncPlayerMirror copies the simulation player's center into the ECS
// mirror so shades steer at the live position.
func (l *Level) SyncPlayerMirror() {
	if l == nil || l.Sim == nil || l.Sim.Player == nil {
		return
	}
	t, ok := ecs.Get(l.World, l.PlayerMirror, component.TransformComponent.Kind())
	if !ok {
		return
	}
	center := l.Sim.Player.Body.Center()
	t.X = center.X
	t.Y = center.Y
}
