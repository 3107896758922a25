package system

import (
	"testing"

	"github.com/milk9111/ghostlight/ecs"
	"github.com/milk9111/ghostlight/ecs/component"
	"github.com/milk9111/ghostlight/sound"
)

func newScriptedShade(w *ecs.World, x, y float64) ecs.Entity {
	e := ecs.CreateEntity(w)
	ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	ecs.Add(w, e, component.AIAgentComponent.Kind(), &component.AIAgent{})
	ecs.Add(w, e, component.AIScriptComponent.Kind(), &component.AIScript{Path: "shade.tengo"})
	ecs.Add(w, e, component.AIStateComponent.Kind(), &component.AIState{})
	return e
}

func newScriptedPlayer(w *ecs.World, x, y float64) ecs.Entity {
	e := ecs.CreateEntity(w)
	ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	return e
}

func shadeState(t *testing.T, w *ecs.World, e ecs.Entity) component.StateID {
	t.Helper()
	state, ok := ecs.Get(w, e, component.AIStateComponent.Kind())
	if !ok {
		t.Fatal("shade lost its state")
	}
	return state.Current
}

func TestScriptSystem_IdleWhenPlayerFar(t *testing.T) {
	w := ecs.NewWorld()
	newScriptedPlayer(w, 1000, 1000)
	shade := newScriptedShade(w, 0, 0)

	s := NewScriptSystem(sound.NewField())
	s.Update(w, 1.0/60)

	if got := shadeState(t, w, shade); got != "idle" {
		t.Fatalf("expected idle, got %q", got)
	}
	agent, _ := ecs.Get(w, shade, component.AIAgentComponent.Kind())
	if agent.Target.Valid() {
		t.Fatal("expected no target while idle")
	}
}

func TestScriptSystem_StalksNearbyPlayer(t *testing.T) {
	w := ecs.NewWorld()
	player := newScriptedPlayer(w, 200, 0)
	shade := newScriptedShade(w, 0, 0)

	s := NewScriptSystem(sound.NewField())
	s.Update(w, 1.0/60)

	if got := shadeState(t, w, shade); got != "stalk" {
		t.Fatalf("expected stalk, got %q", got)
	}
	agent, _ := ecs.Get(w, shade, component.AIAgentComponent.Kind())
	if ecs.Entity(agent.Target) != player {
		t.Fatalf("expected player target, got %v", agent.Target)
	}
	if !agent.PathfindingEnabled {
		t.Fatal("expected pathfinding while stalking")
	}
	if agent.ChaseSpeed != 90 {
		t.Fatalf("expected stalk speed 90, got %v", agent.ChaseSpeed)
	}
}

func TestScriptSystem_FrenzyAtCloseRange(t *testing.T) {
	w := ecs.NewWorld()
	newScriptedPlayer(w, 50, 0)
	shade := newScriptedShade(w, 0, 0)

	s := NewScriptSystem(sound.NewField())
	s.Update(w, 1.0/60) // idle -> stalk
	s.Update(w, 1.0/60) // stalk -> frenzy

	if got := shadeState(t, w, shade); got != "frenzy" {
		t.Fatalf("expected frenzy, got %q", got)
	}
	agent, _ := ecs.Get(w, shade, component.AIAgentComponent.Kind())
	if agent.ChaseSpeed != 150 {
		t.Fatalf("expected frenzy speed 150, got %v", agent.ChaseSpeed)
	}
	if agent.PathfindingEnabled {
		t.Fatal("expected direct pursuit in frenzy")
	}
}

func TestScriptSystem_WorldEventWakesShade(t *testing.T) {
	w := ecs.NewWorld()
	newScriptedPlayer(w, 1000, 1000)
	shade := newScriptedShade(w, 0, 0)

	s := NewScriptSystem(sound.NewField())
	s.Update(w, 1.0/60)
	if got := shadeState(t, w, shade); got != "idle" {
		t.Fatalf("expected idle before event, got %q", got)
	}

	s.Emit("lights_out")
	s.Update(w, 1.0/60)

	if got := shadeState(t, w, shade); got != "stalk" {
		t.Fatalf("expected stalk after lights_out, got %q", got)
	}
}

func TestScriptSystem_PrunesDeadShades(t *testing.T) {
	w := ecs.NewWorld()
	newScriptedPlayer(w, 1000, 1000)
	shade := newScriptedShade(w, 0, 0)

	s := NewScriptSystem(sound.NewField())
	s.Update(w, 1.0/60)
	if len(s.cache) != 1 {
		t.Fatalf("expected cached runtime, got %d", len(s.cache))
	}

	ecs.DestroyEntity(w, shade)
	s.Update(w, 1.0/60)
	if len(s.cache) != 0 {
		t.Fatalf("expected cache pruned, got %d", len(s.cache))
	}
}
