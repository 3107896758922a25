package system

import (
	"fmt"
	"math"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/ghostlight/ecs"
	"github.com/milk9111/ghostlight/ecs/component"
	"github.com/milk9111/ghostlight/geom"
	"github.com/milk9111/ghostlight/prefabs"
	"github.com/milk9111/ghostlight/sound"
)

// ScriptSystem runs tengo behavior scripts for shades carrying an AIScript
// component. Scripts declare onEnter/update/onExit per state and drive
// transitions through the engine table.
type ScriptSystem struct {
	sounds *sound.Field
	cache  map[ecs.Entity]*scriptRuntime
	queue  []component.EventID
}

func NewScriptSystem(sounds *sound.Field) *ScriptSystem {
	return &ScriptSystem{
		sounds: sounds,
		cache:  map[ecs.Entity]*scriptRuntime{},
	}
}

// Emit queues a world event for every scripted shade to observe on the next
// update.
func (s *ScriptSystem) Emit(ev component.EventID) {
	if ev == "" {
		return
	}
	s.queue = append(s.queue, ev)
}

type scriptRuntime struct {
	scriptPath  string
	compiled    *tengo.Compiled
	stateData   *tengo.Map
	initial     component.StateID
	initialized bool
	pending     component.StateID
}

const lifecycleDispatchScript = `
if __phase == "enter" {
	onEnter(__engine, __state, __current_state)
} else if __phase == "update" {
	update(__engine, __state, __current_state)
} else if __phase == "exit" {
	onExit(__engine, __state, __current_state)
}
`

type scriptContext struct {
	world        *ecs.World
	entity       ecs.Entity
	dt           float64
	playerX      float64
	playerY      float64
	playerEntity ecs.Entity
	playerFound  bool
	sounds       *sound.Field
	enqueue      func(component.EventID)
}

func (s *ScriptSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil {
		return
	}

	events := s.queue
	s.queue = nil
	eventSet := make(map[string]bool, len(events))
	for _, ev := range events {
		eventSet[string(ev)] = true
	}

	s.pruneDead(w)

	var playerX, playerY float64
	var playerEnt ecs.Entity
	playerFound := false
	if p, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		if t, ok := ecs.Get(w, p, component.TransformComponent.Kind()); ok {
			playerX, playerY = t.X, t.Y
			playerEnt = p
			playerFound = true
		}
	}

	ecs.ForEach(w, component.AIScriptComponent.Kind(), func(e ecs.Entity, script *component.AIScript) {
		state, ok := ecs.Get(w, e, component.AIStateComponent.Kind())
		if !ok {
			state = &component.AIState{}
			if err := ecs.Add(w, e, component.AIStateComponent.Kind(), state); err != nil {
				return
			}
		}

		rt, err := s.runtimeFor(e, script.Path)
		if err != nil {
			fmt.Printf("ai: entity=%v load behavior script: %v\n", e, err)
			return
		}

		if state.Current == "" {
			state.Current = rt.initial
		}

		ctx := &scriptContext{
			world:        w,
			entity:       e,
			dt:           dt,
			playerX:      playerX,
			playerY:      playerY,
			playerEntity: playerEnt,
			playerFound:  playerFound,
			sounds:       s.sounds,
			enqueue:      s.Emit,
		}
		engine := buildScriptEngine(ctx, rt, eventSet)

		if !rt.initialized {
			if err := rt.runPhase("enter", state.Current, engine); err != nil {
				fmt.Printf("ai: entity=%v script onEnter: %v\n", e, err)
				return
			}
			rt.initialized = true
		}

		if err := rt.runPhase("update", state.Current, engine); err != nil {
			fmt.Printf("ai: entity=%v script update: %v\n", e, err)
			return
		}

		if rt.pending == "" || rt.pending == state.Current {
			rt.pending = ""
			return
		}

		prev := state.Current
		if err := rt.runPhase("exit", prev, engine); err != nil {
			fmt.Printf("ai: entity=%v script onExit: %v\n", e, err)
			return
		}
		state.Current = rt.pending
		rt.pending = ""
		if err := rt.runPhase("enter", state.Current, engine); err != nil {
			fmt.Printf("ai: entity=%v script onEnter: %v\n", e, err)
		}
	})
}

// pruneDead drops cached runtimes whose entities were destroyed.
func (s *ScriptSystem) pruneDead(w *ecs.World) {
	for e := range s.cache {
		if !ecs.IsAlive(w, e) {
			delete(s.cache, e)
		}
	}
}

func (s *ScriptSystem) runtimeFor(e ecs.Entity, path string) (*scriptRuntime, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("ai: empty script path")
	}
	if rt, ok := s.cache[e]; ok && rt != nil && rt.scriptPath == path {
		return rt, nil
	}

	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("ai: load script %s: %w", path, err)
	}

	script := tengo.NewScript(append(src, []byte("\n"+lifecycleDispatchScript)...))
	_ = script.Add("__phase", "")
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	_ = script.Add("__current_state", "")
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("ai: compile %s: %w", path, err)
	}

	rt := &scriptRuntime{
		scriptPath: path,
		compiled:   compiled,
		stateData:  &tengo.Map{Value: map[string]tengo.Object{}},
		initial:    component.StateID("idle"),
	}

	// Resolve optional initial state from script global `initial_state`.
	noop := &tengo.ImmutableMap{Value: map[string]tengo.Object{}}
	if err := rt.runPhase("noop", rt.initial, noop); err != nil {
		return nil, err
	}
	if compiled.IsDefined("initial_state") {
		if v := strings.TrimSpace(compiled.Get("initial_state").String()); v != "" {
			rt.initial = component.StateID(v)
		}
	}

	s.cache[e] = rt
	return rt, nil
}

func (rt *scriptRuntime) runPhase(phase string, current component.StateID, engine *tengo.ImmutableMap) error {
	if rt == nil || rt.compiled == nil {
		return fmt.Errorf("ai: nil script runtime")
	}
	if engine == nil {
		engine = &tengo.ImmutableMap{Value: map[string]tengo.Object{}}
	}
	if err := rt.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := rt.compiled.Set("__engine", engine); err != nil {
		return err
	}
	if err := rt.compiled.Set("__state", rt.stateData); err != nil {
		return err
	}
	if err := rt.compiled.Set("__current_state", string(current)); err != nil {
		return err
	}
	return rt.compiled.Run()
}

func buildScriptEngine(ctx *scriptContext, rt *scriptRuntime, eventSet map[string]bool) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["transition"] = &tengo.UserFunction{Name: "transition", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if rt == nil || len(args) < 1 {
			return tengo.FalseValue, nil
		}
		name := strings.TrimSpace(objectAsString(args[0]))
		if name == "" {
			return tengo.FalseValue, nil
		}
		rt.pending = component.StateID(name)
		return tengo.TrueValue, nil
	}}

	values["emit"] = &tengo.UserFunction{Name: "emit", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if ctx == nil || ctx.enqueue == nil || len(args) < 1 {
			return tengo.FalseValue, nil
		}
		name := strings.TrimSpace(objectAsString(args[0]))
		if name == "" {
			return tengo.FalseValue, nil
		}
		ctx.enqueue(component.EventID(name))
		return tengo.TrueValue, nil
	}}

	values["event"] = &tengo.UserFunction{Name: "event", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		if eventSet[strings.TrimSpace(objectAsString(args[0]))] {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}

	values["consume_event"] = &tengo.UserFunction{Name: "consume_event", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		name := strings.TrimSpace(objectAsString(args[0]))
		if eventSet[name] {
			delete(eventSet, name)
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}

	values["delta"] = &tengo.UserFunction{Name: "delta", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if ctx == nil {
			return &tengo.Float{Value: 0}, nil
		}
		return &tengo.Float{Value: ctx.dt}, nil
	}}

	values["get_position"] = &tengo.UserFunction{Name: "get_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		x, y := 0.0, 0.0
		if ctx != nil {
			if t, ok := ecs.Get(ctx.world, ctx.entity, component.TransformComponent.Kind()); ok {
				x, y = t.X, t.Y
			}
		}
		return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: x}, &tengo.Float{Value: y}}}, nil
	}}

	values["get_player_position"] = &tengo.UserFunction{Name: "get_player_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if ctx == nil || !ctx.playerFound {
			return tengo.UndefinedValue, nil
		}
		return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: ctx.playerX}, &tengo.Float{Value: ctx.playerY}}}, nil
	}}

	values["distance_to_player"] = &tengo.UserFunction{Name: "distance_to_player", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if ctx == nil || !ctx.playerFound {
			return &tengo.Float{Value: math.MaxFloat64}, nil
		}
		t, ok := ecs.Get(ctx.world, ctx.entity, component.TransformComponent.Kind())
		if !ok {
			return &tengo.Float{Value: math.MaxFloat64}, nil
		}
		d := geom.Vec{X: t.X, Y: t.Y}.Distance(geom.Vec{X: ctx.playerX, Y: ctx.playerY})
		return &tengo.Float{Value: d}, nil
	}}

	values["sound_here"] = &tengo.UserFunction{Name: "sound_here", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if ctx == nil || ctx.sounds == nil {
			return &tengo.Float{Value: 0}, nil
		}
		t, ok := ecs.Get(ctx.world, ctx.entity, component.TransformComponent.Kind())
		if !ok {
			return &tengo.Float{Value: 0}, nil
		}
		return &tengo.Float{Value: ctx.sounds.IntensityAt(geom.Vec{X: t.X, Y: t.Y})}, nil
	}}

	values["set_speed"] = &tengo.UserFunction{Name: "set_speed", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if ctx == nil || len(args) < 1 {
			return tengo.FalseValue, nil
		}
		v, ok := objectAsFloat(args[0])
		if !ok {
			return tengo.FalseValue, nil
		}
		agent, found := ecs.Get(ctx.world, ctx.entity, component.AIAgentComponent.Kind())
		if !found {
			return tengo.FalseValue, nil
		}
		agent.ChaseSpeed = v
		return tengo.TrueValue, nil
	}}

	values["set_pathfinding"] = &tengo.UserFunction{Name: "set_pathfinding", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if ctx == nil || len(args) < 1 {
			return tengo.FalseValue, nil
		}
		agent, found := ecs.Get(ctx.world, ctx.entity, component.AIAgentComponent.Kind())
		if !found {
			return tengo.FalseValue, nil
		}
		agent.PathfindingEnabled = !args[0].IsFalsy()
		return tengo.TrueValue, nil
	}}

	values["target_player"] = &tengo.UserFunction{Name: "target_player", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if ctx == nil || !ctx.playerFound {
			return tengo.FalseValue, nil
		}
		agent, found := ecs.Get(ctx.world, ctx.entity, component.AIAgentComponent.Kind())
		if !found {
			return tengo.FalseValue, nil
		}
		agent.Target = component.EntityRef(ctx.playerEntity)
		return tengo.TrueValue, nil
	}}

	values["clear_target"] = &tengo.UserFunction{Name: "clear_target", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if ctx == nil {
			return tengo.FalseValue, nil
		}
		agent, found := ecs.Get(ctx.world, ctx.entity, component.AIAgentComponent.Kind())
		if !found {
			return tengo.FalseValue, nil
		}
		agent.Target = component.EntityRef{}
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}

func objectAsFloat(obj tengo.Object) (float64, bool) {
	switch v := obj.(type) {
	case *tengo.Float:
		return v.Value, true
	case *tengo.Int:
		return float64(v.Value), true
	default:
		return 0, false
	}
}
