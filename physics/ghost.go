package physics

import (
	"github.com/milk9111/ghostlight/geom"
	"github.com/milk9111/ghostlight/sound"
)

// GhostState is the ghost's behavioral state.
type GhostState int

const (
	StatePatrol GhostState = iota
	StateChase
	StateInvestigate
)

func (s GhostState) String() string {
	switch s {
	case StateChase:
		return "chase"
	case StateInvestigate:
		return "investigate"
	default:
		return "patrol"
	}
}

const (
	waypointArriveDist    = 10.0
	investigateArriveDist = 20.0
	hearingSoundThreshold = 50.0
)

// GhostConfig tunes one ghost.
type GhostConfig struct {
	PatrolSpeed    float64 `yaml:"patrol_speed"`
	ChaseSpeed     float64 `yaml:"chase_speed"`
	DetectionRange float64 `yaml:"detection_range"`
	HearingRange   float64 `yaml:"hearing_range"`
}

func DefaultGhostConfig() GhostConfig {
	return GhostConfig{
		PatrolSpeed:    700,
		ChaseSpeed:     1400,
		DetectionRange: 120,
		HearingRange:   320,
	}
}

// Ghost patrols waypoints, chases a spotted player, and investigates noises.
// It layers the state machine on a plain Body rather than extending it.
type Ghost struct {
	Body *Body
	Cfg  GhostConfig

	State             GhostState
	Waypoints         []geom.Vec
	WaypointIndex     int
	InvestigateTarget geom.Vec
}

func NewGhost(pos geom.Vec, waypoints []geom.Vec, cfg GhostConfig) *Ghost {
	if cfg == (GhostConfig{}) {
		cfg = DefaultGhostConfig()
	}
	body := NewBody(pos, 28, 28, 2)
	body.SetCircle(14)
	body.Friction = 0.0001
	body.MaxSpeed = 160
	return &Ghost{
		Body:      body,
		Cfg:       cfg,
		State:     StatePatrol,
		Waypoints: waypoints,
	}
}

// Update steers per the current state, integrates, then runs detection
// against the player.
func (g *Ghost) Update(dt float64, player *Player, field *sound.Field) {
	switch g.State {
	case StatePatrol:
		g.patrol()
	case StateChase:
		g.chase(player)
	case StateInvestigate:
		g.investigate()
	}

	g.Body.Update(dt)

	g.checkDetection(player, field)
}

// patrol steers toward the current waypoint and advances modulo the list on
// arrival. A single-waypoint list re-arrives every frame and stays at
// index 0.
func (g *Ghost) patrol() {
	if len(g.Waypoints) == 0 {
		return
	}
	if g.WaypointIndex >= len(g.Waypoints) {
		g.WaypointIndex = 0
	}
	target := g.Waypoints[g.WaypointIndex]
	pos := g.Body.Center()
	if pos.Distance(target) < waypointArriveDist {
		g.WaypointIndex = (g.WaypointIndex + 1) % len(g.Waypoints)
		target = g.Waypoints[g.WaypointIndex]
	}
	g.steerToward(target, g.Cfg.PatrolSpeed)
}

// chase steers at the player's live position, giving up when the player
// hides or escapes past twice the detection range.
func (g *Ghost) chase(player *Player) {
	if player == nil {
		g.State = StatePatrol
		return
	}
	target := player.Body.Center()
	pos := g.Body.Center()
	if player.Hidden || pos.Distance(target) > 2*g.Cfg.DetectionRange {
		g.State = StatePatrol
		return
	}
	g.steerToward(target, g.Cfg.ChaseSpeed)
}

// investigate steers toward the frozen snapshot captured when the noise was
// heard, reverting to patrol on arrival.
func (g *Ghost) investigate() {
	pos := g.Body.Center()
	if pos.Distance(g.InvestigateTarget) < investigateArriveDist {
		g.State = StatePatrol
		return
	}
	g.steerToward(g.InvestigateTarget, g.Cfg.PatrolSpeed)
}

func (g *Ghost) steerToward(target geom.Vec, force float64) {
	dir := target.Sub(g.Body.Center()).Normalize()
	g.Body.ApplyForce(dir.Scale(force))
}

// checkDetection runs sight and hearing checks while patrolling or
// investigating. A hidden player is never detected; an in-progress chase is
// left to its own break conditions.
func (g *Ghost) checkDetection(player *Player, field *sound.Field) {
	if player == nil || player.Hidden || g.State == StateChase {
		return
	}

	pos := g.Body.Center()
	target := player.Body.Center()
	dist := pos.Distance(target)

	if player.FlashlightSees(pos) {
		g.State = StateChase
		return
	}
	if dist < g.Cfg.DetectionRange {
		g.State = StateChase
		return
	}
	if player.SoundLevel > hearingSoundThreshold && dist < g.Cfg.HearingRange {
		g.State = StateInvestigate
		g.InvestigateTarget = target
		return
	}

	// Environmental noises (dropped props, scripted events) pull a
	// patrolling ghost toward the loudest source.
	if g.State == StatePatrol && field != nil {
		if ev, ok := field.Loudest(pos); ok {
			if ev.Intensity/(1+0.01*ev.Position.Distance(pos)) > hearingSoundThreshold &&
				pos.Distance(ev.Position) < g.Cfg.HearingRange {
				g.State = StateInvestigate
				g.InvestigateTarget = ev.Position
			}
		}
	}
}
