package physics

import (
	"math"

	"github.com/milk9111/ghostlight/common"
	"github.com/milk9111/ghostlight/geom"
)

const soundInterpRate = 5.0 // per second, exponential approach
const soundSnapLevel = 1.0

// PlayerConfig is the tunable half of the player behavior; the zero value is
// replaced by DefaultPlayerConfig.
type PlayerConfig struct {
	WalkForce   float64 `yaml:"walk_force"`
	SprintForce float64 `yaml:"sprint_force"`

	MaxStamina   float64 `yaml:"max_stamina"`
	StaminaDrain float64 `yaml:"stamina_drain"` // per second while sprinting
	StaminaRegen float64 `yaml:"stamina_regen"` // per second otherwise

	MaxBattery   float64 `yaml:"max_battery"`
	BatteryDrain float64 `yaml:"battery_drain"` // per second while flashlight on

	MaxSoundLevel    float64 `yaml:"max_sound_level"`
	WalkSoundLevel   float64 `yaml:"walk_sound_level"`
	SprintSoundLevel float64 `yaml:"sprint_sound_level"`

	FlashlightRange float64 `yaml:"flashlight_range"`
	FlashlightCone  float64 `yaml:"flashlight_cone"` // full cone angle, radians
}

func DefaultPlayerConfig() PlayerConfig {
	return PlayerConfig{
		WalkForce:        900,
		SprintForce:      1600,
		MaxStamina:       100,
		StaminaDrain:     25,
		StaminaRegen:     15,
		MaxBattery:       100,
		BatteryDrain:     5,
		MaxSoundLevel:    100,
		WalkSoundLevel:   40,
		SprintSoundLevel: 100,
		FlashlightRange:  260,
		FlashlightCone:   math.Pi / 3,
	}
}

type playerInput struct {
	left, right, up, down bool
	sprint                bool
	hide                  bool
	flashlightToggle      bool
	mouse                 geom.Vec
}

// Player layers stealth resources and input-driven movement on a Body.
type Player struct {
	Body *Body
	Cfg  PlayerConfig

	Stamina    float64
	Battery    float64
	SoundLevel float64

	FlashlightOn    bool
	FlashlightAngle float64

	Hidden    bool
	Sprinting bool

	input playerInput
}

func NewPlayer(pos geom.Vec, cfg PlayerConfig) *Player {
	if cfg == (PlayerConfig{}) {
		cfg = DefaultPlayerConfig()
	}
	body := NewBody(pos, 24, 24, 1)
	body.SetCircle(12)
	body.Friction = 0.0001
	body.MaxSpeed = 220
	return &Player{
		Body:    body,
		Cfg:     cfg,
		Stamina: cfg.MaxStamina,
		Battery: cfg.MaxBattery,
	}
}

// SetMoveInput stores the held directional/sprint/hide flags for the next
// Update.
func (p *Player) SetMoveInput(left, right, up, down, sprint, hide bool) {
	p.input.left = left
	p.input.right = right
	p.input.up = up
	p.input.down = down
	p.input.sprint = sprint
	p.input.hide = hide
}

// SetMouseInput stores the aim point and latches a one-shot flashlight
// toggle until the next Update consumes it.
func (p *Player) SetMouseInput(pos geom.Vec, flashlightToggle bool) {
	p.input.mouse = pos
	if flashlightToggle {
		p.input.flashlightToggle = true
	}
}

// Update runs one player frame: flashlight toggle and aim, movement force,
// integration, resource drains, sound level, and hide-spot checks.
func (p *Player) Update(dt float64, hideSpots []geom.AABB) {
	if p.input.flashlightToggle {
		p.input.flashlightToggle = false
		if p.Battery > 0 {
			p.FlashlightOn = !p.FlashlightOn
		}
	}

	center := p.Body.Center()
	aim := p.input.mouse.Sub(center)
	if aim.LengthSq() > 0 {
		p.FlashlightAngle = math.Atan2(aim.Y, aim.X)
	}

	dir := p.moveDirection()
	moving := dir.LengthSq() > 0
	p.Sprinting = p.input.sprint && p.Stamina > 0 && moving

	if moving {
		force := p.Cfg.WalkForce
		if p.Sprinting {
			force = p.Cfg.SprintForce
		}
		p.Body.ApplyForce(dir.Scale(force))
	}

	p.Body.Update(dt)

	if p.Sprinting {
		p.Stamina -= p.Cfg.StaminaDrain * dt
	} else {
		p.Stamina += p.Cfg.StaminaRegen * dt
	}
	p.Stamina = common.Clamp(p.Stamina, 0, p.Cfg.MaxStamina)

	if p.FlashlightOn {
		p.Battery -= p.Cfg.BatteryDrain * dt
		if p.Battery <= 0 {
			p.Battery = 0
			p.FlashlightOn = false
		}
	}

	p.updateSoundLevel(dt, moving)

	p.Hidden = false
	if p.input.hide {
		pos := p.Body.Center()
		for _, spot := range hideSpots {
			if spot.Contains(pos) {
				p.Hidden = true
				p.Body.Velocity = geom.Vec{}
				break
			}
		}
	}
}

func (p *Player) moveDirection() geom.Vec {
	var d geom.Vec
	if p.input.left {
		d.X -= 1
	}
	if p.input.right {
		d.X += 1
	}
	if p.input.up {
		d.Y -= 1
	}
	if p.input.down {
		d.Y += 1
	}
	return d.Normalize()
}

// updateSoundLevel approaches a target level picked by state priority:
// sprinting beats walking beats hidden/idle silence.
func (p *Player) updateSoundLevel(dt float64, moving bool) {
	target := 0.0
	switch {
	case p.Sprinting:
		target = p.Cfg.SprintSoundLevel
	case moving:
		target = p.Cfg.WalkSoundLevel
	case p.Hidden:
		target = 0
	}

	t := soundInterpRate * dt
	if t > 1 {
		t = 1
	}
	p.SoundLevel = common.Lerp(p.SoundLevel, target, t)
	if p.SoundLevel < soundSnapLevel {
		p.SoundLevel = 0
	}
	p.SoundLevel = common.Clamp(p.SoundLevel, 0, p.Cfg.MaxSoundLevel)
}

// FlashlightSees reports whether a point falls inside the active flashlight
// cone.
func (p *Player) FlashlightSees(point geom.Vec) bool {
	if !p.FlashlightOn {
		return false
	}
	center := p.Body.Center()
	delta := point.Sub(center)
	dist := delta.Length()
	if dist > p.Cfg.FlashlightRange {
		return false
	}
	if dist == 0 {
		return true
	}
	angle := math.Atan2(delta.Y, delta.X)
	diff := math.Abs(normalizeAngle(angle - p.FlashlightAngle))
	return diff <= p.Cfg.FlashlightCone/2
}

func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
