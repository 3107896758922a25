package physics

import (
	"math"

	"github.com/milk9111/ghostlight/geom"
)

// Body is the shared kinematic state for every actor: a velocity/acceleration
// integrator that owns a shape. Behavior-specific state (player resources,
// ghost AI) lives in the behavior structs, not here.
type Body struct {
	Position     geom.Vec
	Velocity     geom.Vec
	Acceleration geom.Vec

	Mass        float64
	Friction    float64 // (0, 1]: continuous-time damping base
	MaxSpeed    float64
	Restitution float64 // [0, 1]

	Shape  geom.ShapeType
	Width  float64
	Height float64
	Radius float64

	// Bounds is recomputed on every position change.
	Bounds geom.AABB
}

// NewBody creates a box-shaped body at pos. Position is the top-left corner
// of its bounds.
func NewBody(pos geom.Vec, width, height, mass float64) *Body {
	b := &Body{
		Position:    pos,
		Mass:        mass,
		Friction:    0.9,
		MaxSpeed:    500,
		Restitution: 0,
		Shape:       geom.ShapeAABB,
		Width:       width,
		Height:      height,
	}
	if b.Mass <= 0 {
		b.Mass = 1
	}
	b.updateBounds()
	return b
}

// SetCircle switches the body to a circle shape of the given radius.
func (b *Body) SetCircle(radius float64) {
	b.Shape = geom.ShapeCircle
	b.Radius = radius
	b.Width = radius * 2
	b.Height = radius * 2
	b.updateBounds()
}

// Circle returns the body's collision circle, centered on its bounds.
func (b *Body) Circle() geom.Circle {
	return geom.Circle{Center: b.Bounds.GetCenter(), Radius: b.Radius}
}

func (b *Body) Center() geom.Vec {
	return b.Bounds.GetCenter()
}

// Update advances the integrator by dt seconds: acceleration, exponential
// friction damping (frame-rate independent), speed clamp, position, bounds.
// Acceleration is zeroed afterwards; forces are not persistent and must be
// reapplied every frame.
func (b *Body) Update(dt float64) {
	b.Velocity = b.Velocity.Add(b.Acceleration.Scale(dt))
	b.Velocity = b.Velocity.Scale(math.Pow(b.Friction, dt))

	if b.MaxSpeed > 0 {
		if speed := b.Velocity.Length(); speed > b.MaxSpeed {
			b.Velocity = b.Velocity.Scale(b.MaxSpeed / speed)
		}
	}

	b.Position = b.Position.Add(b.Velocity.Scale(dt))
	b.updateBounds()
	b.Acceleration = geom.Vec{}
}

// ApplyForce accumulates a continuous force for the next Update.
func (b *Body) ApplyForce(f geom.Vec) {
	b.Acceleration = b.Acceleration.Add(f.Scale(1 / b.Mass))
}

// ApplyImpulse changes velocity immediately, bypassing the per-frame
// acceleration reset.
func (b *Body) ApplyImpulse(j geom.Vec) {
	b.Velocity = b.Velocity.Add(j.Scale(1 / b.Mass))
}

// SetPosition moves the body and refreshes its cached bounds.
func (b *Body) SetPosition(p geom.Vec) {
	b.Position = p
	b.updateBounds()
}

func (b *Body) updateBounds() {
	b.Bounds = geom.AABB{X: b.Position.X, Y: b.Position.Y, Width: b.Width, Height: b.Height}
}
