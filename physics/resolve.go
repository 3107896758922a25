package physics

import "github.com/milk9111/ghostlight/geom"

const (
	correctionSlop = 0.01
	wallPercent    = 0.8
	bodyPercent    = 0.4
)

// ResolveWall resolves a body against an immovable wall box. Only the body
// is corrected, and only the body's restitution applies.
func ResolveWall(b *Body, wall geom.AABB) {
	var m geom.Manifold
	switch b.Shape {
	case geom.ShapeCircle:
		m = geom.CheckCircleVsAABB(b.Circle(), wall)
	default:
		m = geom.CheckAABBVsAABB(b.Bounds, wall)
	}
	if !m.HasCollision {
		return
	}

	// Manifold normal points body -> wall; flip to get the push-out
	// direction.
	n := m.Normal.Scale(-1)

	correction := m.Penetration - correctionSlop
	if correction < 0 {
		correction = 0
	}
	b.SetPosition(b.Position.Add(n.Scale(correction * wallPercent)))

	vAlongNormal := b.Velocity.Dot(n)
	if vAlongNormal < 0 {
		b.Velocity = b.Velocity.Add(n.Scale(-vAlongNormal * (1 + b.Restitution)))
	}
}

// ResolveBodies resolves two dynamic bodies: an impulse along the contact
// normal using the smaller restitution, plus positional correction split in
// inverse proportion to mass.
func ResolveBodies(a, b *Body) {
	m := collideBodies(a, b)
	if !m.HasCollision {
		return
	}

	invMassA := 1 / a.Mass
	invMassB := 1 / b.Mass

	relVel := b.Velocity.Sub(a.Velocity)
	vAlongNormal := relVel.Dot(m.Normal)
	if vAlongNormal > 0 {
		// Already separating.
		return
	}

	e := a.Restitution
	if b.Restitution < e {
		e = b.Restitution
	}
	j := -(1 + e) * vAlongNormal / (invMassA + invMassB)
	impulse := m.Normal.Scale(j)
	a.Velocity = a.Velocity.Sub(impulse.Scale(invMassA))
	b.Velocity = b.Velocity.Add(impulse.Scale(invMassB))

	correction := m.Penetration - correctionSlop
	if correction < 0 {
		correction = 0
	}
	move := m.Normal.Scale(correction * bodyPercent / (invMassA + invMassB))
	a.SetPosition(a.Position.Sub(move.Scale(invMassA)))
	b.SetPosition(b.Position.Add(move.Scale(invMassB)))
}

// collideBodies dispatches on the shape-type pair. The manifold normal
// always points a -> b.
func collideBodies(a, b *Body) geom.Manifold {
	switch {
	case a.Shape == geom.ShapeCircle && b.Shape == geom.ShapeCircle:
		return geom.CheckCircleVsCircle(a.Circle(), b.Circle())
	case a.Shape == geom.ShapeCircle:
		return geom.CheckCircleVsAABB(a.Circle(), b.Bounds)
	case b.Shape == geom.ShapeCircle:
		m := geom.CheckCircleVsAABB(b.Circle(), a.Bounds)
		m.Normal = m.Normal.Scale(-1)
		return m
	default:
		return geom.CheckAABBVsAABB(a.Bounds, b.Bounds)
	}
}
