package geom

import "math"

// CheckAABBVsAABB tests two boxes and resolves along the axis with the
// smaller overlap. The comparison is strictly `overlap.X < overlap.Y`: on
// exactly equal overlaps the Y branch is chosen. Downstream resolution
// direction depends on this branch, so keep the comparison as-is.
func CheckAABBVsAABB(a, b AABB) Manifold {
	if !a.Intersects(b) {
		return Manifold{}
	}

	overlap := a.GetOverlap(b)
	ca := a.GetCenter()
	cb := b.GetCenter()

	m := Manifold{HasCollision: true}
	if overlap.X < overlap.Y {
		m.Penetration = overlap.X
		if ca.X < cb.X {
			m.Normal = Vec{X: 1}
		} else {
			m.Normal = Vec{X: -1}
		}
	} else {
		m.Penetration = overlap.Y
		if ca.Y < cb.Y {
			m.Normal = Vec{Y: 1}
		} else {
			m.Normal = Vec{Y: -1}
		}
	}
	m.ContactPoint = Vec{
		X: max(a.X, b.X) + overlap.X/2,
		Y: max(a.Y, b.Y) + overlap.Y/2,
	}
	return m
}

// CheckCircleVsCircle tests two circles. The normal points from a toward b;
// coincident centers fall back to (1, 0).
func CheckCircleVsCircle(a, b Circle) Manifold {
	delta := b.Center.Sub(a.Center)
	distSq := delta.LengthSq()
	radiusSum := a.Radius + b.Radius
	if distSq >= radiusSum*radiusSum {
		return Manifold{}
	}

	dist := math.Sqrt(distSq)
	normal := Vec{X: 1}
	if dist > 0 {
		normal = delta.Scale(1 / dist)
	}
	return Manifold{
		HasCollision: true,
		Normal:       normal,
		Penetration:  radiusSum - dist,
		ContactPoint: a.Center.Add(normal.Scale(a.Radius)),
	}
}

// CheckCircleVsAABB tests a circle against a box. The normal points from the
// circle toward the box. When the circle center sits inside the box the
// clamped-point distance is zero, so the nearest of the four face distances
// is picked explicitly instead.
func CheckCircleVsAABB(c Circle, b AABB) Manifold {
	closest := Vec{
		X: math.Max(b.X, math.Min(c.Center.X, b.X+b.Width)),
		Y: math.Max(b.Y, math.Min(c.Center.Y, b.Y+b.Height)),
	}

	inside := c.Center.X > b.X && c.Center.X < b.X+b.Width &&
		c.Center.Y > b.Y && c.Center.Y < b.Y+b.Height

	if inside {
		left := c.Center.X - b.X
		right := b.X + b.Width - c.Center.X
		top := c.Center.Y - b.Y
		bottom := b.Y + b.Height - c.Center.Y

		// Normal points inward, away from the nearest face, so that
		// resolution pushes the circle out through that face.
		minDist := left
		normal := Vec{X: 1}
		if right < minDist {
			minDist = right
			normal = Vec{X: -1}
		}
		if top < minDist {
			minDist = top
			normal = Vec{Y: 1}
		}
		if bottom < minDist {
			minDist = bottom
			normal = Vec{Y: -1}
		}
		return Manifold{
			HasCollision: true,
			Normal:       normal,
			Penetration:  c.Radius + minDist,
			ContactPoint: closest,
		}
	}

	delta := closest.Sub(c.Center)
	distSq := delta.LengthSq()
	if distSq >= c.Radius*c.Radius {
		return Manifold{}
	}
	dist := math.Sqrt(distSq)
	normal := Vec{X: 1}
	if dist > 0 {
		normal = delta.Scale(1 / dist)
	}
	return Manifold{
		HasCollision: true,
		Normal:       normal,
		Penetration:  c.Radius - dist,
		ContactPoint: closest,
	}
}

// CheckPolygonVsPolygon runs a separating-axis test over every edge normal
// of both polygons. The minimum-overlap axis becomes the manifold normal,
// oriented from a's centroid toward b's; the contact point is approximated
// by the midpoint of the two centroids.
func CheckPolygonVsPolygon(a, b *Polygon) Manifold {
	va := a.GetTransformedVertices()
	vb := b.GetTransformedVertices()
	if len(va) < 3 || len(vb) < 3 {
		return Manifold{}
	}

	minOverlap := math.MaxFloat64
	var axis Vec

	for _, set := range [][]Vec{a.Normals(), b.Normals()} {
		for _, n := range set {
			minA, maxA := projectVertices(va, n)
			minB, maxB := projectVertices(vb, n)
			overlap := math.Min(maxA, maxB) - math.Max(minA, minB)
			if overlap <= 0 {
				return Manifold{}
			}
			if overlap < minOverlap {
				minOverlap = overlap
				axis = n
			}
		}
	}

	ca := a.Centroid()
	cb := b.Centroid()
	if cb.Sub(ca).Dot(axis) < 0 {
		axis = axis.Scale(-1)
	}
	return Manifold{
		HasCollision: true,
		Normal:       axis,
		Penetration:  minOverlap,
		ContactPoint: ca.Add(cb).Scale(0.5),
	}
}

func projectVertices(verts []Vec, axis Vec) (lo, hi float64) {
	lo = math.MaxFloat64
	hi = -math.MaxFloat64
	for _, v := range verts {
		d := v.Dot(axis)
		if d < lo {
			lo = d
		}
		if d > hi {
			hi = d
		}
	}
	return lo, hi
}
