package geom

import "math"

// Polygon is a convex polygon stored as local-space vertices plus a world
// position offset. Edge normals are recomputed whenever the vertices change.
type Polygon struct {
	Position Vec

	vertices []Vec
	normals  []Vec
}

// NewPolygon creates a polygon from local-space vertices.
func NewPolygon(position Vec, vertices []Vec) *Polygon {
	p := &Polygon{Position: position}
	p.SetVertices(vertices)
	return p
}

// CreateBox returns a box polygon of the given extents centered on center.
// Vertices are emitted counter-clockwise.
func CreateBox(center Vec, width, height float64) *Polygon {
	hw := width / 2
	hh := height / 2
	return NewPolygon(center, []Vec{
		{X: -hw, Y: -hh},
		{X: -hw, Y: hh},
		{X: hw, Y: hh},
		{X: hw, Y: -hh},
	})
}

// SetVertices replaces the local vertex list and recomputes edge normals.
func (p *Polygon) SetVertices(vertices []Vec) {
	p.vertices = append(p.vertices[:0], vertices...)
	p.computeNormals()
}

func (p *Polygon) Vertices() []Vec {
	return p.vertices
}

func (p *Polygon) Normals() []Vec {
	return p.normals
}

// GetTransformedVertices returns the vertices translated by Position.
func (p *Polygon) GetTransformedVertices() []Vec {
	out := make([]Vec, len(p.vertices))
	for i, v := range p.vertices {
		out[i] = v.Add(p.Position)
	}
	return out
}

// Centroid returns the average of the transformed vertices.
func (p *Polygon) Centroid() Vec {
	if len(p.vertices) == 0 {
		return p.Position
	}
	var c Vec
	for _, v := range p.vertices {
		c = c.Add(v)
	}
	return c.Scale(1 / float64(len(p.vertices))).Add(p.Position)
}

func (p *Polygon) computeNormals() {
	p.normals = p.normals[:0]
	n := len(p.vertices)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		edge := p.vertices[(i+1)%n].Sub(p.vertices[i])
		p.normals = append(p.normals, Vec{X: edge.Y, Y: -edge.X}.Normalize())
	}
}

// DistanceToPolygon returns the distance from a point to the closest edge of
// a convex polygon. Degenerate polygons with fewer than 3 vertices yield
// math.MaxFloat64.
func DistanceToPolygon(point Vec, p *Polygon) float64 {
	verts := p.GetTransformedVertices()
	if len(verts) < 3 {
		return math.MaxFloat64
	}
	best := math.MaxFloat64
	for i := range verts {
		d := distanceToSegment(point, verts[i], verts[(i+1)%len(verts)])
		if d < best {
			best = d
		}
	}
	return best
}

func distanceToSegment(p, a, b Vec) float64 {
	ab := b.Sub(a)
	l := ab.LengthSq()
	if l == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / l
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Distance(a.Add(ab.Scale(t)))
}
