package geom

// ShapeType selects narrow-phase dispatch for a physics body.
type ShapeType int

const (
	ShapeAABB ShapeType = iota
	ShapeCircle
	ShapePolygon
)

// Manifold is the result of a narrow-phase collision test. Normal is a unit
// vector pointing from shape A toward shape B; Penetration is non-negative
// exactly when HasCollision is true.
type Manifold struct {
	HasCollision bool
	Normal       Vec
	Penetration  float64
	ContactPoint Vec
}
