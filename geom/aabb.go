package geom

// AABB is an axis-aligned box defined by its top-left corner and extents.
// Width and Height are expected to be non-negative.
type AABB struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (a AABB) Intersects(b AABB) bool {
	return a.X < b.X+b.Width && a.X+a.Width > b.X &&
		a.Y < b.Y+b.Height && a.Y+a.Height > b.Y
}

func (a AABB) Contains(p Vec) bool {
	return p.X >= a.X && p.X <= a.X+a.Width &&
		p.Y >= a.Y && p.Y <= a.Y+a.Height
}

// GetOverlap returns the per-axis overlap between two boxes. Both
// components are non-negative exactly when the boxes intersect.
func (a AABB) GetOverlap(b AABB) Vec {
	return Vec{
		X: min(a.X+a.Width, b.X+b.Width) - max(a.X, b.X),
		Y: min(a.Y+a.Height, b.Y+b.Height) - max(a.Y, b.Y),
	}
}

func (a AABB) GetCenter() Vec {
	return Vec{X: a.X + a.Width/2, Y: a.Y + a.Height/2}
}
