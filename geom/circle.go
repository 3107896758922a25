package geom

// Circle is a center plus radius.
type Circle struct {
	Center Vec
	Radius float64
}

func (c Circle) Intersects(o Circle) bool {
	r := c.Radius + o.Radius
	return c.Center.DistanceSq(o.Center) < r*r
}

func (c Circle) Contains(p Vec) bool {
	return c.Center.DistanceSq(p) <= c.Radius*c.Radius
}

// GetAABB returns the bounding box center ± radius.
func (c Circle) GetAABB() AABB {
	return AABB{
		X:      c.Center.X - c.Radius,
		Y:      c.Center.Y - c.Radius,
		Width:  c.Radius * 2,
		Height: c.Radius * 2,
	}
}
