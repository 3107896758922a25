package component

// Size is the collidable footprint of an entity in world units, before the
// transform's scale is applied.
type Size struct {
	Width  float64
	Height float64
}

var SizeComponent = NewComponent[Size]()
