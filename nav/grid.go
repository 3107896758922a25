package nav

import (
	"math"

	"github.com/milk9111/ghostlight/geom"
)

// Node is an integer grid cell coordinate.
type Node struct {
	X int
	Y int
}

// Grid is a shared navigation grid: a boolean obstacle layer over
// width x height cells of TileSize world units. It is read-only during
// per-frame updates and mutated only through SetWalkable.
type Grid struct {
	Width    int
	Height   int
	TileSize float64

	blocked []bool
}

func NewGrid(width, height int, tileSize float64) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		Width:    width,
		Height:   height,
		TileSize: tileSize,
		blocked:  make([]bool, width*height),
	}
}

func (g *Grid) InBounds(n Node) bool {
	return n.X >= 0 && n.Y >= 0 && n.X < g.Width && n.Y < g.Height
}

// IsWalkable reports whether a cell can be traversed. Out-of-bounds cells
// are not walkable.
func (g *Grid) IsWalkable(x, y int) bool {
	if g == nil || x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return false
	}
	return !g.blocked[y*g.Width+x]
}

func (g *Grid) SetWalkable(x, y int, walkable bool) {
	if g == nil || x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return
	}
	g.blocked[y*g.Width+x] = !walkable
}

// WorldToGrid maps a world position to its containing cell by floor
// division.
func (g *Grid) WorldToGrid(p geom.Vec) Node {
	return Node{
		X: int(math.Floor(p.X / g.TileSize)),
		Y: int(math.Floor(p.Y / g.TileSize)),
	}
}

// GridToWorld returns the world-space center of a cell.
func (g *Grid) GridToWorld(n Node) geom.Vec {
	return geom.Vec{
		X: (float64(n.X) + 0.5) * g.TileSize,
		Y: (float64(n.Y) + 0.5) * g.TileSize,
	}
}
