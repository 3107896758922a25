package nav

import (
	"testing"

	"github.com/milk9111/ghostlight/geom"
)

func TestFindPathOpenGrid(t *testing.T) {
	cases := []struct {
		name        string
		w, h        int
		start, goal Node
		wantLen     int
	}{
		{"five_by_five_diagonal", 5, 5, Node{0, 0}, Node{4, 4}, 9},
		{"straight_line", 10, 1, Node{0, 0}, Node{9, 0}, 10},
		{"start_is_goal", 3, 3, Node{1, 1}, Node{1, 1}, 1},
		{"single_step", 2, 2, Node{0, 0}, Node{1, 0}, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := NewGrid(c.w, c.h, 32)
			path := FindPath(g, c.start, c.goal)
			if len(path) != c.wantLen {
				t.Fatalf("path length = %d, want %d (%v)", len(path), c.wantLen, path)
			}
			if path[0] != c.start || path[len(path)-1] != c.goal {
				t.Fatalf("path endpoints %v..%v, want %v..%v", path[0], path[len(path)-1], c.start, c.goal)
			}
			// Optimality on an obstacle-free grid: steps equal Manhattan distance.
			manhattan := abs(c.goal.X-c.start.X) + abs(c.goal.Y-c.start.Y)
			if len(path)-1 != manhattan {
				t.Fatalf("steps = %d, want Manhattan distance %d", len(path)-1, manhattan)
			}
			for i := 1; i < len(path); i++ {
				dx := abs(path[i].X - path[i-1].X)
				dy := abs(path[i].Y - path[i-1].Y)
				if dx+dy != 1 {
					t.Fatalf("non-cardinal step %v -> %v", path[i-1], path[i])
				}
			}
		})
	}
}

func TestFindPathBlocked(t *testing.T) {
	t.Run("blocked_goal", func(t *testing.T) {
		g := NewGrid(5, 5, 32)
		g.SetWalkable(4, 4, false)
		if path := FindPath(g, Node{0, 0}, Node{4, 4}); len(path) != 0 {
			t.Fatalf("expected empty path, got %v", path)
		}
	})

	t.Run("blocked_start", func(t *testing.T) {
		g := NewGrid(5, 5, 32)
		g.SetWalkable(0, 0, false)
		if path := FindPath(g, Node{0, 0}, Node{4, 4}); len(path) != 0 {
			t.Fatalf("expected empty path, got %v", path)
		}
	})

	t.Run("walled_off_goal", func(t *testing.T) {
		g := NewGrid(5, 5, 32)
		for y := 0; y < 5; y++ {
			g.SetWalkable(3, y, false)
		}
		if path := FindPath(g, Node{0, 0}, Node{4, 0}); len(path) != 0 {
			t.Fatalf("expected empty path across full wall, got %v", path)
		}
	})

	t.Run("detour_around_wall", func(t *testing.T) {
		g := NewGrid(5, 5, 32)
		for y := 0; y < 4; y++ {
			g.SetWalkable(2, y, false)
		}
		path := FindPath(g, Node{0, 0}, Node{4, 0})
		if len(path) == 0 {
			t.Fatal("expected a detour path")
		}
		for _, n := range path {
			if !g.IsWalkable(n.X, n.Y) {
				t.Fatalf("path crosses blocked cell %v", n)
			}
		}
		// Detour must be longer than the straight-line distance.
		if len(path)-1 <= 4 {
			t.Fatalf("detour steps = %d, expected more than 4", len(path)-1)
		}
	})
}

func TestFindPathDeterministic(t *testing.T) {
	g := NewGrid(8, 8, 16)
	first := FindPath(g, Node{0, 0}, Node{7, 7})
	for i := 0; i < 10; i++ {
		again := FindPath(g, Node{0, 0}, Node{7, 7})
		if len(again) != len(first) {
			t.Fatalf("run %d: length %d differs from %d", i, len(again), len(first))
		}
		for j := range again {
			if again[j] != first[j] {
				t.Fatalf("run %d: node %d = %v, want %v", i, j, again[j], first[j])
			}
		}
	}
}

func TestGridWorldMapping(t *testing.T) {
	g := NewGrid(10, 10, 32)

	cases := []struct {
		name  string
		world geom.Vec
		want  Node
	}{
		{"origin", geom.Vec{X: 0, Y: 0}, Node{0, 0}},
		{"inside_cell", geom.Vec{X: 31.9, Y: 0}, Node{0, 0}},
		{"next_cell", geom.Vec{X: 32, Y: 0}, Node{1, 0}},
		{"negative", geom.Vec{X: -1, Y: -1}, Node{-1, -1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := g.WorldToGrid(c.world); got != c.want {
				t.Fatalf("WorldToGrid(%v) = %v, want %v", c.world, got, c.want)
			}
		})
	}

	if got := g.GridToWorld(Node{2, 3}); got != (geom.Vec{X: 80, Y: 112}) {
		t.Fatalf("GridToWorld = %v, want cell center (80,112)", got)
	}

	if g.IsWalkable(-1, 0) || g.IsWalkable(0, 10) {
		t.Fatal("out-of-bounds cells must not be walkable")
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
