package prefabs

import "testing"

func TestLoadLevelSpec(t *testing.T) {
	spec, err := LoadLevelSpec("level1.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.Grid.Width != 40 || spec.Grid.Height != 23 || spec.Grid.TileSize != 32 {
		t.Fatalf("unexpected grid: %+v", spec.Grid)
	}
	if spec.Player.X == 0 && spec.Player.Y == 0 {
		t.Fatal("expected a player spawn")
	}
	if len(spec.Walls) == 0 || len(spec.Ghosts) == 0 || len(spec.Shades) == 0 {
		t.Fatalf("expected walls, ghosts, and shades; got %d/%d/%d",
			len(spec.Walls), len(spec.Ghosts), len(spec.Shades))
	}
	for i, g := range spec.Ghosts {
		if len(g.Waypoints) == 0 {
			t.Fatalf("ghost %d has no waypoints", i)
		}
	}
}

func TestLoadLevelSpec_Missing(t *testing.T) {
	if _, err := LoadLevelSpec("no_such_level.yaml"); err == nil {
		t.Fatal("expected error for missing level")
	}
}

func TestLoadTuningSpec(t *testing.T) {
	tuning, err := LoadTuningSpec()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tuning.Player.MaxStamina != 100 {
		t.Fatalf("unexpected stamina: %v", tuning.Player.MaxStamina)
	}
	if tuning.Ghost.DetectionRange != 120 {
		t.Fatalf("unexpected detection range: %v", tuning.Ghost.DetectionRange)
	}
}

func TestBuildNavGrid(t *testing.T) {
	spec := &LevelSpec{
		Grid: GridSpec{Width: 10, Height: 10, TileSize: 32},
		Walls: []RectSpec{
			{X: 0, Y: 0, W: 320, H: 32},  // top row
			{X: 64, Y: 64, W: 32, H: 96}, // interior column
		},
	}

	grid := spec.BuildNavGrid()
	if grid == nil {
		t.Fatal("expected grid")
	}

	for x := 0; x < 10; x++ {
		if grid.IsWalkable(x, 0) {
			t.Fatalf("expected top row blocked at x=%d", x)
		}
	}
	for y := 2; y <= 4; y++ {
		if grid.IsWalkable(2, y) {
			t.Fatalf("expected column blocked at y=%d", y)
		}
	}
	if !grid.IsWalkable(2, 5) {
		t.Fatal("expected cell below column walkable")
	}
	if !grid.IsWalkable(1, 2) {
		t.Fatal("expected cell beside column walkable")
	}
}

func TestBuildNavGrid_NoGridSection(t *testing.T) {
	spec := &LevelSpec{}
	if grid := spec.BuildNavGrid(); grid != nil {
		t.Fatal("expected nil grid without dimensions")
	}
}
