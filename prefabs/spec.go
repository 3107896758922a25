package prefabs

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/ghostlight/nav"
	"github.com/milk9111/ghostlight/physics"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type RectSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type GridSpec struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	TileSize float64 `yaml:"tile_size"`
}

type GhostSpec struct {
	Spawn     PointSpec   `yaml:"spawn"`
	Waypoints []PointSpec `yaml:"waypoints"`
}

// ShadeSpec describes an ECS-driven shade: a script-steered apparition that
// routes through the navigation grid.
type ShadeSpec struct {
	Spawn          PointSpec     `yaml:"spawn"`
	Script         string        `yaml:"script"`
	ChaseSpeed     float64       `yaml:"chase_speed"`
	DetectionRange float64       `yaml:"detection_range"`
	Pathfinding    bool          `yaml:"pathfinding"`
	Size           PointSpec     `yaml:"size"`
	Sprite         SpriteSpec    `yaml:"sprite"`
	Animation      AnimationSpec `yaml:"animation"`
}

type SpriteSpec struct {
	Image   string  `yaml:"image"`
	OriginX float64 `yaml:"origin_x"`
	OriginY float64 `yaml:"origin_y"`
}

type AnimationSpec struct {
	Sheet   string                      `yaml:"sheet"`
	Defs    map[string]AnimationDefSpec `yaml:"defs"`
	Current string                      `yaml:"current"`
}

type AnimationDefSpec struct {
	Row        int     `yaml:"row"`
	ColStart   int     `yaml:"col_start"`
	FrameCount int     `yaml:"frame_count"`
	FrameW     int     `yaml:"frame_w"`
	FrameH     int     `yaml:"frame_h"`
	FPS        float64 `yaml:"fps"`
	Loop       bool    `yaml:"loop"`
}

// LevelSpec is an authored level: grid dimensions, wall rects, hide spots,
// the exit, and actor spawns.
type LevelSpec struct {
	Name      string      `yaml:"name"`
	Grid      GridSpec    `yaml:"grid"`
	Walls     []RectSpec  `yaml:"walls"`
	HideSpots []RectSpec  `yaml:"hide_spots"`
	Exit      RectSpec    `yaml:"exit"`
	Player    PointSpec   `yaml:"player"`
	Ghosts    []GhostSpec `yaml:"ghosts"`
	Shades    []ShadeSpec `yaml:"shades"`
}

// BuildNavGrid constructs the navigation grid, marking every cell a wall
// rect touches as blocked. Returns nil when the grid section is absent.
func (s *LevelSpec) BuildNavGrid() *nav.Grid {
	g := s.Grid
	if g.Width <= 0 || g.Height <= 0 || g.TileSize <= 0 {
		return nil
	}
	grid := nav.NewGrid(g.Width, g.Height, g.TileSize)
	for _, r := range s.Walls {
		startX := int(math.Floor(r.X / g.TileSize))
		startY := int(math.Floor(r.Y / g.TileSize))
		endX := int(math.Floor((r.X + r.W - 0.001) / g.TileSize))
		endY := int(math.Floor((r.Y + r.H - 0.001) / g.TileSize))
		for y := startY; y <= endY; y++ {
			for x := startX; x <= endX; x++ {
				grid.SetWalkable(x, y, false)
			}
		}
	}
	return grid
}

func LoadLevelSpec(filename string) (*LevelSpec, error) {
	spec, err := LoadSpec[LevelSpec](filename)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// TuningSpec carries the actor configs so balance edits hot-reload.
type TuningSpec struct {
	Player physics.PlayerConfig `yaml:"player"`
	Ghost  physics.GhostConfig  `yaml:"ghost"`
}

func LoadTuningSpec() (*TuningSpec, error) {
	spec, err := LoadSpec[TuningSpec]("tuning.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
