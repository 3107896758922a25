// Command levelcheck validates authored levels without opening a window:
// it rebuilds the navigation grid from the wall rects and verifies the
// exit, ghost waypoints, and shade spawns are reachable from the player
// spawn.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/ghostlight/geom"
	"github.com/milk9111/ghostlight/nav"
	"github.com/milk9111/ghostlight/prefabs"
)

func main() {
	levelName := flag.String("level", "level1.yaml", "level file in prefabs/")
	flag.Parse()

	spec, err := prefabs.LoadLevelSpec(*levelName)
	if err != nil {
		log.Fatalf("levelcheck: %v", err)
	}

	grid := spec.BuildNavGrid()
	if grid == nil {
		log.Fatalf("levelcheck: %s has no usable grid section", *levelName)
	}

	failures := 0
	start := grid.WorldToGrid(geom.Vec{X: spec.Player.X, Y: spec.Player.Y})
	if !grid.IsWalkable(start.X, start.Y) {
		fmt.Printf("FAIL player spawn (%.0f, %.0f) is inside a wall\n", spec.Player.X, spec.Player.Y)
		failures++
	}

	check := func(label string, x, y float64) {
		goal := grid.WorldToGrid(geom.Vec{X: x, Y: y})
		if len(nav.FindPath(grid, start, goal)) == 0 && goal != start {
			fmt.Printf("FAIL %s (%.0f, %.0f) unreachable from player spawn\n", label, x, y)
			failures++
			return
		}
		fmt.Printf("ok   %s (%.0f, %.0f)\n", label, x, y)
	}

	if spec.Exit.W > 0 {
		check("exit", spec.Exit.X+spec.Exit.W/2, spec.Exit.Y+spec.Exit.H/2)
	}
	for i, g := range spec.Ghosts {
		for j, wp := range g.Waypoints {
			check(fmt.Sprintf("ghost %d waypoint %d", i, j), wp.X, wp.Y)
		}
	}
	for i, s := range spec.Shades {
		check(fmt.Sprintf("shade %d spawn", i), s.Spawn.X, s.Spawn.Y)
	}

	if failures > 0 {
		fmt.Printf("%s: %d problem(s)\n", *levelName, failures)
		os.Exit(1)
	}
	fmt.Printf("%s: all checks passed\n", *levelName)
}
