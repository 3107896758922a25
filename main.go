package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/ghostlight/common"
	"github.com/milk9111/ghostlight/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "draw AI paths and sense radii")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "level1.yaml", "level file in prefabs/")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("ghostlight")

	game := NewGame(*levelName, *debug)

	if watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts"); err == nil {
		defer watcher.Close()
		go func() {
			for {
				select {
				case name, ok := <-watcher.Events:
					if !ok {
						return
					}
					log.Printf("prefabs: %s changed, reloading", name)
					game.RequestReload()
				case err, ok := <-watcher.Errors:
					if !ok {
						return
					}
					log.Printf("prefabs: watch error: %v", err)
				}
			}
		}()
	} else {
		log.Printf("prefabs: hot reload disabled: %v", err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
