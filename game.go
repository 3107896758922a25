package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/ghostlight/common"
	"github.com/milk9111/ghostlight/ecs/system"
	"github.com/milk9111/ghostlight/physics"
)

const simStep = 1.0 / 60.0

type Game struct {
	level     *Level
	levelName string
	debug     bool

	input  *system.InputSystem
	anim   *system.AnimationSystem
	render *system.RenderSystem

	paused  bool
	pauseUI *uiOverlay
	endUI   *uiOverlay

	reload chan struct{}
}

func NewGame(levelName string, debug bool) *Game {
	g := &Game{
		levelName: levelName,
		debug:     debug,
		anim:      system.NewAnimationSystem(),
		render:    system.NewRenderSystem(),
		reload:    make(chan struct{}, 1),
	}
	if err := g.loadLevel(); err != nil {
		log.Fatalf("game: %v", err)
	}
	g.pauseUI = newPauseUI(g)
	return g
}

func (g *Game) loadLevel() error {
	lvl, err := LoadLevel(g.levelName)
	if err != nil {
		return err
	}
	g.level = lvl
	g.input = system.NewInputSystem(lvl.Sim)
	g.endUI = nil
	return nil
}

// RequestReload asks the game to rebuild the level on the next update.
// Called from the prefab watcher goroutine.
func (g *Game) RequestReload() {
	select {
	case g.reload <- struct{}{}:
	default:
	}
}

func (g *Game) Update() error {
	select {
	case <-g.reload:
		if err := g.loadLevel(); err != nil {
			log.Printf("game: reload failed, keeping current level: %v", err)
		} else {
			log.Printf("game: level reloaded")
		}
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.RequestReload()
	}

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	lvl := g.level
	if lvl.Sim.Condition != physics.StatusRunning {
		if g.endUI == nil {
			g.endUI = newEndUI(g, lvl.Sim.Condition)
		}
		g.endUI.Update()
		return nil
	}

	g.input.Update()
	lvl.Sim.Update(simStep)
	lvl.SyncPlayerMirror()
	lvl.Script.Update(lvl.World, simStep)
	lvl.AI.Update(lvl.World, simStep)
	g.anim.Update(lvl.World, simStep)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	lvl := g.level
	g.render.Draw(lvl.World, screen)
	drawSim(screen, lvl.Sim)
	drawHUD(screen, lvl.Sim)

	if g.debug {
		lvl.AI.RenderDebug(&system.ScreenDraw{Screen: screen}, lvl.World)
		drawSimDebug(screen, lvl.Sim)
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	} else if g.endUI != nil {
		g.endUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
