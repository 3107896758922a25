package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/ghostlight/physics"
)

// drawSim renders the simulation actors. Level geometry is drawn by the
// ECS render system; this layer adds the bodies and the flashlight cone.
func drawSim(screen *ebiten.Image, sim *physics.World) {
	if sim == nil {
		return
	}

	if p := sim.Player; p != nil {
		center := p.Body.Center()

		if p.FlashlightOn {
			drawFlashlight(screen, p)
		}

		clr := colornames.Whitesmoke
		if p.Hidden {
			clr = colornames.Darkseagreen
		}
		vector.DrawFilledCircle(screen, float32(center.X), float32(center.Y), float32(p.Body.Radius), clr, true)
	}

	for _, g := range sim.Ghosts {
		center := g.Body.Center()
		var clr color.RGBA
		switch g.State {
		case physics.StateChase:
			clr = colornames.Crimson
		case physics.StateInvestigate:
			clr = colornames.Goldenrod
		default:
			clr = colornames.Slategray
		}
		vector.DrawFilledCircle(screen, float32(center.X), float32(center.Y), float32(g.Body.Radius), clr, true)
	}
}

func drawFlashlight(screen *ebiten.Image, p *physics.Player) {
	center := p.Body.Center()
	half := p.Cfg.FlashlightCone / 2
	beam := color.NRGBA{R: 0xff, G: 0xf2, B: 0xb0, A: 0x50}

	// Fan of short segments approximating the lit cone.
	const rays = 16
	prevX := center.X + math.Cos(p.FlashlightAngle-half)*p.Cfg.FlashlightRange
	prevY := center.Y + math.Sin(p.FlashlightAngle-half)*p.Cfg.FlashlightRange
	vector.StrokeLine(screen, float32(center.X), float32(center.Y), float32(prevX), float32(prevY), 1, beam, true)
	for i := 1; i <= rays; i++ {
		a := p.FlashlightAngle - half + p.Cfg.FlashlightCone*float64(i)/rays
		x := center.X + math.Cos(a)*p.Cfg.FlashlightRange
		y := center.Y + math.Sin(a)*p.Cfg.FlashlightRange
		vector.StrokeLine(screen, float32(prevX), float32(prevY), float32(x), float32(y), 1, beam, true)
		prevX, prevY = x, y
	}
	vector.StrokeLine(screen, float32(center.X), float32(center.Y), float32(prevX), float32(prevY), 1, beam, true)
}

// drawHUD shows the three resource gauges and the hidden indicator.
func drawHUD(screen *ebiten.Image, sim *physics.World) {
	if sim == nil || sim.Player == nil {
		return
	}
	p := sim.Player

	drawGauge(screen, 16, 16, p.Stamina/p.Cfg.MaxStamina, colornames.Mediumseagreen, "STM")
	drawGauge(screen, 16, 34, p.Battery/p.Cfg.MaxBattery, colornames.Khaki, "BAT")
	drawGauge(screen, 16, 52, p.SoundLevel/p.Cfg.MaxSoundLevel, colornames.Mediumpurple, "SND")

	if p.Hidden {
		ebitenutil.DebugPrintAt(screen, "HIDDEN", 16, 70)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.0f", ebiten.ActualFPS()), 16, 690)
}

func drawGauge(screen *ebiten.Image, x, y float32, frac float64, clr color.RGBA, label string) {
	const gaugeW, gaugeH = 120, 10
	frac = math.Max(0, math.Min(1, frac))
	vector.DrawFilledRect(screen, x, y, gaugeW, gaugeH, color.NRGBA{A: 0x90}, false)
	vector.DrawFilledRect(screen, x, y, float32(frac*gaugeW), gaugeH, clr, false)
	ebitenutil.DebugPrintAt(screen, label, int(x)+gaugeW+6, int(y)-3)
}

// drawSimDebug overlays ghost senses and active sound events.
func drawSimDebug(screen *ebiten.Image, sim *physics.World) {
	if sim == nil {
		return
	}
	for _, g := range sim.Ghosts {
		center := g.Body.Center()
		vector.StrokeCircle(screen, float32(center.X), float32(center.Y), float32(g.Cfg.DetectionRange), 1, colornames.Orangered, false)
		vector.StrokeCircle(screen, float32(center.X), float32(center.Y), float32(g.Cfg.HearingRange), 1, colornames.Steelblue, false)
		for i, wp := range g.Waypoints {
			next := g.Waypoints[(i+1)%len(g.Waypoints)]
			vector.StrokeLine(screen, float32(wp.X), float32(wp.Y), float32(next.X), float32(next.Y), 1, colornames.Dimgray, false)
		}
		if g.State == physics.StateInvestigate {
			vector.StrokeCircle(screen, float32(g.InvestigateTarget.X), float32(g.InvestigateTarget.Y), 6, 1, colornames.Goldenrod, false)
		}
	}
	for _, ev := range sim.Sounds.Events() {
		vector.StrokeCircle(screen, float32(ev.Position.X), float32(ev.Position.Y), float32(ev.Intensity), 1, colornames.Mediumpurple, false)
	}
}
