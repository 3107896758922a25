package component

import "github.com/hajimehoshi/ebiten/v2"

// Orientation tags which movement clip an animator should show. It replaces
// sprite-pointer comparisons with an explicit enum.
type Orientation int

const (
	OrientationNone Orientation = iota
	OrientationHorizontal
	OrientationVertical
)

func (o Orientation) String() string {
	switch o {
	case OrientationHorizontal:
		return "horizontal"
	case OrientationVertical:
		return "vertical"
	default:
		return "none"
	}
}

// AnimationDef describes one clip on a spritesheet. Frames run
// left-to-right starting at (Row, ColStart).
type AnimationDef struct {
	Name       string
	Row        int
	ColStart   int
	FrameCount int
	FrameW     int
	FrameH     int
	FPS        float64
	Loop       bool
}

// Animator plays named clips off a shared sheet. Play is restart-safe: asking
// for the clip that is already running keeps its current frame.
type Animator struct {
	Sheet       *ebiten.Image
	Defs        map[string]AnimationDef
	Current     string
	Orientation Orientation
	Frame       int
	Elapsed     float64
	Playing     bool
	FlipX       bool
}

// Play switches to the named clip unless it is already the active one.
func (a *Animator) Play(name string) {
	if a.Current == name && a.Playing {
		return
	}
	if _, ok := a.Defs[name]; !ok {
		return
	}
	a.Current = name
	a.Frame = 0
	a.Elapsed = 0
	a.Playing = true
}

// SetOrientation picks the movement clip for the given axis without
// restarting an already-playing identical clip.
func (a *Animator) SetOrientation(o Orientation) {
	if a.Orientation == o {
		return
	}
	a.Orientation = o
	switch o {
	case OrientationHorizontal:
		a.Play("walk_horizontal")
	case OrientationVertical:
		a.Play("walk_vertical")
	}
}

// Advance moves clip time forward by dt seconds.
func (a *Animator) Advance(dt float64) {
	if !a.Playing {
		return
	}
	def, ok := a.Defs[a.Current]
	if !ok || def.FrameCount <= 1 || def.FPS <= 0 {
		return
	}
	a.Elapsed += dt
	frameTime := 1.0 / def.FPS
	for a.Elapsed >= frameTime {
		a.Elapsed -= frameTime
		a.Frame++
		if a.Frame >= def.FrameCount {
			if def.Loop {
				a.Frame = 0
			} else {
				a.Frame = def.FrameCount - 1
				a.Playing = false
				return
			}
		}
	}
}

var AnimatorComponent = NewComponent[Animator]()
