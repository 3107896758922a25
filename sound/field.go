package sound

import "github.com/milk9111/ghostlight/geom"

// DefaultDuration is how long an emitted sound stays audible, in seconds.
const DefaultDuration = 2.0

// Event is a single sound emission.
type Event struct {
	Position  geom.Vec
	Intensity float64
	Timestamp float64
	Duration  float64
}

// Field accumulates time-decayed sound emissions. Timestamps are simulation
// seconds supplied by the caller; the field never reads a wall clock.
type Field struct {
	events []Event
}

func NewField() *Field {
	return &Field{}
}

// AddSound records an emission at pos with the given intensity.
func (f *Field) AddSound(pos geom.Vec, intensity, now float64) {
	f.events = append(f.events, Event{
		Position:  pos,
		Intensity: intensity,
		Timestamp: now,
		Duration:  DefaultDuration,
	})
}

// Update drops events whose duration has elapsed.
func (f *Field) Update(now float64) {
	kept := f.events[:0]
	for _, e := range f.events {
		if now-e.Timestamp <= e.Duration {
			kept = append(kept, e)
		}
	}
	f.events = kept
}

// IntensityAt sums the attenuated intensity of every active event at pos
// using inverse-linear falloff. Querying does not expire events.
func (f *Field) IntensityAt(pos geom.Vec) float64 {
	total := 0.0
	for _, e := range f.events {
		total += e.Intensity / (1 + 0.01*e.Position.Distance(pos))
	}
	return total
}

// Loudest returns the active event with the highest attenuated intensity at
// pos, or false when the field is quiet.
func (f *Field) Loudest(pos geom.Vec) (Event, bool) {
	var best Event
	bestVal := 0.0
	found := false
	for _, e := range f.events {
		v := e.Intensity / (1 + 0.01*e.Position.Distance(pos))
		if !found || v > bestVal {
			best = e
			bestVal = v
			found = true
		}
	}
	return best, found
}

// Events returns the live event list, mainly for debug overlays.
func (f *Field) Events() []Event {
	return f.events
}
