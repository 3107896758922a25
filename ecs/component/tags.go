package component

// Tag labels an entity with a free-form name. The steering system treats
// "Background" and "StressTest" tagged entities as non-blocking.
type Tag struct {
	Name string
}

var TagComponent = NewComponent[Tag]()

const (
	TagBackground = "Background"
	TagStressTest = "StressTest"
)

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type ShadeTag struct{}

var ShadeTagComponent = NewComponent[ShadeTag]()
