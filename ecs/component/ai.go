package component

// EntityRef mirrors an ecs.Entity handle. Components cannot import the ecs
// package, so refs are stored in this convertible form.
type EntityRef struct {
	ID  int
	Gen int
}

func (r EntityRef) Valid() bool {
	return r.ID > 0
}

// AIAgent drives per-entity steering toward a target entity.
type AIAgent struct {
	ChaseSpeed         float64
	DetectionRange     float64
	Target             EntityRef
	PathfindingEnabled bool
}

var AIAgentComponent = NewComponent[AIAgent]()
