package component

// StateID identifies a scripted behavior state.
type StateID string

// EventID identifies a scripted behavior event.
type EventID string

// AIState stores the current scripted state of a shade.
type AIState struct {
	Current StateID
}

// AIScript points an entity at the tengo script that drives its behavior.
type AIScript struct {
	Path string
}

var AIStateComponent = NewComponent[AIState]()
var AIScriptComponent = NewComponent[AIScript]()
