package component

import "github.com/milk9111/ghostlight/nav"

// PathFollower caches the last computed route for an AI entity. Living on
// the entity means the cache dies with it instead of lingering in a system
// map.
type PathFollower struct {
	Path        []nav.Node
	Index       int
	RepathTimer float64
}

// Clear drops the cached route so the next steering pass recomputes it.
func (p *PathFollower) Clear() {
	p.Path = nil
	p.Index = 0
}

var PathFollowerComponent = NewComponent[PathFollower]()
