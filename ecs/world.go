package ecs

import "github.com/milk9111/ghostlight/ecs/component"

// World owns entities and per-kind component stores. Destroying an entity
// removes its components immediately, so nothing keyed by the handle can
// outlive it.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*sparseSet
}

func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*sparseSet)}
}

func CreateEntity(w *World) Entity {
	return w.entities.create()
}

func DestroyEntity(w *World, e Entity) bool {
	if !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e.ID)
	}
	return true
}

func IsAlive(w *World, e Entity) bool {
	return w.entities.isAlive(e)
}

// Entities returns every live entity.
func Entities(w *World) []Entity {
	out := make([]Entity, 0, w.entities.nextID)
	for id := 1; id <= len(w.entities.gen); id++ {
		if w.entities.alive[id-1] {
			out = append(out, Entity{ID: id, Gen: w.entities.gen[id-1]})
		}
	}
	return out
}

func (w *World) store(id component.ComponentID) *sparseSet {
	s, ok := w.stores[id]
	if !ok {
		s = &sparseSet{}
		w.stores[id] = s
	}
	return s
}

func (w *World) addComponent(e Entity, id component.ComponentID, v any) error {
	if id == 0 {
		return component.ErrInvalidComponentKind
	}
	if v == nil {
		return component.ErrNilComponent
	}
	if !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(id).set(e, v)
	return nil
}

func (w *World) getComponent(e Entity, id component.ComponentID) (any, bool) {
	if !w.entities.isAlive(e) {
		return nil, false
	}
	s, ok := w.stores[id]
	if !ok {
		return nil, false
	}
	v := s.get(e.ID)
	return v, v != nil
}

func (w *World) removeComponent(e Entity, id component.ComponentID) bool {
	s, ok := w.stores[id]
	if !ok {
		return false
	}
	return s.remove(e.ID)
}

func (w *World) entitiesWith(id component.ComponentID) []Entity {
	s, ok := w.stores[id]
	if !ok {
		return nil
	}
	return s.entities()
}
