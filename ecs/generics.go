package ecs

import "github.com/milk9111/ghostlight/ecs/component"

// Add attaches v to e under the given kind, replacing any existing value.
// The pointer is stored directly; callers mutate components in place.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], v *T) error {
	if v == nil {
		return component.ErrNilComponent
	}
	return w.addComponent(e, kind.ID(), v)
}

// Get returns e's component of the given kind, or false when e is dead or
// has none.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	v, ok := w.getComponent(e, kind.ID())
	if !ok {
		return nil, false
	}
	t, ok := v.(*T)
	return t, ok
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	_, ok := Get(w, e, kind)
	return ok
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	return w.removeComponent(e, kind.ID())
}

// ForEach calls fn for every live entity holding the kind. Removing the
// visited entity's component inside fn is safe; adding components of the
// same kind is not.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(e Entity, v *T)) {
	ents := w.entitiesWith(kind.ID())
	for i := len(ents) - 1; i >= 0; i-- {
		e := ents[i]
		if v, ok := Get(w, e, kind); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits entities holding both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(e Entity, a *A, b *B)) {
	ents := w.entitiesWith(ka.ID())
	for i := len(ents) - 1; i >= 0; i-- {
		e := ents[i]
		a, ok := Get(w, e, ka)
		if !ok {
			continue
		}
		b, ok := Get(w, e, kb)
		if !ok {
			continue
		}
		fn(e, a, b)
	}
}

// ForEach3 visits entities holding all three kinds.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(e Entity, a *A, b *B, c *C)) {
	ents := w.entitiesWith(ka.ID())
	for i := len(ents) - 1; i >= 0; i-- {
		e := ents[i]
		a, ok := Get(w, e, ka)
		if !ok {
			continue
		}
		b, ok := Get(w, e, kb)
		if !ok {
			continue
		}
		c, ok := Get(w, e, kc)
		if !ok {
			continue
		}
		fn(e, a, b, c)
	}
}

// First returns the first live entity holding the kind, for singleton
// components like the player tag.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	for _, e := range w.entitiesWith(kind.ID()) {
		if w.entities.isAlive(e) {
			return e, true
		}
	}
	return Entity{}, false
}

// Query returns every live entity holding the kind.
func Query[T any](w *World, kind component.ComponentKind[T]) []Entity {
	ents := w.entitiesWith(kind.ID())
	out := make([]Entity, 0, len(ents))
	for _, e := range ents {
		if w.entities.isAlive(e) {
			out = append(out, e)
		}
	}
	return out
}
