package ecs

// sparseSet is cache-friendly component storage keyed by entity ID.
type sparseSet struct {
	denseEntities []Entity
	denseValues   []any
	sparse        []int
}

func (s *sparseSet) has(id int) bool {
	if s == nil || id <= 0 || id-1 >= len(s.sparse) {
		return false
	}
	idx := s.sparse[id-1]
	return idx >= 0 && idx < len(s.denseEntities) && s.denseEntities[idx].ID == id
}

func (s *sparseSet) get(id int) any {
	if !s.has(id) {
		return nil
	}
	return s.denseValues[s.sparse[id-1]]
}

func (s *sparseSet) set(e Entity, v any) {
	if s == nil || e.ID <= 0 {
		return
	}
	for e.ID-1 >= len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if s.has(e.ID) {
		idx := s.sparse[e.ID-1]
		s.denseEntities[idx] = e
		s.denseValues[idx] = v
		return
	}
	s.denseEntities = append(s.denseEntities, e)
	s.denseValues = append(s.denseValues, v)
	s.sparse[e.ID-1] = len(s.denseEntities) - 1
}

func (s *sparseSet) remove(id int) bool {
	if !s.has(id) {
		return false
	}
	idx := s.sparse[id-1]
	last := len(s.denseEntities) - 1
	lastEnt := s.denseEntities[last]

	s.denseEntities[idx] = s.denseEntities[last]
	s.denseValues[idx] = s.denseValues[last]
	s.sparse[lastEnt.ID-1] = idx

	s.denseEntities = s.denseEntities[:last]
	s.denseValues = s.denseValues[:last]
	s.sparse[id-1] = -1
	return true
}

func (s *sparseSet) entities() []Entity {
	if s == nil {
		return nil
	}
	return s.denseEntities
}
