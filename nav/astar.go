package nav

import (
	"container/heap"
	"math"
)

// FindPath runs A* over the grid's 4-connected cells with unit step cost and
// a Manhattan heuristic. It returns the start-to-goal node sequence, or an
// empty path when either endpoint is blocked or the goal is unreachable.
// Callers must distinguish "already at goal" from "no path" themselves.
func FindPath(g *Grid, start, goal Node) []Node {
	if g == nil || !g.IsWalkable(start.X, start.Y) || !g.IsWalkable(goal.X, goal.Y) {
		return nil
	}

	open := &openSet{}
	heap.Init(open)

	gScore := make(map[Node]float64, 64)
	parent := make(map[Node]Node, 64)
	closed := make(map[Node]bool, 64)

	gScore[start] = 0
	open.push(&openItem{node: start, g: 0, f: heuristic(start, goal)})

	for open.Len() > 0 {
		current := heap.Pop(open).(*openItem)
		if closed[current.node] {
			continue
		}
		closed[current.node] = true

		if current.node == goal {
			return reconstruct(parent, start, goal)
		}

		for _, d := range [4]Node{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			next := Node{X: current.node.X + d.X, Y: current.node.Y + d.Y}
			if closed[next] || !g.IsWalkable(next.X, next.Y) {
				continue
			}
			tentative := gScore[current.node] + 1
			if best, seen := gScore[next]; seen && tentative >= best {
				continue
			}
			gScore[next] = tentative
			parent[next] = current.node
			open.push(&openItem{node: next, g: tentative, f: tentative + heuristic(next, goal)})
		}
	}

	return nil
}

func heuristic(a, b Node) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y))
}

func reconstruct(parent map[Node]Node, start, goal Node) []Node {
	path := []Node{goal}
	for cur := goal; cur != start; {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

type openItem struct {
	node Node
	g    float64
	f    float64
	seq  int
}

// openSet is a min-heap on fCost. Equal fCost entries fall back to insertion
// order so returned paths are reproducible across runs.
type openSet struct {
	items []*openItem
	next  int
}

func (s *openSet) push(it *openItem) {
	it.seq = s.next
	s.next++
	heap.Push(s, it)
}

func (s *openSet) Len() int { return len(s.items) }

func (s *openSet) Less(i, j int) bool {
	a, b := s.items[i], s.items[j]
	if a.f != b.f {
		return a.f < b.f
	}
	return a.seq < b.seq
}

func (s *openSet) Swap(i, j int) {
	s.items[i], s.items[j] = s.items[j], s.items[i]
}

func (s *openSet) Push(x any) {
	s.items = append(s.items, x.(*openItem))
}

func (s *openSet) Pop() any {
	old := s.items
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	s.items = old[:n-1]
	return it
}
