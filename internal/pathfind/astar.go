package pathfind

import (
	"container/heap"
	"math"

	"github.com/gspu/vcmi/internal/model"
)

// DefaultMaxIterations limits how many nodes one search may expand.
const DefaultMaxIterations = 7000

// node is a tile in the A* search graph.
type node struct {
	x, y   int32
	parent *node
	gCost  float64 // cost from start
	hCost  float64 // heuristic cost to target
	fCost  float64 // gCost + hCost
	index  int     // heap index
}

type nodeKey struct {
	x, y int32
}

// search holds the parameters of one A* run.
type search struct {
	grid          *Grid
	budget        float64
	maxIterations int
}

// findPath returns the tiles from start (exclusive) to target (inclusive) and
// the path cost, or ok=false if target is unreachable within the budget.
func (s search) findPath(start, target model.Position) (nodes []model.Position, cost float64, ok bool) {
	if start.Z != target.Z || !s.grid.Passable(target) {
		return nil, 0, false
	}
	if start == target {
		return []model.Position{target}, 0, true
	}

	end := s.astar(start.X, start.Y, target.X, target.Y)
	if end == nil {
		return nil, 0, false
	}

	for n := end; n.parent != nil; n = n.parent {
		nodes = append(nodes, model.NewPosition(n.x, n.y, target.Z))
	}
	// A* builds the path backwards
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	return nodes, end.gCost, true
}

func (s search) astar(sx, sy, tx, ty int32) *node {
	start := &node{x: sx, y: sy}
	start.hCost = s.heuristic(sx, sy, tx, ty)
	start.fCost = start.hCost

	open := &nodeHeap{}
	heap.Init(open)
	heap.Push(open, start)

	closed := make(map[nodeKey]struct{}, 256)

	for range s.maxIterations {
		if open.Len() == 0 {
			return nil
		}

		current := heap.Pop(open).(*node)
		if current.x == tx && current.y == ty {
			return current
		}

		key := nodeKey{current.x, current.y}
		if _, done := closed[key]; done {
			continue
		}
		closed[key] = struct{}{}

		s.expandNeighbors(current, tx, ty, open, closed)
	}

	return nil // iteration cap
}

// expandNeighbors pushes reachable adjacent tiles. A diagonal step requires
// both adjacent orthogonal tiles to be passable.
func (s search) expandNeighbors(current *node, tx, ty int32, open *nodeHeap, closed map[nodeKey]struct{}) {
	cardinals := [4]struct{ dx, dy int32 }{
		{0, -1}, // N
		{1, 0},  // E
		{0, 1},  // S
		{-1, 0}, // W
	}
	var passable [4]bool

	push := func(nx, ny int32, weight float64) {
		if _, done := closed[nodeKey{nx, ny}]; done {
			return
		}
		g := current.gCost + weight
		if g > s.budget {
			return
		}
		n := &node{x: nx, y: ny, parent: current, gCost: g, hCost: s.heuristic(nx, ny, tx, ty)}
		n.fCost = n.gCost + n.hCost
		heap.Push(open, n)
	}

	for i, d := range cardinals {
		nx, ny := current.x+d.dx, current.y+d.dy
		c := s.grid.Cost(nx, ny)
		if c == CostImpassable {
			continue
		}
		passable[i] = true
		push(nx, ny, float64(c))
	}

	diagonals := [4]struct {
		dx, dy     int32
		adj1, adj2 int
	}{
		{1, -1, 0, 1},  // NE
		{1, 1, 1, 2},   // SE
		{-1, 1, 2, 3},  // SW
		{-1, -1, 3, 0}, // NW
	}
	for _, d := range diagonals {
		if !passable[d.adj1] || !passable[d.adj2] {
			continue
		}
		nx, ny := current.x+d.dx, current.y+d.dy
		c := s.grid.Cost(nx, ny)
		if c == CostImpassable {
			continue
		}
		push(nx, ny, float64(c)*DiagonalFactor)
	}
}

// heuristic is the octile distance priced at the cheapest terrain.
// It never overestimates the remaining cost.
func (s search) heuristic(x, y, tx, ty int32) float64 {
	dx := math.Abs(float64(x - tx))
	dy := math.Abs(float64(y - ty))
	diag := math.Min(dx, dy)
	straight := math.Max(dx, dy) - diag
	return (straight + diag*DiagonalFactor) * float64(s.grid.minCost)
}

// nodeHeap implements container/heap for the open list (min-heap by fCost).
type nodeHeap []*node

func (h nodeHeap) Len() int           { return len(h) }
func (h nodeHeap) Less(i, j int) bool { return h[i].fCost < h[j].fCost }
func (h nodeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *nodeHeap) Push(x any)        { n := x.(*node); n.index = len(*h); *h = append(*h, n) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	nd := old[n-1]
	old[n-1] = nil // GC
	nd.index = -1
	*h = old[:n-1]
	return nd
}
