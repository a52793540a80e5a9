package solver

import (
	"sort"

	"github.com/beka-birhanu/gomaze/maze"
)

// astarNode is one open/closed set entry. Entries reference cells in the
// fixed grid and chain to their predecessor entry; no cell copies are
// allocated per frontier node.
type astarNode struct {
	cell      *maze.Cell
	value     int // g: steps from start
	heuristic int // f: value + Manhattan distance to end
	parent    *astarNode
}

// solveAStar runs A* with an open list kept sorted by f-cost. The list is
// a slice with stable insertion, so among equal f-costs the first inserted
// entry wins, and membership tests are linear scans; at 499x499 that is
// deliberate simplicity, a priority queue keyed by (heuristic, insertion
// order) being the natural upgrade.
func (s *Solver) solveAStar() (int, bool) {
	m := s.maze
	start, end := m.StartCell(), m.EndCell()

	first := &astarNode{cell: start, heuristic: maze.Distance(start, end)}
	open := []*astarNode{first}
	closed := make(map[*maze.Cell]struct{})

	for len(open) > 0 {
		if s.isCanceled() {
			return 0, true
		}

		node := open[0]
		open = open[1:]
		if _, done := closed[node.cell]; done {
			continue
		}
		closed[node.cell] = struct{}{}

		// Mirror the entry into the grid for rendering and accessors.
		node.cell.Value = node.value
		node.cell.Heuristic = node.heuristic
		if node.parent != nil {
			node.cell.Parent = node.parent.cell
		}

		if node.cell == end {
			return s.markParentChain(node), false
		}
		m.SetCellType(node.cell, maze.PathVisited)

		for _, dir := range maze.Directions {
			next := m.Neighbor(node.cell, dir, 1)
			if next == nil || next.Type == maze.Wall {
				continue
			}
			if _, done := closed[next]; done {
				continue
			}

			cand := &astarNode{
				cell:   next,
				value:  node.value + 1,
				parent: node,
			}
			cand.heuristic = cand.value + maze.Distance(next, end)

			if openHasBetter(open, cand) {
				continue
			}
			open = insertByHeuristic(open, cand)
			if next != end {
				m.SetCellType(next, maze.PathHead)
			}
		}

		s.pause()
	}

	return 0, false
}

// markParentChain marks the solution path by following the explicit parent
// links A* maintains, returning the cell count including both endpoints.
func (s *Solver) markParentChain(node *astarNode) int {
	pathLen := 0
	for n := node; n != nil; n = n.parent {
		s.maze.SetCellType(n.cell, maze.PathSolution)
		pathLen++
	}
	return pathLen
}

// openHasBetter reports whether the open list already holds an entry for
// the same cell with an equal or lower g-cost.
func openHasBetter(open []*astarNode, cand *astarNode) bool {
	for _, n := range open {
		if n.cell == cand.cell && n.value <= cand.value {
			return true
		}
	}
	return false
}

// insertByHeuristic inserts the node keeping the list sorted by f-cost,
// after any entries with an equal f-cost so ties keep insertion order.
func insertByHeuristic(open []*astarNode, node *astarNode) []*astarNode {
	idx := sort.Search(len(open), func(i int) bool {
		return open[i].heuristic > node.heuristic
	})
	open = append(open, nil)
	copy(open[idx+1:], open[idx:])
	open[idx] = node
	return open
}
