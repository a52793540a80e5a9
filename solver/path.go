package solver

import "github.com/beka-birhanu/gomaze/maze"

// markSolutionPath walks from the end cell back toward the start, at each
// step following the orthogonal neighbor with the lowest non-zero value
// strictly below the current cell's, marking the route and counting its
// cells including both endpoints.
//
// For BFS values are exact hop distances, so the walk recovers a shortest
// path. For DFS and the wall followers it recovers a decreasing-value
// route that approximates the walk actually taken. When no strictly lower
// neighbor exists the walk stops and the returned length covers only the
// portion found.
func (s *Solver) markSolutionPath() int {
	m := s.maze
	start := m.StartCell()

	cur := m.EndCell()
	if cur.Value == 0 {
		return 0
	}

	m.SetCellType(cur, maze.PathSolution)
	pathLen := 1
	for cur != start {
		var next *maze.Cell
		for _, dir := range maze.Directions {
			n := m.Neighbor(cur, dir, 1)
			if n == nil || n.Type == maze.Wall {
				continue
			}
			if n.Value == 0 || n.Value >= cur.Value {
				continue
			}
			if next == nil || n.Value < next.Value {
				next = n
			}
		}
		if next == nil {
			break
		}
		m.SetCellType(next, maze.PathSolution)
		pathLen++
		cur = next
	}
	return pathLen
}
