package solver

import "github.com/beka-birhanu/gomaze/maze"

// solveBFS expands the frontier level by level from the start cell.
// Cell.Value stores the hop distance, start cell included, so the first
// time the end cell is dequeued its value is the unweighted shortest path
// length and the downhill walk recovers that path exactly.
func (s *Solver) solveBFS() (int, bool) {
	m := s.maze
	start, end := m.StartCell(), m.EndCell()

	start.Value = 1
	queue := []*maze.Cell{start}

	for len(queue) > 0 {
		if s.isCanceled() {
			return 0, true
		}

		cell := queue[0]
		queue = queue[1:]

		if cell == end {
			return s.markSolutionPath(), false
		}
		m.SetCellType(cell, maze.PathVisited)

		for _, dir := range maze.Directions {
			next := m.Neighbor(cell, dir, 1)
			// Value == 0 means never reached; anything else is already on
			// or behind the frontier.
			if next == nil || next.Type == maze.Wall || next.Value != 0 {
				continue
			}
			next.Value = cell.Value + 1
			next.Parent = cell
			if next != end {
				m.SetCellType(next, maze.PathHead)
			}
			queue = append(queue, next)
		}

		s.pause()
	}

	return 0, false
}
