package solver

import "github.com/beka-birhanu/gomaze/maze"

type dfsFrame struct {
	cell   *maze.Cell
	parent *maze.Cell
}

// solveDFS explores eagerly from the start cell. A cell may sit on the
// stack several times; only its first pop assigns its value and expands
// its neighbors, later pops are no-ops. The resulting values follow the
// exploration order, so the reconstructed path is not guaranteed shortest.
func (s *Solver) solveDFS() (int, bool) {
	m := s.maze
	start, end := m.StartCell(), m.EndCell()

	stack := []dfsFrame{{cell: start}}

	for len(stack) > 0 {
		if s.isCanceled() {
			return 0, true
		}

		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cell := frame.cell
		if cell.Value != 0 {
			continue
		}
		if frame.parent == nil {
			cell.Value = 1
		} else {
			cell.Value = frame.parent.Value + 1
		}
		cell.Parent = frame.parent

		if cell == end {
			return s.markSolutionPath(), false
		}
		m.SetCellType(cell, maze.PathHead)

		for _, dir := range maze.Directions {
			next := m.Neighbor(cell, dir, 1)
			if next == nil || next.Type == maze.Wall || next.Value != 0 {
				continue
			}
			if next != end {
				m.SetCellType(next, maze.PathVisited)
			}
			stack = append(stack, dfsFrame{cell: next, parent: cell})
		}

		s.pause()
	}

	return 0, false
}
