package solver

import "github.com/beka-birhanu/gomaze/maze"

// solveWallFollow walks the physical corridor with one hand on a wall:
// at every step it tries the turn toward the configured side first, then
// straight ahead, then away, then back, and takes the first open neighbor.
// On a tree-topology maze this always reaches the end cell; on a difficult
// maze the walker can orbit a loop, so the walk gives up once it has taken
// more steps than four board traversals could need.
//
// Cell.Value records the step count of the first visit, which the downhill
// walk in markSolutionPath then trims to the sub-path actually needed.
func (s *Solver) solveWallFollow(turnLeft bool) (int, bool) {
	m := s.maze
	start, end := m.StartCell(), m.EndCell()

	// The start opening faces into the board; the very first try order
	// corrects the orientation anyway if east is walled.
	orientation := maze.East
	initial := orientation

	cur := start
	cur.Value = 1
	step := 1
	maxSteps := 4 * m.NumRows() * m.NumCols()

	for cur != end {
		if s.isCanceled() {
			return 0, true
		}
		if step > maxSteps {
			return 0, false
		}

		var tries [4]maze.Direction
		if turnLeft {
			tries = [4]maze.Direction{
				orientation.Left(), orientation,
				orientation.Right(), orientation.Reverse(),
			}
		} else {
			tries = [4]maze.Direction{
				orientation.Right(), orientation,
				orientation.Left(), orientation.Reverse(),
			}
		}

		var next *maze.Cell
		for _, dir := range tries {
			n := m.Neighbor(cur, dir, 1)
			if n == nil || n.Type == maze.Wall {
				continue
			}
			next = n
			orientation = dir
			break
		}
		if next == nil {
			// Sealed in on all four sides; nowhere to walk.
			return 0, false
		}

		if cur != start {
			m.SetCellType(cur, maze.PathVisited)
		}
		step++
		if next.Value == 0 {
			next.Value = step
		}
		if next != end {
			m.SetCellType(next, maze.PathHead)
		}
		cur = next

		// Back at the start facing the way we left: the whole boundary has
		// been walked without finding the end.
		if cur == start && orientation == initial {
			return 0, false
		}

		s.pause()
	}

	return s.markSolutionPath(), false
}
