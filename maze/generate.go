package maze

import (
	"math/rand"
)

// Board dimension limits. Dimensions are kept odd so the carving
// algorithm's cell parity holds: open cells live on odd coordinates and
// walls between them on even ones.
const (
	MinRows = 21
	MinCols = 21
	MaxRows = 499
	MaxCols = 499
)

// clampOdd forces n into [min, max] and bumps even values to the next odd.
func clampOdd(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	if n%2 == 0 {
		return n + 1
	}
	return n
}

// validSeed reports whether a carving seed position has the odd/odd parity
// every open cell must have.
func validSeed(row, col int) bool {
	return row%2 == 1 && col%2 == 1
}

// Seed switches the maze to a private random source, so the same seed and
// dimensions reproduce the same board. Without it Generate draws from the
// shared math/rand source.
func (m *Maze) Seed(seed int64) {
	m.Lock()
	m.rng = rand.New(rand.NewSource(seed))
	m.Unlock()
}

// intn draws from the private source when one is set. Callers hold the
// write lock.
func (m *Maze) intn(n int) int {
	if m.rng != nil {
		return m.rng.Intn(n)
	}
	return rand.Intn(n)
}

// Generate builds a new maze. Dimensions are clamped to the documented
// limits, the board is reallocated only when the new grid exceeds the
// previous capacity, a spanning tree is carved over the odd-coordinate
// sub-grid, and extra connections are opened when difficult is requested.
//
// On failure the previous board is left intact.
func (m *Maze) Generate(numRows, numCols int, difficult bool) error {
	numRows = clampOdd(numRows, MinRows, MaxRows)
	numCols = clampOdd(numCols, MinCols, MaxCols)

	m.Lock()
	defer m.Unlock()

	// The seed must land on an open cell under the parity rule. The
	// arithmetic below makes that structurally certain, but carving from a
	// wall would corrupt the whole board, so verify before touching it.
	seedRow := m.intn(numRows-2)/2*2 + 1
	seedCol := m.intn(numCols-2)/2*2 + 1
	if !validSeed(seedRow, seedCol) {
		return ErrInvalidSeed
	}

	if cap(m.board) < numRows*numCols {
		m.board = make([]Cell, numRows*numCols)
	} else {
		m.board = m.board[:numRows*numCols]
	}
	m.numRows = numRows
	m.numCols = numCols
	m.difficult = difficult

	for row := 0; row < numRows; row++ {
		for col := 0; col < numCols; col++ {
			t := Wall
			if row%2 == 1 && col%2 == 1 {
				t = Empty
			}
			m.board[row*numCols+col] = Cell{Row: row, Col: col, Type: t}
		}
	}

	m.carve(seedRow, seedCol)

	m.startCell = m.CellAt(1, 0)
	m.startCell.Type = Start
	m.endCell = m.CellAt(numRows-2, numCols-2)
	m.endCell.Type = End

	if difficult {
		m.carveExtraWalls()
	}

	// Drop the visited markers so the board starts clean.
	for i := range m.board {
		m.board[i].Value = 0
	}
	return nil
}

// carve runs the iterative randomized depth-first carving over the open
// sub-grid. Cell.Value doubles as the visited marker.
//
// The direction rotation gets a fresh random offset on every stack
// inspection, not once per seed; a fixed rotation produces long straight
// corridors instead of windy ones.
func (m *Maze) carve(seedRow, seedCol int) {
	seed := m.CellAt(seedRow, seedCol)
	seed.Value = 1

	stack := []*Cell{seed}
	for len(stack) > 0 {
		cell := stack[len(stack)-1]

		carved := false
		r := m.intn(4)
		for i := 0; i < 4; i++ {
			dir := Directions[(i+r)%4]
			next := m.Neighbor(cell, dir, 2)
			if next == nil || next.Type == Wall || next.Value != 0 {
				continue
			}

			next.Value = 1
			m.Neighbor(cell, dir, 1).Type = Empty
			stack = append(stack, next)
			carved = true
			break
		}

		if !carved {
			stack = stack[:len(stack)-1]
		}
	}
}

// carveExtraWalls opens max(numRows, numCols) additional connections to
// turn the spanning tree into a maze with loops. Only mid-corridor wall
// segments qualify: a wall with exactly two wall neighbors, both vertical
// or both horizontal. Opening a dead end or the top of a T would add a
// trivial spur instead of a real alternative route.
func (m *Maze) carveExtraWalls() {
	count := m.numRows
	if m.numCols > count {
		count = m.numCols
	}

	for i := 0; i < count; i++ {
		for {
			row := m.intn(m.numRows-2) + 1
			col := m.intn(m.numCols-2) + 1
			cell := m.CellAt(row, col)
			if cell.Type != Wall {
				continue
			}

			walls := 0
			if m.IsWall(row-1, col) {
				walls++
			}
			if m.IsWall(row+1, col) {
				walls++
			}
			// One wall above or below means a wall end or the top of a T.
			if walls == 1 {
				continue
			}
			if m.IsWall(row, col-1) {
				walls++
			}
			if m.IsWall(row, col+1) {
				walls++
			}

			if walls == 2 {
				cell.Type = Empty
				break
			}
		}
	}
}
