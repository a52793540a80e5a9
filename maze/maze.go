/*
Package maze provides the grid model and generator for rectangular mazes.

A maze owns a row-major board of cells, a start cell and an end cell. The
generator carves a spanning tree over the odd-coordinate sub-grid and can
perturb it with extra wall removals for a more difficult layout. Solvers
mutate cell classification and bookkeeping in place; the wall layout never
changes between generations.

Cell type reads and writes go through the embedded read-write lock so a
renderer polling the board during a solve never observes a torn cell. Board
topology (wall layout, cell addresses) is immutable while a solve runs, so
the lookup helpers are lock-free. Dimensions and difficulty are rewritten
by Generate, so their accessors take the read lock.
*/
package maze

import (
	"errors"
	"math/rand"
	"strings"
	"sync"
	"sync/atomic"
)

// Board and placement errors.
var (
	ErrInvalidSeed      = errors.New("carving seed landed on a wall cell")
	ErrOutOfBounds      = errors.New("cell position out of bounds")
	ErrInvalidPlacement = errors.New("invalid start/end cell placement")
)

// Maze is a rectangular grid of cells with a single start and end.
type Maze struct {
	numRows int
	numCols int
	board   []Cell // row-major; reallocated only when capacity is exceeded

	startCell *Cell
	endCell   *Cell

	difficult bool
	animSpeed int32 // 0-100, accessed atomically; 100 disables pacing

	rng *rand.Rand // nil means the shared math/rand source

	sync.RWMutex
}

// New returns an empty maze. Generate must be called before use.
func New() *Maze {
	return &Maze{animSpeed: 100}
}

// NumRows returns the number of rows on the board.
func (m *Maze) NumRows() int {
	m.RLock()
	defer m.RUnlock()
	return m.numRows
}

// NumCols returns the number of columns on the board.
func (m *Maze) NumCols() int {
	m.RLock()
	defer m.RUnlock()
	return m.numCols
}

// StartCell returns the current start cell.
func (m *Maze) StartCell() *Cell {
	return m.startCell
}

// EndCell returns the current end cell.
func (m *Maze) EndCell() *Cell {
	return m.endCell
}

// Difficult reports whether the last generation carved extra connections.
func (m *Maze) Difficult() bool {
	m.RLock()
	defer m.RUnlock()
	return m.difficult
}

// AnimSpeed returns the animation speed, 0 (slowest) to 100 (no delay).
func (m *Maze) AnimSpeed() int {
	return int(atomic.LoadInt32(&m.animSpeed))
}

// SetAnimSpeed updates the animation speed, clamping to [0, 100]. Safe to
// call while a solve is running.
func (m *Maze) SetAnimSpeed(speed int) {
	if speed < 0 {
		speed = 0
	} else if speed > 100 {
		speed = 100
	}
	atomic.StoreInt32(&m.animSpeed, int32(speed))
}

// InBound checks whether a position is on the board.
func (m *Maze) InBound(row, col int) bool {
	return row >= 0 && row < m.numRows && col >= 0 && col < m.numCols
}

// CellAt returns the cell at the given position, or nil when the position
// is out of bounds. It never indexes out of range.
func (m *Maze) CellAt(row, col int) *Cell {
	if !m.InBound(row, col) {
		return nil
	}
	return &m.board[row*m.numCols+col]
}

// IsWall reports whether the cell at the position is a wall. Out-of-bounds
// positions are not walls.
func (m *Maze) IsWall(row, col int) bool {
	cell := m.CellAt(row, col)
	return cell != nil && cell.Type == Wall
}

// Neighbor returns the cell offset steps away from c in the given
// direction, or nil when it falls off the board.
func (m *Maze) Neighbor(c *Cell, dir Direction, offset int) *Cell {
	dr, dc := dir.Delta()
	return m.CellAt(c.Row+dr*offset, c.Col+dc*offset)
}

// IsPerimeter reports whether the cell lies on the outer border.
func (m *Maze) IsPerimeter(c *Cell) bool {
	return c.Row == 0 || c.Row == m.numRows-1 ||
		c.Col == 0 || c.Col == m.numCols-1
}

// CellType returns the classification of the cell at the position, Wall for
// out-of-bounds positions.
func (m *Maze) CellType(row, col int) CellType {
	m.RLock()
	defer m.RUnlock()

	cell := m.CellAt(row, col)
	if cell == nil {
		return Wall
	}
	return cell.Type
}

// CellColor returns the display color of the cell at the position.
func (m *Maze) CellColor(row, col int) CellColor {
	return m.CellType(row, col).Color()
}

// SetCellType updates a cell's classification under the write lock.
func (m *Maze) SetCellType(c *Cell, t CellType) {
	m.Lock()
	c.Type = t
	m.Unlock()
}

// ClearBoard resets every non-wall cell to a clean pre-solve state: type
// Empty, zero bookkeeping, no parent. The start and end cells keep their
// classification.
func (m *Maze) ClearBoard() {
	m.Lock()
	defer m.Unlock()

	for i := range m.board {
		cell := &m.board[i]
		if cell.Type == Wall {
			continue
		}
		cell.Type = Empty
		cell.Value = 0
		cell.Heuristic = 0
		cell.Parent = nil
	}
	m.startCell.Type = Start
	m.endCell.Type = End
}

// PlaceStart relocates the start cell. Interior walls are rejected;
// perimeter walls are accepted only when at least one orthogonal neighbor
// is open. The previous start cell reverts to a wall on the perimeter and
// to an open cell elsewhere.
func (m *Maze) PlaceStart(row, col int) error {
	return m.placeEndpoint(row, col, &m.startCell, Start)
}

// PlaceEnd relocates the end cell under the same placement rules as
// PlaceStart.
func (m *Maze) PlaceEnd(row, col int) error {
	return m.placeEndpoint(row, col, &m.endCell, End)
}

func (m *Maze) placeEndpoint(row, col int, slot **Cell, t CellType) error {
	m.Lock()
	defer m.Unlock()

	cell := m.CellAt(row, col)
	if cell == nil {
		return ErrOutOfBounds
	}
	if cell == m.startCell || cell == m.endCell {
		if cell == *slot {
			return nil
		}
		return ErrInvalidPlacement
	}
	if cell.Type == Wall {
		if !m.IsPerimeter(cell) {
			return ErrInvalidPlacement
		}
		if !m.hasOpenNeighbor(cell) {
			return ErrInvalidPlacement
		}
	}

	prev := *slot
	if prev != nil {
		if m.IsPerimeter(prev) {
			prev.Type = Wall
		} else {
			prev.Type = Empty
		}
	}
	cell.Type = t
	*slot = cell
	return nil
}

func (m *Maze) hasOpenNeighbor(c *Cell) bool {
	for _, dir := range Directions {
		if n := m.Neighbor(c, dir, 1); n != nil && n.Type != Wall {
			return true
		}
	}
	return false
}

// String renders the board as ASCII text: X for walls, O for solution path
// cells and spaces for open cells.
func (m *Maze) String() string {
	m.RLock()
	defer m.RUnlock()

	var b strings.Builder
	for row := 0; row < m.numRows; row++ {
		for col := 0; col < m.numCols; col++ {
			switch m.board[row*m.numCols+col].Type {
			case Wall:
				b.WriteByte('X')
			case PathSolution:
				b.WriteByte('O')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
