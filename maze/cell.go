package maze

// CellType classifies a cell on the board. Exactly one type holds for a
// cell at any time.
type CellType uint8

const (
	Empty CellType = iota // open corridor cell
	Wall
	Start
	End
	PathHead     // frontier cell of the running solver
	PathVisited  // cell the solver has expanded
	PathSolution // cell on the reconstructed solution path
)

// String returns the cell type name used by renderers and the REST API.
func (t CellType) String() string {
	switch t {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Start:
		return "start"
	case End:
		return "end"
	case PathHead:
		return "path-head"
	case PathVisited:
		return "path-visited"
	case PathSolution:
		return "path-solution"
	default:
		return "unknown"
	}
}

// CellColor is the display color a renderer should use for a cell.
type CellColor uint8

const (
	White CellColor = iota
	Black
	Red
	Green
	LightGray
	DarkGray
)

// Color maps a cell type to its display color.
func (t CellType) Color() CellColor {
	switch t {
	case Wall:
		return Black
	case Start, End:
		return Red
	case PathHead:
		return DarkGray
	case PathVisited:
		return LightGray
	case PathSolution:
		return Green
	default:
		return White
	}
}

// Direction is one of the four cardinal directions, ordered clockwise so
// that turning is modular arithmetic.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the four cardinal directions in scan order.
var Directions = [4]Direction{North, East, South, West}

// Delta returns the row and column offsets of one step in the direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	default:
		return 0, -1
	}
}

// Left returns the direction after a 90-degree counterclockwise turn.
func (d Direction) Left() Direction {
	return (d + 3) % 4
}

// Right returns the direction after a 90-degree clockwise turn.
func (d Direction) Right() Direction {
	return (d + 1) % 4
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return (d + 2) % 4
}

// Cell represents a single cell in the maze grid. Row and Col are fixed at
// allocation; Type is the current classification; Value, Heuristic and
// Parent are transient solver bookkeeping, reset before every run.
//
// Parent points back into the owning maze's board, never to a standalone
// allocation, so dropping a cell never keeps search state alive.
type Cell struct {
	Row       int
	Col       int
	Type      CellType
	Value     int
	Heuristic int
	Parent    *Cell
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int
	Col int
}

// Distance returns the Manhattan distance between two cells.
func Distance(a, b *Cell) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}
