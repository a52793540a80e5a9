package i

import (
	"time"

	"github.com/beka-birhanu/gomaze/maze"
	"github.com/beka-birhanu/gomaze/solver"
	"github.com/google/uuid"
)

// State is the solve controller's lifecycle state.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateCancelling
	StateDone
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCancelling:
		return "cancelling"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// ProgressEvent is one background-solve notification. Running events are
// emitted on a fixed cadence while the worker runs; exactly one terminal
// Solved or Canceled event follows, after which the channel closes.
type ProgressEvent struct {
	RunID      uuid.UUID
	Status     solver.Status
	PathLength int
	Elapsed    time.Duration
}

// MazeController drives maze creation and solving for a host such as a
// CLI, a GUI or the REST API.
type MazeController interface {
	// Create generates a new maze, clamping dimensions to the board
	// limits. Rejected while a solve is running; on failure the previous
	// maze is left intact.
	Create(numRows, numCols int, difficult bool) error

	// Solve runs the selected strategy on the caller's goroutine and
	// blocks until it finishes or is canceled from elsewhere.
	Solve() (solver.Result, error)

	// SolveAsync runs the strategy on a background worker and returns the
	// run ID with the progress event channel.
	SolveAsync() (uuid.UUID, <-chan ProgressEvent, error)

	// Cancel requests cooperative cancellation and blocks until the
	// background worker has been joined. A no-op when nothing runs.
	Cancel()

	SetAlgorithm(a solver.Algorithm) error
	SetAnimSpeed(speed int)
	SetStartCell(row, col int) error
	SetEndCell(row, col int) error

	State() State
	Algorithm() solver.Algorithm
	PathLength() int
	SolveTime() time.Duration
	NumRows() int
	NumCols() int
	Difficult() bool
	CellType(row, col int) maze.CellType
	CellColor(row, col int) maze.CellColor
	BoardString() string
}
