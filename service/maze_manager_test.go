package service

import (
	"testing"
	"time"

	"github.com/beka-birhanu/gomaze/maze"
	"github.com/beka-birhanu/gomaze/service/i"
	"github.com/beka-birhanu/gomaze/solver"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, rows, cols int, algorithm solver.Algorithm) *MazeManager {
	t.Helper()
	mgr, err := NewMazeManager(&Config{
		NumRows:          rows,
		NumCols:          cols,
		Algorithm:        algorithm,
		AnimSpeed:        100,
		ProgressInterval: 20 * time.Millisecond,
	})
	require.NoError(t, err)
	return mgr
}

// newSlowManager returns a manager whose solve takes long enough to
// observe and cancel: a large board at the slowest animation speed.
func newSlowManager(t *testing.T, algorithm solver.Algorithm) *MazeManager {
	t.Helper()
	mgr := newTestManager(t, 499, 499, algorithm)
	mgr.SetAnimSpeed(0)
	return mgr
}

func TestSolveSynchronous(t *testing.T) {
	mgr := newTestManager(t, 21, 21, solver.BFS)

	res, err := mgr.Solve()
	require.NoError(t, err)

	assert.Equal(t, solver.StatusSolved, res.Status)
	assert.Positive(t, res.PathLength)
	assert.Equal(t, i.StateDone, mgr.State())
	assert.Equal(t, res.PathLength, mgr.PathLength())
	assert.Positive(t, mgr.SolveTime())
}

func TestSolveAsyncLifecycle(t *testing.T) {
	mgr := newTestManager(t, 21, 21, solver.AStar)

	runID, events, err := mgr.SolveAsync()
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, runID)

	var received []i.ProgressEvent
	for ev := range events {
		assert.Equal(t, runID, ev.RunID)
		received = append(received, ev)
	}

	require.NotEmpty(t, received)
	last := received[len(received)-1]
	assert.Equal(t, solver.StatusSolved, last.Status)
	assert.Positive(t, last.PathLength)
	for _, ev := range received[:len(received)-1] {
		assert.Equal(t, solver.StatusRunning, ev.Status)
	}

	assert.Equal(t, i.StateDone, mgr.State())
	// The worker is already joined; Cancel must return immediately.
	mgr.Cancel()
}

func TestCancelAsyncSolve(t *testing.T) {
	mgr := newSlowManager(t, solver.BFS)

	runID, events, err := mgr.SolveAsync()
	require.NoError(t, err)

	mgr.Cancel()

	var last i.ProgressEvent
	for ev := range events {
		last = ev
	}
	assert.Equal(t, runID, last.RunID)
	assert.Equal(t, solver.StatusCanceled, last.Status)
	assert.Zero(t, last.PathLength)
	assert.Equal(t, i.StateDone, mgr.State())
	assert.Zero(t, mgr.PathLength())
}

func TestCancelRightAfterSolveAsync(t *testing.T) {
	// Cancel racing the freshly started worker must still block until the
	// run has joined, leaving the manager in a terminal state.
	mgr := newSlowManager(t, solver.BFS)

	for attempt := 0; attempt < 20; attempt++ {
		_, events, err := mgr.SolveAsync()
		require.NoError(t, err)

		mgr.Cancel()
		assert.Equal(t, i.StateDone, mgr.State(), "Cancel returned before the run joined")
		for range events {
		}
	}
}

func TestMutationsRejectedWhileSolving(t *testing.T) {
	mgr := newSlowManager(t, solver.BFS)

	_, _, err := mgr.SolveAsync()
	require.NoError(t, err)
	defer mgr.Cancel()

	assert.Equal(t, i.StateRunning, mgr.State())

	_, err = mgr.Solve()
	assert.ErrorIs(t, err, ErrSolveInProgress)

	_, _, err = mgr.SolveAsync()
	assert.ErrorIs(t, err, ErrSolveInProgress)

	prevRows := mgr.NumRows()
	assert.ErrorIs(t, mgr.Create(21, 21, false), ErrSolveInProgress)
	assert.Equal(t, prevRows, mgr.NumRows(), "rejected create must not touch the maze")

	assert.ErrorIs(t, mgr.SetAlgorithm(solver.DFS), ErrSolveInProgress)
	assert.ErrorIs(t, mgr.SetStartCell(1, 1), ErrSolveInProgress)
	assert.ErrorIs(t, mgr.SetEndCell(3, 3), ErrSolveInProgress)
}

func TestCreateAfterSolve(t *testing.T) {
	mgr := newTestManager(t, 21, 21, solver.BFS)

	_, err := mgr.Solve()
	require.NoError(t, err)
	require.Positive(t, mgr.PathLength())

	require.NoError(t, mgr.Create(31, 31, true))
	assert.Equal(t, 31, mgr.NumRows())
	assert.True(t, mgr.Difficult())
	assert.Equal(t, i.StateIdle, mgr.State())
	assert.Zero(t, mgr.PathLength(), "a new maze resets the last result")
}

func TestRelocateEndpoints(t *testing.T) {
	mgr := newTestManager(t, 21, 21, solver.BFS)

	require.NoError(t, mgr.SetEndCell(3, 3))
	assert.Equal(t, maze.End, mgr.CellType(3, 3))

	err := mgr.SetEndCell(2, 2)
	assert.ErrorIs(t, err, maze.ErrInvalidPlacement)

	_, err = mgr.Solve()
	require.NoError(t, err)
	assert.Positive(t, mgr.PathLength())
}

func TestCancelWhenIdle(t *testing.T) {
	mgr := newTestManager(t, 21, 21, solver.BFS)
	mgr.Cancel() // must not block or panic
	assert.Equal(t, i.StateIdle, mgr.State())
}

func TestCellAccessors(t *testing.T) {
	mgr := newTestManager(t, 21, 21, solver.BFS)

	assert.Equal(t, maze.Start, mgr.CellType(1, 0))
	assert.Equal(t, maze.Red, mgr.CellColor(1, 0))
	assert.Equal(t, maze.Wall, mgr.CellType(0, 0))
	assert.Equal(t, maze.Black, mgr.CellColor(0, 0))
	assert.NotEmpty(t, mgr.BoardString())
	assert.Equal(t, solver.BFS, mgr.Algorithm())
}
