// Package service hosts the solve controller: the state machine between
// maze generation, synchronous and background solving, cooperative
// cancellation and progress reporting.
package service

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/beka-birhanu/gomaze/config"
	"github.com/beka-birhanu/gomaze/maze"
	"github.com/beka-birhanu/gomaze/service/i"
	"github.com/beka-birhanu/gomaze/solver"
	"github.com/google/uuid"
)

// ErrSolveInProgress rejects mutating operations while a solve is active.
var ErrSolveInProgress = errors.New("a solve is already in progress")

// Progress event channel capacity. One slot is always reserved for the
// terminal event so delivering it can never block the worker.
const eventBuffer = 8

// MazeManager owns one maze and runs at most one solve at a time over it.
// It implements i.MazeController.
type MazeManager struct {
	maze      *maze.Maze
	algorithm solver.Algorithm

	state  i.State
	active *solver.Solver
	result solver.Result
	wg     sync.WaitGroup

	progressInterval time.Duration
	logger           *log.Logger
	mu               sync.Mutex
}

// Config holds the settings for a new MazeManager.
type Config struct {
	NumRows          int
	NumCols          int
	Difficult        bool
	Algorithm        solver.Algorithm
	AnimSpeed        int
	Seed             int64 // non-zero pins the generator's random source
	ProgressInterval time.Duration
	Logger           *log.Logger
}

// NewMazeManager generates the initial maze and returns the manager.
func NewMazeManager(c *Config) (*MazeManager, error) {
	m := maze.New()
	m.SetAnimSpeed(c.AnimSpeed)
	if c.Seed != 0 {
		m.Seed(c.Seed)
	}
	if err := m.Generate(c.NumRows, c.NumCols, c.Difficult); err != nil {
		return nil, err
	}

	interval := c.ProgressInterval
	if interval <= 0 {
		interval = 200 * time.Millisecond
	}

	mgr := &MazeManager{
		maze:             m,
		algorithm:        c.Algorithm,
		state:            i.StateIdle,
		progressInterval: interval,
		logger:           c.Logger,
	}
	mgr.logf("%s[INFO]%s generated %dx%d maze (difficult=%v)",
		config.LogInfoColor, config.LogColorReset, m.NumRows(), m.NumCols(), c.Difficult)
	return mgr, nil
}

// Create generates a new maze in place, reusing the board allocation when
// it is big enough. Rejected while a solve is running.
func (mgr *MazeManager) Create(numRows, numCols int, difficult bool) error {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	if mgr.solving() {
		return ErrSolveInProgress
	}
	if err := mgr.maze.Generate(numRows, numCols, difficult); err != nil {
		return err
	}
	mgr.result = solver.Result{}
	mgr.state = i.StateIdle
	mgr.logf("%s[INFO]%s generated %dx%d maze (difficult=%v)",
		config.LogInfoColor, config.LogColorReset, mgr.maze.NumRows(), mgr.maze.NumCols(), difficult)
	return nil
}

// Solve runs the selected strategy synchronously and records the result.
func (mgr *MazeManager) Solve() (solver.Result, error) {
	s, err := mgr.begin()
	if err != nil {
		return solver.Result{}, err
	}
	res := s.Run()
	mgr.finish(res)
	mgr.wg.Done()
	return res, nil
}

// SolveAsync starts the strategy on a background worker. The returned
// channel carries Running events on the configured cadence and exactly one
// terminal event, then closes once the worker is done.
func (mgr *MazeManager) SolveAsync() (uuid.UUID, <-chan i.ProgressEvent, error) {
	s, err := mgr.begin()
	if err != nil {
		return uuid.Nil, nil, err
	}

	runID := uuid.New()
	events := make(chan i.ProgressEvent, eventBuffer)

	go func() {
		defer mgr.wg.Done()
		defer close(events)

		resCh := make(chan solver.Result, 1)
		go func() { resCh <- s.Run() }()

		ticker := time.NewTicker(mgr.progressInterval)
		defer ticker.Stop()

		running := i.ProgressEvent{RunID: runID, Status: solver.StatusRunning}
		events <- running

		for {
			select {
			case res := <-resCh:
				mgr.finish(res)
				events <- i.ProgressEvent{
					RunID:      runID,
					Status:     res.Status,
					PathLength: res.PathLength,
					Elapsed:    res.Elapsed,
				}
				return
			case <-ticker.C:
				// Keep the reserved slot free for the terminal event and
				// drop the tick when the consumer lags.
				if len(events) < cap(events)-1 {
					events <- running
				}
			}
		}
	}()

	return runID, events, nil
}

// Cancel requests cooperative cancellation and joins the background
// worker. Safe to call when nothing runs.
func (mgr *MazeManager) Cancel() {
	mgr.mu.Lock()
	if mgr.active != nil && mgr.state == i.StateRunning {
		mgr.state = i.StateCancelling
		mgr.active.Cancel()
		mgr.logf("%s[INFO]%s cancellation requested", config.LogInfoColor, config.LogColorReset)
	}
	mgr.mu.Unlock()

	mgr.wg.Wait()
}

// begin transitions Idle/Done to Running and hands out a fresh solver.
// The wait group is bumped before StateRunning becomes visible, so a
// Cancel that observes the running state always has a run to wait on.
// Every successful begin is paired with one wg.Done once the run ends.
func (mgr *MazeManager) begin() (*solver.Solver, error) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	if mgr.solving() {
		return nil, ErrSolveInProgress
	}
	s := solver.New(mgr.maze, mgr.algorithm)
	mgr.active = s
	mgr.wg.Add(1)
	mgr.state = i.StateRunning
	return s, nil
}

// finish records the result and transitions to Done.
func (mgr *MazeManager) finish(res solver.Result) {
	mgr.mu.Lock()
	mgr.result = res
	mgr.active = nil
	mgr.state = i.StateDone
	mgr.mu.Unlock()

	if res.Status == solver.StatusCanceled {
		mgr.logf("%s[INFO]%s solve canceled after %s",
			config.LogInfoColor, config.LogColorReset, res.Elapsed)
		return
	}
	mgr.logf("%s[INFO]%s solve finished: length=%d time=%s",
		config.LogInfoColor, config.LogColorReset, res.PathLength, res.Elapsed)
}

// solving reports whether a run is active. Callers hold mgr.mu.
func (mgr *MazeManager) solving() bool {
	return mgr.state == i.StateRunning || mgr.state == i.StateCancelling
}

// SetAlgorithm selects the strategy for subsequent solves.
func (mgr *MazeManager) SetAlgorithm(a solver.Algorithm) error {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	if mgr.solving() {
		return ErrSolveInProgress
	}
	mgr.algorithm = a
	return nil
}

// SetAnimSpeed updates animation pacing; allowed mid-solve.
func (mgr *MazeManager) SetAnimSpeed(speed int) {
	mgr.maze.SetAnimSpeed(speed)
}

// SetStartCell relocates the start cell; rejected while a solve runs.
func (mgr *MazeManager) SetStartCell(row, col int) error {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	if mgr.solving() {
		return ErrSolveInProgress
	}
	return mgr.maze.PlaceStart(row, col)
}

// SetEndCell relocates the end cell; rejected while a solve runs.
func (mgr *MazeManager) SetEndCell(row, col int) error {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	if mgr.solving() {
		return ErrSolveInProgress
	}
	return mgr.maze.PlaceEnd(row, col)
}

// State returns the controller state.
func (mgr *MazeManager) State() i.State {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	return mgr.state
}

// Algorithm returns the currently selected strategy.
func (mgr *MazeManager) Algorithm() solver.Algorithm {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	return mgr.algorithm
}

// PathLength returns the last run's path length, zero when no path was
// found or no run has finished.
func (mgr *MazeManager) PathLength() int {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	return mgr.result.PathLength
}

// SolveTime returns the last run's elapsed wall-clock time.
func (mgr *MazeManager) SolveTime() time.Duration {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	return mgr.result.Elapsed
}

// NumRows returns the board row count.
func (mgr *MazeManager) NumRows() int {
	return mgr.maze.NumRows()
}

// NumCols returns the board column count.
func (mgr *MazeManager) NumCols() int {
	return mgr.maze.NumCols()
}

// Difficult reports whether the current maze has extra connections.
func (mgr *MazeManager) Difficult() bool {
	return mgr.maze.Difficult()
}

// CellType returns the classification of a cell, Wall when out of bounds.
func (mgr *MazeManager) CellType(row, col int) maze.CellType {
	return mgr.maze.CellType(row, col)
}

// CellColor returns the display color of a cell.
func (mgr *MazeManager) CellColor(row, col int) maze.CellColor {
	return mgr.maze.CellColor(row, col)
}

// BoardString renders the board as ASCII text.
func (mgr *MazeManager) BoardString() string {
	return mgr.maze.String()
}

func (mgr *MazeManager) logf(format string, args ...any) {
	if mgr.logger != nil {
		mgr.logger.Printf(format, args...)
	}
}
