/*
Package solver implements the maze solving strategies: A*, breadth-first
search, depth-first search and the two wall-following heuristics.

A Solver executes exactly one strategy over one maze. It owns the
cooperative cancellation flag and the animation pacing; all frontier state
(queues, stacks, open/closed sets) is local to the run and none of it
outlives the call.
*/
package solver

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/beka-birhanu/gomaze/maze"
)

// ErrUnknownAlgorithm is returned when parsing an unrecognized name.
var ErrUnknownAlgorithm = errors.New("unknown solver algorithm")

// Algorithm selects the solving strategy.
type Algorithm int

const (
	AStar Algorithm = iota
	BFS
	DFS
	AlwaysTurnLeft
	AlwaysTurnRight
)

// String returns the display name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AStar:
		return "A Star"
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	case AlwaysTurnLeft:
		return "Always Turn Left"
	case AlwaysTurnRight:
		return "Always Turn Right"
	default:
		return "unknown"
	}
}

// ParseAlgorithm resolves a display name back to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range []Algorithm{AStar, BFS, DFS, AlwaysTurnLeft, AlwaysTurnRight} {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, ErrUnknownAlgorithm
}

// Status is the terminal or in-flight state of a solve run.
type Status int

const (
	StatusRunning Status = iota
	StatusSolved
	StatusCanceled
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusSolved:
		return "solved"
	case StatusCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Result reports the outcome of one solve run. A frontier exhausted without
// reaching the end cell is a solved run with PathLength zero, never an
// error; cancellation is a distinct status.
type Result struct {
	Status     Status
	PathLength int
	Elapsed    time.Duration
}

// Per-iteration pacing unit. The sleep is (100 - anim speed) times this,
// skipped entirely at speed 100.
const animDelayUnit = 200 * time.Microsecond

// Solver runs one strategy over one maze with cooperative cancellation.
type Solver struct {
	maze      *maze.Maze
	algorithm Algorithm
	cancel    atomic.Bool
}

// New prepares a solver for a single run over the given maze.
func New(m *maze.Maze, algorithm Algorithm) *Solver {
	return &Solver{maze: m, algorithm: algorithm}
}

// Cancel requests cooperative cancellation. The run stops at its next
// frontier-pop check. Safe to call from any goroutine, any number of times.
func (s *Solver) Cancel() {
	s.cancel.Store(true)
}

// isCanceled polls the cancellation flag. Strategies call it once per
// frontier pop.
func (s *Solver) isCanceled() bool {
	return s.cancel.Load()
}

// Run clears the board and executes the selected strategy to completion,
// cancellation, or frontier exhaustion. It blocks the calling goroutine.
func (s *Solver) Run() Result {
	start := time.Now()
	s.maze.ClearBoard()

	var pathLen int
	var canceled bool
	switch s.algorithm {
	case BFS:
		pathLen, canceled = s.solveBFS()
	case DFS:
		pathLen, canceled = s.solveDFS()
	case AlwaysTurnLeft:
		pathLen, canceled = s.solveWallFollow(true)
	case AlwaysTurnRight:
		pathLen, canceled = s.solveWallFollow(false)
	default:
		pathLen, canceled = s.solveAStar()
	}

	status := StatusSolved
	if canceled {
		status = StatusCanceled
		pathLen = 0
	}
	return Result{Status: status, PathLength: pathLen, Elapsed: time.Since(start)}
}

// pause sleeps between iterations to pace the animation. No-op at full
// speed, so it never has a correctness role.
func (s *Solver) pause() {
	speed := s.maze.AnimSpeed()
	if speed >= 100 {
		return
	}
	time.Sleep(time.Duration(100-speed) * animDelayUnit)
}
