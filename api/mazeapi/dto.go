// Package mazeapi exposes maze creation, solving and board inspection
// over HTTP for hosts that poll the solve state on their own cadence.
package mazeapi

// CreateMazeRequest asks for a new maze. Dimensions outside the board
// limits are clamped, not rejected; the response echoes the final values.
type CreateMazeRequest struct {
	Rows      int  `json:"rows"`
	Cols      int  `json:"cols"`
	Difficult bool `json:"difficult"`
}

// MazeResponse describes the current maze dimensions and difficulty.
type MazeResponse struct {
	Rows      int  `json:"rows"`
	Cols      int  `json:"cols"`
	Difficult bool `json:"difficult"`
}

// BoardResponse is a snapshot of the full board, cell types as strings,
// one row per entry.
type BoardResponse struct {
	Rows  int        `json:"rows"`
	Cols  int        `json:"cols"`
	Cells [][]string `json:"cells"`
}

// SolveRequest starts a background solve. Algorithm and AnimSpeed are
// optional; omitted fields keep the controller's current settings.
type SolveRequest struct {
	Algorithm string `json:"algorithm"`
	AnimSpeed *int   `json:"anim_speed"`
}

// SolveResponse returns the identifier of the started run.
type SolveResponse struct {
	RunID string `json:"run_id"`
}

// StatusResponse reports the controller state and the last run's outcome.
type StatusResponse struct {
	State       string `json:"state"`
	Algorithm   string `json:"algorithm"`
	PathLength  int    `json:"path_length"`
	SolveTimeMS int64  `json:"solve_time_ms"`
}

// PlaceCellRequest relocates the start or end cell.
type PlaceCellRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}
