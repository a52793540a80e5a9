package mazeapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/gomaze/service"
	"github.com/beka-birhanu/gomaze/service/i"
	"github.com/beka-birhanu/gomaze/solver"
	"github.com/gin-gonic/gin"
)

// MazeController serves the maze control surface.
type MazeController struct {
	manager i.MazeController
}

// NewMazeController initializes a MazeController.
func NewMazeController(manager i.MazeController) (*MazeController, error) {
	return &MazeController{manager: manager}, nil
}

// RegisterPublic registers the maze routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazeRoutes := route.Group("/maze")
	{
		mazeRoutes.POST("/", mc.create)
		mazeRoutes.GET("/", mc.board)
		mazeRoutes.GET("/status", mc.status)
		mazeRoutes.POST("/solve", mc.solve)
		mazeRoutes.DELETE("/solve", mc.cancel)
		mazeRoutes.PUT("/start", mc.placeStart)
		mazeRoutes.PUT("/end", mc.placeEnd)
	}
}

// create handles new-maze requests. Out-of-range dimensions are clamped
// and the final values echoed back.
func (mc *MazeController) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := mc.manager.Create(request.Rows, request.Cols, request.Difficult); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrSolveInProgress) {
			status = http.StatusConflict
		}
		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, MazeResponse{
		Rows:      mc.manager.NumRows(),
		Cols:      mc.manager.NumCols(),
		Difficult: mc.manager.Difficult(),
	})
}

// board returns a full snapshot of cell types.
func (mc *MazeController) board(ctx *gin.Context) {
	rows := mc.manager.NumRows()
	cols := mc.manager.NumCols()

	cells := make([][]string, rows)
	for row := 0; row < rows; row++ {
		cells[row] = make([]string, cols)
		for col := 0; col < cols; col++ {
			cells[row][col] = mc.manager.CellType(row, col).String()
		}
	}

	ctx.JSON(http.StatusOK, BoardResponse{Rows: rows, Cols: cols, Cells: cells})
}

// status reports the controller state and last-run outcome.
func (mc *MazeController) status(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, StatusResponse{
		State:       mc.manager.State().String(),
		Algorithm:   mc.manager.Algorithm().String(),
		PathLength:  mc.manager.PathLength(),
		SolveTimeMS: mc.manager.SolveTime().Milliseconds(),
	})
}

// solve starts a background solve and returns its run ID. Progress events
// are drained here; hosts poll /maze/status on their own cadence.
func (mc *MazeController) solve(ctx *gin.Context) {
	var request SolveRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if request.Algorithm != "" {
		algorithm, err := solver.ParseAlgorithm(request.Algorithm)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := mc.manager.SetAlgorithm(algorithm); err != nil {
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
	}
	if request.AnimSpeed != nil {
		mc.manager.SetAnimSpeed(*request.AnimSpeed)
	}

	runID, events, err := mc.manager.SolveAsync()
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrSolveInProgress) {
			status = http.StatusConflict
		}
		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}

	go func() {
		for range events {
		}
	}()

	ctx.JSON(http.StatusAccepted, SolveResponse{RunID: runID.String()})
}

// cancel requests cooperative cancellation and waits for the worker to
// join before reporting the final status.
func (mc *MazeController) cancel(ctx *gin.Context) {
	mc.manager.Cancel()
	mc.status(ctx)
}

// placeStart relocates the start cell.
func (mc *MazeController) placeStart(ctx *gin.Context) {
	mc.placeEndpoint(ctx, mc.manager.SetStartCell)
}

// placeEnd relocates the end cell.
func (mc *MazeController) placeEnd(ctx *gin.Context) {
	mc.placeEndpoint(ctx, mc.manager.SetEndCell)
}

func (mc *MazeController) placeEndpoint(ctx *gin.Context, place func(int, int) error) {
	var request PlaceCellRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := place(request.Row, request.Col); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrSolveInProgress) {
			status = http.StatusConflict
		}
		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}

	ctx.Status(http.StatusOK)
}
