package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/beka-birhanu/gomaze/api"
	api_i "github.com/beka-birhanu/gomaze/api/i"
	"github.com/beka-birhanu/gomaze/api/mazeapi"
	"github.com/beka-birhanu/gomaze/config"
	"github.com/beka-birhanu/gomaze/service"
	"github.com/beka-birhanu/gomaze/service/i"
	"github.com/beka-birhanu/gomaze/solver"
	"github.com/gin-gonic/gin"
)

// Global variables for dependencies
var (
	appLogger      *log.Logger
	mazeManager    i.MazeController
	mazeController api_i.Controller
	router         *api.Router
)

func initMazeManager() {
	algorithm, err := solver.ParseAlgorithm(config.Envs.SolverAlgorithm)
	if err != nil {
		appLogger.Printf("%s[ERROR]%s Unknown solver algorithm %q, falling back to %s",
			config.LogErrorColor, config.LogColorReset, config.Envs.SolverAlgorithm, solver.AStar)
		algorithm = solver.AStar
	}

	managerLogger := log.New(os.Stdout, config.ColorCyan+"[MAZE] "+config.ColorReset, log.LstdFlags)
	mazeManager, err = service.NewMazeManager(&service.Config{
		NumRows:          config.Envs.MazeRows,
		NumCols:          config.Envs.MazeCols,
		Difficult:        config.Envs.MazeDifficult,
		Algorithm:        algorithm,
		AnimSpeed:        config.Envs.AnimSpeed,
		Seed:             int64(config.Envs.MazeSeed),
		ProgressInterval: time.Duration(config.Envs.ProgressIntervalMS) * time.Millisecond,
		Logger:           managerLogger,
	})
	if err != nil {
		appLogger.Printf("%s[ERROR]%s Creating maze manager: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}

	appLogger.Printf("%s[INFO]%s Maze manager initialized", config.LogInfoColor, config.LogColorReset)
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeManager)
	if err != nil {
		appLogger.Printf("%s[ERROR]%s Creating maze controller: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s Maze controller initialized", config.LogInfoColor, config.LogColorReset)
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{mazeController},
	})
	appLogger.Printf("%s[INFO]%s Router initialized", config.LogInfoColor, config.LogColorReset)
}

func main() {
	gin.SetMode(config.Envs.GinMode)

	appLogger = log.New(os.Stdout, config.ColorGreen+"[APP] "+config.ColorReset, log.LstdFlags)

	initMazeManager()
	if config.Envs.PrintBoard {
		fmt.Print(mazeManager.BoardString())
	}

	initMazeController()
	initRouter()

	if err := router.Run(); err != nil {
		appLogger.Printf("%s[ERROR]%s Starting server: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
}
