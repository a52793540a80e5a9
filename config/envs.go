package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values. Every key has a
// default, so the binary runs with no .env file present.
type Config struct {
	HostIP             string // Host IP for the server
	RESTPort           int    // Port for the REST API
	GinMode            string // Mode for the Gin framework (e.g., release, debug, test)
	MazeRows           int    // Initial maze rows (clamped to board limits)
	MazeCols           int    // Initial maze columns (clamped to board limits)
	MazeDifficult      bool   // Carve extra connections into the initial maze
	MazeSeed           int    // Non-zero pins the random source for reproducible boards
	SolverAlgorithm    string // Display name of the initial solver algorithm
	AnimSpeed          int    // Animation speed, 0-100 (100 = no delay)
	ProgressIntervalMS int    // Cadence of background-solve progress events
	PrintBoard         bool   // Dump the generated board to stdout at startup
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:             getEnvWithDefault("HOST_IP", "127.0.0.1"),
		RESTPort:           getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:            getEnvWithDefault("GIN_MODE", "release"),
		MazeRows:           getEnvAsIntWithDefault("MAZE_ROWS", 121),
		MazeCols:           getEnvAsIntWithDefault("MAZE_COLS", 121),
		MazeDifficult:      getEnvAsBoolWithDefault("MAZE_DIFFICULT", false),
		MazeSeed:           getEnvAsIntWithDefault("MAZE_SEED", 0),
		SolverAlgorithm:    getEnvWithDefault("SOLVER_ALGORITHM", "A Star"),
		AnimSpeed:          getEnvAsIntWithDefault("ANIM_SPEED", 100),
		ProgressIntervalMS: getEnvAsIntWithDefault("PROGRESS_INTERVAL_MS", 200),
		PrintBoard:         getEnvAsBoolWithDefault("PRINT_BOARD", false),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer or returns a default value if not set or unparsable.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[APP] [INFO] Environment variable %s is not an integer, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

// getEnvAsBoolWithDefault retrieves the value of an environment variable as a boolean or returns a default value if not set or unparsable.
func getEnvAsBoolWithDefault(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("[APP] [INFO] Environment variable %s is not a boolean, using default %v", key, defaultValue)
		return defaultValue
	}
	return value
}
