// @title Lingua Placement API
// @version 1.0
// @description Placement tests for language learners: test assembly, grading and level assignment.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"lingua_placement/cmd"
	"os"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
