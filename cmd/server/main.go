package main

import (
	"log"

	"github.com/joho/godotenv"

	"planboard/internal/app"
)

// @title           Planboard API
// @version         1.0
// @description     Project planning backend: projects, tasks, resources and allocation consistency checks.
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in              header
// @name            Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[main] no .env file loaded: %v", err)
	}
	app.Run()
}
