package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/pablobispo13/api-portifolio/internal/app"
	"github.com/pablobispo13/api-portifolio/internal/config"
)

func main() {
	// A .env file is optional; environment set by the runtime wins.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
