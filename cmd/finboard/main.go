package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/finboard-dev/finboard/internal/commands"
)

func main() {
	// Optional .env overrides for FINBOARD_* settings.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
