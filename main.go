package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/admitlab/admit-cli/internal/adapters/driving/cli"
)

func main() {
	// Optional .env for local overrides such as ADMIT_CONFIG.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
