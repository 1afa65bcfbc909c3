package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// loadDotEnv loads environment variables from DOTENV_FILE (default .env)
// when present. Existing process environment variables are not overridden.
func loadDotEnv() error {
	file := envOr("DOTENV_FILE", ".env")

	err := godotenv.Load(file)
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("load %s: %w", file, err)
}
