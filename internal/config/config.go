package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from a .env file in the working
// directory or, failing that, its parent. Variables already set in the
// environment are kept. It returns the file it loaded, or "" when none was
// found.
func LoadEnv() (string, error) {
	for _, envFile := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(envFile); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return "", fmt.Errorf("error checking %s: %w", envFile, err)
		}

		if err := godotenv.Load(envFile); err != nil {
			return "", fmt.Errorf("error loading %s: %w", envFile, err)
		}
		return envFile, nil
	}
	return "", nil
}
