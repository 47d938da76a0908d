package config

import (
	"os"

	"github.com/joho/godotenv"
)

// loadEnvFile overlays variables from the first readable .env file.
// Existing process environment variables are never overwritten, and a
// missing file is not an error.
func loadEnvFile() {
	for _, envPath := range []string{".env", ".env.local"} {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err == nil {
			return
		}
	}
}
