package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	UploadDir   string
	// StrictValidation makes the server re-run the form rule table at
	// ingestion instead of trusting the client.
	StrictValidation bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using system environment variables")
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		DatabaseURL:      getEnv("DATABASE_URL", "host=localhost user=postgres password=password dbname=formsubmit port=5432 sslmode=disable"),
		UploadDir:        getEnv("UPLOAD_DIR", "uploads"),
		StrictValidation: getEnv("STRICT_VALIDATION", "false") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
