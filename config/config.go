package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DataDir   string
	DBPath    string
	Port      int
	JWTSecret string
}

// Load reads configuration from the environment, with a .env file taking
// effect when present. Every value has a default so the binary runs with no
// configuration at all.
func Load() *Config {
	godotenv.Load()

	cfg := &Config{
		DataDir:   getEnv("RENTAL_DATA_DIR", defaultDataDir()),
		Port:      8321,
		JWTSecret: getEnv("RENTAL_JWT_SECRET", "pembukuan-rental-dev-secret"),
	}
	if port := os.Getenv("RENTAL_PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil && n > 0 {
			cfg.Port = n
		}
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatalf("Cannot create data directory %s: %v", cfg.DataDir, err)
	}
	cfg.DBPath = filepath.Join(cfg.DataDir, "rental_motor.sqlite")
	return cfg
}

func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "AplikasiPembukuan")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
