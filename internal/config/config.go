// Package config reads the process configuration from the environment, with
// an optional .env file for development.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Backend selects where prompt and user data live.
type Backend string

const (
	BackendLocal  Backend = "local"
	BackendRemote Backend = "remote"
)

type Config struct {
	Backend Backend
	Port    string

	// DataDir holds the JSON entries of the local backend, and the favorites
	// ledger in both modes.
	DataDir string

	// DatabaseURL is required in remote mode.
	DatabaseURL string

	// RemoteAPIBase points the library repository at the prompt endpoints in
	// remote mode. Defaults to the server's own address.
	RemoteAPIBase string

	AdminUsername string
	AdminPassword string
	JWTSecret     string
	LogLevel      string
}

// Load reads the environment. A missing .env file is not an error.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, relying on environment variables")
	}

	cfg := Config{
		Backend:       Backend(getEnv("STORAGE_BACKEND", string(BackendLocal))),
		Port:          getEnv("PORT", "8080"),
		DataDir:       getEnv("DATA_DIR", "./data"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RemoteAPIBase: os.Getenv("REMOTE_API_BASE"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}

	switch cfg.Backend {
	case BackendLocal, BackendRemote:
	default:
		return Config{}, fmt.Errorf("unknown STORAGE_BACKEND %q (want local or remote)", cfg.Backend)
	}
	if cfg.Backend == BackendRemote && cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required with the remote backend")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.RemoteAPIBase == "" {
		cfg.RemoteAPIBase = "http://127.0.0.1:" + cfg.Port
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
