// ABOUTME: Environment-driven configuration for the CLI commands
// ABOUTME: A local .env file is loaded first; real environment variables win
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"

	"github.com/Jeonsowon/Portfolio-Project/db"
)

const (
	defaultPort      = 8080
	defaultServerURL = "http://localhost:8080"
)

// Config collects everything the commands read from the environment.
type Config struct {
	DBPath      string
	DraftDir    string
	SessionPath string
	ServerURL   string
	Port        int
	JWTSecret   string
	APIKey      string
}

// LoadConfig reads .env (if present) and the process environment.
// Validation of required values is left to each command, since the
// server and the client need different pieces.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		DBPath:    db.DefaultPath(),
		DraftDir:  filepath.Join(xdg.StateHome, "portfolio", "drafts"),
		ServerURL: defaultServerURL,
		Port:      defaultPort,
		JWTSecret: os.Getenv("JWT_SECRET"),
		APIKey:    os.Getenv("ANTHROPIC_API_KEY"),
	}

	sessionPath, err := xdg.StateFile("portfolio/session.json")
	if err != nil {
		return Config{}, fmt.Errorf("failed to resolve session path: %w", err)
	}
	cfg.SessionPath = sessionPath

	if v := os.Getenv("PORTFOLIO_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("PORTFOLIO_SERVER_URL"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}

	return cfg, nil
}
