// ABOUTME: SQLite connection management for the portfolio store
// ABOUTME: WAL-mode database under the XDG data dir by default
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	_ "github.com/mattn/go-sqlite3"
)

// DefaultPath returns the portfolio database location under the XDG
// data dir.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, "portfolio", "portfolio.db")
}

// OpenDatabase opens the portfolio database, creating the file and its
// directory as needed, and initializes the schema. A single connection
// in WAL mode avoids database-locked errors under the request handlers.
func OpenDatabase(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database dir: %w", err)
	}

	database, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	database.SetMaxOpenConns(1)

	if err := InitSchema(database); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}
