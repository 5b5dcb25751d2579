// ABOUTME: Serve command running the portfolio API server
// ABOUTME: Wires the database, the Claude client, and the HTTP surface together
package cli

import (
	"database/sql"
	"flag"
	"fmt"

	"github.com/Jeonsowon/Portfolio-Project/ai"
	"github.com/Jeonsowon/Portfolio-Project/web"
)

// ServeCommand starts the API server and blocks until it exits.
func ServeCommand(database *sql.DB, cfg Config, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	port := fs.Int("port", cfg.Port, "Port to listen on")
	_ = fs.Parse(args)

	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required to run the server")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("ANTHROPIC_API_KEY is required to run the server")
	}

	gen := ai.NewClient(cfg.APIKey, ai.ClaudeModel)
	server := web.NewServer(database, gen, cfg.JWTSecret)
	return server.Start(*port)
}
