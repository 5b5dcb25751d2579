// ABOUTME: Entry point for the portfolio server and CLI
// ABOUTME: Routes to the API server, the TUI editor, or account commands
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Jeonsowon/Portfolio-Project/cli"
	"github.com/Jeonsowon/Portfolio-Project/db"
)

const version = "0.1.0"

func main() {
	showVersion := flag.Bool("version", false, "Show version and exit")
	dbPath := flag.String("db-path", "", "Database path (default: ~/.local/share/portfolio/portfolio.db)")

	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("portfolio version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	cfg, err := cli.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	command := args[0]
	commandArgs := args[1:]

	switch command {
	case "serve":
		database, err := db.OpenDatabase(cfg.DBPath)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer database.Close()

		log.Printf("Portfolio database: %s", cfg.DBPath)

		if err := cli.ServeCommand(database, cfg, commandArgs); err != nil {
			log.Fatalf("Server failed: %v", err)
		}

	case "tui":
		if err := cli.TUICommand(cfg); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "register":
		if err := cli.RegisterCommand(cfg, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}
	case "login":
		if err := cli.LoginCommand(cfg, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}
	case "logout":
		if err := cli.LogoutCommand(cfg); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "list":
		if err := cli.ListCommand(cfg, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}
	case "delete":
		if err := cli.DeleteCommand(cfg, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf(`portfolio v%s - Portfolio builder

USAGE:
  portfolio [global flags] <command> [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --db-path <path>       Database path (default: ~/.local/share/portfolio/portfolio.db)

COMMANDS:
  serve                  Start the API server
    --port <n>             Port to listen on (default: 8080, or $PORT)

  tui                    Open the interactive editor

  register               Create an account
    --name <name>          Display name (required)
    --email <email>        Email address (required)

  login                  Log in to an existing account
    --email <email>        Email address (required)

  logout                 Discard the stored session

  list                   List your portfolios
  delete <id>            Delete a portfolio by id

ENVIRONMENT:
  PORT                   Server port for 'serve'
  JWT_SECRET             Token signing secret (required by 'serve')
  ANTHROPIC_API_KEY      Claude API key (required by 'serve')
  PORTFOLIO_SERVER_URL   API base URL for client commands (default: http://localhost:8080)
  PORTFOLIO_DB_PATH      Database path override
  A .env file in the working directory is loaded if present.

EXAMPLES:
  # Start the API server
  JWT_SECRET=secret ANTHROPIC_API_KEY=sk-... portfolio serve

  # Create an account and open the editor
  portfolio register --name "Ann" --email ann@example.com
  portfolio tui
`, version)
}
