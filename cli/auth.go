// ABOUTME: Register, login, and logout commands
// ABOUTME: Passwords are read from the terminal without echo
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/Jeonsowon/Portfolio-Project/client"
	"github.com/Jeonsowon/Portfolio-Project/session"
)

// RegisterCommand creates an account and stores the session locally.
func RegisterCommand(cfg Config, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "Display name (required)")
	email := fs.String("email", "", "Email address (required)")
	_ = fs.Parse(args)

	if *name == "" || *email == "" {
		return fmt.Errorf("--name and --email are required")
	}

	password, err := promptPassword("Password: ")
	if err != nil {
		return err
	}
	confirm, err := promptPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	api := client.New(cfg.ServerURL)
	result, err := api.Register(context.Background(), *name, *email, password)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	if err := storeSession(cfg, result); err != nil {
		return err
	}
	fmt.Printf("✓ Registered and logged in as %s <%s>\n", result.Name, result.Email)
	return nil
}

// LoginCommand authenticates and stores the session locally.
func LoginCommand(cfg Config, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "Email address (required)")
	_ = fs.Parse(args)

	if *email == "" {
		return fmt.Errorf("--email is required")
	}

	password, err := promptPassword("Password: ")
	if err != nil {
		return err
	}

	api := client.New(cfg.ServerURL)
	result, err := api.Login(context.Background(), *email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := storeSession(cfg, result); err != nil {
		return err
	}
	fmt.Printf("✓ Logged in as %s <%s>\n", result.Name, result.Email)
	return nil
}

// LogoutCommand discards the stored session.
func LogoutCommand(cfg Config) error {
	if err := session.Clear(cfg.SessionPath); err != nil {
		return err
	}
	fmt.Println("✓ Logged out")
	return nil
}

func storeSession(cfg Config, result client.AuthResult) error {
	s := session.Session{Token: result.Token, Email: result.Email, Name: result.Name}
	if err := session.Save(cfg.SessionPath, s); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	password := strings.TrimSpace(string(raw))
	if password == "" {
		return "", fmt.Errorf("password must not be empty")
	}
	return password, nil
}

// loadAuthedClient builds an API client from the stored session. The
// unauthorized hook drops the session file so a dead token is not
// retried on the next run.
func loadAuthedClient(cfg Config) (*client.Client, session.Session, error) {
	s, ok := session.Load(cfg.SessionPath)
	if !ok {
		return nil, session.Session{}, fmt.Errorf("not logged in, run 'portfolio login' first")
	}

	api := client.New(cfg.ServerURL)
	api.SetToken(s.Token)
	api.OnUnauthorized = func() {
		_ = session.Clear(cfg.SessionPath)
	}
	return api, s, nil
}
