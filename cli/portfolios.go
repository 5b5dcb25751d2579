// ABOUTME: Portfolio listing and deletion commands
// ABOUTME: Thin wrappers over the API client for scripting without the TUI
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
)

// ListCommand prints the account's portfolios.
func ListCommand(cfg Config, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	_ = fs.Parse(args)

	api, _, err := loadAuthedClient(cfg)
	if err != nil {
		return err
	}

	listing, err := api.ListMy(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list portfolios: %w", err)
	}

	if listing.Len() == 0 {
		fmt.Println("No portfolios yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tTITLE\tUPDATED")
	for _, p := range listing.All() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", p.ID, p.Kind, p.Title, p.UpdatedAt)
	}
	return w.Flush()
}

// DeleteCommand deletes a portfolio by id.
func DeleteCommand(cfg Config, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	_ = fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("portfolio id is required")
	}
	id, err := strconv.ParseInt(fs.Arg(0), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid portfolio id %q", fs.Arg(0))
	}

	api, _, err := loadAuthedClient(cfg)
	if err != nil {
		return err
	}

	if err := api.Delete(context.Background(), id); err != nil {
		return fmt.Errorf("failed to delete portfolio: %w", err)
	}
	fmt.Printf("✓ Portfolio %d deleted\n", id)
	return nil
}
