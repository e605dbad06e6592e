//go:build ignore

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"deli-admin/internal/auth"
	"deli-admin/internal/config"
	"deli-admin/internal/database"
	"deli-admin/internal/repository"
)

// createAdmin provisions a console operator, or resets their password.
// The password is read from ADMIN_PASSWORD so it does not end up in shell
// history.
//
//	ADMIN_PASSWORD=... go run scripts/create_admin.go -username owner
func main() {
	username := flag.String("username", "", "operator username")
	flag.Parse()

	password := os.Getenv("ADMIN_PASSWORD")
	if strings.TrimSpace(*username) == "" || password == "" {
		fmt.Fprintln(os.Stderr, "usage: ADMIN_PASSWORD=... go run scripts/create_admin.go -username <name>")
		os.Exit(2)
	}
	if len(password) < 8 {
		fmt.Fprintln(os.Stderr, "password must be at least 8 characters")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Logger)

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
		os.Exit(1)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	user, err := repository.NewAdminRepository(pool, logger).Upsert(ctx, strings.TrimSpace(*username), hash)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save operator: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Operator %q ready (id %s) in database %s\n", user.Username, user.ID, cfg.Database.Database)
}
