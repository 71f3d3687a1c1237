package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fleetops/driverlog/internal/api"
	"github.com/fleetops/driverlog/internal/auth"
	"github.com/fleetops/driverlog/internal/cli"
	"github.com/fleetops/driverlog/internal/db"
	"github.com/fleetops/driverlog/internal/docstore"
	"github.com/fleetops/driverlog/internal/duty"
	"github.com/fleetops/driverlog/internal/repository"
	"github.com/fleetops/driverlog/internal/submit"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.driverlog/driverlog.db
	dbPath := os.Getenv("DRIVERLOG_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".driverlog", "driverlog.db")
	}

	// Open the local cache
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	userRepo := repository.NewSQLiteUserRepo(database)
	sessionRepo := repository.NewTxSessionRepo(database)
	submissionRepo := repository.NewSQLiteSubmissionRepo(database)

	// Wire the backend clients
	cfg := api.LoadConfig()
	var observer api.Observer = api.NoopObserver{}
	if cfg.LogCalls {
		observer = api.NewLogObserver(os.Stderr)
	}
	provider := auth.NewHTTPProvider(cfg)
	tokens := auth.NewCachedTokenSource("", provider, userRepo)
	client := api.NewClient(cfg, tokens, observer)
	records := docstore.NewHTTPClient(cfg, tokens)

	warnLog := log.New(os.Stderr, "driverlog: ", 0)

	// Wire services
	dutySvc := duty.NewService(nil, records, client, sessionRepo, warnLog)
	boundary := submit.NewBoundary(client, dutySvc, submissionRepo, sessionRepo, warnLog)

	app := &cli.App{
		Users:     userRepo,
		Auth:      provider,
		Tokens:    tokens,
		Duty:      dutySvc,
		Boundary:  boundary,
		Schedules: client,
	}

	// Detect interactive terminal for the prompt-driven commands.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Re-drive any submission left unfinished by a crash or network failure.
	// Best-effort: a driver with no cached profile has nothing to reconcile,
	// and an expired refresh token just defers the retry to the next run.
	ctx := context.Background()
	if u, err := userRepo.Get(ctx); err == nil {
		if _, err := tokens.Refresh(ctx); err == nil {
			if err := boundary.Reconcile(ctx, u.UID); err != nil {
				warnLog.Printf("reconciliation failed: %v", err)
			}
		}
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
