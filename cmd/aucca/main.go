package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/LinFrancis/aucca-app/internal/cli"
	"github.com/LinFrancis/aucca-app/internal/cli/formatter"
	"github.com/LinFrancis/aucca-app/internal/config"
	"github.com/LinFrancis/aucca-app/internal/db"
	"github.com/LinFrancis/aucca-app/internal/repository"
	"github.com/LinFrancis/aucca-app/internal/resolver"
	"github.com/LinFrancis/aucca-app/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load(".env")
	logger := service.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())

	stop := func() {}
	if interactive {
		stop = formatter.StartSpinner(os.Stderr, "Cargando catálogo y base de conocimiento…")
	}
	res, err := service.LoadResources(context.Background(), cfg, logger)
	stop()
	if err != nil {
		return err
	}

	opts := []service.KioskOption{
		service.WithObserver(service.NewLogUseCaseObserver(logger)),
		service.WithResolverOptions(resolver.Options{MatchSynonyms: cfg.MatchSynonyms}),
	}

	// The query log is optional; without it the kiosk still answers.
	if cfg.QueryLogEnabled() {
		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening query log: %w", err)
		}
		defer database.Close()

		opts = append(opts, service.WithQueryLog(
			repository.NewSQLiteQueryLogRepo(database),
			repository.NewSQLiteQueryGapRepo(database),
			db.NewSQLiteUnitOfWork(database),
		))
	}

	app := &cli.App{
		Kiosk:         service.NewKiosk(res.Plants, res.Knowledge, opts...),
		Logger:        logger,
		Markdown:      interactive,
		HTTPAddr:      cfg.HTTPAddr,
		HistoryPath:   cli.DefaultHistoryPath(),
		IsInteractive: func() bool { return interactive },
	}

	return cli.NewRootCmd(app).Execute()
}
