package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/blogicum/config"
	"github.com/daniilsolovey/blogicum/internal/app"
	"github.com/daniilsolovey/blogicum/internal/db"
)

var (
	flConfig      = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug       = flag.Bool("debug", false, "enable debug mode")
	flDatabaseURL = flag.String("database-url", "", "database connection URL, overrides [Database] (DATABASE_URL)")
	flMigrate     = flag.Bool("migrate", false, "apply pending migrations before start (MIGRATE)")
	cfg           config.Config
	lg            *slog.Logger
)

// @title Blogicum API
// @version 1.0
// @description Posts, comments, categories and profiles
// @host localhost:3000
// @BasePath /

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	var err error
	cfg, err = config.Load(*flConfig)
	exitOnError(err)

	if *flDatabaseURL != "" {
		exitOnError(cfg.SetDatabaseURL(*flDatabaseURL))
	}
	exitOnError(cfg.Validate())

	ctx := context.Background()

	if *flMigrate {
		exitOnError(migrate(ctx))
	}

	dbc := pg.Connect(&cfg.Database)
	if err := dbc.Ping(ctx); err != nil {
		dbc.Close()
		exitOnError(err)
	}
	if cfg.App.LogQueries {
		dbc.AddQueryHook(queryHook(lg))
	}

	service := app.New(cfg, dbc, lg)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx, cfg.App.Port)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func migrate(ctx context.Context) error {
	sqldb, err := db.OpenSQL(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	return db.Migrate(ctx, sqldb, "up")
}

func queryHook(logger *slog.Logger) *db.QueryHook {
	hook := db.NewQueryHook(logger)
	if cfg.App.SlowQuery.Duration != 0 {
		hook.WithSlowQuery(cfg.App.SlowQuery.Duration)
	}

	return hook
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
