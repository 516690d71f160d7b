package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/daniilsolovey/blogicum/config"
	_ "github.com/daniilsolovey/blogicum/docs"
	"github.com/daniilsolovey/blogicum/internal/blog"
	"github.com/daniilsolovey/blogicum/internal/db"
	"github.com/daniilsolovey/blogicum/internal/identity"
	"github.com/daniilsolovey/blogicum/internal/rest"
	"github.com/daniilsolovey/blogicum/internal/rpc"
	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"
)

const (
	rpcPath     = "/v1/rpc/"
	metricsPath = "/metrics"
	swaggerPath = "/swagger/doc.json"
)

type App struct {
	DB       *db.Repository
	Logger   *slog.Logger
	Echo     *echo.Echo
	Config   config.Config
	Manager  *blog.Manager
	Registry *prometheus.Registry
}

func New(cfg config.Config, dbConnect pg.DBI, logger *slog.Logger) *App {
	registry := prometheus.NewRegistry()
	m := newMetrics(registry)

	repo := db.New(dbConnect)
	manager := blog.NewManager(repo, logger,
		blog.WithPageSize(cfg.App.PageSize),
		blog.WithFeedLimit(cfg.App.FeedLimit),
		blog.WithMutationObserver(m.observeMutation),
	)
	tokens := identity.NewProvider(cfg.Auth.Secret, cfg.Auth.TokenTTL.Duration)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = rest.ErrorHandler(logger)
	e.Use(m.middleware)

	handler := rest.NewBlogHandler(manager, logger)
	handler.RegisterRoutes(e, tokens)

	rpcServer := rpc.New(logger, manager)
	e.Any(rpcPath, echo.WrapHandler(rpcServer), rest.IdentityMiddleware(tokens))
	e.GET(metricsPath, echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))
	e.GET(swaggerPath, swaggerDoc)

	return &App{
		DB:       repo,
		Logger:   logger,
		Echo:     e,
		Config:   cfg,
		Manager:  manager,
		Registry: registry,
	}
}

func swaggerDoc(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, []byte(doc))
}

func (a *App) Run(ctx context.Context, port int) error {
	if err := a.DB.Ping(ctx); err != nil {
		return fmt.Errorf("database ping: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, port)
	a.Logger.Info("service started", "addr", addr)

	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}

	return errors.Join(err, a.DB.Close())
}
