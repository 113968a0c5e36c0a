// Package server initializes and runs the API server: configuration,
// database and migrations, the optional redis cache, the question bank,
// services, and the HTTP endpoint with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/mockview/mockview/internal/logging"
	"github.com/mockview/mockview/internal/server/cache"
	"github.com/mockview/mockview/internal/server/config"
	"github.com/mockview/mockview/internal/server/httpapi"
	"github.com/mockview/mockview/internal/server/questions"
	"github.com/mockview/mockview/internal/server/repositories/repomanager"
	"github.com/mockview/mockview/internal/server/services"
	"github.com/mockview/mockview/internal/server/textio"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	cache   *cache.Cache
	handler http.Handler
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	// Redis is optional. A nil cache disables the denylist and stats cache.
	var c *cache.Cache
	if cfg.RedisURL != "" {
		c, err = cache.New(ctx, cfg.RedisURL)
		if err != nil {
			logger.Warn(ctx, "redis unavailable, caching disabled", "error", err)
			c = nil
		}
	}

	bank, err := questions.Load()
	if err != nil {
		return nil, fmt.Errorf("question bank error: %w", err)
	}

	exporter := textio.NewExporter(cfg)

	userService := services.NewUserService(db, rm, c, cfg)
	interviewService := services.NewInterviewService(db, rm, c, bank)
	fluencyService := services.NewFluencyService(db, rm, c)
	resumeService := services.NewResumeService(db, rm, c, bank, exporter)
	dashboardService := services.NewDashboardService(db, rm, c, cfg)

	handler := httpapi.NewRouter(cfg, logger, c, httpapi.Handlers{
		Auth:      httpapi.NewAuthHandler(userService, logger),
		Interview: httpapi.NewInterviewHandler(interviewService, logger),
		Fluency:   httpapi.NewFluencyHandler(fluencyService, logger),
		Resume:    httpapi.NewResumeHandler(resumeService, logger),
		Dashboard: httpapi.NewDashboardHandler(dashboardService, logger),
	})

	return &App{config: cfg, logger: logger, db: db, cache: c, handler: handler}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	srv := &http.Server{
		Addr:    app.config.HTTPAddr,
		Handler: app.handler,
	}

	go func() {
		app.logger.Info(ctx, "starting http server", "addr", app.config.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.logger.Error(ctx, "http server error", "error", err)
			cancelFunc()
		}
	}()

	<-ctx.Done()

	app.logger.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, "shutdown error", "error", err)
	}

	if err := app.cache.Close(); err != nil {
		app.logger.Error(shutdownCtx, "cache close error", "error", err)
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error(shutdownCtx, "db close error", "error", err)
	}

	app.logger.Info(shutdownCtx, "server stopped")
}
