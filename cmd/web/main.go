package main

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

	"github.com/jaekwang-park/todo-lists/internal/config"
	todohttp "github.com/jaekwang-park/todo-lists/internal/http"
	"github.com/jaekwang-park/todo-lists/internal/http/handler"
	"github.com/jaekwang-park/todo-lists/internal/repository"
	"github.com/jaekwang-park/todo-lists/internal/service"
	"github.com/jaekwang-park/todo-lists/internal/session"
)

func main() {
	// Initial logger at info level; reconfigured after config load
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(context.Background()); err != nil {
		logger.Error("application failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.ParseLogLevel(),
	}))
	slog.SetDefault(logger)

	logger.Info("config loaded",
		"env", cfg.AppEnv,
		"port", cfg.ServerPort,
		"storage", cfg.Storage,
		"log_level", cfg.LogLevel,
	)

	repo, healthCheck, closeRepo, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	listSvc := service.NewListService(repo)

	if cfg.UsesDevSecret() {
		logger.Warn("SESSION_SECRET not set: using development secret")
	}
	sessions, err := session.NewStore(cfg.Secret(), cfg.SecureCookies())
	if err != nil {
		return fmt.Errorf("failed to create session store: %w", err)
	}

	// HTTP Server
	srv := todohttp.NewServer(cfg.ServerPort, logger, listSvc, sessions, healthCheck)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server stopped gracefully")
	return nil
}

// openStorage selects the list repository backend. The returned close
// function is always safe to call.
func openStorage(ctx context.Context, cfg config.Config, logger *slog.Logger) (repository.ListRepository, handler.HealthCheck, func(), error) {
	if cfg.Storage == config.StorageMemory {
		logger.Warn("using in-memory storage: data is lost on restart")
		return repository.NewMemoryList(), nil, func() {}, nil
	}

	db, err := repository.NewDB(cfg.DB.DSN())
	if err != nil {
		return nil, nil, nil, err
	}
	logger.Info("database connected")

	if err := repository.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, nil, nil, err
	}

	closeDB := func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}
	return repository.NewPostgresList(db), pingCheck(db), closeDB, nil
}

func pingCheck(db *sql.DB) handler.HealthCheck {
	return db.PingContext
}
