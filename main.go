package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/roomanalam/My-blog/internal/config"
	"github.com/roomanalam/My-blog/internal/handler"
	"github.com/roomanalam/My-blog/internal/repository/sqlite"
	"github.com/roomanalam/My-blog/internal/service"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied")

	authService := service.NewAuthService(db.Users(), cfg.SessionSecret, cfg.BcryptCost)
	postService := service.NewPostService(db.Posts())
	commentService := service.NewCommentService(db.Comments(), db.Posts())

	// One credential or comment POST per second per client, short bursts allowed.
	limiter := service.NewIPRateLimiter(rate.Limit(1), 5)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, authService, postService, commentService, limiter, cfg.AdminUserID, cfg.CookieSecure)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.SecurityHeaders(mux),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
