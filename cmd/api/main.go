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

	"capstack-api/internal/auth"
	"capstack-api/internal/config"
	"capstack-api/internal/finance"
	"capstack-api/internal/httpapi"
	"capstack-api/internal/savings"
	"capstack-api/internal/storage"
	"capstack-api/internal/users"
	"capstack-api/pkg/logger"
	"capstack-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

const guestSweepInterval = time.Hour

func main() {
	// Root context that cancels on shutdown
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}

	log := logger.New(cfg.App.Env)
	slog.SetDefault(log)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	authManager, err := auth.NewManager(cfg.Auth)
	if err != nil {
		log.Error("auth init failed", "err", err)
		os.Exit(1)
	}

	db, err := storage.Open(rootCtx, cfg.PostgresDSN())
	if err != nil {
		log.Error("postgres init failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	rdb, err := utils.OpenRedis(rootCtx, utils.RedisConfig{Addr: cfg.RedisAddr()})
	if err != nil {
		log.Error("redis init failed", "err", err)
		os.Exit(1)
	}
	defer rdb.Close()

	userService := users.NewService(db, cfg.Auth.SessionTTL)
	financeService := finance.NewService(db, rdb)
	savingsService := savings.NewService(db)

	// Guest rows are disposable; sweep expired ones instead of letting
	// them accumulate.
	go func() {
		ticker := time.NewTicker(guestSweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-rootCtx.Done():
				return
			case <-ticker.C:
				if err := userService.SweepExpiredGuests(rootCtx); err != nil {
					log.Warn("guest sweep failed", "err", err)
				}
			}
		}
	}()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.Middleware(log))

	registerRoutes(r, httpapi.Handlers{
		Auth:     authManager,
		Users:    userService,
		Finance:  financeService,
		Savings:  savingsService,
		RDB:      rdb,
		GuestCfg: cfg.Guest,
	}, authManager)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("api listening", "addr", srv.Addr, "env", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "err", err)
			stop()
		}
	}()

	<-rootCtx.Done()
	log.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown failed", "err", err)
	}
}
