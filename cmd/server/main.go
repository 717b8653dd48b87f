package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/api-sage/banking-api/internal/adapter/http/controller"
	"github.com/api-sage/banking-api/internal/adapter/http/middleware"
	"github.com/api-sage/banking-api/internal/adapter/http/router"
	"github.com/api-sage/banking-api/internal/adapter/repository/postgres"
	"github.com/api-sage/banking-api/internal/config"
	"github.com/api-sage/banking-api/internal/logger"
	"github.com/api-sage/banking-api/internal/usecase/services"
)

func main() {
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config failed", err, nil)
		os.Exit(1)
	}

	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsDir); err != nil {
		logger.Error("run migrations failed", err, nil)
		os.Exit(1)
	}
	logger.Info("migrations completed", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := postgres.Open(ctx, cfg.DatabaseDSN)
	cancel()
	if err != nil {
		logger.Error("open database failed", err, nil)
		os.Exit(1)
	}
	defer db.Close()

	accountRepo := postgres.NewAccountRepository(db)
	institutionRepo := postgres.NewInstitutionRepository(db)
	memberRepo := postgres.NewMemberRepository(db)

	accountService := services.NewAccountService(accountRepo)
	institutionService := services.NewInstitutionService(institutionRepo)
	memberService := services.NewMemberService(memberRepo, institutionRepo)

	var authMiddleware func(http.Handler) http.Handler
	if cfg.ChannelID != "" && cfg.ChannelKey != "" {
		authMiddleware, err = middleware.BasicAuth(cfg.ChannelID, cfg.ChannelKey)
		if err != nil {
			logger.Error("configure basic auth failed", err, nil)
			os.Exit(1)
		}
		logger.Info("basic auth enabled for mutating routes", nil)
	}

	mux := router.New(
		controller.NewAccountController(accountService),
		controller.NewInstitutionController(institutionService),
		controller.NewMemberController(memberService),
		authMiddleware,
	)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("http server listening", logger.Fields{"addr": cfg.HTTPAddr})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", err, nil)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down", nil)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", err, nil)
	}
}
