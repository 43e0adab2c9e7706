package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"spinx-engine/internal/config"
	"spinx-engine/internal/database"
	"spinx-engine/internal/game"
	"spinx-engine/internal/handler"
	"spinx-engine/internal/logger"
	"spinx-engine/internal/repository/postgres"
	"spinx-engine/internal/service"
	"spinx-engine/internal/worker"

	_ "spinx-engine/docs"
)

// @title SpinX Engine API
// @version 1.0
// @description Wager settlement and wallet engine for the SpinX social casino
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Setup logger
	log := logger.New(true)

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// Initialize database connection
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbPool, err := database.NewPool(dbCtx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	if err := database.EnsureSchema(dbCtx, dbPool); err != nil {
		log.Fatal().Err(err).Msg("failed to apply schema")
	}

	// Repositories
	accountRepo := postgres.NewAccountRepository(dbPool)
	ledgerRepo := postgres.NewLedgerRepository(dbPool)
	withdrawalRepo := postgres.NewWithdrawalRepository(dbPool)
	minesRepo := postgres.NewMinesRepository(dbPool)

	// Transaction manager used by services
	txManager := postgres.NewTransactionManager(dbPool)

	// Shared randomness source for game resolution
	rng := game.NewSource()

	// Services
	accountService := service.NewAccountService(accountRepo, ledgerRepo, txManager, log)
	walletService := service.NewWalletService(accountRepo, ledgerRepo, txManager, cfg.Wallet, log)
	settlementService := service.NewSettlementService(accountRepo, ledgerRepo, txManager, cfg.Games, rng, log)
	minesService := service.NewMinesService(accountRepo, ledgerRepo, minesRepo, txManager, cfg.Games.Mines, cfg.Worker.SessionRetention, rng, log)
	withdrawalService := service.NewWithdrawalService(accountRepo, ledgerRepo, withdrawalRepo, txManager, cfg.Wallet.Withdraw, log)

	// Root context to be canceled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Worker sweeping finished mines sessions past retention
	reaperWorker := worker.NewReaperWorker(minesService, cfg.Worker.ReaperInterval, log)
	reaperWorker.Start(ctx)
	defer reaperWorker.Stop()

	// http handler
	h := handler.NewHandler(accountService, walletService, settlementService, minesService, withdrawalService, log)
	router := h.SetupRoutes()

	// http server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Str("port", cfg.Server.Port).Msg("Server started")

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received, starting graceful shutdown...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	} else {
		log.Info().Msg("HTTP server stopped gracefully")
	}

	log.Info().Msg("Shutdown complete")
}
