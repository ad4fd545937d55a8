package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/quipuapp/quipu/internal/adapter/http"
	"github.com/quipuapp/quipu/internal/adapter/http/handler"
	postgresRepo "github.com/quipuapp/quipu/internal/adapter/repository/postgres"
	redisRepo "github.com/quipuapp/quipu/internal/adapter/repository/redis"
	"github.com/quipuapp/quipu/internal/classify"
	"github.com/quipuapp/quipu/internal/closing"
	"github.com/quipuapp/quipu/internal/infrastructure/config"
	"github.com/quipuapp/quipu/internal/infrastructure/logger"
	"github.com/quipuapp/quipu/internal/infrastructure/metrics"
	"github.com/quipuapp/quipu/internal/infrastructure/postgres"
	"github.com/quipuapp/quipu/internal/infrastructure/redis"
	"github.com/quipuapp/quipu/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if cfg.MigrationsPath != "" {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Load the classification rule set
	rules, err := loadRules(cfg.RulesPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.RulesPath).Msg("failed to load rules")
	}
	log.Info().Str("version", rules.Version).Msg("classification rules loaded")

	keys := closing.KeyAccounts{
		IncomeSummary:           cfg.IncomeSummaryAccount,
		RetainedEarnings:        cfg.RetainedEarningsAccount,
		TaxPayable:              cfg.TaxPayableAccount,
		LegalReserve:            cfg.LegalReserveAccount,
		InflationAdjustment:     cfg.InflationAccount,
		DepreciationExpense:     cfg.DepreciationExpenseAcct,
		AccumulatedDepreciation: cfg.AccumDepreciationAcct,
	}
	options := closing.Options{EntityKind: cfg.EntityKind}

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	balanceRepo := postgresRepo.NewBalanceRepository(pool)
	periodRepo := postgresRepo.NewPeriodRepository(pool)
	txRepo := postgresRepo.NewTransactionRepository(pool)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	cache := redisRepo.NewCache(redisClient)
	idGen := postgresRepo.NewULIDGenerator()

	// Initialize use cases
	accountUC := usecase.NewAccountUseCase(accountRepo, balanceRepo, cache, rules)
	periodUC := usecase.NewPeriodUseCase(periodRepo)
	closingUC := usecase.NewClosingUseCase(txManager, accountRepo, balanceRepo, periodRepo, txRepo, idGen, rules, keys, options)

	m := metrics.New()

	// Initialize handlers
	accountHandler := handler.NewAccountHandler(accountUC)
	chartHandler := handler.NewChartHandler(accountUC)
	periodHandler := handler.NewPeriodHandler(periodUC)
	closingHandler := handler.NewClosingHandler(closingUC, m)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler:   accountHandler,
		ChartHandler:     chartHandler,
		PeriodHandler:    periodHandler,
		ClosingHandler:   closingHandler,
		HealthHandler:    healthHandler,
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
		Logger:           appLogger,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

func loadRules(path string) (classify.RuleSet, error) {
	if path == "" {
		return classify.Default(), nil
	}
	return classify.Load(path)
}
