package builder

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/mindwell/assessment-backend/internal/api"
	assessmentapi "github.com/mindwell/assessment-backend/internal/api/assessment"
	"github.com/mindwell/assessment-backend/internal/config"
	"github.com/mindwell/assessment-backend/internal/integration/alert"
	"github.com/mindwell/assessment-backend/internal/pkg/validator"
	"github.com/mindwell/assessment-backend/internal/repository"
	"github.com/mindwell/assessment-backend/internal/telegram"
	"github.com/mindwell/assessment-backend/internal/telegram/state"
	"github.com/mindwell/assessment-backend/internal/usecase/assessment"
	"go.uber.org/zap/zapcore"
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	recordRepo, db, err := setupRepository(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	assessmentUC := setupUsecase(cfg, recordRepo, logger)

	// Setup API handlers
	assessmentHandler := assessmentapi.NewHandler(assessmentUC)
	logger.Info("API handlers initialized")

	// Setup router
	router := api.SetupRouter(assessmentHandler, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		db:     db,
		logger: logger,
	}, nil
}

// BuildTelegramBot creates and initializes the Telegram bot
func BuildTelegramBot() (telegram.Bot, *zap.Logger, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building Telegram bot",
		zap.String("environment", cfg.Environment),
	)

	recordRepo, _, err := setupRepository(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	assessmentUC := setupUsecase(cfg, recordRepo, logger)

	storage := state.NewCacheStorage(cfg.SessionCfg.TTL, cfg.SessionCfg.CleanupInterval)

	bot, err := telegram.NewBot(&cfg.TelegramCfg, storage, assessmentUC, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize telegram bot: %w", err)
	}

	logger.Info("Telegram bot built successfully",
		zap.String("environment", cfg.Environment),
	)

	return bot, logger, nil
}

// setupRepository returns the assessment repository, along with the pool
// when Postgres backs it.
func setupRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.AssessmentRepository, *pgxpool.Pool, error) {
	if cfg.UseMemoryRepository {
		logger.Info("Using in-memory assessment repository")
		return repository.NewAssessmentMemory(), nil, nil
	}

	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("setup database: %w", err)
	}

	logger.Info("Running database migrations")
	if err := repository.RunMigrations(cfg.DatabaseURL); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	return repository.NewAssessmentPostgres(db), db, nil
}

func setupUsecase(cfg *config.Config, recordRepo repository.AssessmentRepository, logger *zap.Logger) *assessment.AssessmentUsecase {
	var alerts assessment.AlertConnector
	if cfg.AlertCfg.Enabled {
		logger.Info("Using alert webhook connector", zap.String("endpoint", cfg.AlertCfg.AlertEndpoint))
		alerts = alert.NewConnector(cfg.AlertCfg, logger)
	} else {
		logger.Info("Alert webhook disabled, using logging connector")
		alerts = alert.NewMockConnector(logger)
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	uc := assessment.NewUsecase(
		recordRepo,
		alerts,
		validator.New(),
		cfg.SessionCfg,
		rnd.Float64,
		logger,
	)
	logger.Info("Use cases initialized")

	return uc
}

func setupLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	zapCfg.EncoderConfig.TimeKey = "ts"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger, nil
}
