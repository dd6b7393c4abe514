package commands

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"statement-importer/internal/config"
	"statement-importer/internal/database"
	"statement-importer/internal/importer"
	"statement-importer/internal/models"
	"statement-importer/internal/repositories"
	"statement-importer/internal/services"
)

// app holds the wired services shared by the server and the CLI commands
type app struct {
	cfg        *config.Config
	db         *database.DB
	logger     *slog.Logger
	accounts   services.AccountServiceInterface
	categories services.CategoryServiceInterface
	imports    services.ImportServiceInterface
}

// newApp connects to the database and wires the import pipeline
func newApp(cfg *config.Config, logger *slog.Logger, reg prometheus.Registerer) (*app, error) {
	db, err := database.Initialize(cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}

	var rules []models.KeywordRule
	if cfg.Import.KeywordRulesFile != "" {
		rules, err = services.LoadKeywordRules(cfg.Import.KeywordRulesFile)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("loading keyword rules: %w", err)
		}
		logger.Info("Loaded keyword rules", "file", cfg.Import.KeywordRulesFile, "rules", len(rules))
	}

	accountRepo := repositories.NewAccountRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	categoryRepo := repositories.NewCategoryRepository(db.DB)
	batchRepo := repositories.NewImportBatchRepository(db.DB)

	metrics := services.NewPrometheusMetrics(reg)

	imports := services.NewImportService(
		importer.DefaultRegistry(logger),
		accountRepo,
		transactionRepo,
		categoryRepo,
		batchRepo,
		services.NewClassificationHistoryService(transactionRepo, metrics, logger),
		services.NewCategoryResolver(rules, logger),
		services.NewDedupGuard(transactionRepo, cfg.Import.NearDuplicateDistance, logger),
		services.NewInstallmentProjector(),
		services.NewImportLogger(logger),
		metrics,
	)

	return &app{
		cfg:        cfg,
		db:         db,
		logger:     logger,
		accounts:   services.NewAccountService(accountRepo, transactionRepo, logger),
		categories: services.NewCategoryService(categoryRepo, logger),
		imports:    imports,
	}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}
