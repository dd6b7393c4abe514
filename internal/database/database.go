package database

import (
	"fmt"
	"log/slog"
	"time"

	"statement-importer/internal/config"
	"statement-importer/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig, logLevel logger.LogLevel) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	dialector := postgres.Open(cfg.DSN())
	if cfg.IsSQLite() {
		dialector = sqlite.Open(cfg.DSN())
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if cfg.IsSQLite() {
		// sqlite serializes writers; one connection avoids "database is locked"
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxConnections)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Account{},
		&models.Category{},
		&models.ImportBatch{},
		&models.Transaction{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

// CreateIndexes adds the indexes gorm tags cannot express. The statements run on postgres and sqlite.
func (db *DB) CreateIndexes() error {
	queries := []string{
		// Exact-match duplicate lookups during import
		"CREATE INDEX IF NOT EXISTS idx_transactions_dedup ON transactions(account_id, date, amount, description)",
		// History rebuild order
		"CREATE INDEX IF NOT EXISTS idx_transactions_history ON transactions(date DESC, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_category_id ON transactions(category_id)",
		"CREATE INDEX IF NOT EXISTS idx_import_batches_created_at ON import_batches(created_at)",
	}

	failed := 0
	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			slog.Warn("Failed to create index", "query", query, "error", err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("failed to create %d of %d indexes", failed, len(queries))
	}
	return nil
}

// SeedDefaultCategories inserts the default categories that are missing
func (db *DB) SeedDefaultCategories() (int, error) {
	created := 0
	for _, def := range models.DefaultCategories() {
		category := def
		result := db.DB.Where(models.Category{Name: def.Name, Kind: def.Kind}).FirstOrCreate(&category)
		if result.Error != nil {
			return created, fmt.Errorf("failed to seed category %s/%s: %w", def.Kind, def.Name, result.Error)
		}
		if result.RowsAffected > 0 {
			created++
		}
	}
	return created, nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*DB, error) {
	logLevel := logger.Warn
	if cfg.IsDevelopment() {
		logLevel = logger.Info
	}

	db, err := New(&cfg.Database, logLevel)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	if err := db.CreateIndexes(); err != nil {
		slog.Warn("Failed to create some indexes", "error", err)
	}

	created, err := db.SeedDefaultCategories()
	if err != nil {
		return nil, err
	}

	slog.Info("Database initialized successfully",
		"driver", cfg.Database.Driver,
		"seeded_categories", created,
	)

	return db, nil
}

// Migrate applies SQL migrations on postgres when enabled and falls back to gorm AutoMigrate
func (db *DB) Migrate() error {
	if db.config != nil && !db.config.IsSQLite() {
		sqlDB, err := db.DB.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB: %w", err)
		}

		err = RunMigrationsIfEnabled(sqlDB, db.config)
		if err == nil && db.config.AutoMigrate {
			return nil
		}
		if err != nil {
			slog.Warn("Migration runner failed, falling back to GORM AutoMigrate", "error", err)
		}
	}

	if err := db.AutoMigrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
