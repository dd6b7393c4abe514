package commands

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
	gormlogger "gorm.io/gorm/logger"

	"statement-importer/internal/config"
	"statement-importer/internal/database"
)

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	var seed bool
	up := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.migrationConfig(cmd)
			if err != nil {
				return err
			}

			if cfg.Database.IsSQLite() {
				return migrateSQLite(cmd, cfg)
			}

			return withRunner(cfg, seed, func(runner *database.MigrationRunner) error {
				if err := runner.WaitForDatabase(); err != nil {
					return err
				}
				if err := runner.RunMigrations(); err != nil {
					return err
				}
				if err := runner.LoadSeeds(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
				return nil
			})
		},
	}
	up.Flags().BoolVar(&seed, "seed", false, "load db/seeds after migrating")

	down := &cobra.Command{
		Use:   "down",
		Short: "Revert the most recent migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.migrationConfig(cmd)
			if err != nil {
				return err
			}

			return withRunner(cfg, false, func(runner *database.MigrationRunner) error {
				if err := runner.RollbackLast(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "rolled back one migration")
				return nil
			})
		},
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.migrationConfig(cmd)
			if err != nil {
				return err
			}

			return withRunner(cfg, false, func(runner *database.MigrationRunner) error {
				version, dirty, err := runner.GetMigrationStatus()
				if errors.Is(err, migrate.ErrNilVersion) {
					fmt.Fprintln(cmd.OutOrStdout(), "no migrations applied")
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
				return nil
			})
		},
	}

	cmd.AddCommand(up, down, status)
	return cmd
}

// migrationConfig loads the config and routes the runner's logs through the command logger
func (o *rootOptions) migrationConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	slog.SetDefault(o.newLogger(cmd.ErrOrStderr(), cfg))
	return cfg, nil
}

// migrateSQLite has no versioned migrations; the schema comes from gorm AutoMigrate
func migrateSQLite(cmd *cobra.Command, cfg *config.Config) error {
	db, err := database.New(&cfg.Database, gormlogger.Warn)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return err
	}
	created, err := db.SeedDefaultCategories()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "schema up to date, %d default categories created\n", created)
	return nil
}

func withRunner(cfg *config.Config, seed bool, fn func(*database.MigrationRunner) error) error {
	sqlDB, err := database.OpenMigrationDB(&cfg.Database)
	if err != nil {
		return err
	}
	defer func(db *sql.DB) { _ = db.Close() }(sqlDB)

	return fn(database.NewMigrationRunner(sqlDB).WithSeeds(seed))
}
