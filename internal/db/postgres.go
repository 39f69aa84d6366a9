package db

import (
	"fmt"
	"os"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/saladbowl/saladbowl-backend/internal/logger"
	"github.com/saladbowl/saladbowl-backend/internal/types"
	"github.com/saladbowl/saladbowl-backend/internal/utils"
)

// connectionURLVars is the fallback chain of connection-string variables, in
// the order they are checked. A ConfigError reports this list back to the
// caller of the setup endpoint.
var connectionURLVars = []string{
	"DATABASE_URL",
	"POSTGRES_URL",
	"SALADBOWL_DATABASE_URL",
	"SALADBOWL_POSTGRES_URL",
}

// ConfigError means no usable connection configuration was found. Checked
// enumerates the environment variables that were consulted.
type ConfigError struct {
	Checked []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("no database connection string found (checked %s)", strings.Join(e.Checked, ", "))
}

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewPostgresService opens the backing database. The driver is selected by
// DB_DRIVER: "postgres" (default) resolves a DSN from the connection-string
// fallback chain or the POSTGRES_HOST part variables; "sqlite" opens the file
// named by SQLITE_PATH, which keeps local runs free of a Postgres instance.
func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	driver := utils.GetEnv("DB_DRIVER", "postgres", log)

	var dialector gorm.Dialector
	switch strings.ToLower(driver) {
	case "sqlite":
		path := utils.GetEnv("SQLITE_PATH", "saladbowl.db", log)
		dialector = sqlite.Open(path)
	default:
		dsn, err := resolveDSN(log)
		if err != nil {
			return nil, err
		}
		dialector = postgres.Open(dsn)
	}

	serviceLog.Info("Connecting to database", "driver", driver)
	gdb, err := gorm.Open(dialector, &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		serviceLog.Error("Failed to connect to database", "error", err)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresService{db: gdb, log: serviceLog}, nil
}

// resolveDSN prefers a full connection string from the fallback chain and
// falls back to assembling one from the POSTGRES_* part variables. It fails
// with a ConfigError when neither a URL nor a host is configured.
func resolveDSN(log *logger.Logger) (string, error) {
	for _, key := range connectionURLVars {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			log.Debug("Using connection string from environment", "env_var", key)
			return v, nil
		}
	}

	host := strings.TrimSpace(os.Getenv("POSTGRES_HOST"))
	if host == "" {
		return "", &ConfigError{Checked: append(append([]string{}, connectionURLVars...), "POSTGRES_HOST")}
	}
	port := utils.GetEnv("POSTGRES_PORT", "5432", log)
	user := utils.GetEnv("POSTGRES_USER", "postgres", log)
	password := utils.GetEnv("POSTGRES_PASSWORD", "", log)
	name := utils.GetEnv("POSTGRES_NAME", "saladbowl", log)
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, name), nil
}

// AutoMigrateAll idempotently ensures the backing tables exist. Safe to call
// repeatedly; this backs the setup endpoint.
func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Migrating tables...")
	if err := s.db.AutoMigrate(
		&types.Feedback{},
		&types.TeamInterest{},
		&types.AICallLog{},
	); err != nil {
		s.log.Error("Migration failed", "error", err)
		return err
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}
