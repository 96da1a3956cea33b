package datasources

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bootcamp-signup.backend/internal/config"
	"bootcamp-signup.backend/internal/infrastructure/models"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

var (
	openPostgres = func(dsn string) gorm.Dialector {
		return postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		})
	}
	openSQLite = sqlite.Open
	gormOpen   = gorm.Open
)

// NewConnection opens a GORM connection for the configured driver.
// Unique index violations are translated to gorm.ErrDuplicatedKey.
func NewConnection(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case DriverPostgres:
		dialector = openPostgres(cfg.URL())
	case DriverSQLite:
		dialector = openSQLite(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gormOpen(dialector, &gorm.Config{
		PrepareStmt:    false,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the signup table
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.BootcampSignup{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
