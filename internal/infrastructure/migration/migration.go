// Package migration applies the schema either from the embedded goose scripts or, for
// development and tests, through gorm AutoMigrate.
package migration

import (
	"embed"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"likenovel/internal/infrastructure/persistence/models"
	"likenovel/internal/shared/constants"
	"likenovel/internal/shared/logger"
)

//go:embed scripts/*.sql
var scripts embed.FS

const scriptsDir = "scripts"

// Strategy defines the interface for different migration strategies
type Strategy interface {
	Migrate(db *gorm.DB) error
	GetName() string
}

// NewStrategy picks AutoMigrate for development and the versioned scripts elsewhere.
func NewStrategy(environment string, log logger.Interface) Strategy {
	if strings.EqualFold(environment, constants.EnvDevelopment) {
		return NewGormAutoMigrateStrategy(log)
	}
	return NewGooseStrategy(log)
}

// GormAutoMigrateStrategy creates tables from the persistence models.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy(log logger.Interface) *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{logger: log.With("component", "migration.automigrate")}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB) error {
	all := models.All()
	s.logger.Infow("starting gorm auto migration", "models_count", len(all))
	if err := db.AutoMigrate(all...); err != nil {
		s.logger.Errorw("auto migration failed", "error", err)
		return fmt.Errorf("auto migration failed: %w", err)
	}
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// AutoMigrate is a convenience wrapper used by tests and local bootstrapping.
func AutoMigrate(db *gorm.DB) error {
	return NewGormAutoMigrateStrategy(logger.NewNopLogger()).Migrate(db)
}
