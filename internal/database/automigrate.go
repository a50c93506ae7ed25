package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"travel-vote-api/internal/domain"
)

// Models returns every domain model in migration order
func Models() []interface{} {
	return []interface{}{
		&domain.User{},
		&domain.Accommodation{},
		&domain.AccommodationImage{},
		&domain.Vote{},
		&domain.Comment{},
	}
}

// AutoMigrate runs GORM auto-migration for all domain models
func AutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	migrator := db.Migrator()

	for _, m := range Models() {
		existed := migrator.HasTable(m)
		if err := db.AutoMigrate(m); err != nil {
			logger.Error("Failed to migrate table",
				zap.String("model", fmt.Sprintf("%T", m)),
				zap.Bool("table_existed", existed),
				zap.Error(err),
			)
			return fmt.Errorf("failed to run auto-migration for %T: %w", m, err)
		}
		logger.Debug("Migrated table",
			zap.String("model", fmt.Sprintf("%T", m)),
			zap.Bool("was_existing", existed),
		)
	}

	logger.Info("Auto-migration completed", zap.Int("tables_migrated", len(Models())))
	return nil
}
