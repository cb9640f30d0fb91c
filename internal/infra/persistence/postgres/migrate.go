package postgres

import (
	"context"

	"staffportal/internal/errors"
	"staffportal/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// schemaStatements complement AutoMigrate with what struct tags cannot express.
var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS pg_uuidv7`,
	`ALTER TABLE devices DROP CONSTRAINT IF EXISTS chk_devices_status`,
	`ALTER TABLE devices ADD CONSTRAINT chk_devices_status
		CHECK (status IN ('available', 'assigned', 'maintenance', 'retired'))`,
	`ALTER TABLE feedback DROP CONSTRAINT IF EXISTS chk_feedback_status`,
	`ALTER TABLE feedback ADD CONSTRAINT chk_feedback_status
		CHECK (status IN ('open', 'in_progress', 'resolved', 'closed'))`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_user_unread
		ON notifications (user_id) WHERE NOT read AND NOT archived`,
}

// Migrate creates or updates the tables of every persistence model.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if err := db.Exec(schemaStatements[0]).Error; err != nil {
		return errors.Wrap(err, "failed to enable uuid extension")
	}

	if err := db.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to auto migrate models")
	}

	for _, stmt := range schemaStatements[1:] {
		if err := db.Exec(stmt).Error; err != nil {
			return errors.Wrap(err, "failed to apply schema statement")
		}
	}

	return nil
}

// requiredIndexes back guarantees the repositories rely on.
var requiredIndexes = []string{
	"idx_device_assignments_current", // at most one current assignment per device
}

// VerifySchema fails when an index from requiredIndexes is missing.
func VerifySchema(ctx context.Context, db *gorm.DB) error {
	for _, name := range requiredIndexes {
		var count int64
		err := db.WithContext(ctx).
			Raw(`SELECT count(*) FROM pg_indexes WHERE schemaname = current_schema() AND indexname = ?`, name).
			Scan(&count).Error
		if err != nil {
			return errors.Wrap(err, "failed to inspect schema")
		}
		if count == 0 {
			return errors.Errorf("index %s is missing, run with env.autoMigrate enabled", name)
		}
	}

	return nil
}
