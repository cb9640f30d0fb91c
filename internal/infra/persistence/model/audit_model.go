package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLogModel is the GORM-specific struct for the 'audit_logs' table.
type AuditLogModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ActorID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Action     string         `gorm:"type:varchar(32);not null;index"`
	EntityType string         `gorm:"type:varchar(64);not null;index"`
	EntityID   *uuid.UUID     `gorm:"type:uuid"`
	OldValues  datatypes.JSON `gorm:"type:jsonb"`
	NewValues  datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt  time.Time      `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (AuditLogModel) TableName() string {
	return "audit_logs"
}
