package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// Rows are only ever read and written on behalf of their owner (UserID).
type NotificationModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index:idx_notifications_user_created,priority:1"`
	Type        string         `gorm:"type:varchar(32);not null"`
	Category    string         `gorm:"type:varchar(32);not null;default:'system'"`
	Priority    string         `gorm:"type:varchar(16);not null;default:'normal'"`
	Title       string         `gorm:"type:text;not null"`
	Message     string         `gorm:"type:text;not null"`
	RichContent datatypes.JSON `gorm:"type:jsonb"`
	LinkURL     string         `gorm:"type:text"`
	LinkText    string         `gorm:"type:text"`
	ActorID     *uuid.UUID     `gorm:"type:uuid"`
	ActorName   string         `gorm:"type:text"`
	ActorAvatar string         `gorm:"type:text"`
	EntityType  string         `gorm:"type:varchar(64)"`
	EntityID    *uuid.UUID     `gorm:"type:uuid"`
	Read        bool           `gorm:"not null;default:false"`
	ReadAt      *time.Time
	Archived    bool `gorm:"not null;default:false"`
	ArchivedAt  *time.Time
	Clicked     bool `gorm:"not null;default:false"`
	ClickedAt   *time.Time
	CreatedAt   time.Time `gorm:"index:idx_notifications_user_created,priority:2,sort:desc"`
	ExpiresAt   *time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
