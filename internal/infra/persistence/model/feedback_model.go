package model

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackModel is the GORM-specific struct for the 'feedback' table.
type FeedbackModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	FeedbackType string    `gorm:"type:varchar(64);not null"`
	Title        string    `gorm:"type:text;not null"`
	Description  string    `gorm:"type:text"`
	Status       string    `gorm:"type:varchar(32);not null;default:'open'"`
	CreatedAt    time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (FeedbackModel) TableName() string {
	return "feedback"
}
