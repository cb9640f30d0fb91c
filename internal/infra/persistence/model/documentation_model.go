package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DocumentationModel is the GORM-specific struct for the 'user_documentation' table.
type DocumentationModel struct {
	ID        uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Title     string                      `gorm:"type:text;not null"`
	Content   string                      `gorm:"type:text;not null"`
	Category  *string                     `gorm:"type:varchar(64);index"`
	Tags      datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	IsDraft   bool                        `gorm:"not null;default:false"`
	CreatedAt time.Time                   `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DocumentationModel) TableName() string {
	return "user_documentation"
}
