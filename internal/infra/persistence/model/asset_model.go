package model

import (
	"time"

	"github.com/google/uuid"
)

// AssetModel is the GORM-specific struct for the 'assets' table.
type AssetModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UniqueCode string    `gorm:"type:varchar(64);not null;unique"`
	AssetType  string    `gorm:"type:varchar(64);not null;index"`
	Status     string    `gorm:"type:varchar(32);not null;default:'active'"`
}

// TableName explicitly sets the table name for GORM.
func (AssetModel) TableName() string {
	return "assets"
}

// AssetIssueModel is the GORM-specific struct for the 'asset_issues' table.
type AssetIssueModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AssetID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	IssueDescription string     `gorm:"type:text;not null"`
	Resolved         bool       `gorm:"not null;default:false;index"`
	ResolvedBy       *uuid.UUID `gorm:"type:uuid"`
	ResolvedAt       *time.Time
	CreatedBy        uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt        time.Time

	Asset *AssetModel `gorm:"foreignKey:AssetID"`
}

// TableName explicitly sets the table name for GORM.
func (AssetIssueModel) TableName() string {
	return "asset_issues"
}
