package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProfileModel mirrors the 'profiles' table maintained by the identity provider.
type ProfileModel struct {
	ID              uuid.UUID                   `gorm:"type:uuid;primary_key"`
	FirstName       string                      `gorm:"type:varchar(100)"`
	LastName        string                      `gorm:"type:varchar(100)"`
	CompanyEmail    string                      `gorm:"type:varchar(255);unique"`
	Department      string                      `gorm:"type:varchar(100);index"`
	Role            string                      `gorm:"type:varchar(32);not null;default:'staff'"`
	LeadDepartments datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	AvatarURL       string                      `gorm:"type:text"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
