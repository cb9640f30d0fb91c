package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel is the GORM-specific struct for the 'devices' table.
type DeviceModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeviceName   string    `gorm:"type:varchar(255);not null"`
	DeviceType   string    `gorm:"type:varchar(64);not null"`
	DeviceModel  string    `gorm:"type:varchar(255)"`
	SerialNumber *string   `gorm:"type:varchar(255);uniqueIndex"`
	Status       string    `gorm:"type:varchar(32);not null;default:'available';index"`
	Notes        string    `gorm:"type:text"`
	CreatedAt    time.Time
	CreatedBy    uuid.UUID `gorm:"type:uuid;not null"`
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}

// DeviceAssignmentModel is the GORM-specific struct for the 'device_assignments' table.
// The partial unique index keeps at most one current row per device.
type DeviceAssignmentModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeviceID        uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_device_assignments_current,where:is_current"`
	AssignedTo      uuid.UUID  `gorm:"type:uuid;not null;index"`
	AssignedFrom    *uuid.UUID `gorm:"type:uuid"`
	AssignedBy      uuid.UUID  `gorm:"type:uuid;not null"`
	AssignmentNotes string     `gorm:"type:text"`
	IsCurrent       bool       `gorm:"not null;default:true"`
	AssignedAt      time.Time  `gorm:"not null"`
	HandedOverAt    *time.Time
	HandoverNotes   string `gorm:"type:text"`

	Device *DeviceModel `gorm:"foreignKey:DeviceID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (DeviceAssignmentModel) TableName() string {
	return "device_assignments"
}
