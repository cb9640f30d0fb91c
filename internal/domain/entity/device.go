// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceStatus is the lifecycle state of a company device.
type DeviceStatus string

const (
	DeviceAvailable   DeviceStatus = "available"
	DeviceAssigned    DeviceStatus = "assigned"
	DeviceMaintenance DeviceStatus = "maintenance"
	DeviceRetired     DeviceStatus = "retired"
)

// IsValid checks if the status is a known value.
func (s DeviceStatus) IsValid() bool {
	switch s {
	case DeviceAvailable, DeviceAssigned, DeviceMaintenance, DeviceRetired:
		return true
	default:
		return false
	}
}

// Device represents a company-owned device tracked by the portal.
type Device struct {
	ID           uuid.UUID    `json:"id"`            // The Global Unique Identifier (GUID) for the device.
	Name         string       `json:"device_name"`   // Human readable name, e.g. "MacBook Pro 14 #12".
	Type         string       `json:"device_type"`   // Device class (laptop, phone, tablet, ...).
	Model        string       `json:"device_model"`  // Optional manufacturer model.
	SerialNumber string       `json:"serial_number"` // Optional manufacturer serial number.
	Status       DeviceStatus `json:"status"`        // Current lifecycle status.
	Notes        string       `json:"notes"`         // Free-form admin notes.
	CreatedAt    time.Time    `json:"created_at"`    // Timestamp of when the device was registered.
	CreatedBy    uuid.UUID    `json:"created_by"`    // Admin who registered the device.
}

// DeviceAssignment is one row of a device's custody ledger.
// At most one row per device has IsCurrent set.
type DeviceAssignment struct {
	ID              uuid.UUID  `json:"id"`
	DeviceID        uuid.UUID  `json:"device_id"`
	AssignedTo      uuid.UUID  `json:"assigned_to"`
	AssignedFrom    *uuid.UUID `json:"assigned_from"`
	AssignedBy      uuid.UUID  `json:"assigned_by"`
	AssignmentNotes string     `json:"assignment_notes"`
	IsCurrent       bool       `json:"is_current"`
	AssignedAt      time.Time  `json:"assigned_at"`
	HandedOverAt    *time.Time `json:"handed_over_at"`
	HandoverNotes   string     `json:"handover_notes"`
}

// Close ends the custody represented by the row.
func (a *DeviceAssignment) Close(at time.Time, notes string) {
	a.IsCurrent = false
	a.HandedOverAt = &at
	a.HandoverNotes = notes
}

// DeviceSummary is a device together with its present holder, if any.
type DeviceSummary struct {
	Device            *Device           `json:"device"`
	CurrentAssignment *DeviceAssignment `json:"current_assignment,omitempty"`
	Holder            *Profile          `json:"holder,omitempty"`
}

// DeviceFilter narrows the admin device list.
type DeviceFilter struct {
	Status DeviceStatus // Empty matches every status.
	Search string       // Case-insensitive match over name, type and serial number.
}

// AssignmentRecord is an assignment joined with its device, used by the "my devices" view.
type AssignmentRecord struct {
	Assignment *DeviceAssignment `json:"assignment"`
	Device     *Device           `json:"device"`
	Assigner   *Profile          `json:"assigner,omitempty"`
}
