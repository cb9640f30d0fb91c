package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Audit actions recorded by the portal.
const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
	AuditActionAssign = "assign"
)

// Audited entity types.
const (
	AuditEntityDevice       = "device"
	AuditEntityAssetIssue   = "asset_issue"
	AuditEntityFeedback     = "feedback"
	AuditEntityNotification = "notification"
)

// AuditEntry records who changed what.
type AuditEntry struct {
	ID         uuid.UUID       `json:"id"`
	ActorID    uuid.UUID       `json:"actor_id"`
	Action     string          `json:"action"`
	EntityType string          `json:"entity_type"`
	EntityID   *uuid.UUID      `json:"entity_id,omitempty"`
	OldValues  json.RawMessage `json:"old_values,omitempty"`
	NewValues  json.RawMessage `json:"new_values,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// AuditFilter narrows the audit log listing.
type AuditFilter struct {
	EntityType string
	Action     string
	Limit      int
	Offset     int
}
