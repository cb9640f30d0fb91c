// Package entity contains the core business objects of the project.
package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// NotificationType enumerates the events a notification can describe.
type NotificationType string

const (
	NotificationTaskAssigned    NotificationType = "task_assigned"
	NotificationTaskUpdated     NotificationType = "task_updated"
	NotificationTaskCompleted   NotificationType = "task_completed"
	NotificationMention         NotificationType = "mention"
	NotificationFeedback        NotificationType = "feedback"
	NotificationAssetAssigned   NotificationType = "asset_assigned"
	NotificationApprovalRequest NotificationType = "approval_request"
	NotificationApprovalGranted NotificationType = "approval_granted"
	NotificationSystem          NotificationType = "system"
	NotificationAnnouncement    NotificationType = "announcement"
)

// IsValid checks if the type is one of the known notification types.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTaskAssigned, NotificationTaskUpdated, NotificationTaskCompleted,
		NotificationMention, NotificationFeedback, NotificationAssetAssigned,
		NotificationApprovalRequest, NotificationApprovalGranted,
		NotificationSystem, NotificationAnnouncement:
		return true
	default:
		return false
	}
}

// NotificationPriority orders notifications by urgency.
type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityNormal NotificationPriority = "normal"
	PriorityHigh   NotificationPriority = "high"
	PriorityUrgent NotificationPriority = "urgent"
)

// Rank returns a comparable weight; unknown priorities rank as normal.
func (p NotificationPriority) Rank() int {
	switch p {
	case PriorityLow:
		return 0
	case PriorityHigh:
		return 2
	case PriorityUrgent:
		return 3
	default:
		return 1
	}
}

// IsValid checks if the priority is a known value.
func (p NotificationPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

// Well-known notification categories.
const (
	CategoryTasks    = "tasks"
	CategoryAssets   = "assets"
	CategoryFeedback = "feedback"
	CategoryMentions = "mentions"
	CategorySystem   = "system"
)

// Notification is a message addressed to a single staff member.
type Notification struct {
	ID          uuid.UUID            `json:"id"`
	UserID      uuid.UUID            `json:"user_id"`
	Type        NotificationType     `json:"type"`
	Category    string               `json:"category"`
	Priority    NotificationPriority `json:"priority"`
	Title       string               `json:"title"`
	Message     string               `json:"message"`
	RichContent json.RawMessage      `json:"rich_content,omitempty"`
	LinkURL     string               `json:"link_url,omitempty"`
	LinkText    string               `json:"link_text,omitempty"`
	ActorID     *uuid.UUID           `json:"actor_id,omitempty"`
	ActorName   string               `json:"actor_name,omitempty"`
	ActorAvatar string               `json:"actor_avatar,omitempty"`
	EntityType  string               `json:"entity_type,omitempty"`
	EntityID    *uuid.UUID           `json:"entity_id,omitempty"`
	Read        bool                 `json:"read"`
	ReadAt      *time.Time           `json:"read_at,omitempty"`
	Archived    bool                 `json:"archived"`
	ArchivedAt  *time.Time           `json:"archived_at,omitempty"`
	Clicked     bool                 `json:"clicked"`
	ClickedAt   *time.Time           `json:"clicked_at,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	ExpiresAt   *time.Time           `json:"expires_at,omitempty"`
}

// Clone returns a shallow copy that can be mutated without touching the original.
func (n *Notification) Clone() *Notification {
	if n == nil {
		return nil
	}
	c := *n

	return &c
}

// MarkRead flips the read flag and stamps read_at, keeping both fields in step.
func (n *Notification) MarkRead(at time.Time) {
	n.Read = true
	n.ReadAt = &at
}

// MarkUnread clears the read flag together with read_at.
func (n *Notification) MarkUnread() {
	n.Read = false
	n.ReadAt = nil
}

// IsExpired reports whether the notification expired before now.
func (n *Notification) IsExpired(now time.Time) bool {
	return n.ExpiresAt != nil && n.ExpiresAt.Before(now)
}
