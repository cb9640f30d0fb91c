// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PushRegistration is a staff member's mobile device registered for push notifications.
type PushRegistration struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the registration.
	UserID    uuid.UUID `json:"user_id"`    // The ID of the user who owns this handset.
	FCMToken  string    `json:"fcm_token"`  // Firebase Cloud Messaging token for push notifications.
	ClientID  string    `json:"client_id"`  // Unique handset identifier from the client.
	Platform  string    `json:"platform"`   // Handset platform (ios, android, web).
	IsActive  bool      `json:"is_active"`  // Indicates if this registration still receives pushes.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this registration was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}
