package entity

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackStatus tracks the triage state of a feedback item.
type FeedbackStatus string

const (
	FeedbackOpen       FeedbackStatus = "open"
	FeedbackInProgress FeedbackStatus = "in_progress"
	FeedbackResolved   FeedbackStatus = "resolved"
	FeedbackClosed     FeedbackStatus = "closed"
)

// IsValid checks if the status is a known value.
func (s FeedbackStatus) IsValid() bool {
	switch s {
	case FeedbackOpen, FeedbackInProgress, FeedbackResolved, FeedbackClosed:
		return true
	default:
		return false
	}
}

// Feedback is a message submitted by a staff member.
type Feedback struct {
	ID           uuid.UUID      `json:"id"`
	UserID       uuid.UUID      `json:"user_id"`
	FeedbackType string         `json:"feedback_type"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Status       FeedbackStatus `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`

	Submitter *Profile `json:"profiles,omitempty"`
}

// FeedbackStats counts feedback per status.
type FeedbackStats struct {
	Total      int `json:"total"`
	Open       int `json:"open"`
	InProgress int `json:"in_progress"`
	Resolved   int `json:"resolved"`
	Closed     int `json:"closed"`
}

// Tally counts the given feedback by status.
func Tally(items []*Feedback) FeedbackStats {
	stats := FeedbackStats{Total: len(items)}
	for _, f := range items {
		switch f.Status {
		case FeedbackOpen:
			stats.Open++
		case FeedbackInProgress:
			stats.InProgress++
		case FeedbackResolved:
			stats.Resolved++
		case FeedbackClosed:
			stats.Closed++
		}
	}

	return stats
}
