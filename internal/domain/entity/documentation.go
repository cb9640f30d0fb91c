package entity

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DocumentationStatus filters documentation by publication state.
type DocumentationStatus string

const (
	DocumentationAll       DocumentationStatus = "all"
	DocumentationPublished DocumentationStatus = "published"
	DocumentationDraft     DocumentationStatus = "draft"
)

// IsValid checks if the status filter is a known value. Empty means all.
func (s DocumentationStatus) IsValid() bool {
	switch s {
	case "", DocumentationAll, DocumentationPublished, DocumentationDraft:
		return true
	default:
		return false
	}
}

// Documentation is a how-to or process note written by a staff member.
type Documentation struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category,omitempty"`
	Tags      []string  `json:"tags"`
	IsDraft   bool      `json:"is_draft"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Author *Profile `json:"user,omitempty"`
}

// DocumentationFilter narrows the documentation list. Zero values match everything.
type DocumentationFilter struct {
	Category   string
	Status     DocumentationStatus
	Department string
	AuthorID   *uuid.UUID
	Query      string // matched against title, content and author name
}

// Match reports whether doc passes the filter. Department and name matching use doc.Author.
func (f DocumentationFilter) Match(doc *Documentation) bool {
	if f.Category != "" && f.Category != "all" && doc.Category != f.Category {
		return false
	}

	switch f.Status {
	case DocumentationPublished:
		if doc.IsDraft {
			return false
		}
	case DocumentationDraft:
		if !doc.IsDraft {
			return false
		}
	}

	if f.Department != "" && f.Department != "all" {
		if doc.Author == nil || doc.Author.Department != f.Department {
			return false
		}
	}

	if f.AuthorID != nil && doc.UserID != *f.AuthorID {
		return false
	}

	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}

	fields := []string{doc.Title, doc.Content}
	if doc.Author != nil {
		fields = append(fields, doc.Author.FirstName, doc.Author.LastName)
	}

	return slices.ContainsFunc(fields, func(s string) bool {
		return strings.Contains(strings.ToLower(s), q)
	})
}

// DocumentationStats summarises the visible documentation.
type DocumentationStats struct {
	Total     int `json:"total"`
	Published int `json:"published"`
	Drafts    int `json:"drafts"`
	ThisMonth int `json:"this_month"`
}

// TallyDocumentation counts docs by state; ThisMonth uses the calendar month of now.
func TallyDocumentation(items []*Documentation, now time.Time) DocumentationStats {
	stats := DocumentationStats{Total: len(items)}
	year, month, _ := now.Date()
	for _, d := range items {
		if d.IsDraft {
			stats.Drafts++
		} else {
			stats.Published++
		}

		y, m, _ := d.CreatedAt.In(now.Location()).Date()
		if y == year && m == month {
			stats.ThisMonth++
		}
	}

	return stats
}
