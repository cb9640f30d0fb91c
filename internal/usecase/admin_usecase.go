package usecase

import (
	"context"

	"staffportal/internal/domain/entity"

	"github.com/google/uuid"
)

// AuditPage is one page of audit entries.
type AuditPage struct {
	Entries []*entity.AuditEntry `json:"entries"`
	Total   int64                `json:"total"`
	Limit   int                  `json:"limit"`
	Offset  int                  `json:"offset"`
}

// AuditUsecase lists the audit trail.
type AuditUsecase interface {
	List(ctx context.Context, filter entity.AuditFilter) (*AuditPage, error)
}

// AssetIssueUsecase manages reported asset issues.
type AssetIssueUsecase interface {
	List(ctx context.Context, filter entity.AssetIssueFilter) ([]*entity.AssetIssue, error)

	// ToggleResolved flips the resolved flag, stamping or clearing resolved_by and resolved_at.
	ToggleResolved(ctx context.Context, actorID, issueID uuid.UUID) (*entity.AssetIssue, error)

	Delete(ctx context.Context, actorID, issueID uuid.UUID) error
}

// FeedbackList is the feedback visible to the caller with its status tally.
type FeedbackList struct {
	Items []*entity.Feedback   `json:"items"`
	Stats entity.FeedbackStats `json:"stats"`
}

// FeedbackUsecase manages staff feedback for admins and department leads.
type FeedbackUsecase interface {
	// List returns feedback newest-first. Leads only see feedback from their departments.
	List(ctx context.Context, caller entity.Identity) (*FeedbackList, error)

	UpdateStatus(ctx context.Context, caller entity.Identity, feedbackID uuid.UUID, status entity.FeedbackStatus) (*entity.Feedback, error)
}

// DocumentationList is the documentation visible to the caller after filtering.
// Stats, Categories and Departments describe the whole visible set, not just the filtered items.
type DocumentationList struct {
	Items       []*entity.Documentation   `json:"items"`
	Stats       entity.DocumentationStats `json:"stats"`
	Categories  []string                  `json:"categories"`
	Departments []string                  `json:"departments"`
}

// DocumentationUsecase is the read-only documentation view for admins and department leads.
type DocumentationUsecase interface {
	// List returns documentation newest-first with author profiles attached.
	// Leads only see documentation written by staff in their departments.
	List(ctx context.Context, caller entity.Identity, filter entity.DocumentationFilter) (*DocumentationList, error)

	Get(ctx context.Context, caller entity.Identity, docID uuid.UUID) (*entity.Documentation, error)
}
