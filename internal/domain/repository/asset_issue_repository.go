package repository

import (
	"context"
	"time"

	"staffportal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrAssetIssueNotFound is returned when an asset issue is not found.
var ErrAssetIssueNotFound = errors.New("asset issue not found")

// AssetIssueRepository defines the interface for asset issue reports.
type AssetIssueRepository interface {
	// List retrieves issues matching the filter, newest first, with asset details loaded.
	List(ctx context.Context, filter entity.AssetIssueFilter) ([]*entity.AssetIssue, error)

	// FindByID retrieves an issue by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AssetIssue, error)

	// SetResolved stamps or clears the resolution of an issue.
	SetResolved(ctx context.Context, id uuid.UUID, resolvedBy *uuid.UUID, resolvedAt *time.Time) error

	// Delete removes an issue.
	Delete(ctx context.Context, id uuid.UUID) error
}
