package repository

import (
	"context"

	"staffportal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDocumentationNotFound is returned when a document is not found.
var ErrDocumentationNotFound = errors.New("documentation not found")

// DocumentationRepository defines the interface for staff documentation.
type DocumentationRepository interface {
	// List retrieves documentation newest first. A nil authorIDs slice means every author.
	List(ctx context.Context, authorIDs []uuid.UUID) ([]*entity.Documentation, error)

	// FindByID retrieves a document by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Documentation, error)
}
