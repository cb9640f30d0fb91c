package repository

import (
	"context"

	"staffportal/internal/domain/entity"
)

// AuditRepository defines the interface for the append-only audit log.
type AuditRepository interface {
	// Create appends an audit entry.
	Create(ctx context.Context, entry *entity.AuditEntry) error

	// List retrieves entries newest first together with the total number of matches.
	List(ctx context.Context, filter entity.AuditFilter) ([]*entity.AuditEntry, int64, error)
}
