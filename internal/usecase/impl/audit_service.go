package impl

import (
	"context"

	"staffportal/internal/domain/entity"
	"staffportal/internal/domain/repository"
	"staffportal/internal/usecase"

	"github.com/pkg/errors"
)

const (
	defaultAuditPageSize = 50
	maxAuditPageSize     = 200
)

type auditService struct {
	auditRepo repository.AuditRepository
}

// NewAuditService creates a new audit service instance
func NewAuditService(auditRepo repository.AuditRepository) usecase.AuditUsecase {
	return &auditService{auditRepo: auditRepo}
}

// List returns one page of the audit trail, newest first
func (s *auditService) List(ctx context.Context, filter entity.AuditFilter) (*usecase.AuditPage, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultAuditPageSize
	}
	if filter.Limit > maxAuditPageSize {
		filter.Limit = maxAuditPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	entries, total, err := s.auditRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list audit entries")
	}

	return &usecase.AuditPage{
		Entries: entries,
		Total:   total,
		Limit:   filter.Limit,
		Offset:  filter.Offset,
	}, nil
}
