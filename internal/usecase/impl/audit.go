package impl

import (
	"context"
	"encoding/json"
	"time"

	"staffportal/internal/domain/entity"
	"staffportal/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// auditRecord describes one log_audit call. Old and New are marshalled to JSON when non-nil.
type auditRecord struct {
	ActorID    uuid.UUID
	Action     string
	EntityType string
	EntityID   *uuid.UUID
	Old        any
	New        any
}

func writeAudit(ctx context.Context, repo repository.AuditRepository, rec auditRecord, at time.Time) error {
	entry := &entity.AuditEntry{
		ID:         uuid.New(),
		ActorID:    rec.ActorID,
		Action:     rec.Action,
		EntityType: rec.EntityType,
		EntityID:   rec.EntityID,
		CreatedAt:  at,
	}

	var err error
	if entry.OldValues, err = marshalAuditValues(rec.Old); err != nil {
		return err
	}
	if entry.NewValues, err = marshalAuditValues(rec.New); err != nil {
		return err
	}

	if err := repo.Create(ctx, entry); err != nil {
		return errors.Wrap(err, "failed to write audit entry")
	}

	return nil
}

func marshalAuditValues(v any) (json.RawMessage, error) {
	if v == nil {
		return nil, nil
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode audit values")
	}

	return raw, nil
}
