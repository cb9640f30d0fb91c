package postgres

import (
	"context"
	"encoding/json"

	"staffportal/internal/domain/entity"
	domainerrors "staffportal/internal/domain/errors"
	"staffportal/internal/domain/repository"
	"staffportal/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const defaultAuditPageSize = 50

// auditRepository implements the repository.AuditRepository interface.
type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository is the constructor for auditRepository.
func NewAuditRepository(db *gorm.DB) repository.AuditRepository {
	return &auditRepository{
		db: db,
	}
}

// Create appends an audit entry.
func (repo *auditRepository) Create(ctx context.Context, entry *entity.AuditEntry) error {
	entryM := &model.AuditLogModel{
		ID:         entry.ID,
		ActorID:    entry.ActorID,
		Action:     entry.Action,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		OldValues:  toJSONColumn(entry.OldValues),
		NewValues:  toJSONColumn(entry.NewValues),
		CreatedAt:  entry.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to write audit entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// List retrieves entries newest first together with the total number of matches.
func (repo *auditRepository) List(ctx context.Context, filter entity.AuditFilter) ([]*entity.AuditEntry, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.AuditLogModel{}).Session(&gorm.Session{})

	if filter.EntityType != "" {
		query = query.Where("entity_type = ?", filter.EntityType)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count audit entries")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultAuditPageSize
	}

	var entryModels []*model.AuditLogModel
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(max(filter.Offset, 0)).
		Find(&entryModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list audit entries")
	}

	entries := make([]*entity.AuditEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, &entity.AuditEntry{
			ID:         entryM.ID,
			ActorID:    entryM.ActorID,
			Action:     entryM.Action,
			EntityType: entryM.EntityType,
			EntityID:   entryM.EntityID,
			OldValues:  fromJSONColumn(entryM.OldValues),
			NewValues:  fromJSONColumn(entryM.NewValues),
			CreatedAt:  entryM.CreatedAt,
		})
	}

	return entries, total, nil
}

func toJSONColumn(raw json.RawMessage) datatypes.JSON {
	if len(raw) == 0 {
		return nil
	}

	return datatypes.JSON(raw)
}

func fromJSONColumn(col datatypes.JSON) json.RawMessage {
	if len(col) == 0 {
		return nil
	}

	return json.RawMessage(col)
}
