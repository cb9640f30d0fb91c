package postgres

import (
	"context"
	"strings"
	"time"

	"staffportal/internal/domain/entity"
	"staffportal/internal/domain/repository"
	"staffportal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// assetIssueRepository implements the repository.AssetIssueRepository interface.
type assetIssueRepository struct {
	db *gorm.DB
}

// NewAssetIssueRepository is the constructor for assetIssueRepository.
func NewAssetIssueRepository(db *gorm.DB) repository.AssetIssueRepository {
	return &assetIssueRepository{
		db: db,
	}
}

// List retrieves issues matching the filter, newest first, with asset details loaded.
func (repo *assetIssueRepository) List(ctx context.Context, filter entity.AssetIssueFilter) ([]*entity.AssetIssue, error) {
	var issueModels []*model.AssetIssueModel

	query := repo.db.WithContext(ctx).
		Joins("Asset").
		Order("asset_issues.created_at DESC")

	switch filter.Status {
	case entity.IssueStatusAll:
	case entity.IssueStatusResolved:
		query = query.Where("asset_issues.resolved = ?", true)
	default:
		query = query.Where("asset_issues.resolved = ?", false)
	}

	if filter.AssetType != "" && filter.AssetType != entity.IssueStatusAll {
		query = query.Where(`"Asset".asset_type = ?`, filter.AssetType)
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		query = query.Where(`asset_issues.issue_description ILIKE ? OR "Asset".unique_code ILIKE ?`, pattern, pattern)
	}

	if err := query.Find(&issueModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list asset issues")
	}

	issues := make([]*entity.AssetIssue, 0, len(issueModels))
	for _, issueM := range issueModels {
		issues = append(issues, toAssetIssueDomain(issueM))
	}

	return issues, nil
}

// FindByID retrieves an issue by its unique ID.
func (repo *assetIssueRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AssetIssue, error) {
	var issueM model.AssetIssueModel

	if err := repo.db.WithContext(ctx).
		Joins("Asset").
		Where("asset_issues.id = ?", id).
		First(&issueM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAssetIssueNotFound
		}

		return nil, errors.Wrap(err, "failed to find asset issue by ID")
	}

	return toAssetIssueDomain(&issueM), nil
}

// SetResolved stamps or clears the resolution of an issue.
func (repo *assetIssueRepository) SetResolved(ctx context.Context, id uuid.UUID, resolvedBy *uuid.UUID, resolvedAt *time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AssetIssueModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"resolved":    resolvedBy != nil,
			"resolved_by": resolvedBy,
			"resolved_at": resolvedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update asset issue")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAssetIssueNotFound
	}

	return nil
}

// Delete removes an issue.
func (repo *assetIssueRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AssetIssueModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete asset issue")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAssetIssueNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAssetIssueDomain(data *model.AssetIssueModel) *entity.AssetIssue {
	if data == nil {
		return nil
	}

	issue := &entity.AssetIssue{
		ID:          data.ID,
		AssetID:     data.AssetID,
		Description: data.IssueDescription,
		Resolved:    data.Resolved,
		ResolvedBy:  data.ResolvedBy,
		ResolvedAt:  data.ResolvedAt,
		CreatedBy:   data.CreatedBy,
		CreatedAt:   data.CreatedAt,
	}

	if data.Asset != nil {
		issue.Asset = &entity.Asset{
			ID:         data.Asset.ID,
			UniqueCode: data.Asset.UniqueCode,
			AssetType:  data.Asset.AssetType,
			Status:     data.Asset.Status,
		}
	}

	return issue
}
