package postgres

import (
	"context"

	"staffportal/internal/domain/entity"
	"staffportal/internal/domain/repository"
	"staffportal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// documentationRepository implements the repository.DocumentationRepository interface.
type documentationRepository struct {
	db *gorm.DB
}

// NewDocumentationRepository is the constructor for documentationRepository.
func NewDocumentationRepository(db *gorm.DB) repository.DocumentationRepository {
	return &documentationRepository{
		db: db,
	}
}

// List retrieves documentation newest first. A nil authorIDs slice means every author.
func (repo *documentationRepository) List(ctx context.Context, authorIDs []uuid.UUID) ([]*entity.Documentation, error) {
	if authorIDs != nil && len(authorIDs) == 0 {
		return []*entity.Documentation{}, nil
	}

	var docModels []*model.DocumentationModel

	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if authorIDs != nil {
		query = query.Where("user_id IN ?", authorIDs)
	}

	if err := query.Find(&docModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list documentation")
	}

	docs := make([]*entity.Documentation, 0, len(docModels))
	for _, docM := range docModels {
		docs = append(docs, toDocumentationDomain(docM))
	}

	return docs, nil
}

// FindByID retrieves a document by its unique ID.
func (repo *documentationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Documentation, error) {
	var docM model.DocumentationModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&docM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDocumentationNotFound
		}

		return nil, errors.Wrap(err, "failed to find documentation by ID")
	}

	return toDocumentationDomain(&docM), nil
}

func toDocumentationDomain(data *model.DocumentationModel) *entity.Documentation {
	if data == nil {
		return nil
	}

	doc := &entity.Documentation{
		ID:        data.ID,
		UserID:    data.UserID,
		Title:     data.Title,
		Content:   data.Content,
		Tags:      []string(data.Tags),
		IsDraft:   data.IsDraft,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.Category != nil {
		doc.Category = *data.Category
	}
	if doc.Tags == nil {
		doc.Tags = []string{}
	}

	return doc
}
