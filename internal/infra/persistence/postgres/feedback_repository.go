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

// feedbackRepository implements the repository.FeedbackRepository interface.
type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository is the constructor for feedbackRepository.
func NewFeedbackRepository(db *gorm.DB) repository.FeedbackRepository {
	return &feedbackRepository{
		db: db,
	}
}

// List retrieves feedback newest first. A nil userIDs slice means every submitter.
func (repo *feedbackRepository) List(ctx context.Context, userIDs []uuid.UUID) ([]*entity.Feedback, error) {
	if userIDs != nil && len(userIDs) == 0 {
		return []*entity.Feedback{}, nil
	}

	var feedbackModels []*model.FeedbackModel

	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if userIDs != nil {
		query = query.Where("user_id IN ?", userIDs)
	}

	if err := query.Find(&feedbackModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list feedback")
	}

	items := make([]*entity.Feedback, 0, len(feedbackModels))
	for _, feedbackM := range feedbackModels {
		items = append(items, toFeedbackDomain(feedbackM))
	}

	return items, nil
}

// FindByID retrieves a feedback item by its unique ID.
func (repo *feedbackRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Feedback, error) {
	var feedbackM model.FeedbackModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&feedbackM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFeedbackNotFound
		}

		return nil, errors.Wrap(err, "failed to find feedback by ID")
	}

	return toFeedbackDomain(&feedbackM), nil
}

// UpdateStatus sets the status of a feedback item.
func (repo *feedbackRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.FeedbackStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FeedbackModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update feedback status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFeedbackNotFound
	}

	return nil
}

func toFeedbackDomain(data *model.FeedbackModel) *entity.Feedback {
	if data == nil {
		return nil
	}

	return &entity.Feedback{
		ID:           data.ID,
		UserID:       data.UserID,
		FeedbackType: data.FeedbackType,
		Title:        data.Title,
		Description:  data.Description,
		Status:       entity.FeedbackStatus(data.Status),
		CreatedAt:    data.CreatedAt,
	}
}
