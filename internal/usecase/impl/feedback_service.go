package impl

import (
	"context"
	"slices"
	"time"

	"staffportal/internal/domain/entity"
	domainerrors "staffportal/internal/domain/errors"
	"staffportal/internal/domain/repository"
	"staffportal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type feedbackService struct {
	txManager    repository.TransactionManager
	feedbackRepo repository.FeedbackRepository
	profileRepo  repository.ProfileRepository
	now          func() time.Time
}

// FeedbackServiceParams holds dependencies for FeedbackService, injected by Fx.
type FeedbackServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	FeedbackRepo repository.FeedbackRepository
	ProfileRepo  repository.ProfileRepository
}

// NewFeedbackService creates a new feedback service instance
func NewFeedbackService(params FeedbackServiceParams) usecase.FeedbackUsecase {
	return &feedbackService{
		txManager:    params.TxManager,
		feedbackRepo: params.FeedbackRepo,
		profileRepo:  params.ProfileRepo,
		now:          time.Now,
	}
}

// List returns the feedback visible to the caller together with per-status counts
func (s *feedbackService) List(ctx context.Context, caller entity.Identity) (*usecase.FeedbackList, error) {
	submitters, err := visibleStaff(ctx, s.profileRepo, caller)
	if err != nil {
		return nil, err
	}

	var items []*entity.Feedback
	if submitters == nil || len(submitters) > 0 {
		items, err = s.feedbackRepo.List(ctx, submitters)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list feedback")
		}
	}
	if items == nil {
		items = []*entity.Feedback{}
	}

	if err := s.attachSubmitters(ctx, items); err != nil {
		return nil, err
	}

	return &usecase.FeedbackList{Items: items, Stats: entity.Tally(items)}, nil
}

func (s *feedbackService) attachSubmitters(ctx context.Context, items []*entity.Feedback) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(items))
	for _, f := range items {
		ids = append(ids, f.UserID)
	}

	profiles, err := profilesFor(ctx, s.profileRepo, ids)
	if err != nil {
		return errors.Wrap(err, "failed to find feedback submitters")
	}
	for _, f := range items {
		f.Submitter = profiles[f.UserID]
	}

	return nil
}

// UpdateStatus moves feedback to a new status. Leads may only update feedback they can see.
func (s *feedbackService) UpdateStatus(ctx context.Context, caller entity.Identity, feedbackID uuid.UUID, status entity.FeedbackStatus) (*entity.Feedback, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidFeedbackStatus
	}

	submitters, err := visibleStaff(ctx, s.profileRepo, caller)
	if err != nil {
		return nil, err
	}

	var updated *entity.Feedback
	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		feedbackRepo := repoFactory.NewFeedbackRepository()

		feedback, err := feedbackRepo.FindByID(ctx, feedbackID)
		if err != nil {
			return feedbackError(err, "failed to find feedback")
		}
		if submitters != nil && !slices.Contains(submitters, feedback.UserID) {
			return domainerrors.ErrFeedbackNotFound
		}

		previous := feedback.Status
		if err := feedbackRepo.UpdateStatus(ctx, feedbackID, status); err != nil {
			return feedbackError(err, "failed to update feedback status")
		}
		feedback.Status = status
		updated = feedback

		return writeAudit(ctx, repoFactory.NewAuditRepository(), auditRecord{
			ActorID:    caller.UserID,
			Action:     entity.AuditActionUpdate,
			EntityType: entity.AuditEntityFeedback,
			EntityID:   &feedbackID,
			Old:        map[string]any{"status": previous},
			New:        map[string]any{"status": status},
		}, s.now())
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute feedback update transaction")
	}

	return updated, nil
}

func feedbackError(err error, message string) error {
	if errors.Is(err, repository.ErrFeedbackNotFound) {
		return domainerrors.ErrFeedbackNotFound
	}

	return errors.Wrap(err, message)
}
