package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "staffportal/internal/delivery/context"
	"staffportal/internal/domain/entity"
	domainerrors "staffportal/internal/domain/errors"
	"staffportal/internal/domain/repository"
	"staffportal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type assetIssueService struct {
	txManager   repository.TransactionManager
	issueRepo   repository.AssetIssueRepository
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
	now         func() time.Time
}

// AssetIssueServiceParams holds dependencies for AssetIssueService, injected by Fx.
type AssetIssueServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	IssueRepo   repository.AssetIssueRepository
	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// NewAssetIssueService creates a new asset issue service instance
func NewAssetIssueService(params AssetIssueServiceParams) usecase.AssetIssueUsecase {
	return &assetIssueService{
		txManager:   params.TxManager,
		issueRepo:   params.IssueRepo,
		profileRepo: params.ProfileRepo,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (s *assetIssueService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// List returns asset issues with their reporter and resolver profiles
func (s *assetIssueService) List(ctx context.Context, filter entity.AssetIssueFilter) ([]*entity.AssetIssue, error) {
	switch filter.Status {
	case "":
		filter.Status = entity.IssueStatusUnresolved
	case entity.IssueStatusAll, entity.IssueStatusResolved, entity.IssueStatusUnresolved:
	default:
		return nil, domainerrors.ErrValidationFailed.WrapMessage("status must be all, resolved or unresolved")
	}

	issues, err := s.issueRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list asset issues")
	}

	if err := s.attachProfiles(ctx, issues); err != nil {
		return nil, err
	}

	return issues, nil
}

func (s *assetIssueService) attachProfiles(ctx context.Context, issues []*entity.AssetIssue) error {
	if len(issues) == 0 {
		return nil
	}

	seen := make(map[uuid.UUID]struct{})
	ids := make([]uuid.UUID, 0, len(issues))
	add := func(id uuid.UUID) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for _, issue := range issues {
		add(issue.CreatedBy)
		if issue.ResolvedBy != nil {
			add(*issue.ResolvedBy)
		}
	}

	profiles, err := s.profileRepo.FindByIDs(ctx, ids)
	if err != nil {
		return errors.Wrap(err, "failed to find issue profiles")
	}

	for _, issue := range issues {
		issue.Creator = profiles[issue.CreatedBy]
		if issue.ResolvedBy != nil {
			issue.Resolver = profiles[*issue.ResolvedBy]
		}
	}

	return nil
}

// ToggleResolved resolves an open issue or reopens a resolved one
func (s *assetIssueService) ToggleResolved(ctx context.Context, actorID, issueID uuid.UUID) (*entity.AssetIssue, error) {
	var issue *entity.AssetIssue
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		issueRepo := repoFactory.NewAssetIssueRepository()

		found, err := issueRepo.FindByID(ctx, issueID)
		if err != nil {
			return assetIssueError(err, "failed to find asset issue")
		}
		before := map[string]any{"resolved": found.Resolved}

		now := s.now()
		if found.Resolved {
			found.Resolved = false
			found.ResolvedBy = nil
			found.ResolvedAt = nil
		} else {
			found.Resolved = true
			found.ResolvedBy = &actorID
			found.ResolvedAt = &now
		}

		if err := issueRepo.SetResolved(ctx, issueID, found.ResolvedBy, found.ResolvedAt); err != nil {
			return assetIssueError(err, "failed to update asset issue")
		}
		issue = found

		return writeAudit(ctx, repoFactory.NewAuditRepository(), auditRecord{
			ActorID:    actorID,
			Action:     entity.AuditActionUpdate,
			EntityType: entity.AuditEntityAssetIssue,
			EntityID:   &issueID,
			Old:        before,
			New:        map[string]any{"resolved": found.Resolved},
		}, now)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute asset issue update transaction")
	}

	s.log(ctx).Info("Asset issue toggled", slog.String("issueID", issueID.String()), slog.Bool("resolved", issue.Resolved))

	return issue, nil
}

// Delete removes an asset issue
func (s *assetIssueService) Delete(ctx context.Context, actorID, issueID uuid.UUID) error {
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		issueRepo := repoFactory.NewAssetIssueRepository()

		issue, err := issueRepo.FindByID(ctx, issueID)
		if err != nil {
			return assetIssueError(err, "failed to find asset issue")
		}

		if err := issueRepo.Delete(ctx, issueID); err != nil {
			return assetIssueError(err, "failed to delete asset issue")
		}

		return writeAudit(ctx, repoFactory.NewAuditRepository(), auditRecord{
			ActorID:    actorID,
			Action:     entity.AuditActionDelete,
			EntityType: entity.AuditEntityAssetIssue,
			EntityID:   &issueID,
			Old:        issue,
		}, s.now())
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute asset issue deletion transaction")
	}

	return nil
}

func assetIssueError(err error, message string) error {
	if errors.Is(err, repository.ErrAssetIssueNotFound) {
		return domainerrors.ErrAssetIssueNotFound
	}

	return errors.Wrap(err, message)
}
