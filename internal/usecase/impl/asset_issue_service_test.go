package impl

import (
	"context"
	"testing"
	"time"

	"staffportal/internal/domain/entity"
	domainerrors "staffportal/internal/domain/errors"
	"staffportal/internal/domain/repository"
	mockRepo "staffportal/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type assetIssueServiceFixtures struct {
	service     *assetIssueService
	txManager   *mockRepo.MockTransactionManager
	issueRepo   *mockRepo.MockAssetIssueRepository
	profileRepo *mockRepo.MockProfileRepository
	now         time.Time
}

func createTestAssetIssueService(t *testing.T) assetIssueServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	issueRepo := mockRepo.NewMockAssetIssueRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)

	svc := NewAssetIssueService(AssetIssueServiceParams{
		TxManager:   txManager,
		IssueRepo:   issueRepo,
		ProfileRepo: profileRepo,
		Logger:      newDiscardLogger(),
	}).(*assetIssueService)

	now := time.Date(2026, 2, 10, 14, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	return assetIssueServiceFixtures{
		service:     svc,
		txManager:   txManager,
		issueRepo:   issueRepo,
		profileRepo: profileRepo,
		now:         now,
	}
}

func TestAssetIssueService_List_DefaultsToUnresolvedAndAttachesProfiles(t *testing.T) {
	fx := createTestAssetIssueService(t)

	ctx := context.Background()
	reporter := &entity.Profile{ID: uuid.New(), FirstName: "Mia"}
	resolver := &entity.Profile{ID: uuid.New(), FirstName: "Noah"}
	issues := []*entity.AssetIssue{
		{ID: uuid.New(), CreatedBy: reporter.ID},
		{ID: uuid.New(), CreatedBy: reporter.ID, Resolved: true, ResolvedBy: &resolver.ID},
	}

	fx.issueRepo.EXPECT().
		List(ctx, entity.AssetIssueFilter{Status: entity.IssueStatusUnresolved, AssetType: "laptop"}).
		Return(issues, nil)
	fx.profileRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{reporter.ID, resolver.ID}).
		Return(map[uuid.UUID]*entity.Profile{reporter.ID: reporter, resolver.ID: resolver}, nil)

	got, err := fx.service.List(ctx, entity.AssetIssueFilter{AssetType: "laptop"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Same(t, reporter, got[0].Creator)
	assert.Nil(t, got[0].Resolver)
	assert.Same(t, resolver, got[1].Resolver)
}

func TestAssetIssueService_List_InvalidStatus(t *testing.T) {
	fx := createTestAssetIssueService(t)

	_, err := fx.service.List(context.Background(), entity.AssetIssueFilter{Status: "pending"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAssetIssueService_ToggleResolved(t *testing.T) {
	actorID := uuid.New()

	t.Run("resolves an open issue", func(t *testing.T) {
		fx := createTestAssetIssueService(t)
		ctx := context.Background()
		issue := &entity.AssetIssue{ID: uuid.New()}

		tx := expectTransaction(t, fx.txManager)
		tx.assetIssues.EXPECT().FindByID(ctx, issue.ID).Return(issue, nil)
		tx.assetIssues.EXPECT().SetResolved(ctx, issue.ID, &actorID, &fx.now).Return(nil)
		tx.audits.EXPECT().Create(ctx, mock.Anything).Return(nil)

		got, err := fx.service.ToggleResolved(ctx, actorID, issue.ID)
		require.NoError(t, err)
		assert.True(t, got.Resolved)
		assert.Equal(t, actorID, *got.ResolvedBy)
		assert.Equal(t, fx.now, *got.ResolvedAt)
	})

	t.Run("reopens a resolved issue", func(t *testing.T) {
		fx := createTestAssetIssueService(t)
		ctx := context.Background()
		resolvedAt := fx.now.Add(-time.Hour)
		issue := &entity.AssetIssue{ID: uuid.New(), Resolved: true, ResolvedBy: &actorID, ResolvedAt: &resolvedAt}

		tx := expectTransaction(t, fx.txManager)
		tx.assetIssues.EXPECT().FindByID(ctx, issue.ID).Return(issue, nil)
		tx.assetIssues.EXPECT().SetResolved(ctx, issue.ID, (*uuid.UUID)(nil), (*time.Time)(nil)).Return(nil)
		tx.audits.EXPECT().Create(ctx, mock.Anything).Return(nil)

		got, err := fx.service.ToggleResolved(ctx, actorID, issue.ID)
		require.NoError(t, err)
		assert.False(t, got.Resolved)
		assert.Nil(t, got.ResolvedBy)
		assert.Nil(t, got.ResolvedAt)
	})
}

func TestAssetIssueService_Delete_NotFound(t *testing.T) {
	fx := createTestAssetIssueService(t)

	ctx := context.Background()
	issueID := uuid.New()

	tx := expectTransaction(t, fx.txManager)
	tx.assetIssues.EXPECT().FindByID(ctx, issueID).Return(nil, repository.ErrAssetIssueNotFound)

	err := fx.service.Delete(ctx, uuid.New(), issueID)
	assert.True(t, errors.Is(err, domainerrors.ErrAssetIssueNotFound))
}

func TestAssetIssueService_Delete(t *testing.T) {
	fx := createTestAssetIssueService(t)

	ctx := context.Background()
	issue := &entity.AssetIssue{ID: uuid.New(), Description: "cracked screen"}

	tx := expectTransaction(t, fx.txManager)
	tx.assetIssues.EXPECT().FindByID(ctx, issue.ID).Return(issue, nil)
	tx.assetIssues.EXPECT().Delete(ctx, issue.ID).Return(nil)
	tx.audits.EXPECT().
		Create(ctx, mock.MatchedBy(func(e *entity.AuditEntry) bool {
			return e.Action == entity.AuditActionDelete && e.EntityType == entity.AuditEntityAssetIssue
		})).
		Return(nil)

	require.NoError(t, fx.service.Delete(ctx, uuid.New(), issue.ID))
}
