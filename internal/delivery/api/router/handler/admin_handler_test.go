package handler

import (
	"net/http"
	"testing"

	"staffportal/internal/domain/entity"
	domainerrors "staffportal/internal/domain/errors"
	mockUsecase "staffportal/internal/mocks/usecase"
	"staffportal/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminHandlerFixtures struct {
	handler      *AdminHandler
	profileUC    *mockUsecase.MockProfileUsecase
	auditUC      *mockUsecase.MockAuditUsecase
	assetIssueUC *mockUsecase.MockAssetIssueUsecase
	feedbackUC   *mockUsecase.MockFeedbackUsecase
	docUC        *mockUsecase.MockDocumentationUsecase
}

func createTestAdminHandler(t *testing.T) adminHandlerFixtures {
	fx := adminHandlerFixtures{
		profileUC:    mockUsecase.NewMockProfileUsecase(t),
		auditUC:      mockUsecase.NewMockAuditUsecase(t),
		assetIssueUC: mockUsecase.NewMockAssetIssueUsecase(t),
		feedbackUC:   mockUsecase.NewMockFeedbackUsecase(t),
		docUC:        mockUsecase.NewMockDocumentationUsecase(t),
	}
	fx.handler = NewAdminHandler(AdminHandlerParams{
		ProfileUC:    fx.profileUC,
		AuditUC:      fx.auditUC,
		AssetIssueUC: fx.assetIssueUC,
		FeedbackUC:   fx.feedbackUC,
		DocUC:        fx.docUC,
	})

	return fx
}

func TestAdminHandler_ListAuditLogs(t *testing.T) {
	t.Run("query is passed through", func(t *testing.T) {
		fx := createTestAdminHandler(t)

		fx.auditUC.EXPECT().List(mock.Anything, entity.AuditFilter{
			EntityType: "device",
			Action:     "delete",
			Limit:      20,
			Offset:     40,
		}).Return(&usecase.AuditPage{Total: 41, Limit: 20, Offset: 40}, nil).Once()

		c, rec := newTestContext(http.MethodGet, "/api/v1/admin/audit-logs?entity_type=device&action=delete&limit=20&offset=40", "", adminIdentity())
		require.NoError(t, fx.handler.ListAuditLogs(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var got usecase.AuditPage
		decodeData(t, rec, &got)
		assert.Equal(t, int64(41), got.Total)
	})

	t.Run("limit must be numeric", func(t *testing.T) {
		fx := createTestAdminHandler(t)

		c, rec := newTestContext(http.MethodGet, "/api/v1/admin/audit-logs?limit=ten", "", adminIdentity())
		require.NoError(t, fx.handler.ListAuditLogs(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Details, "limit must be a number")
	})
}

func TestAdminHandler_ListStaff(t *testing.T) {
	fx := createTestAdminHandler(t)

	fx.profileUC.EXPECT().ListStaff(mock.Anything).Return([]*entity.Profile{
		{ID: uuid.New(), FirstName: "Fox", LastName: "Mulder"},
	}, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/api/v1/admin/staff", "", adminIdentity())
	require.NoError(t, fx.handler.ListStaff(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got []entity.Profile
	decodeData(t, rec, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "Mulder", got[0].LastName)
}

func TestAdminHandler_AssetIssues(t *testing.T) {
	issueID := uuid.New()

	t.Run("list", func(t *testing.T) {
		fx := createTestAdminHandler(t)

		fx.assetIssueUC.EXPECT().List(mock.Anything, entity.AssetIssueFilter{Status: "all", AssetType: "laptop", Search: "screen"}).
			Return([]*entity.AssetIssue{}, nil).Once()

		c, rec := newTestContext(http.MethodGet, "/api/v1/admin/asset-issues?status=all&asset_type=laptop&q=screen", "", adminIdentity())
		require.NoError(t, fx.handler.ListAssetIssues(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("toggle", func(t *testing.T) {
		fx := createTestAdminHandler(t)

		fx.assetIssueUC.EXPECT().ToggleResolved(mock.Anything, testUserID, issueID).
			Return(&entity.AssetIssue{ID: issueID, Resolved: true}, nil).Once()

		c, rec := newTestContext(http.MethodPost, "/api/v1/admin/asset-issues/"+issueID.String()+"/toggle", "", adminIdentity())
		require.NoError(t, fx.handler.ToggleAssetIssue(withParam(c, "id", issueID.String())))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("delete missing issue", func(t *testing.T) {
		fx := createTestAdminHandler(t)

		fx.assetIssueUC.EXPECT().Delete(mock.Anything, testUserID, issueID).Return(domainerrors.ErrAssetIssueNotFound).Once()

		c, rec := newTestContext(http.MethodDelete, "/api/v1/admin/asset-issues/"+issueID.String(), "", adminIdentity())
		require.NoError(t, fx.handler.DeleteAssetIssue(withParam(c, "id", issueID.String())))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAdminHandler_Feedback(t *testing.T) {
	leadIdentity := entity.Identity{UserID: testUserID, Roles: entity.Roles{entity.RoleLead}}
	feedbackID := uuid.New()

	t.Run("list is scoped by the caller", func(t *testing.T) {
		fx := createTestAdminHandler(t)

		fx.feedbackUC.EXPECT().List(mock.Anything, leadIdentity).
			Return(&usecase.FeedbackList{Items: []*entity.Feedback{}, Stats: entity.FeedbackStats{Total: 0}}, nil).Once()

		c, rec := newTestContext(http.MethodGet, "/api/v1/admin/feedback", "", &leadIdentity)
		require.NoError(t, fx.handler.ListFeedback(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("status update", func(t *testing.T) {
		fx := createTestAdminHandler(t)

		fx.feedbackUC.EXPECT().UpdateStatus(mock.Anything, leadIdentity, feedbackID, entity.FeedbackResolved).
			Return(&entity.Feedback{ID: feedbackID, Status: entity.FeedbackResolved}, nil).Once()

		c, rec := newTestContext(http.MethodPut, "/api/v1/admin/feedback/"+feedbackID.String()+"/status", `{"status":"resolved"}`, &leadIdentity)
		require.NoError(t, fx.handler.UpdateFeedbackStatus(withParam(c, "id", feedbackID.String())))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown status", func(t *testing.T) {
		fx := createTestAdminHandler(t)

		fx.feedbackUC.EXPECT().UpdateStatus(mock.Anything, leadIdentity, feedbackID, entity.FeedbackStatus("done")).
			Return(nil, domainerrors.ErrInvalidFeedbackStatus).Once()

		c, rec := newTestContext(http.MethodPut, "/api/v1/admin/feedback/"+feedbackID.String()+"/status", `{"status":"done"}`, &leadIdentity)
		require.NoError(t, fx.handler.UpdateFeedbackStatus(withParam(c, "id", feedbackID.String())))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domainerrors.ErrInvalidFeedbackStatus.ErrorCode(), decodeError(t, rec).Code)
	})
}

func TestAdminHandler_Documentation(t *testing.T) {
	leadIdentity := entity.Identity{UserID: testUserID, Roles: entity.Roles{entity.RoleLead}}
	authorID := uuid.New()

	t.Run("filters are passed through", func(t *testing.T) {
		fx := createTestAdminHandler(t)

		fx.docUC.EXPECT().List(mock.Anything, leadIdentity, entity.DocumentationFilter{
			Category:   "onboarding",
			Status:     entity.DocumentationPublished,
			Department: "support",
			AuthorID:   &authorID,
			Query:      "vpn",
		}).Return(&usecase.DocumentationList{
			Items: []*entity.Documentation{{ID: uuid.New(), UserID: authorID, Title: "VPN setup"}},
			Stats: entity.DocumentationStats{Total: 3, Published: 2, Drafts: 1},
		}, nil).Once()

		target := "/api/v1/admin/documentation?category=onboarding&status=published&department=support&q=vpn&user_id=" + authorID.String()
		c, rec := newTestContext(http.MethodGet, target, "", &leadIdentity)
		require.NoError(t, fx.handler.ListDocumentation(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var got usecase.DocumentationList
		decodeData(t, rec, &got)
		require.Len(t, got.Items, 1)
		assert.Equal(t, "VPN setup", got.Items[0].Title)
		assert.Equal(t, 2, got.Stats.Published)
	})

	t.Run("author filter must be a uuid", func(t *testing.T) {
		fx := createTestAdminHandler(t)

		c, rec := newTestContext(http.MethodGet, "/api/v1/admin/documentation?user_id=someone", "", &leadIdentity)
		require.NoError(t, fx.handler.ListDocumentation(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "user_id must be a UUID", decodeError(t, rec).Details)
	})

	t.Run("document outside the lead's departments", func(t *testing.T) {
		fx := createTestAdminHandler(t)
		docID := uuid.New()

		fx.docUC.EXPECT().Get(mock.Anything, leadIdentity, docID).Return(nil, domainerrors.ErrDocumentationNotFound).Once()

		c, rec := newTestContext(http.MethodGet, "/api/v1/admin/documentation/"+docID.String(), "", &leadIdentity)
		require.NoError(t, fx.handler.GetDocumentation(withParam(c, "id", docID.String())))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "DOCUMENTATION_NOT_FOUND", decodeError(t, rec).Code)
	})
}
