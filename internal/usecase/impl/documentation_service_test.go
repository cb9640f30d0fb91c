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
	"github.com/stretchr/testify/require"
)

type documentationServiceFixtures struct {
	service     *documentationService
	docRepo     *mockRepo.MockDocumentationRepository
	profileRepo *mockRepo.MockProfileRepository
}

var docsNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func createTestDocumentationService(t *testing.T) documentationServiceFixtures {
	docRepo := mockRepo.NewMockDocumentationRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)

	svc := NewDocumentationService(DocumentationServiceParams{
		DocRepo:     docRepo,
		ProfileRepo: profileRepo,
	}).(*documentationService)
	svc.now = func() time.Time { return docsNow }

	return documentationServiceFixtures{
		service:     svc,
		docRepo:     docRepo,
		profileRepo: profileRepo,
	}
}

func adminCaller() entity.Identity {
	return entity.Identity{UserID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}
}

func TestDocumentationService_List_AdminFiltersAndTallies(t *testing.T) {
	fx := createTestDocumentationService(t)

	ctx := context.Background()
	dana := &entity.Profile{ID: uuid.New(), FirstName: "Dana", LastName: "Scully", Department: "medical"}
	fox := &entity.Profile{ID: uuid.New(), FirstName: "Fox", LastName: "Mulder", Department: "field"}
	docs := []*entity.Documentation{
		{ID: uuid.New(), UserID: dana.ID, Title: "Autopsy checklist", Content: "steps", Category: "process", CreatedAt: docsNow.Add(-time.Hour)},
		{ID: uuid.New(), UserID: fox.ID, Title: "Field kit", Content: "flashlight", Category: "equipment", IsDraft: true, CreatedAt: docsNow.AddDate(0, 0, -3)},
		{ID: uuid.New(), UserID: dana.ID, Title: "Lab safety", Content: "gloves", Category: "process", CreatedAt: docsNow.AddDate(0, -2, 0)},
	}

	fx.docRepo.EXPECT().List(ctx, []uuid.UUID(nil)).Return(docs, nil)
	fx.profileRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{dana.ID, fox.ID}).
		Return(map[uuid.UUID]*entity.Profile{dana.ID: dana, fox.ID: fox}, nil)

	list, err := fx.service.List(ctx, adminCaller(), entity.DocumentationFilter{Query: "scully", Status: entity.DocumentationPublished})
	require.NoError(t, err)

	require.Len(t, list.Items, 2)
	assert.Equal(t, "Autopsy checklist", list.Items[0].Title)
	assert.Same(t, dana, list.Items[0].Author)
	assert.Equal(t, entity.DocumentationStats{Total: 3, Published: 2, Drafts: 1, ThisMonth: 2}, list.Stats)
	assert.Equal(t, []string{"process", "equipment"}, list.Categories)
	assert.Equal(t, []string{"medical", "field"}, list.Departments)
}

func TestDocumentationService_List_LeadSeesOwnDepartments(t *testing.T) {
	fx := createTestDocumentationService(t)

	ctx := context.Background()
	lead := &entity.Profile{ID: uuid.New(), Role: entity.RoleLead, LeadDepartments: []string{"support"}}
	agent := &entity.Profile{ID: uuid.New(), Department: "support"}
	docs := []*entity.Documentation{{ID: uuid.New(), UserID: agent.ID, Title: "Escalations", CreatedAt: docsNow}}

	fx.profileRepo.EXPECT().FindByID(ctx, lead.ID).Return(lead, nil)
	fx.profileRepo.EXPECT().ListByDepartments(ctx, []string{"support"}).Return([]*entity.Profile{agent}, nil)
	fx.docRepo.EXPECT().List(ctx, []uuid.UUID{agent.ID}).Return(docs, nil)
	fx.profileRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{agent.ID}).Return(map[uuid.UUID]*entity.Profile{agent.ID: agent}, nil)

	list, err := fx.service.List(ctx, entity.Identity{UserID: lead.ID, Roles: entity.Roles{entity.RoleLead}}, entity.DocumentationFilter{})
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
	assert.Equal(t, 1, list.Stats.ThisMonth)
}

func TestDocumentationService_List_LeadWithoutDepartmentsSeesNothing(t *testing.T) {
	fx := createTestDocumentationService(t)

	ctx := context.Background()
	lead := &entity.Profile{ID: uuid.New(), Role: entity.RoleLead}
	fx.profileRepo.EXPECT().FindByID(ctx, lead.ID).Return(lead, nil)

	list, err := fx.service.List(ctx, entity.Identity{UserID: lead.ID, Roles: entity.Roles{entity.RoleLead}}, entity.DocumentationFilter{})
	require.NoError(t, err)
	assert.Empty(t, list.Items)
	assert.Zero(t, list.Stats.Total)
}

func TestDocumentationService_List_Rejections(t *testing.T) {
	fx := createTestDocumentationService(t)

	_, err := fx.service.List(context.Background(), adminCaller(), entity.DocumentationFilter{Status: "archived"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidDocumentationFilter))

	_, err = fx.service.List(context.Background(), entity.Identity{UserID: uuid.New(), Roles: entity.Roles{entity.RoleStaff}}, entity.DocumentationFilter{})
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestDocumentationService_Get(t *testing.T) {
	ctx := context.Background()
	lead := &entity.Profile{ID: uuid.New(), Role: entity.RoleLead, LeadDepartments: []string{"support"}}
	agent := &entity.Profile{ID: uuid.New(), Department: "support"}
	leadCaller := entity.Identity{UserID: lead.ID, Roles: entity.Roles{entity.RoleLead}}

	t.Run("visible author", func(t *testing.T) {
		fx := createTestDocumentationService(t)
		doc := &entity.Documentation{ID: uuid.New(), UserID: agent.ID, Title: "Refunds"}

		fx.profileRepo.EXPECT().FindByID(ctx, lead.ID).Return(lead, nil)
		fx.profileRepo.EXPECT().ListByDepartments(ctx, []string{"support"}).Return([]*entity.Profile{agent}, nil)
		fx.docRepo.EXPECT().FindByID(ctx, doc.ID).Return(doc, nil)
		fx.profileRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{agent.ID}).Return(map[uuid.UUID]*entity.Profile{agent.ID: agent}, nil)

		got, err := fx.service.Get(ctx, leadCaller, doc.ID)
		require.NoError(t, err)
		assert.Same(t, agent, got.Author)
	})

	t.Run("author outside the lead's departments", func(t *testing.T) {
		fx := createTestDocumentationService(t)
		doc := &entity.Documentation{ID: uuid.New(), UserID: uuid.New()}

		fx.profileRepo.EXPECT().FindByID(ctx, lead.ID).Return(lead, nil)
		fx.profileRepo.EXPECT().ListByDepartments(ctx, []string{"support"}).Return([]*entity.Profile{agent}, nil)
		fx.docRepo.EXPECT().FindByID(ctx, doc.ID).Return(doc, nil)

		_, err := fx.service.Get(ctx, leadCaller, doc.ID)
		assert.True(t, errors.Is(err, domainerrors.ErrDocumentationNotFound))
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestDocumentationService(t)
		docID := uuid.New()

		fx.docRepo.EXPECT().FindByID(ctx, docID).Return(nil, repository.ErrDocumentationNotFound)

		_, err := fx.service.Get(ctx, adminCaller(), docID)
		assert.True(t, errors.Is(err, domainerrors.ErrDocumentationNotFound))
	})
}
