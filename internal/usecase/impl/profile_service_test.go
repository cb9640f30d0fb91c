package impl

import (
	"context"
	"testing"

	"staffportal/internal/domain/entity"
	domainerrors "staffportal/internal/domain/errors"
	"staffportal/internal/domain/repository"
	mockRepo "staffportal/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_ListStaff(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	service := NewProfileService(profileRepo)
	ctx := context.Background()

	staff := []*entity.Profile{{ID: uuid.New(), FirstName: "Ada"}, {ID: uuid.New(), FirstName: "Linus"}}
	profileRepo.EXPECT().List(ctx).Return(staff, nil)

	got, err := service.ListStaff(ctx)
	require.NoError(t, err)
	assert.Equal(t, staff, got)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	service := NewProfileService(profileRepo)
	ctx := context.Background()
	id := uuid.New()

	profileRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProfileNotFound)

	_, err := service.GetProfile(ctx, id)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}
