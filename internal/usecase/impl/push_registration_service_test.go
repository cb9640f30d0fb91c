package impl

import (
	"context"
	"testing"

	"staffportal/internal/domain/entity"
	domainerrors "staffportal/internal/domain/errors"
	"staffportal/internal/domain/repository"
	mockRepo "staffportal/internal/mocks/repository"
	"staffportal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPushRegistrationService(t *testing.T) (usecase.PushRegistrationUsecase, *mockRepo.MockPushRegistrationRepository) {
	pushRepo := mockRepo.NewMockPushRegistrationRepository(t)

	return NewPushRegistrationService(pushRepo), pushRepo
}

func TestPushRegistrationService_Register_NewClient(t *testing.T) {
	service, pushRepo := createTestPushRegistrationService(t)

	ctx := context.Background()
	userID := uuid.New()
	info := &usecase.PushClientInfo{FCMToken: "token-1", ClientID: "pixel-8", Platform: "android"}

	pushRepo.EXPECT().FindByClient(ctx, userID, "pixel-8").Return(nil, repository.ErrPushRegistrationNotFound)
	pushRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.PushRegistration")).Return(nil)

	registration, err := service.Register(ctx, userID, info)
	require.NoError(t, err)
	assert.Equal(t, userID, registration.UserID)
	assert.Equal(t, "token-1", registration.FCMToken)
	assert.True(t, registration.IsActive)
}

func TestPushRegistrationService_Register_RefreshesToken(t *testing.T) {
	service, pushRepo := createTestPushRegistrationService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.PushRegistration{ID: uuid.New(), UserID: userID, ClientID: "iphone", FCMToken: "old", IsActive: true}

	pushRepo.EXPECT().FindByClient(ctx, userID, "iphone").Return(existing, nil)
	pushRepo.EXPECT().UpdateToken(ctx, existing.ID, "new").Return(nil)

	registration, err := service.Register(ctx, userID, &usecase.PushClientInfo{FCMToken: "new", ClientID: "iphone", Platform: "ios"})
	require.NoError(t, err)
	assert.Equal(t, "new", registration.FCMToken)
}

func TestPushRegistrationService_Register_SameTokenIsNoop(t *testing.T) {
	service, pushRepo := createTestPushRegistrationService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.PushRegistration{ID: uuid.New(), UserID: userID, ClientID: "iphone", FCMToken: "same", IsActive: true}

	pushRepo.EXPECT().FindByClient(ctx, userID, "iphone").Return(existing, nil)

	registration, err := service.Register(ctx, userID, &usecase.PushClientInfo{FCMToken: "same", ClientID: "iphone", Platform: "ios"})
	require.NoError(t, err)
	assert.Same(t, existing, registration)
}

func TestPushRegistrationService_Unregister_NotFound(t *testing.T) {
	service, pushRepo := createTestPushRegistrationService(t)

	ctx := context.Background()
	userID := uuid.New()
	pushRepo.EXPECT().DeleteByToken(ctx, userID, "gone").Return(repository.ErrPushRegistrationNotFound)

	err := service.Unregister(ctx, userID, "gone")
	assert.True(t, errors.Is(err, domainerrors.ErrPushRegistrationNotFound))
}
