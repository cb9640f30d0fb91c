package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"staffportal/internal/domain/entity"
	domainerrors "staffportal/internal/domain/errors"
	"staffportal/internal/domain/repository"
	mockRepo "staffportal/internal/mocks/repository"
	mockSvc "staffportal/internal/mocks/service"
	mockUsecase "staffportal/internal/mocks/usecase"
	"staffportal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service        *deviceService
	txManager      *mockRepo.MockTransactionManager
	deviceRepo     *mockRepo.MockDeviceRepository
	assignmentRepo *mockRepo.MockAssignmentRepository
	profileRepo    *mockRepo.MockProfileRepository
	notifications  *mockUsecase.MockNotificationUsecase
	labels         *mockSvc.MockLabelService
	now            time.Time
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	assignmentRepo := mockRepo.NewMockAssignmentRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	notifications := mockUsecase.NewMockNotificationUsecase(t)
	labels := mockSvc.NewMockLabelService(t)

	svc := NewDeviceService(DeviceServiceParams{
		TxManager:      txManager,
		DeviceRepo:     deviceRepo,
		AssignmentRepo: assignmentRepo,
		ProfileRepo:    profileRepo,
		Notifications:  notifications,
		Labels:         labels,
		Logger:         newDiscardLogger(),
	}).(*deviceService)

	now := time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	return deviceServiceFixtures{
		service:        svc,
		txManager:      txManager,
		deviceRepo:     deviceRepo,
		assignmentRepo: assignmentRepo,
		profileRepo:    profileRepo,
		notifications:  notifications,
		labels:         labels,
		now:            now,
	}
}

// txRepositories are the repositories handed out inside a mocked transaction.
type txRepositories struct {
	devices       *mockRepo.MockDeviceRepository
	assignments   *mockRepo.MockAssignmentRepository
	audits        *mockRepo.MockAuditRepository
	notifications *mockRepo.MockNotificationRepository
	assetIssues   *mockRepo.MockAssetIssueRepository
	feedback      *mockRepo.MockFeedbackRepository
}

func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager) txRepositories {
	factory := mockRepo.NewMockRepositoryFactory(t)
	repos := txRepositories{
		devices:       mockRepo.NewMockDeviceRepository(t),
		assignments:   mockRepo.NewMockAssignmentRepository(t),
		audits:        mockRepo.NewMockAuditRepository(t),
		notifications: mockRepo.NewMockNotificationRepository(t),
		assetIssues:   mockRepo.NewMockAssetIssueRepository(t),
		feedback:      mockRepo.NewMockFeedbackRepository(t),
	}

	factory.EXPECT().NewDeviceRepository().Return(repos.devices).Maybe()
	factory.EXPECT().NewAssignmentRepository().Return(repos.assignments).Maybe()
	factory.EXPECT().NewAuditRepository().Return(repos.audits).Maybe()
	factory.EXPECT().NewNotificationRepository().Return(repos.notifications).Maybe()
	factory.EXPECT().NewAssetIssueRepository().Return(repos.assetIssues).Maybe()
	factory.EXPECT().NewFeedbackRepository().Return(repos.feedback).Maybe()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	return repos
}

func TestDeviceService_Assign_HandsOverFromPreviousHolder(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	actorID, previousHolder, newHolder := uuid.New(), uuid.New(), uuid.New()
	device := &entity.Device{ID: uuid.New(), Name: "MacBook Pro #12", Type: "laptop", Status: entity.DeviceAssigned}
	current := &entity.DeviceAssignment{ID: uuid.New(), DeviceID: device.ID, AssignedTo: previousHolder, IsCurrent: true}

	fx.profileRepo.EXPECT().FindByID(ctx, newHolder).Return(&entity.Profile{ID: newHolder}, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, actorID).Return(&entity.Profile{ID: actorID, FirstName: "Grace", LastName: "Hopper"}, nil)

	tx := expectTransaction(t, fx.txManager)
	tx.devices.EXPECT().FindByIDForUpdate(ctx, device.ID).Return(device, nil)
	tx.assignments.EXPECT().FindCurrent(ctx, device.ID).Return(current, nil)
	tx.assignments.EXPECT().Close(ctx, current.ID, fx.now, reassignedHandoverNote).Return(nil)

	var inserted *entity.DeviceAssignment
	tx.assignments.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.DeviceAssignment")).
		Run(func(_ context.Context, a *entity.DeviceAssignment) { inserted = a }).
		Return(nil)

	var audit *entity.AuditEntry
	tx.audits.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditEntry")).
		Run(func(_ context.Context, e *entity.AuditEntry) { audit = e }).
		Return(nil)

	var notification *entity.Notification
	tx.notifications.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, n *entity.Notification) { notification = n }).
		Return(nil)

	fx.notifications.EXPECT().Deliver(ctx, mock.AnythingOfType("[]*entity.Notification")).Return()

	assignment, err := fx.service.Assign(ctx, &usecase.AssignDeviceInput{
		DeviceID:   device.ID,
		AssignedTo: newHolder,
		ActorID:    actorID,
		Notes:      "for the onsite",
	})
	require.NoError(t, err)

	require.Same(t, inserted, assignment)
	assert.True(t, assignment.IsCurrent)
	assert.Equal(t, newHolder, assignment.AssignedTo)
	require.NotNil(t, assignment.AssignedFrom)
	assert.Equal(t, previousHolder, *assignment.AssignedFrom)
	assert.Equal(t, actorID, assignment.AssignedBy)
	assert.Equal(t, fx.now, assignment.AssignedAt)

	require.NotNil(t, audit)
	assert.Equal(t, entity.AuditActionAssign, audit.Action)
	assert.Equal(t, entity.AuditEntityDevice, audit.EntityType)
	var newValues map[string]string
	require.NoError(t, json.Unmarshal(audit.NewValues, &newValues))
	assert.Equal(t, newHolder.String(), newValues["assigned_to"])
	assert.Equal(t, "for the onsite", newValues["notes"])

	require.NotNil(t, notification)
	assert.Equal(t, newHolder, notification.UserID)
	assert.Equal(t, entity.NotificationAssetAssigned, notification.Type)
	assert.Equal(t, entity.CategoryAssets, notification.Category)
	assert.Equal(t, "Grace Hopper", notification.ActorName)
	assert.Equal(t, "MacBook Pro #12 (laptop) has been assigned to you.", notification.Message)
}

func TestDeviceService_Assign_FirstAssignmentUpdatesStatus(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	actorID, holder := uuid.New(), uuid.New()
	device := &entity.Device{ID: uuid.New(), Name: "Pixel 8", Status: entity.DeviceAvailable}

	fx.profileRepo.EXPECT().FindByID(ctx, holder).Return(&entity.Profile{ID: holder}, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, actorID).Return(nil, repository.ErrProfileNotFound)

	tx := expectTransaction(t, fx.txManager)
	tx.devices.EXPECT().FindByIDForUpdate(ctx, device.ID).Return(device, nil)
	tx.assignments.EXPECT().FindCurrent(ctx, device.ID).Return(nil, repository.ErrAssignmentNotFound)
	tx.assignments.EXPECT().Create(ctx, mock.Anything).Return(nil)
	tx.devices.EXPECT().UpdateStatus(ctx, device.ID, entity.DeviceAssigned).Return(nil)
	tx.audits.EXPECT().Create(ctx, mock.Anything).Return(nil)
	tx.notifications.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.notifications.EXPECT().Deliver(ctx, mock.Anything).Return()

	assignment, err := fx.service.Assign(ctx, &usecase.AssignDeviceInput{DeviceID: device.ID, AssignedTo: holder, ActorID: actorID})
	require.NoError(t, err)
	assert.Nil(t, assignment.AssignedFrom)
	assert.True(t, assignment.IsCurrent)
}

func TestDeviceService_Assign_SameHolderOpensNewRow(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	actorID, holder := uuid.New(), uuid.New()
	device := &entity.Device{ID: uuid.New(), Name: "iPad Air", Status: entity.DeviceAssigned}
	current := &entity.DeviceAssignment{
		ID:              uuid.New(),
		DeviceID:        device.ID,
		AssignedTo:      holder,
		AssignmentNotes: "initial issue",
		IsCurrent:       true,
	}

	fx.profileRepo.EXPECT().FindByID(ctx, holder).Return(&entity.Profile{ID: holder}, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, actorID).Return(&entity.Profile{ID: actorID}, nil)

	tx := expectTransaction(t, fx.txManager)
	tx.devices.EXPECT().FindByIDForUpdate(ctx, device.ID).Return(device, nil)
	tx.assignments.EXPECT().FindCurrent(ctx, device.ID).Return(current, nil)
	tx.assignments.EXPECT().Close(ctx, current.ID, fx.now, reassignedHandoverNote).Return(nil).Once()

	var inserted *entity.DeviceAssignment
	tx.assignments.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.DeviceAssignment")).
		Run(func(_ context.Context, a *entity.DeviceAssignment) { inserted = a }).
		Return(nil)
	tx.audits.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AuditEntry")).Return(nil).Once()
	tx.notifications.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Notification")).Return(nil)
	fx.notifications.EXPECT().Deliver(ctx, mock.AnythingOfType("[]*entity.Notification")).Return()

	assignment, err := fx.service.Assign(ctx, &usecase.AssignDeviceInput{
		DeviceID:   device.ID,
		AssignedTo: holder,
		ActorID:    actorID,
		Notes:      "handover after repair",
	})
	require.NoError(t, err)

	require.Same(t, inserted, assignment)
	assert.NotEqual(t, current.ID, assignment.ID)
	assert.True(t, assignment.IsCurrent)
	assert.Equal(t, "handover after repair", assignment.AssignmentNotes)
	require.NotNil(t, assignment.AssignedFrom)
	assert.Equal(t, holder, *assignment.AssignedFrom)
}

func TestDeviceService_Assign_RetiredDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	actorID, holder := uuid.New(), uuid.New()
	device := &entity.Device{ID: uuid.New(), Status: entity.DeviceRetired}

	fx.profileRepo.EXPECT().FindByID(ctx, holder).Return(&entity.Profile{ID: holder}, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, actorID).Return(&entity.Profile{ID: actorID}, nil)

	tx := expectTransaction(t, fx.txManager)
	tx.devices.EXPECT().FindByIDForUpdate(ctx, device.ID).Return(device, nil)

	_, err := fx.service.Assign(ctx, &usecase.AssignDeviceInput{DeviceID: device.ID, AssignedTo: holder, ActorID: actorID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceRetired))
}

func TestDeviceService_Assign_ConcurrentWriterLoses(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	actorID, holder := uuid.New(), uuid.New()
	device := &entity.Device{ID: uuid.New(), Status: entity.DeviceAvailable}

	fx.profileRepo.EXPECT().FindByID(ctx, holder).Return(&entity.Profile{ID: holder}, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, actorID).Return(&entity.Profile{ID: actorID}, nil)

	tx := expectTransaction(t, fx.txManager)
	tx.devices.EXPECT().FindByIDForUpdate(ctx, device.ID).Return(device, nil)
	tx.assignments.EXPECT().FindCurrent(ctx, device.ID).Return(nil, repository.ErrAssignmentNotFound)
	tx.assignments.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateCurrentAssignment)

	_, err := fx.service.Assign(ctx, &usecase.AssignDeviceInput{DeviceID: device.ID, AssignedTo: holder, ActorID: actorID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrConcurrentAssignment))
}

func TestDeviceService_Assign_DeviceNotFound(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	actorID, holder, deviceID := uuid.New(), uuid.New(), uuid.New()

	fx.profileRepo.EXPECT().FindByID(ctx, holder).Return(&entity.Profile{ID: holder}, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, actorID).Return(&entity.Profile{ID: actorID}, nil)

	tx := expectTransaction(t, fx.txManager)
	tx.devices.EXPECT().FindByIDForUpdate(ctx, deviceID).Return(nil, repository.ErrDeviceNotFound)

	_, err := fx.service.Assign(ctx, &usecase.AssignDeviceInput{DeviceID: deviceID, AssignedTo: holder, ActorID: actorID})
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
}

func TestDeviceService_Assign_UnknownAssignee(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	holder := uuid.New()

	fx.profileRepo.EXPECT().FindByID(ctx, holder).Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.Assign(ctx, &usecase.AssignDeviceInput{DeviceID: uuid.New(), AssignedTo: holder, ActorID: uuid.New()})
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestDeviceService_Assign_MissingFields(t *testing.T) {
	fx := createTestDeviceService(t)

	_, err := fx.service.Assign(context.Background(), &usecase.AssignDeviceInput{DeviceID: uuid.New()})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestDeviceService_DeleteDevice_RejectedWhileAssigned(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	actorID := uuid.New()
	device := &entity.Device{ID: uuid.New(), Status: entity.DeviceAssigned}

	tx := expectTransaction(t, fx.txManager)
	tx.devices.EXPECT().FindByIDForUpdate(ctx, device.ID).Return(device, nil)
	tx.assignments.EXPECT().CountCurrent(ctx, device.ID).Return(1, nil)

	err := fx.service.DeleteDevice(ctx, actorID, device.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceHasCurrentAssignment))
}

func TestDeviceService_DeleteDevice_OnlyHistoricalAssignments(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	actorID := uuid.New()
	device := &entity.Device{ID: uuid.New(), Name: "Old phone", Status: entity.DeviceAvailable}

	tx := expectTransaction(t, fx.txManager)
	tx.devices.EXPECT().FindByIDForUpdate(ctx, device.ID).Return(device, nil)
	tx.assignments.EXPECT().CountCurrent(ctx, device.ID).Return(0, nil)
	tx.devices.EXPECT().Delete(ctx, device.ID).Return(nil)

	var audit *entity.AuditEntry
	tx.audits.EXPECT().
		Create(ctx, mock.Anything).
		Run(func(_ context.Context, e *entity.AuditEntry) { audit = e }).
		Return(nil)

	require.NoError(t, fx.service.DeleteDevice(ctx, actorID, device.ID))
	require.NotNil(t, audit)
	assert.Equal(t, entity.AuditActionDelete, audit.Action)
	assert.Equal(t, actorID, audit.ActorID)
	assert.Contains(t, string(audit.OldValues), "Old phone")
	assert.Nil(t, audit.NewValues)
}

func TestDeviceService_DeleteDevice_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	tx := expectTransaction(t, fx.txManager)
	tx.devices.EXPECT().FindByIDForUpdate(ctx, deviceID).Return(nil, repository.ErrDeviceNotFound)

	err := fx.service.DeleteDevice(ctx, uuid.New(), deviceID)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
}

func TestDeviceService_GetHistory(t *testing.T) {
	holder, stranger := uuid.New(), uuid.New()
	deviceID := uuid.New()
	history := []*entity.DeviceAssignment{
		{ID: uuid.New(), DeviceID: deviceID, AssignedTo: uuid.New(), IsCurrent: true},
		{ID: uuid.New(), DeviceID: deviceID, AssignedTo: holder},
	}

	tests := []struct {
		name      string
		caller    entity.Identity
		wantError error
	}{
		{name: "admin", caller: entity.Identity{UserID: stranger, Roles: entity.Roles{entity.RoleAdmin}}},
		{name: "former holder", caller: entity.Identity{UserID: holder, Roles: entity.Roles{entity.RoleStaff}}},
		{name: "stranger", caller: entity.Identity{UserID: stranger, Roles: entity.Roles{entity.RoleStaff}}, wantError: domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)
			ctx := context.Background()

			fx.deviceRepo.EXPECT().FindByID(ctx, deviceID).Return(&entity.Device{ID: deviceID}, nil)
			fx.assignmentRepo.EXPECT().ListByDevice(ctx, deviceID).Return(history, nil)

			got, err := fx.service.GetHistory(ctx, tt.caller, deviceID)
			if tt.wantError != nil {
				assert.True(t, errors.Is(err, tt.wantError))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, history, got)
		})
	}
}

func TestDeviceService_CreateDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	actorID := uuid.New()

	tx := expectTransaction(t, fx.txManager)
	tx.devices.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Device")).Return(nil)
	tx.audits.EXPECT().Create(ctx, mock.Anything).Return(nil)

	device, err := fx.service.CreateDevice(ctx, actorID, &usecase.DeviceInput{Name: " ThinkPad ", Type: "laptop", SerialNumber: "SN-1"})
	require.NoError(t, err)
	assert.Equal(t, "ThinkPad", device.Name)
	assert.Equal(t, entity.DeviceAvailable, device.Status)
	assert.Equal(t, actorID, device.CreatedBy)
}

func TestDeviceService_CreateDevice_Rejections(t *testing.T) {
	fx := createTestDeviceService(t)

	tests := []struct {
		name  string
		input *usecase.DeviceInput
		want  error
	}{
		{"missing name", &usecase.DeviceInput{Type: "laptop"}, domainerrors.ErrValidationFailed},
		{"assigned status", &usecase.DeviceInput{Name: "x", Type: "laptop", Status: entity.DeviceAssigned}, domainerrors.ErrInvalidDeviceStatus},
		{"unknown status", &usecase.DeviceInput{Name: "x", Type: "laptop", Status: "lost"}, domainerrors.ErrInvalidDeviceStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.CreateDevice(context.Background(), uuid.New(), tt.input)
			assert.True(t, errors.Is(err, tt.want))
		})
	}
}

func TestDeviceService_CreateDevice_DuplicateSerial(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	tx := expectTransaction(t, fx.txManager)
	tx.devices.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateDevice)

	_, err := fx.service.CreateDevice(ctx, uuid.New(), &usecase.DeviceInput{Name: "x", Type: "phone", SerialNumber: "SN-1"})
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateSerialNumber))
}

func TestDeviceService_UpdateDevice_LeavingAssignedClosesAssignment(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	actorID := uuid.New()
	device := &entity.Device{ID: uuid.New(), Name: "iPad", Type: "tablet", Status: entity.DeviceAssigned}
	current := &entity.DeviceAssignment{ID: uuid.New(), DeviceID: device.ID, IsCurrent: true}

	tx := expectTransaction(t, fx.txManager)
	tx.devices.EXPECT().FindByIDForUpdate(ctx, device.ID).Return(device, nil)
	tx.assignments.EXPECT().FindCurrent(ctx, device.ID).Return(current, nil)
	tx.assignments.EXPECT().Close(ctx, current.ID, fx.now, "Device moved to maintenance").Return(nil)
	tx.devices.EXPECT().Update(ctx, device).Return(nil)
	tx.audits.EXPECT().Create(ctx, mock.Anything).Return(nil)

	updated, err := fx.service.UpdateDevice(ctx, actorID, device.ID, &usecase.DeviceInput{
		Name:   "iPad",
		Type:   "tablet",
		Status: entity.DeviceMaintenance,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DeviceMaintenance, updated.Status)
}

func TestDeviceService_UpdateDevice_CannotSetAssigned(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	device := &entity.Device{ID: uuid.New(), Status: entity.DeviceAvailable}

	tx := expectTransaction(t, fx.txManager)
	tx.devices.EXPECT().FindByIDForUpdate(ctx, device.ID).Return(device, nil)

	_, err := fx.service.UpdateDevice(ctx, uuid.New(), device.ID, &usecase.DeviceInput{
		Name:   "x",
		Type:   "phone",
		Status: entity.DeviceAssigned,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidDeviceStatus))
}

func TestDeviceService_ListDevices_AttachesHolder(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	free := &entity.Device{ID: uuid.New(), Status: entity.DeviceAvailable}
	taken := &entity.Device{ID: uuid.New(), Status: entity.DeviceAssigned}
	holder := &entity.Profile{ID: uuid.New(), FirstName: "Linus"}
	current := &entity.DeviceAssignment{ID: uuid.New(), DeviceID: taken.ID, AssignedTo: holder.ID, IsCurrent: true}
	filter := entity.DeviceFilter{Search: "mac"}

	fx.deviceRepo.EXPECT().List(ctx, filter).Return([]*entity.Device{free, taken}, nil)
	fx.assignmentRepo.EXPECT().
		FindCurrentByDevices(ctx, []uuid.UUID{free.ID, taken.ID}).
		Return(map[uuid.UUID]*entity.DeviceAssignment{taken.ID: current}, nil)
	fx.profileRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{holder.ID}).
		Return(map[uuid.UUID]*entity.Profile{holder.ID: holder}, nil)

	summaries, err := fx.service.ListDevices(ctx, filter)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Nil(t, summaries[0].CurrentAssignment)
	assert.Nil(t, summaries[0].Holder)
	assert.Same(t, current, summaries[1].CurrentAssignment)
	assert.Same(t, holder, summaries[1].Holder)
}

func TestDeviceService_ListDevices_InvalidStatus(t *testing.T) {
	fx := createTestDeviceService(t)

	_, err := fx.service.ListDevices(context.Background(), entity.DeviceFilter{Status: "lost"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidDeviceStatus))
}

func TestDeviceService_MyDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	assigner := &entity.Profile{ID: uuid.New(), FirstName: "Ada"}
	device := &entity.Device{ID: uuid.New(), Name: "Yubikey"}
	assignment := &entity.DeviceAssignment{ID: uuid.New(), DeviceID: device.ID, AssignedTo: userID, AssignedBy: assigner.ID, IsCurrent: true}

	fx.assignmentRepo.EXPECT().ListCurrentByUser(ctx, userID).Return([]*entity.DeviceAssignment{assignment}, nil)
	fx.deviceRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{device.ID}).Return([]*entity.Device{device}, nil)
	fx.profileRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{assigner.ID}).Return(map[uuid.UUID]*entity.Profile{assigner.ID: assigner}, nil)

	records, err := fx.service.MyDevices(ctx, userID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Same(t, device, records[0].Device)
	assert.Same(t, assigner, records[0].Assigner)
}

func TestDeviceService_MyDevices_None(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.assignmentRepo.EXPECT().ListCurrentByUser(ctx, userID).Return(nil, nil)

	records, err := fx.service.MyDevices(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDeviceService_DeviceLabel(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().FindByID(ctx, deviceID).Return(&entity.Device{ID: deviceID}, nil)
	fx.labels.EXPECT().GenerateDeviceLabel(deviceID).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.DeviceLabel(ctx, deviceID)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}
