package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "staffportal/internal/delivery/context"
	"staffportal/internal/domain/entity"
	domainerrors "staffportal/internal/domain/errors"
	"staffportal/internal/domain/repository"
	"staffportal/internal/domain/service"
	"staffportal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	reassignedHandoverNote = "Reassigned to another user"
	myDevicesLink          = "/devices"
)

type deviceService struct {
	txManager      repository.TransactionManager
	deviceRepo     repository.DeviceRepository
	assignmentRepo repository.AssignmentRepository
	profileRepo    repository.ProfileRepository
	notifications  usecase.NotificationUsecase
	labels         service.LabelService
	logger         *slog.Logger
	now            func() time.Time
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	DeviceRepo     repository.DeviceRepository
	AssignmentRepo repository.AssignmentRepository
	ProfileRepo    repository.ProfileRepository
	Notifications  usecase.NotificationUsecase
	Labels         service.LabelService
	Logger         *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		txManager:      params.TxManager,
		deviceRepo:     params.DeviceRepo,
		assignmentRepo: params.AssignmentRepo,
		profileRepo:    params.ProfileRepo,
		notifications:  params.Notifications,
		labels:         params.Labels,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (s *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Assign hands a device over to a staff member.
//
// The device row is locked for the duration of the transaction, the previous current
// assignment is closed before the new one is inserted, and the audit entry and the
// recipient's notification are written in the same transaction. The notification is
// delivered to the realtime feed only after commit.
func (s *deviceService) Assign(ctx context.Context, input *usecase.AssignDeviceInput) (*entity.DeviceAssignment, error) {
	if input == nil || input.DeviceID == uuid.Nil || input.AssignedTo == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("device and assignee are required")
	}

	if _, err := s.profileRepo.FindByID(ctx, input.AssignedTo); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find assignee")
	}

	actor, err := s.profileRepo.FindByID(ctx, input.ActorID)
	if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to find actor")
	}

	var (
		assignment *entity.DeviceAssignment
		created    []*entity.Notification
	)
	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceRepo := repoFactory.NewDeviceRepository()
		assignmentRepo := repoFactory.NewAssignmentRepository()

		device, err := deviceRepo.FindByIDForUpdate(ctx, input.DeviceID)
		if err != nil {
			return deviceError(err, "failed to lock device")
		}
		if device.Status == entity.DeviceRetired {
			return domainerrors.ErrDeviceRetired
		}

		current, err := assignmentRepo.FindCurrent(ctx, device.ID)
		if err != nil && !errors.Is(err, repository.ErrAssignmentNotFound) {
			return errors.Wrap(err, "failed to find current assignment")
		}
		now := s.now()
		var previousHolder *uuid.UUID
		if current != nil {
			if err := assignmentRepo.Close(ctx, current.ID, now, reassignedHandoverNote); err != nil {
				return errors.Wrap(err, "failed to close current assignment")
			}
			holder := current.AssignedTo
			previousHolder = &holder
		}

		assignment = &entity.DeviceAssignment{
			ID:              uuid.New(),
			DeviceID:        device.ID,
			AssignedTo:      input.AssignedTo,
			AssignedFrom:    previousHolder,
			AssignedBy:      input.ActorID,
			AssignmentNotes: input.Notes,
			IsCurrent:       true,
			AssignedAt:      now,
		}
		if err := assignmentRepo.Create(ctx, assignment); err != nil {
			if errors.Is(err, repository.ErrDuplicateCurrentAssignment) {
				return domainerrors.ErrConcurrentAssignment
			}

			return errors.Wrap(err, "failed to create assignment")
		}

		if device.Status != entity.DeviceAssigned {
			if err := deviceRepo.UpdateStatus(ctx, device.ID, entity.DeviceAssigned); err != nil {
				return deviceError(err, "failed to update device status")
			}
		}

		if err := writeAudit(ctx, repoFactory.NewAuditRepository(), auditRecord{
			ActorID:    input.ActorID,
			Action:     entity.AuditActionAssign,
			EntityType: entity.AuditEntityDevice,
			EntityID:   &device.ID,
			Old:        assignedToValues(previousHolder),
			New: map[string]any{
				"assigned_to": input.AssignedTo,
				"notes":       input.Notes,
			},
		}, now); err != nil {
			return err
		}

		created = usecase.BuildNotifications(assignedNotification(device, input.AssignedTo, actor), now)
		notificationRepo := repoFactory.NewNotificationRepository()
		for _, n := range created {
			if err := notificationRepo.Create(ctx, n); err != nil {
				return errors.Wrap(err, "failed to create assignment notification")
			}
		}

		return nil
	})
	if err != nil {
		s.log(ctx).Error("Failed to assign device",
			slog.String("deviceID", input.DeviceID.String()),
			slog.String("assignedTo", input.AssignedTo.String()),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to execute device assignment transaction")
	}

	if len(created) > 0 {
		s.notifications.Deliver(ctx, created)
	}

	s.log(ctx).Info("Device assigned",
		slog.String("deviceID", input.DeviceID.String()),
		slog.String("assignmentID", assignment.ID.String()),
	)

	return assignment, nil
}

func assignedToValues(previousHolder *uuid.UUID) any {
	if previousHolder == nil {
		return nil
	}

	return map[string]any{"assigned_to": *previousHolder}
}

func assignedNotification(device *entity.Device, assignee uuid.UUID, actor *entity.Profile) *usecase.CreateNotificationInput {
	deviceID := device.ID
	name := device.Name
	if device.Type != "" {
		name = fmt.Sprintf("%s (%s)", device.Name, device.Type)
	}

	return &usecase.CreateNotificationInput{
		Recipients: []uuid.UUID{assignee},
		Type:       entity.NotificationAssetAssigned,
		Category:   entity.CategoryAssets,
		Priority:   entity.PriorityNormal,
		Title:      "Device assigned to you",
		Message:    fmt.Sprintf("%s has been assigned to you.", name),
		LinkURL:    myDevicesLink,
		LinkText:   "View my devices",
		EntityType: entity.AuditEntityDevice,
		EntityID:   &deviceID,
		Actor:      actor,
	}
}

// GetHistory returns the device's assignments newest-first.
// Admins can read any device; other staff only devices they have held.
func (s *deviceService) GetHistory(ctx context.Context, caller entity.Identity, deviceID uuid.UUID) ([]*entity.DeviceAssignment, error) {
	if _, err := s.deviceRepo.FindByID(ctx, deviceID); err != nil {
		return nil, deviceError(err, "failed to find device")
	}

	history, err := s.assignmentRepo.ListByDevice(ctx, deviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list device assignments")
	}

	if caller.Roles.IsAdmin() {
		return history, nil
	}

	for _, a := range history {
		if a.AssignedTo == caller.UserID {
			return history, nil
		}
	}

	return nil, domainerrors.ErrForbidden.WrapMessage("device history is only visible to its holders")
}

// DeleteDevice deletes a device that has no current assignment.
func (s *deviceService) DeleteDevice(ctx context.Context, actorID, deviceID uuid.UUID) error {
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceRepo := repoFactory.NewDeviceRepository()

		device, err := deviceRepo.FindByIDForUpdate(ctx, deviceID)
		if err != nil {
			return deviceError(err, "failed to lock device")
		}

		current, err := repoFactory.NewAssignmentRepository().CountCurrent(ctx, deviceID)
		if err != nil {
			return errors.Wrap(err, "failed to count current assignments")
		}
		if current > 0 {
			return domainerrors.ErrDeviceHasCurrentAssignment
		}

		if err := deviceRepo.Delete(ctx, deviceID); err != nil {
			return deviceError(err, "failed to delete device")
		}

		return writeAudit(ctx, repoFactory.NewAuditRepository(), auditRecord{
			ActorID:    actorID,
			Action:     entity.AuditActionDelete,
			EntityType: entity.AuditEntityDevice,
			EntityID:   &device.ID,
			Old:        device,
		}, s.now())
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute device deletion transaction")
	}

	s.log(ctx).Info("Device deleted", slog.String("deviceID", deviceID.String()))

	return nil
}

// CreateDevice registers a new device. New devices cannot start out assigned.
func (s *deviceService) CreateDevice(ctx context.Context, actorID uuid.UUID, input *usecase.DeviceInput) (*entity.Device, error) {
	if err := validateDeviceInput(input); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = entity.DeviceAvailable
	}
	if status == entity.DeviceAssigned {
		return nil, domainerrors.ErrInvalidDeviceStatus.WrapMessage("assign the device instead of setting its status")
	}

	now := s.now()
	device := &entity.Device{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(input.Name),
		Type:         strings.TrimSpace(input.Type),
		Model:        strings.TrimSpace(input.Model),
		SerialNumber: strings.TrimSpace(input.SerialNumber),
		Status:       status,
		Notes:        input.Notes,
		CreatedAt:    now,
		CreatedBy:    actorID,
	}

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewDeviceRepository().Create(ctx, device); err != nil {
			return deviceError(err, "failed to create device")
		}

		return writeAudit(ctx, repoFactory.NewAuditRepository(), auditRecord{
			ActorID:    actorID,
			Action:     entity.AuditActionCreate,
			EntityType: entity.AuditEntityDevice,
			EntityID:   &device.ID,
			New:        input,
		}, now)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute device creation transaction")
	}

	return device, nil
}

// UpdateDevice edits a device. Moving an assigned device to another status ends the current assignment.
func (s *deviceService) UpdateDevice(ctx context.Context, actorID, deviceID uuid.UUID, input *usecase.DeviceInput) (*entity.Device, error) {
	if err := validateDeviceInput(input); err != nil {
		return nil, err
	}

	var updated *entity.Device
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceRepo := repoFactory.NewDeviceRepository()

		device, err := deviceRepo.FindByIDForUpdate(ctx, deviceID)
		if err != nil {
			return deviceError(err, "failed to lock device")
		}
		before := *device

		status := input.Status
		if status == "" {
			status = device.Status
		}
		if status == entity.DeviceAssigned && device.Status != entity.DeviceAssigned {
			return domainerrors.ErrInvalidDeviceStatus.WrapMessage("assign the device instead of setting its status")
		}

		now := s.now()
		if device.Status == entity.DeviceAssigned && status != entity.DeviceAssigned {
			if err := s.closeCurrent(ctx, repoFactory.NewAssignmentRepository(), deviceID, now, status); err != nil {
				return err
			}
		}

		device.Name = strings.TrimSpace(input.Name)
		device.Type = strings.TrimSpace(input.Type)
		device.Model = strings.TrimSpace(input.Model)
		device.SerialNumber = strings.TrimSpace(input.SerialNumber)
		device.Status = status
		device.Notes = input.Notes

		if err := deviceRepo.Update(ctx, device); err != nil {
			return deviceError(err, "failed to update device")
		}
		updated = device

		return writeAudit(ctx, repoFactory.NewAuditRepository(), auditRecord{
			ActorID:    actorID,
			Action:     entity.AuditActionUpdate,
			EntityType: entity.AuditEntityDevice,
			EntityID:   &device.ID,
			Old:        &before,
			New:        input,
		}, now)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute device update transaction")
	}

	return updated, nil
}

func (s *deviceService) closeCurrent(ctx context.Context, assignmentRepo repository.AssignmentRepository, deviceID uuid.UUID, at time.Time, status entity.DeviceStatus) error {
	current, err := assignmentRepo.FindCurrent(ctx, deviceID)
	if errors.Is(err, repository.ErrAssignmentNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to find current assignment")
	}

	note := fmt.Sprintf("Device moved to %s", status)
	if err := assignmentRepo.Close(ctx, current.ID, at, note); err != nil {
		return errors.Wrap(err, "failed to close current assignment")
	}

	return nil
}

// ListDevices lists devices with their current holder.
func (s *deviceService) ListDevices(ctx context.Context, filter entity.DeviceFilter) ([]*entity.DeviceSummary, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domainerrors.ErrInvalidDeviceStatus
	}

	devices, err := s.deviceRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}
	if len(devices) == 0 {
		return []*entity.DeviceSummary{}, nil
	}

	ids := make([]uuid.UUID, 0, len(devices))
	for _, d := range devices {
		ids = append(ids, d.ID)
	}

	current, err := s.assignmentRepo.FindCurrentByDevices(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find current assignments")
	}

	holderIDs := make([]uuid.UUID, 0, len(current))
	for _, a := range current {
		holderIDs = append(holderIDs, a.AssignedTo)
	}

	holders, err := s.profileRepo.FindByIDs(ctx, holderIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find device holders")
	}

	summaries := make([]*entity.DeviceSummary, 0, len(devices))
	for _, d := range devices {
		summary := &entity.DeviceSummary{Device: d}
		if a, ok := current[d.ID]; ok {
			summary.CurrentAssignment = a
			summary.Holder = holders[a.AssignedTo]
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// MyDevices lists the devices currently held by the user, newest assignment first.
func (s *deviceService) MyDevices(ctx context.Context, userID uuid.UUID) ([]*entity.AssignmentRecord, error) {
	assignments, err := s.assignmentRepo.ListCurrentByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list current assignments")
	}
	if len(assignments) == 0 {
		return []*entity.AssignmentRecord{}, nil
	}

	deviceIDs := make([]uuid.UUID, 0, len(assignments))
	assignerIDs := make([]uuid.UUID, 0, len(assignments))
	for _, a := range assignments {
		deviceIDs = append(deviceIDs, a.DeviceID)
		assignerIDs = append(assignerIDs, a.AssignedBy)
	}

	devices, err := s.deviceRepo.FindByIDs(ctx, deviceIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices")
	}
	byID := make(map[uuid.UUID]*entity.Device, len(devices))
	for _, d := range devices {
		byID[d.ID] = d
	}

	assigners, err := s.profileRepo.FindByIDs(ctx, assignerIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find assigners")
	}

	records := make([]*entity.AssignmentRecord, 0, len(assignments))
	for _, a := range assignments {
		device, ok := byID[a.DeviceID]
		if !ok {
			continue
		}
		records = append(records, &entity.AssignmentRecord{
			Assignment: a,
			Device:     device,
			Assigner:   assigners[a.AssignedBy],
		})
	}

	return records, nil
}

// DeviceLabel renders the QR asset label of an existing device.
func (s *deviceService) DeviceLabel(ctx context.Context, deviceID uuid.UUID) ([]byte, error) {
	if _, err := s.deviceRepo.FindByID(ctx, deviceID); err != nil {
		return nil, deviceError(err, "failed to find device")
	}

	png, err := s.labels.GenerateDeviceLabel(deviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate device label")
	}

	return png, nil
}

func validateDeviceInput(input *usecase.DeviceInput) error {
	if input == nil || strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Type) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("device name and type are required")
	}
	if input.Status != "" && !input.Status.IsValid() {
		return domainerrors.ErrInvalidDeviceStatus
	}

	return nil
}

func deviceError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrDeviceNotFound):
		return domainerrors.ErrDeviceNotFound
	case errors.Is(err, repository.ErrDuplicateDevice):
		return domainerrors.ErrDuplicateSerialNumber
	default:
		return errors.Wrap(err, message)
	}
}
