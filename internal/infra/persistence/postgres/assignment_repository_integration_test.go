package postgres

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"staffportal/internal/domain/entity"
	"staffportal/internal/domain/repository"
	"staffportal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testDSNEnv = "STAFFPORTAL_TEST_POSTGRES_DSN"

// openTestDB connects to the database named by STAFFPORTAL_TEST_POSTGRES_DSN and
// migrates it. The test is skipped when the variable is unset.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv(testDSNEnv)
	if dsn == "" {
		t.Skipf("%s not set, skipping database test", testDSNEnv)
	}

	db, err := gorm.Open(gormPostgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db))
	require.NoError(t, VerifySchema(ctx, db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func createTestDevice(t *testing.T, db *gorm.DB) *entity.Device {
	t.Helper()

	device := &entity.Device{
		Name:      "ThinkPad X1 " + uuid.NewString()[:8],
		Type:      "laptop",
		Status:    entity.DeviceAvailable,
		CreatedBy: uuid.New(),
	}
	require.NoError(t, NewDeviceRepository(db).Create(context.Background(), device))

	t.Cleanup(func() {
		db.Where("id = ?", device.ID).Delete(&model.DeviceModel{})
	})

	return device
}

// handOver runs the ledger steps of an assignment in one transaction with the device locked.
func handOver(ctx context.Context, tm repository.TransactionManager, deviceID, to uuid.UUID, at time.Time) error {
	return tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if _, err := f.NewDeviceRepository().FindByIDForUpdate(ctx, deviceID); err != nil {
			return err
		}

		assignments := f.NewAssignmentRepository()
		current, err := assignments.FindCurrent(ctx, deviceID)
		if err != nil && !errors.Is(err, repository.ErrAssignmentNotFound) {
			return err
		}

		var from *uuid.UUID
		if current != nil {
			if err := assignments.Close(ctx, current.ID, at, "Reassigned to another user"); err != nil {
				return err
			}
			holder := current.AssignedTo
			from = &holder
		}

		return assignments.Create(ctx, &entity.DeviceAssignment{
			ID:           uuid.New(),
			DeviceID:     deviceID,
			AssignedTo:   to,
			AssignedFrom: from,
			AssignedBy:   uuid.New(),
			IsCurrent:    true,
			AssignedAt:   at,
		})
	})
}

func TestAssignmentRepository_HandoverKeepsOneCurrentRow_Integration(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	tm := NewTransactionManager(db)
	repo := NewAssignmentRepository(db)

	device := createTestDevice(t, db)
	userA, userB := uuid.New(), uuid.New()
	t0 := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, handOver(ctx, tm, device.ID, userA, t0))
	require.NoError(t, handOver(ctx, tm, device.ID, userB, t0.Add(time.Minute)))

	history, err := repo.ListByDevice(ctx, device.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)

	assert.Equal(t, userB, history[0].AssignedTo)
	assert.True(t, history[0].IsCurrent)
	require.NotNil(t, history[0].AssignedFrom)
	assert.Equal(t, userA, *history[0].AssignedFrom)
	assert.Nil(t, history[0].HandedOverAt)

	assert.Equal(t, userA, history[1].AssignedTo)
	assert.False(t, history[1].IsCurrent)
	require.NotNil(t, history[1].HandedOverAt)
	assert.Equal(t, "Reassigned to another user", history[1].HandoverNotes)
	assert.Nil(t, history[1].AssignedFrom)

	count, err := repo.CountCurrent(ctx, device.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	mine, err := repo.ListCurrentByUser(ctx, userA)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestAssignmentRepository_PartialIndexRejectsSecondCurrentRow_Integration(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewAssignmentRepository(db)

	device := createTestDevice(t, db)
	now := time.Now().UTC()

	first := &entity.DeviceAssignment{ID: uuid.New(), DeviceID: device.ID, AssignedTo: uuid.New(), AssignedBy: uuid.New(), IsCurrent: true, AssignedAt: now}
	require.NoError(t, repo.Create(ctx, first))

	second := &entity.DeviceAssignment{ID: uuid.New(), DeviceID: device.ID, AssignedTo: uuid.New(), AssignedBy: uuid.New(), IsCurrent: true, AssignedAt: now}
	err := repo.Create(ctx, second)
	assert.True(t, errors.Is(err, repository.ErrDuplicateCurrentAssignment), "got %v", err)

	// closed rows are outside the partial index
	require.NoError(t, repo.Close(ctx, first.ID, now, "returned"))
	assert.True(t, errors.Is(repo.Close(ctx, first.ID, now, "returned"), repository.ErrAssignmentNotFound))
	require.NoError(t, repo.Create(ctx, second))
}

func TestAssignmentRepository_ConcurrentHandovers_Integration(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	tm := NewTransactionManager(db)

	device := createTestDevice(t, db)
	t0 := time.Now().UTC()

	const writers = 4
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := range writers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- handOver(ctx, tm, device.ID, uuid.New(), t0.Add(time.Duration(i)*time.Second))
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	repo := NewAssignmentRepository(db)
	count, err := repo.CountCurrent(ctx, device.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	history, err := repo.ListByDevice(ctx, device.ID)
	require.NoError(t, err)
	assert.Len(t, history, writers)
}
