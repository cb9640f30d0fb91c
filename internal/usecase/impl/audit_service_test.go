package impl

import (
	"context"
	"testing"

	"staffportal/internal/domain/entity"
	mockRepo "staffportal/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditService_List_ClampsPaging(t *testing.T) {
	tests := []struct {
		name   string
		filter entity.AuditFilter
		want   entity.AuditFilter
	}{
		{"defaults", entity.AuditFilter{}, entity.AuditFilter{Limit: 50}},
		{"caps limit", entity.AuditFilter{Limit: 1000, Offset: 20}, entity.AuditFilter{Limit: 200, Offset: 20}},
		{"negative offset", entity.AuditFilter{Limit: 10, Offset: -5, Action: "assign"}, entity.AuditFilter{Limit: 10, Action: "assign"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auditRepo := mockRepo.NewMockAuditRepository(t)
			service := NewAuditService(auditRepo)
			ctx := context.Background()

			auditRepo.EXPECT().List(ctx, tt.want).Return([]*entity.AuditEntry{}, int64(3), nil)

			page, err := service.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, int64(3), page.Total)
			assert.Equal(t, tt.want.Limit, page.Limit)
			assert.Equal(t, tt.want.Offset, page.Offset)
		})
	}
}

func TestAuditService_List_Error(t *testing.T) {
	auditRepo := mockRepo.NewMockAuditRepository(t)
	service := NewAuditService(auditRepo)
	ctx := context.Background()

	auditRepo.EXPECT().List(ctx, entity.AuditFilter{Limit: 50}).Return(nil, int64(0), errors.New("boom"))

	_, err := service.List(ctx, entity.AuditFilter{})
	require.Error(t, err)
}
