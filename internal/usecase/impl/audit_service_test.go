package impl

import (
	"context"
	"testing"

	"mesa/internal/domain/entity"
	domainerrors "mesa/internal/domain/errors"
	mockRepo "mesa/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditService_ListByEntity_AdminOnly(t *testing.T) {
	auditRepo := mockRepo.NewMockAuditLogRepository(t)
	service := NewAuditService(AuditServiceParams{AuditRepo: auditRepo})

	ctx := context.Background()
	owner := entity.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleOwner}}

	_, err := service.ListByEntity(ctx, owner, entity.EntityTypeRestaurant, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAuditService_ListByEntity(t *testing.T) {
	auditRepo := mockRepo.NewMockAuditLogRepository(t)
	service := NewAuditService(AuditServiceParams{AuditRepo: auditRepo})

	ctx := context.Background()
	admin := entity.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}
	restaurantID := uuid.New()
	expected := []*entity.AuditLogEntry{
		{ID: uuid.New(), Action: entity.AuditActionRestaurantCreated},
		{ID: uuid.New(), Action: entity.AuditActionRestaurantSuspended},
	}

	auditRepo.EXPECT().
		ListByEntity(ctx, entity.EntityTypeRestaurant, restaurantID).
		Return(expected, nil)

	entries, err := service.ListByEntity(ctx, admin, entity.EntityTypeRestaurant, restaurantID)
	require.NoError(t, err)
	assert.Equal(t, expected, entries)
}

func TestAuditService_ListByCorrelationID(t *testing.T) {
	auditRepo := mockRepo.NewMockAuditLogRepository(t)
	service := NewAuditService(AuditServiceParams{AuditRepo: auditRepo})

	ctx := context.Background()
	admin := entity.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}
	jobID := uuid.New()
	expected := []*entity.AuditLogEntry{
		{ID: uuid.New(), Action: entity.AuditActionSubscriptionExpired, CorrelationID: jobID},
		{ID: uuid.New(), Action: entity.AuditActionRestaurantSuspended, CorrelationID: jobID},
	}

	auditRepo.EXPECT().
		ListByCorrelationID(ctx, jobID).
		Return(expected, nil)

	entries, err := service.ListByCorrelationID(ctx, admin, jobID)
	require.NoError(t, err)
	assert.Equal(t, expected, entries)
}
