package services

import (
	"context"
	"testing"

	"shophub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderStore struct {
	orderID     string
	status      string
	description *string
	calls       int
}

func (f *fakeOrderStore) UpdateStatusWithTracking(_ context.Context, orderID, status string, description *string) error {
	f.calls++
	f.orderID = orderID
	f.status = status
	f.description = description
	return nil
}

func (f *fakeOrderStore) FindByID(_ context.Context, _ string) (*models.Order, error) {
	return nil, nil
}

func (f *fakeOrderStore) FindByUser(_ context.Context, _, _, _ int) ([]models.Order, int, error) {
	return nil, 0, nil
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("valid status with note", func(t *testing.T) {
		store := &fakeOrderStore{}
		svc := NewOrderService(store)

		err := svc.UpdateStatus(ctx, "abc-123", models.OrderStatusShipped, "left warehouse")
		require.NoError(t, err)

		assert.Equal(t, "abc-123", store.orderID)
		assert.Equal(t, "shipped", store.status)
		require.NotNil(t, store.description)
		assert.Equal(t, "left warehouse", *store.description)
	})

	t.Run("empty note stores no description", func(t *testing.T) {
		store := &fakeOrderStore{}
		svc := NewOrderService(store)

		err := svc.UpdateStatus(ctx, "abc-123", models.OrderStatusDelivered, "")
		require.NoError(t, err)
		assert.Nil(t, store.description)
	})

	t.Run("unknown status is rejected before any write", func(t *testing.T) {
		store := &fakeOrderStore{}
		svc := NewOrderService(store)

		err := svc.UpdateStatus(ctx, "abc-123", "completed", "")
		assert.ErrorIs(t, err, ErrInvalidStatus)
		assert.Zero(t, store.calls)
	})

	t.Run("every documented status is accepted", func(t *testing.T) {
		for _, status := range models.OrderStatuses {
			store := &fakeOrderStore{}
			svc := NewOrderService(store)

			err := svc.UpdateStatus(ctx, "abc-123", status, "")
			assert.NoError(t, err, "status %q", status)
		}
	})
}
