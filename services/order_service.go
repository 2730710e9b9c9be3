package services

import (
	"context"
	"errors"

	"shophub/models"
)

var ErrInvalidStatus = errors.New("invalid order status")

// OrderStore is the order persistence contract used by the status
// workflow and history views.
type OrderStore interface {
	UpdateStatusWithTracking(ctx context.Context, orderID, status string, description *string) error
	FindByID(ctx context.Context, orderID string) (*models.Order, error)
	FindByUser(ctx context.Context, userID, page, limit int) ([]models.Order, int, error)
}

type OrderService struct {
	store OrderStore
}

func NewOrderService(store OrderStore) *OrderService {
	return &OrderService{store: store}
}

// UpdateStatus moves the order to the given status and appends a
// tracking entry carrying the optional note. The status set is flat:
// any status may follow any other.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status, note string) error {
	if !models.IsValidOrderStatus(status) {
		return ErrInvalidStatus
	}

	var description *string
	if note != "" {
		description = &note
	}

	return s.store.UpdateStatusWithTracking(ctx, orderID, status, description)
}

func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	return s.store.FindByID(ctx, orderID)
}

func (s *OrderService) History(ctx context.Context, userID, page, limit int) ([]models.Order, int, error) {
	return s.store.FindByUser(ctx, userID, page, limit)
}
