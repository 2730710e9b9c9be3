package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderStatuses is a flat set. Any status may move to any other; there
// is deliberately no transition graph.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Order struct {
	ID          string               `json:"id"`
	UserID      int                  `json:"user_id"`
	Status      string               `json:"status"`
	TotalAmount decimal.Decimal      `json:"total_amount"`
	Items       []OrderItem          `json:"items,omitempty"`
	Tracking    []OrderTrackingEntry `json:"tracking,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// OrderItem is a write-once snapshot of a cart line at purchase time.
type OrderItem struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"order_id"`
	ProductID int             `json:"product_id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
}

// OrderTrackingEntry is an append-only audit record of a status change.
type OrderTrackingEntry struct {
	ID                int       `json:"id"`
	OrderID           string    `json:"order_id"`
	Status            string    `json:"status"`
	StatusDescription *string   `json:"status_description,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}
