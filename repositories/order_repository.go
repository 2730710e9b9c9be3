package repositories

import (
	"context"
	"errors"
	"time"

	"shophub/models"

	"github.com/jackc/pgx/v5"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// CreateWithItems writes the order, its line items, and the initial
// tracking entry in a single transaction. A failure anywhere rolls the
// whole order back; there is no orphan-order path.
func (r *OrderRepository) CreateWithItems(ctx context.Context, order *models.Order) error {
	tx, err := models.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	_, err = tx.Exec(ctx,
		"INSERT INTO orders (id, user_id, status, total_amount, created_at, updated_at) VALUES ($1,$2,$3,$4,$5,$6)",
		order.ID, order.UserID, order.Status, order.TotalAmount, now, now)
	if err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		item.CreatedAt = now

		_, err = tx.Exec(ctx,
			"INSERT INTO order_items (id, order_id, product_id, title, price, quantity, created_at) VALUES ($1,$2,$3,$4,$5,$6,$7)",
			item.ID, order.ID, item.ProductID, item.Title, item.Price, item.Quantity, now)
		if err != nil {
			return err
		}
	}

	_, err = tx.Exec(ctx,
		"INSERT INTO order_tracking (order_id, status, created_at) VALUES ($1,$2,$3)",
		order.ID, order.Status, now)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// UpdateStatusWithTracking updates the order's status and appends the
// matching tracking entry atomically, so the audit log never diverges
// from the current status.
func (r *OrderRepository) UpdateStatusWithTracking(ctx context.Context, orderID, status string, description *string) error {
	tx, err := models.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()

	tag, err := tx.Exec(ctx,
		"UPDATE orders SET status=$1, updated_at=$2 WHERE id=$3",
		status, now, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}

	_, err = tx.Exec(ctx,
		"INSERT INTO order_tracking (order_id, status, status_description, created_at) VALUES ($1,$2,$3,$4)",
		orderID, status, description, now)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *OrderRepository) FindByID(ctx context.Context, orderID string) (*models.Order, error) {
	order := &models.Order{}
	err := models.DB.QueryRow(ctx,
		"SELECT id, user_id, status, total_amount, created_at, updated_at FROM orders WHERE id=$1",
		orderID).Scan(&order.ID, &order.UserID, &order.Status, &order.TotalAmount, &order.CreatedAt, &order.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	items, err := r.findItems(ctx, []string{order.ID})
	if err != nil {
		return nil, err
	}
	order.Items = items[order.ID]

	tracking, err := r.findTracking(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Tracking = tracking

	return order, nil
}

// FindByUser returns the user's orders newest first, with line items.
func (r *OrderRepository) FindByUser(ctx context.Context, userID, page, limit int) ([]models.Order, int, error) {
	offset := (page - 1) * limit

	var total int
	err := models.DB.QueryRow(ctx, "SELECT COUNT(*) FROM orders WHERE user_id=$1", userID).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := models.DB.Query(ctx,
		"SELECT id, user_id, status, total_amount, created_at, updated_at FROM orders WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := []models.Order{}
	orderIDs := []string{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Status, &o.TotalAmount, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
		orderIDs = append(orderIDs, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if len(orderIDs) > 0 {
		items, err := r.findItems(ctx, orderIDs)
		if err != nil {
			return nil, 0, err
		}
		for i := range orders {
			orders[i].Items = items[orders[i].ID]
		}
	}

	return orders, total, nil
}

func (r *OrderRepository) findItems(ctx context.Context, orderIDs []string) (map[string][]models.OrderItem, error) {
	rows, err := models.DB.Query(ctx,
		"SELECT id, order_id, product_id, title, price, quantity, created_at FROM order_items WHERE order_id = ANY($1) ORDER BY created_at",
		orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := map[string][]models.OrderItem{}
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Title, &item.Price, &item.Quantity, &item.CreatedAt); err != nil {
			return nil, err
		}
		items[item.OrderID] = append(items[item.OrderID], item)
	}

	return items, rows.Err()
}

// findTracking returns the audit log in ascending creation order;
// callers that display newest-first reverse it at the edge.
func (r *OrderRepository) findTracking(ctx context.Context, orderID string) ([]models.OrderTrackingEntry, error) {
	rows, err := models.DB.Query(ctx,
		"SELECT id, order_id, status, status_description, created_at FROM order_tracking WHERE order_id=$1 ORDER BY created_at, id",
		orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.OrderTrackingEntry{}
	for rows.Next() {
		var e models.OrderTrackingEntry
		if err := rows.Scan(&e.ID, &e.OrderID, &e.Status, &e.StatusDescription, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
