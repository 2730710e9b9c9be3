package services

import (
	"context"
	"errors"
	"log"

	"shophub/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrEmptyCart = errors.New("cart is empty")

// OrderWriter commits an order and its line items as one unit.
type OrderWriter interface {
	CreateWithItems(ctx context.Context, order *models.Order) error
}

// ConfirmationMailer dispatches the order confirmation. Failures are
// non-fatal to checkout.
type ConfirmationMailer interface {
	SendOrderConfirmationEmail(toEmail, orderID string, items []models.OrderItem, total decimal.Decimal) error
}

type CheckoutService struct {
	cart   CartStore
	orders OrderWriter
	mailer ConfirmationMailer
}

// NewCheckoutService wires the checkout orchestrator. mailer may be
// nil when SMTP is not configured; checkout then skips the
// confirmation entirely.
func NewCheckoutService(cart CartStore, orders OrderWriter, mailer ConfirmationMailer) *CheckoutService {
	return &CheckoutService{cart: cart, orders: orders, mailer: mailer}
}

// Checkout converts the user's cart into a persisted order.
//
// The total is always recomputed here from the server-held cart lines;
// nothing about the amount is taken from the client. The order row, its
// line items, and the initial tracking entry commit in one transaction,
// and the cart is only cleared after that commit, so a failed checkout
// leaves the cart available for retry.
func (s *CheckoutService) Checkout(ctx context.Context, userID int, email string) (*models.Order, error) {
	lines, err := s.cart.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	total := decimal.Zero
	items := make([]models.OrderItem, 0, len(lines))
	orderID := uuid.NewString()

	for _, line := range lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		items = append(items, models.OrderItem{
			ID:        uuid.NewString(),
			OrderID:   orderID,
			ProductID: line.ProductID,
			Title:     line.Title,
			Price:     line.Price,
			Quantity:  line.Quantity,
		})
	}

	order := &models.Order{
		ID:          orderID,
		UserID:      userID,
		Status:      models.OrderStatusPending,
		TotalAmount: total,
		Items:       items,
	}

	if err := s.orders.CreateWithItems(ctx, order); err != nil {
		return nil, err
	}

	if s.mailer != nil {
		if err := s.mailer.SendOrderConfirmationEmail(email, order.ID, order.Items, order.TotalAmount); err != nil {
			// The order is already committed; the missing email is not
			// worth failing the checkout over.
			log.Printf("Failed to send order confirmation for %s: %v", order.ID, err)
		}
	}

	if err := s.cart.Clear(ctx, userID); err != nil {
		log.Printf("Failed to clear cart for user %d after checkout: %v", userID, err)
	}

	return order, nil
}
