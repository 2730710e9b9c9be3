package services

import (
	"context"
	"errors"
	"testing"

	"shophub/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderWriter struct {
	created *models.Order
	err     error
	calls   int
}

func (f *fakeOrderWriter) CreateWithItems(_ context.Context, order *models.Order) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.created = order
	return nil
}

type fakeMailer struct {
	to      string
	orderID string
	total   decimal.Decimal
	items   []models.OrderItem
	err     error
	calls   int
}

func (f *fakeMailer) SendOrderConfirmationEmail(toEmail, orderID string, items []models.OrderItem, total decimal.Decimal) error {
	f.calls++
	f.to = toEmail
	f.orderID = orderID
	f.items = items
	f.total = total
	return f.err
}

func seedCart(t *testing.T, store *fakeCartStore, userID int) {
	t.Helper()
	require.NoError(t, store.Save(context.Background(), userID, []models.CartLine{
		{ProductID: 1, Title: "Wireless Headphones", Price: decimal.NewFromFloat(10), Quantity: 2},
		{ProductID: 2, Title: "Coffee Mug", Price: decimal.NewFromFloat(5), Quantity: 1},
	}))
}

func TestCheckoutSuccess(t *testing.T) {
	ctx := context.Background()
	cart := newFakeCartStore()
	writer := &fakeOrderWriter{}
	mailer := &fakeMailer{}
	seedCart(t, cart, 1)

	svc := NewCheckoutService(cart, writer, mailer)

	order, err := svc.Checkout(ctx, 1, "shopper@example.com")
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, 1, order.UserID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "25.00", order.TotalAmount.StringFixed(2))

	require.Len(t, order.Items, 2)
	for _, item := range order.Items {
		assert.NotEmpty(t, item.ID)
		assert.Equal(t, order.ID, item.OrderID)
	}
	assert.Equal(t, "Wireless Headphones", order.Items[0].Title)
	assert.Equal(t, 2, order.Items[0].Quantity)

	// Cart is empty after a successful checkout.
	lines, err := cart.Get(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, lines)

	assert.Equal(t, 1, mailer.calls)
	assert.Equal(t, "shopper@example.com", mailer.to)
	assert.Equal(t, order.ID, mailer.orderID)
	assert.Equal(t, "25.00", mailer.total.StringFixed(2))
}

func TestCheckoutEmptyCart(t *testing.T) {
	ctx := context.Background()
	cart := newFakeCartStore()
	writer := &fakeOrderWriter{}
	mailer := &fakeMailer{}

	svc := NewCheckoutService(cart, writer, mailer)

	order, err := svc.Checkout(ctx, 1, "shopper@example.com")
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Nil(t, order)

	// No remote write happens for an empty cart.
	assert.Zero(t, writer.calls)
	assert.Zero(t, mailer.calls)
}

func TestCheckoutOrderWriteFailure(t *testing.T) {
	ctx := context.Background()
	cart := newFakeCartStore()
	writer := &fakeOrderWriter{err: errors.New("connection refused")}
	mailer := &fakeMailer{}
	seedCart(t, cart, 1)

	svc := NewCheckoutService(cart, writer, mailer)

	order, err := svc.Checkout(ctx, 1, "shopper@example.com")
	assert.Error(t, err)
	assert.Nil(t, order)

	// The cart is preserved so the user can retry.
	lines, getErr := cart.Get(ctx, 1)
	require.NoError(t, getErr)
	assert.Len(t, lines, 2)

	assert.Zero(t, mailer.calls)
}

func TestCheckoutMailerFailureIsNonFatal(t *testing.T) {
	ctx := context.Background()
	cart := newFakeCartStore()
	writer := &fakeOrderWriter{}
	mailer := &fakeMailer{err: errors.New("smtp timeout")}
	seedCart(t, cart, 1)

	svc := NewCheckoutService(cart, writer, mailer)

	order, err := svc.Checkout(ctx, 1, "shopper@example.com")
	require.NoError(t, err)
	require.NotNil(t, order)

	lines, getErr := cart.Get(ctx, 1)
	require.NoError(t, getErr)
	assert.Empty(t, lines)
}

func TestCheckoutWithoutMailer(t *testing.T) {
	ctx := context.Background()
	cart := newFakeCartStore()
	writer := &fakeOrderWriter{}
	seedCart(t, cart, 1)

	svc := NewCheckoutService(cart, writer, nil)

	order, err := svc.Checkout(ctx, 1, "shopper@example.com")
	require.NoError(t, err)
	assert.Equal(t, "25.00", order.TotalAmount.StringFixed(2))
}

func TestCheckoutTotalIgnoresLaterCartMutation(t *testing.T) {
	ctx := context.Background()
	cart := newFakeCartStore()
	writer := &fakeOrderWriter{}
	seedCart(t, cart, 1)

	svc := NewCheckoutService(cart, writer, nil)

	order, err := svc.Checkout(ctx, 1, "shopper@example.com")
	require.NoError(t, err)

	// Mutating the cart afterwards cannot touch the committed snapshot.
	require.NoError(t, cart.Save(ctx, 1, []models.CartLine{
		{ProductID: 9, Title: "Smart Watch", Price: decimal.NewFromFloat(199.99), Quantity: 1},
	}))

	assert.Equal(t, "25.00", writer.created.TotalAmount.StringFixed(2))
	assert.Len(t, order.Items, 2)
}
