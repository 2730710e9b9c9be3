package services

import (
	"context"
	"testing"

	"shophub/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCartStore keeps carts in memory, mirroring the whole-value
// read/rewrite contract of the real store.
type fakeCartStore struct {
	carts map[int][]models.CartLine
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: map[int][]models.CartLine{}}
}

func (f *fakeCartStore) Get(_ context.Context, userID int) ([]models.CartLine, error) {
	lines := f.carts[userID]
	out := make([]models.CartLine, len(lines))
	copy(out, lines)
	return out, nil
}

func (f *fakeCartStore) Save(_ context.Context, userID int, lines []models.CartLine) error {
	saved := make([]models.CartLine, len(lines))
	copy(saved, lines)
	f.carts[userID] = saved
	return nil
}

func (f *fakeCartStore) Clear(_ context.Context, userID int) error {
	delete(f.carts, userID)
	return nil
}

func line(productID int, price float64, qty int) models.CartLine {
	return models.CartLine{
		ProductID: productID,
		Title:     "Item",
		Price:     decimal.NewFromFloat(price),
		Image:     "/placeholder.svg",
		Quantity:  qty,
	}
}

func TestCartServiceAddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("new item starts at quantity 1", func(t *testing.T) {
		svc := NewCartService(newFakeCartStore())

		lines, err := svc.AddItem(ctx, 1, line(10, 9.99, 0))
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, 1, lines[0].Quantity)
	})

	t.Run("repeated adds increment the same line", func(t *testing.T) {
		svc := NewCartService(newFakeCartStore())

		for i := 0; i < 4; i++ {
			_, err := svc.AddItem(ctx, 1, line(10, 9.99, 0))
			require.NoError(t, err)
		}

		lines, err := svc.Items(ctx, 1)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, 4, lines[0].Quantity)
	})

	t.Run("distinct products get distinct lines", func(t *testing.T) {
		svc := NewCartService(newFakeCartStore())

		_, err := svc.AddItem(ctx, 1, line(10, 9.99, 0))
		require.NoError(t, err)
		lines, err := svc.AddItem(ctx, 1, line(20, 4.50, 0))
		require.NoError(t, err)

		assert.Len(t, lines, 2)
	})

	t.Run("carts are per user", func(t *testing.T) {
		svc := NewCartService(newFakeCartStore())

		_, err := svc.AddItem(ctx, 1, line(10, 9.99, 0))
		require.NoError(t, err)

		lines, err := svc.Items(ctx, 2)
		require.NoError(t, err)
		assert.Empty(t, lines)
	})
}

func TestCartServiceSetQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("sets quantity directly", func(t *testing.T) {
		svc := NewCartService(newFakeCartStore())

		_, err := svc.AddItem(ctx, 1, line(10, 9.99, 0))
		require.NoError(t, err)

		lines, err := svc.SetQuantity(ctx, 1, 10, 7)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, 7, lines[0].Quantity)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		svc := NewCartService(newFakeCartStore())

		_, err := svc.AddItem(ctx, 1, line(10, 9.99, 0))
		require.NoError(t, err)

		lines, err := svc.SetQuantity(ctx, 1, 10, 0)
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("negative removes the line", func(t *testing.T) {
		svc := NewCartService(newFakeCartStore())

		_, err := svc.AddItem(ctx, 1, line(10, 9.99, 0))
		require.NoError(t, err)

		lines, err := svc.SetQuantity(ctx, 1, 10, -3)
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("no stored line ever has quantity below 1", func(t *testing.T) {
		svc := NewCartService(newFakeCartStore())

		_, err := svc.AddItem(ctx, 1, line(10, 9.99, 0))
		require.NoError(t, err)
		_, err = svc.AddItem(ctx, 1, line(20, 4.50, 0))
		require.NoError(t, err)
		_, err = svc.SetQuantity(ctx, 1, 10, 0)
		require.NoError(t, err)
		_, err = svc.SetQuantity(ctx, 1, 20, 5)
		require.NoError(t, err)

		lines, err := svc.Items(ctx, 1)
		require.NoError(t, err)
		for _, l := range lines {
			assert.GreaterOrEqual(t, l.Quantity, 1)
		}
	})
}

func TestCartServiceRemoveAndClear(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(newFakeCartStore())

	_, err := svc.AddItem(ctx, 1, line(10, 9.99, 0))
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, 1, line(20, 4.50, 0))
	require.NoError(t, err)

	lines, err := svc.RemoveItem(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 20, lines[0].ProductID)

	require.NoError(t, svc.Clear(ctx, 1))

	lines, err = svc.Items(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCartServiceTotal(t *testing.T) {
	svc := NewCartService(newFakeCartStore())

	total := svc.Total([]models.CartLine{
		line(1, 10, 2),
		line(2, 5, 1),
	})

	assert.Equal(t, "25.00", total.StringFixed(2))
	assert.Equal(t, "0.00", svc.Total(nil).StringFixed(2))
}
