package services

import (
	"context"

	"shophub/models"

	"github.com/shopspring/decimal"
)

// CartStore is the persistence contract for the cart: the whole line
// list is read and rewritten as one value.
type CartStore interface {
	Get(ctx context.Context, userID int) ([]models.CartLine, error)
	Save(ctx context.Context, userID int, lines []models.CartLine) error
	Clear(ctx context.Context, userID int) error
}

type CartService struct {
	store CartStore
}

func NewCartService(store CartStore) *CartService {
	return &CartService{store: store}
}

func (s *CartService) Items(ctx context.Context, userID int) ([]models.CartLine, error) {
	return s.store.Get(ctx, userID)
}

// AddItem inserts the item with quantity 1, or bumps the quantity by 1
// if a line with the same product id already exists.
func (s *CartService) AddItem(ctx context.Context, userID int, item models.CartLine) ([]models.CartLine, error) {
	lines, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range lines {
		if lines[i].ProductID == item.ProductID {
			lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		item.Quantity = 1
		lines = append(lines, item)
	}

	if err := s.store.Save(ctx, userID, lines); err != nil {
		return nil, err
	}

	return lines, nil
}

func (s *CartService) RemoveItem(ctx context.Context, userID, productID int) ([]models.CartLine, error) {
	lines, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := lines[:0]
	for _, line := range lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}

	if err := s.store.Save(ctx, userID, kept); err != nil {
		return nil, err
	}

	return kept, nil
}

// SetQuantity sets the line's quantity, removing the line when the
// requested quantity is zero or negative. A stored line never has
// quantity below 1.
func (s *CartService) SetQuantity(ctx context.Context, userID, productID, quantity int) ([]models.CartLine, error) {
	if quantity <= 0 {
		return s.RemoveItem(ctx, userID, productID)
	}

	lines, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity = quantity
			break
		}
	}

	if err := s.store.Save(ctx, userID, lines); err != nil {
		return nil, err
	}

	return lines, nil
}

func (s *CartService) Clear(ctx context.Context, userID int) error {
	return s.store.Clear(ctx, userID)
}

// Total is the sum of price times quantity across the given lines.
func (s *CartService) Total(lines []models.CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}
