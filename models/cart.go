package models

import "github.com/shopspring/decimal"

// CartLine is one product entry in a user's cart. Lines are unique by
// product id; a stored line always has Quantity >= 1.
type CartLine struct {
	ProductID int             `json:"id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
}
