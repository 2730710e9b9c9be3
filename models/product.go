package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID           int             `json:"id"`
	Title        string          `json:"title"`
	Price        decimal.Decimal `json:"price"`
	Image        string          `json:"image"`
	CloudinaryID string          `json:"-"`
	Category     string          `json:"category"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
