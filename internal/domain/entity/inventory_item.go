package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa una referencia de inventario identificada por ProductNo (único).
type InventoryItem struct {
	ID        string
	ProductNo string
	Name      string
	Category  string
	Stock     int
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // soft delete
}
