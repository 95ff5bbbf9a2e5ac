package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryRequest entrada para crear una referencia de inventario.
type CreateInventoryRequest struct {
	ProductNo string          `json:"productNo" validate:"required"`
	Name      string          `json:"name" validate:"required"`
	Category  string          `json:"category" validate:"required"`
	Stock     int             `json:"stock" validate:"min=0"`
	Price     decimal.Decimal `json:"price"`
}

// UpdateInventoryRequest entrada para actualizar; campos opcionales.
type UpdateInventoryRequest struct {
	Name     *string          `json:"name"`
	Category *string          `json:"category"`
	Stock    *int             `json:"stock"`
	Price    *decimal.Decimal `json:"price"`
}

// InventoryResponse salida de una referencia de inventario.
type InventoryResponse struct {
	ID        string          `json:"id"`
	ProductNo string          `json:"productNo"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Stock     int             `json:"stock"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// InventoryListResponse listado paginado.
type InventoryListResponse struct {
	Items []InventoryResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
