package repository

import (
	"context"

	"github.com/tu-usuario/backoffice-api/internal/domain/entity"
)

// InventoryRepository puerto de persistencia para InventoryItem.
type InventoryRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	GetByProductNo(ctx context.Context, productNo string) (*entity.InventoryItem, error)
	List(ctx context.Context, limit, offset int) ([]*entity.InventoryItem, error)
	Update(ctx context.Context, item *entity.InventoryItem) error
	Delete(ctx context.Context, id string) error
	SoftDelete(ctx context.Context, id string) error
}
