package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/backoffice-api/internal/application/dto"
	"github.com/tu-usuario/backoffice-api/internal/domain"
	"github.com/tu-usuario/backoffice-api/internal/domain/entity"
	"github.com/tu-usuario/backoffice-api/internal/domain/repository"
)

// InventoryUseCase CRUD de referencias de inventario con unicidad por ProductNo.
type InventoryUseCase struct {
	repo repository.InventoryRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// Create crea una referencia. Devuelve ErrDuplicate si el productNo ya existe.
func (uc *InventoryUseCase) Create(ctx context.Context, in dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	existing, err := uc.repo.GetByProductNo(ctx, in.ProductNo)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	item := &entity.InventoryItem{
		ID:        uuid.New().String(),
		ProductNo: in.ProductNo,
		Name:      in.Name,
		Category:  in.Category,
		Stock:     in.Stock,
		Price:     in.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toInventoryResponse(item), nil
}

// GetByID obtiene una referencia por ID. Retorna ErrNotFound si no existe.
func (uc *InventoryUseCase) GetByID(ctx context.Context, id string) (*dto.InventoryResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toInventoryResponse(item), nil
}

// List lista referencias con paginación.
func (uc *InventoryUseCase) List(ctx context.Context, limit, offset int) (*dto.InventoryListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toInventoryResponse(it))
	}
	return &dto.InventoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza campos opcionales de una referencia.
func (uc *InventoryUseCase) Update(ctx context.Context, id string, in dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Stock != nil {
		item.Stock = *in.Stock
	}
	if in.Price != nil {
		item.Price = *in.Price
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return toInventoryResponse(item), nil
}

// Delete elimina una referencia de forma permanente.
func (uc *InventoryUseCase) Delete(ctx context.Context, id string) error {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// SoftDelete marca la referencia como eliminada.
func (uc *InventoryUseCase) SoftDelete(ctx context.Context, id string) error {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SoftDelete(ctx, id)
}

func toInventoryResponse(it *entity.InventoryItem) *dto.InventoryResponse {
	if it == nil {
		return nil
	}
	return &dto.InventoryResponse{
		ID:        it.ID,
		ProductNo: it.ProductNo,
		Name:      it.Name,
		Category:  it.Category,
		Stock:     it.Stock,
		Price:     it.Price,
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
}
