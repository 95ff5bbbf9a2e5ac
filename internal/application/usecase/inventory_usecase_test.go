package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/backoffice-api/internal/application/dto"
	"github.com/tu-usuario/backoffice-api/internal/application/usecase"
	"github.com/tu-usuario/backoffice-api/internal/domain"
	"github.com/tu-usuario/backoffice-api/internal/domain/entity"
)

type memInventoryRepo struct {
	byID        map[string]*entity.InventoryItem
	softDeleted map[string]bool
}

func newMemInventoryRepo() *memInventoryRepo {
	return &memInventoryRepo{byID: map[string]*entity.InventoryItem{}, softDeleted: map[string]bool{}}
}

func (r *memInventoryRepo) Create(_ context.Context, it *entity.InventoryItem) error {
	cp := *it
	r.byID[it.ID] = &cp
	return nil
}

func (r *memInventoryRepo) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	it, ok := r.byID[id]
	if !ok || r.softDeleted[id] {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *memInventoryRepo) GetByProductNo(_ context.Context, productNo string) (*entity.InventoryItem, error) {
	for id, it := range r.byID {
		if it.ProductNo == productNo && !r.softDeleted[id] {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memInventoryRepo) List(_ context.Context, limit, offset int) ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	for id, it := range r.byID {
		if r.softDeleted[id] {
			continue
		}
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memInventoryRepo) Update(_ context.Context, it *entity.InventoryItem) error {
	cp := *it
	r.byID[it.ID] = &cp
	return nil
}

func (r *memInventoryRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func (r *memInventoryRepo) SoftDelete(_ context.Context, id string) error {
	r.softDeleted[id] = true
	return nil
}

func TestInventoryCreate_DuplicadoPorProductNo(t *testing.T) {
	repo := newMemInventoryRepo()
	uc := usecase.NewInventoryUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateInventoryRequest{
		ProductNo: "P-001", Name: "Tornillo", Category: "ferretería",
		Stock: 100, Price: decimal.NewFromFloat(1.50),
	})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateInventoryRequest{
		ProductNo: "P-001", Name: "Otro", Category: "otra",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestInventoryUpdate_CamposOpcionales(t *testing.T) {
	repo := newMemInventoryRepo()
	uc := usecase.NewInventoryUseCase(repo)

	created, err := uc.Create(context.Background(), dto.CreateInventoryRequest{
		ProductNo: "P-001", Name: "Tornillo", Category: "ferretería",
		Stock: 100, Price: decimal.NewFromFloat(1.50),
	})
	require.NoError(t, err)

	newStock := 80
	newPrice := decimal.NewFromFloat(1.75)
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateInventoryRequest{
		Stock: &newStock,
		Price: &newPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, 80, out.Stock)
	assert.True(t, out.Price.Equal(newPrice))
	assert.Equal(t, "Tornillo", out.Name, "los campos no enviados no cambian")
	assert.Equal(t, "P-001", out.ProductNo, "productNo es inmutable en update")
}

func TestInventoryGetByID_Inexistente(t *testing.T) {
	uc := usecase.NewInventoryUseCase(newMemInventoryRepo())
	_, err := uc.GetByID(context.Background(), "fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInventorySoftDelete(t *testing.T) {
	repo := newMemInventoryRepo()
	uc := usecase.NewInventoryUseCase(repo)

	created, err := uc.Create(context.Background(), dto.CreateInventoryRequest{
		ProductNo: "P-002", Name: "Tuerca", Category: "ferretería",
	})
	require.NoError(t, err)

	require.NoError(t, uc.SoftDelete(context.Background(), created.ID))
	_, err = uc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
