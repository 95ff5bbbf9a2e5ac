package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/backoffice-api/internal/domain"
	"github.com/tu-usuario/backoffice-api/internal/domain/entity"
	"github.com/tu-usuario/backoffice-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

const inventoryColumns = `id, product_no, name, category, stock, price, created_at, updated_at, deleted_at`

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL.
// price es NUMERIC y llega como decimal.Decimal vía el codec registrado en el pool.
type InventoryRepo struct {
	pool *pgxpool.Pool
}

// NewInventoryRepository construye el adaptador de persistencia para inventario.
func NewInventoryRepository(pool *pgxpool.Pool) *InventoryRepo {
	return &InventoryRepo{pool: pool}
}

// Create persiste una nueva referencia de inventario.
func (r *InventoryRepo) Create(ctx context.Context, item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory (id, product_no, name, category, stock, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		item.ID, item.ProductNo, item.Name, item.Category, item.Stock, item.Price,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetByID obtiene una referencia por ID (excluye soft-deleted).
func (r *InventoryRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE id = $1 AND deleted_at IS NULL`
	return r.scanOne(ctx, query, id)
}

// GetByProductNo obtiene una referencia por número de producto.
func (r *InventoryRepo) GetByProductNo(ctx context.Context, productNo string) (*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE product_no = $1 AND deleted_at IS NULL`
	return r.scanOne(ctx, query, productNo)
}

func (r *InventoryRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&it.ID, &it.ProductNo, &it.Name, &it.Category, &it.Stock, &it.Price,
		&it.CreatedAt, &it.UpdatedAt, &it.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &it, nil
}

// List lista referencias con paginación.
func (r *InventoryRepo) List(ctx context.Context, limit, offset int) ([]*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE deleted_at IS NULL ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(
			&it.ID, &it.ProductNo, &it.Name, &it.Category, &it.Stock, &it.Price,
			&it.CreatedAt, &it.UpdatedAt, &it.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Update actualiza una referencia existente.
func (r *InventoryRepo) Update(ctx context.Context, item *entity.InventoryItem) error {
	query := `
		UPDATE inventory SET name = $2, category = $3, stock = $4, price = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.pool.Exec(ctx, query,
		item.ID, item.Name, item.Category, item.Stock, item.Price, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory: %w", err)
	}
	return nil
}

// Delete elimina una referencia de forma permanente.
func (r *InventoryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM inventory WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory: %w", err)
	}
	return nil
}

// SoftDelete marca la referencia como eliminada.
func (r *InventoryRepo) SoftDelete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `UPDATE inventory SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("soft delete inventory: %w", err)
	}
	return nil
}
