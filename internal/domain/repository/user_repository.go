package repository

import (
	"context"

	"github.com/tu-usuario/backoffice-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get* retornan (nil, nil) cuando no hay fila; el error se reserva para
// fallos de infraestructura.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	List(ctx context.Context, excludeAdmin bool, limit, offset int) ([]*entity.User, error)
	Delete(ctx context.Context, id string) error
	SoftDelete(ctx context.Context, id string) error
}
