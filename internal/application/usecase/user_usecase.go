package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/backoffice-api/internal/application/dto"
	"github.com/tu-usuario/backoffice-api/internal/domain"
	"github.com/tu-usuario/backoffice-api/internal/domain/authz"
	"github.com/tu-usuario/backoffice-api/internal/domain/entity"
	"github.com/tu-usuario/backoffice-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase aplica reglas de negocio para usuarios. El update es el único
// camino por el que cambian Permissions y Menus; ahí se reconcilian contra la
// gramática y el set de menús antes de persistir.
type UserUseCase struct {
	repo       repository.UserRepository
	strictSync bool
}

// Option configura el UserUseCase.
type Option func(*UserUseCase)

// WithStrictPermissionSync activa el modo estricto: cuando un update trae
// permisos sin menús, los permisos se filtran también contra los menús
// actuales del usuario. Por defecto ese camino solo valida gramática, y un
// permiso válido puede quedar apuntando a un menú ya no concedido.
func WithStrictPermissionSync() Option {
	return func(uc *UserUseCase) { uc.strictSync = true }
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, opts ...Option) *UserUseCase {
	uc := &UserUseCase{repo: repo}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Create crea un usuario (provisión por admin). Permissions y Menus se
// guardan sin reconciliar; se limpian en el siguiente update.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	var hash string
	if in.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = string(h)
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: hash,
		Name:         in.Name,
		IsActive:     true,
		Role:         role,
		Permissions:  in.Permissions,
		Menus:        in.Menus,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return userToResponse(user), nil
}

// GetByID obtiene un usuario por ID. Retorna ErrNotFound si no existe.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return userToResponse(user), nil
}

// List lista usuarios; excludeAdmin filtra las cuentas con rol admin.
func (uc *UserUseCase) List(ctx context.Context, excludeAdmin bool, limit, offset int) (*dto.UserListResponse, error) {
	list, err := uc.repo.List(ctx, excludeAdmin, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *userToResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza un usuario aplicando la reconciliación de permisos/menús.
// Política, en orden de prioridad:
//  1. menus sin permissions → los permisos se regeneran con los defaults del
//     rol EXISTENTE para el nuevo set de menús;
//  2. ambos → se filtran los permisos por los nuevos menús y luego por
//     gramática; lo inconsistente se descarta en silencio;
//  3. solo permissions → solo gramática (más filtro por menús actuales si el
//     modo estricto está activo);
//  4. ninguno → sin cambios en permisos/menús.
//
// Lo malformado nunca es error: se filtra y se sigue. El resto de campos se
// sobreescribe tal cual; un password no vacío pasa por bcrypt.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	switch {
	case in.Menus != nil && in.Permissions == nil:
		user.Permissions = authz.GenerateDefaultPermissions(user.Role, in.Menus)
		user.Menus = in.Menus
	case in.Menus != nil && in.Permissions != nil:
		perms := authz.FilterPermissionsByMenus(in.Permissions, in.Menus)
		user.Permissions = authz.FilterValidPermissions(perms)
		user.Menus = in.Menus
	case in.Permissions != nil:
		perms := authz.FilterValidPermissions(in.Permissions)
		if uc.strictSync {
			perms = authz.FilterPermissionsByMenus(perms, user.Menus)
		}
		user.Permissions = perms
	}

	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Password != nil && *in.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(h)
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	user.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return userToResponse(user), nil
}

// Delete elimina un usuario de forma permanente.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// SoftDelete marca el usuario como eliminado (deleted_at).
func (uc *UserUseCase) SoftDelete(ctx context.Context, id string) error {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SoftDelete(ctx, id)
}

func userToResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Provider:    u.Provider,
		Name:        u.Name,
		IsActive:    u.IsActive,
		Role:        u.Role,
		Permissions: u.Permissions,
		Menus:       u.Menus,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
