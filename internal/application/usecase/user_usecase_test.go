package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/backoffice-api/internal/application/dto"
	"github.com/tu-usuario/backoffice-api/internal/application/usecase"
	"github.com/tu-usuario/backoffice-api/internal/domain"
	"github.com/tu-usuario/backoffice-api/internal/domain/entity"
	"golang.org/x/crypto/bcrypt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del puerto UserRepository
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	byID        map[string]*entity.User
	softDeleted map[string]bool
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: map[string]*entity.User{}, softDeleted: map[string]bool{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok || r.softDeleted[id] {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for id, u := range r.byID {
		if u.Email == email && !r.softDeleted[id] {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(_ context.Context, u *entity.User) error {
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *memUserRepo) List(_ context.Context, excludeAdmin bool, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for id, u := range r.byID {
		if r.softDeleted[id] {
			continue
		}
		if excludeAdmin && u.Role == entity.RoleAdmin {
			continue
		}
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func (r *memUserRepo) SoftDelete(_ context.Context, id string) error {
	r.softDeleted[id] = true
	return nil
}

func ptr[T any](v T) *T { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Reconciliación de permisos/menús en Update
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: menús sin permisos → los permisos se regeneran con los defaults del
// rol existente para el nuevo set de menús.
func TestUpdate_MenusSinPermisos_RegeneraDefaults(t *testing.T) {
	repo := newMemUserRepo()
	repo.byID["u1"] = &entity.User{
		ID: "u1", Email: "u@example.com", Role: "user",
		Permissions: []string{"dashboard:view"},
		Menus:       []string{"dashboard"},
	}
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Update(context.Background(), "u1", dto.UpdateUserRequest{
		Menus: []string{"inventory"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"inventory"}, out.Menus)
	assert.Equal(t, []string{"inventory:view", "inventory:create", "inventory:edit"}, out.Permissions,
		"rol user no recibe delete")
}

// Caso 1 con rol en el mismo update: los defaults salen del rol EXISTENTE,
// no del rol que llega en la petición.
func TestUpdate_MenusYRolJuntos_UsaRolExistente(t *testing.T) {
	repo := newMemUserRepo()
	repo.byID["u1"] = &entity.User{ID: "u1", Email: "u@example.com", Role: "user"}
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Update(context.Background(), "u1", dto.UpdateUserRequest{
		Role:  ptr("admin"),
		Menus: []string{"orders"},
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", out.Role)
	assert.Equal(t, []string{"orders:view", "orders:create", "orders:edit"}, out.Permissions,
		"los defaults se derivan del rol previo al merge")
}

// Caso 2: ambos → primero filtro por menús, luego gramática; todo lo
// inconsistente se descarta en silencio.
func TestUpdate_AmbosSuministrados_FiltraPorMenusYGramatica(t *testing.T) {
	repo := newMemUserRepo()
	repo.byID["u1"] = &entity.User{ID: "u1", Email: "u@example.com", Role: "admin"}
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Update(context.Background(), "u1", dto.UpdateUserRequest{
		Menus:       []string{"dashboard"},
		Permissions: []string{"dashboard:view", "users:edit", "dashboard:bogus"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"dashboard:view"}, out.Permissions,
		"users:edit cae por menús, dashboard:bogus por gramática")
	assert.Equal(t, []string{"dashboard"}, out.Menus)
}

// Caso 3: solo permisos → solo gramática; la consistencia con los menús
// actuales NO se re-chequea (asimetría documentada del diseño original).
func TestUpdate_SoloPermisos_SoloGramatica(t *testing.T) {
	repo := newMemUserRepo()
	repo.byID["u1"] = &entity.User{
		ID: "u1", Email: "u@example.com", Role: "user",
		Menus: []string{"dashboard"},
	}
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Update(context.Background(), "u1", dto.UpdateUserRequest{
		Permissions: []string{"orders:view", "orders:bogus", "dashboard:view"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"orders:view", "dashboard:view"}, out.Permissions,
		"orders:view sobrevive aunque orders no esté en los menús del usuario")
	assert.Equal(t, []string{"dashboard"}, out.Menus, "los menús no cambian")
}

// Caso 3 en modo estricto: además se filtra contra los menús actuales.
func TestUpdate_SoloPermisos_ModoEstricto(t *testing.T) {
	repo := newMemUserRepo()
	repo.byID["u1"] = &entity.User{
		ID: "u1", Email: "u@example.com", Role: "user",
		Menus: []string{"dashboard"},
	}
	uc := usecase.NewUserUseCase(repo, usecase.WithStrictPermissionSync())

	out, err := uc.Update(context.Background(), "u1", dto.UpdateUserRequest{
		Permissions: []string{"orders:view", "dashboard:view"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"dashboard:view"}, out.Permissions,
		"en modo estricto orders:view cae por no estar en los menús actuales")
}

// Caso 4: ninguno → permisos y menús intactos.
func TestUpdate_SinPermisosNiMenus_NoLosToca(t *testing.T) {
	repo := newMemUserRepo()
	repo.byID["u1"] = &entity.User{
		ID: "u1", Email: "u@example.com", Role: "user",
		Permissions: []string{"dashboard:bogus"}, // dato sucio heredado de un create
		Menus:       []string{"dashboard"},
	}
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Update(context.Background(), "u1", dto.UpdateUserRequest{
		Name: ptr("Nuevo Nombre"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Nuevo Nombre", out.Name)
	assert.Equal(t, []string{"dashboard:bogus"}, out.Permissions,
		"sin cambio de permisos/menús no hay reconciliación")
}

// Slice vacío cuenta como "enviado": menús vacíos regeneran permisos vacíos.
func TestUpdate_MenusVacios_PermisosVacios(t *testing.T) {
	repo := newMemUserRepo()
	repo.byID["u1"] = &entity.User{
		ID: "u1", Email: "u@example.com", Role: "admin",
		Permissions: []string{"dashboard:view"},
		Menus:       []string{"dashboard"},
	}
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Update(context.Background(), "u1", dto.UpdateUserRequest{
		Menus: []string{},
	})
	require.NoError(t, err)
	assert.Empty(t, out.Menus)
	assert.Empty(t, out.Permissions)
}

// El dato sucio del create se limpia en el siguiente update que toque permisos.
func TestCreateSinValidar_UpdatePosteriorLimpia(t *testing.T) {
	repo := newMemUserRepo()
	uc := usecase.NewUserUseCase(repo)

	created, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Email: "u@example.com", Password: "secreto123", Name: "U",
		Permissions: []string{"dashboard:bogus", "users:view"},
		Menus:       []string{"users"},
	})
	require.NoError(t, err)
	assert.Contains(t, created.Permissions, "dashboard:bogus",
		"el create no valida permisos")

	out, err := uc.Update(context.Background(), created.ID, dto.UpdateUserRequest{
		Permissions: []string{"dashboard:bogus", "users:view"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"users:view"}, out.Permissions)
}

// ──────────────────────────────────────────────────────────────────────────────
// Resto de campos del Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_PasswordSeHashea(t *testing.T) {
	repo := newMemUserRepo()
	repo.byID["u1"] = &entity.User{ID: "u1", Email: "u@example.com", Role: "user"}
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Update(context.Background(), "u1", dto.UpdateUserRequest{
		Password: ptr("nueva-clave"),
	})
	require.NoError(t, err)

	stored := repo.byID["u1"]
	assert.NotEqual(t, "nueva-clave", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("nueva-clave")))
}

func TestUpdate_PasswordVacioNoPisaElHash(t *testing.T) {
	repo := newMemUserRepo()
	repo.byID["u1"] = &entity.User{ID: "u1", Email: "u@example.com", Role: "user", PasswordHash: "hash-previo"}
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Update(context.Background(), "u1", dto.UpdateUserRequest{
		Password: ptr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "hash-previo", repo.byID["u1"].PasswordHash)
}

func TestUpdate_UsuarioInexistente(t *testing.T) {
	uc := usecase.NewUserUseCase(newMemUserRepo())
	_, err := uc.Update(context.Background(), "fantasma", dto.UpdateUserRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / List / SoftDelete
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_EmailDuplicado(t *testing.T) {
	repo := newMemUserRepo()
	repo.byID["u1"] = &entity.User{ID: "u1", Email: "u@example.com"}
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Email: "u@example.com", Password: "x", Name: "X",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestList_ExcludeAdmin(t *testing.T) {
	repo := newMemUserRepo()
	repo.byID["u1"] = &entity.User{ID: "u1", Email: "a@example.com", Role: "admin"}
	repo.byID["u2"] = &entity.User{ID: "u2", Email: "b@example.com", Role: "user"}
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.List(context.Background(), true, 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "b@example.com", out.Items[0].Email)
}

func TestSoftDelete_ElRegistroDejaDeResolver(t *testing.T) {
	repo := newMemUserRepo()
	repo.byID["u1"] = &entity.User{ID: "u1", Email: "u@example.com"}
	uc := usecase.NewUserUseCase(repo)

	require.NoError(t, uc.SoftDelete(context.Background(), "u1"))

	_, err := uc.GetByID(context.Background(), "u1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.SoftDelete(context.Background(), "u1")
	assert.ErrorIs(t, err, domain.ErrNotFound, "doble soft delete reporta not found")
}
