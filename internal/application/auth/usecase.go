package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/backoffice-api/internal/application/dto"
	"github.com/tu-usuario/backoffice-api/internal/domain"
	"github.com/tu-usuario/backoffice-api/internal/domain/authz"
	"github.com/tu-usuario/backoffice-api/internal/domain/entity"
	"github.com/tu-usuario/backoffice-api/internal/domain/repository"
	"github.com/tu-usuario/backoffice-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login, login con
// Google y resolución de permisos/menús para el bootstrap de sesión.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea el password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya existe (sin escribir nada).
// Role, Permissions y Menus se guardan tal cual llegan: aquí no se reconcilia,
// eso ocurre en el update de usuarios.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		IsActive:     true,
		Role:         role,
		Permissions:  in.Permissions,
		Menus:        in.Menus,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	token, err := uc.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.RegisterResponse{
		AccessToken: token,
		User:        *toUserResponse(user),
	}, nil
}

// Login verifica email/password y genera el JWT de sesión.
// Email inexistente y password incorrecto colapsan al mismo
// ErrInvalidCredentials para no permitir enumeración de cuentas.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := uc.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		Username:    user.Name,
		Role:        roleOrDefault(user.Role),
	}, nil
}

// GoogleLogin emite sesión para un perfil de Google. Si el email no existe,
// provisiona la cuenta con password vacío, rol user, permiso dashboard:view y
// menú dashboard. Este camino nunca falla por ausencia del usuario, solo por
// perfil ausente (ErrNoProfile).
func (uc *AuthUseCase) GoogleLogin(ctx context.Context, profile *dto.GoogleProfile) (*dto.LoginResponse, error) {
	if profile == nil || profile.Email == "" {
		return nil, domain.ErrNoProfile
	}
	user, err := uc.userRepo.GetByEmail(ctx, profile.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		now := time.Now()
		name := profile.FirstName
		if profile.LastName != "" {
			name = profile.FirstName + " " + profile.LastName
		}
		user = &entity.User{
			ID:           uuid.New().String(),
			Email:        profile.Email,
			PasswordHash: "", // cuenta solo OAuth
			Provider:     entity.ProviderGoogle,
			ProviderID:   profile.ProviderID,
			Name:         name,
			IsActive:     true,
			Role:         entity.RoleUser,
			Permissions:  []string{"dashboard:view"},
			Menus:        []string{"dashboard"},
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
	}
	token, err := uc.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		Username:    user.Name,
		Role:        roleOrDefault(user.Role),
	}, nil
}

// GetAuthInfo responde "qué puede ver y hacer este usuario" para el bootstrap
// de sesión. Un ID que ya no resuelve es una sesión obsoleta, no un lookup
// fallido: se reporta ErrNotAuthenticated. Los defaults calculados aquí son
// solo de presentación; nunca se persisten sobre el registro.
func (uc *AuthUseCase) GetAuthInfo(ctx context.Context, userID string) (*dto.AuthInfoResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotAuthenticated
	}
	role := roleOrDefault(user.Role)

	effectiveMenus := user.Menus
	if len(effectiveMenus) == 0 {
		effectiveMenus = authz.DefaultMenus(role)
	}
	menus := authz.ResolveMenus(effectiveMenus)

	permissions := user.Permissions
	if len(permissions) == 0 {
		permissions = authz.GenerateDefaultPermissions(role, effectiveMenus)
	}

	return &dto.AuthInfoResponse{
		Permissions: permissions,
		Menus:       menus,
	}, nil
}

// HasPermission informa si el usuario tiene el permiso efectivo indicado.
// Lo usa el middleware de autorización; comparte la resolución de GetAuthInfo.
func (uc *AuthUseCase) HasPermission(ctx context.Context, userID, permission string) (bool, error) {
	info, err := uc.GetAuthInfo(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, p := range info.Permissions {
		if p == permission {
			return true, nil
		}
	}
	return false, nil
}

func (uc *AuthUseCase) issueToken(user *entity.User) (string, error) {
	return jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
}

func roleOrDefault(role string) string {
	if role == "" {
		return entity.RoleUser
	}
	return role
}

func toUserResponse(u *entity.User) *dto.UserResponse {
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
