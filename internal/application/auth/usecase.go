package auth

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Invoicing-api/internal/application/dto"
	"github.com/jhoicas/Invoicing-api/internal/domain"
	"github.com/jhoicas/Invoicing-api/internal/domain/entity"
	"github.com/jhoicas/Invoicing-api/internal/domain/repository"
)

// TokenType tipo informado en la respuesta del login.
const TokenType = "bearer"

// contraseña del hash señuelo usado cuando el email no existe
const dummyPassword = "invoicing-api/dummy-password"

// AuthUseCase casos de uso de autenticación: credenciales, identidad por token, registro y login.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher PasswordHasher
	tokens TokenCodec
	now    func() time.Time

	dummyMu   sync.Mutex
	dummyHash string
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, hasher PasswordHasher, tokens TokenCodec) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: tokens, now: time.Now}
}

// NormalizeEmail recorta espacios y pasa a minúsculas.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// AuthenticateByCredentials devuelve el usuario si email y contraseña coinciden.
// Email desconocido y contraseña incorrecta producen el mismo ErrInvalidCredentials;
// con email desconocido se verifica igualmente contra un hash señuelo.
func (uc *AuthUseCase) AuthenticateByCredentials(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := uc.users.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		decoy, err := uc.dummy()
		if err != nil {
			return nil, err
		}
		uc.hasher.Verify(password, decoy)
		return nil, domain.ErrInvalidCredentials
	}
	if !uc.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// ResolveIdentity verifica el token y carga el usuario de su subject.
func (uc *AuthUseCase) ResolveIdentity(ctx context.Context, token string) (*entity.User, error) {
	subject, err := uc.tokens.Verify(token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.users.GetByEmail(ctx, NormalizeEmail(subject))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

// RequireActive rechaza cuentas desactivadas.
func (uc *AuthUseCase) RequireActive(user *entity.User) (*entity.User, error) {
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrInactiveAccount
	}
	return user, nil
}

// Register crea un usuario activo con la contraseña hasheada. Email repetido => ErrDuplicate.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	email := NormalizeEmail(in.Email)
	if email == "" {
		return nil, fmt.Errorf("%w: email requerido", domain.ErrInvalidInput)
	}
	existing, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email ya registrado", domain.ErrDuplicate)
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	var fullName *string
	if in.FullName != nil {
		if name := strings.TrimSpace(*in.FullName); name != "" {
			fullName = &name
		}
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		IsActive:     true,
		CreatedAt:    uc.now().UTC(),
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login autentica y emite un token con el email como subject.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := uc.AuthenticateByCredentials(ctx, in.Username, in.Password)
	if err != nil {
		return nil, err
	}
	token, err := uc.tokens.Issue(user.Email)
	if err != nil {
		return nil, fmt.Errorf("emitir token: %w", err)
	}
	return &dto.TokenResponse{AccessToken: token, TokenType: TokenType}, nil
}

// Me devuelve el perfil del usuario ya resuelto.
func (uc *AuthUseCase) Me(user *entity.User) *dto.UserResponse {
	return toUserResponse(user)
}

// ListUsers lista usuarios sin exponer hashes.
func (uc *AuthUseCase) ListUsers(ctx context.Context, page dto.PageRequest) ([]dto.UserResponse, error) {
	skip, limit, err := page.Resolve()
	if err != nil {
		return nil, err
	}
	users, err := uc.users.List(ctx, limit, skip)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// dummy genera el hash señuelo una vez; si falla se reintenta en la siguiente llamada.
func (uc *AuthUseCase) dummy() (string, error) {
	uc.dummyMu.Lock()
	defer uc.dummyMu.Unlock()
	if uc.dummyHash == "" {
		hash, err := uc.hasher.Hash(dummyPassword)
		if err != nil {
			return "", fmt.Errorf("hash señuelo: %w", err)
		}
		uc.dummyHash = hash
	}
	return uc.dummyHash, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}
