package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/feedme-api/internal/application/dto"
	"github.com/jhoicas/feedme-api/internal/application/session"
	"github.com/jhoicas/feedme-api/internal/domain"
	"github.com/jhoicas/feedme-api/internal/domain/entity"
	"github.com/jhoicas/feedme-api/internal/domain/rbac"
	"github.com/jhoicas/feedme-api/internal/domain/repository"
	"github.com/jhoicas/feedme-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: signup, alta de personal y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Signup registra una cuenta pública: siempre rol client, sin sucursal.
// Devuelve ErrEmailAlreadyExists si el email ya está tomado.
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.SignupRequest) (*dto.UserResponse, error) {
	existing, _ := uc.userRepo.GetByEmail(ctx, in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	user, err := uc.newUser(in.Username, in.Email, in.Password, in.Name, rbac.RoleClient, "")
	if err != nil {
		return nil, err
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// CreateStaff da de alta una cuenta de personal con rol del conjunto cerrado
// y sucursal asignada. Solo lo invocan pantallas de admin/director.
func (uc *AuthUseCase) CreateStaff(ctx context.Context, in dto.CreateStaffRequest) (*dto.UserResponse, error) {
	role, ok := rbac.Parse(in.Role)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.GetByEmail(ctx, in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	user, err := uc.newUser(in.Username, in.Email, in.Password, in.Name, role, in.RestaurantID)
	if err != nil {
		return nil, err
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Login verifica email/password, genera JWT y arma la sesión. La respuesta
// incluye la home canónica del rol para que el cliente navegue a su pantalla.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, *session.Session, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, nil, domain.ErrUnauthorized
	}
	if user.Status != entity.UserStatusActive {
		return nil, nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.RestaurantID, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, nil, err
	}
	resp := &dto.LoginResponse{
		Token:      token,
		User:       *ToUserResponse(user),
		RedirectTo: user.Role.HomeRoute(),
	}
	return resp, session.FromUser(user), nil
}

func (uc *AuthUseCase) newUser(username, email, password, name string, role rbac.Role, restaurantID string) (*entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = username
	}
	now := time.Now()
	return &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		RestaurantID: restaurantID,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// ToUserResponse mapea la entidad a su DTO (sin password).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		Name:         u.Name,
		Role:         string(u.Role),
		RestaurantID: u.RestaurantID,
		Status:       u.Status,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
