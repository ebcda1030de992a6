package auth

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/pedidos-hosteleria/internal/application/assets"
	"github.com/jhoicas/pedidos-hosteleria/internal/application/dto"
	"github.com/jhoicas/pedidos-hosteleria/internal/application/ports"
	"github.com/jhoicas/pedidos-hosteleria/internal/domain"
	"github.com/jhoicas/pedidos-hosteleria/internal/domain/entity"
	"github.com/jhoicas/pedidos-hosteleria/internal/domain/repository"
	"github.com/jhoicas/pedidos-hosteleria/pkg/logger"
)

// Mensajes visibles para el usuario.
const (
	MsgUserExists       = "El usuario ya existe"
	MsgInvalidLogin     = "Contraseña o usuario incorrecto"
	MsgRegisterRequired = "Nombre, email y contraseña son obligatorios"
)

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	users   repository.UserRepository
	store   ports.AssetStore
	cleaner *assets.Cleaner
	tokens  *TokenService
	log     *logger.Logger
	now     func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	users repository.UserRepository,
	store ports.AssetStore,
	cleaner *assets.Cleaner,
	tokens *TokenService,
	log *logger.Logger,
) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{
		users:   users,
		store:   store,
		cleaner: cleaner,
		tokens:  tokens,
		log:     log.Component("auth"),
		now:     time.Now,
	}
}

// Register crea un usuario. El avatar se sube antes de validar; si el registro falla
// después de subirlo, la imagen se programa para borrado.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest, img *assets.File) (*dto.UserResponse, error) {
	var imageURL string
	if img != nil {
		if err := img.ValidateExtension(); err != nil {
			return nil, err
		}
		url, err := uc.store.Upload(ctx, assets.FolderUsers, img.Filename, img.Content)
		if err != nil {
			return nil, fmt.Errorf("subir avatar: %w", err)
		}
		imageURL = url
	}

	user, err := uc.register(ctx, in, imageURL)
	if err != nil {
		uc.cleaner.DeleteAsset(imageURL)
		return nil, err
	}
	uc.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("usuario registrado")
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

func (uc *AuthUseCase) register(ctx context.Context, in dto.RegisterRequest, imageURL string) (*entity.User, error) {
	now := uc.now()
	user := &entity.User{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Role:      in.Role,
		Image:     imageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	user.Normalize()

	existing, err := uc.users.GetByEmail(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if existing != nil {
		return nil, domain.Conflict(MsgUserExists)
	}

	if err := validateRegistration(user, in.Password); err != nil {
		return nil, err
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = hash

	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func validateRegistration(u *entity.User, password string) error {
	if u.Name == "" || u.Email == "" || password == "" {
		return domain.Validation(MsgRegisterRequired)
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return domain.Validation("Email inválido")
	}
	if len(password) < entity.MinPasswordLength {
		return domain.Validationf("La contraseña debe tener al menos %d caracteres", entity.MinPasswordLength)
	}
	if !entity.ValidRole(u.Role) {
		return domain.Validationf("Rol inválido: %s", u.Role)
	}
	return nil
}

// Login verifica email/password y retorna token + usuario. Email desconocido y
// contraseña incorrecta producen el mismo error.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	// Register guarda el email recortado; se busca igual.
	user, err := uc.users.GetByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil || !CheckPassword(user.PasswordHash, in.Password) {
		return nil, domain.Unauthorized(MsgInvalidLogin)
	}
	token, err := uc.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("emitir token: %w", err)
	}
	return &dto.LoginResponse{Token: token, User: dto.ToUserResponse(user)}, nil
}
