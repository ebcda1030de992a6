package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pedidos-hosteleria/internal/application/assets"
	"github.com/jhoicas/pedidos-hosteleria/internal/application/dto"
	"github.com/jhoicas/pedidos-hosteleria/internal/domain"
	"github.com/jhoicas/pedidos-hosteleria/pkg/logger"
)

// AuthService contrato que necesita AuthHandler; lo implementa *auth.AuthUseCase.
type AuthService interface {
	Register(ctx context.Context, in dto.RegisterRequest, img *assets.File) (*dto.UserResponse, error)
	Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error)
}

// AuthHandler maneja registro y login.
type AuthHandler struct {
	uc  AuthService
	log *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        nombre    formData  string  true   "Nombre"
// @Param        email     formData  string  true   "Email"
// @Param        password  formData  string  true   "Contraseña (mínimo 8)"
// @Param        role      formData  string  false  "manager, worker o supplier"
// @Param        img       formData  file    false  "Avatar"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /users/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	img, closer, err := formImage(c)
	if err != nil {
		return badRequest(c, "imagen inválida")
	}
	defer closeQuietly(closer)

	out, err := h.uc.Register(c.UserContext(), in, img)
	if err != nil {
		// Cualquier fallo de registro que no sea interno es un 400, incluido el email repetido.
		status := statusFor(domain.KindOf(err))
		if status != fiber.StatusInternalServerError {
			status = fiber.StatusBadRequest
		}
		return writeErrorStatus(c, h.log, status, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /users/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		status := statusFor(domain.KindOf(err))
		if status == fiber.StatusUnauthorized {
			status = fiber.StatusBadRequest
		}
		return writeErrorStatus(c, h.log, status, err)
	}
	return c.JSON(out)
}
