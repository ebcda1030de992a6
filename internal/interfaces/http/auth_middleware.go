package http

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pedidos-hosteleria/internal/application/auth"
	"github.com/jhoicas/pedidos-hosteleria/internal/application/dto"
	"github.com/jhoicas/pedidos-hosteleria/internal/domain/entity"
	"github.com/jhoicas/pedidos-hosteleria/pkg/jwt"
	"github.com/jhoicas/pedidos-hosteleria/pkg/logger"
)

// LocalUser clave de c.Locals con el *entity.User autenticado.
const LocalUser = "user"

// Mensajes del pipeline de autenticación. Distintas causas internas se agrupan en
// estos mensajes; el detalle solo se registra en el log.
const (
	MsgNoAutorizado    = "No autorizado"
	MsgTokenInvalido   = "Token invalido o sesión expirada"
	MsgUsuarioInvalido = "Token o usuario invalidos"
	MsgAccesoDenegado  = "Acceso denegado"
	MsgErrorDePermisos = "Error de permisos"
)

// TokenVerifier valida la credencial y devuelve sus claims.
type TokenVerifier interface {
	Verify(token string) (*jwt.Claims, error)
}

// SubjectResolver carga el usuario vigente; (nil, nil) si ya no existe.
type SubjectResolver interface {
	Resolve(ctx context.Context, id string) (*entity.User, error)
}

// RoleCheck predicado del control de acceso.
type RoleCheck func(subject any, role string) (bool, error)

// AuthMiddleware valida el token y carga el usuario en c.Locals(LocalUser).
//
//	sin cabecera Authorization      -> 401 "No autorizado"
//	token inválido o expirado       -> 401 "Token invalido o sesión expirada"
//	usuario del token ya no existe  -> 401 "Token o usuario invalidos"
func AuthMiddleware(verifier TokenVerifier, resolver SubjectResolver, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return unauthorized(c, MsgNoAutorizado)
		}
		// El token es lo que sigue al primer espacio ("Bearer <token>").
		_, token, _ := strings.Cut(header, " ")

		claims, err := verifier.Verify(strings.TrimSpace(token))
		if err != nil {
			log.Debug().Err(err).Str("path", c.Path()).Msg("token rechazado")
			return unauthorized(c, MsgTokenInvalido)
		}

		user, err := resolver.Resolve(c.UserContext(), claims.UserID)
		if err != nil {
			log.Error().Err(err).Str("user_id", claims.UserID).Msg("no se pudo resolver el usuario del token")
			return unauthorized(c, MsgTokenInvalido)
		}
		if user == nil {
			return unauthorized(c, MsgUsuarioInvalido)
		}
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// RequireRole deja pasar solo al usuario con exactamente ese rol. Debe ir después de AuthMiddleware.
func RequireRole(role string, log *logger.Logger) fiber.Handler {
	return RequireRoleWith(role, auth.CheckRole, log)
}

// RequireRoleWith como RequireRole con un predicado propio. Cualquier fallo al evaluarlo,
// incluido un pánico, deniega el acceso.
func RequireRoleWith(role string, check RoleCheck, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		allowed, err := evalRole(check, c.Locals(LocalUser), role)
		if err != nil {
			log.Error().Err(err).Str("role", role).Str("path", c.Path()).Msg("fallo evaluando permisos")
			return forbidden(c, MsgErrorDePermisos)
		}
		if !allowed {
			return forbidden(c, MsgAccesoDenegado)
		}
		return c.Next()
	}
}

func evalRole(check RoleCheck, subject any, role string) (allowed bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			allowed, err = false, fmt.Errorf("panic en control de acceso: %v", r)
		}
	}()
	return check(subject, role)
}

// GetUser devuelve el usuario autenticado (después del middleware de auth) o nil.
func GetUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalUser).(*entity.User)
	return u
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: msg})
}

func forbidden(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: msg})
}
