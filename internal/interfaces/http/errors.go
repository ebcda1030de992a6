package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pedidos-hosteleria/internal/application/dto"
	"github.com/jhoicas/pedidos-hosteleria/internal/domain"
	"github.com/jhoicas/pedidos-hosteleria/pkg/logger"
)

// MsgInternal mensaje genérico para fallos internos; el detalle solo va al log.
const MsgInternal = "Error interno del servidor"

// statusFor traduce el tipo de error de dominio a código HTTP.
func statusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindUnauthorized:
		return fiber.StatusUnauthorized
	case domain.KindForbidden:
		return fiber.StatusForbidden
	case domain.KindValidation:
		return fiber.StatusBadRequest
	case domain.KindNotFound:
		return fiber.StatusNotFound
	case domain.KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// writeError responde con el código que corresponde al tipo del error.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	return writeErrorStatus(c, log, statusFor(domain.KindOf(err)), err)
}

// writeErrorStatus responde con un código fijo; lo usan los endpoints cuyo contrato
// no sigue el mapeo general (registro y login devuelven 400).
func writeErrorStatus(c *fiber.Ctx, log *logger.Logger, status int, err error) error {
	kind := domain.KindOf(err)
	msg := domain.MessageOf(err, MsgInternal)
	if kind == domain.KindInternal {
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
		msg = MsgInternal
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: string(kind), Message: msg})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: string(domain.KindValidation), Message: msg})
}

// ErrorHandler manejador de errores de Fiber para lo que no responden los handlers
// (rutas sin match, cuerpos ilegibles, pánicos recuperados).
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code := "HTTP_ERROR"
			switch fe.Code {
			case fiber.StatusNotFound:
				code = string(domain.KindNotFound)
			case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
				code = string(domain.KindValidation)
			}
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
		}
		return writeError(c, log, err)
	}
}
