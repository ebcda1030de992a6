package domain

import (
	"errors"
	"fmt"
)

// Kind clasifica un error de dominio. Es el discriminante; el mensaje es solo detalle.
type Kind string

const (
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindForbidden    Kind = "FORBIDDEN"
	KindValidation   Kind = "VALIDATION"
	KindNotFound     Kind = "NOT_FOUND"
	KindConflict     Kind = "CONFLICT"
	KindInternal     Kind = "INTERNAL"
)

// Error error de dominio con tipo cerrado, mensaje para el usuario y causa opcional.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil && e.Message != "":
		return e.Message + ": " + e.Err.Error()
	case e.Err != nil:
		return string(e.Kind) + ": " + e.Err.Error()
	case e.Message != "":
		return e.Message
	default:
		return string(e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is compara por Kind, de modo que errors.Is(err, domain.ErrNotFound) funciona con cualquier mensaje.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Errores de dominio (sin dependencias externas). Sirven como objetivo de errors.Is.
var (
	ErrUnauthorized = &Error{Kind: KindUnauthorized, Message: "no autorizado"}
	ErrForbidden    = &Error{Kind: KindForbidden, Message: "acceso denegado"}
	ErrInvalidInput = &Error{Kind: KindValidation, Message: "entrada inválida"}
	ErrNotFound     = &Error{Kind: KindNotFound, Message: "recurso no encontrado"}
	ErrConflict     = &Error{Kind: KindConflict, Message: "recurso duplicado"}
	ErrInternal     = &Error{Kind: KindInternal, Message: "error interno"}
)

func Unauthorized(msg string) error { return &Error{Kind: KindUnauthorized, Message: msg} }
func Forbidden(msg string) error    { return &Error{Kind: KindForbidden, Message: msg} }
func Validation(msg string) error   { return &Error{Kind: KindValidation, Message: msg} }
func NotFound(msg string) error     { return &Error{Kind: KindNotFound, Message: msg} }
func Conflict(msg string) error     { return &Error{Kind: KindConflict, Message: msg} }

// Validationf construye un error de validación con formato.
func Validationf(format string, args ...any) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Internal envuelve un fallo inesperado de persistencia o almacenamiento.
func Internal(msg string, err error) error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// KindOf devuelve el tipo de un error; cualquier error ajeno al dominio es KindInternal.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// MessageOf devuelve el mensaje de dominio, o fallback si err no es de dominio.
func MessageOf(err error, fallback string) string {
	var de *Error
	if errors.As(err, &de) && de.Message != "" {
		return de.Message
	}
	return fallback
}
