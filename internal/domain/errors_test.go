package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/pedidos-hosteleria/internal/domain"
)

func TestIs_ComparaPorKind(t *testing.T) {
	err := domain.NotFound("Producto con ID abc no encontrado")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, "Producto con ID abc no encontrado", err.Error())
}

func TestIs_AtraviesaWrapping(t *testing.T) {
	err := fmt.Errorf("crear pedido: %w", domain.Validation("El pedido debe tener productos"))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	assert.Equal(t, "El pedido debe tener productos", domain.MessageOf(err, "x"))
}

func TestKindOf_ErrorAjenoEsInternal(t *testing.T) {
	err := errors.New("connection refused")

	assert.Equal(t, domain.KindInternal, domain.KindOf(err))
	assert.Equal(t, "fallback", domain.MessageOf(err, "fallback"))
}

func TestInternal_ConservaCausa(t *testing.T) {
	cause := errors.New("timeout")
	err := domain.Internal("guardar pedido", cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, domain.ErrInternal)
	assert.Equal(t, "guardar pedido: timeout", err.Error())
}
