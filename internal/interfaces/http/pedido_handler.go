package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pedidos-hosteleria/internal/application/dto"
	"github.com/jhoicas/pedidos-hosteleria/pkg/logger"
)

// PedidoService contrato que necesita PedidoHandler; lo implementa *pedidos.PedidoUseCase.
type PedidoService interface {
	CreatePedido(ctx context.Context, userID string, in dto.CreatePedidoRequest) (*dto.CreatePedidoResponse, error)
	Historial(ctx context.Context, userID string) ([]dto.PedidoResponse, error)
	Albaran(ctx context.Context, userID, pedidoID string) ([]byte, string, error)
}

// PedidoHandler maneja los pedidos del encargado autenticado.
type PedidoHandler struct {
	uc  PedidoService
	log *logger.Logger
}

// NewPedidoHandler construye el handler.
func NewPedidoHandler(uc PedidoService, log *logger.Logger) *PedidoHandler {
	return &PedidoHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear pedido (el precio de cada línea lo fija el catálogo)
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePedidoRequest  true  "Líneas: product + quantity"
// @Success      201   {object}  dto.CreatePedidoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /pedidos/pedido [post]
func (h *PedidoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	user := GetUser(c)
	if user == nil {
		return unauthorized(c, MsgNoAutorizado)
	}
	out, err := h.uc.CreatePedido(c.UserContext(), user.ID, in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Historial godoc
// @Summary      Historial de pedidos del usuario (más recientes primero)
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PedidoResponse
// @Router       /pedidos/historial [get]
func (h *PedidoHandler) Historial(c *fiber.Ctx) error {
	user := GetUser(c)
	if user == nil {
		return unauthorized(c, MsgNoAutorizado)
	}
	out, err := h.uc.Historial(c.UserContext(), user.ID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Albaran godoc
// @Summary      Descargar albarán PDF de un pedido propio
// @Tags         pedidos
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /pedidos/{id}/albaran [get]
func (h *PedidoHandler) Albaran(c *fiber.Ctx) error {
	user := GetUser(c)
	if user == nil {
		return unauthorized(c, MsgNoAutorizado)
	}
	pdf, filename, err := h.uc.Albaran(c.UserContext(), user.ID, c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdf)
}
