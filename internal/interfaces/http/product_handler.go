package http

import (
	"context"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pedidos-hosteleria/internal/application/assets"
	"github.com/jhoicas/pedidos-hosteleria/internal/application/dto"
	"github.com/jhoicas/pedidos-hosteleria/pkg/logger"
)

// ProductService contrato que necesita ProductHandler; lo implementa *usecase.ProductUseCase.
type ProductService interface {
	List(ctx context.Context) ([]dto.ProductResponse, error)
	SearchByName(ctx context.Context, term string) ([]dto.ProductResponse, error)
	SearchByCategory(ctx context.Context, term string) ([]dto.ProductResponse, error)
	Create(ctx context.Context, in dto.CreateProductRequest, img *assets.File) (*dto.ProductResponse, error)
	Update(ctx context.Context, id string, in dto.UpdateProductRequest, img *assets.File) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id string) (*dto.DeleteProductResponse, error)
}

// ProductHandler maneja las peticiones HTTP del catálogo (protegido).
type ProductHandler struct {
	uc  ProductService
	log *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc ProductService, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// SearchByName godoc
// @Summary      Buscar productos por nombre (parcial, sin distinguir mayúsculas)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        nombre  path  string  true  "Término"
// @Success      200  {array}  dto.ProductResponse
// @Router       /products/name/{nombre} [get]
func (h *ProductHandler) SearchByName(c *fiber.Ctx) error {
	out, err := h.uc.SearchByName(c.UserContext(), pathParam(c, "nombre"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// SearchByCategory godoc
// @Summary      Buscar productos por categoría
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        categoria  path  string  true  "Término"
// @Success      200  {array}  dto.ProductResponse
// @Router       /products/category/{categoria} [get]
func (h *ProductHandler) SearchByCategory(c *fiber.Ctx) error {
	out, err := h.uc.SearchByCategory(c.UserContext(), pathParam(c, "categoria"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        nombre        formData  string  true  "Nombre"
// @Param        distribuidor  formData  string  true  "Makro, Comcarcia, Coca cola, Fruteria Pepe"
// @Param        precio        formData  number  true  "Precio unitario"
// @Param        categoria     formData  string  true  "Bebidas, Comida, Limpieza"
// @Param        img           formData  file    true  "Imagen"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	price, err := parsePrice(c.FormValue("precio"))
	if err != nil || price == nil {
		return badRequest(c, "precio inválido")
	}
	in := dto.CreateProductRequest{
		Name:        c.FormValue("nombre"),
		Distributor: c.FormValue("distribuidor"),
		Price:       *price,
		Category:    c.FormValue("categoria"),
	}
	img, closer, err := formImage(c)
	if err != nil {
		return badRequest(c, "imagen inválida")
	}
	defer closeQuietly(closer)

	out, err := h.uc.Create(c.UserContext(), in, img)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto (campos opcionales)
// @Tags         products
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /products/{id} [patch]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	in.Name = optionalForm(c, "nombre")
	in.Distributor = optionalForm(c, "distribuidor")
	in.Category = optionalForm(c, "categoria")
	price, err := parsePrice(c.FormValue("precio"))
	if err != nil {
		return badRequest(c, "precio inválido")
	}
	in.Price = price

	img, closer, err := formImage(c)
	if err != nil {
		return badRequest(c, "imagen inválida")
	}
	defer closeQuietly(closer)

	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in, img)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.DeleteProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// pathParam devuelve el parámetro de ruta ya decodificado ("Coca%20cola" -> "Coca cola").
func pathParam(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

func optionalForm(c *fiber.Ctx, key string) *string {
	v := c.FormValue(key)
	if v == "" {
		return nil
	}
	return &v
}

// parsePrice nil si el campo no se envió.
func parsePrice(s string) (*decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(strings.Replace(s, ",", ".", 1))
	if err != nil {
		return nil, err
	}
	return &d, nil
}
