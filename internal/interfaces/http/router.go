package http

import (
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jhoicas/pedidos-hosteleria/internal/application/dto"
	"github.com/jhoicas/pedidos-hosteleria/internal/domain/entity"
	"github.com/jhoicas/pedidos-hosteleria/pkg/logger"
)

// MsgRouteNotFound respuesta de cualquier ruta sin match.
const MsgRouteNotFound = "Route not found"

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Auth     AuthService
	Products ProductService
	Pedidos  PedidoService
	Tokens   TokenVerifier
	Resolver SubjectResolver
	// Metrics handler de /metrics; nil desactiva el endpoint.
	Metrics nethttp.Handler
	AppName string
	Log     *logger.Logger
}

// Router registra las rutas de la API. Debe llamarse después de los middlewares globales:
// el último handler responde 404 a todo lo que no coincidió.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	// Usuarios (público)
	users := app.Group("/users")
	authHandler := NewAuthHandler(deps.Auth, log)
	users.Post("/register", authHandler.Register)
	users.Post("/login", authHandler.Login)

	// Auth y rol van por ruta, no en el grupo: una ruta inexistente bajo el prefijo
	// debe llegar al 404 sin pasar por el middleware.
	authenticated := AuthMiddleware(deps.Tokens, deps.Resolver, log)
	supplierOnly := RequireRole(entity.RoleSupplier, log)
	managerOnly := RequireRole(entity.RoleManager, log)

	// Productos: lectura para cualquier usuario autenticado, escritura solo supplier
	products := app.Group("/products")
	productHandler := NewProductHandler(deps.Products, log)
	products.Get("/", authenticated, productHandler.List)
	products.Get("/name/:nombre", authenticated, productHandler.SearchByName)
	products.Get("/category/:categoria", authenticated, productHandler.SearchByCategory)
	products.Post("/", authenticated, supplierOnly, productHandler.Create)
	products.Patch("/:id", authenticated, supplierOnly, productHandler.Update)
	products.Delete("/:id", authenticated, supplierOnly, productHandler.Delete)

	// Pedidos: solo manager
	pedidos := app.Group("/pedidos")
	pedidoHandler := NewPedidoHandler(deps.Pedidos, log)
	pedidos.Post("/pedido", authenticated, managerOnly, pedidoHandler.Create)
	pedidos.Get("/historial", authenticated, managerOnly, pedidoHandler.Historial)
	pedidos.Get("/:id/albaran", authenticated, managerOnly, pedidoHandler.Albaran)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: MsgRouteNotFound})
	})
}
