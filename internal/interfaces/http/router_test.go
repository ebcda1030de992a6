package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pedidos-hosteleria/internal/application/auth"
	"github.com/jhoicas/pedidos-hosteleria/internal/application/dto"
	"github.com/jhoicas/pedidos-hosteleria/internal/domain"
	"github.com/jhoicas/pedidos-hosteleria/internal/domain/entity"
	"github.com/jhoicas/pedidos-hosteleria/internal/infrastructure/metrics"
	apphttp "github.com/jhoicas/pedidos-hosteleria/internal/interfaces/http"
	"github.com/jhoicas/pedidos-hosteleria/internal/mocks"
	"github.com/jhoicas/pedidos-hosteleria/pkg/logger"
)

var supplier = &entity.User{ID: "00000000-0000-0000-0000-000000000003", Email: "ventas@makro.test", Role: entity.RoleSupplier}

type apiFixture struct {
	app      *fiber.App
	auth     *mocks.MockAuthService
	products *mocks.MockProductService
	pedidos  *mocks.MockPedidoService
	metrics  *metrics.Metrics
}

func newAPI(t *testing.T) *apiFixture {
	t.Helper()
	f := &apiFixture{
		auth:     &mocks.MockAuthService{},
		products: &mocks.MockProductService{},
		pedidos:  &mocks.MockPedidoService{},
		metrics:  metrics.New(),
	}
	log := logger.Nop()
	f.app = fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(log)})
	f.app.Use(apphttp.RequestLogger(log, f.metrics))
	apphttp.Router(f.app, apphttp.RouterDeps{
		Auth:     f.auth,
		Products: f.products,
		Pedidos:  f.pedidos,
		Tokens:   testTokens(),
		Resolver: auth.NewSubjectResolver(mocks.NewUserRepo(manager, worker, supplier)),
		Metrics:  f.metrics.Handler(),
		AppName:  "pedidos-test",
		Log:      log,
	})
	return f
}

func (f *apiFixture) do(t *testing.T, method, path, authHeader string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if authHeader != "" {
		req.Header.Set(fiber.HeaderAuthorization, authHeader)
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRouter_RutaInexistente_Retorna404(t *testing.T) {
	f := newAPI(t)

	resp := f.do(t, http.MethodGet, "/no-existe", "", nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, apphttp.MsgRouteNotFound, decodeError(t, resp).Message)
}

func TestRouter_RutaInexistenteBajoGrupoProtegido_Retorna404(t *testing.T) {
	f := newAPI(t)
	cases := []struct {
		name, method, path, auth string
	}{
		{"pedidos sin token", http.MethodGet, "/pedidos/no-existe", ""},
		{"pedidos con worker", http.MethodGet, "/pedidos/no-existe", bearer(t, worker)},
		{"raiz de pedidos", http.MethodGet, "/pedidos", ""},
		{"products anidado", http.MethodGet, "/products/a/b/c", ""},
		{"metodo sin ruta", http.MethodPut, "/products/p-1", bearer(t, supplier)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := f.do(t, tc.method, tc.path, tc.auth, nil)

			assert.Equal(t, http.StatusNotFound, resp.StatusCode)
			assert.Equal(t, apphttp.MsgRouteNotFound, decodeError(t, resp).Message)
		})
	}
	f.pedidos.AssertNotCalled(t, "Historial", mock.Anything, mock.Anything)
}

func TestRouter_Health(t *testing.T) {
	f := newAPI(t)

	resp := f.do(t, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))
}

func TestRouter_MetricsExponeContadores(t *testing.T) {
	f := newAPI(t)
	f.do(t, http.MethodGet, "/health", "", nil)

	resp := f.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "pedidos_http_requests_total")
}

func TestLogin_CredencialesIncorrectas_Retorna400(t *testing.T) {
	f := newAPI(t)
	in := dto.LoginRequest{Email: "lucia@bar.test", Password: "mala-clave"}
	f.auth.On("Login", mock.Anything, in).Return(nil, domain.Unauthorized(auth.MsgInvalidLogin))

	resp := f.do(t, http.MethodPost, "/users/login", "", in)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, auth.MsgInvalidLogin, decodeError(t, resp).Message)
}

func TestLogin_OK(t *testing.T) {
	f := newAPI(t)
	in := dto.LoginRequest{Email: "lucia@bar.test", Password: "secreta123"}
	f.auth.On("Login", mock.Anything, in).Return(&dto.LoginResponse{Token: "tok", User: dto.UserResponse{ID: manager.ID}}, nil)

	resp := f.do(t, http.MethodPost, "/users/login", "", in)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "tok", out.Token)
}

func TestRegister_EmailRepetido_Retorna400(t *testing.T) {
	f := newAPI(t)
	in := dto.RegisterRequest{Name: "Lucía", Email: "lucia@bar.test", Password: "secreta123"}
	f.auth.On("Register", mock.Anything, in, mock.Anything).Return(nil, domain.Conflict(auth.MsgUserExists))

	resp := f.do(t, http.MethodPost, "/users/register", "", in)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, auth.MsgUserExists, decodeError(t, resp).Message)
}

func TestRegister_OK_Retorna201(t *testing.T) {
	f := newAPI(t)
	in := dto.RegisterRequest{Name: "Lucía", Email: "nueva@bar.test", Password: "secreta123", Role: entity.RoleManager}
	f.auth.On("Register", mock.Anything, in, mock.Anything).Return(&dto.UserResponse{ID: "u-1", Email: in.Email}, nil)

	resp := f.do(t, http.MethodPost, "/users/register", "", in)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestProducts_SinToken_Retorna401(t *testing.T) {
	f := newAPI(t)

	resp := f.do(t, http.MethodGet, "/products", "", nil)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	f.products.AssertNotCalled(t, "List", mock.Anything)
}

func TestProducts_CualquierRolLee(t *testing.T) {
	f := newAPI(t)
	f.products.On("List", mock.Anything).Return([]dto.ProductResponse{{ID: "p-1", Name: "Agua"}}, nil)

	resp := f.do(t, http.MethodGet, "/products", bearer(t, worker), nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out []dto.ProductResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Len(t, out, 1)
}

func TestProducts_BusquedaDecodificaTermino(t *testing.T) {
	f := newAPI(t)
	f.products.On("SearchByName", mock.Anything, "coca cola").Return([]dto.ProductResponse{}, nil)

	resp := f.do(t, http.MethodGet, "/products/name/coca%20cola", bearer(t, manager), nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	f.products.AssertExpectations(t)
}

func TestProducts_BorrarSoloSupplier(t *testing.T) {
	f := newAPI(t)
	f.products.On("Delete", mock.Anything, "p-1").Return(&dto.DeleteProductResponse{Message: "Producto borrado"}, nil)

	resp := f.do(t, http.MethodDelete, "/products/p-1", bearer(t, manager), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	f.products.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)

	resp = f.do(t, http.MethodDelete, "/products/p-1", bearer(t, supplier), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProducts_BorrarInexistente_Retorna404(t *testing.T) {
	f := newAPI(t)
	f.products.On("Delete", mock.Anything, "p-x").Return(nil, domain.NotFound("Producto con ID p-x no encontrado"))

	resp := f.do(t, http.MethodDelete, "/products/p-x", bearer(t, supplier), nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Producto con ID p-x no encontrado", decodeError(t, resp).Message)
}

func TestPedidos_WorkerNoLlegaAlCasoDeUso(t *testing.T) {
	f := newAPI(t)
	in := dto.CreatePedidoRequest{Products: []dto.PedidoItemRequest{{Product: "p-1", Quantity: 2}}}

	resp := f.do(t, http.MethodPost, "/pedidos/pedido", bearer(t, worker), in)

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, apphttp.MsgAccesoDenegado, decodeError(t, resp).Message)
	f.pedidos.AssertNotCalled(t, "CreatePedido", mock.Anything, mock.Anything, mock.Anything)
}

func TestPedidos_ManagerCrea_Retorna201(t *testing.T) {
	f := newAPI(t)
	in := dto.CreatePedidoRequest{Products: []dto.PedidoItemRequest{{Product: "p-1", Quantity: 2}}}
	out := &dto.CreatePedidoResponse{
		Detail: "Pedido realizado con éxito",
		Pedido: dto.PedidoResponse{ID: "ped-1", UserID: manager.ID, Total: decimal.RequireFromString("3.00")},
	}
	f.pedidos.On("CreatePedido", mock.Anything, manager.ID, in).Return(out, nil)

	resp := f.do(t, http.MethodPost, "/pedidos/pedido", bearer(t, manager), in)

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	f.pedidos.AssertExpectations(t)
}

func TestPedidos_ProductoInexistente_Retorna404(t *testing.T) {
	f := newAPI(t)
	in := dto.CreatePedidoRequest{Products: []dto.PedidoItemRequest{{Product: "p-x", Quantity: 1}}}
	f.pedidos.On("CreatePedido", mock.Anything, manager.ID, in).Return(nil, domain.NotFound("Producto con ID p-x no encontrado"))

	resp := f.do(t, http.MethodPost, "/pedidos/pedido", bearer(t, manager), in)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPedidos_FalloInternoOcultaDetalle(t *testing.T) {
	f := newAPI(t)
	f.pedidos.On("Historial", mock.Anything, manager.ID).Return(nil, domain.Internal("listar pedidos", io.ErrUnexpectedEOF))

	resp := f.do(t, http.MethodGet, "/pedidos/historial", bearer(t, manager), nil)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	e := decodeError(t, resp)
	assert.Equal(t, apphttp.MsgInternal, e.Message)
	assert.False(t, strings.Contains(e.Message, "EOF"))
}

func TestPedidos_AlbaranDescargaPDF(t *testing.T) {
	f := newAPI(t)
	pdf := []byte("%PDF-1.4 fake")
	f.pedidos.On("Albaran", mock.Anything, manager.ID, "ped-1").Return(pdf, "albaran-ped-1.pdf", nil)

	resp := f.do(t, http.MethodGet, "/pedidos/ped-1/albaran", bearer(t, manager), nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "albaran-ped-1.pdf")
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, pdf, body)
}

func TestPedidos_AlbaranAjeno_Retorna403(t *testing.T) {
	f := newAPI(t)
	f.pedidos.On("Albaran", mock.Anything, manager.ID, "ped-2").Return(nil, "", domain.Forbidden("Acceso denegado"))

	resp := f.do(t, http.MethodGet, "/pedidos/ped-2/albaran", bearer(t, manager), nil)

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
