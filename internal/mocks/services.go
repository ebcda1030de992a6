package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/pedidos-hosteleria/internal/application/assets"
	"github.com/jhoicas/pedidos-hosteleria/internal/application/dto"
)

// MockAuthService mock del caso de uso de registro/login.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, in dto.RegisterRequest, img *assets.File) (*dto.UserResponse, error) {
	args := m.Called(ctx, in, img)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

// MockProductService mock del caso de uso de catálogo.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) List(ctx context.Context) ([]dto.ProductResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ProductResponse), args.Error(1)
}

func (m *MockProductService) SearchByName(ctx context.Context, term string) ([]dto.ProductResponse, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ProductResponse), args.Error(1)
}

func (m *MockProductService) SearchByCategory(ctx context.Context, term string) ([]dto.ProductResponse, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ProductResponse), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, in dto.CreateProductRequest, img *assets.File) (*dto.ProductResponse, error) {
	args := m.Called(ctx, in, img)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProductResponse), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, id string, in dto.UpdateProductRequest, img *assets.File) (*dto.ProductResponse, error) {
	args := m.Called(ctx, id, in, img)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProductResponse), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, id string) (*dto.DeleteProductResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DeleteProductResponse), args.Error(1)
}

// MockPedidoService mock del caso de uso de pedidos.
type MockPedidoService struct {
	mock.Mock
}

func (m *MockPedidoService) CreatePedido(ctx context.Context, userID string, in dto.CreatePedidoRequest) (*dto.CreatePedidoResponse, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CreatePedidoResponse), args.Error(1)
}

func (m *MockPedidoService) Historial(ctx context.Context, userID string) ([]dto.PedidoResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.PedidoResponse), args.Error(1)
}

func (m *MockPedidoService) Albaran(ctx context.Context, userID, pedidoID string) ([]byte, string, error) {
	args := m.Called(ctx, userID, pedidoID)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}
