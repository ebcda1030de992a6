package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockAssetStore mock del almacenamiento remoto de imágenes.
type MockAssetStore struct {
	mock.Mock
}

func (m *MockAssetStore) Upload(ctx context.Context, folder, filename string, r io.Reader) (string, error) {
	args := m.Called(ctx, folder, filename, r)
	return args.String(0), args.Error(1)
}

func (m *MockAssetStore) Delete(ctx context.Context, publicID string) error {
	args := m.Called(ctx, publicID)
	return args.Error(0)
}
