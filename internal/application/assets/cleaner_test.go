package assets_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/pedidos-hosteleria/internal/application/assets"
	"github.com/jhoicas/pedidos-hosteleria/internal/domain/entity"
	"github.com/jhoicas/pedidos-hosteleria/internal/mocks"
	"github.com/jhoicas/pedidos-hosteleria/pkg/logger"
)

const imgURL = "https://res.cloudinary.com/demo/image/upload/v1/productos/abc.jpg"

func TestDeleteAsset_BorraPorPublicID(t *testing.T) {
	store := new(mocks.MockAssetStore)
	store.On("Delete", mock.Anything, "productos/abc").Return(nil).Once()
	metrics := mocks.NewRecordingMetrics()
	c := assets.NewCleaner(store, logger.Nop(), metrics, time.Second)

	c.DeleteAsset(imgURL)
	c.Wait()

	store.AssertExpectations(t)
	assert.Equal(t, 1, metrics.CleanupCount(assets.ResultDeleted))
}

func TestDeleteAsset_FalloNoSePropaga(t *testing.T) {
	store := new(mocks.MockAssetStore)
	store.On("Delete", mock.Anything, "productos/abc").Return(errors.New("cloud caído")).Once()
	metrics := mocks.NewRecordingMetrics()
	c := assets.NewCleaner(store, logger.Nop(), metrics, time.Second)

	c.DeleteAsset(imgURL)
	c.Wait()

	store.AssertExpectations(t)
	assert.Equal(t, 1, metrics.CleanupCount(assets.ResultFailed))
}

func TestDeleteAsset_IgnoraVacioYPorDefecto(t *testing.T) {
	store := new(mocks.MockAssetStore)
	c := assets.NewCleaner(store, logger.Nop(), nil, time.Second)

	c.DeleteAsset("")
	c.DeleteAsset(entity.DefaultProductImage)
	c.Wait()

	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteAsset_AplicaTimeout(t *testing.T) {
	store := new(mocks.MockAssetStore)
	var deadline bool
	store.On("Delete", mock.Anything, "productos/abc").Run(func(args mock.Arguments) {
		ctx := args.Get(0).(context.Context)
		_, deadline = ctx.Deadline()
	}).Return(nil).Once()
	c := assets.NewCleaner(store, nil, nil, 50*time.Millisecond)

	c.DeleteAsset(imgURL)
	c.Wait()

	assert.True(t, deadline)
}
