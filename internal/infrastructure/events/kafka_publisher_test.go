package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pedidos-hosteleria/internal/domain/entity"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func (w *fakeWriter) Close() error { return nil }

func samplePedido() *entity.Pedido {
	return &entity.Pedido{
		ID:     "ped-1",
		UserID: "user-1",
		Products: []entity.LineaPedido{
			{ProductID: "p-1", Quantity: 3, Price: decimal.RequireFromString("2.005")},
		},
		Total:  decimal.RequireFromString("6.02"),
		Status: entity.PedidoPending,
	}
}

func TestPublishPedidoCreated_MensajeConClaveYPrecios(t *testing.T) {
	w := &fakeWriter{}
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	pub := &KafkaPublisher{writer: w, now: func() time.Time { return at }}

	require.NoError(t, pub.PublishPedidoCreated(context.Background(), samplePedido()))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "ped-1", string(msg.Key))
	assert.Equal(t, at, msg.Time)

	var ev PedidoCreated
	require.NoError(t, json.Unmarshal(msg.Value, &ev))
	assert.Equal(t, TypePedidoCreated, ev.Type)
	assert.Equal(t, "user-1", ev.UserID)
	assert.Equal(t, "6.02", ev.Total.StringFixed(2))
	require.Len(t, ev.Lines, 1)
	assert.True(t, decimal.RequireFromString("2.005").Equal(ev.Lines[0].Price))
}

func TestPublishPedidoCreated_PropagaErrorDelBroker(t *testing.T) {
	boom := errors.New("leader not available")
	pub := &KafkaPublisher{writer: &fakeWriter{err: boom}, now: time.Now}

	err := pub.PublishPedidoCreated(context.Background(), samplePedido())

	assert.ErrorIs(t, err, boom)
}
