package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pedidos-hosteleria/internal/application/ports"
	"github.com/jhoicas/pedidos-hosteleria/internal/domain/entity"
)

var _ ports.EventPublisher = (*KafkaPublisher)(nil)

// TypePedidoCreated tipo del evento publicado al guardar un pedido.
const TypePedidoCreated = "pedido.created"

// PedidoCreated cuerpo del mensaje. Las líneas llevan el precio bloqueado.
type PedidoCreated struct {
	Type       string          `json:"type"`
	PedidoID   string          `json:"pedido_id"`
	UserID     string          `json:"user_id"`
	Lines      []LineEvent     `json:"lines"`
	Total      decimal.Decimal `json:"total"`
	OccurredAt time.Time       `json:"occurred_at"`
}

type LineEvent struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// messageWriter parte de *kafka.Writer que usa el publicador.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher publica eventos de pedidos en un topic; la clave es el id del pedido.
type KafkaPublisher struct {
	writer messageWriter
	now    func() time.Time
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
	return &KafkaPublisher{writer: writer, now: time.Now}
}

func (p *KafkaPublisher) PublishPedidoCreated(ctx context.Context, pd *entity.Pedido) error {
	msg, err := pedidoMessage(pd, p.now().UTC())
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func pedidoMessage(pd *entity.Pedido, now time.Time) (kafka.Message, error) {
	ev := PedidoCreated{
		Type:       TypePedidoCreated,
		PedidoID:   pd.ID,
		UserID:     pd.UserID,
		Lines:      make([]LineEvent, len(pd.Products)),
		Total:      pd.Total,
		OccurredAt: now,
	}
	for i, l := range pd.Products {
		ev.Lines[i] = LineEvent{ProductID: l.ProductID, Quantity: l.Quantity, Price: l.Price}
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(pd.ID),
		Value: data,
		Time:  now,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(TypePedidoCreated)},
		},
	}, nil
}
