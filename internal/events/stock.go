package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sbilibin2017/inventory-api/internal/logger"
)

// Stock event actions
const (
	ActionCreated      = "created"
	ActionStockUpdated = "stock_updated"
	ActionDeleted      = "deleted"
)

// StockEvent describes a change to a product's stock.
type StockEvent struct {
	ProductID  int64     `json:"product_id"`
	Action     string    `json:"action"`
	Stock      int64     `json:"stock"`
	OccurredAt time.Time `json:"occurred_at"`
}

// MessageWriter is the subset of kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// StockEventPublisher publishes stock events to a kafka topic.
// Events are advisory: the durable write is the source of truth and a
// failed publish never fails the request that produced it.
type StockEventPublisher struct {
	writer MessageWriter
}

// NewStockEventPublisher creates a new publisher with a kafka writer.
func NewStockEventPublisher(writer MessageWriter) *StockEventPublisher {
	return &StockEventPublisher{writer: writer}
}

// Publish sends a stock event keyed by product id.
func (p *StockEventPublisher) Publish(ctx context.Context, event StockEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.ProductID, 10)),
		Value: payload,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish stock event",
			"product_id", event.ProductID, "action", event.Action, "error", err)
		return err
	}

	return nil
}
