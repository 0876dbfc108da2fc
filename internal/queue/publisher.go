package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/tronrelic/tronrelic-indexer/internal/db/model"
	"github.com/tronrelic/tronrelic-indexer/internal/observability/metrics"
	"github.com/tronrelic/tronrelic-indexer/internal/observability/tracing"
)

const (
	MarketUpdatedRoutingKey = "market.updated"
	LargeTransferRoutingKey = "transfer.large"
)

type MarketUpdatedEvent struct {
	Type      string                `json:"type"`
	Guid      string                `json:"guid"`
	Market    *model.MarketDocument `json:"market"`
	Timestamp time.Time             `json:"timestamp"`
}

type LargeTransferEvent struct {
	Type      string               `json:"type"`
	Transfer  *model.LargeTransfer `json:"transfer"`
	Timestamp time.Time            `json:"timestamp"`
}

func NewMarketUpdatedEvent(doc *model.MarketDocument) *MarketUpdatedEvent {
	return &MarketUpdatedEvent{
		Type:      MarketUpdatedRoutingKey,
		Guid:      doc.Guid,
		Market:    doc,
		Timestamp: time.Now().UTC(),
	}
}

func (qm *QueueManager) PublishMarketUpdate(ctx context.Context, doc *model.MarketDocument) error {
	return qm.publish(ctx, MarketUpdatedRoutingKey, NewMarketUpdatedEvent(doc))
}

func (qm *QueueManager) PublishLargeTransfer(ctx context.Context, transfer *model.LargeTransfer) error {
	return qm.publish(ctx, LargeTransferRoutingKey, &LargeTransferEvent{
		Type:      LargeTransferRoutingKey,
		Transfer:  transfer,
		Timestamp: time.Now().UTC(),
	})
}

func (qm *QueueManager) publish(ctx context.Context, routingKey string, event any) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", routingKey, err)
	}

	msg := amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		MessageId:     uuid.NewString(),
		CorrelationId: tracing.TraceID(ctx),
		Timestamp:     time.Now().UTC(),
		Type:          routingKey,
		Body:          body,
	}

	qm.publishMu.Lock()
	err = qm.publishCh.PublishWithContext(ctx, qm.cfg.MarketsExchange, routingKey, false, false, msg)
	qm.publishMu.Unlock()
	if err != nil {
		metrics.RecordQueueSendError()
		return fmt.Errorf("failed to publish %s event: %w", routingKey, err)
	}

	log.Ctx(ctx).Debug().
		Str("routing_key", routingKey).
		Str("message_id", msg.MessageId).
		Msg("event published")
	return nil
}
