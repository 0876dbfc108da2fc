package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/tronrelic/tronrelic-indexer/internal/observability/metrics"
	"github.com/tronrelic/tronrelic-indexer/internal/observer"
	"github.com/tronrelic/tronrelic-indexer/pkg"
)

const consumerTagPrefix = "tronrelic-indexer-"

type EnvelopeKind string

const (
	KindTransaction EnvelopeKind = "transaction"
	KindBatch       EnvelopeKind = "batch"
	KindBlock       EnvelopeKind = "block"
)

// Envelope is one message published by the block decoder
type Envelope struct {
	Kind        EnvelopeKind              `json:"kind"`
	Transaction *observer.Transaction     `json:"transaction,omitempty"`
	Batch       observer.TypeGroupedBatch `json:"batch,omitempty"`
	Block       *observer.BlockData       `json:"block,omitempty"`
}

// Dispatcher receives decoded items, observer.Manager implements it
type Dispatcher interface {
	Notify(tx *observer.Transaction)
	NotifyBatch(batch observer.TypeGroupedBatch)
	NotifyBlock(block *observer.BlockData)
}

func DecodeEnvelope(body []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("malformed envelope: %w", err)
	}

	switch env.Kind {
	case KindTransaction:
		if env.Transaction == nil {
			return nil, errors.New("transaction envelope without transaction")
		}
	case KindBatch:
		if len(env.Batch) == 0 {
			return nil, errors.New("batch envelope without transactions")
		}
	case KindBlock:
		if env.Block == nil {
			return nil, errors.New("block envelope without block")
		}
	default:
		return nil, fmt.Errorf("unknown envelope kind %q", env.Kind)
	}
	return &env, nil
}

func (env *Envelope) Dispatch(d Dispatcher) {
	switch env.Kind {
	case KindTransaction:
		d.Notify(env.Transaction)
	case KindBatch:
		d.NotifyBatch(env.Batch)
	case KindBlock:
		d.NotifyBlock(env.Block)
	}
}

// ConsumeTransactions hands every decoder message to d until ctx is done or
// the delivery channel closes. Malformed messages are rejected without requeue.
func (qm *QueueManager) ConsumeTransactions(ctx context.Context, d Dispatcher) error {
	ch, err := qm.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open consumer channel: %w", err)
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(qm.cfg.TransactionsQueue, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", qm.cfg.TransactionsQueue, err)
	}
	if err := ch.Qos(qm.cfg.PrefetchCount, 0, false); err != nil {
		return fmt.Errorf("failed to set prefetch: %w", err)
	}

	consumerTag := consumerTagPrefix + pkg.RandString(8)
	deliveries, err := ch.ConsumeWithContext(ctx, q.Name, consumerTag, false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to consume %s: %w", q.Name, err)
	}

	logger := log.Ctx(ctx).With().Str("queue", q.Name).Str("consumer_tag", consumerTag).Logger()
	logger.Info().Msg("consuming decoded transactions")

	for {
		select {
		case <-ctx.Done():
			return nil
		case delivery, ok := <-deliveries:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return errors.New("delivery channel closed")
			}
			handleDelivery(ctx, delivery, d)
		}
	}
}

func handleDelivery(ctx context.Context, delivery amqp.Delivery, d Dispatcher) {
	env, err := DecodeEnvelope(delivery.Body)
	if err != nil {
		metrics.RecordQueueConsumed("invalid", true)
		log.Ctx(ctx).Warn().
			Err(err).
			Str("message_id", delivery.MessageId).
			Msg("rejecting undecodable message")
		if err := delivery.Nack(false, false); err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to reject message")
		}
		return
	}

	// observers never block, so dispatching before the ack cannot stall the consumer
	env.Dispatch(d)
	metrics.RecordQueueConsumed(string(env.Kind), false)

	if err := delivery.Ack(false); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("message_id", delivery.MessageId).Msg("failed to ack message")
	}
}
