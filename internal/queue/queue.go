package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/tronrelic/tronrelic-indexer/internal/config"
)

const exchangeKind = "topic"

type QueueManager struct {
	cfg  *config.QueueConfig
	conn *amqp.Connection

	// amqp channels must not be shared by concurrent publishers
	publishMu sync.Mutex
	publishCh *amqp.Channel
}

func NewQueueManager(cfg *config.QueueConfig) (*QueueManager, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to queue: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open publish channel: %w", err)
	}

	err = ch.ExchangeDeclare(cfg.MarketsExchange, exchangeKind, true, false, false, false, nil)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", cfg.MarketsExchange, err)
	}

	return &QueueManager{
		cfg:       cfg,
		conn:      conn,
		publishCh: ch,
	}, nil
}

func (qm *QueueManager) Ping(_ context.Context) error {
	if qm.conn == nil || qm.conn.IsClosed() {
		return errors.New("queue connection is closed")
	}
	return nil
}

// Shutdown gracefully stops the interaction with the queue, ensuring all resources are properly released.
func (qm *QueueManager) Shutdown() {
	log.Info().Msg("Shutting down queue manager")

	qm.publishMu.Lock()
	defer qm.publishMu.Unlock()

	if qm.publishCh != nil {
		if err := qm.publishCh.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			log.Warn().Err(err).Msg("failed to close publish channel")
		}
	}
	if qm.conn != nil && !qm.conn.IsClosed() {
		if err := qm.conn.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close queue connection")
		}
	}
}
