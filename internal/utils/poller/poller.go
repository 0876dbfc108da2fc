package poller

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Poller runs pollMethod on a fixed interval. Calls never overlap: the next
// tick is only consumed after the previous call returned.
type Poller struct {
	name       string
	interval   time.Duration
	quit       chan struct{}
	pollMethod func(ctx context.Context) error
}

func NewPoller(name string, interval time.Duration, pollMethod func(ctx context.Context) error) *Poller {
	return &Poller{
		name:       name,
		interval:   interval,
		quit:       make(chan struct{}),
		pollMethod: pollMethod,
	}
}

// Start blocks until ctx is cancelled or Stop is called. When runImmediately
// is set the first poll happens before the first tick.
func (p *Poller) Start(ctx context.Context, runImmediately bool) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	logger := log.Ctx(ctx).With().Str("poller", p.name).Logger()
	logger.Info().Msgf("Starting poller with interval %s", p.interval)

	if runImmediately {
		p.poll(ctx)
	}

	for {
		select {
		case <-ticker.C:
			p.poll(ctx)
		case <-ctx.Done():
			logger.Info().Msg("Poller stopped due to context cancellation")
			return
		case <-p.quit:
			logger.Info().Msg("Poller stopped")
			return
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	logger := log.Ctx(ctx).With().Str("poller", p.name).Logger()

	logger.Debug().Msg("Executing poll method")
	if err := p.pollMethod(ctx); err != nil {
		logger.Error().Err(err).Msg("Error polling")
	} else {
		logger.Debug().Msg("Poll method executed successfully")
	}
}

func (p *Poller) Stop() {
	close(p.quit)
}
