package fetcher

import (
	"fmt"
	"sync"

	"github.com/tronrelic/tronrelic-indexer/internal/config"
)

// New builds the fetcher matching the configured market kind
func New(market config.MarketConfig, cfg *config.FetcherConfig) (Fetcher, error) {
	var puller Puller
	switch market.Kind {
	case config.MarketKindOrderBook:
		puller = NewOrderBookPuller(market, cfg)
	case config.MarketKindFeeSchedule:
		puller = NewFeeSchedulePuller(market, cfg)
	case config.MarketKindSpot:
		puller = NewSpotPuller(market, cfg)
	default:
		return nil, fmt.Errorf("unknown market kind %q for %s", market.Kind, market.Guid)
	}
	return NewBase(market, puller), nil
}

// Registry builds the fetcher set once per process
type Registry struct {
	once     sync.Once
	build    func() ([]Fetcher, error)
	fetchers []Fetcher
	err      error
}

func NewRegistry(build func() ([]Fetcher, error)) *Registry {
	return &Registry{build: build}
}

func NewConfigRegistry(markets []config.MarketConfig, cfg *config.FetcherConfig) *Registry {
	return NewRegistry(func() ([]Fetcher, error) {
		fetchers := make([]Fetcher, 0, len(markets))
		for _, market := range markets {
			f, err := New(market, cfg)
			if err != nil {
				return nil, err
			}
			fetchers = append(fetchers, f)
		}
		return fetchers, nil
	})
}

// EnsureRegistered is safe to call on every run, only the first call builds
func (r *Registry) EnsureRegistered() ([]Fetcher, error) {
	r.once.Do(func() {
		r.fetchers, r.err = r.build()
	})
	return r.fetchers, r.err
}
