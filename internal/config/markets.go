package config

import (
	"errors"
	"fmt"
	"net/url"
)

type MarketKind string

const (
	MarketKindOrderBook   MarketKind = "orderbook"
	MarketKindFeeSchedule MarketKind = "feeschedule"
	MarketKindSpot        MarketKind = "spot"
)

// MarketConfig describes one external energy rental source
type MarketConfig struct {
	Guid        string     `mapstructure:"guid"`
	Name        string     `mapstructure:"name"`
	Kind        MarketKind `mapstructure:"kind"`
	URL         string     `mapstructure:"url"`
	Priority    int        `mapstructure:"priority"`
	Schedule    string     `mapstructure:"schedule"`
	SiteURL     string     `mapstructure:"site-url"`
	Description string     `mapstructure:"description"`
	Affiliate   string     `mapstructure:"affiliate"`
	Commission  float64    `mapstructure:"commission"`
}

func (cfg *MarketConfig) Validate() error {
	if cfg.Guid == "" {
		return errors.New("missing guid")
	}
	if cfg.Name == "" {
		return errors.New("missing name")
	}

	switch cfg.Kind {
	case MarketKindOrderBook, MarketKindFeeSchedule, MarketKindSpot:
	default:
		return fmt.Errorf("unknown kind %q", cfg.Kind)
	}

	u, err := url.Parse(cfg.URL)
	if err != nil || u.Host == "" {
		return fmt.Errorf("invalid url %q", cfg.URL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported url scheme %q", u.Scheme)
	}

	if cfg.Priority < 0 {
		return errors.New("priority must not be negative")
	}

	return nil
}
