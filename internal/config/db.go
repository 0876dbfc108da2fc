package config

import (
	"errors"
	"net/url"
)

const defaultMaxPaginationLimit = 100

type DbConfig struct {
	Username           string `mapstructure:"username"`
	Password           string `mapstructure:"password"`
	Address            string `mapstructure:"address"`
	DbName             string `mapstructure:"db-name"`
	MaxPaginationLimit int64  `mapstructure:"max-pagination-limit"`
}

func (cfg *DbConfig) Validate() error {
	if cfg.Address == "" {
		return errors.New("missing db address")
	}

	u, err := url.Parse(cfg.Address)
	if err != nil {
		return errors.New("invalid db address")
	}
	if u.Scheme != "mongodb" && u.Scheme != "mongodb+srv" {
		return errors.New("unsupported db scheme")
	}

	if cfg.DbName == "" {
		return errors.New("missing db name")
	}

	if cfg.MaxPaginationLimit <= 0 {
		return errors.New("max-pagination-limit must be positive")
	}

	return nil
}
