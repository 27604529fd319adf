package config

import (
	"time"

	"main/internal/ingest/bybit"

	"github.com/spf13/viper"
	"github.com/yanun0323/errors"
)

// Config is the full adapter configuration. Every field has a default, so a
// run without a config file streams BTCUSDT from the public spot endpoint
// with reconnection disabled.
type Config struct {
	Feed      FeedConfig      `mapstructure:"feed"`
	Retry     RetryConfig     `mapstructure:"retry"`
	Pyroscope PyroscopeConfig `mapstructure:"pyroscope"`
}

type FeedConfig struct {
	WSUrl          string `mapstructure:"ws_url"`
	Symbol         string `mapstructure:"symbol"`
	OrderbookDepth int    `mapstructure:"orderbook_depth"`
}

// RetryConfig opts in to reconnect-on-disconnect. It defaults to disabled:
// downstream consumers use process exit as the disconnect signal, so the
// default must stay terminate-on-disconnect.
type RetryConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	InitialBackoff time.Duration `mapstructure:"initial_backoff"`
	MaxBackoff     time.Duration `mapstructure:"max_backoff"`
}

type PyroscopeConfig struct {
	ServerAddress string `mapstructure:"server_address"`
}

// Load reads an optional YAML config file. An empty path yields pure
// defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("feed.ws_url", bybit.DefaultURL)
	v.SetDefault("feed.symbol", "BTCUSDT")
	v.SetDefault("feed.orderbook_depth", 50)
	v.SetDefault("retry.enabled", false)
	v.SetDefault("retry.initial_backoff", time.Second)
	v.SetDefault("retry.max_backoff", 30*time.Second)
	v.SetDefault("pyroscope.server_address", "")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	return &cfg, nil
}
