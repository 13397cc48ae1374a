package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_Full(t *testing.T) {
	cfg, err := Read(strings.NewReader(`
server:
    host: 0.0.0.0
    port: 9000
provider:
    yahoo:
        proxy: http://localhost:8888
        timeout: 10
fetch:
    attempts: 3
    base_wait: 2
    max_wait: 30
cache:
    size: 64
defaults:
    symbol: msft
    horizon: 5
    period: 6mo
    interval: 1wk
`))

	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 3, cfg.Fetch.Attempts)
	assert.Equal(t, 2, cfg.Fetch.BaseWait)
	assert.Equal(t, 30, cfg.Fetch.MaxWait)
	assert.Equal(t, 64, cfg.Cache.Size)
	assert.Equal(t, "msft", cfg.Defaults.Symbol)
	assert.Equal(t, 5, cfg.Defaults.Horizon)
	assert.Equal(t, "6mo", cfg.Defaults.Period)
	assert.Equal(t, "1wk", cfg.Defaults.Interval)

	yh, ok := cfg.ProviderRef.Provider.(Yahoo)
	require.True(t, ok)
	assert.Equal(t, "http://localhost:8888", yh.Proxy)
	assert.Equal(t, 10, yh.Timeout)
}

func TestRead_Alpaca(t *testing.T) {
	cfg, err := Read(strings.NewReader(`
provider:
    alpaca:
        base_url: https://paper-api.alpaca.markets
        api_key: key
        secret: secret
        feed: iex
`))

	require.NoError(t, err)

	alpaca, ok := cfg.ProviderRef.Provider.(Alpaca)
	require.True(t, ok)
	assert.Equal(t, "https://paper-api.alpaca.markets", alpaca.BaseUrl)
	assert.Equal(t, "key", alpaca.ApiKey)
	assert.Equal(t, "secret", alpaca.Secret)
	assert.Equal(t, "iex", alpaca.Feed)
}

func TestRead_Replay(t *testing.T) {
	cfg, err := Read(strings.NewReader(`
provider:
    replay:
        data:
            AAPL: /var/data/aapl.csv
            MSFT: /var/data/msft.csv
`))

	require.NoError(t, err)

	replay, ok := cfg.ProviderRef.Provider.(Replay)
	require.True(t, ok)
	assert.Equal(t, "/var/data/aapl.csv", replay.Data["AAPL"])
	assert.Equal(t, "/var/data/msft.csv", replay.Data["MSFT"])
}

func TestRead_Defaults(t *testing.T) {
	cfg, err := Read(strings.NewReader(`
server:
    port: 8080
`))

	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Fetch.Attempts)
	assert.Equal(t, 4, cfg.Fetch.BaseWait)
	assert.Equal(t, 60, cfg.Fetch.MaxWait)
	assert.Equal(t, 128, cfg.Cache.Size)
	assert.Equal(t, "aapl", cfg.Defaults.Symbol)
	assert.Equal(t, 10, cfg.Defaults.Horizon)

	_, ok := cfg.ProviderRef.Provider.(Yahoo)
	require.True(t, ok)
}

func TestRead_UnknownProvider(t *testing.T) {
	_, err := Read(strings.NewReader(`
provider:
    bloomberg:
        api_key: key
`))

	require.Error(t, err)
}
