package provider

import (
	"errors"
	"log/slog"

	"github.com/gamma-omg/stockdash/internal/config"
	"github.com/gamma-omg/stockdash/internal/provider/alpaca"
	"github.com/gamma-omg/stockdash/internal/provider/replay"
	"github.com/gamma-omg/stockdash/internal/provider/yahoo"
)

func Create(log *slog.Logger, cfg config.Config) (Fetcher, error) {
	yahooCfg, ok := cfg.ProviderRef.Provider.(config.Yahoo)
	if ok {
		return yahoo.NewFetcher(log, yahooCfg), nil
	}

	alpacaCfg, ok := cfg.ProviderRef.Provider.(config.Alpaca)
	if ok {
		return alpaca.NewFetcher(alpacaCfg), nil
	}

	replayCfg, ok := cfg.ProviderRef.Provider.(config.Replay)
	if ok {
		return replay.NewFetcher(replayCfg), nil
	}

	return nil, errors.New("unknown market data provider")
}
