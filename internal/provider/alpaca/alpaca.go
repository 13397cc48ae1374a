package alpaca

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/gamma-omg/stockdash/internal/config"
	"github.com/gamma-omg/stockdash/internal/market"
	"github.com/shopspring/decimal"
)

type alpacaApi interface {
	GetBars(symbol string, req marketdata.GetBarsRequest) ([]marketdata.Bar, error)
	GetSnapshot(symbol string, req marketdata.GetSnapshotRequest) (*marketdata.Snapshot, error)
}

// Fetcher pulls stock bars and snapshots from Alpaca market data. Periods and
// intervals use the Yahoo-style notation ("1y", "1d") and are mapped onto
// Alpaca time frames and start dates.
type Fetcher struct {
	cfg config.Alpaca
	api alpacaApi
	now func() time.Time
}

func NewFetcher(cfg config.Alpaca) *Fetcher {
	return &Fetcher{
		cfg: cfg,
		api: newMarketDataApi(cfg.ApiKey, cfg.Secret, cfg.BaseUrl),
		now: time.Now,
	}
}

func (f *Fetcher) History(ctx context.Context, symbol, period, interval string) (market.Series, error) {
	tf, err := timeFrame(interval)
	if err != nil {
		return market.Series{}, err
	}

	start, err := periodStart(period, f.now())
	if err != nil {
		return market.Series{}, err
	}

	bars, err := f.api.GetBars(symbol, marketdata.GetBarsRequest{
		TimeFrame:  tf,
		Adjustment: marketdata.Split,
		Start:      start,
		Feed:       marketdata.Feed(f.cfg.Feed),
	})
	if err != nil {
		return market.Series{}, fmt.Errorf("failed to get alpaca bars: %w", err)
	}

	if len(bars) == 0 {
		return market.Series{}, fmt.Errorf("alpaca %s: %w", symbol, market.ErrNoData)
	}

	out := make([]market.Bar, len(bars))
	for i, b := range bars {
		out[i] = market.Bar{
			Time:   b.Timestamp,
			Open:   decimal.NewFromFloat(b.Open),
			High:   decimal.NewFromFloat(b.High),
			Low:    decimal.NewFromFloat(b.Low),
			Close:  decimal.NewFromFloat(b.Close),
			Volume: decimal.NewFromUint64(b.Volume),
		}
	}

	return market.NewSeries(symbol, period, interval, out), nil
}

func (f *Fetcher) Quote(ctx context.Context, symbol string) (market.Quote, error) {
	snap, err := f.api.GetSnapshot(symbol, marketdata.GetSnapshotRequest{
		Feed: marketdata.Feed(f.cfg.Feed),
	})
	if err != nil {
		return market.Quote{}, fmt.Errorf("failed to get alpaca snapshot: %w", err)
	}

	if snap == nil || snap.DailyBar == nil || snap.LatestTrade == nil {
		return market.Quote{}, fmt.Errorf("alpaca %s: %w", symbol, market.ErrNoData)
	}

	return market.Quote{
		Symbol:  symbol,
		Open:    decimal.NewFromFloat(snap.DailyBar.Open),
		Current: decimal.NewFromFloat(snap.LatestTrade.Price),
	}, nil
}

func timeFrame(interval string) (marketdata.TimeFrame, error) {
	switch interval {
	case "1m":
		return marketdata.OneMin, nil
	case "5m":
		return marketdata.NewTimeFrame(5, marketdata.Min), nil
	case "15m":
		return marketdata.NewTimeFrame(15, marketdata.Min), nil
	case "1h", "60m":
		return marketdata.OneHour, nil
	case "1d":
		return marketdata.OneDay, nil
	case "1wk":
		return marketdata.NewTimeFrame(1, marketdata.Week), nil
	case "1mo":
		return marketdata.NewTimeFrame(1, marketdata.Month), nil
	default:
		return marketdata.TimeFrame{}, fmt.Errorf("unsupported interval: %s", interval)
	}
}

func periodStart(period string, now time.Time) (time.Time, error) {
	switch period {
	case "ytd":
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC), nil
	case "max":
		return now.AddDate(-30, 0, 0), nil
	}

	for _, u := range []struct {
		suffix string
		shift  func(n int) time.Time
	}{
		{"mo", func(n int) time.Time { return now.AddDate(0, -n, 0) }},
		{"wk", func(n int) time.Time { return now.AddDate(0, 0, -7*n) }},
		{"y", func(n int) time.Time { return now.AddDate(-n, 0, 0) }},
		{"d", func(n int) time.Time { return now.AddDate(0, 0, -n) }},
	} {
		if !strings.HasSuffix(period, u.suffix) {
			continue
		}

		n, err := strconv.Atoi(strings.TrimSuffix(period, u.suffix))
		if err != nil {
			return time.Time{}, fmt.Errorf("unsupported period: %s", period)
		}

		return u.shift(n), nil
	}

	return time.Time{}, fmt.Errorf("unsupported period: %s", period)
}
