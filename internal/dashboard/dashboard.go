package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gamma-omg/stockdash/internal/chart"
	"github.com/gamma-omg/stockdash/internal/config"
	"github.com/gamma-omg/stockdash/internal/market"
)

type seriesSource interface {
	Get(ctx context.Context, symbol, period, interval string) (market.Series, error)
}

type quoteSource interface {
	Quote(ctx context.Context, symbol string) (market.Quote, error)
}

// Panels holds the three chart descriptions produced by one refresh. The zero
// value renders as three blank placeholders.
type Panels struct {
	Indicator  *chart.Indicator
	History    *chart.CandleChart
	Projection *chart.ProjectionChart
}

func (p Panels) Blank() bool {
	return p.Indicator == nil && p.History == nil && p.Projection == nil
}

type Dashboard struct {
	log      *slog.Logger
	quotes   quoteSource
	series   seriesSource
	defaults config.Defaults
}

func New(log *slog.Logger, quotes quoteSource, series seriesSource, defaults config.Defaults) *Dashboard {
	return &Dashboard{
		log:      log,
		quotes:   quotes,
		series:   series,
		defaults: defaults,
	}
}

func (d *Dashboard) Defaults() config.Defaults {
	return d.defaults
}

// Refresh runs the one user-triggered update path. Any failure inside it, a
// malformed horizon, an unknown symbol or exhausted retries, degrades to
// blank panels instead of surfacing; this is the only boundary that swallows
// errors.
func (d *Dashboard) Refresh(ctx context.Context, symbol, horizon string) Panels {
	p, err := d.refresh(ctx, symbol, horizon)
	if err != nil {
		d.log.Debug("refresh degraded to blank panels", "symbol", symbol, "error", err)
		return Panels{}
	}

	return p
}

func (d *Dashboard) refresh(ctx context.Context, symbol, horizon string) (Panels, error) {
	days, err := strconv.Atoi(strings.TrimSpace(horizon))
	if err != nil {
		return Panels{}, fmt.Errorf("invalid projection horizon %q: %w", horizon, err)
	}

	q, err := d.quote(ctx, symbol)
	if err != nil {
		return Panels{}, err
	}
	indicator := chart.BuildIndicator(q)

	s, err := d.series.Get(ctx, symbol, d.defaults.Period, d.defaults.Interval)
	if err != nil {
		return Panels{}, err
	}

	history, err := chart.BuildCandles(s)
	if err != nil {
		return Panels{}, err
	}

	projection, err := chart.BuildProjection(s, days)
	if err != nil {
		return Panels{}, err
	}

	return Panels{
		Indicator:  &indicator,
		History:    history,
		Projection: projection,
	}, nil
}

// quote falls back to the day's cached bars when the snapshot endpoint has no
// price for the symbol.
func (d *Dashboard) quote(ctx context.Context, symbol string) (market.Quote, error) {
	q, err := d.quotes.Quote(ctx, symbol)
	if err == nil {
		return q, nil
	}

	d.log.Debug("quote lookup failed, falling back to daily bars", "symbol", symbol, "error", err)

	s, serr := d.series.Get(ctx, symbol, "1d", "1d")
	if serr != nil {
		return market.Quote{}, fmt.Errorf("quote fallback failed: %w", serr)
	}

	first, ferr := s.First()
	last, lerr := s.Last()
	if ferr != nil || lerr != nil {
		return market.Quote{}, fmt.Errorf("quote fallback on empty series: %w", market.ErrNoBars)
	}

	return market.Quote{
		Symbol:  symbol,
		Open:    first.Open,
		Current: last.Close,
	}, nil
}
