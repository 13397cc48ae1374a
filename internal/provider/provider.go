package provider

import (
	"context"

	"github.com/gamma-omg/stockdash/internal/market"
)

// Fetcher pulls market data from a single provider. History is the path the
// retry policy and cache wrap; Quote is independent and uncached. An empty
// provider payload (typically an unknown symbol) surfaces as market.ErrNoData
// so callers can tell it apart from transport failures.
type Fetcher interface {
	History(ctx context.Context, symbol, period, interval string) (market.Series, error)
	Quote(ctx context.Context, symbol string) (market.Quote, error)
}
