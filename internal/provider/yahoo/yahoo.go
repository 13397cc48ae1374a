package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/gamma-omg/stockdash/internal/config"
	"github.com/gamma-omg/stockdash/internal/market"
	"github.com/shopspring/decimal"
)

const defaultBaseUrl = "https://query1.finance.yahoo.com"

// Fetcher pulls bars from the Yahoo Finance v8 chart API. Symbols are passed
// through verbatim: casing is not normalized here or anywhere upstream.
type Fetcher struct {
	log     *slog.Logger
	client  *http.Client
	BaseUrl string
}

func NewFetcher(log *slog.Logger, cfg config.Yahoo) *Fetcher {
	transport := &http.Transport{}
	if cfg.Proxy != "" {
		if u, err := url.Parse(cfg.Proxy); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}

	return &Fetcher{
		log: log,
		client: &http.Client{
			Timeout:   time.Duration(cfg.Timeout) * time.Second,
			Transport: transport,
		},
		BaseUrl: defaultBaseUrl,
	}
}

// chartResponse is the response structure of the Yahoo chart API.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func (f *Fetcher) History(ctx context.Context, symbol, period, interval string) (market.Series, error) {
	bars, err := f.fetchChart(ctx, symbol, period, interval)
	if err != nil {
		return market.Series{}, err
	}

	return market.NewSeries(symbol, period, interval, bars), nil
}

// Quote derives the indicator pair from the 1d/1d chart: the day's open and
// the most recent close.
func (f *Fetcher) Quote(ctx context.Context, symbol string) (market.Quote, error) {
	bars, err := f.fetchChart(ctx, symbol, "1d", "1d")
	if err != nil {
		return market.Quote{}, err
	}

	return market.Quote{
		Symbol:  symbol,
		Open:    bars[0].Open,
		Current: bars[len(bars)-1].Close,
	}, nil
}

func (f *Fetcher) fetchChart(ctx context.Context, symbol, period, interval string) ([]market.Bar, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&range=%s",
		f.BaseUrl, url.PathEscape(symbol), url.QueryEscape(interval), url.QueryEscape(period))
	f.log.Debug("fetching yahoo chart", "symbol", symbol, "period", period, "interval", interval)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create chart request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}

	var chart chartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 ||
		len(chart.Chart.Result[0].Timestamp) == 0 ||
		len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo %s: %w", symbol, market.ErrNoData)
	}

	result := chart.Chart.Result[0]
	quote := result.Indicators.Quote[0]
	bars := make([]market.Bar, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		// null entries appear on holidays and half sessions
		if quote.Open[i] == nil || quote.High[i] == nil || quote.Low[i] == nil || quote.Close[i] == nil {
			continue
		}

		var volume float64
		if quote.Volume[i] != nil {
			volume = *quote.Volume[i]
		}

		bars = append(bars, market.Bar{
			Time:   time.Unix(ts, 0).UTC(),
			Open:   decimal.NewFromFloat(*quote.Open[i]),
			High:   decimal.NewFromFloat(*quote.High[i]),
			Low:    decimal.NewFromFloat(*quote.Low[i]),
			Close:  decimal.NewFromFloat(*quote.Close[i]),
			Volume: decimal.NewFromFloat(volume),
		})
	}

	if len(bars) == 0 {
		return nil, fmt.Errorf("yahoo %s: %w", symbol, market.ErrNoData)
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}
