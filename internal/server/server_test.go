package server

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gamma-omg/stockdash/internal/config"
	"github.com/gamma-omg/stockdash/internal/dashboard"
	"github.com/gamma-omg/stockdash/internal/market"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct{}

func (stubSource) Get(_ context.Context, symbol, period, interval string) (market.Series, error) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]market.Bar, 5)
	for i := range bars {
		d := decimal.NewFromInt(int64(100 + i))
		bars[i] = market.Bar{Time: start.AddDate(0, 0, i), Open: d, High: d, Low: d, Close: d, Volume: decimal.NewFromInt(1000)}
	}

	return market.NewSeries(symbol, period, interval, bars), nil
}

func (stubSource) Quote(_ context.Context, symbol string) (market.Quote, error) {
	return market.Quote{
		Symbol:  symbol,
		Open:    decimal.NewFromInt(100),
		Current: decimal.NewFromFloat(104.5),
	}, nil
}

func newTestServer() *Server {
	src := stubSource{}
	dash := dashboard.New(slog.Default(), src, src,
		config.Defaults{Symbol: "aapl", Horizon: 10, Period: "1y", Interval: "1d"})
	return New(slog.Default(), dash)
}

func TestIndex(t *testing.T) {
	s := newTestServer()

	resp, err := s.app.Test(httptest.NewRequest("GET", "/?symbol=aapl&days=3", nil), 30000)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	html := string(body)
	assert.Contains(t, html, "AAPL Current Price")
	assert.Contains(t, html, "$104.50")
	assert.Contains(t, html, "+4.50")
	assert.Contains(t, html, "data:image/png;base64,")
}

func TestIndex_MalformedHorizon(t *testing.T) {
	s := newTestServer()

	resp, err := s.app.Test(httptest.NewRequest("GET", "/?symbol=aapl&days=abc", nil), 30000)
	require.NoError(t, err)
	defer resp.Body.Close()

	// malformed input degrades to blank panels, the page still serves
	require.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	html := string(body)
	assert.NotContains(t, html, "Current Price")
	assert.Contains(t, html, "data:image/png;base64,")
}

func TestIndex_Defaults(t *testing.T) {
	s := newTestServer()

	resp, err := s.app.Test(httptest.NewRequest("GET", "/", nil), 30000)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `value="aapl"`)
	assert.Contains(t, string(body), `value="10"`)
}
