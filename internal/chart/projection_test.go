package chart

import (
	"testing"
	"time"

	"github.com/gamma-omg/stockdash/internal/market"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeries(closes ...float64) market.Series {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]market.Bar, len(closes))
	for i, c := range closes {
		d := decimal.NewFromFloat(c)
		bars[i] = market.Bar{
			Time:   start.AddDate(0, 0, i),
			Open:   d,
			High:   d,
			Low:    d,
			Close:  d,
			Volume: decimal.NewFromInt(1000),
		}
	}

	return market.NewSeries("aapl", "1y", "1d", bars)
}

func TestProject(t *testing.T) {
	s := testSeries(98, 99, 100)

	pts, err := Project(s, 3)
	require.NoError(t, err)
	require.Len(t, pts, 3)

	last := s.Bars[len(s.Bars)-1].Time
	for i, want := range []float64{101, 102, 103} {
		assert.True(t, decimal.NewFromFloat(want).Equal(pts[i].Price), "point %d", i)
		assert.Equal(t, last.AddDate(0, 0, i+1), pts[i].Time)
	}
}

func TestProject_ZeroHorizon(t *testing.T) {
	pts, err := Project(testSeries(100), 0)
	require.NoError(t, err)
	assert.Empty(t, pts)
}

func TestProject_EmptySeries(t *testing.T) {
	_, err := Project(market.Series{}, 3)
	require.ErrorIs(t, err, market.ErrNoBars)
}

func TestBuildProjection(t *testing.T) {
	c, err := BuildProjection(testSeries(98, 99, 100), 5)
	require.NoError(t, err)
	assert.Equal(t, "AAPL Price Prediction for Next 5 Days", c.Plot.Title.Text)
}

func TestBuildCandles(t *testing.T) {
	c, err := BuildCandles(testSeries(98, 99, 100))
	require.NoError(t, err)
	assert.Equal(t, "AAPL OHLC", c.OHLC.Title.Text)
	assert.Equal(t, "Volume", c.Volume.Title.Text)
}

func TestBuildCandles_EmptySeries(t *testing.T) {
	_, err := BuildCandles(market.Series{})
	require.ErrorIs(t, err, market.ErrNoBars)
}

func TestBuildIndicator(t *testing.T) {
	ind := BuildIndicator(market.Quote{
		Symbol:  "aapl",
		Open:    decimal.NewFromInt(100),
		Current: decimal.NewFromFloat(97.5),
	})

	assert.Equal(t, "AAPL", ind.Symbol)
	assert.True(t, decimal.NewFromFloat(-2.5).Equal(ind.Delta()))
	assert.False(t, ind.Gain())
}

func TestRender(t *testing.T) {
	candles, err := BuildCandles(testSeries(98, 99, 100))
	require.NoError(t, err)

	png, err := candles.Render(600, 400)
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	projection, err := BuildProjection(testSeries(98, 99, 100), 3)
	require.NoError(t, err)

	png, err = projection.Render(600, 300)
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	png, err = Blank(600, 300)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
