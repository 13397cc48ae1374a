package chart

import (
	"fmt"
	"strings"

	"github.com/gamma-omg/stockdash/internal/market"
	"github.com/pplcc/plotext/custplotter"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// CandleChart is the OHLC candlestick row stacked over a volume row, sharing
// one time axis.
type CandleChart struct {
	OHLC   *plot.Plot
	Volume *plot.Plot
}

func BuildCandles(s market.Series) (*CandleChart, error) {
	if s.Empty() {
		return nil, market.ErrNoBars
	}

	data := make(custplotter.TOHLCVs, len(s.Bars))
	for i, b := range s.Bars {
		data[i].T = float64(b.Time.Unix())
		data[i].O = b.Open.InexactFloat64()
		data[i].H = b.High.InexactFloat64()
		data[i].L = b.Low.InexactFloat64()
		data[i].C = b.Close.InexactFloat64()
		data[i].V = b.Volume.InexactFloat64()
	}

	ohlc := plot.New()
	ohlc.Title.Text = fmt.Sprintf("%s OHLC", strings.ToUpper(s.Symbol))
	ohlc.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	styleDark(ohlc)

	candles, err := custplotter.NewCandlesticks(data)
	if err != nil {
		return nil, fmt.Errorf("failed to build candlesticks: %w", err)
	}
	candles.ColorUp = colorUp
	candles.ColorDown = colorDown
	ohlc.Add(candles)

	volume := plot.New()
	volume.Title.Text = "Volume"
	volume.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	styleDark(volume)

	xys := make(plotter.XYs, len(data))
	for i := range data {
		xys[i].X = data[i].T
		xys[i].Y = data[i].V
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("failed to build volume line: %w", err)
	}
	line.Color = colorActual
	volume.Add(line)

	return &CandleChart{
		OHLC:   ohlc,
		Volume: volume,
	}, nil
}

// Render draws the two rows at 0.7/0.3 heights with united time axes.
func (c *CandleChart) Render(w, h int) ([]byte, error) {
	return renderStacked([]*plot.Plot{c.OHLC, c.Volume}, []float64{0.7, 0.3}, w, h)
}
