package chart

import (
	"fmt"
	"strings"
	"time"

	"github.com/gamma-omg/stockdash/internal/market"
	"github.com/shopspring/decimal"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// Point is one projected price sample.
type Point struct {
	Time  time.Time
	Price decimal.Decimal
}

// Project extrapolates horizon calendar days past the last bar: projected day
// i is priced at last close + i. This is a stand-in offset, not a forecast,
// and its output is part of the observable contract.
func Project(s market.Series, horizon int) ([]Point, error) {
	last, err := s.Last()
	if err != nil {
		return nil, err
	}

	var pts []Point
	for i := 1; i <= horizon; i++ {
		pts = append(pts, Point{
			Time:  last.Time.AddDate(0, 0, i),
			Price: last.Close.Add(decimal.NewFromInt(int64(i))),
		})
	}

	return pts, nil
}

// ProjectionChart is the actual-vs-projected close price line chart.
type ProjectionChart struct {
	Plot *plot.Plot
}

func BuildProjection(s market.Series, horizon int) (*ProjectionChart, error) {
	pts, err := Project(s, horizon)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s Price Prediction for Next %d Days", strings.ToUpper(s.Symbol), horizon)
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Price"
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	styleDark(p)

	actual := make(plotter.XYs, len(s.Bars))
	for i, b := range s.Bars {
		actual[i].X = float64(b.Time.Unix())
		actual[i].Y = b.Close.InexactFloat64()
	}

	actualLine, err := plotter.NewLine(actual)
	if err != nil {
		return nil, fmt.Errorf("failed to build actual prices line: %w", err)
	}
	actualLine.Color = colorActual
	p.Add(actualLine)
	p.Legend.Add("Actual Prices", actualLine)

	predicted := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		predicted[i].X = float64(pt.Time.Unix())
		predicted[i].Y = pt.Price.InexactFloat64()
	}

	predictedLine, err := plotter.NewLine(predicted)
	if err != nil {
		return nil, fmt.Errorf("failed to build predicted prices line: %w", err)
	}
	predictedLine.Color = colorPredicted
	p.Add(predictedLine)
	p.Legend.Add("Predicted Prices", predictedLine)

	return &ProjectionChart{Plot: p}, nil
}

func (c *ProjectionChart) Render(w, h int) ([]byte, error) {
	return renderSingle(c.Plot, w, h)
}
