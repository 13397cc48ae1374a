package market

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNoBars = errors.New("series contains no bars")

	// ErrNoData marks an empty provider payload, typically an unknown symbol.
	ErrNoData = errors.New("no data for symbol")
)

// Bar is a single OHLCV sample for a fixed time interval.
type Bar struct {
	Time   time.Time
	Open   decimal.Decimal
	High   decimal.Decimal
	Low    decimal.Decimal
	Close  decimal.Decimal
	Volume decimal.Decimal
}

// Series holds the bars fetched for one symbol over a period at a given
// interval. Bars are chronological ascending and never mutated after the
// series is built.
type Series struct {
	Symbol   string
	Period   string
	Interval string
	Bars     []Bar
}

func NewSeries(symbol, period, interval string, bars []Bar) Series {
	return Series{
		Symbol:   symbol,
		Period:   period,
		Interval: interval,
		Bars:     bars,
	}
}

func (s Series) Empty() bool {
	return len(s.Bars) == 0
}

func (s Series) First() (Bar, error) {
	if s.Empty() {
		return Bar{}, ErrNoBars
	}

	return s.Bars[0], nil
}

func (s Series) Last() (Bar, error) {
	if s.Empty() {
		return Bar{}, ErrNoBars
	}

	return s.Bars[len(s.Bars)-1], nil
}

func (s Series) LastClose() (decimal.Decimal, error) {
	b, err := s.Last()
	if err != nil {
		return decimal.Zero, err
	}

	return b.Close, nil
}

// Quote is a current/open price pair used by the price indicator. It is
// fetched outside the series cache.
type Quote struct {
	Symbol  string
	Open    decimal.Decimal
	Current decimal.Decimal
}

// Delta is the move of the current price relative to the open.
func (q Quote) Delta() decimal.Decimal {
	return q.Current.Sub(q.Open)
}
