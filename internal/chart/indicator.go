package chart

import (
	"strings"

	"github.com/gamma-omg/stockdash/internal/market"
	"github.com/shopspring/decimal"
)

// Indicator describes the current-price panel: the latest price and its move
// relative to the open.
type Indicator struct {
	Symbol  string
	Open    decimal.Decimal
	Current decimal.Decimal
}

func BuildIndicator(q market.Quote) Indicator {
	return Indicator{
		Symbol:  strings.ToUpper(q.Symbol),
		Open:    q.Open,
		Current: q.Current,
	}
}

func (i Indicator) Delta() decimal.Decimal {
	return i.Current.Sub(i.Open)
}

func (i Indicator) Gain() bool {
	return !i.Delta().IsNegative()
}
