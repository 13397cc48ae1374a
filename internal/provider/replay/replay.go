package replay

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/gamma-omg/stockdash/internal/config"
	"github.com/gamma-omg/stockdash/internal/market"
	"github.com/shopspring/decimal"
)

// Fetcher serves bars from local CSV files, one file per symbol. Useful for
// demos and tests where no provider credentials or network are available.
// Period and interval are recorded on the series but not applied to the data.
type Fetcher struct {
	data map[string]string
}

func NewFetcher(cfg config.Replay) *Fetcher {
	return &Fetcher{data: cfg.Data}
}

func (f *Fetcher) History(ctx context.Context, symbol, period, interval string) (market.Series, error) {
	bars, err := f.readBars(symbol)
	if err != nil {
		return market.Series{}, err
	}

	return market.NewSeries(symbol, period, interval, bars), nil
}

func (f *Fetcher) Quote(ctx context.Context, symbol string) (market.Quote, error) {
	bars, err := f.readBars(symbol)
	if err != nil {
		return market.Quote{}, err
	}

	last := bars[len(bars)-1]
	return market.Quote{
		Symbol:  symbol,
		Open:    last.Open,
		Current: last.Close,
	}, nil
}

// readBars parses a csv file with a header row and
// timestamp,open,high,low,close,volume columns.
func (f *Fetcher) readBars(symbol string) ([]market.Bar, error) {
	path, ok := f.data[symbol]
	if !ok {
		return nil, fmt.Errorf("replay %s: %w", symbol, market.ErrNoData)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open replay data: %w", err)
	}
	defer file.Close()

	rdr := csv.NewReader(bufio.NewReader(file))
	if _, err := rdr.Read(); err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	var bars []market.Bar
	for {
		data, err := rdr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read bar data: %w", err)
		}

		bar, err := parseBar(data)
		if err != nil {
			return nil, err
		}

		bars = append(bars, bar)
	}

	if len(bars) == 0 {
		return nil, fmt.Errorf("replay %s: %w", symbol, market.ErrNoData)
	}

	return bars, nil
}

func parseBar(data []string) (market.Bar, error) {
	if len(data) < 6 {
		return market.Bar{}, fmt.Errorf("bar row has %d columns, want 6", len(data))
	}

	timestamp, err := strconv.ParseFloat(data[0], 64)
	if err != nil {
		return market.Bar{}, fmt.Errorf("failed to parse bar time: %w", err)
	}

	fields := make([]decimal.Decimal, 5)
	for i, name := range []string{"open", "high", "low", "close", "volume"} {
		v, err := decimal.NewFromString(data[i+1])
		if err != nil {
			return market.Bar{}, fmt.Errorf("failed to read %s: %w", name, err)
		}
		fields[i] = v
	}

	return market.Bar{
		Time:   time.Unix(int64(timestamp), 0).UTC(),
		Open:   fields[0],
		High:   fields[1],
		Low:    fields[2],
		Close:  fields[3],
		Volume: fields[4],
	}, nil
}
