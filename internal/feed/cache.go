package feed

import (
	"context"
	"fmt"

	"github.com/gamma-omg/stockdash/internal/market"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// Key identifies one cached series. Equality is exact on all three fields;
// symbol casing is deliberately not normalized, so "AAPL" and "aapl" occupy
// distinct slots.
type Key struct {
	Symbol   string
	Period   string
	Interval string
}

func (k Key) String() string {
	return k.Symbol + "|" + k.Period + "|" + k.Interval
}

// Cache memoizes history fetches with an LRU bound. While a key is resident
// it is fetched over the network at most once: hits touch recency, concurrent
// misses for the same key are collapsed into a single in-flight fetch, and a
// failed fetch is never stored, so the next call retries from scratch.
// There is no time-to-live; a resident series is returned as-is even after
// the market has moved.
type Cache struct {
	fetch HistoryFunc
	lru   *lru.Cache[Key, market.Series]
	group singleflight.Group
}

func NewCache(fetch HistoryFunc, size int) (*Cache, error) {
	l, err := lru.New[Key, market.Series](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create series cache: %w", err)
	}

	return &Cache{
		fetch: fetch,
		lru:   l,
	}, nil
}

func (c *Cache) Get(ctx context.Context, symbol, period, interval string) (market.Series, error) {
	k := Key{Symbol: symbol, Period: period, Interval: interval}
	if s, ok := c.lru.Get(k); ok {
		return s, nil
	}

	v, err, _ := c.group.Do(k.String(), func() (interface{}, error) {
		// a concurrent caller may have stored the series while we waited
		if s, ok := c.lru.Get(k); ok {
			return s, nil
		}

		s, err := c.fetch(ctx, symbol, period, interval)
		if err != nil {
			return nil, err
		}

		c.lru.Add(k, s)
		return s, nil
	})
	if err != nil {
		return market.Series{}, err
	}

	return v.(market.Series), nil
}

func (c *Cache) Len() int {
	return c.lru.Len()
}
