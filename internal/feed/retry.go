package feed

import (
	"context"
	"time"

	"github.com/gamma-omg/stockdash/internal/config"
	"github.com/gamma-omg/stockdash/internal/market"
)

// HistoryFunc fetches the bars for one symbol/period/interval.
type HistoryFunc func(ctx context.Context, symbol, period, interval string) (market.Series, error)

// Retrier wraps a history fetch with bounded exponential backoff: the first
// retry waits BaseWait, each following wait doubles, capped at MaxWait.
// Every error is retried, permanent ones included, and the last attempt's
// error is returned to the caller unwrapped.
type Retrier struct {
	attempts int
	baseWait time.Duration
	maxWait  time.Duration
	sleep    func(time.Duration)
}

func NewRetrier(cfg config.Fetch) *Retrier {
	return &Retrier{
		attempts: cfg.Attempts,
		baseWait: time.Duration(cfg.BaseWait) * time.Second,
		maxWait:  time.Duration(cfg.MaxWait) * time.Second,
		sleep:    time.Sleep,
	}
}

// History decorates next with the retry policy. Sleeps are real wall-clock
// waits and do not observe ctx; a triggered fetch runs to completion.
func (r *Retrier) History(next HistoryFunc) HistoryFunc {
	return func(ctx context.Context, symbol, period, interval string) (market.Series, error) {
		wait := r.baseWait
		for attempt := 1; ; attempt++ {
			s, err := next(ctx, symbol, period, interval)
			if err == nil {
				return s, nil
			}

			if attempt >= r.attempts {
				return market.Series{}, err
			}

			r.sleep(wait)
			wait *= 2
			if wait > r.maxWait {
				wait = r.maxWait
			}
		}
	}
}
