package alpaca

import (
	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
)

type marketDataApi struct {
	client *marketdata.Client
}

func newMarketDataApi(apiKey string, secret string, baseUrl string) *marketDataApi {
	return &marketDataApi{
		client: marketdata.NewClient(marketdata.ClientOpts{
			APIKey:    apiKey,
			APISecret: secret,
			BaseURL:   baseUrl,
		}),
	}
}

func (a *marketDataApi) GetBars(symbol string, req marketdata.GetBarsRequest) ([]marketdata.Bar, error) {
	return a.client.GetBars(symbol, req)
}

func (a *marketDataApi) GetSnapshot(symbol string, req marketdata.GetSnapshotRequest) (*marketdata.Snapshot, error) {
	return a.client.GetSnapshot(symbol, req)
}
