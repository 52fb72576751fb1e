package exchange

import (
	"context"

	"codex/pkg/core"
)

// Exchange is the Codex Exchange REST API. Every method performs one
// blocking HTTP call and returns the decoded JSON reply as-is.
// Methods marked private require both API keys.
type Exchange interface {
	Name() string

	GetInfo(ctx context.Context) (*core.Response, error)
	GetTickers(ctx context.Context) (*core.Response, error)
	GetTradesHistory(ctx context.Context, market string, limit int, opts ...Option) (*core.Response, error)
	GetOrderBook(ctx context.Context, market string) (*core.Response, error)
	GetCurrencies(ctx context.Context) (*core.Response, error)
	GetMarkets(ctx context.Context) (*core.Response, error)

	// Private.
	GetBalances(ctx context.Context) (*core.Response, error)
	GetMyOrdersHistory(ctx context.Context, fromTime, toTime int64, limit int, opts ...Option) (*core.Response, error)
	GetMyActiveOrders(ctx context.Context, opts ...Option) (*core.Response, error)
	GetDepositAddress(ctx context.Context, currency string) (*core.Response, error)

	Close() error
}
