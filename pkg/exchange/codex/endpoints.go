package codex

import (
	"context"

	"codex/pkg/core"
	"codex/pkg/exchange"
)

func (e *CodexExchange) call(ctx context.Context, op core.Operation, options *exchange.Options) (*core.Response, error) {
	req, err := e.protocol.BuildRequest(op, options)
	if err != nil {
		return nil, err
	}
	return e.dispatch(ctx, req)
}

// GetInfo retrieves general exchange information.
func (e *CodexExchange) GetInfo(ctx context.Context) (*core.Response, error) {
	return e.call(ctx, core.OpGetInfo, nil)
}

// GetTickers retrieves tickers for all markets.
func (e *CodexExchange) GetTickers(ctx context.Context) (*core.Response, error) {
	return e.call(ctx, core.OpGetTickers, nil)
}

// GetTradesHistory retrieves public trades for market.
// Accepts WithFromTime, WithToTime and WithPageToken.
func (e *CodexExchange) GetTradesHistory(ctx context.Context, market string, limit int, opts ...exchange.Option) (*core.Response, error) {
	options := exchange.ApplyOptions(opts...)
	options.Market = &market
	options.Limit = &limit
	return e.call(ctx, core.OpGetTradesHistory, options)
}

// GetOrderBook retrieves the order book for market.
func (e *CodexExchange) GetOrderBook(ctx context.Context, market string) (*core.Response, error) {
	return e.call(ctx, core.OpGetOrderBook, &exchange.Options{Market: &market})
}

// GetCurrencies retrieves the listed currencies.
func (e *CodexExchange) GetCurrencies(ctx context.Context) (*core.Response, error) {
	return e.call(ctx, core.OpGetCurrencies, nil)
}

// GetMarkets retrieves the listed markets.
func (e *CodexExchange) GetMarkets(ctx context.Context) (*core.Response, error) {
	return e.call(ctx, core.OpGetMarkets, nil)
}

// GetBalances retrieves account balances. Requires credentials.
func (e *CodexExchange) GetBalances(ctx context.Context) (*core.Response, error) {
	return e.call(ctx, core.OpGetBalances, nil)
}

// GetMyOrdersHistory retrieves the account's orders between fromTime and toTime.
// Accepts WithMarket, WithPageToken and WithSide. Requires credentials.
func (e *CodexExchange) GetMyOrdersHistory(ctx context.Context, fromTime, toTime int64, limit int, opts ...exchange.Option) (*core.Response, error) {
	options := exchange.ApplyOptions(opts...)
	options.FromTime = &fromTime
	options.ToTime = &toTime
	options.Limit = &limit
	return e.call(ctx, core.OpGetMyOrdersHistory, options)
}

// GetMyActiveOrders retrieves the account's open orders. from_uuid is sent
// empty by default; see exchange.WithoutFromUUID. Requires credentials.
func (e *CodexExchange) GetMyActiveOrders(ctx context.Context, opts ...exchange.Option) (*core.Response, error) {
	return e.call(ctx, core.OpGetMyActiveOrders, exchange.ApplyOptions(opts...))
}

// GetDepositAddress retrieves the deposit address for currency. Requires credentials.
func (e *CodexExchange) GetDepositAddress(ctx context.Context, currency string) (*core.Response, error) {
	return e.call(ctx, core.OpGetDepositAddress, &exchange.Options{Currency: &currency})
}
