package core

import "net/http"

// Operation identifies one Codex Exchange REST endpoint.
type Operation int

// Operation constants define all supported exchange operations.
const (
	// OpGetInfo retrieves general exchange information.
	OpGetInfo Operation = iota
	// OpGetTickers retrieves tickers for every market.
	OpGetTickers
	// OpGetTradesHistory retrieves public trades for a market.
	OpGetTradesHistory
	// OpGetOrderBook retrieves the order book of a market.
	OpGetOrderBook
	// OpGetCurrencies retrieves the listed currencies.
	OpGetCurrencies
	// OpGetMarkets retrieves the listed markets.
	OpGetMarkets
	// OpGetBalances retrieves account balances.
	OpGetBalances
	// OpGetMyOrdersHistory retrieves the account's historical orders.
	OpGetMyOrdersHistory
	// OpGetMyActiveOrders retrieves the account's open orders.
	OpGetMyActiveOrders
	// OpGetDepositAddress retrieves the deposit address for a currency.
	OpGetDepositAddress
)

type operationSpec struct {
	name   string
	method string
	path   string
	signed bool
}

var operations = [...]operationSpec{
	OpGetInfo:            {"GET_INFO", http.MethodGet, "/info", false},
	OpGetTickers:         {"GET_TICKERS", http.MethodGet, "/tickers", false},
	OpGetTradesHistory:   {"GET_TRADES_HISTORY", http.MethodGet, "/trades_history", false},
	OpGetOrderBook:       {"GET_ORDER_BOOK", http.MethodGet, "/order-book", false},
	OpGetCurrencies:      {"GET_CURRENCIES", http.MethodGet, "/coins2/currency", false},
	OpGetMarkets:         {"GET_MARKETS", http.MethodGet, "/coins2/market", false},
	OpGetBalances:        {"GET_BALANCES", http.MethodGet, "/balances", true},
	OpGetMyOrdersHistory: {"GET_MY_ORDERS_HISTORY", http.MethodGet, "/orders_history/my", true},
	OpGetMyActiveOrders:  {"GET_MY_ACTIVE_ORDERS", http.MethodGet, "/orders/active", true},
	OpGetDepositAddress:  {"GET_DEPOSIT_ADDRESS", http.MethodGet, "/coins2/api/deposit/%s/address", true},
}

// String returns the string representation of the operation.
func (o Operation) String() string {
	if int(o) < 0 || int(o) >= len(operations) {
		return "UNKNOWN"
	}
	return operations[o].name
}

// Method returns the HTTP method of the endpoint.
func (o Operation) Method() string {
	return operations[o].method
}

// Path returns the endpoint path. OpGetDepositAddress returns a format
// string with one %s verb for the currency segment.
func (o Operation) Path() string {
	return operations[o].path
}

// RequiresAuth reports whether the endpoint must be signed.
func (o Operation) RequiresAuth() bool {
	return operations[o].signed
}

// Operations returns every supported operation in declaration order.
func Operations() []Operation {
	ops := make([]Operation, len(operations))
	for i := range operations {
		ops[i] = Operation(i)
	}
	return ops
}
