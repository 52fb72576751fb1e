package core

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperation_String(t *testing.T) {
	tests := []struct {
		name string
		op   Operation
		want string
	}{
		{"get_info", OpGetInfo, "GET_INFO"},
		{"get_tickers", OpGetTickers, "GET_TICKERS"},
		{"get_trades_history", OpGetTradesHistory, "GET_TRADES_HISTORY"},
		{"get_order_book", OpGetOrderBook, "GET_ORDER_BOOK"},
		{"get_currencies", OpGetCurrencies, "GET_CURRENCIES"},
		{"get_markets", OpGetMarkets, "GET_MARKETS"},
		{"get_balances", OpGetBalances, "GET_BALANCES"},
		{"get_my_orders_history", OpGetMyOrdersHistory, "GET_MY_ORDERS_HISTORY"},
		{"get_my_active_orders", OpGetMyActiveOrders, "GET_MY_ACTIVE_ORDERS"},
		{"get_deposit_address", OpGetDepositAddress, "GET_DEPOSIT_ADDRESS"},
		{"out_of_range", Operation(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.op.String())
		})
	}
}

func TestOperation_Count(t *testing.T) {
	assert.Len(t, Operations(), 10)
}

func TestOperation_Metadata(t *testing.T) {
	tests := []struct {
		op     Operation
		path   string
		signed bool
	}{
		{OpGetInfo, "/info", false},
		{OpGetTickers, "/tickers", false},
		{OpGetTradesHistory, "/trades_history", false},
		{OpGetOrderBook, "/order-book", false},
		{OpGetCurrencies, "/coins2/currency", false},
		{OpGetMarkets, "/coins2/market", false},
		{OpGetBalances, "/balances", true},
		{OpGetMyOrdersHistory, "/orders_history/my", true},
		{OpGetMyActiveOrders, "/orders/active", true},
		{OpGetDepositAddress, "/coins2/api/deposit/%s/address", true},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			assert.Equal(t, http.MethodGet, tt.op.Method())
			assert.Equal(t, tt.path, tt.op.Path())
			assert.Equal(t, tt.signed, tt.op.RequiresAuth())
		})
	}
}
