package codex

import (
	"fmt"
	"net/url"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	httpClient "codex/internal/http"
	"codex/pkg/core"
	"codex/pkg/exchange"
)

// DisplayName is the service name used in error descriptions.
const DisplayName = "Codex Exchange"

// Protocol builds Codex requests from endpoint options and turns raw
// HTTP responses into parsed JSON or an *core.APIError.
type Protocol struct {
	validate *validator.Validate
}

// NewProtocol creates a new Codex protocol instance.
func NewProtocol() *Protocol {
	return &Protocol{validate: validator.New()}
}

// Name returns the protocol identifier "codex".
func (p *Protocol) Name() string {
	return "codex"
}

// BaseURL returns the production API base URL.
func (p *Protocol) BaseURL() string {
	return core.ProductionURL
}

// SupportedOperations returns the list of operations supported by this protocol.
func (p *Protocol) SupportedOperations() []core.Operation {
	return core.Operations()
}

// BuildRequest constructs the request for op. Required parameters are
// validated here, before anything is signed or sent.
func (p *Protocol) BuildRequest(op core.Operation, o *exchange.Options) (*core.Request, error) {
	if o == nil {
		o = exchange.ApplyOptions()
	}

	switch op {
	case core.OpGetInfo, core.OpGetTickers, core.OpGetCurrencies, core.OpGetMarkets, core.OpGetBalances:
		return core.NewRequest(op), nil
	case core.OpGetTradesHistory:
		return p.buildTradesHistoryRequest(o)
	case core.OpGetOrderBook:
		return p.buildOrderBookRequest(o)
	case core.OpGetMyOrdersHistory:
		return p.buildMyOrdersHistoryRequest(o)
	case core.OpGetMyActiveOrders:
		return p.buildMyActiveOrdersRequest(o), nil
	case core.OpGetDepositAddress:
		return p.buildDepositAddressRequest(o)
	default:
		return nil, fmt.Errorf("unsupported operation: %s", op)
	}
}

type tradesHistoryParams struct {
	Market string `validate:"required"`
	Limit  *int   `validate:"required"`
}

func (p *Protocol) buildTradesHistoryRequest(o *exchange.Options) (*core.Request, error) {
	params := tradesHistoryParams{Market: deref(o.Market), Limit: o.Limit}
	if err := p.validate.Struct(params); err != nil {
		return nil, &core.ParamError{Operation: core.OpGetTradesHistory, Err: err}
	}

	query := core.Params{
		{Key: "market", Value: params.Market},
		{Key: "limit", Value: *params.Limit},
	}
	query = appendOptional(query, "from_time", o.FromTime)
	query = appendOptional(query, "to_time", o.ToTime)
	query = appendOptional(query, "page_token", o.PageToken)

	return core.NewRequest(core.OpGetTradesHistory).SetQueryParams(query), nil
}

type orderBookParams struct {
	Market string `validate:"required"`
}

func (p *Protocol) buildOrderBookRequest(o *exchange.Options) (*core.Request, error) {
	params := orderBookParams{Market: deref(o.Market)}
	if err := p.validate.Struct(params); err != nil {
		return nil, &core.ParamError{Operation: core.OpGetOrderBook, Err: err}
	}

	return core.NewRequest(core.OpGetOrderBook).
		SetQueryParams(core.Params{{Key: "market", Value: params.Market}}), nil
}

type ordersHistoryParams struct {
	FromTime *int64 `validate:"required"`
	ToTime   *int64 `validate:"required"`
	Limit    *int   `validate:"required"`
}

func (p *Protocol) buildMyOrdersHistoryRequest(o *exchange.Options) (*core.Request, error) {
	params := ordersHistoryParams{FromTime: o.FromTime, ToTime: o.ToTime, Limit: o.Limit}
	if err := p.validate.Struct(params); err != nil {
		return nil, &core.ParamError{Operation: core.OpGetMyOrdersHistory, Err: err}
	}

	query := core.Params{
		{Key: "from_time", Value: *params.FromTime},
		{Key: "to_time", Value: *params.ToTime},
		{Key: "limit", Value: *params.Limit},
	}
	query = appendOptional(query, "market", o.Market)
	query = appendOptional(query, "page_token", o.PageToken)
	query = appendOptional(query, "side", o.Side)

	return core.NewRequest(core.OpGetMyOrdersHistory).SetQueryParams(query), nil
}

// buildMyActiveOrdersRequest always carries a query string, even an empty one.
func (p *Protocol) buildMyActiveOrdersRequest(o *exchange.Options) *core.Request {
	query := core.Params{}
	query = appendOptional(query, "limit", o.Limit)
	query = appendOptional(query, "order", o.OrderBy)
	query = appendOptional(query, "from_time", o.FromTime)
	query = appendOptional(query, "to_time", o.ToTime)
	query = appendOptional(query, "from_uuid", o.FromUUID)
	query = appendOptional(query, "market", o.Market)
	query = appendOptional(query, "side", o.Side)
	query = appendOptional(query, "type", o.OrderType)
	query = appendOptional(query, "status", o.Status)

	return core.NewRequest(core.OpGetMyActiveOrders).SetQueryParams(query)
}

type depositAddressParams struct {
	Currency string `validate:"required"`
}

func (p *Protocol) buildDepositAddressRequest(o *exchange.Options) (*core.Request, error) {
	params := depositAddressParams{Currency: deref(o.Currency)}
	if err := p.validate.Struct(params); err != nil {
		return nil, &core.ParamError{Operation: core.OpGetDepositAddress, Err: err}
	}

	req := core.NewRequest(core.OpGetDepositAddress)
	req.Path = fmt.Sprintf(req.Path, url.PathEscape(params.Currency))
	return req, nil
}

// ParseResponse decodes the body as JSON. A body that is not JSON is always
// an error; a JSON body is an error only when the status is 4xx/5xx and the
// top-level object carries a non-null "error" field. Anything else,
// including error statuses without that field, is returned as-is.
func (p *Protocol) ParseResponse(resp *httpClient.Response) (*core.Response, error) {
	if resp == nil {
		return nil, fmt.Errorf("nil response")
	}

	var data any
	if err := sonic.Unmarshal(resp.Body, &data); err != nil {
		apiErr := core.NewAPIError(
			resp.StatusCode,
			string(resp.Body),
			fmt.Sprintf("%s returned error with code %d.", DisplayName, resp.StatusCode),
		)
		if apiErr.Type == core.ErrorTypeUnknown {
			apiErr.Type = core.ErrorTypeMalformedResponse
		}
		return nil, apiErr
	}

	if resp.StatusCode >= 400 {
		if obj, ok := data.(map[string]any); ok && obj["error"] != nil {
			message := errorText(obj["error"])
			return nil, core.NewAPIError(
				resp.StatusCode,
				message,
				fmt.Sprintf("%s returned '%s'", DisplayName, message),
			)
		}
	}

	return &core.Response{
		StatusCode: resp.StatusCode,
		Body:       resp.Body,
		Data:       data,
	}, nil
}

// errorText renders the "error" value; non-string values keep their JSON form.
func errorText(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	text, err := sonic.MarshalString(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return text
}

func appendOptional[T any](query core.Params, key string, value *T) core.Params {
	if value == nil {
		return query
	}
	return query.Set(key, *value)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
