package core

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Param is one query string parameter.
type Param struct {
	Key   string
	Value any
}

// Params is an ordered list of query parameters. Encoding keeps insertion
// order, so the signed path matches the one sent on the wire.
type Params []Param

// Set replaces the value of key in place, or appends it.
func (p Params) Set(key string, value any) Params {
	for i := range p {
		if p[i].Key == key {
			p[i].Value = value
			return p
		}
	}
	return append(p, Param{Key: key, Value: value})
}

// Get returns the value stored under key.
func (p Params) Get(key string) (any, bool) {
	for _, param := range p {
		if param.Key == key {
			return param.Value, true
		}
	}
	return nil, false
}

// Encode renders the params form-encoded ("a=1&b=x+y") in insertion order.
func (p Params) Encode() string {
	var sb strings.Builder
	for i, param := range p {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(param.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(FormatParam(param.Value)))
	}
	return sb.String()
}

// FormatParam renders a query value as a string; numbers use their decimal form.
func FormatParam(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Request describes one call to the exchange before it is dispatched.
type Request struct {
	Operation   Operation `json:"operation"`
	Method      string    `json:"method"`
	Path        string    `json:"path"`
	Query       Params    `json:"query,omitempty"`
	Body        any       `json:"body,omitempty"`
	RequireAuth bool      `json:"require_auth"`
}

// NewRequest creates a request for op using the operation's method, path and signing flag.
func NewRequest(op Operation) *Request {
	return &Request{
		Operation:   op,
		Method:      op.Method(),
		Path:        op.Path(),
		RequireAuth: op.RequiresAuth(),
	}
}

// SetQuery sets a single query parameter and returns the request for chaining.
func (r *Request) SetQuery(key string, value any) *Request {
	r.Query = r.Query.Set(key, value)
	return r
}

// SetQueryParams copies params into the query, keeping their order.
// Calling it, even with no params, marks the request as carrying a query string.
func (r *Request) SetQueryParams(params Params) *Request {
	if r.Query == nil {
		r.Query = make(Params, 0, len(params))
	}
	for _, p := range params {
		r.Query = r.Query.Set(p.Key, p.Value)
	}
	return r
}

func (r *Request) SetBody(body any) *Request {
	r.Body = body
	return r
}

func (r *Request) SetRequireAuth(require bool) *Request {
	r.RequireAuth = require
	return r
}

// Target returns the path with its query string, exactly as it is signed and sent.
// A request whose query was set but is empty still ends in "?".
func (r *Request) Target() string {
	if r.Query == nil {
		return r.Path
	}
	return r.Path + "?" + r.Query.Encode()
}
