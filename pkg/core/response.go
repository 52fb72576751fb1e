package core

import "github.com/bytedance/sonic"

// Response is a successfully parsed exchange reply.
type Response struct {
	// StatusCode is the HTTP status code. It may be 4xx/5xx when the body carried no error field.
	StatusCode int `json:"status_code"`
	// Body contains the raw response body bytes.
	Body []byte `json:"-"`
	// Data is the decoded JSON value: map[string]any, []any or a scalar.
	Data any `json:"data"`
}

// Unmarshal decodes the raw body into v.
func (r *Response) Unmarshal(v any) error {
	return sonic.Unmarshal(r.Body, v)
}

// Object returns Data as a JSON object, if it is one.
func (r *Response) Object() (map[string]any, bool) {
	m, ok := r.Data.(map[string]any)
	return m, ok
}

// SignedHeaders are the authentication values attached to a private request.
type SignedHeaders struct {
	Signature string `json:"signature"`
	PublicKey string `json:"public_key"`
	// Tonce is the decimal nanosecond timestamp embedded in the signed message.
	Tonce string `json:"tonce"`
}

// Header names of a signed request.
const (
	HeaderContentType = "Content-Type"
	HeaderSignature   = "X-Signature"
	HeaderPublicKey   = "X-Public-Key"
	HeaderTonce       = "X-Tonce"

	ContentTypeJSON = "application/json"
)

// Map returns the headers keyed by their wire names.
func (h *SignedHeaders) Map() map[string]string {
	return map[string]string{
		HeaderSignature: h.Signature,
		HeaderPublicKey: h.PublicKey,
		HeaderTonce:     h.Tonce,
	}
}
