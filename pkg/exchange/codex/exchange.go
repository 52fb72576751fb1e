package codex

import (
	"context"
	"fmt"
	"maps"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"

	httpClient "codex/internal/http"
	"codex/pkg/core"
)

type requestSigner interface {
	Sign(path, jsonPayload string) (*core.SignedHeaders, error)
}

// CodexExchange is a client for the Codex Exchange REST API.
// It holds no mutable state besides the transport, so it may be shared
// between goroutines.
type CodexExchange struct {
	config     *core.Config
	baseURL    string
	signer     requestSigner
	httpClient *httpClient.Client
	protocol   *Protocol
	logger     zerolog.Logger
}

// Option is a functional option for configuring the CodexExchange.
type Option func(*Options)

// Options holds configuration options for the CodexExchange.
type Options struct {
	Logger zerolog.Logger
	// Clock supplies the signing nonce. Defaults to time.Now.
	Clock func() time.Time
}

// WithLogger returns an option that sets the logger for the exchange.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithClock returns an option that replaces the time source used for nonces.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		o.Clock = now
	}
}

// New creates a CodexExchange from config. Credentials are optional; without
// both keys only public endpoints can be called.
func New(config *core.Config, opts ...Option) (*CodexExchange, error) {
	if config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	options := &Options{
		Logger: zerolog.Nop(),
		Clock:  time.Now,
	}
	for _, opt := range opts {
		opt(options)
	}

	client, err := httpClient.NewClient(&httpClient.Config{
		Timeout: config.Timeout,
		Headers: config.Headers,
	}, options.Logger)
	if err != nil {
		return nil, fmt.Errorf("create http client: %w", err)
	}

	var creds *core.Credentials
	if config.Credentials != nil {
		c := *config.Credentials
		creds = &c
	}

	return &CodexExchange{
		config:     config,
		baseURL:    config.BaseURL,
		signer:     NewSigner(creds, options.Clock),
		httpClient: client,
		protocol:   NewProtocol(),
		logger:     options.Logger,
	}, nil
}

// Name returns the exchange identifier "codex".
func (e *CodexExchange) Name() string {
	return e.protocol.Name()
}

// BaseURL returns the URL every endpoint path is appended to.
func (e *CodexExchange) BaseURL() string {
	return e.baseURL
}

// Close releases resources used by the exchange, including the HTTP client.
func (e *CodexExchange) Close() error {
	if e.httpClient != nil {
		return e.httpClient.Close()
	}
	return nil
}

// dispatch signs (when required), sends and parses one request. Signing
// failures are returned before the transport is touched. Every other
// failure is an *core.APIError.
func (e *CodexExchange) dispatch(ctx context.Context, req *core.Request) (*core.Response, error) {
	target := req.Target()

	headers := map[string]string{
		core.HeaderContentType: core.ContentTypeJSON,
	}

	if req.RequireAuth {
		signed, err := e.signer.Sign(target, "")
		if err != nil {
			return nil, err
		}
		maps.Copy(headers, signed.Map())
	}

	var body []byte
	if req.Body != nil {
		data, err := sonic.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshal payload: %w", err)
		}
		body = data
	}

	resp, err := e.httpClient.Do(ctx, req.Method, e.baseURL+target, headers, body)
	if err != nil {
		return nil, core.NewTransportError(DisplayName, err)
	}

	result, err := e.protocol.ParseResponse(resp)
	if err != nil {
		e.logger.Debug().Err(err).
			Str("operation", req.Operation.String()).
			Int("status", resp.StatusCode).
			Msg("api error")
		return nil, err
	}

	return result, nil
}
