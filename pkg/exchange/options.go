package exchange

import "github.com/google/uuid"

// Option sets an optional endpoint parameter. Endpoints read only the
// parameters they document and ignore the rest.
type Option func(*Options)

// Options holds endpoint parameters. A nil field is left out of the query string.
type Options struct {
	Market    *string
	Currency  *string
	Limit     *int
	FromTime  *int64
	ToTime    *int64
	PageToken *string
	Side      *string
	OrderBy   *string
	OrderType *string
	Status    *string
	// FromUUID defaults to the empty string, so active order queries send
	// "from_uuid=" unless WithoutFromUUID is given.
	FromUUID *string
}

func WithLimit(limit int) Option {
	return func(o *Options) {
		o.Limit = &limit
	}
}

func WithFromTime(ts int64) Option {
	return func(o *Options) {
		o.FromTime = &ts
	}
}

func WithToTime(ts int64) Option {
	return func(o *Options) {
		o.ToTime = &ts
	}
}

func WithTimeRange(from, to int64) Option {
	return func(o *Options) {
		o.FromTime = &from
		o.ToTime = &to
	}
}

// WithPageToken passes through the page token returned by a previous call.
func WithPageToken(token string) Option {
	return func(o *Options) {
		o.PageToken = &token
	}
}

func WithMarket(market string) Option {
	return func(o *Options) {
		o.Market = &market
	}
}

func WithSide(side string) Option {
	return func(o *Options) {
		o.Side = &side
	}
}

// WithOrderBy sets the "order" sort parameter of active order queries.
func WithOrderBy(order string) Option {
	return func(o *Options) {
		o.OrderBy = &order
	}
}

// WithOrderType sets the "type" filter of active order queries.
func WithOrderType(orderType string) Option {
	return func(o *Options) {
		o.OrderType = &orderType
	}
}

func WithStatus(status string) Option {
	return func(o *Options) {
		o.Status = &status
	}
}

func WithFromUUID(id string) Option {
	return func(o *Options) {
		o.FromUUID = &id
	}
}

// WithFromOrder starts an active order listing after the given order id.
func WithFromOrder(id uuid.UUID) Option {
	return WithFromUUID(id.String())
}

// WithoutFromUUID drops from_uuid from the query string entirely.
func WithoutFromUUID() Option {
	return func(o *Options) {
		o.FromUUID = nil
	}
}

// ApplyOptions returns the defaults with opts applied in order.
func ApplyOptions(opts ...Option) *Options {
	fromUUID := ""
	o := &Options{FromUUID: &fromUUID}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
