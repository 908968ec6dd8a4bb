package torrentapi

import (
	"net/http"
	"time"
)

const (
	// DefaultEndpoint is the API endpoint used by both the handshake and queries
	DefaultEndpoint = "https://torrentapi.org/pubapi_v2.php"
	// DefaultUserAgent is sent with every request
	DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:73.0) Gecko/20100101 Firefox/73.0"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	endpoint   string
	userAgent  string
	interval   time.Duration
	pacer      Pacer
	httpClient *http.Client
	timeout    time.Duration
	transport  Transport
	now        func() time.Time
}

func defaultOptions() clientOptions {
	return clientOptions{
		endpoint:  DefaultEndpoint,
		userAgent: DefaultUserAgent,
		interval:  DefaultRequestInterval,
		timeout:   defaultTimeout,
		now:       time.Now,
	}
}

// WithEndpoint sets the API endpoint URL.
func WithEndpoint(endpoint string) Option {
	return func(o *clientOptions) {
		o.endpoint = endpoint
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithRequestInterval sets the delay observed before every request.
func WithRequestInterval(interval time.Duration) Option {
	return func(o *clientOptions) {
		o.interval = interval
	}
}

// WithPacer replaces the pacer, e.g. to share one between clients.
// It takes precedence over WithRequestInterval.
func WithPacer(pacer Pacer) Option {
	return func(o *clientOptions) {
		o.pacer = pacer
	}
}

// WithHTTPClient sets the http.Client used by the default transport.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout of the default transport.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithTransport replaces the HTTP transport entirely.
func WithTransport(transport Transport) Option {
	return func(o *clientOptions) {
		o.transport = transport
	}
}

// WithClock sets the time source used for token expiry.
func WithClock(now func() time.Time) Option {
	return func(o *clientOptions) {
		if now != nil {
			o.now = now
		}
	}
}
