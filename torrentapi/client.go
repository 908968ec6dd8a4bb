package torrentapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Client is a session against the API. It owns the token lease, renews it
// when expired and paces every outbound request.
//
// A Client is meant for one flow at a time; calls are serialized internally.
// Use one Client per concurrent flow if parallelism is needed.
type Client struct {
	appID     string
	endpoint  string
	userAgent string
	transport Transport
	pacer     Pacer
	acquirer  *tokenAcquirer
	now       func() time.Time
	logger    zerolog.Logger

	mu    sync.Mutex
	lease *Lease
}

// NewClient creates a new client for the given app id. No request is made
// until the first call or Authenticate.
func NewClient(appID string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if strings.TrimSpace(appID) == "" {
		return nil, fmt.Errorf("%w: app id is required", ErrInvalidConfig)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.endpoint == "" {
		return nil, fmt.Errorf("%w: endpoint is required", ErrInvalidConfig)
	}

	transport := o.transport
	if transport == nil {
		httpClient := o.httpClient
		if httpClient == nil {
			httpClient = &http.Client{Timeout: o.timeout}
		}
		transport = NewHTTPTransport(httpClient)
	}

	pacer := o.pacer
	if pacer == nil {
		pacer = NewFixedPacer(o.interval)
	}

	return &Client{
		appID:     appID,
		endpoint:  o.endpoint,
		userAgent: o.userAgent,
		transport: transport,
		pacer:     pacer,
		acquirer: &tokenAcquirer{
			transport: transport,
			endpoint:  o.endpoint,
			userAgent: o.userAgent,
			now:       o.now,
		},
		now:    o.now,
		logger: logger,
	}, nil
}

// AppID returns the app id sent with every request
func (c *Client) AppID() string {
	return c.appID
}

// Token returns the current lease, if one has been acquired
func (c *Client) Token() (Lease, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.lease == nil {
		return Lease{}, false
	}
	return *c.lease, true
}

// Authenticate acquires a fresh token regardless of the current lease
func (c *Client) Authenticate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.renewLease(ctx)
}

// List lists the latest torrents. params may be nil.
func (c *Client) List(ctx context.Context, params *Parameters) ([]Torrent, error) {
	return c.call(ctx, callIntent{mode: ModeList, params: params})
}

// Search searches torrents by name. params may be nil.
func (c *Client) Search(ctx context.Context, query string, params *Parameters) ([]Torrent, error) {
	return c.search(ctx, searchKeyString, query, params)
}

// SearchByIMDB searches torrents by IMDB id, e.g. tt2861424. params may be nil.
func (c *Client) SearchByIMDB(ctx context.Context, id string, params *Parameters) ([]Torrent, error) {
	return c.search(ctx, searchKeyIMDB, id, params)
}

// SearchByTVDB searches torrents by TVDB id. params may be nil.
func (c *Client) SearchByTVDB(ctx context.Context, id string, params *Parameters) ([]Torrent, error) {
	return c.search(ctx, searchKeyTVDB, id, params)
}

// SearchByTMDB searches torrents by TMDB id. params may be nil.
func (c *Client) SearchByTMDB(ctx context.Context, id string, params *Parameters) ([]Torrent, error) {
	return c.search(ctx, searchKeyTMDB, id, params)
}

func (c *Client) search(ctx context.Context, key, value string, params *Parameters) ([]Torrent, error) {
	return c.call(ctx, callIntent{
		mode:   ModeSearch,
		search: &Param{Key: key, Value: value},
		params: params,
	})
}

// call runs one request: renew the lease if needed, pace, compose, send, resolve.
// The lease is only ever replaced before the request is sent.
func (c *Client) call(ctx context.Context, intent callIntent) ([]Torrent, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.lease == nil || !c.lease.Valid(c.now()) {
		if err := c.renewLease(ctx); err != nil {
			return nil, err
		}
	}

	if err := c.pacer.Wait(ctx); err != nil {
		return nil, err
	}

	query := composeQuery(intent, c.appID, c.lease.Value())

	c.logger.Debug().
		Str("mode", intent.mode.Wire()).
		Str("endpoint", c.endpoint).
		Msg("Making torrentapi request")

	body, err := c.transport.Get(ctx, c.endpoint, query, c.userAgent)
	if err != nil {
		return nil, asTransportError(c.endpoint, err)
	}

	torrents, err := ResolveResponse(body)
	if err != nil {
		if apiErr, ok := AsAPIError(err); ok {
			c.logger.Warn().
				Int("code", apiErr.Code).
				Str("message", apiErr.Message).
				Msg("API returned an error")
		}
		return nil, err
	}

	c.logger.Debug().
		Int("count", len(torrents)).
		Str("mode", intent.mode.Wire()).
		Msg("Retrieved torrents")

	return torrents, nil
}

// renewLease paces and performs the handshake, replacing the lease on success.
// The caller must hold c.mu.
func (c *Client) renewLease(ctx context.Context) error {
	if err := c.pacer.Wait(ctx); err != nil {
		return err
	}

	lease, err := c.acquirer.acquire(ctx, c.appID)
	if err != nil {
		return err
	}

	c.lease = &lease
	c.logger.Info().Str("app_id", c.appID).Msg("Acquired API token")
	return nil
}

func asTransportError(endpoint string, err error) error {
	var te *TransportError
	if errors.As(err, &te) {
		return err
	}
	return &TransportError{Endpoint: endpoint, Err: err}
}
