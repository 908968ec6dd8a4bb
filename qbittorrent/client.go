package qbittorrent

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/autobrr/go-qbittorrent"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/torrentapi/torrentapi"
)

// webAPI is the subset of the qBittorrent Web API the client uses
type webAPI interface {
	LoginCtx(ctx context.Context) error
	AddTorrentFromUrlCtx(ctx context.Context, url string, options map[string]string) error
	GetTorrentsCtx(ctx context.Context, o qbittorrent.TorrentFilterOptions) ([]qbittorrent.Torrent, error)
}

// Client hands torrents found through the API over to qBittorrent
type Client struct {
	client webAPI
	opts   clientOptions
	logger zerolog.Logger
}

// NewClient creates a new qBittorrent client and logs in
func NewClient(ctx context.Context, url, username, password string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	client := qbittorrent.NewClient(qbittorrent.Config{
		Host:          url,
		Username:      username,
		Password:      password,
		TLSSkipVerify: o.skipVerify,
		Timeout:       int(o.timeout / time.Second),
	})

	return newClient(ctx, client, logger, o)
}

func newClient(ctx context.Context, api webAPI, logger zerolog.Logger, o clientOptions) (*Client, error) {
	// Test connection by logging in
	if err := api.LoginCtx(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	logger.Debug().Msg("Successfully connected to qBittorrent")

	return &Client{
		client: api,
		opts:   o,
		logger: logger,
	}, nil
}

// GetTorrents retrieves the torrents with the given hashes, or all torrents
// when no hash is given
func (c *Client) GetTorrents(ctx context.Context, hashes ...string) ([]*TorrentInfo, error) {
	torrents, err := c.client.GetTorrentsCtx(ctx, qbittorrent.TorrentFilterOptions{Hashes: hashes})
	if err != nil {
		return nil, fmt.Errorf("failed to get torrents: %w", err)
	}

	c.logger.Debug().Msgf("Retrieved %d torrents from qBittorrent", len(torrents))

	results := make([]*TorrentInfo, 0, len(torrents))
	for _, t := range torrents {
		results = append(results, &TorrentInfo{
			Hash:     strings.ToLower(t.Hash),
			Name:     t.Name,
			SavePath: t.SavePath,
			State:    string(t.State),
			Size:     t.Size,
			Progress: t.Progress,
			AddedOn:  time.Unix(t.AddedOn, 0),
			Category: t.Category,
			Tags:     splitTags(t.Tags),
		})
	}

	return results, nil
}

// AddTorrent adds a single torrent by its magnet link
func (c *Client) AddTorrent(ctx context.Context, torrent torrentapi.Torrent) error {
	if !strings.HasPrefix(torrent.Download, "magnet:") {
		return fmt.Errorf("%w: %q", ErrInvalidMagnet, torrent.Download)
	}

	if err := c.client.AddTorrentFromUrlCtx(ctx, torrent.Download, c.addOptions()); err != nil {
		return fmt.Errorf("failed to add torrent: %w", err)
	}

	c.logger.Info().
		Str("torrent", torrent.Name()).
		Str("hash", torrent.InfoHash()).
		Msg("Added torrent to qBittorrent")
	return nil
}

// AddTorrents adds torrents concurrently. Torrents already present in
// qBittorrent are skipped. Individual failures are collected in the result
// and do not stop the batch.
func (c *Client) AddTorrents(ctx context.Context, torrents []torrentapi.Torrent) (AddResult, error) {
	result := AddResult{
		Requested: len(torrents),
	}

	if len(torrents) == 0 {
		return result, nil
	}

	hashes := make([]string, 0, len(torrents))
	for _, t := range torrents {
		if h := t.InfoHash(); h != "" {
			hashes = append(hashes, h)
		}
	}

	existing := make(map[string]bool)
	if len(hashes) > 0 {
		present, err := c.GetTorrents(ctx, hashes...)
		if err != nil {
			return result, err
		}
		for _, t := range present {
			existing[t.Hash] = true
		}
	}

	// Create error group with limited concurrency
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.concurrency)

	// Use mutex to protect concurrent writes
	var mu sync.Mutex
	seen := make(map[string]bool, len(torrents))

	for _, torrent := range torrents {
		hash := torrent.InfoHash()
		if hash != "" && (existing[hash] || seen[hash]) {
			c.logger.Debug().
				Str("torrent", torrent.Name()).
				Str("hash", hash).
				Msg("Torrent already in qBittorrent, skipping")
			result.Skipped = append(result.Skipped, hash)
			continue
		}
		seen[hash] = true

		g.Go(func() error {
			err := c.AddTorrent(gctx, torrent)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				c.logger.Warn().
					Err(err).
					Str("torrent", torrent.Name()).
					Msg("Failed to add torrent")
				result.Failed = append(result.Failed, AddError{Name: torrent.Name(), Hash: hash, Err: err})
				return nil // Don't stop on individual errors
			}
			result.Added = append(result.Added, hash)
			return nil
		})
	}

	_ = g.Wait()
	return result, ctx.Err()
}

func (c *Client) addOptions() map[string]string {
	options := map[string]string{
		"paused":  strconv.FormatBool(c.opts.paused),
		"stopped": strconv.FormatBool(c.opts.paused),
	}
	if c.opts.category != "" {
		options["category"] = c.opts.category
	}
	if c.opts.savePath != "" {
		options["savepath"] = c.opts.savePath
	}
	if len(c.opts.tags) > 0 {
		options["tags"] = strings.Join(c.opts.tags, ",")
	}
	return options
}

func splitTags(tags string) []string {
	if tags == "" {
		return nil
	}
	parts := strings.Split(tags, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
