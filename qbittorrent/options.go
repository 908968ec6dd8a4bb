package qbittorrent

import "time"

// DefaultConcurrency is the number of magnet links added in parallel
const DefaultConcurrency = 4

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	timeout     time.Duration
	skipVerify  bool
	concurrency int
	category    string
	savePath    string
	tags        []string
	paused      bool
}

func defaultOptions() clientOptions {
	return clientOptions{
		timeout:     30 * time.Second,
		concurrency: DefaultConcurrency,
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithInsecureSkipVerify disables certificate verification.
// Use with caution and only for development/testing.
func WithInsecureSkipVerify() Option {
	return func(o *clientOptions) {
		o.skipVerify = true
	}
}

// WithConcurrency sets how many torrents are added at once.
func WithConcurrency(n int) Option {
	return func(o *clientOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithCategory sets the qBittorrent category of added torrents.
func WithCategory(category string) Option {
	return func(o *clientOptions) {
		o.category = category
	}
}

// WithSavePath sets the download directory of added torrents.
func WithSavePath(path string) Option {
	return func(o *clientOptions) {
		o.savePath = path
	}
}

// WithTags sets the tags of added torrents.
func WithTags(tags ...string) Option {
	return func(o *clientOptions) {
		o.tags = tags
	}
}

// WithPaused adds torrents in the paused state.
func WithPaused(paused bool) Option {
	return func(o *clientOptions) {
		o.paused = paused
	}
}
