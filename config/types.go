package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	API         APIConfig         `mapstructure:"api"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Filters     FilterConfig      `mapstructure:"filters"`
	QBittorrent QBittorrentConfig `mapstructure:"qbittorrent"`
}

// APIConfig holds the torrent API connection details
type APIConfig struct {
	AppID           string        `mapstructure:"app_id"`
	Endpoint        string        `mapstructure:"endpoint"`
	UserAgent       string        `mapstructure:"user_agent"`
	RequestInterval time.Duration `mapstructure:"request_interval"`
	Timeout         time.Duration `mapstructure:"timeout"`
}

// FilterConfig maps preset names to filter expressions
type FilterConfig map[string]string

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// QBittorrentConfig holds qBittorrent connection details and add settings
type QBittorrentConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	URL           string        `mapstructure:"url"`
	Username      string        `mapstructure:"username"`
	Password      string        `mapstructure:"password"`
	Category      string        `mapstructure:"category"`
	SavePath      string        `mapstructure:"save_path"`
	Tags          []string      `mapstructure:"tags"`
	Paused        bool          `mapstructure:"paused"`
	Concurrency   int           `mapstructure:"concurrency"`
	Timeout       time.Duration `mapstructure:"timeout"`
	TLSSkipVerify bool          `mapstructure:"tls_skip_verify"`
}
