package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/s0up4200/torrentapi/qbittorrent"
	"github.com/s0up4200/torrentapi/torrentapi"
)

const envPrefix = "TORRENTAPI"

// Load loads the configuration from file and environment.
// Without an explicit path a missing config file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".torrentapi"))
		}

		// Check /etc
		v.AddConfigPath("/etc/torrentapi/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configPath != "" {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values. Every key gets a default
// so AutomaticEnv can override it.
func setDefaults(v *viper.Viper) {
	// API defaults
	v.SetDefault("api.app_id", "")
	v.SetDefault("api.endpoint", torrentapi.DefaultEndpoint)
	v.SetDefault("api.user_agent", torrentapi.DefaultUserAgent)
	v.SetDefault("api.request_interval", torrentapi.DefaultRequestInterval)
	v.SetDefault("api.timeout", "30s")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)

	// qBittorrent defaults
	v.SetDefault("qbittorrent.enabled", false)
	v.SetDefault("qbittorrent.url", "http://localhost:8080")
	v.SetDefault("qbittorrent.username", "")
	v.SetDefault("qbittorrent.password", "")
	v.SetDefault("qbittorrent.category", "")
	v.SetDefault("qbittorrent.save_path", "")
	v.SetDefault("qbittorrent.paused", false)
	v.SetDefault("qbittorrent.concurrency", qbittorrent.DefaultConcurrency)
	v.SetDefault("qbittorrent.timeout", "30s")
	v.SetDefault("qbittorrent.tls_skip_verify", false)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.API.AppID) == "" {
		return fmt.Errorf("api.app_id is required")
	}

	if cfg.API.Endpoint == "" {
		return fmt.Errorf("api.endpoint is required")
	}

	if cfg.API.RequestInterval < 0 {
		return fmt.Errorf("api.request_interval must not be negative: %s", cfg.API.RequestInterval)
	}

	if cfg.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative: %s", cfg.API.Timeout)
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	for name, expression := range cfg.Filters {
		if strings.TrimSpace(expression) == "" {
			return fmt.Errorf("filters.%s is empty", name)
		}
	}

	if cfg.QBittorrent.Enabled {
		if cfg.QBittorrent.URL == "" {
			return fmt.Errorf("qbittorrent.url is required when qbittorrent is enabled")
		}
		if cfg.QBittorrent.Concurrency < 1 {
			return fmt.Errorf("qbittorrent.concurrency must be at least 1")
		}
	}

	return nil
}

// Options translates the API section into client options
func (c APIConfig) Options() []torrentapi.Option {
	opts := []torrentapi.Option{
		torrentapi.WithRequestInterval(c.RequestInterval),
	}
	if c.Endpoint != "" {
		opts = append(opts, torrentapi.WithEndpoint(c.Endpoint))
	}
	if c.UserAgent != "" {
		opts = append(opts, torrentapi.WithUserAgent(c.UserAgent))
	}
	if c.Timeout > 0 {
		opts = append(opts, torrentapi.WithTimeout(c.Timeout))
	}
	return opts
}

// Options translates the qBittorrent section into client options
func (c QBittorrentConfig) Options() []qbittorrent.Option {
	opts := []qbittorrent.Option{
		qbittorrent.WithCategory(c.Category),
		qbittorrent.WithSavePath(c.SavePath),
		qbittorrent.WithTags(c.Tags...),
		qbittorrent.WithPaused(c.Paused),
	}
	if c.Concurrency > 0 {
		opts = append(opts, qbittorrent.WithConcurrency(c.Concurrency))
	}
	if c.Timeout > 0 {
		opts = append(opts, qbittorrent.WithTimeout(c.Timeout))
	}
	if c.TLSSkipVerify {
		opts = append(opts, qbittorrent.WithInsecureSkipVerify())
	}
	return opts
}
