// Package config provides configuration management for shopvault.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/ini.v1"
)

// Config is the configuration contract between the CLI and the
// enumerator/pipeline. Both consume it as a plain immutable value; no
// component reads ambient process state.
//
// Config file location: ~/.config/shopvault/config
//
// INI format:
//
//	[shopify]
//	store = my-store
//	access_token = shpat_xxx
//	api_version = 2024-07
//
//	[archive]
//	output_dir = ./archive
//	page_size = 100
//	page_timeout_seconds = 15
//	fetch_timeout_minutes = 5
type Config struct {
	Shopify ShopifyConfig
	Archive ArchiveConfig
}

// ShopifyConfig contains the Admin API connection settings.
type ShopifyConfig struct {
	// Store is the store handle, i.e. the <store> part of
	// <store>.myshopify.com.
	Store string `ini:"store"`

	// AccessToken is the Admin API access token. It is supplied, not
	// acquired: shopvault performs no OAuth flow and no refresh.
	AccessToken string `ini:"access_token"`

	// APIVersion selects the Admin API version path segment.
	// Default: "2024-07"
	APIVersion string `ini:"api_version"`

	// APIBaseURL overrides the full GraphQL endpoint URL when set.
	// Meant for tests and development stores behind proxies; normal
	// runs leave it empty and the endpoint is derived from Store.
	APIBaseURL string `ini:"api_base_url"`
}

// ArchiveConfig contains settings for the local archive run.
type ArchiveConfig struct {
	// OutputDir is the root of the local directory tree the file
	// library is materialized into.
	OutputDir string `ini:"output_dir"`

	// PageSize is the number of edges requested per files query.
	// Default: 100
	PageSize int `ini:"page_size"`

	// PageTimeoutSeconds bounds each paginated query request.
	// Exceeding it aborts the request and the whole enumeration.
	// Default: 15
	PageTimeoutSeconds int `ini:"page_timeout_seconds"`

	// FetchTimeoutMinutes bounds each content download.
	// Default: 5
	FetchTimeoutMinutes int `ini:"fetch_timeout_minutes"`
}

// Validation errors
var (
	ErrMissingStore       = errors.New("store is required")
	ErrMissingAccessToken = errors.New("access_token is required")
	ErrMissingOutputDir   = errors.New("output_dir is required")
	ErrInvalidPageSize    = errors.New("page_size must be between 1 and 250")
)

// DefaultConfigPath returns the default path for the config file,
// ~/.config/shopvault/config.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "shopvault", "config"), nil
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Shopify: ShopifyConfig{
			APIVersion: "2024-07",
		},
		Archive: ArchiveConfig{
			OutputDir:           "./archive",
			PageSize:            100,
			PageTimeoutSeconds:  15,
			FetchTimeoutMinutes: 5,
		},
	}
}

// Load loads configuration from an INI file.
// If path is empty the default location is used. A missing file is not
// an error: defaults are returned and the CLI flags fill in the rest.
func Load(path string) (*Config, error) {
	cfg := New()

	if path == "" {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			return cfg, nil
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	iniFile, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := iniFile.Section("shopify").MapTo(&cfg.Shopify); err != nil {
		return nil, fmt.Errorf("failed to map [shopify] section: %w", err)
	}
	if err := iniFile.Section("archive").MapTo(&cfg.Archive); err != nil {
		return nil, fmt.Errorf("failed to map [archive] section: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to an INI file, creating the parent
// directory if needed. The file is written with 0600 permissions since
// it holds the access token.
func Save(cfg *Config, path string) error {
	if path == "" {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	iniFile := ini.Empty()
	if err := iniFile.Section("shopify").ReflectFrom(&cfg.Shopify); err != nil {
		return fmt.Errorf("failed to write [shopify] section: %w", err)
	}
	if err := iniFile.Section("archive").ReflectFrom(&cfg.Archive); err != nil {
		return fmt.Errorf("failed to write [archive] section: %w", err)
	}

	if err := iniFile.SaveTo(path); err != nil {
		return fmt.Errorf("failed to save config file: %w", err)
	}
	return os.Chmod(path, 0600)
}

// Validate checks that the settings required to run the enumerator and
// pipeline are present. Called after flag overrides are applied, so a
// failure here is a genuine precondition failure.
func (c *Config) Validate() error {
	if c.Shopify.Store == "" && c.Shopify.APIBaseURL == "" {
		return ErrMissingStore
	}
	if c.Shopify.AccessToken == "" {
		return ErrMissingAccessToken
	}
	if c.Archive.OutputDir == "" {
		return ErrMissingOutputDir
	}
	if c.Archive.PageSize < 1 || c.Archive.PageSize > 250 {
		return ErrInvalidPageSize
	}
	return nil
}

// Endpoint returns the Admin GraphQL endpoint URL.
func (c *Config) Endpoint() string {
	if c.Shopify.APIBaseURL != "" {
		return c.Shopify.APIBaseURL
	}
	return fmt.Sprintf("https://%s.myshopify.com/admin/api/%s/graphql.json",
		c.Shopify.Store, c.Shopify.APIVersion)
}

// PageTimeout returns the bound applied to each paginated query request.
func (c *Config) PageTimeout() time.Duration {
	if c.Archive.PageTimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.Archive.PageTimeoutSeconds) * time.Second
}

// FetchTimeout returns the bound applied to each content download.
func (c *Config) FetchTimeout() time.Duration {
	if c.Archive.FetchTimeoutMinutes <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(c.Archive.FetchTimeoutMinutes) * time.Minute
}
