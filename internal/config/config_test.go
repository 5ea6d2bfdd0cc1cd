package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	cfg := New()

	if cfg.Shopify.APIVersion != "2024-07" {
		t.Errorf("expected default api version 2024-07, got %s", cfg.Shopify.APIVersion)
	}
	if cfg.Archive.OutputDir != "./archive" {
		t.Errorf("expected default output dir ./archive, got %s", cfg.Archive.OutputDir)
	}
	if cfg.Archive.PageSize != 100 {
		t.Errorf("expected default page size 100, got %d", cfg.Archive.PageSize)
	}
	if cfg.PageTimeout() != 15*time.Second {
		t.Errorf("expected default page timeout 15s, got %v", cfg.PageTimeout())
	}
	if cfg.FetchTimeout() != 5*time.Minute {
		t.Errorf("expected default fetch timeout 5m, got %v", cfg.FetchTimeout())
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config")

	cfg := New()
	cfg.Shopify.Store = "my-test-store"
	cfg.Shopify.AccessToken = "shpat_test_12345"
	cfg.Archive.OutputDir = "/tmp/shop-archive"
	cfg.Archive.PageSize = 50
	cfg.Archive.PageTimeoutSeconds = 30

	if err := Save(cfg, configPath); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	info, err := os.Stat(configPath)
	if err != nil {
		t.Fatal("config file was not created")
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected 0600 permissions on config file, got %v", info.Mode().Perm())
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Shopify.Store != cfg.Shopify.Store {
		t.Errorf("Store mismatch: expected %s, got %s", cfg.Shopify.Store, loaded.Shopify.Store)
	}
	if loaded.Shopify.AccessToken != cfg.Shopify.AccessToken {
		t.Errorf("AccessToken mismatch: expected %s, got %s", cfg.Shopify.AccessToken, loaded.Shopify.AccessToken)
	}
	if loaded.Archive.OutputDir != cfg.Archive.OutputDir {
		t.Errorf("OutputDir mismatch: expected %s, got %s", cfg.Archive.OutputDir, loaded.Archive.OutputDir)
	}
	if loaded.Archive.PageSize != 50 {
		t.Errorf("PageSize mismatch: expected 50, got %d", loaded.Archive.PageSize)
	}
	if loaded.PageTimeout() != 30*time.Second {
		t.Errorf("PageTimeout mismatch: expected 30s, got %v", loaded.PageTimeout())
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/path/that/does/not/exist/config")
	if err != nil {
		t.Fatalf("Load should not fail for non-existent file: %v", err)
	}
	if cfg.Archive.PageSize != 100 {
		t.Error("expected defaults for non-existent file")
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := New()
		cfg.Shopify.Store = "my-store"
		cfg.Shopify.AccessToken = "shpat_x"
		return cfg
	}

	if err := base().Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}

	cfg := base()
	cfg.Shopify.Store = ""
	if err := cfg.Validate(); !errors.Is(err, ErrMissingStore) {
		t.Errorf("expected ErrMissingStore, got %v", err)
	}

	// A full endpoint override stands in for the store handle.
	cfg.Shopify.APIBaseURL = "http://127.0.0.1:9999/graphql"
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected APIBaseURL to satisfy the store requirement, got %v", err)
	}

	cfg = base()
	cfg.Shopify.AccessToken = ""
	if err := cfg.Validate(); !errors.Is(err, ErrMissingAccessToken) {
		t.Errorf("expected ErrMissingAccessToken, got %v", err)
	}

	cfg = base()
	cfg.Archive.OutputDir = ""
	if err := cfg.Validate(); !errors.Is(err, ErrMissingOutputDir) {
		t.Errorf("expected ErrMissingOutputDir, got %v", err)
	}

	cfg = base()
	cfg.Archive.PageSize = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidPageSize) {
		t.Errorf("expected ErrInvalidPageSize, got %v", err)
	}

	cfg = base()
	cfg.Archive.PageSize = 500
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidPageSize) {
		t.Errorf("expected ErrInvalidPageSize for oversized page, got %v", err)
	}
}

func TestEndpoint(t *testing.T) {
	cfg := New()
	cfg.Shopify.Store = "my-store"

	want := "https://my-store.myshopify.com/admin/api/2024-07/graphql.json"
	if got := cfg.Endpoint(); got != want {
		t.Errorf("Endpoint() = %s, want %s", got, want)
	}

	cfg.Shopify.APIBaseURL = "http://localhost:8080/graphql"
	if got := cfg.Endpoint(); got != "http://localhost:8080/graphql" {
		t.Errorf("Endpoint() override = %s, want http://localhost:8080/graphql", got)
	}
}
