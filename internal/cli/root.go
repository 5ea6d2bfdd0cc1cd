// Package cli provides the command-line interface for shopvault.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shopvault/shopvault/internal/config"
	"github.com/shopvault/shopvault/internal/logging"
	"github.com/shopvault/shopvault/internal/version"
)

var (
	// Global flags
	cfgFile    string
	store      string
	token      string
	tokenFile  string // Path to file containing the access token
	apiVersion string
	verbose    bool
	debug      bool

	// Global logger
	logger *logging.Logger

	// Global context for signal handling
	rootContext context.Context
	cancelFunc  context.CancelFunc
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "shopvault",
		Short: "Archive a Shopify store's file library to local disk",
		Long: `shopvault ` + version.Version + ` - Built: ` + version.BuildTime + `
Enumerates every file registered in a store's file library through the
Admin GraphQL API and downloads each one into a local directory tree,
one folder per media kind. Files already on disk are skipped, so an
interrupted run can simply be re-run.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.NewDefaultLogger()
			if verbose || debug {
				logging.SetGlobalLevel(-1) // zerolog.DebugLevel
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Configuration file path (default ~/.config/shopvault/config)")
	rootCmd.PersistentFlags().StringVar(&store, "store", "", "Store handle, the <store> part of <store>.myshopify.com (overrides config)")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Admin API access token (overrides all other sources)")
	rootCmd.PersistentFlags().StringVar(&tokenFile, "token-file", "", "Path to file containing the access token")
	rootCmd.PersistentFlags().StringVar(&apiVersion, "api-version", "", "Admin API version (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (shows debug messages)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output (same as --verbose)")

	rootCmd.Version = version.Version + " (" + version.BuildTime + ")"

	rootCmd.AddCommand(newArchiveCmd())
	rootCmd.AddCommand(newListCmd())

	return rootCmd
}

// Execute runs the root command with signal-based cancellation.
// Ctrl+C cancels the root context, which aborts any in-flight page or
// content fetch.
func Execute() error {
	rootContext, cancelFunc = context.WithCancel(context.Background())
	defer cancelFunc()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nInterrupted, shutting down...")
		cancelFunc()
	}()

	return NewRootCmd().Execute()
}

// GetContext returns the signal-cancelled root context.
func GetContext() context.Context {
	if rootContext == nil {
		return context.Background()
	}
	return rootContext
}

// GetLogger returns the global CLI logger.
func GetLogger() *logging.Logger {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return logger
}

// loadConfig loads the config file and applies flag overrides.
// This is the standard way CLI commands obtain their configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if store != "" {
		cfg.Shopify.Store = store
	}
	if apiVersion != "" {
		cfg.Shopify.APIVersion = apiVersion
	}
	if tokenFile != "" {
		data, err := os.ReadFile(tokenFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read token file: %w", err)
		}
		cfg.Shopify.AccessToken = strings.TrimSpace(string(data))
	}
	if token != "" {
		cfg.Shopify.AccessToken = token
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
