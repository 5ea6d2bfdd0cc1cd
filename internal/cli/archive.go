package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shopvault/shopvault/internal/api"
	"github.com/shopvault/shopvault/internal/download"
	"github.com/shopvault/shopvault/internal/progress"
)

// newArchiveCmd creates the 'archive' command.
func newArchiveCmd() *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Download the whole file library into a local directory tree",
		Long: `Enumerate every file in the store's file library and download each
one into <outdir>/<category>/, where category is one of generic,
images, videos, models, external or unknown.

Files already present on disk are counted as done and not fetched
again, so re-running after a partial run only downloads what is
missing.

Examples:
  # Archive with settings from ~/.config/shopvault/config
  shopvault archive

  # Archive a specific store into a specific directory
  shopvault archive --store my-store --token shpat_xxx --outdir ./backup`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := GetLogger()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if outputDir != "" {
				cfg.Archive.OutputDir = outputDir
			}

			client := api.NewClient(cfg)

			logger.Info().
				Str("store", cfg.Shopify.Store).
				Msg("Enumerating file library")

			nodes, err := client.FetchAll(GetContext())
			if err != nil {
				return fmt.Errorf("enumeration failed: %w", err)
			}

			logger.Info().
				Int("count", len(nodes)).
				Str("outdir", cfg.Archive.OutputDir).
				Msg("File library enumerated, starting downloads")

			pipeline := download.NewPipeline(cfg, logger, progress.NewCLIProgress())
			if err := pipeline.EnsureLayout(); err != nil {
				return err
			}

			counters := pipeline.Process(GetContext(), nodes)

			fmt.Printf("\nDownloaded %d of %d file(s) to %s\n",
				counters.Downloaded, counters.Total, cfg.Archive.OutputDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "outdir", "o", "", "Output directory (default from config, ./archive)")

	return cmd
}
