// Package download materializes a store's file library into a local
// directory tree, one category folder per media kind.
package download

import (
	"context"
	"fmt"
	"io"
	nethttp "net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/shopvault/shopvault/internal/classify"
	"github.com/shopvault/shopvault/internal/config"
	"github.com/shopvault/shopvault/internal/logging"
	"github.com/shopvault/shopvault/internal/models"
	"github.com/shopvault/shopvault/internal/progress"
	"github.com/shopvault/shopvault/internal/validation"
)

// Counters is the pipeline's progress accounting. Downloaded counts
// items materialized in this run plus items already present on disk;
// Total is fixed at the length of the input sequence. Items with no
// URL and failed fetches never increment Downloaded, so a finished run
// can legitimately end below 100%.
type Counters struct {
	Downloaded int
	Total      int
}

// Percent returns the completion percentage.
func (c Counters) Percent() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Downloaded) / float64(c.Total) * 100
}

// Pipeline downloads file-library nodes sequentially, skipping
// anything already on disk. Re-running it over the same sequence and
// output directory performs no redundant network I/O.
type Pipeline struct {
	outputDir  string
	httpClient *nethttp.Client
	logger     *logging.Logger
	reporter   progress.Reporter
}

// NewPipeline creates a pipeline writing under cfg.Archive.OutputDir.
func NewPipeline(cfg *config.Config, logger *logging.Logger, reporter progress.Reporter) *Pipeline {
	// Content fetches get one attempt each, like page fetches, but
	// they are bounded by the fetch timeout so a stalled CDN
	// connection cannot hang the run indefinitely. The passthrough
	// error handler keeps the response alive on retryable statuses
	// (429, 5xx) so the diagnostic can name the actual status.
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	httpClient := retryClient.StandardClient()
	httpClient.Timeout = cfg.FetchTimeout()

	return &Pipeline{
		outputDir:  cfg.Archive.OutputDir,
		httpClient: httpClient,
		logger:     logger,
		reporter:   reporter,
	}
}

// EnsureLayout creates the output directory and one folder per
// category, unknown included.
func (p *Pipeline) EnsureLayout() error {
	for _, category := range classify.Categories {
		dir := filepath.Join(p.outputDir, string(category))
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	return nil
}

// Process consumes the node sequence once, in order, and returns the
// final counters.
//
// Per-item failures never abort the run: a node with no resolvable URL
// or a failed fetch is logged and permanently skipped for this run,
// and the loop continues. Existing target files are counted as
// downloaded without being fetched again.
func (p *Pipeline) Process(ctx context.Context, nodes []models.FileNode) Counters {
	counters := Counters{Total: len(nodes)}

	p.reporter.Start(int64(counters.Total), "archiving")
	defer p.reporter.Finish()

	for _, node := range nodes {
		p.processNode(ctx, node, &counters)

		p.reporter.Update(int64(counters.Downloaded))
		p.reporter.SetDescription(fmt.Sprintf("archiving %.1f%%", counters.Percent()))
	}

	p.logger.Info().
		Int("downloaded", counters.Downloaded).
		Int("total", counters.Total).
		Str("percent", fmt.Sprintf("%.1f%%", counters.Percent())).
		Msg("Archive run finished")

	return counters
}

func (p *Pipeline) processNode(ctx context.Context, node models.FileNode, counters *Counters) {
	target := classify.Classify(node)
	if target.URL == "" {
		p.logger.Warn().
			Str("id", node.ID).
			Str("kind", node.Typename).
			Msg("Skipped: no downloadable URL")
		return
	}

	name := FileNameFromURL(target.URL)
	if err := validation.ValidateFilename(name); err != nil {
		p.logger.Warn().
			Str("id", node.ID).
			Str("url", target.URL).
			Err(err).
			Msg("Skipped: unusable file name")
		return
	}

	targetPath := filepath.Join(p.outputDir, string(target.Category), name)

	if _, err := os.Stat(targetPath); err == nil {
		// Already materialized by an earlier run; counts as
		// downloaded without touching the network. Logged at info
		// so resumed runs show what they are skipping.
		counters.Downloaded++
		p.logger.Info().
			Str("file", name).
			Str("category", string(target.Category)).
			Msg("Skipped: already present")
		return
	}

	if err := p.fetch(ctx, target.URL, targetPath); err != nil {
		p.logger.Warn().
			Str("file", name).
			Str("id", node.ID).
			Err(err).
			Msg("Download failed")
		return
	}

	counters.Downloaded++
	p.logger.Debug().
		Str("file", name).
		Str("category", string(target.Category)).
		Msg("Downloaded")
}

// fetch performs a single GET against url and writes the full body to
// targetPath in one write call. No retries: a failed item stays
// missing until the next run.
func (p *Pipeline) fetch(ctx context.Context, url, targetPath string) error {
	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch content: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("fetch content: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read content: %w", err)
	}

	if err := os.WriteFile(targetPath, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", targetPath, err)
	}
	return nil
}

// FileNameFromURL derives the canonical local file name from a source
// URL: the query string is stripped, then the final path segment is
// taken. "https://cdn.example.com/path/image.png?v=123" yields
// "image.png".
func FileNameFromURL(rawURL string) string {
	trimmed, _, _ := strings.Cut(rawURL, "?")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}
