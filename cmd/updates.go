package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/updatesheet/core"
	"github.com/gaurav-prasanna/updatesheet/core/config"
	"github.com/gaurav-prasanna/updatesheet/core/extract"
	"github.com/gaurav-prasanna/updatesheet/core/feed"
	"github.com/gaurav-prasanna/updatesheet/core/fetch"
	"github.com/gaurav-prasanna/updatesheet/core/output"
	"github.com/gaurav-prasanna/updatesheet/core/render"
)

var updatesFlags struct {
	test     bool
	from     string
	to       string
	config   string
	output   string
	json     string
	markdown string
	pdf      string
	noRender bool
}

var updatesCmd = &cobra.Command{
	Use:   "updates",
	Short: "Append the latest AWS and Azure updates to the updates workbook",
	Long: `Updates reads the AWS and Azure update feeds, fetches each item's detail page,
reconciles page and feed metadata, and appends one row per item to the workbook.

Examples:
  updatesheet updates
  updatesheet updates --test
  updatesheet updates --from 06/01/2025 --to 06/30/2025 --json updates.json --markdown digest.md
  updatesheet updates --config updatesheet.yaml --no-render`,
	Args: cobra.NoArgs,
	RunE: runUpdates,
}

func init() {
	rootCmd.AddCommand(updatesCmd)

	f := updatesCmd.Flags()
	f.BoolVar(&updatesFlags.test, "test", false, "Process only the first few items of each feed")
	f.StringVar(&updatesFlags.from, "from", "", "Keep updates posted on or after this date (MM/DD/YYYY)")
	f.StringVar(&updatesFlags.to, "to", "", "Keep updates posted on or before this date (MM/DD/YYYY)")
	f.StringVar(&updatesFlags.config, "config", "", "YAML run configuration")
	f.StringVar(&updatesFlags.output, "output", "", "Workbook path (default from config)")
	f.StringVar(&updatesFlags.json, "json", "", "Also write the run's records as JSON to this path")
	f.StringVar(&updatesFlags.markdown, "markdown", "", "Also write a Markdown digest of the run to this path")
	f.StringVar(&updatesFlags.pdf, "pdf", "", "Also write a PDF digest of the run to this path")
	f.BoolVar(&updatesFlags.noRender, "no-render", false, "Never use the headless browser")
}

func runUpdates(cmd *cobra.Command, args []string) error {
	logger := slog.Default()
	ctx := cmd.Context()

	if err := config.LoadEnv(); err != nil {
		return err
	}
	cfg, err := config.Load(updatesFlags.config)
	if err != nil {
		return err
	}
	if updatesFlags.output != "" {
		cfg.Output = updatesFlags.output
	}
	if updatesFlags.noRender {
		cfg.Render.Disabled = true
	}

	dates, err := config.ParseDateRange(updatesFlags.from, updatesFlags.to)
	if err != nil {
		return err
	}

	limit := 0
	if updatesFlags.test {
		limit = cfg.TestLimit
		logger.Info("running in test mode", "limit", limit)
	}

	sink, err := output.OpenWorkbook(cfg.Output, logger)
	if err != nil {
		return fmt.Errorf("opening workbook: %w", err)
	}
	defer sink.Close()

	run := &updateRun{
		parser: feed.NewParser(),
		feeds: fetch.New(fetch.Config{
			UserAgent: cfg.UserAgent,
			Accept:    fetch.AcceptFeed,
			Timeout:   cfg.FeedTimeout,
		}, nil, logger),
		pages: fetch.New(fetch.Config{
			UserAgent:     cfg.UserAgent,
			Timeout:       cfg.PageTimeout,
			RenderWhen:    fetch.MatchAll(cfg.Render.Rules),
			ReadySelector: cfg.Render.ReadySelector,
		}, probeRenderer(ctx, cfg, logger), logger),
		sink:   sink,
		dates:  dates,
		limit:  limit,
		format: cfg.DescriptionFormat,
		logger: logger,
	}

	for _, src := range []struct {
		provider core.Provider
		url      string
	}{
		{core.ProviderAWS, cfg.Feeds.AWS},
		{core.ProviderAzure, cfg.Feeds.Azure},
	} {
		run.provider(ctx, src.provider, src.url)
	}

	if err := sink.Flush(); err != nil {
		return err
	}
	logger.Info("workbook updated", "path", cfg.Output, "records", len(run.records))

	return exportRecords(run.records, map[string]string{
		render.FormatJSON:     updatesFlags.json,
		render.FormatMarkdown: updatesFlags.markdown,
		render.FormatPDF:      updatesFlags.pdf,
	}, logger)
}

// exportRecords writes the records in every format that has a path. A path
// without an extension gets the format's own.
func exportRecords(records []core.CanonicalRecord, paths map[string]string, logger *slog.Logger) error {
	for _, format := range []string{render.FormatJSON, render.FormatMarkdown, render.FormatPDF} {
		path := paths[format]
		if path == "" {
			continue
		}
		r, err := render.ForFormat(format)
		if err != nil {
			return err
		}
		if filepath.Ext(path) == "" {
			path += r.Extension()
		}
		data, err := r.Render(records)
		if err != nil {
			return fmt.Errorf("rendering %s export: %w", format, err)
		}
		if err := output.WriteFile(path, data); err != nil {
			return err
		}
		logger.Info("export written", "format", format, "path", path)
	}
	return nil
}

// probeRenderer checks once whether a headless browser can start. It returns
// nil when rendering is disabled or unavailable.
func probeRenderer(ctx context.Context, cfg *config.Config, logger *slog.Logger) core.Renderer {
	if cfg.Render.Disabled {
		logger.Info("headless rendering disabled")
		return nil
	}
	r := fetch.NewChromeRenderer(cfg.UserAgent, cfg.Render.ChromePath, cfg.Render.Wait, logger)
	if err := r.Probe(ctx); err != nil {
		logger.Warn("headless rendering unavailable, using plain HTTP only", "error", err)
		return nil
	}
	logger.Info("headless rendering available")
	return r
}

// updateRun carries one provider loop's collaborators. Records are appended
// to the sink one at a time from the calling goroutine.
type updateRun struct {
	parser *feed.Parser
	feeds  core.Fetcher
	pages  core.Fetcher
	sink   core.Sink
	dates  config.DateRange
	limit  int // items examined per provider; 0 means all
	format string
	logger *slog.Logger

	records []core.CanonicalRecord
}

// provider processes one feed. Feed failures skip the provider; item
// failures skip the item.
func (r *updateRun) provider(ctx context.Context, provider core.Provider, feedURL string) {
	logger := r.logger.With("provider", provider)

	items, err := r.parser.Load(ctx, r.feeds, provider, feedURL)
	if err != nil {
		logger.Error("failed to load feed, skipping provider", "url", feedURL, "error", err)
		return
	}
	logger.Info("feed loaded", "items", len(items))

	extractor, err := extract.ForProvider(provider, r.format, logger)
	if err != nil {
		logger.Error("no extractor", "error", err)
		return
	}

	var written int
	for i, item := range items {
		if r.limit > 0 && i >= r.limit {
			logger.Info("test limit reached", "limit", r.limit)
			break
		}

		keep, usable := r.dates.Keep(item.DatePosted)
		if !usable {
			logger.Warn("could not parse date for filtering, keeping item", "title", item.Title, "date", item.DatePosted)
		}
		if !keep {
			logger.Debug("outside date range", "title", item.Title, "date", item.DatePosted)
			continue
		}

		rec, err := r.item(ctx, extractor, item)
		if err != nil {
			logger.Error("skipping item", "title", item.Title, "url", item.URL, "error", err)
			continue
		}
		if err := r.sink.Append(output.RecordFields(*rec)); err != nil {
			logger.Error("failed to append record", "title", item.Title, "error", err)
			continue
		}
		r.records = append(r.records, *rec)
		written++
	}
	logger.Info("provider done", "records", written)
}

var errNoURL = errors.New("feed item has no link")

func (r *updateRun) item(ctx context.Context, extractor core.Extractor, item core.FeedItem) (*core.CanonicalRecord, error) {
	if item.URL == core.NA {
		return nil, errNoURL
	}
	r.logger.Debug("processing item", "title", item.Title, "url", item.URL)

	page, err := r.pages.Fetch(ctx, item.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	r.logger.Debug("fetched page", "url", item.URL, "rendered", page.Rendered, "status", page.StatusCode)
	rec, err := extractor.Extract(page, item)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	return rec, nil
}
