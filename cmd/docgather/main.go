package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/wczarnecki/docgather"
	"github.com/wczarnecki/docgather/crawl"
	"github.com/wczarnecki/docgather/fs"
	"github.com/wczarnecki/docgather/github"
	"github.com/wczarnecki/docgather/goquery"
	dghttp "github.com/wczarnecki/docgather/http"
	"github.com/wczarnecki/docgather/ingest"
	dgslog "github.com/wczarnecki/docgather/slog"
	"github.com/wczarnecki/docgather/trafilatura"
	"github.com/wczarnecki/docgather/yaml"
)

// domainRequestsPerSecond limits crawl traffic per remote host.
const domainRequestsPerSecond = 1.0

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Pipeline for end-to-end testing. Built during Run when nil.
	Pipeline *ingest.Pipeline

	// Fetcher shared by the crawl adapters. Set before calling Run to
	// inject one; closed by Close after a run.
	Fetcher docgather.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		return m.Fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// A missing .env file is fine; environment variables still apply.
	_ = godotenv.Load()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docgather"),
		kong.Description("Collect documentation from configured sources into a JSON collection."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docgather --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd = kongCtx.Command()

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := yaml.Load(cli.Config)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: pass --config to point at your sources file")
		return err
	}
	deps.Config = cfg
	deps.Sources = withTokenFallback(cfg.Sources())
	deps.Logger = logger

	if cmd == "run" {
		output := cfg.Output
		if cli.Run.Output != "" {
			output = cli.Run.Output
		}

		if m.Pipeline == nil {
			if m.Fetcher == nil {
				var fetcher docgather.Fetcher = dghttp.NewFetcher()
				if cli.Verbose {
					fetcher = dgslog.NewLoggingFetcher(fetcher, logger)
				}
				m.Fetcher = fetcher
			}
			m.Pipeline = buildPipeline(output, m.Fetcher, cli.Verbose, logger)
		}
		defer m.Close()
		deps.Pipeline = m.Pipeline
		deps.Output = output
	}

	return kongCtx.Run(deps)
}

// buildPipeline wires the production adapters behind the pipeline.
func buildPipeline(output string, fetcher docgather.Fetcher, verbose bool, logger *slog.Logger) *ingest.Pipeline {
	var sitemaps docgather.SitemapService = dghttp.NewSitemapService(nil)
	if verbose {
		sitemaps = dgslog.NewLoggingSitemapService(sitemaps, logger)
	}

	limiter := crawl.NewDomainLimiter(domainRequestsPerSecond)
	retry := crawl.DefaultRetryPolicy()
	retry.Logger = func(format string, args ...any) {
		logger.Warn(fmt.Sprintf(format, args...))
	}
	readTheDocs := &crawl.ReadTheDocsAdapter{
		Fetcher:     fetcher,
		Sitemaps:    sitemaps,
		Content:     goquery.NewContentExtractor(),
		Links:       goquery.NewLinkExtractor(goquery.WithExcludeSubstrings(goquery.DefaultDocExcludes...)),
		RateLimiter: limiter,
		Retry:       retry,
		Logger:      logger,
	}

	website := &crawl.WebsiteAdapter{
		Fetcher:     fetcher,
		Content:     trafilatura.NewExtractor(),
		Links:       goquery.NewLinkExtractor(),
		RateLimiter: limiter,
		Retry:       retry,
		Logger:      logger,
	}

	repos := &github.Adapter{
		Client: github.NewClient(github.WithRetryPolicy(retry)),
		Logger: logger,
	}

	return &ingest.Pipeline{
		Adapters: map[docgather.Source]docgather.Adapter{
			docgather.SourceReadTheDocs: dgslog.NewLoggingAdapter(readTheDocs, logger),
			docgather.SourceGitHub:      dgslog.NewLoggingAdapter(repos, logger),
			docgather.SourceWebsite:     dgslog.NewLoggingAdapter(website, logger),
		},
		Writer: fs.NewWriter(output),
		Logger: logger,
	}
}

// withTokenFallback fills empty repository tokens from GITHUB_TOKEN.
func withTokenFallback(sources []docgather.SourceConfig) []docgather.SourceConfig {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return sources
	}
	for i := range sources {
		if sources[i].Kind == docgather.SourceGitHub && sources[i].Token == "" {
			sources[i].Token = token
		}
	}
	return sources
}
