package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/draftlens/draftlens/internal/cache"
	"github.com/draftlens/draftlens/internal/claims"
	"github.com/draftlens/draftlens/internal/evidence"
	"github.com/draftlens/draftlens/internal/htmltext"
	"github.com/draftlens/draftlens/internal/model"
	"github.com/draftlens/draftlens/internal/quality"
	"github.com/draftlens/draftlens/internal/score"
	"github.com/draftlens/draftlens/internal/section"
	"github.com/draftlens/draftlens/internal/util"
	"github.com/draftlens/draftlens/internal/worker"
)

// Pipeline orchestrates the complete analysis process
type Pipeline struct {
	fetcher  *Fetcher
	scorer   *score.Scorer
	renderer *Renderer
	checker  *evidence.Checker // Optional evidence checker (nil if disabled)
	robots   *util.RobotsChecker
	limiter  *worker.Limiter
	cache    cache.Cache // nil when caching disabled
	config   *model.Config
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	var checker *evidence.Checker
	if cfg.Evidence.Provider != "" {
		c, err := evidence.NewChecker(evidence.ConfigFromModel(cfg.Evidence))
		if err != nil {
			fmt.Printf("Warning: Failed to initialize evidence provider: %v\n", err)
		} else {
			checker = c
		}
	}

	var reportCache cache.Cache
	if cfg.Cache.Enabled {
		reportCache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cacheDir(cfg.Cache.Dir), cfg.Cache.DiskTTL)
	}

	return &Pipeline{
		fetcher:  NewFetcher(cfg.HTTP),
		scorer:   score.NewScorer(),
		renderer: NewRenderer(cfg.Output.IncludeFooter),
		checker:  checker,
		robots:   util.NewRobotsChecker(util.NormalizeUserAgent(cfg.HTTP.UserAgent), cfg.HTTP.Timeout),
		limiter:  worker.NewLimiter(cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize),
		cache:    reportCache,
		config:   cfg,
	}
}

func cacheDir(configured string) string {
	if configured != "" {
		return configured
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "draftlens-cache")
	}
	return filepath.Join(home, ".draftlens", "cache")
}

// Analyze runs the full text analysis on already-loaded document content.
// It is deterministic: the same content always produces the same sections,
// claims, quality metrics, and score.
func (p *Pipeline) Analyze(content, subject, source string) *model.Report {
	sections := section.Parse(content)
	extracted := claims.Extract(content)
	docQuality := quality.Analyze(content)

	sectionQuality := make([]model.SectionQuality, 0, len(sections))
	for _, sec := range sections {
		sectionQuality = append(sectionQuality, model.SectionQuality{
			Heading:     sec.Heading,
			Level:       sec.Level,
			WordCount:   sec.WordCount,
			TargetWords: section.TargetWords(sec.Heading),
			Quality:     quality.Analyze(sec.Text),
		})
	}

	return &model.Report{
		Subject:        subject,
		Source:         source,
		AnalyzedAt:     time.Now().UTC(),
		Sections:       sections,
		Claims:         extracted,
		Quality:        docQuality,
		SectionQuality: sectionQuality,
		Score:          p.scorer.Calculate(extracted, sectionQuality, docQuality),
	}
}

// AnalyzeSource dispatches to URL or file analysis based on the source
// form. Satisfies worker.Analyzer for batch runs.
func (p *Pipeline) AnalyzeSource(ctx context.Context, source string) (*model.Report, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return p.ScanURL(ctx, source)
	}
	return p.AnalyzeFile(ctx, source)
}

// AnalyzeFile analyzes a local markdown, text, or HTML file
func (p *Pipeline) AnalyzeFile(ctx context.Context, path string) (*model.Report, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	content := string(raw)
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".html" || ext == ".htm" {
		content, err = htmltext.HeadingMarkup(content)
		if err != nil {
			return nil, fmt.Errorf("parse HTML: %w", err)
		}
	}

	subject := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return p.analyzeContent(ctx, content, subject, path)
}

// ScanURL fetches a URL and analyzes its visible text. Respects
// robots.txt and the per-domain rate limit.
func (p *Pipeline) ScanURL(ctx context.Context, rawURL string) (*model.Report, error) {
	allowed, crawlDelay, err := p.robots.CanFetch(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("robots check: %w", err)
	}
	if !allowed {
		return nil, fmt.Errorf("robots.txt disallows fetching %s", rawURL)
	}

	if err := p.limiter.WaitWithDelay(ctx, rawURL, crawlDelay); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	fetchResult, err := p.fetcher.FetchWithRetry(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	content, err := htmltext.HeadingMarkup(fetchResult.HTML)
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}

	return p.analyzeContent(ctx, content, fetchResult.Subject, fetchResult.FinalURL)
}

// analyzeContent runs analysis with content-keyed caching and the
// optional evidence check.
func (p *Pipeline) analyzeContent(ctx context.Context, content, subject, source string) (*model.Report, error) {
	key := cache.ContentKey(content)

	if p.cache != nil {
		if data, found := p.cache.Get(key); found {
			var cached model.Report
			if err := json.Unmarshal(data, &cached); err == nil {
				// Same content can arrive under a different name
				cached.Subject = subject
				cached.Source = source
				return &cached, nil
			}
			_ = p.cache.Delete(key)
		}
	}

	report := p.Analyze(content, subject, source)

	// Evidence check runs after the deterministic pass; challenged
	// claims trigger a rescore
	if p.checker != nil {
		results, err := p.checker.CheckClaims(ctx, report.Claims)
		if err != nil {
			// Don't fail the entire analysis, just warn
			fmt.Printf("Warning: evidence check failed: %v\n", err)
		} else if len(results) > 0 {
			report.Evidence = results
			report.Claims = claims.Reconcile(report.Claims, results)
			report.Score = p.scorer.Calculate(report.Claims, report.SectionQuality, report.Quality)
		}
	}

	if p.cache != nil {
		if data, err := json.Marshal(report); err == nil {
			_ = p.cache.Set(key, data, 0)
		}
	}

	return report, nil
}

// ClearCache drops all cached reports.
func (p *Pipeline) ClearCache() error {
	if p.cache == nil {
		return nil
	}
	return p.cache.Clear()
}

// RenderReport renders the report to the specified outputs
func (p *Pipeline) RenderReport(report *model.Report, jsonPath string, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(report)

	return nil
}
