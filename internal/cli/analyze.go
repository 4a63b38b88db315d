package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/draftlens/draftlens/internal/model"
	"github.com/draftlens/draftlens/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outJSON          string
	outMD            string
	timeout          time.Duration
	userAgent        string
	maxBytes         int64
	noCache          bool
	noFooter         bool
	insecureTLS      bool
	httpProxy        string
	httpsProxy       string
	evidenceEnabled  bool
	evidenceProvider string
	evidenceModel    string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file-or-url>",
	Short: "Analyze a draft file or web page and generate a report",
	Long: `Analyze processes a single draft (markdown, plain text, or HTML file,
or a URL) to:
- Split the document into heading-delimited sections
- Extract citable claims and check them for citations
- Measure readability, passive voice, and jargon density
- Compare section lengths against target word counts
- Generate a transparent, explainable report

Example:
  draftlens analyze thesis.md
  draftlens analyze draft.html --json report.json --md report.md
  draftlens analyze https://example.com/essay --evidence --evidence-provider openai`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")

	// HTTP flags (used for URL sources)
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall analysis timeout")
	analyzeCmd.Flags().StringVar(&userAgent, "ua", "Draftlens/0.1 (+https://github.com/draftlens/draftlens)", "HTTP User-Agent")
	analyzeCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh analysis)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	analyzeCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification (use for self-signed certs)")
	analyzeCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	analyzeCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")

	// Evidence flags
	analyzeCmd.Flags().BoolVar(&evidenceEnabled, "evidence", false, "enable LLM evidence checking of extracted claims")
	analyzeCmd.Flags().StringVar(&evidenceProvider, "evidence-provider", "openai", "evidence provider (openai, anthropic, ollama)")
	analyzeCmd.Flags().StringVar(&evidenceModel, "evidence-model", "gpt-4o-mini", "evidence model name")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	source := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", source)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintln(os.Stderr)
	}

	// Build configuration from flags
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = timeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.InsecureTLS = insecureTLS
	cfg.HTTP.HTTPProxy = httpProxy
	cfg.HTTP.HTTPSProxy = httpsProxy
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if evidenceEnabled {
		if err := configureEvidence(cfg); err != nil {
			return err
		}
	}

	// Create pipeline
	p := pipeline.NewPipeline(cfg)

	report, err := p.AnalyzeSource(ctx, source)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Parsed %d sections\n", len(report.Sections))
		fmt.Fprintf(os.Stderr, "✓ Extracted %d claims\n", len(report.Claims))
		if len(report.Evidence) > 0 {
			fmt.Fprintf(os.Stderr, "✓ Ran %d evidence checks\n", len(report.Evidence))
		}
		fmt.Fprintf(os.Stderr, "✓ Citation index: %d/100\n", report.Score.Index)
		fmt.Fprintln(os.Stderr)
	}

	// Render outputs
	if err := p.RenderReport(report, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// configureEvidence fills the evidence config from flags and environment
func configureEvidence(cfg *model.Config) error {
	cfg.Evidence.Provider = evidenceProvider
	cfg.Evidence.Model = evidenceModel

	// Get API key from environment
	switch evidenceProvider {
	case "openai":
		cfg.Evidence.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.Evidence.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.Evidence.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.Evidence.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.Evidence.BaseURL = baseURL
		}
	}

	return nil
}
