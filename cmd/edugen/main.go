package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	openaiapi "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"

	"github.com/fwojciec/edugen"
	"github.com/fwojciec/edugen/config"
	"github.com/fwojciec/edugen/fs"
	"github.com/fwojciec/edugen/gemini"
	"github.com/fwojciec/edugen/goquery"
	"github.com/fwojciec/edugen/htmltomarkdown"
	edugenhttp "github.com/fwojciec/edugen/http"
	"github.com/fwojciec/edugen/ingest"
	"github.com/fwojciec/edugen/jsonschema"
	"github.com/fwojciec/edugen/latex"
	"github.com/fwojciec/edugen/memindex"
	"github.com/fwojciec/edugen/openai"
	"github.com/fwojciec/edugen/pipeline"
	"github.com/fwojciec/edugen/readability"
	edugenslog "github.com/fwojciec/edugen/slog"
	"github.com/fwojciec/edugen/trafilatura"
	"github.com/fwojciec/edugen/youtube"
)

// tokenizerModel is used for local token counting.
const tokenizerModel = "gemini-2.5-flash"

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
	// Services for end-to-end testing. When set before Run, they are
	// used instead of the provider-backed implementations.
	Rubrics    *pipeline.Rubric
	Syllabi    *pipeline.Syllabus
	Notes      *pipeline.Notes
	Classifier edugen.Classifier
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("edugen"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'edugen --help' to see available commands")
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

	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	deps.Config = cfg

	level := slog.LevelInfo
	if cli.Verbose || cfg.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if m.Rubrics != nil || m.Syllabi != nil || m.Notes != nil || m.Classifier != nil {
		deps.Rubrics = m.Rubrics
		deps.Syllabi = m.Syllabi
		deps.Notes = m.Notes
		deps.Classifier = m.Classifier
		return kongCtx.Run(deps)
	}

	if err := m.wire(ctx, cfg, deps, stderr); err != nil {
		return err
	}
	return kongCtx.Run(deps)
}

// wire builds the provider-backed pipelines.
func (m *Main) wire(ctx context.Context, cfg *config.Config, deps *Dependencies, stderr io.Writer) error {
	parser, err := jsonschema.NewParser()
	if err != nil {
		return err
	}

	renderer, err := latex.NewRenderer(cfg.OutputDir, deps.Logger)
	if err != nil {
		return err
	}
	loggingRenderer := edugenslog.NewLoggingRenderer(renderer, deps.Logger)

	var (
		embedder          edugen.Embedder
		rubricGenerator   edugen.RubricGenerator
		syllabusGenerator edugen.SyllabusGenerator
		notesGenerator    edugen.NotesGenerator
		summarizer        edugen.Summarizer
		counter           edugen.TokenCounter
	)

	switch cfg.Provider {
	case config.ProviderGemini:
		apiKey := cfg.GeminiAPIKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY not set. Get an API key at https://aistudio.google.com/apikey")
			return edugen.Errorf(edugen.EINVALID, "gemini api key not configured")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		var rubricOpts []gemini.RubricOption
		if cfg.Model != "" {
			rubricOpts = append(rubricOpts, gemini.WithRubricModel(cfg.Model))
		}
		embedder = gemini.NewEmbedder(client)
		rubricGenerator = gemini.NewRubricGenerator(client, parser, rubricOpts...)
		syllabusGenerator = gemini.NewSyllabusGenerator(client, parser)
		notesGenerator = gemini.NewNotesGenerator(client, parser)
		summarizer = gemini.NewSummarizer(client)
		deps.Classifier = gemini.NewClassifier(client)

		if tc, err := gemini.NewTokenCounter(tokenizerModel); err == nil {
			counter = tc
		}

	case config.ProviderOpenAI:
		apiKey := cfg.OpenAIAPIKey
		if apiKey == "" {
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
		if apiKey == "" {
			fmt.Fprintln(stderr, "OPENAI_API_KEY not set.")
			return edugen.Errorf(edugen.EINVALID, "openai api key not configured")
		}

		client := openaiapi.NewClient(apiKey)
		var rubricOpts []openai.RubricOption
		if cfg.Model != "" {
			rubricOpts = append(rubricOpts, openai.WithRubricModel(cfg.Model))
		}
		embedder = openai.NewEmbedder(client)
		rubricGenerator = openai.NewRubricGenerator(client, parser, rubricOpts...)
		syllabusGenerator = openai.NewSyllabusGenerator(client, parser)
	}

	extractor := trafilatura.NewExtractor()
	converter := htmltomarkdown.NewConverter()
	fetcher := edugenslog.NewLoggingFetcher(edugenhttp.NewFetcher(), deps.Logger)

	ingester := ingest.NewIngester(ingest.Config{
		Files:     fs.NewLoader(extractor, converter),
		Videos:    youtube.NewLoader(fetcher),
		Fetcher:   fetcher,
		Extractor: extractor,
		Fallbacks: []edugen.Extractor{readability.NewExtractor(), goquery.NewExtractor()},
		Converter: converter,
		Logger:    deps.Logger,
	})

	newRetriever := func() edugen.Retriever {
		return edugenslog.NewLoggingRetriever(memindex.NewIndex(embedder), deps.Logger)
	}

	deps.Rubrics = pipeline.NewRubric(ingester, newRetriever, rubricGenerator, loggingRenderer, deps.Logger,
		pipeline.WithRubricTopK(cfg.TopK))
	if syllabusGenerator != nil {
		deps.Syllabi = pipeline.NewSyllabus(ingester, summarizer, syllabusGenerator, loggingRenderer, deps.Logger)
	}
	if notesGenerator != nil {
		deps.Notes = pipeline.NewNotes(ingester, notesGenerator, loggingRenderer, counter, deps.Logger)
	}
	return nil
}
