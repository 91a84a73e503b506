package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mindwell/mindtext"
	"github.com/mindwell/mindtext/internal/config"
	"github.com/mindwell/mindtext/internal/logging"
	"github.com/mindwell/mindtext/internal/server"
)

const usage = `Usage: mindtext <command> [flags]

Commands:
  analyze     mental-health analysis of text
  sentiment   movie-review sentiment of text
  language    detect the language of text
  wordfreq    lexicon word frequency of texts or of the seed reviews
  terms       most frequent non-stop-word terms
  overview    seed dataset overview and distributions
  resources   crisis resources for a language
  evaluate    accuracy of both analyzers on the seed datasets
  serve       run the HTTP API

Run "mindtext <command> -h" for command flags.
`

var errNoText = errors.New("no text provided: use -text or pipe text on stdin")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// command bundles the streams and settings shared by every subcommand.
type command struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	cfg    *config.Config
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		fmt.Fprint(stderr, usage)
		if len(args) == 0 {
			return 2
		}
		return 0
	}

	name, rest := args[0], args[1:]
	handlers := map[string]func(*command, *flag.FlagSet, *commonFlags, []string) error{
		"analyze":   runAnalyze,
		"sentiment": runSentiment,
		"language":  runLanguage,
		"wordfreq":  runWordFreq,
		"terms":     runTerms,
		"overview":  runOverview,
		"resources": runResources,
		"evaluate":  runEvaluate,
		"serve":     runServe,
	}
	handler, ok := handlers[name]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", name, usage)
		return 2
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	common := registerCommon(fs)

	if err := handler(&command{stdin: stdin, stdout: stdout, stderr: stderr}, fs, common, rest); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "mindtext %s: %v\n", name, err)
		return 1
	}
	return 0
}

// commonFlags are accepted by every subcommand.
type commonFlags struct {
	env      *string
	logLevel *string
	text     *string
	markdown *bool
}

func registerCommon(fs *flag.FlagSet) *commonFlags {
	return &commonFlags{
		env:      fs.String("env", "development", "environment name, selects config/envs/.env.<env>"),
		logLevel: fs.String("log-level", "", "log level override (debug, info, warn, error)"),
		text:     fs.String("text", "", "text to analyze (default: read stdin)"),
		markdown: fs.Bool("markdown", false, "treat input as markdown and analyze its plain text"),
	}
}

// setup parses flags, loads configuration and installs the logger.
func (c *command) setup(fs *flag.FlagSet, common *commonFlags, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Provisional logger so config loading already logs through tint.
	logging.InitLogger(c.stderr, *common.logLevel)

	cfg, err := config.Load(*common.env)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *common.logLevel != "" {
		cfg.LogLevel = *common.logLevel
	}
	logging.InitLogger(c.stderr, cfg.LogLevel)
	c.cfg = cfg
	return nil
}

// readText returns -text if set, otherwise everything on stdin.
func (c *command) readText(common *commonFlags) (string, error) {
	text := *common.text
	if text == "" {
		data, err := io.ReadAll(c.stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	}
	if *common.markdown {
		text = mindtext.PlainText(text)
	}
	if strings.TrimSpace(text) == "" {
		return "", errNoText
	}
	return text, nil
}

func (c *command) printJSON(v any) error {
	enc := json.NewEncoder(c.stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func runAnalyze(c *command, fs *flag.FlagSet, common *commonFlags, args []string) error {
	lexiconPath := fs.String("lexicon", "", "external lexicon JSON merged into the wellness lexicon")
	if err := c.setup(fs, common, args); err != nil {
		return err
	}
	text, err := c.readText(common)
	if err != nil {
		return err
	}

	path := c.cfg.LexiconPath
	if *lexiconPath != "" {
		path = *lexiconPath
	}

	analyzer := mindtext.NewMentalHealthAnalyzer()
	if path != "" {
		lex, err := mindtext.LoadExternalLexicon(mindtext.WellnessLexicon(), path)
		if err != nil {
			return err
		}
		slog.Debug("[CLI] External lexicon loaded", slog.String("path", path), slog.Int("words", lex.Size()))
		analyzer = mindtext.NewMentalHealthAnalyzer(mindtext.UsingLexicon(lex))
	}

	return c.printJSON(analyzer.Analyze(text))
}

func runSentiment(c *command, fs *flag.FlagSet, common *commonFlags, args []string) error {
	bySentence := fs.Bool("sentences", false, "score each sentence separately")
	if err := c.setup(fs, common, args); err != nil {
		return err
	}
	text, err := c.readText(common)
	if err != nil {
		return err
	}

	analyzer := mindtext.NewSentimentAnalyzer()
	if *bySentence {
		sentences, err := analyzer.AnalyzeSentences(text)
		if err != nil {
			return err
		}
		return c.printJSON(sentences)
	}
	return c.printJSON(analyzer.Analyze(text))
}

func runLanguage(c *command, fs *flag.FlagSet, common *commonFlags, args []string) error {
	if err := c.setup(fs, common, args); err != nil {
		return err
	}
	text, err := c.readText(common)
	if err != nil {
		return err
	}

	lang := mindtext.DetectLanguage(text)
	return c.printJSON(map[string]any{
		"language": lang,
		"name":     mindtext.LanguageName(lang),
	})
}

func runWordFreq(c *command, fs *flag.FlagSet, common *commonFlags, args []string) error {
	polarityName := fs.String("polarity", "positive", "positive or negative")
	if err := c.setup(fs, common, args); err != nil {
		return err
	}
	polarity, err := mindtext.ParsePolarity(*polarityName)
	if err != nil {
		return err
	}

	texts := fs.Args()
	if *common.text != "" {
		texts = append(texts, *common.text)
	}
	if len(texts) == 0 {
		slog.Debug("[CLI] No texts given, using seed reviews", slog.String("polarity", string(polarity)))
		return c.printJSON(mindtext.ReviewWordFrequency(polarity))
	}
	return c.printJSON(mindtext.GetWordFrequency(texts, polarity))
}

func runTerms(c *command, fs *flag.FlagSet, common *commonFlags, args []string) error {
	langCode := fs.String("lang", "en", "language of the texts (en or hi)")
	n := fs.Int("n", 20, "number of terms")
	if err := c.setup(fs, common, args); err != nil {
		return err
	}
	lang := mindtext.Language(strings.ToLower(*langCode))

	texts := fs.Args()
	if *common.text != "" {
		texts = append(texts, *common.text)
	}
	if len(texts) == 0 {
		for _, e := range mindtext.MentalHealthEntries() {
			if e.Language == lang {
				texts = append(texts, e.Text)
			}
		}
	}
	return c.printJSON(mindtext.TopTerms(texts, lang, *n))
}

func runOverview(c *command, fs *flag.FlagSet, common *commonFlags, args []string) error {
	if err := c.setup(fs, common, args); err != nil {
		return err
	}
	return c.printJSON(map[string]any{
		"overview":   mindtext.DatasetOverview(),
		"categories": mindtext.CategoryDistribution(),
		"languages":  mindtext.LanguageDistribution(),
	})
}

func runResources(c *command, fs *flag.FlagSet, common *commonFlags, args []string) error {
	langCode := fs.String("lang", "en", "language code")
	if err := c.setup(fs, common, args); err != nil {
		return err
	}
	return c.printJSON(mindtext.CrisisResources(mindtext.Language(strings.ToLower(*langCode))))
}

func runEvaluate(c *command, fs *flag.FlagSet, common *commonFlags, args []string) error {
	if err := c.setup(fs, common, args); err != nil {
		return err
	}
	report := mindtext.Evaluate()
	slog.Info("[CLI] Evaluation complete",
		slog.Float64("review_accuracy", report.Reviews.Accuracy),
		slog.Float64("vader_accuracy", report.Reviews.BaselineAccuracy),
		slog.Float64("category_accuracy", report.MentalHealth.CategoryAccuracy))
	return c.printJSON(report)
}

func runServe(c *command, fs *flag.FlagSet, common *commonFlags, args []string) error {
	host := fs.String("host", "", "listen host (overrides config)")
	port := fs.Int("port", 0, "listen port (overrides config)")
	if err := c.setup(fs, common, args); err != nil {
		return err
	}

	srvConfig := server.FromConfig(c.cfg)
	if *host != "" {
		srvConfig.Host = *host
	}
	if *port != 0 {
		srvConfig.Port = *port
	}

	srv, err := server.New(srvConfig)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return srv.Start(ctx)
}
