package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/currhub/curricuforge/internal/app"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load .env before flag defaults read the environment.
	if err := app.LoadEnvFiles(".env"); err != nil {
		log.Warn().Err(err).Msg("could not load .env")
	}

	var (
		addr          string
		datasetPath   string
		llmBaseURL    string
		llmModel      string
		llmKey        string
		assistModel   string
		genTimeout    time.Duration
		assistTimeout time.Duration
		cacheDir      string
		cacheMaxAge   time.Duration
		allowOrigins  string
		configPath    string
		verbose       bool
	)

	flag.StringVar(&addr, "addr", ":8000", "HTTP listen address")
	flag.StringVar(&datasetPath, "dataset", os.Getenv("DATASET_PATH"), "Path to curated curriculum JSON (empty uses the embedded dataset)")
	flag.StringVar(&llmBaseURL, "llm.base", os.Getenv("LLM_BASE_URL"), "OpenAI-compatible base URL")
	flag.StringVar(&llmModel, "llm.model", os.Getenv("LLM_MODEL"), "Model name for curriculum generation")
	flag.StringVar(&llmKey, "llm.key", os.Getenv("LLM_API_KEY"), "API key for OpenAI-compatible server")
	flag.StringVar(&assistModel, "llm.assistModel", os.Getenv("ASSIST_MODEL"), "Model name for chat/syllabus/gap/resources (defaults to llm.model)")
	flag.DurationVar(&genTimeout, "timeout.generate", 30*time.Second, "Timeout for generative curriculum calls")
	flag.DurationVar(&assistTimeout, "timeout.assist", 30*time.Second, "Timeout for assistant calls")
	flag.StringVar(&cacheDir, "cache.dir", ".curricuforge-cache", "Cache directory for model responses")
	flag.DurationVar(&cacheMaxAge, "cache.maxAge", 0, "Max age for cache entries before purge (e.g. 24h); 0 disables")
	flag.StringVar(&allowOrigins, "cors.origins", os.Getenv("ALLOW_ORIGINS"), "Comma-separated CORS allow origins")
	flag.StringVar(&configPath, "config", "", "Path to YAML or JSON config file")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		Addr:          addr,
		DatasetPath:   datasetPath,
		LLMBaseURL:    llmBaseURL,
		LLMModel:      llmModel,
		LLMAPIKey:     llmKey,
		AssistModel:   assistModel,
		GenTimeout:    genTimeout,
		AssistTimeout: assistTimeout,
		CacheDir:      cacheDir,
		CacheMaxAge:   cacheMaxAge,
		Verbose:       verbose,
	}
	for _, o := range strings.Split(allowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, o)
		}
	}

	app.ApplyEnvToConfig(&cfg)
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", configPath).Msg("could not load config file")
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	a, err := app.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server failed")
		os.Exit(1)
	}
}
