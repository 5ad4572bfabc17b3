// Package app wires configuration, the curriculum pipeline, the assistants
// and the HTTP server into a runnable service.
package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/currhub/curricuforge/internal/assist"
	"github.com/currhub/curricuforge/internal/cache"
	"github.com/currhub/curricuforge/internal/curated"
	"github.com/currhub/curricuforge/internal/generator"
	"github.com/currhub/curricuforge/internal/jobpost"
	"github.com/currhub/curricuforge/internal/llm"
	"github.com/currhub/curricuforge/internal/pipeline"
	"github.com/currhub/curricuforge/internal/server"
)

// App holds the assembled service.
type App struct {
	cfg Config
	srv *http.Server
}

// New assembles the service from cfg. It does not start listening.
func New(cfg Config) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	dataset := curated.Load(cfg.DatasetPath)
	log.Info().Int("programs", dataset.Len()).Msg("curated dataset loaded")

	var client llm.Client
	if cfg.LLMAPIKey != "" {
		client = llm.NewOpenAIProvider(cfg.LLMBaseURL, cfg.LLMAPIKey)
	} else {
		log.Warn().Msg("no LLM API key configured; generative tier disabled")
	}

	responseCache := &cache.ResponseCache{Dir: cfg.CacheDir}
	if err := responseCache.PurgeOlderThan(cfg.CacheMaxAge); err != nil {
		log.Warn().Err(err).Msg("cache purge failed")
	}

	var gen *generator.Generator
	if client != nil {
		gen = &generator.Generator{
			Client:  client,
			Model:   cfg.LLMModel,
			Cache:   responseCache,
			Timeout: cfg.GenTimeout,
		}
	}

	assistModel := cfg.AssistModel
	if assistModel == "" {
		assistModel = cfg.LLMModel
	}
	assistant := &assist.Assistant{
		Client:  client,
		Model:   assistModel,
		Timeout: cfg.AssistTimeout,
	}

	s := &server.Server{
		Resolver: &pipeline.Resolver{
			Dataset:   dataset,
			Generator: gen,
		},
		Assistant:    assistant,
		JobPosts:     &jobpost.Fetcher{UserAgent: "curricuforge/1.0"},
		AllowOrigins: cfg.AllowOrigins,
	}

	return &App{
		cfg: cfg,
		srv: &http.Server{
			Addr:              cfg.Addr,
			Handler:           s.Router(),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", a.cfg.Addr).Msg("listening")
		errCh <- a.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info().Msg("shutting down")
		return a.srv.Shutdown(shutdownCtx)
	}
}
