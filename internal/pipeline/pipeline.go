// Package pipeline resolves a curriculum request through four tiers in fixed
// order: curated dataset, built-in domain profiles, generative model, and the
// procedural fallback. The last tier cannot fail, so Resolve always returns a
// payload.
package pipeline

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/currhub/curricuforge/internal/curated"
	"github.com/currhub/curricuforge/internal/fallback"
	"github.com/currhub/curricuforge/internal/generator"
	"github.com/currhub/curricuforge/internal/profile"
	"github.com/currhub/curricuforge/internal/schema"
)

// Source identifies which tier produced a payload.
type Source string

const (
	SourceCurated    Source = "curated"
	SourceTemplate   Source = "template"
	SourceGenerative Source = "generative"
	SourceFallback   Source = "fallback"
)

// Resolver walks the tiers. Dataset and Generator may be nil; nil tiers are
// skipped.
type Resolver struct {
	Dataset   *curated.Dataset
	Generator *generator.Generator
}

// Resolve returns a curriculum for the request along with the tier that
// produced it.
func (r *Resolver) Resolve(ctx context.Context, req schema.CurriculumRequest) (schema.CurriculumPayload, Source) {
	if r.Dataset != nil {
		p, err := r.Dataset.Lookup(req)
		if err == nil {
			log.Debug().Str("domain", req.Domain).Msg("resolved from curated dataset")
			return p, SourceCurated
		}
		if !errors.Is(err, curated.ErrNotFound) {
			log.Warn().Err(err).Msg("curated lookup failed")
		}
	}

	if profile.Has(req.Domain) {
		log.Debug().Str("domain", req.Domain).Msg("resolved from domain profile")
		return profile.Synthesize(req), SourceTemplate
	}

	if r.Generator != nil {
		p, err := r.Generator.Generate(ctx, req)
		if err == nil {
			log.Debug().Str("domain", req.Domain).Msg("resolved from generative model")
			return p, SourceGenerative
		}
		if !errors.Is(err, generator.ErrNotConfigured) {
			log.Warn().Err(err).Str("domain", req.Domain).Msg("generative tier failed, using fallback")
		}
	}

	return fallback.Synthesize(req), SourceFallback
}
