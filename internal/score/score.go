// Package score orchestrates a scoring run: extract the document, resolve
// identities, fetch platform signals, apply the rubric, and assemble the
// report.
package score

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"resumescope/internal/config"
	"resumescope/internal/errors"
	"resumescope/internal/extract"
	"resumescope/internal/identify"
	"resumescope/internal/insight"
	"resumescope/internal/report"
	"resumescope/internal/rubric"
	"resumescope/internal/signals"
	"resumescope/internal/types"
)

// Service runs resume scoring end to end.
type Service struct {
	cfg       *config.Config
	logger    *errors.Logger
	extractor *extract.Service
	fetcher   *signals.Fetcher
	builder   *report.Builder
	insight   *insight.Service
}

// NewService wires the scoring pipeline from configuration
func NewService(cfg *config.Config, logger *errors.Logger) (*Service, error) {
	insightSvc, err := insight.NewService(&cfg.Insight, logger)
	if err != nil {
		return nil, err
	}

	return &Service{
		cfg:       cfg,
		logger:    logger,
		extractor: extract.NewService(logger),
		fetcher:   signals.NewFetcher(cfg.Providers, logger),
		builder:   report.NewBuilder(6),
		insight:   insightSvc,
	}, nil
}

// ScoreTechnical scores an uploaded resume under the technical rubric.
func (s *Service) ScoreTechnical(ctx context.Context, data []byte, filename string, opts types.ScoreOptions) (*types.Report, error) {
	tracer := otel.Tracer("resumescope.score")
	ctx, span := tracer.Start(ctx, "score.technical")
	defer span.End()

	doc, err := s.extractor.Extract(ctx, data, filename)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	ids := identify.Resolve(doc, opts)
	span.SetAttributes(
		attribute.Bool("resolved.github", ids.GitHubUser != ""),
		attribute.Bool("resolved.leetcode", ids.LeetCodeUser != ""),
	)

	bundle := s.fetcher.FetchAll(ctx, ids)
	categories := rubric.Technical(doc, ids, bundle)

	rep := s.builder.Build(types.RubricTechnical, doc, ids, categories)
	s.finish(ctx, rep, categories, opts)

	s.logger.Info("Technical resume scored",
		"total", rep.Total,
		"grade", string(rep.Overall),
		"github_user", ids.GitHubUser,
		"leetcode_user", ids.LeetCodeUser)

	return rep, nil
}

// ScoreNonTechnical scores an uploaded resume under the non-technical rubric.
// No external signals are fetched; the rubric works from text alone.
func (s *Service) ScoreNonTechnical(ctx context.Context, data []byte, filename string, opts types.ScoreOptions) (*types.Report, error) {
	tracer := otel.Tracer("resumescope.score")
	ctx, span := tracer.Start(ctx, "score.non_technical")
	defer span.End()

	doc, err := s.extractor.Extract(ctx, data, filename)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	ids := identify.Resolve(doc, opts)
	categories := rubric.NonTechnical(doc)

	rep := s.builder.Build(types.RubricNonTechnical, doc, ids, categories)
	s.finish(ctx, rep, categories, opts)

	s.logger.Info("Non-technical resume scored",
		"total", rep.Total,
		"grade", string(rep.Overall),
		"role", ids.DesiredRole)

	return rep, nil
}

// finish renders the chart and attaches the optional insight.
func (s *Service) finish(ctx context.Context, rep *types.Report, categories []types.CategoryScore, opts types.ScoreOptions) {
	if opts.Chart && s.cfg.Scoring.Chart {
		png, err := report.RenderChart(categories)
		if err != nil {
			s.logger.Warn("Chart rendering failed, continuing without chart", "error", err.Error())
		} else {
			rep.ChartPNG = png
		}
	}

	s.insight.Annotate(ctx, rep)
}

// SuggestCertifications looks up the curated certification list for a role.
func (s *Service) SuggestCertifications(role string, limit int) []string {
	return rubric.SuggestRoleCertifications(role, limit)
}

// SuggestionLimit returns the configured display cap for suggestions.
func (s *Service) SuggestionLimit() int {
	return s.cfg.Scoring.SuggestionLimit
}

// Stats exposes fetcher circuit breaker statistics for the stats endpoint.
func (s *Service) Stats() map[string]any {
	return s.fetcher.Stats()
}

// IsHealthy reports whether the upstream fetchers are usable.
func (s *Service) IsHealthy() bool {
	return s.fetcher.IsHealthy()
}

// ModelInfo reports insight model availability, or nil when disabled.
func (s *Service) ModelInfo(ctx context.Context) any {
	return s.insight.GetModelInfo(ctx)
}
