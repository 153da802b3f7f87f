package insight

import (
	"context"
	"fmt"

	"resumescope/internal/config"
	"resumescope/internal/errors"
	"resumescope/internal/types"
)

// Provider interface for insight generator implementations
type Provider interface {
	GenerateInsight(ctx context.Context, rep *types.Report) (string, *TokenUsage, error)
	GetModelInfo(ctx context.Context) *ModelInfo
	Close() error
}

// Service generates narrative insights for finished reports. A nil Service is
// valid and means the feature is disabled.
type Service struct {
	Provider Provider // Exported for access from server package
	config   *config.InsightConfig
	logger   *errors.Logger
}

// NewService creates an insight service, or nil when the feature is disabled
func NewService(cfg *config.InsightConfig, logger *errors.Logger) (*Service, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	logger.Debug("Initializing insight service",
		"provider", cfg.Provider,
		"model", cfg.Model,
		"temperature", cfg.Temperature,
		"timeout", cfg.Timeout,
		"max_retries", cfg.MaxRetries)

	var provider Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		provider, err = NewGeminiProvider(cfg, logger)
	default:
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("Unsupported insight provider: %s", cfg.Provider), nil)
	}

	if err != nil {
		return nil, errors.NewAIError(errors.ErrCodeInsightFailed,
			"Failed to create insight provider", err)
	}

	return &Service{
		Provider: provider,
		config:   cfg,
		logger:   logger,
	}, nil
}

// Annotate attaches a narrative insight to the report. Failures are logged and
// swallowed: a score report is complete without its insight text.
func (s *Service) Annotate(ctx context.Context, rep *types.Report) {
	if s == nil || rep == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	text, _, err := s.Provider.GenerateInsight(ctx, rep)
	if err != nil {
		s.logger.LogError(err, "Insight generation failed, continuing without insight",
			"rubric", string(rep.Rubric))
		return
	}
	rep.Insight = text
}

// GetModelInfo returns information about the insight model for health checks
func (s *Service) GetModelInfo(ctx context.Context) any {
	if s == nil {
		return nil
	}
	return s.Provider.GetModelInfo(ctx)
}
