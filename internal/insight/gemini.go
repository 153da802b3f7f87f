package insight

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"net"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/api/googleapi"
	"google.golang.org/genai"

	"resumescope/internal/config"
	scopeErrors "resumescope/internal/errors"
	"resumescope/internal/types"
)

// GeminiProvider implements Provider for Google Gemini
type GeminiProvider struct {
	client         *genai.Client
	httpClient     *http.Client
	config         *config.InsightConfig
	circuitBreaker *InsightCircuitBreaker
	modelBreaker   *ModelCircuitBreaker
	logger         *scopeErrors.Logger
}

// Ensure GeminiProvider implements Provider
var _ Provider = (*GeminiProvider)(nil)

// NewGeminiProvider creates a new Gemini provider instance
func NewGeminiProvider(cfg *config.InsightConfig, logger *scopeErrors.Logger) (*GeminiProvider, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, scopeErrors.NewAIError(scopeErrors.ErrCodeInsightFailed,
			"Failed to create Gemini client", err)
	}

	return &GeminiProvider{
		client: client,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		config:         cfg,
		circuitBreaker: NewInsightCircuitBreaker(cfg, logger),
		modelBreaker:   NewModelCircuitBreaker(cfg, logger),
		logger:         logger,
	}, nil
}

// ModelInfo represents information about the insight model
type ModelInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
	Version     string `json:"version,omitempty"`
	Available   bool   `json:"available"`
	Error       string `json:"error,omitempty"`
}

// GetModelInfo checks the readiness and availability of the configured model
func (g *GeminiProvider) GetModelInfo(ctx context.Context) *ModelInfo {
	modelInfo := &ModelInfo{
		Name:      g.config.Model,
		Available: false,
	}

	checkCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	model, err := g.modelBreaker.ExecuteModel(func() (*genai.Model, error) {
		return g.client.Models.Get(checkCtx, g.config.Model, &genai.GetModelConfig{})
	})
	if err != nil {
		modelInfo.Error = fmt.Sprintf("Failed to get model info: %v", err)

		g.logger.Warn("Model availability check failed",
			"model", g.config.Model,
			"provider", g.config.Provider,
			"error", err.Error())
		return modelInfo
	}

	modelInfo.Available = true
	if model.DisplayName != "" {
		modelInfo.DisplayName = model.DisplayName
	}
	if model.Version != "" {
		modelInfo.Version = model.Version
	}

	g.logger.Debug("Model availability check successful",
		"model", g.config.Model,
		"provider", g.config.Provider,
		"display_name", modelInfo.DisplayName,
		"version", modelInfo.Version)

	return modelInfo
}

// executeWithRetry executes an insight call with retry logic and exponential backoff
func (g *GeminiProvider) executeWithRetry(ctx context.Context, fn func() (*genai.GenerateContentResponse, error)) (*genai.GenerateContentResponse, error) {
	var lastErr error

	for attempt := 0; attempt <= g.config.MaxRetries; attempt++ {
		if attempt > 0 {
			g.logger.Warn("Retrying insight generation",
				"attempt", attempt,
				"max_retries", g.config.MaxRetries,
				"error", lastErr.Error())

			// Exponential backoff with jitter to prevent thundering herd
			baseDelay := time.Duration(math.Pow(2, float64(attempt-1))) * time.Second
			jitterMax := big.NewInt(int64(float64(baseDelay) * 0.1))
			jitterBig, _ := rand.Int(rand.Reader, jitterMax)
			jitter := time.Duration(jitterBig.Int64())
			backoff := min(baseDelay+jitter, 30*time.Second)

			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		result, err := fn()
		if err == nil {
			if attempt > 0 {
				g.logger.Info("Insight generation succeeded after retry",
					"successful_attempt", attempt+1)
			}
			return result, nil
		}

		lastErr = err

		// Don't retry on certain errors (auth, invalid input, etc.)
		if !g.isRetryableError(err) {
			g.logger.Debug("Error is not retryable, stopping retry attempts",
				"error", err.Error())
			break
		}
	}

	g.logger.LogError(lastErr, "Insight generation failed after all retry attempts",
		"total_attempts", g.config.MaxRetries+1)

	return nil, fmt.Errorf("insight generation failed after %d retries: %w", g.config.MaxRetries, lastErr)
}

// isRetryableError determines if an error should trigger a retry
func (g *GeminiProvider) isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return true
		}
		return true
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
	}

	return false
}

// insightOutput is the schema-constrained response shape.
type insightOutput struct {
	Insight string `json:"insight"`
}

// GenerateInsight produces a short narrative summary of a scored report.
// The text is advisory only and never feeds back into category points.
func (g *GeminiProvider) GenerateInsight(ctx context.Context, rep *types.Report) (string, *TokenUsage, error) {
	tracer := otel.Tracer("resumescope.insight.gemini")
	ctx, span := tracer.Start(ctx, "gemini.generate_insight")
	defer span.End()

	span.SetAttributes(
		attribute.String("insight.provider", "gemini"),
		attribute.String("insight.model", g.config.Model),
		attribute.Float64("insight.temperature", float64(g.config.Temperature)),
		attribute.String("report.rubric", string(rep.Rubric)),
		attribute.Float64("report.total", rep.Total),
	)

	prompt := buildPrompt(rep)
	genaiConfig := g.buildInsightSchema()

	result, err := g.circuitBreaker.Execute(func() (*genai.GenerateContentResponse, error) {
		return g.executeWithRetry(ctx, func() (*genai.GenerateContentResponse, error) {
			return g.client.Models.GenerateContent(ctx, g.config.Model, genai.Text(prompt), genaiConfig)
		})
	})
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return "", nil, scopeErrors.NewAIError(scopeErrors.ErrCodeInsightFailed,
			"Failed to generate report insight", err)
	}

	var output insightOutput
	if err := json.Unmarshal([]byte(result.Text()), &output); err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return "", nil, scopeErrors.NewAIError(scopeErrors.ErrCodeInsightFailed,
			"Failed to parse insight response", err)
	}

	tokenUsage := extractTokenUsage(result)
	if tokenUsage != nil {
		span.SetAttributes(
			attribute.Int64("insight.tokens.input", tokenUsage.InputTokens),
			attribute.Int64("insight.tokens.output", tokenUsage.OutputTokens),
			attribute.Int64("insight.tokens.total", tokenUsage.TotalTokens),
		)
	}

	span.SetAttributes(attribute.Bool("success", true))
	return output.Insight, tokenUsage, nil
}

// GetCircuitBreakerStats returns circuit breaker statistics
func (g *GeminiProvider) GetCircuitBreakerStats() map[string]any {
	stats := map[string]any{
		"insight_operations": g.circuitBreaker.GetStats(),
		"model_operations":   g.modelBreaker.GetModelStats(),
	}

	stats["overall_healthy"] = g.circuitBreaker.IsHealthy() && g.modelBreaker.IsModelHealthy()

	return stats
}

// Close implements Provider interface
func (g *GeminiProvider) Close() error {
	// Gemini client doesn't have a Close method in current single-shot usage
	return nil
}

// buildInsightSchema creates the schema constraining insight responses
func (g *GeminiProvider) buildInsightSchema() *genai.GenerateContentConfig {
	genaiConfig := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"insight": {Type: genai.TypeString},
			},
			Required: []string{"insight"},
		},
	}

	if g.config.Temperature > 0 {
		temperature := g.config.Temperature
		genaiConfig.Temperature = &temperature
	}

	return genaiConfig
}

const promptTemplate = `You are reviewing an automated resume score report.
Write a short narrative (3-4 sentences) for the candidate: name the strongest
category, the weakest category, and the single most impactful next step. Do not
restate numbers the candidate can already see.

Rubric: %s
Overall: %.0f of %.0f (%s)
Breakdown:
%s`

func buildPrompt(rep *types.Report) string {
	var breakdown strings.Builder
	for _, c := range rep.Categories {
		fmt.Fprintf(&breakdown, "- %s: %.0f of %.0f (%s)\n", c.Label, c.Points, c.Max, c.Grade)
	}
	return fmt.Sprintf(promptTemplate, rep.Rubric, rep.Total, rep.Max, rep.Overall, breakdown.String())
}

// TokenUsage represents token usage information from insight responses
type TokenUsage struct {
	InputTokens  int64
	OutputTokens int64
	TotalTokens  int64
}

// extractTokenUsage extracts token usage information from a Gemini API response
func extractTokenUsage(result *genai.GenerateContentResponse) *TokenUsage {
	if result == nil || result.UsageMetadata == nil {
		return nil
	}

	usage := result.UsageMetadata
	return &TokenUsage{
		InputTokens:  int64(usage.PromptTokenCount),
		OutputTokens: int64(usage.CandidatesTokenCount),
		TotalTokens:  int64(usage.TotalTokenCount),
	}
}
