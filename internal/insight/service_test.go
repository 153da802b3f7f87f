package insight

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"resumescope/internal/config"
	"resumescope/internal/errors"
	"resumescope/internal/types"
)

type stubProvider struct {
	text string
	err  error
}

func (s *stubProvider) GenerateInsight(_ context.Context, _ *types.Report) (string, *TokenUsage, error) {
	return s.text, nil, s.err
}

func (s *stubProvider) GetModelInfo(_ context.Context) *ModelInfo {
	return &ModelInfo{Name: "stub", Available: true}
}

func (s *stubProvider) Close() error { return nil }

func testReport() *types.Report {
	return &types.Report{
		Rubric:  types.RubricTechnical,
		Total:   60,
		Max:     100,
		Overall: types.GradeAverage,
		Categories: []types.CategoryScore{
			{Category: types.CategoryGitHub, Label: "GitHub", Points: 20, Max: 25, Grade: types.GradeExcellent},
			{Category: types.CategoryLeetCode, Label: "LeetCode", Points: 2, Max: 20, Grade: types.GradePoor},
		},
	}
}

func stubService(p Provider) *Service {
	return &Service{
		Provider: p,
		config:   &config.InsightConfig{Timeout: time.Second},
		logger:   errors.NewLogger(slog.LevelError),
	}
}

func TestNewServiceDisabled(t *testing.T) {
	svc, err := NewService(&config.InsightConfig{Enabled: false}, errors.NewLogger(slog.LevelError))
	if err != nil {
		t.Fatalf("disabled service should not error: %v", err)
	}
	if svc != nil {
		t.Error("disabled service should be nil")
	}
}

func TestNewServiceUnsupportedProvider(t *testing.T) {
	cfg := &config.InsightConfig{Enabled: true, Provider: "oracle", Timeout: time.Second}
	if _, err := NewService(cfg, errors.NewLogger(slog.LevelError)); err == nil {
		t.Error("expected error for unsupported provider")
	}
}

func TestAnnotate(t *testing.T) {
	rep := testReport()
	svc := stubService(&stubProvider{text: "Strong GitHub presence; focus next on LeetCode practice."})

	svc.Annotate(context.Background(), rep)
	if rep.Insight == "" {
		t.Error("expected insight text on the report")
	}
}

func TestAnnotateSwallowsFailure(t *testing.T) {
	rep := testReport()
	svc := stubService(&stubProvider{err: fmt.Errorf("upstream down")})

	svc.Annotate(context.Background(), rep)
	if rep.Insight != "" {
		t.Errorf("failed insight should leave the report untouched, got %q", rep.Insight)
	}
}

func TestAnnotateNilService(t *testing.T) {
	var svc *Service
	rep := testReport()

	// Must not panic: a nil service means the feature is off.
	svc.Annotate(context.Background(), rep)
	if rep.Insight != "" {
		t.Error("nil service should not set insight")
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt(testReport())

	for _, want := range []string{"technical", "60 of 100", "GitHub: 20 of 25", "LeetCode: 2 of 20"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}
