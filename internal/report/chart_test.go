package report

import (
	"bytes"
	"image/png"
	"testing"

	"resumescope/internal/types"
)

func TestRenderChart(t *testing.T) {
	data, err := RenderChart(sampleCategories())
	if err != nil {
		t.Fatalf("RenderChart returned error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected PNG bytes for a scored breakdown")
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("chart is not a decodable PNG: %v", err)
	}
	if img.Bounds().Dx() != 512 || img.Bounds().Dy() != 512 {
		t.Errorf("expected 512x512 chart, got %v", img.Bounds())
	}
}

func TestRenderChartAllZero(t *testing.T) {
	categories := []types.CategoryScore{
		{Category: types.CategoryGitHub, Label: "GitHub", Points: 0, Max: 25},
		{Category: types.CategoryLeetCode, Label: "LeetCode", Points: 0, Max: 20},
	}

	data, err := RenderChart(categories)
	if err != nil {
		t.Fatalf("RenderChart returned error: %v", err)
	}
	if data != nil {
		t.Error("expected no chart when nothing scored")
	}
}
