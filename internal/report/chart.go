package report

import (
	"bytes"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"resumescope/internal/types"
)

// RenderChart draws the category breakdown as a pie chart PNG. Categories with
// zero points are omitted; if nothing scored, no chart is produced.
func RenderChart(categories []types.CategoryScore) ([]byte, error) {
	values := make([]chart.Value, 0, len(categories))
	for _, c := range categories {
		if c.Points <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: c.Label,
			Value: c.Points,
			Style: chart.Style{
				FillColor: drawing.ColorFromHex(strings.TrimPrefix(c.Grade.Color(), "#")),
			},
		})
	}
	if len(values) == 0 {
		return nil, nil
	}

	pie := chart.PieChart{
		Width:  512,
		Height: 512,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
