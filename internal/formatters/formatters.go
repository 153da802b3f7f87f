package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"resumescope/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "Report", &ReportTextFormatter{})
	registry.RegisterFormatter("markdown", "Report", &ReportMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case *types.Report, types.Report:
		return "Report"
	default:
		return "any"
	}
}

func asReport(data any) (*types.Report, bool) {
	switch v := data.(type) {
	case *types.Report:
		return v, true
	case types.Report:
		return &v, true
	default:
		return nil, false
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// ReportTextFormatter handles plain text formatting for score reports
type ReportTextFormatter struct{}

func (rtf *ReportTextFormatter) Format(data any) (string, error) {
	report, ok := asReport(data)
	if !ok {
		return "", fmt.Errorf("expected Report, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== RESUME SCORE REPORT ===\n\n")
	if report.Name != "" {
		output.WriteString(fmt.Sprintf("Candidate: %s\n", report.Name))
	}
	output.WriteString(fmt.Sprintf("Overall: %.0f/%.0f (%s)\n", report.Total, report.Max, report.Overall))
	if report.ATSReadiness != nil {
		output.WriteString(fmt.Sprintf("ATS Readiness: %.0f%%\n", *report.ATSReadiness))
	}
	output.WriteString("\n=== BREAKDOWN ===\n")
	for _, c := range report.Categories {
		output.WriteString(fmt.Sprintf("%s: %.0f/%.0f (%s)\n", c.Label, c.Points, c.Max, c.Grade))
		for _, d := range c.Detail {
			output.WriteString(fmt.Sprintf("  - %s\n", d))
		}
	}

	if len(report.Suggestions) > 0 {
		output.WriteString("\n=== SUGGESTIONS ===\n")
		for i, suggestion := range report.Suggestions {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, suggestion))
		}
	}

	if len(report.Certifications) > 0 {
		output.WriteString("\n=== RECOMMENDED CERTIFICATIONS ===\n")
		for _, cert := range report.Certifications {
			output.WriteString(fmt.Sprintf("- %s\n", cert))
		}
	}

	if report.Insight != "" {
		output.WriteString("\n=== INSIGHT ===\n")
		output.WriteString(report.Insight)
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (rtf *ReportTextFormatter) SupportedType() string {
	return "Report"
}

// ReportMarkdownFormatter handles markdown formatting for score reports
type ReportMarkdownFormatter struct{}

func (rmf *ReportMarkdownFormatter) Format(data any) (string, error) {
	report, ok := asReport(data)
	if !ok {
		return "", fmt.Errorf("expected Report, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Resume Score Report\n\n")
	if report.Name != "" {
		output.WriteString(fmt.Sprintf("**Candidate:** %s\n\n", report.Name))
	}
	output.WriteString(fmt.Sprintf("**Overall:** %.0f/%.0f (%s)\n\n", report.Total, report.Max, report.Overall))
	if report.ATSReadiness != nil {
		output.WriteString(fmt.Sprintf("**ATS Readiness:** %.0f%%\n\n", *report.ATSReadiness))
	}

	output.WriteString("## Breakdown\n\n")
	output.WriteString("| Category | Score | Grade |\n")
	output.WriteString("|----------|-------|-------|\n")
	for _, c := range report.Categories {
		output.WriteString(fmt.Sprintf("| %s | %.0f/%.0f | %s |\n", c.Label, c.Points, c.Max, c.Grade))
	}
	output.WriteString("\n")

	if len(report.Suggestions) > 0 {
		output.WriteString("## Suggestions\n\n")
		for i, suggestion := range report.Suggestions {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, suggestion))
		}
		output.WriteString("\n")
	}

	if len(report.Certifications) > 0 {
		output.WriteString("## Recommended Certifications\n\n")
		for _, cert := range report.Certifications {
			output.WriteString(fmt.Sprintf("- %s\n", cert))
		}
		output.WriteString("\n")
	}

	if report.Insight != "" {
		output.WriteString("## Insight\n\n")
		output.WriteString(report.Insight)
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (rmf *ReportMarkdownFormatter) SupportedType() string {
	return "Report"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
