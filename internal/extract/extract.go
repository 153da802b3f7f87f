// Package extract turns uploaded resume files into a normalized document:
// plain text plus the classified hyperlinks and email addresses found in it.
package extract

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"resumescope/internal/errors"
	"resumescope/internal/types"
)

// Service parses resume documents.
type Service struct {
	logger *errors.Logger
}

// NewService creates a document extractor.
func NewService(logger *errors.Logger) *Service {
	return &Service{logger: logger}
}

// Extract parses data according to the file extension of filename.
// Unsupported extensions are the one fatal input error in the pipeline.
func (s *Service) Extract(ctx context.Context, data []byte, filename string) (*types.ExtractedDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))

	var (
		text     string
		pages    int
		embedded []string
		format   types.DocumentFormat
		err      error
	)

	switch ext {
	case "pdf":
		format = types.FormatPDF
		text, pages, embedded, err = extractPDF(data)
	case "docx":
		format = types.FormatDOCX
		text, embedded, err = extractDOCX(data)
	case "txt":
		format = types.FormatText
		text = strings.TrimSpace(string(data))
	default:
		return nil, errors.NewValidationError(
			errors.ErrCodeUnsupportedFormat,
			fmt.Sprintf("unsupported document format: %q", ext),
			nil,
		).WithContext("filename", filename)
	}

	// A broken container on a supported format never fails the run: decode
	// whatever the bytes hold as plain text and score that.
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("document parse failed, falling back to raw text",
				"format", string(format),
				"filename", filename,
				"error", err.Error())
		}
		text = strings.TrimSpace(strings.ToValidUTF8(string(data), ""))
		pages = 0
		embedded = nil
	}

	doc := &types.ExtractedDocument{
		Text:      text,
		Format:    format,
		Links:     harvestLinks(text, embedded),
		Emails:    harvestEmails(text),
		Name:      guessName(text),
		WordCount: len(strings.Fields(text)),
		PageCount: pages,
	}

	if s.logger != nil {
		s.logger.Debug("document extracted",
			"format", string(format),
			"words", doc.WordCount,
			"links", len(doc.Links))
	}

	return doc, nil
}
