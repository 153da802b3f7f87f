package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// The URI action targets of link annotations live in the raw object stream.
// Scanning the bytes directly picks them up without walking the full
// annotation tree.
var pdfURIPattern = regexp.MustCompile(`/URI\s*\(([^)]+)\)`)

// extractPDF pulls the plain text, page count and embedded link targets out
// of a PDF document.
func extractPDF(data []byte) (text string, pages int, embedded []string, err error) {
	// The reader panics on some malformed files; surface that as a parse error.
	defer func() {
		if r := recover(); r != nil {
			text, pages, embedded = "", 0, nil
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(strings.NewReader(string(data)), int64(len(data)))
	if err != nil {
		return "", 0, nil, err
	}

	pages = reader.NumPage()

	var b strings.Builder
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		b.WriteString(pageText)
		b.WriteString("\n")
	}

	for _, m := range pdfURIPattern.FindAllSubmatch(data, -1) {
		embedded = append(embedded, string(m[1]))
	}

	return strings.TrimSpace(b.String()), pages, embedded, nil
}
