package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	apperrors "resumescope/internal/errors"
	"resumescope/internal/types"
)

func TestExtractText(t *testing.T) {
	svc := NewService(nil)

	data := []byte("Alice Johnson\nSoftware Engineer\nalice@example.com\nhttps://github.com/alice\n")
	doc, err := svc.Extract(context.Background(), data, "resume.txt")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if doc.Format != types.FormatText {
		t.Errorf("format = %v, want %v", doc.Format, types.FormatText)
	}
	if doc.Name != "Alice Johnson" {
		t.Errorf("name = %q, want %q", doc.Name, "Alice Johnson")
	}
	if len(doc.Links) != 2 || doc.Links[0].Kind != types.LinkGitHub || doc.Links[1].Kind != types.LinkEmail {
		t.Errorf("links = %+v, want a github link and a mailto link", doc.Links)
	}
	if len(doc.Emails) != 1 || doc.Emails[0] != "alice@example.com" {
		t.Errorf("emails = %v", doc.Emails)
	}
	if doc.WordCount != 6 {
		t.Errorf("wordCount = %d, want 6", doc.WordCount)
	}
}

func TestExtractUnsupportedFormat(t *testing.T) {
	svc := NewService(nil)

	_, err := svc.Extract(context.Background(), []byte("whatever"), "resume.odt")
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != apperrors.ErrCodeUnsupportedFormat {
		t.Errorf("code = %s, want %s", appErr.Code, apperrors.ErrCodeUnsupportedFormat)
	}
}

const testDocumentXML = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Alice Johnson</w:t></w:r></w:p>
    <w:p><w:r><w:t>Work Experience at </w:t></w:r><w:r><w:t>Example Corp</w:t></w:r></w:p>
    <w:p><w:r><w:t>alice@example.com</w:t></w:r></w:p>
  </w:body>
</w:document>`

const testRelsXML = `<?xml version="1.0"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink" Target="https://github.com/alice" TargetMode="External"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`

func buildTestDOCX(t *testing.T, withRels bool) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(testDocumentXML)); err != nil {
		t.Fatal(err)
	}

	if withRels {
		w, err = zw.Create("word/_rels/document.xml.rels")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(testRelsXML)); err != nil {
			t.Fatal(err)
		}
	}

	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestExtractDOCX(t *testing.T) {
	svc := NewService(nil)

	doc, err := svc.Extract(context.Background(), buildTestDOCX(t, true), "resume.docx")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if doc.Format != types.FormatDOCX {
		t.Errorf("format = %v, want %v", doc.Format, types.FormatDOCX)
	}
	if !strings.Contains(doc.Text, "Work Experience at Example Corp") {
		t.Errorf("text runs not joined: %q", doc.Text)
	}
	if doc.Name != "Alice Johnson" {
		t.Errorf("name = %q", doc.Name)
	}

	var gotGitHub bool
	for _, l := range doc.Links {
		if l.Kind == types.LinkGitHub && l.URL == "https://github.com/alice" {
			gotGitHub = true
		}
	}
	if !gotGitHub {
		t.Errorf("hyperlink relationship not harvested, links = %+v", doc.Links)
	}
}

func TestExtractDOCXWithoutRels(t *testing.T) {
	svc := NewService(nil)

	doc, err := svc.Extract(context.Background(), buildTestDOCX(t, false), "resume.docx")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	for _, l := range doc.Links {
		if l.Kind != types.LinkEmail {
			t.Errorf("expected only mailto links without rels, got %+v", doc.Links)
		}
	}
}

func TestExtractCorruptDOCXFallsBackToText(t *testing.T) {
	svc := NewService(nil)

	doc, err := svc.Extract(context.Background(), []byte("not a zip, just alice@example.com"), "resume.docx")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if doc.Format != types.FormatDOCX {
		t.Errorf("format = %v, want %v", doc.Format, types.FormatDOCX)
	}
	if !strings.Contains(doc.Text, "alice@example.com") {
		t.Errorf("raw bytes not decoded as text: %q", doc.Text)
	}
	if len(doc.Emails) != 1 {
		t.Errorf("emails = %v", doc.Emails)
	}
}

func TestExtractCorruptPDFFallsBackToText(t *testing.T) {
	svc := NewService(nil)

	doc, err := svc.Extract(context.Background(), []byte("garbage bytes, not a pdf"), "resume.pdf")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if doc.Format != types.FormatPDF {
		t.Errorf("format = %v, want %v", doc.Format, types.FormatPDF)
	}
	if !strings.Contains(doc.Text, "garbage bytes") {
		t.Errorf("raw bytes not decoded as text: %q", doc.Text)
	}
}

func TestExtractCancelledContext(t *testing.T) {
	svc := NewService(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Extract(ctx, []byte("text"), "resume.txt"); err == nil {
		t.Error("expected context error")
	}
}
