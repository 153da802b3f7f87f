package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const hyperlinkRelType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"

// extractDOCX pulls the visible text out of word/document.xml and the
// hyperlink targets out of the document relationship part.
func extractDOCX(data []byte) (text string, embedded []string, err error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", nil, fmt.Errorf("not a valid docx archive: %w", err)
	}

	var docXML, relsXML []byte
	for _, f := range zr.File {
		switch f.Name {
		case "word/document.xml":
			docXML, err = readZipFile(f)
		case "word/_rels/document.xml.rels":
			relsXML, err = readZipFile(f)
		}
		if err != nil {
			return "", nil, err
		}
	}
	if docXML == nil {
		return "", nil, fmt.Errorf("docx archive has no word/document.xml")
	}

	text, err = docxText(docXML)
	if err != nil {
		return "", nil, err
	}

	if relsXML != nil {
		embedded = docxHyperlinks(relsXML)
	}

	return text, embedded, nil
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", f.Name, err)
	}
	defer func() { _ = rc.Close() }()

	return io.ReadAll(rc)
}

// docxText walks the WordprocessingML token stream: text runs (w:t) are
// concatenated, paragraphs (w:p) become newlines, explicit tabs (w:tab)
// become tab characters.
func docxText(docXML []byte) (string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(docXML))

	var b strings.Builder
	var inText bool
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("malformed document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				b.WriteByte('\t')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}

	return strings.TrimSpace(b.String()), nil
}

type docxRelationships struct {
	Relationships []struct {
		Type   string `xml:"Type,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

func docxHyperlinks(relsXML []byte) []string {
	var rels docxRelationships
	if err := xml.Unmarshal(relsXML, &rels); err != nil {
		return nil
	}

	var targets []string
	for _, rel := range rels.Relationships {
		if rel.Type == hyperlinkRelType {
			targets = append(targets, rel.Target)
		}
	}
	return targets
}
