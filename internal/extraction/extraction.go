// Package extraction converts uploaded resume documents (PDF or DOCX)
// into plain text. Extraction is performed entirely in memory; no
// temporary files are spilled to disk, so there is nothing to clean up
// on failure paths.
package extraction

import (
	"bytes"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/orozcop9/TailorMyResume-AI/internal/types"
)

var (
	paragraphBreakRe = regexp.MustCompile(`</w:p>`)
	xmlTagRe         = regexp.MustCompile(`<[^>]+>`)
)

// Extract decodes the textual content of a raw document. A PDF with no
// extractable text layer (a pure image scan) yields an empty string,
// which is not an error; downstream scoring will report near-zero
// values for it.
func Extract(raw types.RawDocument) (string, error) {
	switch raw.MediaType {
	case types.MediaPDF:
		return extractPDF(raw.Data)
	case types.MediaDOCX:
		return extractDOCX(raw.Data)
	default:
		return "", &UnsupportedFormatError{MediaType: string(raw.MediaType)}
	}
}

// MediaTypeForPath maps a file extension to a supported media type for
// CLI use. Returns false for anything else, including legacy .doc.
func MediaTypeForPath(path string) (types.MediaType, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return types.MediaPDF, true
	case ".docx":
		return types.MediaDOCX, true
	default:
		return "", false
	}
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &CorruptDocumentError{MediaType: "pdf", Cause: err}
	}

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		// Pages without a text layer contribute nothing.
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}

	return builder.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &CorruptDocumentError{MediaType: "docx", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	return stripDocumentXML(doc.Editable().GetContent()), nil
}

// stripDocumentXML reduces the word/document.xml payload to paragraph
// text: paragraph closes become newlines, every other tag is dropped.
// Images and tables carry no text runs and disappear with their markup.
func stripDocumentXML(content string) string {
	content = paragraphBreakRe.ReplaceAllString(content, "\n")
	content = xmlTagRe.ReplaceAllString(content, "")
	content = strings.ReplaceAll(content, "&amp;", "&")
	content = strings.ReplaceAll(content, "&lt;", "<")
	content = strings.ReplaceAll(content, "&gt;", ">")
	return content
}
