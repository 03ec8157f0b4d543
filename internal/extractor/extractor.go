// Package extractor recovers plain text from uploaded study documents.
//
// Dispatch is by declared file extension, not content sniffing: the
// upload boundary already names the file, and a mismatched extension
// surfaces as an extraction failure from the format parser itself.
package extractor

import (
	"path/filepath"
	"strings"

	"quizme/internal/domain"
)

// Format identifies a supported document format.
type Format string

const (
	FormatPDF  Format = "PDF"
	FormatDOCX Format = "DOCX"
)

// Extractor turns document bytes into normalized plain text. It is
// stateless and safe for concurrent use.
type Extractor struct{}

// New creates a new Extractor instance
func New() *Extractor {
	return &Extractor{}
}

// Extract reads the document bytes and returns normalized text.
// The declared name decides the format; unsupported extensions fail
// with UNSUPPORTED_FORMAT and parser errors with EXTRACTION_FAILURE.
func (e *Extractor) Extract(data []byte, declaredName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(declaredName))

	var raw string
	var err error
	switch ext {
	case ".pdf":
		raw, err = extractPDF(data)
		if err != nil {
			return "", domain.NewExtractionFailureError(string(FormatPDF), err)
		}
	case ".docx":
		raw, err = extractDOCX(data)
		if err != nil {
			return "", domain.NewExtractionFailureError(string(FormatDOCX), err)
		}
	default:
		return "", domain.NewUnsupportedFormatError(ext)
	}

	return Normalize(raw), nil
}
