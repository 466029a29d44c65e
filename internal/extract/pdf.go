package extract

import (
	"strings"

	"github.com/ledongthuc/pdf"

	"cvrobo/internal/errors"
	"cvrobo/internal/types"
)

// PDFExtractor extracts plain text from PDF files page by page.
type PDFExtractor struct{}

func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

func (p *PDFExtractor) Format() types.SourceFormat {
	return types.SourceFormatPDF
}

// Extract reads every page of the PDF. A page that fails to decode is
// skipped rather than failing the document; only a PDF yielding no text at
// all is an error.
func (p *PDFExtractor) Extract(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", errors.NewExtractionError(errors.ErrCodeExtractionFailed,
			"failed to open PDF", err).
			WithContext("path", path)
	}
	defer f.Close()

	var builder strings.Builder
	for pageIndex := 1; pageIndex <= r.NumPage(); pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		builder.WriteString(text)
		builder.WriteString("\n\n")
	}

	text := builder.String()
	if strings.TrimSpace(text) == "" {
		return "", errors.NewExtractionError(errors.ErrCodeExtractionFailed,
			"no text content found in PDF", nil).
			WithContext("path", path)
	}

	return CleanText(text), nil
}
