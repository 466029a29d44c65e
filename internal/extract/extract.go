// Package extract turns uploaded files into the raw text the analysis
// engine consumes. Extraction is the only I/O in the analysis path; the
// engine itself never touches files, so callers run extraction first and
// hand over the resulting string.
package extract

import (
	"os"
	"path/filepath"
	"strings"

	"cvrobo/internal/errors"
	"cvrobo/internal/types"
)

// Extractor extracts plain text from a file of one source format.
type Extractor interface {
	// Extract returns the text content of the file at path. Failures are
	// extraction errors; an empty document is a failure, not an empty
	// string.
	Extract(path string) (string, error)
	// Format reports which source format this extractor handles.
	Format() types.SourceFormat
}

// Service routes a file to the extractor for its format, with an optional
// fallback chain per format for files a primary extractor cannot read.
type Service struct {
	extractors map[types.SourceFormat][]Extractor
	logger     *errors.Logger
}

// NewService builds the default service: PDF extraction plus plain-text
// passthrough for .txt, .md and extensionless files.
func NewService(logger *errors.Logger) *Service {
	s := &Service{
		extractors: make(map[types.SourceFormat][]Extractor),
		logger:     logger,
	}
	s.Register(NewPDFExtractor())
	s.Register(NewPlainExtractor())
	return s
}

// Register appends an extractor to the chain for its format. Registration
// order is fallback order.
func (s *Service) Register(e Extractor) {
	s.extractors[e.Format()] = append(s.extractors[e.Format()], e)
}

// ExtractFile sniffs the format from the file extension, runs the
// extractor chain for it, and returns the extracted document. Each
// extractor in the chain is tried in order; the document comes from the
// first one that succeeds.
func (s *Service) ExtractFile(path string) (types.RawDocument, error) {
	if _, err := os.Stat(path); err != nil {
		return types.RawDocument{}, errors.NewIOError(errors.ErrCodeFileNotFound,
			"input file not found", err).
			WithContext("path", path)
	}

	format, err := SniffFormat(path)
	if err != nil {
		return types.RawDocument{}, err
	}

	chain := s.extractors[format]
	if len(chain) == 0 {
		return types.RawDocument{}, errors.NewExtractionError(errors.ErrCodeUnsupportedFormat,
			"no extractor registered for format", nil).
			WithContext("format", string(format))
	}

	var lastErr error
	for _, extractor := range chain {
		text, err := extractor.Extract(path)
		if err == nil {
			return types.RawDocument{Text: text, SourceFormat: format}, nil
		}
		lastErr = err
		if s.logger != nil {
			s.logger.Warn("extractor failed, trying next in chain",
				"path", path,
				"format", string(format),
				"error", err.Error())
		}
	}

	return types.RawDocument{}, errors.NewExtractionError(errors.ErrCodeExtractionFailed,
		"all extractors failed for file", lastErr).
		WithContext("path", path).
		WithContext("format", string(format))
}

// SniffFormat maps a file extension to its source format.
func SniffFormat(path string) (types.SourceFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return types.SourceFormatPDF, nil
	case ".docx":
		return types.SourceFormatDOCX, nil
	case ".txt", ".md", ".text", "":
		return types.SourceFormatPlain, nil
	default:
		return "", errors.NewExtractionError(errors.ErrCodeUnsupportedFormat,
			"unsupported file format", nil).
			WithContext("path", path)
	}
}

// CleanText trims each line and drops blank ones, normalizing the ragged
// whitespace PDF extraction tends to produce.
func CleanText(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return strings.Join(cleaned, "\n")
}
