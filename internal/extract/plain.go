package extract

import (
	"os"
	"strings"

	"cvrobo/internal/errors"
	"cvrobo/internal/types"
)

// PlainExtractor reads text files as-is.
type PlainExtractor struct{}

func NewPlainExtractor() *PlainExtractor {
	return &PlainExtractor{}
}

func (p *PlainExtractor) Format() types.SourceFormat {
	return types.SourceFormatPlain
}

func (p *PlainExtractor) Extract(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", errors.NewExtractionError(errors.ErrCodeExtractionFailed,
			"failed to read text file", err).
			WithContext("path", path)
	}
	if strings.TrimSpace(string(content)) == "" {
		return "", errors.NewExtractionError(errors.ErrCodeExtractionFailed,
			"text file is empty", nil).
			WithContext("path", path)
	}
	return string(content), nil
}
