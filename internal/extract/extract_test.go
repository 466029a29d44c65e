package extract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cvrobo/internal/errors"
	"cvrobo/internal/types"
)

func TestSniffFormat(t *testing.T) {
	tests := []struct {
		path        string
		want        types.SourceFormat
		expectError bool
	}{
		{path: "resume.pdf", want: types.SourceFormatPDF},
		{path: "Resume.PDF", want: types.SourceFormatPDF},
		{path: "resume.docx", want: types.SourceFormatDOCX},
		{path: "resume.txt", want: types.SourceFormatPlain},
		{path: "resume.md", want: types.SourceFormatPlain},
		{path: "resume", want: types.SourceFormatPlain},
		{path: "resume.exe", expectError: true},
		{path: "archive.zip", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := SniffFormat(tt.path)
			if tt.expectError {
				if err == nil {
					t.Errorf("expected error for %s", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("SniffFormat(%s) failed: %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("SniffFormat(%s) = %s, want %s", tt.path, got, tt.want)
			}
		})
	}
}

func TestExtractFilePlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	content := "Jane Smith\n\nExperience\nDid things.\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	service := NewService(nil)
	doc, err := service.ExtractFile(path)
	if err != nil {
		t.Fatalf("ExtractFile failed: %v", err)
	}

	if doc.SourceFormat != types.SourceFormatPlain {
		t.Errorf("expected plain format, got %s", doc.SourceFormat)
	}
	if doc.Text != content {
		t.Errorf("text must pass through unchanged, got %q", doc.Text)
	}
}

func TestExtractFileMissing(t *testing.T) {
	service := NewService(nil)

	_, err := service.ExtractFile(filepath.Join(t.TempDir(), "absent.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeFileNotFound {
		t.Errorf("expected %s, got %v", errors.ErrCodeFileNotFound, err)
	}
}

func TestExtractFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("   \n\t\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	service := NewService(nil)
	_, err := service.ExtractFile(path)
	if err == nil {
		t.Fatal("expected error for empty file")
	}
	if !strings.Contains(err.Error(), "empty") {
		t.Errorf("expected empty-file error, got %v", err)
	}
}

func TestExtractFileUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.exe")
	if err := os.WriteFile(path, []byte("binary"), 0o600); err != nil {
		t.Fatal(err)
	}

	service := NewService(nil)
	_, err := service.ExtractFile(path)
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeUnsupportedFormat {
		t.Errorf("expected %s, got %v", errors.ErrCodeUnsupportedFormat, err)
	}
}

func TestExtractFileNoExtractorForFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.docx")
	if err := os.WriteFile(path, []byte("zip bytes"), 0o600); err != nil {
		t.Fatal(err)
	}

	// The default service registers no DOCX extractor.
	service := NewService(nil)
	_, err := service.ExtractFile(path)
	if err == nil {
		t.Fatal("expected error for format without an extractor")
	}
	if !strings.Contains(err.Error(), "no extractor") {
		t.Errorf("expected no-extractor error, got %v", err)
	}
}

type failingExtractor struct{}

func (f *failingExtractor) Format() types.SourceFormat { return types.SourceFormatPlain }
func (f *failingExtractor) Extract(string) (string, error) {
	return "", errors.NewExtractionError(errors.ErrCodeExtractionFailed, "broken", nil)
}

func TestExtractFileFallbackChain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	if err := os.WriteFile(path, []byte("content"), 0o600); err != nil {
		t.Fatal(err)
	}

	// A failing extractor first; the chain must fall through to the
	// working one.
	s := &Service{extractors: map[types.SourceFormat][]Extractor{}}
	s.Register(&failingExtractor{})
	s.Register(NewPlainExtractor())

	doc, err := s.ExtractFile(path)
	if err != nil {
		t.Fatalf("fallback chain failed: %v", err)
	}
	if doc.Text != "content" {
		t.Errorf("expected fallback text, got %q", doc.Text)
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "ragged whitespace",
			in:   "  line one  \n\n\t line two \n   \nline three",
			want: "line one\nline two\nline three",
		},
		{
			name: "already clean",
			in:   "a\nb",
			want: "a\nb",
		},
		{
			name: "empty",
			in:   "   ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.in); got != tt.want {
				t.Errorf("CleanText() = %q, want %q", got, tt.want)
			}
		})
	}
}
