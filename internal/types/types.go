package types

import (
	"fmt"
	"sort"
	"strings"
)

// DocumentType classifies the kind of document submitted for analysis.
type DocumentType string

const (
	DocumentTypeResume      DocumentType = "resume"
	DocumentTypeCoverLetter DocumentType = "cover_letter"
	DocumentTypeOther       DocumentType = "other"
)

// SourceFormat identifies the file format a document's text was extracted from.
type SourceFormat string

const (
	SourceFormatPDF   SourceFormat = "pdf"
	SourceFormatDOCX  SourceFormat = "docx"
	SourceFormatPlain SourceFormat = "plain"
)

// RawDocument is the extracted text of an uploaded document. It is created
// once per analysis request and never mutated after extraction.
type RawDocument struct {
	Text         string       `json:"text"`
	SourceFormat SourceFormat `json:"sourceFormat"`
}

// RoleProfile is a target job role loaded from static configuration.
// RequiredSkills preserves the order declared in the catalog so that
// missing-skill reporting is stable across runs.
type RoleProfile struct {
	Category       string   `json:"category"`
	Role           string   `json:"role"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"requiredSkills"`
}

// ContactInfo holds the contact fields extracted from a resume. Every field
// is optional; a field that could not be parsed is left empty.
type ContactInfo struct {
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

// SectionKind labels a logical region of resume text.
type SectionKind string

const (
	SectionSummary    SectionKind = "summary"
	SectionExperience SectionKind = "experience"
	SectionEducation  SectionKind = "education"
	SectionProjects   SectionKind = "projects"
	SectionSkills     SectionKind = "skills"
	SectionOther      SectionKind = "other"
)

// SectionEntry is one sub-record of a section, typically a single job or
// project split out by date-range detection. Entries that fail to parse keep
// their raw text so no content is lost.
type SectionEntry struct {
	Heading   string `json:"heading,omitempty"`
	DateRange string `json:"dateRange,omitempty"`
	Text      string `json:"text"`
}

// Section is a contiguous labeled region of resume text.
type Section struct {
	Kind    SectionKind    `json:"kind"`
	Heading string         `json:"heading,omitempty"`
	RawText string         `json:"rawText"`
	Entries []SectionEntry `json:"entries,omitempty"`
}

// ParsedResume is the ordered sequence of sections produced by segmentation.
// Section kinds need not be unique.
type ParsedResume struct {
	Sections []Section `json:"sections"`
}

// ByKind returns all sections of the given kind in document order.
func (p ParsedResume) ByKind(kind SectionKind) []Section {
	var out []Section
	for _, s := range p.Sections {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}

// Has reports whether at least one section of the given kind exists.
func (p ParsedResume) Has(kind SectionKind) bool {
	return len(p.ByKind(kind)) > 0
}

// SubScores are the independently computed component scores, each in [0,100].
type SubScores struct {
	KeywordMatch int `json:"keywordMatch"`
	Format       int `json:"format"`
	Section      int `json:"section"`
}

// AnalysisResult is the terminal artifact of an analysis. It is immutable
// once produced. When DocumentType is not "resume" only DocumentType is
// meaningful and ClassificationOnly is true.
type AnalysisResult struct {
	DocumentType       DocumentType             `json:"documentType"`
	ClassificationOnly bool                     `json:"classificationOnly,omitempty"`
	Contact            ContactInfo              `json:"contact"`
	Resume             ParsedResume             `json:"resume"`
	SubScores          SubScores                `json:"subScores"`
	ATSScore           int                      `json:"atsScore"`
	MissingSkills      []string                 `json:"missingSkills"`
	Suggestions        map[SectionKind][]string `json:"suggestions"`
	Profile            RoleProfileRef           `json:"profile"`
}

// RoleProfileRef identifies the profile an analysis was scored against.
type RoleProfileRef struct {
	Category string `json:"category"`
	Role     string `json:"role"`
}

// ScoreBand maps an ATS score to the band shown to users.
func ScoreBand(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	default:
		return "Needs Improvement"
	}
}

// Flatten serializes the result to a flat string mapping for persistence.
// List fields are joined with "," and suggestion keys are sorted so the
// output is deterministic.
func (r AnalysisResult) Flatten() map[string]string {
	flat := map[string]string{
		"document_type":  string(r.DocumentType),
		"ats_score":      fmt.Sprintf("%d", r.ATSScore),
		"keyword_match":  fmt.Sprintf("%d", r.SubScores.KeywordMatch),
		"format_score":   fmt.Sprintf("%d", r.SubScores.Format),
		"section_score":  fmt.Sprintf("%d", r.SubScores.Section),
		"missing_skills": strings.Join(r.MissingSkills, ","),
		"name":           r.Contact.Name,
		"email":          r.Contact.Email,
		"phone":          r.Contact.Phone,
	}

	kinds := make([]string, 0, len(r.Suggestions))
	for kind := range r.Suggestions {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		flat[kind+"_suggestions"] = strings.Join(r.Suggestions[SectionKind(kind)], ",")
	}

	return flat
}

// ReviewInput is the input for the AI-backed free-form review path.
type ReviewInput struct {
	Resume     string `json:"resume"`
	Category   string `json:"category,omitempty"`
	Role       string `json:"role,omitempty"`
	RoleTarget string `json:"roleTarget,omitempty"`
}

// ReviewOutput is the free-form commentary produced by the AI review path.
type ReviewOutput struct {
	Summary         string   `json:"summary"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
}
