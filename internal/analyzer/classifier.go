package analyzer

import (
	"strings"

	"cvrobo/internal/types"
)

// salutations are cover-letter openers and closers. A document leaning on
// these rather than on section headings reads as correspondence, not a
// resume.
var salutations = []string{
	"dear ",
	"dear,",
	"to whom it may concern",
	"dear hiring manager",
	"dear sir",
	"dear madam",
	"sincerely",
	"yours faithfully",
	"best regards",
	"kind regards",
}

// Classify decides whether text is a resume, a cover letter, or something
// else. It inspects lexical signals (resume headings vs. salutation
// phrases) and a length floor. Ties go to "resume": over-rejecting a sparse
// but legitimate resume is worse than scoring a non-resume, so the
// classifier is deliberately biased against false negatives. It never
// fails; unrecognizable input maps to "other".
func (e *Engine) Classify(text string) types.DocumentType {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return types.DocumentTypeOther
	}

	headings := countResumeHeadings(text)
	letterSignals := countSalutations(text)

	if headings >= e.cfg.Classifier.MinHeadings {
		if letterSignals > headings {
			return types.DocumentTypeCoverLetter
		}
		return types.DocumentTypeResume
	}

	if letterSignals > headings {
		return types.DocumentTypeCoverLetter
	}

	if len(trimmed) < e.cfg.Classifier.MinLength {
		return types.DocumentTypeOther
	}

	return types.DocumentTypeResume
}

// countResumeHeadings counts lines that match the section lexicon for the
// canonical resume kinds. Headings of kind "other" (certifications, awards)
// also count: they only appear in resumes.
func countResumeHeadings(text string) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		if _, ok := matchHeading(line); ok {
			count++
		}
	}
	return count
}

// countSalutations counts cover-letter phrases appearing in the text.
func countSalutations(text string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, phrase := range salutations {
		if strings.Contains(lower, phrase) {
			count++
		}
	}
	return count
}
