package analyzer

import (
	"regexp"
	"strings"

	"cvrobo/internal/types"
)

// Additive weights of the format checks. They sum to 100.
const (
	bulletWeight     = 25
	lengthWeight     = 25
	dateWeight       = 25
	dateMixedCredit  = 10
	emailWeight      = 15
	phoneWeight      = 10
	metricsPattern   = `\d+%|\$\d|\d+\+|\b\d+ (users|customers|requests|people|engineers|clients)\b`
	monthYearPattern = `(?i)(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}`
	numericPattern   = `\d{1,2}/\d{4}`
	yearPattern      = `\b\d{4}\b`
)

var (
	bulletLineRe = regexp.MustCompile(`(?m)^\s*[-*•▪◦·]\s+`)
	metricsRe    = regexp.MustCompile(metricsPattern)
	monthYearRe  = regexp.MustCompile(monthYearPattern)
	numericRe    = regexp.MustCompile(numericPattern)
	yearRe       = regexp.MustCompile(yearPattern)
)

// ScoreFormat evaluates structural quality independent of content. It
// returns the format score (bullets, length band, date consistency, contact
// presence) and the section completeness score (weighted presence of the
// canonical sections). Both are pure functions of the parsed resume and the
// extracted contact fields; the role profile is never consulted.
func (e *Engine) ScoreFormat(parsed types.ParsedResume, contact types.ContactInfo) (int, int) {
	return e.formatScore(parsed, contact), e.sectionScore(parsed)
}

func (e *Engine) sectionScore(parsed types.ParsedResume) int {
	score := 0
	for _, kind := range []types.SectionKind{
		types.SectionSummary,
		types.SectionExperience,
		types.SectionEducation,
		types.SectionSkills,
	} {
		if e.sectionPresent(parsed, kind) {
			score += e.cfg.Sections.weightFor(kind)
		}
	}
	return clampScore(score)
}

// sectionPresent requires non-trivial content, not just a heading.
func (e *Engine) sectionPresent(parsed types.ParsedResume, kind types.SectionKind) bool {
	total := 0
	for _, s := range parsed.ByKind(kind) {
		total += len(strings.TrimSpace(s.RawText))
	}
	return total >= e.cfg.Format.MinSectionChars
}

func (e *Engine) formatScore(parsed types.ParsedResume, contact types.ContactInfo) int {
	score := 0

	if countBullets(parsed) > 0 {
		score += bulletWeight
	}

	words := wordCount(parsed)
	if words >= e.cfg.Format.MinWords && words <= e.cfg.Format.MaxWords {
		score += lengthWeight
	}

	score += dateConsistencyCredit(parsed)

	if contact.Email != "" {
		score += emailWeight
	}
	if contact.Phone != "" {
		score += phoneWeight
	}

	return clampScore(score)
}

// countBullets counts bullet-style lines in experience and project sections.
func countBullets(parsed types.ParsedResume) int {
	count := 0
	for _, kind := range []types.SectionKind{types.SectionExperience, types.SectionProjects} {
		for _, section := range parsed.ByKind(kind) {
			count += len(bulletLineRe.FindAllString(section.RawText, -1))
		}
	}
	return count
}

func wordCount(parsed types.ParsedResume) int {
	count := 0
	for _, section := range parsed.Sections {
		count += len(strings.Fields(section.RawText))
	}
	return count
}

// dateConsistencyCredit awards the full date weight when every date in the
// experience entries uses the same style, a partial credit when styles are
// mixed, and nothing when no dates were found.
func dateConsistencyCredit(parsed types.ParsedResume) int {
	styles := make(map[string]bool)
	found := false
	for _, section := range parsed.ByKind(types.SectionExperience) {
		for _, entry := range section.Entries {
			if entry.DateRange == "" {
				continue
			}
			found = true
			styles[dateStyle(entry.DateRange)] = true
		}
	}
	if !found {
		return 0
	}
	if len(styles) == 1 {
		return dateWeight
	}
	return dateMixedCredit
}

func dateStyle(dateRange string) string {
	switch {
	case monthYearRe.MatchString(dateRange):
		return "month-year"
	case numericRe.MatchString(dateRange):
		return "numeric"
	case yearRe.MatchString(dateRange):
		return "year"
	default:
		return "unknown"
	}
}

// hasQuantifiableMetrics reports whether experience text cites numbers the
// way accomplishment bullets do.
func hasQuantifiableMetrics(parsed types.ParsedResume) bool {
	for _, section := range parsed.ByKind(types.SectionExperience) {
		if metricsRe.MatchString(section.RawText) {
			return true
		}
	}
	return false
}
