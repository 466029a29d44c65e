package analyzer

import (
	"strings"

	"cvrobo/internal/types"
)

// maxHeadingLen is the longest a line can be and still be considered a
// section heading. Real headings are short; prose lines are not.
const maxHeadingLen = 50

// sectionLexicon maps each canonical section kind to the heading synonyms
// that identify it. Matching is case-insensitive on a normalized form of the
// line. The rule set is data so each synonym can be tested independently.
var sectionLexicon = map[types.SectionKind][]string{
	types.SectionSummary: {
		"summary",
		"professional summary",
		"career summary",
		"objective",
		"career objective",
		"profile",
		"about me",
		"about",
	},
	types.SectionExperience: {
		"experience",
		"work experience",
		"work history",
		"employment",
		"employment history",
		"professional experience",
		"career history",
		"relevant experience",
	},
	types.SectionEducation: {
		"education",
		"academic background",
		"academics",
		"qualifications",
		"education and training",
	},
	types.SectionProjects: {
		"projects",
		"personal projects",
		"side projects",
		"academic projects",
		"selected projects",
	},
	types.SectionSkills: {
		"skills",
		"technical skills",
		"core competencies",
		"skills and abilities",
		"technologies",
		"tech stack",
	},
}

// otherHeadings are recognized as section boundaries but carry no canonical
// kind; their sections are labeled "other".
var otherHeadings = []string{
	"certifications",
	"certificates",
	"awards",
	"honors",
	"languages",
	"interests",
	"hobbies",
	"references",
	"publications",
	"volunteer",
	"volunteering",
	"volunteer experience",
	"activities",
	"extracurricular activities",
}

// normalizeHeading lowercases a candidate heading line and strips the
// punctuation and decoration commonly attached to headings.
func normalizeHeading(line string) string {
	s := strings.ToLower(strings.TrimSpace(line))
	s = strings.Trim(s, ":-–—*#•|= \t")
	s = strings.ReplaceAll(s, "&", "and")
	return strings.Join(strings.Fields(s), " ")
}

// matchHeading reports whether a line is a section heading and, if so, which
// kind it opens. When a line matches synonyms of more than one kind the
// longest synonym wins, so "work experience" beats a bare "experience".
func matchHeading(line string) (types.SectionKind, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) > maxHeadingLen {
		return "", false
	}

	norm := normalizeHeading(trimmed)
	if norm == "" {
		return "", false
	}

	bestKind := types.SectionKind("")
	bestLen := 0
	for kind, synonyms := range sectionLexicon {
		for _, syn := range synonyms {
			if synonymMatches(norm, syn) && len(syn) > bestLen {
				bestKind = kind
				bestLen = len(syn)
			}
		}
	}
	for _, syn := range otherHeadings {
		if synonymMatches(norm, syn) && len(syn) > bestLen {
			bestKind = types.SectionOther
			bestLen = len(syn)
		}
	}

	if bestLen == 0 {
		return "", false
	}
	return bestKind, true
}

// synonymMatches reports whether a normalized heading equals the synonym or
// starts with it as a whole word, e.g. "experience and achievements".
func synonymMatches(norm, syn string) bool {
	return norm == syn || strings.HasPrefix(norm, syn+" ")
}
