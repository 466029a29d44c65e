package analyzer

import (
	"regexp"
	"strings"

	"cvrobo/internal/errors"
	"cvrobo/internal/types"
)

var (
	skillSplitRe = regexp.MustCompile(`[,;|•·\n\t]+`)
	skillCharRe  = regexp.MustCompile(`[^a-z0-9+#. ]+`)
)

// normalizeSkill reduces a skill token to a case- and
// punctuation-insensitive form. "+", "#" and "." survive so tokens like
// "C++", "C#" and "Node.js" stay distinct.
func normalizeSkill(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = skillCharRe.ReplaceAllString(s, " ")
	s = strings.Trim(s, ". ")
	return strings.Join(strings.Fields(s), " ")
}

// ExtractSkills builds the resume's normalized skill set: tokens from the
// skills sections, plus words scanned from experience and project text as a
// fallback for resumes that list tools only inline.
func ExtractSkills(parsed types.ParsedResume) map[string]bool {
	skills := make(map[string]bool)

	for _, section := range parsed.ByKind(types.SectionSkills) {
		for _, token := range skillSplitRe.Split(section.RawText, -1) {
			token = strings.TrimLeft(strings.TrimSpace(token), "-*• ")
			if norm := normalizeSkill(token); norm != "" {
				skills[norm] = true
			}
		}
	}

	for _, kind := range []types.SectionKind{types.SectionExperience, types.SectionProjects} {
		for _, section := range parsed.ByKind(kind) {
			for _, word := range strings.Fields(section.RawText) {
				if norm := normalizeSkill(word); norm != "" {
					skills[norm] = true
				}
			}
		}
	}

	return skills
}

// Match scores the overlap between the resume's skill set and a role's
// required skills. The score is 100*|matched|/|required|, rounded half up
// and clamped to [0,100]. An empty required list scores 100: a role that
// demands nothing is vacuously matched, not penalized. The missing list
// preserves the profile's original declaration order so suggestions are
// stable across runs. A profile with nil or unusable required skills is a
// configuration error, never silently treated as empty.
func (e *Engine) Match(parsed types.ParsedResume, profile types.RoleProfile) (int, []string, error) {
	if profile.RequiredSkills == nil {
		return 0, nil, errors.NewConfigError(errors.ErrCodeInvalidRoleProfile,
			"role profile has no required skills list", nil).
			WithContext("category", profile.Category).
			WithContext("role", profile.Role)
	}
	if len(profile.RequiredSkills) == 0 {
		return 100, []string{}, nil
	}

	skills := ExtractSkills(parsed)
	corpus := buildCorpus(parsed)

	matchedCount := 0
	missing := make([]string, 0)
	seen := make(map[string]bool)
	total := 0
	for _, required := range profile.RequiredSkills {
		norm := normalizeSkill(required)
		if norm == "" {
			return 0, nil, errors.NewConfigError(errors.ErrCodeInvalidRoleProfile,
				"role profile contains an empty required skill", nil).
				WithContext("category", profile.Category).
				WithContext("role", profile.Role)
		}
		if seen[norm] {
			continue
		}
		seen[norm] = true
		total++
		if skills[norm] || containsPhrase(corpus, norm) {
			matchedCount++
		} else {
			missing = append(missing, required)
		}
	}

	score := roundHalfUp(100 * float64(matchedCount) / float64(total))
	return clampScore(score), missing, nil
}

// buildCorpus joins the normalized text of the sections skills may hide in,
// enabling phrase matches for multi-word skills.
func buildCorpus(parsed types.ParsedResume) string {
	var parts []string
	for _, kind := range []types.SectionKind{
		types.SectionSkills,
		types.SectionExperience,
		types.SectionProjects,
		types.SectionSummary,
		types.SectionOther,
	} {
		for _, section := range parsed.ByKind(kind) {
			parts = append(parts, normalizeSkill(section.RawText))
		}
	}
	return " " + strings.Join(parts, " ") + " "
}

// containsPhrase reports whether the corpus contains the phrase bounded by
// token separators, so "java" does not match inside "javascript".
func containsPhrase(corpus, phrase string) bool {
	idx := 0
	for {
		i := strings.Index(corpus[idx:], phrase)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(phrase)
		beforeOK := start == 0 || corpus[start-1] == ' '
		afterOK := end == len(corpus) || corpus[end] == ' ' || corpus[end] == '.'
		if beforeOK && afterOK {
			return true
		}
		idx = end
	}
}
