package analyzer

import (
	"regexp"
	"strings"

	"cvrobo/internal/types"
)

var (
	emailRe     = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe     = regexp.MustCompile(`(\+?\d{1,2}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	urlRe       = regexp.MustCompile(`(?i)\b(?:https?://)?(?:www\.)?[a-z0-9][a-z0-9-]*(?:\.[a-z0-9-]+)*\.[a-z]{2,}(?:/[^\s<>"']*)?`)
	linkedinRe  = regexp.MustCompile(`(?i)\b(?:https?://)?(?:www\.)?linkedin\.com/[^\s<>"']+`)
	githubRe    = regexp.MustCompile(`(?i)\b(?:https?://)?(?:www\.)?github\.com/[^\s<>"']+`)
	nameWordRe  = regexp.MustCompile(`^[A-Za-z][A-Za-z'.-]*$`)
	knownHostRe = regexp.MustCompile(`(?i)(?:linkedin|github)\.com`)
)

// nameScanLines bounds how far from the top of the document the name
// heuristic looks.
const nameScanLines = 5

// ExtractContacts pulls contact fields out of raw text. Every field is
// matched independently; a field whose pattern does not appear is left
// empty, never synthesized. The function is pure, so re-running it on the
// same text yields identical results.
func ExtractContacts(text string) types.ContactInfo {
	var contact types.ContactInfo

	if m := emailRe.FindString(text); m != "" {
		contact.Email = m
	}
	if m := phoneRe.FindString(text); m != "" {
		contact.Phone = strings.TrimSpace(m)
	}
	if m := linkedinRe.FindString(text); m != "" {
		contact.LinkedIn = trimURL(m)
	}
	if m := githubRe.FindString(text); m != "" {
		contact.GitHub = trimURL(m)
	}
	contact.Portfolio = findPortfolio(text)
	contact.Name = findName(text)

	return contact
}

// findPortfolio returns the first URL that is neither a LinkedIn nor a
// GitHub address nor any part of an email address.
func findPortfolio(text string) string {
	emails := emailRe.FindAllStringIndex(text, -1)
	for _, m := range urlRe.FindAllStringIndex(text, -1) {
		candidate := text[m[0]:m[1]]
		if knownHostRe.MatchString(candidate) {
			continue
		}
		if overlapsAny(m, emails) {
			continue
		}
		return trimURL(candidate)
	}
	return ""
}

func overlapsAny(m []int, ranges [][]int) bool {
	for _, r := range ranges {
		if m[0] < r[1] && r[0] < m[1] {
			return true
		}
	}
	return false
}

// findName applies a position heuristic: the first non-empty line near the
// top of the document that is two to four plain words and carries none of
// the delimiters used by the other contact fields, before any section
// heading.
func findName(text string) string {
	lines := strings.Split(text, "\n")
	scanned := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if _, isHeading := matchHeading(trimmed); isHeading {
			return ""
		}
		scanned++
		if scanned > nameScanLines {
			return ""
		}
		if looksLikeName(trimmed) {
			return trimmed
		}
	}
	return ""
}

func looksLikeName(line string) bool {
	if strings.ContainsAny(line, "@:/") || phoneRe.MatchString(line) {
		return false
	}
	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		if !nameWordRe.MatchString(w) {
			return false
		}
	}
	return true
}

func trimURL(u string) string {
	return strings.TrimRight(strings.TrimSpace(u), ".,;)")
}
