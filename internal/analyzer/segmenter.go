package analyzer

import (
	"regexp"
	"strings"

	"cvrobo/internal/types"
)

// dateRangeRe matches the date expressions that open a new experience or
// project entry: "Jan 2020 - Mar 2022", "2019–2021", "03/2020 - Present".
var dateRangeRe = regexp.MustCompile(`(?i)((jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}|\d{1,2}/\d{4}|\b\d{4}\b)\s*(-|–|—|to)\s*((jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}|\d{1,2}/\d{4}|\b\d{4}\b|present|current|now)`)

// Segment partitions raw text into labeled sections. It scans line by line
// for headings from the lexicon; text between two headings belongs to the
// first, and text before any heading is attributed to an implicit
// header/summary region. If no headings are found at all the whole text
// becomes a single "other" section, so the document is still scored.
func (e *Engine) Segment(text string) types.ParsedResume {
	lines := strings.Split(text, "\n")

	var parsed types.ParsedResume
	currentKind := types.SectionSummary
	currentHeading := ""
	var body []string
	sawHeading := false

	flush := func() {
		raw := strings.TrimSpace(strings.Join(body, "\n"))
		body = body[:0]
		if raw == "" && currentHeading == "" {
			return
		}
		section := types.Section{
			Kind:    currentKind,
			Heading: currentHeading,
			RawText: raw,
		}
		if currentKind == types.SectionExperience || currentKind == types.SectionProjects {
			section.Entries = splitEntries(raw)
		}
		parsed.Sections = append(parsed.Sections, section)
	}

	for _, line := range lines {
		if kind, ok := matchHeading(line); ok {
			flush()
			sawHeading = true
			currentKind = kind
			currentHeading = strings.TrimSpace(line)
			continue
		}
		body = append(body, line)
	}
	flush()

	if !sawHeading {
		raw := strings.TrimSpace(text)
		return types.ParsedResume{Sections: []types.Section{{
			Kind:    types.SectionOther,
			RawText: raw,
		}}}
	}

	return parsed
}

// splitEntries breaks a section body into discrete entries at lines carrying
// a date range. The heading of an entry is its date line with the range
// stripped, or the line preceding it. A body with no recognizable dates is
// kept as one unstructured entry, so nothing is dropped.
func splitEntries(raw string) []types.SectionEntry {
	if raw == "" {
		return nil
	}

	lines := strings.Split(raw, "\n")
	var entries []types.SectionEntry
	var current *types.SectionEntry
	var leading []string

	for i, line := range lines {
		dateMatch := dateRangeRe.FindString(line)
		if dateMatch == "" {
			if current != nil {
				current.Text += "\n" + line
			} else {
				leading = append(leading, line)
			}
			continue
		}

		if current != nil {
			entries = append(entries, *current)
		}
		heading := strings.TrimSpace(strings.Replace(line, dateMatch, "", 1))
		heading = strings.Trim(heading, " -–—|,")
		if heading == "" && len(leading) > 0 {
			heading = strings.TrimSpace(leading[len(leading)-1])
		}
		if heading == "" && current == nil && i > 0 {
			heading = strings.TrimSpace(lines[i-1])
		}
		current = &types.SectionEntry{
			Heading:   heading,
			DateRange: strings.TrimSpace(dateMatch),
			Text:      line,
		}
		leading = nil
	}

	if current != nil {
		entries = append(entries, *current)
	}

	if len(entries) == 0 {
		return []types.SectionEntry{{Text: raw}}
	}

	for i := range entries {
		entries[i].Text = strings.TrimSpace(entries[i].Text)
	}
	return entries
}
