package analyzer

import (
	"strings"
	"testing"

	"cvrobo/internal/types"
)

func sectionOf(kind types.SectionKind, text string) types.Section {
	return types.Section{Kind: kind, RawText: text}
}

func filler(words int) string {
	return strings.TrimSpace(strings.Repeat("word ", words))
}

func TestSectionScoreWeights(t *testing.T) {
	engine := NewDefault()
	body := filler(20) // comfortably past the content floor

	tests := []struct {
		name  string
		kinds []types.SectionKind
		want  int
	}{
		{
			name:  "all four canonical sections",
			kinds: []types.SectionKind{types.SectionSummary, types.SectionExperience, types.SectionEducation, types.SectionSkills},
			want:  100,
		},
		{
			name:  "missing education",
			kinds: []types.SectionKind{types.SectionSummary, types.SectionExperience, types.SectionSkills},
			want:  75,
		},
		{
			name:  "experience only",
			kinds: []types.SectionKind{types.SectionExperience},
			want:  35,
		},
		{
			name:  "projects carry no completeness weight",
			kinds: []types.SectionKind{types.SectionExperience, types.SectionProjects},
			want:  35,
		},
		{
			name:  "no sections",
			kinds: nil,
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var parsed types.ParsedResume
			for _, kind := range tt.kinds {
				parsed.Sections = append(parsed.Sections, sectionOf(kind, body))
			}
			if _, got := engine.ScoreFormat(parsed, types.ContactInfo{}); got != tt.want {
				t.Errorf("section score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSectionPresenceRequiresContent(t *testing.T) {
	engine := NewDefault()

	// A heading with a few characters of body does not count as present.
	thin := types.ParsedResume{Sections: []types.Section{
		{Kind: types.SectionSkills, Heading: "Skills", RawText: "Go"},
	}}
	if _, got := engine.ScoreFormat(thin, types.ContactInfo{}); got != 0 {
		t.Errorf("thin section must not count, section score = %d", got)
	}

	// Content of the same kind accumulates across split sections.
	split := types.ParsedResume{Sections: []types.Section{
		sectionOf(types.SectionSkills, filler(4)),
		sectionOf(types.SectionSkills, filler(4)),
	}}
	if _, got := engine.ScoreFormat(split, types.ContactInfo{}); got != 20 {
		t.Errorf("split sections must accumulate, section score = %d", got)
	}
}

func TestFormatScoreComponents(t *testing.T) {
	engine := NewDefault()

	experience := func(body string, entries ...types.SectionEntry) types.ParsedResume {
		return types.ParsedResume{Sections: []types.Section{
			{Kind: types.SectionExperience, RawText: body, Entries: entries},
		}}
	}

	tests := []struct {
		name    string
		parsed  types.ParsedResume
		contact types.ContactInfo
		want    int
	}{
		{
			name:   "nothing earns nothing",
			parsed: experience("plain prose without any signals"),
			want:   0,
		},
		{
			name:   "bullets credit",
			parsed: experience("- did a thing\n- did another"),
			want:   25,
		},
		{
			name:   "length band credit",
			parsed: experience(filler(200)),
			want:   25,
		},
		{
			name:   "over the length band",
			parsed: experience(filler(1500)),
			want:   0,
		},
		{
			name:   "consistent dates credit",
			parsed: experience("jobs", types.SectionEntry{DateRange: "Jan 2020 - Mar 2021"}, types.SectionEntry{DateRange: "Apr 2021 - May 2022"}),
			want:   25,
		},
		{
			name:   "mixed date styles get partial credit",
			parsed: experience("jobs", types.SectionEntry{DateRange: "Jan 2020 - Mar 2021"}, types.SectionEntry{DateRange: "03/2022 - 04/2023"}),
			want:   10,
		},
		{
			name:    "email and phone credits",
			parsed:  experience("plain prose without any signals"),
			contact: types.ContactInfo{Email: "a@b.dev", Phone: "555-123-4567"},
			want:    25,
		},
		{
			name: "all credits together",
			parsed: experience("- one\n- two\n"+filler(150),
				types.SectionEntry{DateRange: "Jan 2020 - Mar 2021"}),
			contact: types.ContactInfo{Email: "a@b.dev", Phone: "555-123-4567"},
			want:    100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, _ := engine.ScoreFormat(tt.parsed, tt.contact); got != tt.want {
				t.Errorf("format score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDateStyle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Jan 2020 - Mar 2021", "month-year"},
		{"03/2020 - 04/2021", "numeric"},
		{"2019 - 2021", "year"},
		{"sometime", "unknown"},
	}

	for _, tt := range tests {
		if got := dateStyle(tt.in); got != tt.want {
			t.Errorf("dateStyle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHasQuantifiableMetrics(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"percentage", "Improved throughput by 40%", true},
		{"dollar amount", "Saved $2M in infrastructure spend", true},
		{"count of people", "Supported 300 users across two offices", true},
		{"no numbers", "Improved throughput substantially", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := types.ParsedResume{Sections: []types.Section{
				sectionOf(types.SectionExperience, tt.text),
			}}
			if got := hasQuantifiableMetrics(parsed); got != tt.want {
				t.Errorf("hasQuantifiableMetrics(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
