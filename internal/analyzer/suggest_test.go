package analyzer

import (
	"strings"
	"testing"

	"cvrobo/internal/types"
)

func strongResume() types.ParsedResume {
	return types.ParsedResume{Sections: []types.Section{
		sectionOf(types.SectionSummary, filler(15)),
		{
			Kind:    types.SectionExperience,
			RawText: "- improved uptime by 30%\n- cut costs by 20%\n- mentored 4 engineers\n" + filler(120),
			Entries: []types.SectionEntry{
				{DateRange: "Jan 2020 - Mar 2023"},
				{DateRange: "Jun 2016 - Dec 2019"},
			},
		},
		sectionOf(types.SectionEducation, filler(10)),
		sectionOf(types.SectionSkills, filler(10)),
		sectionOf(types.SectionProjects, filler(10)),
	}}
}

func fullContact() types.ContactInfo {
	return types.ContactInfo{
		Name:     "Jane Smith",
		Email:    "jane@example.com",
		Phone:    "555-123-4567",
		LinkedIn: "linkedin.com/in/jane",
	}
}

func TestSuggestStrongResumeIsQuiet(t *testing.T) {
	engine := NewDefault()

	got := engine.Suggest(strongResume(), fullContact(), types.SubScores{}, nil)
	if len(got) != 0 {
		t.Errorf("a resume satisfying every rule must get no suggestions, got %v", got)
	}
}

func TestSuggestMissingSections(t *testing.T) {
	engine := NewDefault()
	empty := types.ParsedResume{}

	got := engine.Suggest(empty, types.ContactInfo{}, types.SubScores{}, nil)

	for _, kind := range []types.SectionKind{
		types.SectionSummary,
		types.SectionExperience,
		types.SectionEducation,
		types.SectionSkills,
		types.SectionProjects,
		types.SectionOther,
	} {
		if len(got[kind]) == 0 {
			t.Errorf("expected suggestions for %s on an empty resume", kind)
		}
	}
}

func TestSkillsSuggestionFiresOnlyWhenNeeded(t *testing.T) {
	engine := NewDefault()

	// Skills section present and nothing missing: no skills suggestions.
	got := engine.Suggest(strongResume(), fullContact(), types.SubScores{}, []string{})
	if len(got[types.SectionSkills]) != 0 {
		t.Errorf("unexpected skills suggestions: %v", got[types.SectionSkills])
	}

	// Missing skills alone trigger a skills suggestion naming them.
	got = engine.Suggest(strongResume(), fullContact(), types.SubScores{}, []string{"AWS", "Kafka"})
	if len(got[types.SectionSkills]) != 1 {
		t.Fatalf("expected exactly one skills suggestion, got %v", got[types.SectionSkills])
	}
	if !strings.Contains(got[types.SectionSkills][0], "AWS, Kafka") {
		t.Errorf("suggestion must name the missing skills: %q", got[types.SectionSkills][0])
	}

	// An absent skills section triggers one even with nothing missing.
	noSkills := strongResume()
	noSkills.Sections = noSkills.Sections[:3]
	got = engine.Suggest(noSkills, fullContact(), types.SubScores{}, []string{})
	if len(got[types.SectionSkills]) != 1 {
		t.Errorf("expected a skills-section suggestion, got %v", got[types.SectionSkills])
	}
}

func TestContactSuggestions(t *testing.T) {
	engine := NewDefault()

	contact := fullContact()
	contact.Phone = ""
	contact.LinkedIn = ""

	got := engine.Suggest(strongResume(), contact, types.SubScores{}, nil)

	summary := strings.Join(got[types.SectionSummary], "\n")
	if !strings.Contains(summary, "phone number") {
		t.Errorf("expected a phone suggestion, got %v", got[types.SectionSummary])
	}
	if !strings.Contains(summary, "LinkedIn") {
		t.Errorf("expected a LinkedIn suggestion, got %v", got[types.SectionSummary])
	}
	if strings.Contains(summary, "email address") {
		t.Errorf("email is present, no suggestion expected: %v", got[types.SectionSummary])
	}
}

func TestExperienceQualitySuggestions(t *testing.T) {
	engine := NewDefault()

	// Present experience section but with too few bullets and no numbers.
	parsed := types.ParsedResume{Sections: []types.Section{
		sectionOf(types.SectionSummary, filler(15)),
		sectionOf(types.SectionExperience, "- only one bullet here about work "+filler(120)),
		sectionOf(types.SectionEducation, filler(10)),
		sectionOf(types.SectionSkills, filler(10)),
		sectionOf(types.SectionProjects, filler(10)),
	}}

	got := engine.Suggest(parsed, fullContact(), types.SubScores{}, nil)

	experience := strings.Join(got[types.SectionExperience], "\n")
	if !strings.Contains(experience, "bullet points") {
		t.Errorf("expected a bullet suggestion, got %v", got[types.SectionExperience])
	}
	if !strings.Contains(experience, "Quantify") {
		t.Errorf("expected a metrics suggestion, got %v", got[types.SectionExperience])
	}
}

func TestDateConsistencySuggestion(t *testing.T) {
	engine := NewDefault()

	parsed := strongResume()
	parsed.Sections[1].Entries = []types.SectionEntry{
		{DateRange: "Jan 2020 - Mar 2023"},
		{DateRange: "03/2014 - 05/2016"},
	}

	got := engine.Suggest(parsed, fullContact(), types.SubScores{}, nil)

	other := strings.Join(got[types.SectionOther], "\n")
	if !strings.Contains(other, "consistent date format") {
		t.Errorf("expected a date-format suggestion, got %v", got[types.SectionOther])
	}
}
