package analyzer

import (
	"fmt"
	"strings"

	"cvrobo/internal/types"
)

// suggestionContext is the read-only view of analysis state that suggestion
// rules evaluate against.
type suggestionContext struct {
	parsed  types.ParsedResume
	contact types.ContactInfo
	sub     types.SubScores
	missing []string
	engine  *Engine
}

// suggestionRule pairs a condition with the text it emits. Rules are
// independent: every rule whose condition holds fires, and each targets a
// disjoint gap, so rules never contradict each other.
type suggestionRule struct {
	section types.SectionKind
	applies func(ctx suggestionContext) bool
	text    func(ctx suggestionContext) string
}

func staticText(s string) func(suggestionContext) string {
	return func(suggestionContext) string { return s }
}

var suggestionRules = []suggestionRule{
	{
		section: types.SectionSummary,
		applies: func(ctx suggestionContext) bool {
			return !ctx.engine.sectionPresent(ctx.parsed, types.SectionSummary)
		},
		text: staticText("Add a professional summary at the top that states your role, years of experience, and key strengths."),
	},
	{
		section: types.SectionSummary,
		applies: func(ctx suggestionContext) bool { return ctx.contact.Email == "" },
		text:    staticText("Include an email address in your contact details."),
	},
	{
		section: types.SectionSummary,
		applies: func(ctx suggestionContext) bool { return ctx.contact.Phone == "" },
		text:    staticText("Include a phone number in your contact details."),
	},
	{
		section: types.SectionSummary,
		applies: func(ctx suggestionContext) bool { return ctx.contact.LinkedIn == "" },
		text:    staticText("Add a LinkedIn profile URL to your contact details."),
	},
	{
		section: types.SectionExperience,
		applies: func(ctx suggestionContext) bool {
			return !ctx.engine.sectionPresent(ctx.parsed, types.SectionExperience)
		},
		text: staticText("Add a work experience section listing your roles in reverse chronological order."),
	},
	{
		section: types.SectionExperience,
		applies: func(ctx suggestionContext) bool {
			return ctx.engine.sectionPresent(ctx.parsed, types.SectionExperience) &&
				countBullets(ctx.parsed) < ctx.engine.cfg.Format.MinBullets
		},
		text: staticText("Use bullet points to describe your responsibilities and achievements in each role."),
	},
	{
		section: types.SectionExperience,
		applies: func(ctx suggestionContext) bool {
			return ctx.engine.sectionPresent(ctx.parsed, types.SectionExperience) &&
				!hasQuantifiableMetrics(ctx.parsed)
		},
		text: staticText("Quantify your achievements with numbers, percentages, or dollar amounts."),
	},
	{
		section: types.SectionEducation,
		applies: func(ctx suggestionContext) bool {
			return !ctx.engine.sectionPresent(ctx.parsed, types.SectionEducation)
		},
		text: staticText("Add an education section with your degree, institution, and graduation year."),
	},
	{
		section: types.SectionSkills,
		applies: func(ctx suggestionContext) bool {
			return !ctx.engine.sectionPresent(ctx.parsed, types.SectionSkills)
		},
		text: staticText("Add a dedicated skills section listing your technical and professional skills."),
	},
	{
		section: types.SectionSkills,
		applies: func(ctx suggestionContext) bool { return len(ctx.missing) > 0 },
		text: func(ctx suggestionContext) string {
			return fmt.Sprintf("Add these skills required for the role: %s.", strings.Join(ctx.missing, ", "))
		},
	},
	{
		section: types.SectionProjects,
		applies: func(ctx suggestionContext) bool {
			return !ctx.engine.sectionPresent(ctx.parsed, types.SectionProjects)
		},
		text: staticText("Consider adding a projects section to showcase hands-on work."),
	},
	{
		section: types.SectionOther,
		applies: func(ctx suggestionContext) bool {
			return wordCount(ctx.parsed) < ctx.engine.cfg.Format.MinWords
		},
		text: staticText("Your resume is short; expand your experience descriptions to one full page."),
	},
	{
		section: types.SectionOther,
		applies: func(ctx suggestionContext) bool {
			return wordCount(ctx.parsed) > ctx.engine.cfg.Format.MaxWords
		},
		text: staticText("Your resume is long; trim it to the most relevant one to two pages."),
	},
	{
		section: types.SectionOther,
		applies: func(ctx suggestionContext) bool {
			return dateConsistencyCredit(ctx.parsed) == dateMixedCredit
		},
		text: staticText("Use one consistent date format across all experience entries."),
	},
}

// Suggest evaluates the rule table and groups the emitted recommendations
// by section kind. A section with no entry in the returned map satisfied
// every rule; that absence is the good outcome, not an error.
func (e *Engine) Suggest(parsed types.ParsedResume, contact types.ContactInfo, sub types.SubScores, missing []string) map[types.SectionKind][]string {
	ctx := suggestionContext{
		parsed:  parsed,
		contact: contact,
		sub:     sub,
		missing: missing,
		engine:  e,
	}

	out := make(map[types.SectionKind][]string)
	for _, rule := range suggestionRules {
		if rule.applies(ctx) {
			out[rule.section] = append(out[rule.section], rule.text(ctx))
		}
	}
	return out
}
