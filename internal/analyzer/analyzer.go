// Package analyzer implements the resume analysis and scoring pipeline:
// classification, contact extraction, section segmentation, keyword
// matching, format and completeness scoring, composite ATS scoring, and
// suggestion generation. Every stage is a pure function of its inputs, so
// analyses are deterministic and safe to run concurrently without
// coordination.
package analyzer

import (
	"cvrobo/internal/errors"
	"cvrobo/internal/types"
)

// Engine runs the analysis pipeline with a fixed configuration. It holds no
// mutable state; one Engine may serve any number of concurrent calls.
type Engine struct {
	cfg Config
}

// New validates the configuration and returns a ready engine.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// NewDefault returns an engine with the default tuning.
func NewDefault() *Engine {
	return &Engine{cfg: DefaultConfig()}
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Analyze runs the pipeline over raw text against a role profile. Data
// flows strictly forward; no stage mutates another's output. When the
// classifier decides the text is not a resume, segmentation and scoring are
// skipped and a classification-only result is returned. Empty or
// whitespace-only text is valid input and degrades to that path rather
// than failing. The one fatal condition is a malformed role profile, which
// is surfaced as a configuration error.
func (e *Engine) Analyze(text string, profile types.RoleProfile) (types.AnalysisResult, error) {
	if err := ValidateProfile(profile); err != nil {
		return types.AnalysisResult{}, err
	}

	result := types.AnalysisResult{
		Profile: types.RoleProfileRef{
			Category: profile.Category,
			Role:     profile.Role,
		},
		MissingSkills: []string{},
		Suggestions:   map[types.SectionKind][]string{},
	}

	result.DocumentType = e.Classify(text)
	if result.DocumentType != types.DocumentTypeResume {
		result.ClassificationOnly = true
		return result, nil
	}

	result.Contact = ExtractContacts(text)
	result.Resume = e.Segment(text)

	keyword, missing, err := e.Match(result.Resume, profile)
	if err != nil {
		return types.AnalysisResult{}, err
	}
	result.MissingSkills = missing

	format, section := e.ScoreFormat(result.Resume, result.Contact)
	result.SubScores = types.SubScores{
		KeywordMatch: keyword,
		Format:       format,
		Section:      section,
	}
	result.ATSScore = e.Composite(result.SubScores)
	result.Suggestions = e.Suggest(result.Resume, result.Contact, result.SubScores, missing)

	return result, nil
}

// ValidateProfile checks that a role profile is usable for scoring. A nil
// required-skills list means the profile was loaded from malformed
// configuration; it is rejected rather than silently treated as empty.
func ValidateProfile(profile types.RoleProfile) error {
	if profile.RequiredSkills == nil {
		return errors.NewConfigError(errors.ErrCodeInvalidRoleProfile,
			"role profile has no required skills list", nil).
			WithContext("category", profile.Category).
			WithContext("role", profile.Role)
	}
	return nil
}
