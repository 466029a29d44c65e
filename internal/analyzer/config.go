package analyzer

import (
	"math"

	"cvrobo/internal/errors"
	"cvrobo/internal/types"
)

// CompositeWeights are the fixed weights the composite scorer applies to the
// three sub-scores. They must sum to 1.0.
type CompositeWeights struct {
	Keyword float64 `json:"keyword" mapstructure:"keyword"`
	Format  float64 `json:"format" mapstructure:"format"`
	Section float64 `json:"section" mapstructure:"section"`
}

// SectionWeights are the per-section completeness weights. They must sum to
// 100. Projects are deliberately absent: a resume without a projects section
// is not penalized.
type SectionWeights struct {
	Summary    int `json:"summary" mapstructure:"summary"`
	Experience int `json:"experience" mapstructure:"experience"`
	Education  int `json:"education" mapstructure:"education"`
	Skills     int `json:"skills" mapstructure:"skills"`
}

// ClassifierConfig holds the thresholds the document classifier applies.
type ClassifierConfig struct {
	// MinHeadings is how many resume-indicative headings must appear for a
	// document to classify as a resume outright.
	MinHeadings int `json:"minHeadings" mapstructure:"min_headings"`
	// MinLength is the minimum text length (in characters) below which a
	// heading-free document classifies as "other".
	MinLength int `json:"minLength" mapstructure:"min_length"`
}

// FormatConfig holds the knobs of the format and completeness scorer.
type FormatConfig struct {
	// MinSectionChars is the minimum raw-text length for a section to count
	// as present. Guards against a stray heading with no content.
	MinSectionChars int `json:"minSectionChars" mapstructure:"min_section_chars"`
	// MinWords and MaxWords bound the document length band that earns the
	// length credit.
	MinWords int `json:"minWords" mapstructure:"min_words"`
	MaxWords int `json:"maxWords" mapstructure:"max_words"`
	// MinBullets is the bullet count below which the experience section is
	// flagged as under-bulleted.
	MinBullets int `json:"minBullets" mapstructure:"min_bullets"`
}

// Config collects every tunable of the analysis engine. All values come from
// configuration so the weights can be tuned without touching any stage.
type Config struct {
	Composite  CompositeWeights `json:"composite" mapstructure:"composite"`
	Sections   SectionWeights   `json:"sections" mapstructure:"sections"`
	Classifier ClassifierConfig `json:"classifier" mapstructure:"classifier"`
	Format     FormatConfig     `json:"format" mapstructure:"format"`
}

// DefaultConfig returns the tuning the engine ships with.
func DefaultConfig() Config {
	return Config{
		Composite: CompositeWeights{
			Keyword: 0.5,
			Format:  0.3,
			Section: 0.2,
		},
		Sections: SectionWeights{
			Summary:    20,
			Experience: 35,
			Education:  25,
			Skills:     20,
		},
		Classifier: ClassifierConfig{
			MinHeadings: 2,
			MinLength:   150,
		},
		Format: FormatConfig{
			MinSectionChars: 30,
			MinWords:        120,
			MaxWords:        1200,
			MinBullets:      3,
		},
	}
}

// Validate checks the configured weights and thresholds.
func (c Config) Validate() error {
	sum := c.Composite.Keyword + c.Composite.Format + c.Composite.Section
	if math.Abs(sum-1.0) > 1e-9 {
		return errors.NewConfigError(errors.ErrCodeInvalidConfig,
			"composite weights must sum to 1.0", nil).
			WithContext("sum", sum)
	}
	if c.Composite.Keyword < 0 || c.Composite.Format < 0 || c.Composite.Section < 0 {
		return errors.NewConfigError(errors.ErrCodeInvalidConfig,
			"composite weights must be non-negative", nil)
	}

	sectionSum := c.Sections.Summary + c.Sections.Experience + c.Sections.Education + c.Sections.Skills
	if sectionSum != 100 {
		return errors.NewConfigError(errors.ErrCodeInvalidConfig,
			"section weights must sum to 100", nil).
			WithContext("sum", sectionSum)
	}

	if c.Classifier.MinHeadings < 1 {
		return errors.NewConfigError(errors.ErrCodeInvalidConfig,
			"classifier min_headings must be at least 1", nil)
	}
	if c.Format.MinWords < 0 || c.Format.MaxWords <= c.Format.MinWords {
		return errors.NewConfigError(errors.ErrCodeInvalidConfig,
			"format word bounds must satisfy 0 <= min_words < max_words", nil)
	}
	if c.Format.MinSectionChars < 0 {
		return errors.NewConfigError(errors.ErrCodeInvalidConfig,
			"format min_section_chars must be non-negative", nil)
	}

	return nil
}

// weightFor returns the completeness weight for a canonical section kind.
func (w SectionWeights) weightFor(kind types.SectionKind) int {
	switch kind {
	case types.SectionSummary:
		return w.Summary
	case types.SectionExperience:
		return w.Experience
	case types.SectionEducation:
		return w.Education
	case types.SectionSkills:
		return w.Skills
	default:
		return 0
	}
}
