package analyzer

import (
	"strings"
	"testing"

	"cvrobo/internal/types"
)

func TestClassify(t *testing.T) {
	engine := NewDefault()

	tests := []struct {
		name string
		text string
		want types.DocumentType
	}{
		{
			name: "empty text",
			text: "",
			want: types.DocumentTypeOther,
		},
		{
			name: "whitespace only",
			text: "   \n\t\n  ",
			want: types.DocumentTypeOther,
		},
		{
			name: "resume with section headings",
			text: sampleResume,
			want: types.DocumentTypeResume,
		},
		{
			name: "cover letter with salutations",
			text: sampleCoverLetter,
			want: types.DocumentTypeCoverLetter,
		},
		{
			name: "short text without headings",
			text: "Shopping list: milk, eggs, bread.",
			want: types.DocumentTypeOther,
		},
		{
			name: "long prose without headings leans resume",
			text: strings.Repeat("Shipped production systems across several teams and roles. ", 5),
			want: types.DocumentTypeResume,
		},
		{
			name: "salutations outweigh a single heading",
			text: "Dear Hiring Manager,\n\nSkills\nI am sincerely interested in this role.\n\nBest regards,\nJane",
			want: types.DocumentTypeCoverLetter,
		},
		{
			name: "headings outweigh a stray salutation",
			text: "Summary\nEngineer.\n\nExperience\nActed sincerely in all dealings.\n\nEducation\nB.S.\n\nSkills\nGo",
			want: types.DocumentTypeResume,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := engine.Classify(tt.text); got != tt.want {
				t.Errorf("Classify() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClassifyTieGoesToResume(t *testing.T) {
	// Two headings and two letter signals: equal counts must classify as
	// resume, never as cover letter.
	text := "Experience\nWorked sincerely on many projects.\n\nEducation\nDear old State University.\n"
	engine := NewDefault()

	if got := engine.Classify(text); got != types.DocumentTypeResume {
		t.Errorf("tie must classify as resume, got %s", got)
	}
}

func TestClassifyRespectsConfiguredThresholds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Classifier.MinHeadings = 5
	cfg.Classifier.MinLength = 10
	engine, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// Four headings now fall short of the floor, but the text is long
	// enough to pass the length check.
	if got := engine.Classify(sampleResume); got != types.DocumentTypeResume {
		t.Errorf("expected resume via length floor, got %s", got)
	}
}
