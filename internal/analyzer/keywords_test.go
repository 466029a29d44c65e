package analyzer

import (
	"reflect"
	"testing"

	"cvrobo/internal/errors"
	"cvrobo/internal/types"
)

func skillsResume(skills string) types.ParsedResume {
	return types.ParsedResume{Sections: []types.Section{
		{Kind: types.SectionSkills, Heading: "Skills", RawText: skills},
	}}
}

func TestMatch(t *testing.T) {
	engine := NewDefault()

	tests := []struct {
		name        string
		parsed      types.ParsedResume
		required    []string
		wantScore   int
		wantMissing []string
	}{
		{
			name:        "two of three required skills present",
			parsed:      skillsResume("Python, SQL"),
			required:    []string{"Python", "SQL", "AWS"},
			wantScore:   67,
			wantMissing: []string{"AWS"},
		},
		{
			name:        "all skills present",
			parsed:      skillsResume("Python, SQL, AWS"),
			required:    []string{"Python", "SQL", "AWS"},
			wantScore:   100,
			wantMissing: []string{},
		},
		{
			name:        "no skills present",
			parsed:      skillsResume("Photoshop, Illustrator"),
			required:    []string{"Python", "SQL"},
			wantScore:   0,
			wantMissing: []string{"Python", "SQL"},
		},
		{
			name:        "empty required list is vacuously matched",
			parsed:      skillsResume("Python"),
			required:    []string{},
			wantScore:   100,
			wantMissing: []string{},
		},
		{
			name:        "matching is case insensitive",
			parsed:      skillsResume("python, sql"),
			required:    []string{"Python", "SQL"},
			wantScore:   100,
			wantMissing: []string{},
		},
		{
			name:        "punctuated skill tokens survive normalization",
			parsed:      skillsResume("C++, C#, Node.js"),
			required:    []string{"C++", "C#", "Node.js"},
			wantScore:   100,
			wantMissing: []string{},
		},
		{
			name:        "duplicate required skills count once",
			parsed:      skillsResume("Python"),
			required:    []string{"Python", "python", "SQL"},
			wantScore:   50,
			wantMissing: []string{"SQL"},
		},
		{
			name:        "missing preserves declaration order",
			parsed:      skillsResume("Go"),
			required:    []string{"Terraform", "Go", "Ansible", "Packer"},
			wantScore:   25,
			wantMissing: []string{"Terraform", "Ansible", "Packer"},
		},
		{
			name: "skill found inline in experience text",
			parsed: types.ParsedResume{Sections: []types.Section{
				{Kind: types.SectionExperience, RawText: "Built services in Go deployed with Kubernetes."},
			}},
			required:    []string{"Kubernetes"},
			wantScore:   100,
			wantMissing: []string{},
		},
		{
			name: "multi-word skill matched as a phrase",
			parsed: types.ParsedResume{Sections: []types.Section{
				{Kind: types.SectionSummary, RawText: "Heavy user of machine learning in production."},
			}},
			required:    []string{"machine learning"},
			wantScore:   100,
			wantMissing: []string{},
		},
		{
			name:        "java does not match inside javascript",
			parsed:      skillsResume("JavaScript, TypeScript"),
			required:    []string{"Java"},
			wantScore:   0,
			wantMissing: []string{"Java"},
		},
		{
			name:        "bulleted skills list",
			parsed:      skillsResume("- Python\n- SQL\n- Docker"),
			required:    []string{"Python", "Docker"},
			wantScore:   100,
			wantMissing: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := types.RoleProfile{
				Category:       "engineering",
				Role:           "backend",
				RequiredSkills: tt.required,
			}

			score, missing, err := engine.Match(tt.parsed, profile)
			if err != nil {
				t.Fatalf("Match failed: %v", err)
			}
			if score != tt.wantScore {
				t.Errorf("score = %d, want %d", score, tt.wantScore)
			}
			if !reflect.DeepEqual(missing, tt.wantMissing) {
				t.Errorf("missing = %v, want %v", missing, tt.wantMissing)
			}
		})
	}
}

func TestMatchNilRequiredSkills(t *testing.T) {
	engine := NewDefault()

	_, _, err := engine.Match(skillsResume("Python"), types.RoleProfile{})
	if err == nil {
		t.Fatal("expected configuration error")
	}
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeInvalidRoleProfile {
		t.Errorf("expected %s, got %v", errors.ErrCodeInvalidRoleProfile, err)
	}
}

func TestMatchEmptyRequiredSkillToken(t *testing.T) {
	engine := NewDefault()

	profile := types.RoleProfile{RequiredSkills: []string{"Python", "   "}}
	_, _, err := engine.Match(skillsResume("Python"), profile)
	if err == nil {
		t.Fatal("expected configuration error for blank required skill")
	}
}

func TestMatchedAndMissingPartitionRequired(t *testing.T) {
	engine := NewDefault()
	required := []string{"Python", "SQL", "AWS", "Docker", "Kafka"}
	profile := types.RoleProfile{RequiredSkills: required}

	score, missing, err := engine.Match(skillsResume("Python, Docker"), profile)
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}

	// Every required skill is either matched or missing, never both.
	matched := len(required) - len(missing)
	if got := roundHalfUp(100 * float64(matched) / float64(len(required))); got != score {
		t.Errorf("score %d inconsistent with %d matched of %d", score, matched, len(required))
	}
	for _, m := range missing {
		if normalizeSkill(m) == "python" || normalizeSkill(m) == "docker" {
			t.Errorf("skill %q reported missing but present", m)
		}
	}
}

func TestMatchScoreMonotonicInSkills(t *testing.T) {
	engine := NewDefault()
	profile := types.RoleProfile{RequiredSkills: []string{"Python", "SQL", "AWS", "Docker"}}

	prev := -1
	for _, skills := range []string{"", "Python", "Python, SQL", "Python, SQL, AWS", "Python, SQL, AWS, Docker"} {
		score, _, err := engine.Match(skillsResume(skills), profile)
		if err != nil {
			t.Fatalf("Match failed: %v", err)
		}
		if score < prev {
			t.Errorf("adding a skill lowered the score: %d -> %d at %q", prev, score, skills)
		}
		prev = score
	}
}

func TestNormalizeSkill(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Python  ", "python"},
		{"C++", "c++"},
		{"C#", "c#"},
		{"Node.js", "node.js"},
		{"Machine   Learning", "machine learning"},
		{"REST/GraphQL", "rest graphql"},
		{"...", ""},
	}

	for _, tt := range tests {
		if got := normalizeSkill(tt.in); got != tt.want {
			t.Errorf("normalizeSkill(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtractSkillsFromSections(t *testing.T) {
	parsed := types.ParsedResume{Sections: []types.Section{
		{Kind: types.SectionSkills, RawText: "Python, SQL; Docker | Kubernetes\n• Terraform"},
		{Kind: types.SectionExperience, RawText: "Shipped Go services"},
	}}

	skills := ExtractSkills(parsed)
	for _, want := range []string{"python", "sql", "docker", "kubernetes", "terraform", "go"} {
		if !skills[want] {
			t.Errorf("expected skill %q in extracted set %v", want, skills)
		}
	}
}
