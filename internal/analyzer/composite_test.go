package analyzer

import (
	"testing"

	"cvrobo/internal/types"
)

func TestComposite(t *testing.T) {
	engine := NewDefault()

	tests := []struct {
		name string
		sub  types.SubScores
		want int
	}{
		{
			name: "all zero",
			sub:  types.SubScores{},
			want: 0,
		},
		{
			name: "all perfect",
			sub:  types.SubScores{KeywordMatch: 100, Format: 100, Section: 100},
			want: 100,
		},
		{
			name: "default weights applied",
			sub:  types.SubScores{KeywordMatch: 67, Format: 75, Section: 100},
			want: 76, // 33.5 + 22.5 + 20.0
		},
		{
			name: "half rounds up",
			sub:  types.SubScores{KeywordMatch: 1, Format: 0, Section: 0},
			want: 1, // 0.5 rounds to 1
		},
		{
			name: "below half rounds down",
			sub:  types.SubScores{KeywordMatch: 0, Format: 1, Section: 0},
			want: 0, // 0.3 rounds to 0
		},
		{
			name: "keyword dominates",
			sub:  types.SubScores{KeywordMatch: 100, Format: 0, Section: 0},
			want: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := engine.Composite(tt.sub); got != tt.want {
				t.Errorf("Composite(%+v) = %d, want %d", tt.sub, got, tt.want)
			}
		})
	}
}

func TestCompositeHonorsConfiguredWeights(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Composite = CompositeWeights{Keyword: 1.0, Format: 0, Section: 0}
	engine, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if got := engine.Composite(types.SubScores{KeywordMatch: 42, Format: 100, Section: 100}); got != 42 {
		t.Errorf("expected keyword-only weighting to yield 42, got %d", got)
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{66.4, 66},
		{66.5, 67},
		{66.6, 67},
		{0.0, 0},
		{99.5, 100},
	}

	for _, tt := range tests {
		if got := roundHalfUp(tt.in); got != tt.want {
			t.Errorf("roundHalfUp(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-5, 0},
		{0, 0},
		{55, 55},
		{100, 100},
		{140, 100},
	}

	for _, tt := range tests {
		if got := clampScore(tt.in); got != tt.want {
			t.Errorf("clampScore(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
