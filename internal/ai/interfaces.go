package ai

import (
	"context"

	"cvrobo/internal/types"
)

// AIProvider is the interface the review enrichment path is built on.
// Output is free-form model commentary and is not deterministic; nothing in
// the scoring pipeline depends on it.
type AIProvider interface {
	ReviewResume(ctx context.Context, input types.ReviewInput) (types.ReviewOutput, *TokenUsage, error)
	GetModelInfo(ctx context.Context) *ModelInfo
	Close() error
}
