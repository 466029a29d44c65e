package cli

import (
	"context"
	"fmt"

	"cvrobo/internal/ai"
	"cvrobo/internal/common"
	"cvrobo/internal/types"

	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review [resume-file]",
	Short: "Get an AI-backed review of a resume",
	Long: `Request a free-form AI review of a resume. The review is commentary
on top of the deterministic analysis: a summary, strengths, weaknesses, and
concrete recommendations. Requires an API key for the configured AI provider.

The resume file should be in plain text format. Use --target to describe the
role the resume is aimed at, or --category and --role to reference a catalog
role.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if reviewConfig.OutputFormat == "" {
			reviewConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(reviewConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runReview,
}

var reviewConfig common.CommandConfig

var (
	reviewTarget   string
	reviewCategory string
	reviewRole     string
)

func init() {
	reviewCmd.Flags().StringVarP(&reviewConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	reviewCmd.Flags().StringVar(&reviewConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	reviewCmd.Flags().StringVarP(&reviewTarget, "target", "t", "", "Free-form description of the target role")
	reviewCmd.Flags().StringVarP(&reviewCategory, "category", "c", "", "Target role category (see 'cvrobo roles')")
	reviewCmd.Flags().StringVarP(&reviewRole, "role", "r", "", "Target role within the category")

	// Add completion for format flag
	_ = reviewCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runReview(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	// Create AI service for the review operation
	aiService, err := ai.NewService(&cfg.AI, logger)
	if err != nil {
		return fmt.Errorf("failed to create AI service: %w", err)
	}

	createInput := func(contents []string) (types.ReviewInput, error) {
		if len(contents) != 1 {
			return types.ReviewInput{}, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return types.ReviewInput{
			Resume:     contents[0],
			Category:   reviewCategory,
			Role:       reviewRole,
			RoleTarget: reviewTarget,
		}, nil
	}

	logDetails := func(input types.ReviewInput, cfg common.CommandConfig) {
		logger.Info("Starting resume review",
			"resume_chars", len(input.Resume),
			"target", input.RoleTarget,
			"output_format", cfg.OutputFormat)
	}

	// Create a wrapper function that uses our specific AI service
	reviewOperation := func(ctx context.Context, input types.ReviewInput) (types.ReviewOutput, *ai.TokenUsage, error) {
		return aiService.Provider.ReviewResume(ctx, input)
	}

	err = common.RunAICommand(
		cmd.Context(),
		logger,
		reviewConfig,
		args,
		createInput,
		reviewOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to review resume: %w", err)
	}
	logger.Info("Resume review completed successfully")
	return nil
}
