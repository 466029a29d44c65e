package cli

import (
	"fmt"

	"cvrobo/internal/analyzer"
	"cvrobo/internal/common"
	"cvrobo/internal/extract"
	"cvrobo/internal/roles"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [resume-file]",
	Short: "Analyze a resume against a target role",
	Long: `Analyze a resume file against a target job role and produce an ATS
compatibility report. The file may be a PDF or a plain text document.

The analysis includes:
- Document classification (resume, cover letter, or other)
- Contact information extraction
- Section segmentation and completeness scoring
- Keyword matching against the role's required skills
- A composite ATS score with improvement suggestions`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if analyzeConfig.OutputFormat == "" {
			analyzeConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(analyzeConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runAnalyze,
}

var analyzeConfig common.CommandConfig

var (
	analyzeCategory string
	analyzeRole     string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	analyzeCmd.Flags().StringVarP(&analyzeCategory, "category", "c", "", "Target role category (see 'cvrobo roles')")
	analyzeCmd.Flags().StringVarP(&analyzeRole, "role", "r", "", "Target role within the category")
	_ = analyzeCmd.MarkFlagRequired("category")
	_ = analyzeCmd.MarkFlagRequired("role")

	// Add completion for format flag
	_ = analyzeCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
	_ = analyzeCmd.RegisterFlagCompletionFunc("category", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		catalog, err := roles.Load(cfg.Roles.File)
		if err != nil {
			return []string{}, cobra.ShellCompDirectiveError
		}
		return catalog.Categories(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = analyzeCmd.RegisterFlagCompletionFunc("role", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		catalog, err := roles.Load(cfg.Roles.File)
		if err != nil {
			return []string{}, cobra.ShellCompDirectiveError
		}
		return catalog.Roles(analyzeCategory), cobra.ShellCompDirectiveNoFileComp
	})
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	catalog, err := roles.Load(cfg.Roles.File)
	if err != nil {
		return fmt.Errorf("failed to load role catalog: %w", err)
	}

	profile, err := catalog.Get(analyzeCategory, analyzeRole)
	if err != nil {
		return err
	}

	engine, err := analyzer.New(cfg.Engine)
	if err != nil {
		return fmt.Errorf("invalid engine configuration: %w", err)
	}

	doc, err := extract.NewService(logger).ExtractFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to extract text from %s: %w", args[0], err)
	}

	logger.Info("Starting resume analysis",
		"file", args[0],
		"source_format", doc.SourceFormat,
		"category", profile.Category,
		"role", profile.Role,
		"output_format", analyzeConfig.OutputFormat)

	result, err := engine.Analyze(doc.Text, profile)
	if err != nil {
		return fmt.Errorf("failed to analyze resume: %w", err)
	}

	if result.ClassificationOnly {
		logger.Warn("Document was not classified as a resume",
			"document_type", result.DocumentType)
	} else {
		logger.Info("Resume analysis completed successfully",
			"ats_score", result.ATSScore,
			"keyword_match", result.SubScores.KeywordMatch,
			"missing_skills", len(result.MissingSkills))
	}

	return common.NewOutputHandler(logger).HandleOutput(result, analyzeConfig)
}
