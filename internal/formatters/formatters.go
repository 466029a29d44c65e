package formatters

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"cvrobo/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "AnalysisResult", &AnalysisTextFormatter{})
	registry.RegisterFormatter("markdown", "AnalysisResult", &AnalysisMarkdownFormatter{})
	registry.RegisterFormatter("text", "ReviewOutput", &ReviewTextFormatter{})
	registry.RegisterFormatter("markdown", "ReviewOutput", &ReviewMarkdownFormatter{})
	registry.RegisterFormatter("text", "RoleProfileList", &RolesTextFormatter{})
	registry.RegisterFormatter("markdown", "RoleProfileList", &RolesMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.AnalysisResult:
		return "AnalysisResult"
	case types.ReviewOutput:
		return "ReviewOutput"
	case []types.RoleProfile:
		return "RoleProfileList"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// sortedSuggestionKinds returns suggestion section kinds in a stable order.
func sortedSuggestionKinds(suggestions map[types.SectionKind][]string) []types.SectionKind {
	kinds := make([]string, 0, len(suggestions))
	for kind := range suggestions {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)
	out := make([]types.SectionKind, len(kinds))
	for i, k := range kinds {
		out[i] = types.SectionKind(k)
	}
	return out
}

// AnalysisTextFormatter handles text formatting for analysis results
type AnalysisTextFormatter struct{}

func (atf *AnalysisTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AnalysisResult)
	if !ok {
		return "", fmt.Errorf("expected AnalysisResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== DOCUMENT CLASSIFICATION ===\n")
	output.WriteString(fmt.Sprintf("Type: %s\n\n", result.DocumentType))

	if result.ClassificationOnly {
		output.WriteString("The document was not classified as a resume, so no scoring was performed.\n")
		return output.String(), nil
	}

	output.WriteString("=== ATS SCORE ===\n")
	output.WriteString(fmt.Sprintf("Score: %d/100 (%s)\n", result.ATSScore, types.ScoreBand(result.ATSScore)))
	output.WriteString(fmt.Sprintf("Target: %s / %s\n\n", result.Profile.Category, result.Profile.Role))

	output.WriteString("=== COMPONENT SCORES ===\n")
	output.WriteString(fmt.Sprintf("Keyword Match: %d/100\n", result.SubScores.KeywordMatch))
	output.WriteString(fmt.Sprintf("Format:        %d/100\n", result.SubScores.Format))
	output.WriteString(fmt.Sprintf("Sections:      %d/100\n\n", result.SubScores.Section))

	output.WriteString("=== CONTACT ===\n")
	writeContactLines(&output, result.Contact, "%s: %s\n")
	output.WriteString("\n")

	if len(result.MissingSkills) > 0 {
		output.WriteString("=== MISSING SKILLS ===\n")
		for _, skill := range result.MissingSkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	if len(result.Suggestions) > 0 {
		output.WriteString("=== SUGGESTIONS ===\n")
		for _, kind := range sortedSuggestionKinds(result.Suggestions) {
			output.WriteString(fmt.Sprintf("%s:\n", strings.ToUpper(string(kind))))
			for _, suggestion := range result.Suggestions[kind] {
				output.WriteString(fmt.Sprintf("- %s\n", suggestion))
			}
			output.WriteString("\n")
		}
	}

	return output.String(), nil
}

func (atf *AnalysisTextFormatter) SupportedType() string {
	return "AnalysisResult"
}

func writeContactLines(output *strings.Builder, contact types.ContactInfo, format string) {
	fields := []struct {
		label string
		value string
	}{
		{"Name", contact.Name},
		{"Email", contact.Email},
		{"Phone", contact.Phone},
		{"LinkedIn", contact.LinkedIn},
		{"GitHub", contact.GitHub},
		{"Portfolio", contact.Portfolio},
	}
	found := false
	for _, f := range fields {
		if f.value != "" {
			output.WriteString(fmt.Sprintf(format, f.label, f.value))
			found = true
		}
	}
	if !found {
		output.WriteString("No contact information detected.\n")
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// AnalysisMarkdownFormatter handles markdown formatting for analysis results
type AnalysisMarkdownFormatter struct{}

func (amf *AnalysisMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AnalysisResult)
	if !ok {
		return "", fmt.Errorf("expected AnalysisResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Resume Analysis\n\n")
	output.WriteString(fmt.Sprintf("**Document Type:** %s\n\n", result.DocumentType))

	if result.ClassificationOnly {
		output.WriteString("The document was not classified as a resume, so no scoring was performed.\n")
		return output.String(), nil
	}

	output.WriteString(fmt.Sprintf("**ATS Score:** %d/100 (%s)\n\n", result.ATSScore, types.ScoreBand(result.ATSScore)))
	output.WriteString(fmt.Sprintf("**Target Role:** %s / %s\n\n", result.Profile.Category, result.Profile.Role))

	output.WriteString("## Component Scores\n\n")
	output.WriteString("| Component | Score |\n")
	output.WriteString("|-----------|-------|\n")
	output.WriteString(fmt.Sprintf("| Keyword Match | %d/100 |\n", result.SubScores.KeywordMatch))
	output.WriteString(fmt.Sprintf("| Format | %d/100 |\n", result.SubScores.Format))
	output.WriteString(fmt.Sprintf("| Sections | %d/100 |\n\n", result.SubScores.Section))

	output.WriteString("## Contact\n\n")
	writeContactLines(&output, result.Contact, "- **%s:** %s\n")
	output.WriteString("\n")

	if len(result.MissingSkills) > 0 {
		output.WriteString("## Missing Skills\n\n")
		for _, skill := range result.MissingSkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	if len(result.Suggestions) > 0 {
		output.WriteString("## Suggestions\n\n")
		for _, kind := range sortedSuggestionKinds(result.Suggestions) {
			output.WriteString(fmt.Sprintf("### %s\n\n", titleCase(string(kind))))
			for _, suggestion := range result.Suggestions[kind] {
				output.WriteString(fmt.Sprintf("- %s\n", suggestion))
			}
			output.WriteString("\n")
		}
	}

	return output.String(), nil
}

func (amf *AnalysisMarkdownFormatter) SupportedType() string {
	return "AnalysisResult"
}

// ReviewTextFormatter handles text formatting for AI review results
type ReviewTextFormatter struct{}

func (rtf *ReviewTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ReviewOutput)
	if !ok {
		return "", fmt.Errorf("expected ReviewOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== RESUME REVIEW ===\n\n")
	output.WriteString("Summary:\n")
	output.WriteString(result.Summary)
	output.WriteString("\n\n")

	if len(result.Strengths) > 0 {
		output.WriteString("Strengths:\n")
		for _, item := range result.Strengths {
			output.WriteString(fmt.Sprintf("- %s\n", item))
		}
		output.WriteString("\n")
	}

	if len(result.Weaknesses) > 0 {
		output.WriteString("Weaknesses:\n")
		for _, item := range result.Weaknesses {
			output.WriteString(fmt.Sprintf("- %s\n", item))
		}
		output.WriteString("\n")
	}

	if len(result.Recommendations) > 0 {
		output.WriteString("Recommendations:\n")
		for i, item := range result.Recommendations {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, item))
		}
	}

	return output.String(), nil
}

func (rtf *ReviewTextFormatter) SupportedType() string {
	return "ReviewOutput"
}

// ReviewMarkdownFormatter handles markdown formatting for AI review results
type ReviewMarkdownFormatter struct{}

func (rmf *ReviewMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ReviewOutput)
	if !ok {
		return "", fmt.Errorf("expected ReviewOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Resume Review\n\n")
	output.WriteString("## Summary\n\n")
	output.WriteString(result.Summary)
	output.WriteString("\n\n")

	if len(result.Strengths) > 0 {
		output.WriteString("## Strengths\n\n")
		for _, item := range result.Strengths {
			output.WriteString(fmt.Sprintf("- %s\n", item))
		}
		output.WriteString("\n")
	}

	if len(result.Weaknesses) > 0 {
		output.WriteString("## Weaknesses\n\n")
		for _, item := range result.Weaknesses {
			output.WriteString(fmt.Sprintf("- %s\n", item))
		}
		output.WriteString("\n")
	}

	if len(result.Recommendations) > 0 {
		output.WriteString("## Recommendations\n\n")
		for i, item := range result.Recommendations {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, item))
		}
	}

	return output.String(), nil
}

func (rmf *ReviewMarkdownFormatter) SupportedType() string {
	return "ReviewOutput"
}

// RolesTextFormatter handles text formatting for role catalog listings
type RolesTextFormatter struct{}

func (rlf *RolesTextFormatter) Format(data any) (string, error) {
	profiles, ok := data.([]types.RoleProfile)
	if !ok {
		return "", fmt.Errorf("expected []RoleProfile, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== AVAILABLE ROLES ===\n\n")
	lastCategory := ""
	for _, profile := range profiles {
		if profile.Category != lastCategory {
			if lastCategory != "" {
				output.WriteString("\n")
			}
			output.WriteString(fmt.Sprintf("%s:\n", profile.Category))
			lastCategory = profile.Category
		}
		output.WriteString(fmt.Sprintf("  %s\n", profile.Role))
		if profile.Description != "" {
			output.WriteString(fmt.Sprintf("    %s\n", profile.Description))
		}
		output.WriteString(fmt.Sprintf("    Required skills: %s\n", strings.Join(profile.RequiredSkills, ", ")))
	}

	return output.String(), nil
}

func (rlf *RolesTextFormatter) SupportedType() string {
	return "RoleProfileList"
}

// RolesMarkdownFormatter handles markdown formatting for role catalog listings
type RolesMarkdownFormatter struct{}

func (rmf *RolesMarkdownFormatter) Format(data any) (string, error) {
	profiles, ok := data.([]types.RoleProfile)
	if !ok {
		return "", fmt.Errorf("expected []RoleProfile, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Available Roles\n\n")
	lastCategory := ""
	for _, profile := range profiles {
		if profile.Category != lastCategory {
			output.WriteString(fmt.Sprintf("## %s\n\n", profile.Category))
			lastCategory = profile.Category
		}
		output.WriteString(fmt.Sprintf("### %s\n\n", profile.Role))
		if profile.Description != "" {
			output.WriteString(profile.Description)
			output.WriteString("\n\n")
		}
		output.WriteString(fmt.Sprintf("**Required skills:** %s\n\n", strings.Join(profile.RequiredSkills, ", ")))
	}

	return output.String(), nil
}

func (rmf *RolesMarkdownFormatter) SupportedType() string {
	return "RoleProfileList"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
