package cli

import (
	"fmt"

	"cvrobo/internal/common"
	"cvrobo/internal/roles"
	"cvrobo/internal/types"

	"github.com/spf13/cobra"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the available target roles",
	Long: `List the role profiles a resume can be scored against, grouped by
category. The built-in catalog can be replaced with a custom one via the
roles.file configuration setting.`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if rolesConfig.OutputFormat == "" {
			rolesConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(rolesConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runRoles,
}

var rolesConfig common.CommandConfig

var rolesCategory string

func init() {
	rolesCmd.Flags().StringVarP(&rolesConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	rolesCmd.Flags().StringVar(&rolesConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	rolesCmd.Flags().StringVarP(&rolesCategory, "category", "c", "", "Only list roles in this category")
}

func runRoles(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	catalog, err := roles.Load(cfg.Roles.File)
	if err != nil {
		return fmt.Errorf("failed to load role catalog: %w", err)
	}

	profiles := catalog.Profiles()
	if rolesCategory != "" {
		filtered := make([]types.RoleProfile, 0, len(profiles))
		for _, p := range profiles {
			if p.Category == rolesCategory {
				filtered = append(filtered, p)
			}
		}
		if len(filtered) == 0 {
			return fmt.Errorf("no roles found in category '%s'", rolesCategory)
		}
		profiles = filtered
	}

	return common.NewOutputHandler(logger).HandleOutput(profiles, rolesConfig)
}
