package roles

import (
	"os"

	"github.com/spf13/viper"

	"cvrobo/internal/errors"
	"cvrobo/internal/types"
)

// rolesFile is the on-disk shape of an external roles catalog.
type rolesFile struct {
	Roles []roleEntry `mapstructure:"roles"`
}

type roleEntry struct {
	Category       string   `mapstructure:"category"`
	Role           string   `mapstructure:"role"`
	Description    string   `mapstructure:"description"`
	RequiredSkills []string `mapstructure:"required_skills"`
}

// Load returns the catalog to use. With an empty path the built-in catalog
// is returned; otherwise the file fully replaces it. The file format is
// whatever viper can read, YAML in practice.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return BuiltIn(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a roles catalog from an external file. Validation errors
// are fatal: a catalog entry without required skills would otherwise default
// to an empty set and silently score every resume 100 on keywords.
func LoadFile(path string) (*Catalog, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.NewIOError(errors.ErrCodeFileNotFound,
			"roles file not found", err).
			WithContext("path", path)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			"failed to read roles file", err).
			WithContext("path", path)
	}

	var file rolesFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			"failed to parse roles file", err).
			WithContext("path", path)
	}
	if len(file.Roles) == 0 {
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			"roles file declares no roles", nil).
			WithContext("path", path)
	}

	profiles := make([]types.RoleProfile, 0, len(file.Roles))
	for _, entry := range file.Roles {
		profiles = append(profiles, types.RoleProfile{
			Category:       entry.Category,
			Role:           entry.Role,
			Description:    entry.Description,
			RequiredSkills: entry.RequiredSkills,
		})
	}

	return newCatalog(profiles)
}
