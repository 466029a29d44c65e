package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cvrobo/internal/types"
)

func TestBuiltInCatalogIsValid(t *testing.T) {
	catalog := BuiltIn()

	assert.NotEmpty(t, catalog.Categories())
	for _, category := range catalog.Categories() {
		for _, role := range catalog.Roles(category) {
			profile, err := catalog.Get(category, role)
			require.NoError(t, err)
			assert.Equal(t, category, profile.Category)
			assert.Equal(t, role, profile.Role)
			assert.NotEmpty(t, profile.RequiredSkills, "%s/%s must declare required skills", category, role)
			assert.NotEmpty(t, profile.Description)
		}
	}
}

func TestCatalogGet(t *testing.T) {
	catalog := BuiltIn()

	profile, err := catalog.Get("Software Development", "Backend Developer")
	require.NoError(t, err)
	assert.Contains(t, profile.RequiredSkills, "Python")

	_, err = catalog.Get("Software Development", "Wizard")
	assert.Error(t, err)

	_, err = catalog.Get("Alchemy", "Backend Developer")
	assert.Error(t, err)
}

func TestCatalogOrdering(t *testing.T) {
	catalog := BuiltIn()

	categories := catalog.Categories()
	assert.IsIncreasing(t, categories)

	for _, category := range categories {
		assert.IsIncreasing(t, catalog.Roles(category))
	}

	// Profiles lists every role exactly once, grouped by category.
	profiles := catalog.Profiles()
	total := 0
	for _, category := range categories {
		total += len(catalog.Roles(category))
	}
	assert.Len(t, profiles, total)
}

func TestNewCatalogValidation(t *testing.T) {
	tests := []struct {
		name     string
		profiles []types.RoleProfile
		errMsg   string
	}{
		{
			name: "missing category",
			profiles: []types.RoleProfile{
				{Role: "Backend Developer", RequiredSkills: []string{"Go"}},
			},
			errMsg: "category",
		},
		{
			name: "missing role name",
			profiles: []types.RoleProfile{
				{Category: "Software Development", RequiredSkills: []string{"Go"}},
			},
			errMsg: "role name",
		},
		{
			name: "no required skills",
			profiles: []types.RoleProfile{
				{Category: "Software Development", Role: "Backend Developer"},
			},
			errMsg: "required skills",
		},
		{
			name: "duplicate profile",
			profiles: []types.RoleProfile{
				{Category: "a", Role: "b", RequiredSkills: []string{"Go"}},
				{Category: "a", Role: "b", RequiredSkills: []string{"Rust"}},
			},
			errMsg: "duplicate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newCatalog(tt.profiles)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
