// Package roles holds the static catalog of target job-role profiles that
// resumes are scored against. A built-in catalog ships with the binary and
// can be replaced by an external roles file.
package roles

import (
	"sort"

	"cvrobo/internal/errors"
	"cvrobo/internal/types"
)

// Catalog is an immutable set of role profiles keyed by (category, role).
type Catalog struct {
	profiles map[string]map[string]types.RoleProfile
}

// Get looks up a profile by category and role name.
func (c *Catalog) Get(category, role string) (types.RoleProfile, error) {
	byRole, ok := c.profiles[category]
	if !ok {
		return types.RoleProfile{}, errors.NewValidationError(errors.ErrCodeUnknownRole,
			"unknown role category", nil).
			WithContext("category", category)
	}
	profile, ok := byRole[role]
	if !ok {
		return types.RoleProfile{}, errors.NewValidationError(errors.ErrCodeUnknownRole,
			"unknown role", nil).
			WithContext("category", category).
			WithContext("role", role)
	}
	return profile, nil
}

// Categories returns the category names in sorted order.
func (c *Catalog) Categories() []string {
	out := make([]string, 0, len(c.profiles))
	for category := range c.profiles {
		out = append(out, category)
	}
	sort.Strings(out)
	return out
}

// Roles returns the role names of a category in sorted order.
func (c *Catalog) Roles(category string) []string {
	byRole, ok := c.profiles[category]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(byRole))
	for role := range byRole {
		out = append(out, role)
	}
	sort.Strings(out)
	return out
}

// Profiles returns every profile ordered by category then role.
func (c *Catalog) Profiles() []types.RoleProfile {
	var out []types.RoleProfile
	for _, category := range c.Categories() {
		for _, role := range c.Roles(category) {
			out = append(out, c.profiles[category][role])
		}
	}
	return out
}

// newCatalog validates the profiles and builds the lookup maps. A profile
// with a missing or empty required-skills list is rejected here, at load
// time, so a malformed catalog never reaches the scoring path unnoticed.
func newCatalog(profiles []types.RoleProfile) (*Catalog, error) {
	byCategory := make(map[string]map[string]types.RoleProfile)
	for _, p := range profiles {
		if p.Category == "" || p.Role == "" {
			return nil, errors.NewConfigError(errors.ErrCodeInvalidRoleProfile,
				"role profile must have a category and a role name", nil)
		}
		if len(p.RequiredSkills) == 0 {
			return nil, errors.NewConfigError(errors.ErrCodeInvalidRoleProfile,
				"role profile must declare required skills", nil).
				WithContext("category", p.Category).
				WithContext("role", p.Role)
		}
		if byCategory[p.Category] == nil {
			byCategory[p.Category] = make(map[string]types.RoleProfile)
		}
		if _, exists := byCategory[p.Category][p.Role]; exists {
			return nil, errors.NewConfigError(errors.ErrCodeInvalidRoleProfile,
				"duplicate role profile", nil).
				WithContext("category", p.Category).
				WithContext("role", p.Role)
		}
		byCategory[p.Category][p.Role] = p
	}
	return &Catalog{profiles: byCategory}, nil
}

// BuiltIn returns the catalog compiled into the binary.
func BuiltIn() *Catalog {
	catalog, err := newCatalog(builtinProfiles)
	if err != nil {
		// The built-in list is validated by tests; reaching this means the
		// binary itself is broken.
		panic(err)
	}
	return catalog
}

var builtinProfiles = []types.RoleProfile{
	{
		Category:    "Software Development",
		Role:        "Frontend Developer",
		Description: "Builds user interfaces and client-side applications for the web.",
		RequiredSkills: []string{
			"JavaScript", "TypeScript", "React", "HTML", "CSS", "Git", "REST APIs",
		},
	},
	{
		Category:    "Software Development",
		Role:        "Backend Developer",
		Description: "Designs and implements server-side services, APIs, and data stores.",
		RequiredSkills: []string{
			"Python", "SQL", "REST APIs", "Docker", "Git", "PostgreSQL", "AWS",
		},
	},
	{
		Category:    "Software Development",
		Role:        "Full Stack Developer",
		Description: "Works across the client and server halves of web applications.",
		RequiredSkills: []string{
			"JavaScript", "Python", "React", "SQL", "REST APIs", "Docker", "Git",
		},
	},
	{
		Category:    "Software Development",
		Role:        "Mobile Developer",
		Description: "Builds native or cross-platform applications for iOS and Android.",
		RequiredSkills: []string{
			"Swift", "Kotlin", "React Native", "REST APIs", "Git", "Firebase",
		},
	},
	{
		Category:    "Data Science",
		Role:        "Data Scientist",
		Description: "Builds statistical and machine-learning models from data.",
		RequiredSkills: []string{
			"Python", "SQL", "Pandas", "Scikit-learn", "Statistics", "Machine Learning",
		},
	},
	{
		Category:    "Data Science",
		Role:        "Data Analyst",
		Description: "Turns raw data into reports, dashboards, and business insight.",
		RequiredSkills: []string{
			"SQL", "Excel", "Python", "Tableau", "Statistics", "Data Visualization",
		},
	},
	{
		Category:    "Data Science",
		Role:        "Machine Learning Engineer",
		Description: "Productionizes and operates machine-learning systems.",
		RequiredSkills: []string{
			"Python", "TensorFlow", "PyTorch", "Docker", "AWS", "SQL", "MLOps",
		},
	},
	{
		Category:    "DevOps & Cloud",
		Role:        "DevOps Engineer",
		Description: "Automates build, deployment, and operations of software systems.",
		RequiredSkills: []string{
			"Linux", "Docker", "Kubernetes", "Terraform", "CI/CD", "AWS", "Python",
		},
	},
	{
		Category:    "DevOps & Cloud",
		Role:        "Cloud Engineer",
		Description: "Designs and operates cloud infrastructure and platform services.",
		RequiredSkills: []string{
			"AWS", "Azure", "Terraform", "Networking", "Linux", "Python",
		},
	},
}
