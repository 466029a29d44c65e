package roles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRolesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadEmptyPathReturnsBuiltIn(t *testing.T) {
	catalog, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, BuiltIn().Categories(), catalog.Categories())
}

func TestLoadFile(t *testing.T) {
	path := writeRolesFile(t, `
roles:
  - category: Engineering
    role: Platform Engineer
    description: Runs the internal developer platform.
    required_skills:
      - Go
      - Kubernetes
      - Terraform
  - category: Engineering
    role: SRE
    description: Keeps production healthy.
    required_skills:
      - Linux
      - Prometheus
`)

	catalog, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Engineering"}, catalog.Categories())
	assert.Equal(t, []string{"Platform Engineer", "SRE"}, catalog.Roles("Engineering"))

	profile, err := catalog.Get("Engineering", "Platform Engineer")
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Kubernetes", "Terraform"}, profile.RequiredSkills)

	// The file fully replaces the built-in catalog.
	_, err = catalog.Get("Software Development", "Backend Developer")
	assert.Error(t, err)
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr string
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.yaml") },
			wantErr: "not found",
		},
		{
			name:    "unparseable file",
			path:    func(t *testing.T) string { return writeRolesFile(t, "roles: [unclosed") },
			wantErr: "failed to read",
		},
		{
			name:    "no roles declared",
			path:    func(t *testing.T) string { return writeRolesFile(t, "roles: []") },
			wantErr: "no roles",
		},
		{
			name: "entry without required skills",
			path: func(t *testing.T) string {
				return writeRolesFile(t, `
roles:
  - category: Engineering
    role: SRE
    description: Keeps production healthy.
`)
			},
			wantErr: "required skills",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(tt.path(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
