package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestValidateTLSMode tests the main TLS mode validation function
func TestValidateTLSMode(t *testing.T) {
	tests := []struct {
		name        string
		tls         TLSConfig
		expectError bool
		errorMsg    string
	}{
		{
			name: "disabled mode",
			tls: TLSConfig{
				Mode: "disabled",
			},
			expectError: false,
		},
		{
			name: "server mode valid",
			tls: TLSConfig{
				Mode:     "server",
				CertFile: "/path/to/cert.pem",
				KeyFile:  "/path/to/key.pem",
			},
			expectError: false,
		},
		{
			name: "server mode missing cert",
			tls: TLSConfig{
				Mode:    "server",
				KeyFile: "/path/to/key.pem",
			},
			expectError: true,
			errorMsg:    "TLS certificate and key files are required for server mode",
		},
		{
			name: "server mode missing key",
			tls: TLSConfig{
				Mode:     "server",
				CertFile: "/path/to/cert.pem",
			},
			expectError: true,
			errorMsg:    "TLS certificate and key files are required for server mode",
		},
		{
			name: "mutual mode valid",
			tls: TLSConfig{
				Mode:     "mutual",
				CertFile: "/path/to/cert.pem",
				KeyFile:  "/path/to/key.pem",
				CAFile:   "/path/to/ca.pem",
			},
			expectError: false,
		},
		{
			name: "mutual mode missing CA",
			tls: TLSConfig{
				Mode:     "mutual",
				CertFile: "/path/to/cert.pem",
				KeyFile:  "/path/to/key.pem",
			},
			expectError: true,
			errorMsg:    "CA certificate is required for mutual TLS mode",
		},
		{
			name: "invalid mode",
			tls: TLSConfig{
				Mode: "invalid",
			},
			expectError: true,
			errorMsg:    "invalid TLS mode: invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTLSMode(tt.tls)
			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateClientAuthPolicy(t *testing.T) {
	tests := []struct {
		policy      string
		expectError bool
	}{
		{policy: "", expectError: false},
		{policy: "require", expectError: false},
		{policy: "request", expectError: false},
		{policy: "verify", expectError: false},
		{policy: "optional", expectError: true},
		{policy: "none", expectError: true},
	}

	for _, tt := range tests {
		t.Run("policy "+tt.policy, func(t *testing.T) {
			err := validateClientAuthPolicy(TLSConfig{ClientAuthPolicy: tt.policy})
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateTLSVersion(t *testing.T) {
	tests := []struct {
		version     string
		expectError bool
	}{
		{version: "", expectError: false},
		{version: "1.2", expectError: false},
		{version: "1.3", expectError: false},
		{version: "1.0", expectError: true},
		{version: "1.1", expectError: true},
		{version: "ssl3", expectError: true},
	}

	for _, tt := range tests {
		t.Run("version "+tt.version, func(t *testing.T) {
			err := validateTLSVersion(TLSConfig{MinVersion: tt.version})
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateTLSConfig(t *testing.T) {
	cfg := &Config{}
	cfg.Server.TLS = TLSConfig{
		Mode:       "server",
		CertFile:   "/path/to/cert.pem",
		KeyFile:    "/path/to/key.pem",
		MinVersion: "1.3",
	}
	assert.NoError(t, cfg.ValidateTLSConfig())

	cfg.Server.TLS.MinVersion = "1.1"
	assert.Error(t, cfg.ValidateTLSConfig())
}
