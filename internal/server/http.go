package server

import (
	"time"

	"cvrobo/internal/analyzer"
	"cvrobo/internal/config"
	cvroboErrors "cvrobo/internal/errors"
	"cvrobo/internal/extract"
	"cvrobo/internal/roles"
)

// AnalyzeRequest represents the JSON request body for the analyze endpoint.
// File uploads use multipart form data instead, with the same category and
// role fields.
type AnalyzeRequest struct {
	Resume   string `json:"resume"`
	Category string `json:"category"`
	Role     string `json:"role"`
}

// ReviewRequest represents the JSON request body for the review endpoint.
// Category and role are optional; when set they steer the review toward a
// catalog profile, and roleTarget carries a free-form target instead.
type ReviewRequest struct {
	Resume     string `json:"resume"`
	Category   string `json:"category,omitempty"`
	Role       string `json:"role,omitempty"`
	RoleTarget string `json:"roleTarget,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Server holds configuration for the HTTP server
type Server struct {
	Host    string
	Port    string
	Version string

	// Full application configuration
	AppConfig *config.Config

	// TLS Configuration
	TLSConfig config.TLSConfig

	// Certificate management
	CertificateManager *CertificateManager

	// API Authentication
	APIKeys map[string]bool

	// Timeout configurations
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Request size limit
	MaxRequestSize int64

	// Rate limiting
	RateLimit   *config.RateLimitConfig
	RateLimiter *RateLimiter

	// Analysis components, initialized on Start
	Engine    *analyzer.Engine
	Catalog   *roles.Catalog
	Extractor *extract.Service
	Stats     *StatsTracker

	// Logger
	Logger *cvroboErrors.Logger
}

// ServerConfig holds configuration for creating a Server instance
// (Refactored to reduce long parameter list in NewServer)
type ServerConfig struct {
	Host           string
	Port           string
	Version        string
	TLSConfig      config.TLSConfig
	APIKeys        []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxRequestSize int64
	RateLimit      *config.RateLimitConfig
}

// NewServer creates a new Server instance from a ServerConfig struct
func NewServer(appCfg *config.Config, cfg ServerConfig, logger *cvroboErrors.Logger) *Server {
	// Convert API keys slice to map for O(1) lookup
	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	var rateLimiter *RateLimiter
	if cfg.RateLimit != nil && cfg.RateLimit.Enabled {
		rateLimiter = NewRateLimiter(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.Window,
			cfg.RateLimit.BurstCapacity,
			logger,
		)
	}

	return &Server{
		Host:           cfg.Host,
		Port:           cfg.Port,
		Version:        cfg.Version,
		AppConfig:      appCfg,
		TLSConfig:      cfg.TLSConfig,
		APIKeys:        apiKeyMap,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxRequestSize: cfg.MaxRequestSize,
		RateLimit:      cfg.RateLimit,
		RateLimiter:    rateLimiter,
		Stats:          NewStatsTracker(),
		Logger:         logger,
	}
}
