package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"cvrobo/internal/ai"
	cvroboErrors "cvrobo/internal/errors"
	"cvrobo/internal/observability"
	"cvrobo/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// createAnalyzeHandler wraps the analyze handler with observability
func (s *Server) createAnalyzeHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("cvrobo.api")
		ctx, span := tracer.Start(ctx, "api.analyze")
		defer span.End()

		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		req, err := s.parseAnalyzeRequest(r)
		if err != nil {
			span.RecordError(err)
			var appErr *cvroboErrors.AppError
			if errors.As(err, &appErr) && appErr.Type == cvroboErrors.ErrorTypeExtraction {
				om.GetMetrics().RecordExtractionFailure(ctx, appErr.Code, om)
				span.SetAttributes(attribute.String("error.type", "extraction"))
				writeErrorResponse(w, "Failed to extract document text", err.Error(), http.StatusBadRequest)
				return
			}
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		// Validation
		if strings.TrimSpace(req.Category) == "" || strings.TrimSpace(req.Role) == "" {
			err := fmt.Errorf("missing target role")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing target role", "category and role fields are required", http.StatusBadRequest)
			return
		}

		// Size validation
		if len(req.Resume) > int(s.MaxRequestSize) {
			err := fmt.Errorf("resume too large: %d chars", len(req.Resume))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Resume too large", fmt.Sprintf("resume exceeds size limit of %d characters", s.MaxRequestSize), http.StatusBadRequest)
			return
		}

		profile, err := s.Catalog.Get(req.Category, req.Role)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Unknown role", err.Error(), http.StatusBadRequest)
			return
		}

		// Add request attributes to span
		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.Resume)),
			attribute.String("request.category", profile.Category),
			attribute.String("request.role", profile.Role),
			attribute.String("operation", "analyze"),
		)

		result, err := s.Engine.Analyze(req.Resume, profile)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "analysis"))
			writeErrorResponse(w, "Failed to analyze resume", err.Error(), http.StatusInternalServerError)
			return
		}

		requestID := s.Stats.Record(result)

		// Record success metrics
		metrics := om.GetMetrics()
		metrics.RecordAnalysis(ctx, string(result.DocumentType), result.ATSScore, result.ClassificationOnly, om)

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.String("request.id", requestID),
			attribute.String("response.document_type", string(result.DocumentType)),
			attribute.Int("ats.score", result.ATSScore),
		)

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Request-ID", requestID)
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// parseAnalyzeRequest accepts either a JSON body or a multipart file upload.
// Multipart uploads carry the resume in a "file" part with category and role
// as form fields; the file may be a PDF or plain text.
func (s *Server) parseAnalyzeRequest(r *http.Request) (AnalyzeRequest, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		return s.parseMultipartRequest(r)
	}

	var req AnalyzeRequest
	if err := parseJSONRequest(r, &req); err != nil {
		return AnalyzeRequest{}, err
	}
	if strings.TrimSpace(req.Resume) == "" {
		return AnalyzeRequest{}, fmt.Errorf("resume field is required")
	}
	return req, nil
}

// parseMultipartRequest extracts the uploaded file to a temp path so the
// format-sniffing extractor chain can process it.
func (s *Server) parseMultipartRequest(r *http.Request) (AnalyzeRequest, error) {
	if err := r.ParseMultipartForm(s.MaxRequestSize); err != nil {
		return AnalyzeRequest{}, fmt.Errorf("failed to parse multipart form: %w", err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return AnalyzeRequest{}, fmt.Errorf("file part is required: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.Logger.Warn("Failed to close uploaded file", "error", err)
		}
	}()

	tmp, err := os.CreateTemp("", "cvrobo-upload-*"+filepath.Ext(header.Filename))
	if err != nil {
		return AnalyzeRequest{}, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err := os.Remove(tmpPath); err != nil {
			s.Logger.Warn("Failed to remove temp file", "path", tmpPath, "error", err)
		}
	}()

	if _, err := io.Copy(tmp, file); err != nil {
		_ = tmp.Close()
		return AnalyzeRequest{}, fmt.Errorf("failed to save uploaded file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return AnalyzeRequest{}, fmt.Errorf("failed to save uploaded file: %w", err)
	}

	doc, err := s.Extractor.ExtractFile(tmpPath)
	if err != nil {
		return AnalyzeRequest{}, fmt.Errorf("failed to extract text from %s: %w", header.Filename, err)
	}

	return AnalyzeRequest{
		Resume:   doc.Text,
		Category: r.FormValue("category"),
		Role:     r.FormValue("role"),
	}, nil
}

// createReviewHandler wraps the AI review handler with observability
func (s *Server) createReviewHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("cvrobo.api")
		ctx, span := tracer.Start(ctx, "api.review")
		defer span.End()

		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req ReviewRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.Resume) == "" {
			err := fmt.Errorf("missing resume")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing resume", "resume field is required", http.StatusBadRequest)
			return
		}
		if len(req.Resume) > int(s.MaxRequestSize) {
			err := fmt.Errorf("resume too large: %d chars", len(req.Resume))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Resume too large", fmt.Sprintf("resume exceeds size limit of %d characters", s.MaxRequestSize), http.StatusBadRequest)
			return
		}

		input := types.ReviewInput{
			Resume:     req.Resume,
			Category:   req.Category,
			Role:       req.Role,
			RoleTarget: req.RoleTarget,
		}
		// A catalog profile, when named, anchors the review target.
		if req.Category != "" && req.Role != "" {
			profile, err := s.Catalog.Get(req.Category, req.Role)
			if err != nil {
				span.RecordError(err)
				span.SetAttributes(attribute.String("error.type", "validation"))
				writeErrorResponse(w, "Unknown role", err.Error(), http.StatusBadRequest)
				return
			}
			input.RoleTarget = fmt.Sprintf("%s (%s)", profile.Role, profile.Category)
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.Resume)),
			attribute.String("operation", "review"),
		)

		aiService, err := ai.NewService(&s.AppConfig.AI, s.Logger)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "service_creation"))
			writeErrorResponse(w, "Failed to create AI service", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics := om.GetMetrics()
		var result types.ReviewOutput
		err = metrics.TrackAIOperationWithTokens(ctx, "review", func(ctx context.Context) *observability.AIOperationResult {
			output, tokenUsage, aiErr := aiService.Provider.ReviewResume(ctx, input)
			result = output
			return &observability.AIOperationResult{
				Error:      aiErr,
				TokenUsage: (*observability.TokenUsage)(tokenUsage),
			}
		}, om)

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "ai_processing"))
			metrics.RecordBusinessMetric(ctx, "resume_reviewed", false, om,
				attribute.String("error", err.Error()))
			writeErrorResponse(w, "Failed to review resume", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordBusinessMetric(ctx, "resume_reviewed", true, om,
			attribute.Int("recommendations_count", len(result.Recommendations)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("recommendations_count", len(result.Recommendations)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createRolesHandler serves the role catalog listing
func (s *Server) createRolesHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := om.Tracer("cvrobo.api").Start(r.Context(), "api.roles")
		defer span.End()

		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		profiles := s.Catalog.Profiles()
		if category := r.URL.Query().Get("category"); category != "" {
			filtered := make([]types.RoleProfile, 0, len(profiles))
			for _, p := range profiles {
				if p.Category == category {
					filtered = append(filtered, p)
				}
			}
			profiles = filtered
		}

		span.SetAttributes(attribute.Int("response.role_count", len(profiles)))

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{"roles": profiles}); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Check if this request was rate limited by examining the response
			// We'll wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			// If rate limited, record metric
			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true, om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
