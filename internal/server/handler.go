package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"resumescope/internal/observability"
	"resumescope/internal/payments"
	"resumescope/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// createScoreHandler builds the scoring endpoint for one rubric. The resume
// arrives as a multipart upload alongside optional profile overrides.
func (s *Server) createScoreHandler(om *observability.ObservabilityManager, rubric string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumescope.api")
		ctx, span := tracer.Start(ctx, "api.score."+rubric)
		defer span.End()

		data, filename, opts, err := s.parseScoreRequest(r)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid score request", err.Error(), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.String("request.filename", filename),
			attribute.Int("request.resume_bytes", len(data)),
			attribute.String("operation", "score."+rubric),
		)

		metrics := om.GetMetrics()
		var rep *types.Report
		err = metrics.TrackScoreOperation(ctx, rubric, func(ctx context.Context) error {
			var scoreErr error
			if rubric == "technical" {
				rep, scoreErr = s.Scorer.ScoreTechnical(ctx, data, filename, opts)
			} else {
				rep, scoreErr = s.Scorer.ScoreNonTechnical(ctx, data, filename, opts)
			}
			return scoreErr
		})
		if err != nil {
			metrics.RecordBusinessMetric(ctx, "report_built", false,
				attribute.String("rubric", rubric))
			writeAppError(w, s.Logger, err)
			return
		}

		// Server-side suggestion cap
		if limit := s.Scorer.SuggestionLimit(); limit > 0 && len(rep.Suggestions) > limit {
			rep.Suggestions = rep.Suggestions[:limit]
		}

		s.Reports.Set(rep.Key, rep, s.AppConfig.Scoring.ReportTTL)
		metrics.RecordBusinessMetric(ctx, "report_built", true,
			attribute.String("rubric", rubric),
			attribute.Float64("total", rep.Total))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Float64("report.total", rep.Total),
			attribute.String("report.grade", string(rep.Overall)),
		)

		writeScoreResponse(w, rep)
	}
}

// parseScoreRequest pulls the resume upload and scoring options out of a
// multipart form.
func (s *Server) parseScoreRequest(r *http.Request) ([]byte, string, types.ScoreOptions, error) {
	var opts types.ScoreOptions

	if err := r.ParseMultipartForm(s.MaxRequestSize); err != nil {
		return nil, "", opts, fmt.Errorf("failed to parse multipart form: %w", err)
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		return nil, "", opts, fmt.Errorf("resume file is required: %w", err)
	}
	defer closeQuietly(file, s)

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", opts, fmt.Errorf("failed to read resume upload: %w", err)
	}
	if len(data) == 0 {
		return nil, "", opts, fmt.Errorf("resume upload is empty")
	}

	opts.GitHubUser = strings.TrimSpace(r.FormValue("github"))
	opts.LeetCodeUser = strings.TrimSpace(r.FormValue("leetcode"))
	opts.DesiredRole = strings.TrimSpace(r.FormValue("role"))
	if keywords := strings.TrimSpace(r.FormValue("keywords")); keywords != "" {
		for _, kw := range strings.Split(keywords, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				opts.DomainKeywords = append(opts.DomainKeywords, kw)
			}
		}
	}
	opts.Chart, _ = strconv.ParseBool(r.FormValue("chart"))

	return data, header.Filename, opts, nil
}

func closeQuietly(file multipart.File, s *Server) {
	if err := file.Close(); err != nil {
		s.Logger.Debug("Failed to close upload", "error", err.Error())
	}
}

func writeScoreResponse(w http.ResponseWriter, rep *types.Report) {
	resp := types.ScoreResponse{Report: rep}
	if len(rep.ChartPNG) > 0 {
		resp.ChartBase64 = base64.StdEncoding.EncodeToString(rep.ChartPNG)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// createReportHandler serves previously built reports by result key.
func (s *Server) createReportHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		key := r.PathValue("key")

		rep, ok := s.Reports.Get(key)
		metrics := om.GetMetrics()
		metrics.RecordBusinessMetric(ctx, "report_fetched", ok)
		if !ok {
			writeErrorResponse(w, "Report not found", "No report for this key, it may have expired", http.StatusNotFound)
			return
		}

		writeScoreResponse(w, rep)
	}
}

// certificationsHandler suggests certifications for a desired role.
func (s *Server) certificationsHandler(w http.ResponseWriter, r *http.Request) {
	role := strings.TrimSpace(r.URL.Query().Get("role"))
	if role == "" {
		writeErrorResponse(w, "Missing role", "role query parameter is required", http.StatusBadRequest)
		return
	}

	limit := s.Scorer.SuggestionLimit() * 3
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeErrorResponse(w, "Invalid limit", "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	certs := s.Scorer.SuggestCertifications(role, limit)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{
		"role":           role,
		"certifications": certs,
	}); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// createSignupOTPHandler starts the signup flow by mailing an OTP.
func (s *Server) createSignupOTPHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req types.SignupRequest
		if err := parseJSONRequest(r, &req); err != nil {
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		err := s.Auth.StartSignup(ctx, req)
		om.GetMetrics().RecordBusinessMetric(ctx, "otp_issued", err == nil,
			attribute.String("flow", "signup"))
		if err != nil {
			writeAppError(w, s.Logger, err)
			return
		}

		writeStatus(w, "otp_sent")
	}
}

func (s *Server) signupVerifyHandler(w http.ResponseWriter, r *http.Request) {
	var req types.SignupRequest
	if err := parseJSONRequest(r, &req); err != nil {
		writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.Auth.VerifySignup(req); err != nil {
		writeAppError(w, s.Logger, err)
		return
	}

	writeStatus(w, "registered")
}

// createLoginOTPHandler starts the login flow by mailing an OTP.
func (s *Server) createLoginOTPHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req types.LoginRequest
		if err := parseJSONRequest(r, &req); err != nil {
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		err := s.Auth.StartLogin(ctx, req)
		om.GetMetrics().RecordBusinessMetric(ctx, "otp_issued", err == nil,
			attribute.String("flow", "login"))
		if err != nil {
			writeAppError(w, s.Logger, err)
			return
		}

		writeStatus(w, "otp_sent")
	}
}

func (s *Server) loginVerifyHandler(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := parseJSONRequest(r, &req); err != nil {
		writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}

	user, err := s.Auth.VerifyLogin(req)
	if err != nil {
		writeAppError(w, s.Logger, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{
		"status": "logged_in",
		"user":   user,
	}); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// paymentPlansHandler lists the purchasable packages.
func (s *Server) paymentPlansHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{
		"plans": payments.Plans(),
	}); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// createPaymentHandler accepts a payment proof submission.
func (s *Server) createPaymentHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		proof, err := s.parsePaymentRequest(r)
		if err != nil {
			writeErrorResponse(w, "Invalid payment submission", err.Error(), http.StatusBadRequest)
			return
		}

		plan, err := s.Payments.Submit(proof)
		om.GetMetrics().RecordBusinessMetric(ctx, "payment_filed", err == nil)
		if err != nil {
			writeAppError(w, s.Logger, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"status": "submitted",
			"plan":   plan,
		}); err != nil {
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

func (s *Server) parsePaymentRequest(r *http.Request) (types.PaymentProof, error) {
	var proof types.PaymentProof

	if err := r.ParseMultipartForm(s.MaxRequestSize); err != nil {
		return proof, fmt.Errorf("failed to parse multipart form: %w", err)
	}

	proof.Name = strings.TrimSpace(r.FormValue("name"))
	proof.UTR = strings.TrimSpace(r.FormValue("utr"))

	plan, err := strconv.Atoi(r.FormValue("plan"))
	if err != nil {
		return proof, fmt.Errorf("plan must be an integer")
	}
	proof.PlanID = plan

	shot, shotHeader, err := r.FormFile("screenshot")
	if err != nil {
		return proof, fmt.Errorf("payment screenshot is required: %w", err)
	}
	defer closeQuietly(shot, s)
	if proof.Screenshot, err = io.ReadAll(shot); err != nil {
		return proof, fmt.Errorf("failed to read screenshot: %w", err)
	}
	proof.ScreenshotName = shotHeader.Filename

	// Resume is optional for payment submissions
	if resume, resumeHeader, err := r.FormFile("resume"); err == nil {
		defer closeQuietly(resume, s)
		if proof.Resume, err = io.ReadAll(resume); err != nil {
			return proof, fmt.Errorf("failed to read resume: %w", err)
		}
		proof.ResumeName = resumeHeader.Filename
	}

	return proof, nil
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
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true,
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
