package server

import (
	"time"

	"resumescope/internal/auth"
	"resumescope/internal/config"
	resumescopeErrors "resumescope/internal/errors"
	"resumescope/internal/mail"
	"resumescope/internal/payments"
	"resumescope/internal/score"
	"resumescope/internal/store"
	"resumescope/internal/types"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
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

	// Domain services
	Scorer   *score.Service
	Auth     *auth.Service
	Payments *payments.Service

	// Built reports, retrievable by result key until they age out
	Reports *store.TTL[*types.Report]

	// Logger
	Logger *resumescopeErrors.Logger
}

// NewServer creates a new Server instance from the application configuration
func NewServer(appCfg *config.Config, version string, logger *resumescopeErrors.Logger) (*Server, error) {
	// Convert API keys slice to map for O(1) lookup
	apiKeyMap := make(map[string]bool)
	for _, key := range appCfg.Server.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	var rateLimiter *RateLimiter
	if appCfg.Server.RateLimit.Enabled {
		rateLimiter = NewRateLimiter(
			appCfg.Server.RateLimit.RequestsPerMin,
			appCfg.Server.RateLimit.Window,
			appCfg.Server.RateLimit.BurstCapacity,
			logger,
		)
	}

	scorer, err := score.NewService(appCfg, logger)
	if err != nil {
		return nil, err
	}

	sender, err := mail.NewSender(appCfg.Mail, logger)
	if err != nil {
		return nil, err
	}

	return &Server{
		Host:           appCfg.Server.Host,
		Port:           appCfg.Server.Port,
		Version:        version,
		AppConfig:      appCfg,
		TLSConfig:      appCfg.Server.TLS,
		APIKeys:        apiKeyMap,
		ReadTimeout:    appCfg.Server.ReadTimeout,
		WriteTimeout:   appCfg.Server.WriteTimeout,
		IdleTimeout:    appCfg.Server.IdleTimeout,
		MaxRequestSize: appCfg.Server.MaxRequestSize,
		RateLimit:      &appCfg.Server.RateLimit,
		RateLimiter:    rateLimiter,
		Scorer:         scorer,
		Auth:           auth.NewService(appCfg.Auth, sender, logger),
		Payments:       payments.NewService(appCfg.Payments.StorageDir, logger),
		Reports:        store.NewTTL[*types.Report](time.Minute),
		Logger:         logger,
	}, nil
}
