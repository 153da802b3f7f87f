package config

import (
	"time"

	"github.com/spf13/viper"
)

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	// App Configuration
	v.SetDefault("app.logLevel", "info")
	v.SetDefault("app.defaultFormat", "json")
	v.SetDefault("app.supportedFormats", []string{"json", "text", "markdown"})
	v.SetDefault("app.maxFileSize", 5*1024*1024) // 5MB

	// GitHub provider
	v.SetDefault("providers.github.baseURL", "https://api.github.com")
	v.SetDefault("providers.github.graphqlURL", "https://api.github.com/graphql")
	v.SetDefault("providers.github.token", "")
	v.SetDefault("providers.github.timeout", 15*time.Second)
	v.SetDefault("providers.github.recentDays", 90)
	v.SetDefault("providers.github.circuitBreaker.enabled", true)
	v.SetDefault("providers.github.circuitBreaker.maxRequests", 3)
	v.SetDefault("providers.github.circuitBreaker.interval", 60*time.Second)
	v.SetDefault("providers.github.circuitBreaker.timeout", 60*time.Second)
	v.SetDefault("providers.github.circuitBreaker.minRequests", 3)
	v.SetDefault("providers.github.circuitBreaker.failureThreshold", 0.6)

	// LeetCode provider
	v.SetDefault("providers.leetcode.graphqlURL", "https://leetcode.com/graphql")
	v.SetDefault("providers.leetcode.timeout", 20*time.Second)
	v.SetDefault("providers.leetcode.circuitBreaker.enabled", true)
	v.SetDefault("providers.leetcode.circuitBreaker.maxRequests", 3)
	v.SetDefault("providers.leetcode.circuitBreaker.interval", 60*time.Second)
	v.SetDefault("providers.leetcode.circuitBreaker.timeout", 60*time.Second)
	v.SetDefault("providers.leetcode.circuitBreaker.minRequests", 3)
	v.SetDefault("providers.leetcode.circuitBreaker.failureThreshold", 0.6)

	// Insight (disabled by default, narrative only)
	v.SetDefault("insight.enabled", false)
	v.SetDefault("insight.provider", "gemini")
	v.SetDefault("insight.model", "gemini-2.0-flash")
	v.SetDefault("insight.apiKey", "")
	v.SetDefault("insight.timeout", 60*time.Second)
	v.SetDefault("insight.temperature", 0.2)
	v.SetDefault("insight.maxRetries", 2)
	v.SetDefault("insight.circuitBreaker.enabled", true)
	v.SetDefault("insight.circuitBreaker.maxRequests", 3)
	v.SetDefault("insight.circuitBreaker.interval", 60*time.Second)
	v.SetDefault("insight.circuitBreaker.timeout", 60*time.Second)
	v.SetDefault("insight.circuitBreaker.minRequests", 3)
	v.SetDefault("insight.circuitBreaker.failureThreshold", 0.6)

	// Mail
	v.SetDefault("mail.provider", "none")
	v.SetDefault("mail.graph.tenantID", "")
	v.SetDefault("mail.graph.clientID", "")
	v.SetDefault("mail.graph.clientSecret", "")
	v.SetDefault("mail.graph.sender", "")
	v.SetDefault("mail.smtp.host", "")
	v.SetDefault("mail.smtp.port", 587)
	v.SetDefault("mail.smtp.username", "")
	v.SetDefault("mail.smtp.password", "")
	v.SetDefault("mail.smtp.from", "")

	// Auth
	v.SetDefault("auth.otpTTL", 5*time.Minute)
	v.SetDefault("auth.sessionTTL", 24*time.Hour)

	// Scoring
	v.SetDefault("scoring.chart", true)
	v.SetDefault("scoring.suggestionLimit", 2)
	v.SetDefault("scoring.reportTTL", time.Hour)

	// Payments
	v.SetDefault("payments.storageDir", "submissions")

	// Server Configuration
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.readTimeout", 30*time.Second)
	v.SetDefault("server.writeTimeout", 30*time.Second)
	v.SetDefault("server.idleTimeout", 120*time.Second)
	v.SetDefault("server.maxRequestSize", 10*1024*1024) // 10MB, multipart uploads
	// TLS Configuration defaults
	v.SetDefault("server.tls.mode", "disabled") // disabled, server, mutual
	v.SetDefault("server.tls.certFile", "")
	v.SetDefault("server.tls.keyFile", "")
	v.SetDefault("server.tls.caFile", "")
	v.SetDefault("server.tls.minVersion", "1.2")           // TLS 1.2 minimum
	v.SetDefault("server.tls.cipherSuites", []string{})    // Use Go defaults
	v.SetDefault("server.tls.clientAuthPolicy", "require") // require, request, verify
	v.SetDefault("server.tls.insecureSkipVerify", false)
	v.SetDefault("server.tls.serverName", "")

	// Auto-reload configuration defaults
	v.SetDefault("server.tls.autoReload.enabled", true)
	v.SetDefault("server.tls.autoReload.checkInterval", 30*time.Second)
	v.SetDefault("server.tls.autoReload.preemptiveRenewal", 72*time.Hour) // 72 hours before expiry
	v.SetDefault("server.tls.autoReload.maxRetries", 3)
	v.SetDefault("server.tls.autoReload.retryDelay", 10*time.Second)

	// File watcher defaults
	v.SetDefault("server.tls.autoReload.fileWatcher.enabled", true)
	v.SetDefault("server.tls.autoReload.fileWatcher.debounceDelay", time.Second)

	// Vault watcher defaults
	v.SetDefault("server.tls.autoReload.vaultWatcher.enabled", false)
	v.SetDefault("server.tls.autoReload.vaultWatcher.pollInterval", 5*time.Minute)
	v.SetDefault("server.tls.autoReload.vaultWatcher.autoRenew", true)
	v.SetDefault("server.tls.autoReload.vaultWatcher.renewThreshold", 24*time.Hour)
	v.SetDefault("server.tls.autoReload.vaultWatcher.secretPath", "")
	// API Authentication defaults
	v.SetDefault("server.apiKeys", []string{})
	// Rate limiting defaults
	v.SetDefault("server.rateLimit.enabled", false)
	v.SetDefault("server.rateLimit.requestsPerMin", 60)
	v.SetDefault("server.rateLimit.burstCapacity", 10)
	v.SetDefault("server.rateLimit.byIP", true)
	v.SetDefault("server.rateLimit.byAPIKey", false)
	v.SetDefault("server.rateLimit.window", time.Minute)

	// Vault Configuration
	v.SetDefault("vault.enabled", false)
	v.SetDefault("vault.address", "")
	v.SetDefault("vault.token", "")
	v.SetDefault("vault.tokenFile", "")
	v.SetDefault("vault.namespace", "")
	v.SetDefault("vault.secrets.apiKeys", "")
	v.SetDefault("vault.secrets.githubToken", "")
	v.SetDefault("vault.secrets.insightKey", "")
	v.SetDefault("vault.secrets.graphClientSecret", "")
	v.SetDefault("vault.secrets.smtpPassword", "")
	v.SetDefault("vault.secrets.tlsCerts", "")

	// Observability Configuration
	v.SetDefault("observability.enabled", true)
	v.SetDefault("observability.serviceName", "resumescope")
	v.SetDefault("observability.serviceVersion", "")  // Will use app version if empty
	v.SetDefault("observability.serviceInstance", "") // Will be auto-generated if empty
	v.SetDefault("observability.consoleOutput", false)
	v.SetDefault("observability.sampleRate", 1.0)

	// Tracing Configuration
	v.SetDefault("observability.tracing.enabled", true)
	v.SetDefault("observability.tracing.sampleRate", 1.0)

	// Metrics Configuration
	v.SetDefault("observability.metrics.enabled", true)
	v.SetDefault("observability.metrics.collectionInterval", 15*time.Second)

	// Console Configuration
	v.SetDefault("observability.console.enabled", false)
	v.SetDefault("observability.console.prettyPrint", true)

	// Prometheus Configuration
	v.SetDefault("observability.prometheus.enabled", true)
	v.SetDefault("observability.prometheus.endpoint", "/metrics")
	v.SetDefault("observability.prometheus.port", "9090")

	// OTLP Configuration
	v.SetDefault("observability.otlp.enabled", false)
	v.SetDefault("observability.otlp.endpoint", "http://localhost:4318")
	v.SetDefault("observability.otlp.insecure", true)
	v.SetDefault("observability.otlp.headers", map[string]string{})

	// Health Check Configuration
	v.SetDefault("observability.healthCheck.timeout", 15*time.Second)
}
