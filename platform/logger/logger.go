// Package logger provides structured logging infrastructure for the application.
// This is part of the platform layer and contains no business logic.
package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

// Context key types for storing values in context
type contextKey string

const (
	// RequestIDKey is the context key for request ID
	RequestIDKey contextKey = "request_id"
	// ProjectIDKey is the context key for the project being processed
	ProjectIDKey contextKey = "project_id"
)

// Logger wraps slog.Logger for structured logging
type Logger struct {
	*slog.Logger
}

// New creates a new logger based on environment
func New(env string) *Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	if strings.EqualFold(env, "development") {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithContext returns a logger with context values extracted.
// Supports request_id and project_id from context.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}

	newLogger := l

	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		newLogger = &Logger{
			Logger: newLogger.With(slog.String("request_id", requestID)),
		}
	}

	if projectID, ok := ctx.Value(ProjectIDKey).(string); ok && projectID != "" {
		newLogger = newLogger.WithProjectID(projectID)
	}

	return newLogger
}

// WithProjectID returns a logger with the project ID attached.
func (l *Logger) WithProjectID(projectID string) *Logger {
	return &Logger{
		Logger: l.With(slog.String("project_id", projectID)),
	}
}

// HTTPRequest logs an HTTP request
func (l *Logger) HTTPRequest(method, path string, status int, latencyMs float64, clientIP string) {
	l.Info("http_request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Float64("latency_ms", latencyMs),
		slog.String("client_ip", clientIP),
	)
}

// ProviderError logs a failed call to an external provider (discovery,
// generative text, email, SMS, voice). Provider failures are absorbed at the
// component boundary, so the log line is the only trace of them.
func (l *Logger) ProviderError(provider, operation string, err error) {
	l.Error("provider_error",
		slog.String("provider", provider),
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	)
}

// DispatchEvent logs the outcome of a single channel attempt for a contractor.
func (l *Logger) DispatchEvent(channel, contractor string, success bool, reason string) {
	if success {
		l.Info("dispatch_event",
			slog.String("channel", channel),
			slog.String("contractor", contractor),
			slog.Bool("success", success),
		)
	} else {
		l.Warn("dispatch_event",
			slog.String("channel", channel),
			slog.String("contractor", contractor),
			slog.Bool("success", success),
			slog.String("reason", reason),
		)
	}
}

// StoreError logs tracking store persistence errors
func (l *Logger) StoreError(operation string, err error) {
	l.Error("store_error",
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	)
}

// RateLimitExceeded logs rate limit events
func (l *Logger) RateLimitExceeded(clientIP, path string) {
	l.Warn("rate_limit_exceeded",
		slog.String("client_ip", clientIP),
		slog.String("path", path),
	)
}
