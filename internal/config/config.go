package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings. Everything is sourced from the
// environment; a .env file is honored when present.
type Config struct {
	Env      string
	HTTPAddr string

	CORSAllowAll bool
	CORSOrigins  []string

	DataDir string

	SMTPHost      string
	SMTPPort      int
	SMTPUsername  string
	SMTPPassword  string
	EmailFromName string
	FromEmail     string

	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioPhoneNumber string
	VoiceEnabled      bool

	GooglePlacesAPIKey string
	GeminiAPIKey       string
	GeminiModel        string

	MaxContractors  int
	ProviderTimeout time.Duration
	OutboundPerSec  float64
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	smtpPort, err := intEnv("SMTP_PORT", 587)
	if err != nil {
		return nil, err
	}
	maxContractors, err := intEnv("OUTREACH_MAX_CONTRACTORS", 20)
	if err != nil {
		return nil, err
	}
	providerTimeout, err := durationEnv("PROVIDER_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, err
	}
	outboundPerSec, err := floatEnv("OUTBOUND_MSGS_PER_SEC", 1)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:      getEnv("APP_ENV", "development"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),

		CORSAllowAll: corsAllowAll,
		CORSOrigins:  corsOrigins,

		DataDir: getEnv("DATA_DIR", "data"),

		SMTPHost:      getEnv("SMTP_SERVER", ""),
		SMTPPort:      smtpPort,
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		EmailFromName: getEnv("EMAIL_FROM_NAME", "Bid Requests"),
		FromEmail:     getEnv("FROM_EMAIL", ""),

		TwilioAccountSID:  getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:   getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioPhoneNumber: getEnv("TWILIO_PHONE_NUMBER", ""),
		VoiceEnabled:      strings.EqualFold(getEnv("VOICE_ENABLED", "false"), "true"),

		GooglePlacesAPIKey: getEnv("GOOGLE_PLACES_API_KEY", ""),
		GeminiAPIKey:       getEnv("GEMINI_API_KEY", ""),
		GeminiModel:        getEnv("GEMINI_MODEL", "gemini-2.0-flash"),

		MaxContractors:  maxContractors,
		ProviderTimeout: providerTimeout,
		OutboundPerSec:  outboundPerSec,
	}

	if cfg.DataDir == "" {
		return nil, fmt.Errorf("DATA_DIR must not be empty")
	}
	if cfg.MaxContractors <= 0 {
		return nil, fmt.Errorf("OUTREACH_MAX_CONTRACTORS must be positive")
	}
	if cfg.EmailConfigured() && cfg.FromEmail == "" {
		return nil, fmt.Errorf("FROM_EMAIL is required when SMTP is configured")
	}
	if cfg.VoiceEnabled && !cfg.SMSConfigured() {
		return nil, fmt.Errorf("VOICE_ENABLED requires Twilio credentials")
	}

	return cfg, nil
}

// IsDevelopment reports whether the service runs in development mode.
// In development every outbound side effect is simulated.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// EmailConfigured reports whether SMTP delivery can be attempted.
func (c *Config) EmailConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUsername != "" && c.SMTPPassword != ""
}

// SMSConfigured reports whether Twilio SMS delivery can be attempted.
func (c *Config) SMSConfigured() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioPhoneNumber != ""
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, raw)
	}
	return n, nil
}

func floatEnv(key string, fallback float64) (float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q", key, raw)
	}
	return f, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, raw)
	}
	return d, nil
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
