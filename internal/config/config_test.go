package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SMTP_PORT", "OUTREACH_MAX_CONTRACTORS", "PROVIDER_TIMEOUT", "OUTBOUND_MSGS_PER_SEC"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.SMTPPort != 587 {
		t.Fatalf("expected default smtp port, got %d", cfg.SMTPPort)
	}
	if cfg.MaxContractors != 20 {
		t.Fatalf("expected default contractor cap, got %d", cfg.MaxContractors)
	}
	if cfg.ProviderTimeout != 15*time.Second {
		t.Fatalf("expected default provider timeout, got %v", cfg.ProviderTimeout)
	}
}

func TestLoad_ParsesOverrides(t *testing.T) {
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("OUTREACH_MAX_CONTRACTORS", "5")
	t.Setenv("PROVIDER_TIMEOUT", "30s")
	t.Setenv("OUTBOUND_MSGS_PER_SEC", "2.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.SMTPPort != 2525 || cfg.MaxContractors != 5 {
		t.Fatalf("unexpected parsed values: %+v", cfg)
	}
	if cfg.ProviderTimeout != 30*time.Second || cfg.OutboundPerSec != 2.5 {
		t.Fatalf("unexpected parsed values: %+v", cfg)
	}
}

func TestLoad_RejectsUnparseableValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"SMTP_PORT", "not-a-port"},
		{"OUTREACH_MAX_CONTRACTORS", "many"},
		{"PROVIDER_TIMEOUT", "soon"},
		{"OUTBOUND_MSGS_PER_SEC", "fast"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			if err == nil {
				t.Fatalf("expected error for %s=%q", tt.key, tt.value)
			}
			if !strings.Contains(err.Error(), tt.key) {
				t.Fatalf("error must name the offending variable, got %v", err)
			}
		})
	}
}

func TestLoad_RejectsVoiceWithoutTwilio(t *testing.T) {
	t.Setenv("VOICE_ENABLED", "true")
	t.Setenv("TWILIO_ACCOUNT_SID", "")
	t.Setenv("TWILIO_AUTH_TOKEN", "")
	t.Setenv("TWILIO_PHONE_NUMBER", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when voice is enabled without twilio credentials")
	}
}
