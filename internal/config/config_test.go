package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"PORT", "WEBHOOK_URL", "API_CALLBACK_URL", "CLIENT_TAG", "WEBHOOK_TIMEOUT",
		"ARK_API_KEY", "ARK_ACCESS_KEY", "ARK_SECRET_KEY", "ARK_MODEL", "ARK_BASE_URL",
		"ARK_REGION", "ARK_TEMPERATURE", "ARK_TOP_P", "ARK_MAX_TOKENS",
		"SPEECH_API_KEY", "SPEECH_BASE_URL", "SPEECH_MODEL",
		"SPEECH_RETRY_ATTEMPTS", "SPEECH_RETRY_DELAY", "SPEECH_TIMEOUT",
	}
	for _, key := range keys {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Fatalf("expected :8080, got %q", cfg.Server.Addr)
	}
	if cfg.Webhook.Enabled() {
		t.Fatal("webhook should be disabled without WEBHOOK_URL")
	}
	if cfg.Webhook.ClientTag != "masraf-backend" {
		t.Fatalf("unexpected client tag %q", cfg.Webhook.ClientTag)
	}
	if cfg.Webhook.Timeout != 20*time.Second {
		t.Fatalf("unexpected webhook timeout %v", cfg.Webhook.Timeout)
	}
	if cfg.Assistant.ModelEnabled() {
		t.Fatal("assistant model should be disabled without credentials")
	}
	if cfg.Speech.Enabled {
		t.Fatal("speech should be disabled without SPEECH_API_KEY")
	}
	if cfg.Speech.Model != "whisper-1" {
		t.Fatalf("unexpected speech model %q", cfg.Speech.Model)
	}
	if cfg.Speech.RetryAttempts != 2 {
		t.Fatalf("unexpected retry attempts %d", cfg.Speech.RetryAttempts)
	}
}

func TestLoadPortForms(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"9090", ":9090"},
		{":9090", ":9090"},
		{"127.0.0.1:9090", "127.0.0.1:9090"},
	}
	for _, tc := range cases {
		clearEnv(t)
		t.Setenv("PORT", tc.raw)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("PORT=%q: %v", tc.raw, err)
		}
		if cfg.Server.Addr != tc.want {
			t.Fatalf("PORT=%q: expected %q, got %q", tc.raw, tc.want, cfg.Server.Addr)
		}
	}
}

func TestLoadInvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "80 80")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for PORT with spaces")
	}
}

func TestLoadWebhook(t *testing.T) {
	clearEnv(t)
	t.Setenv("WEBHOOK_URL", "https://flows.example.com/webhook/bank")
	t.Setenv("API_CALLBACK_URL", "https://api.example.com")
	t.Setenv("WEBHOOK_TIMEOUT", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if !cfg.Webhook.Enabled() {
		t.Fatal("webhook should be enabled")
	}
	if cfg.Webhook.Timeout != 5*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.Webhook.Timeout)
	}
	if cfg.Webhook.CallbackURL != "https://api.example.com" {
		t.Fatalf("unexpected callback %q", cfg.Webhook.CallbackURL)
	}
}

func TestLoadWebhookTimeoutTooSmall(t *testing.T) {
	clearEnv(t)
	t.Setenv("WEBHOOK_TIMEOUT", "0")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero timeout")
	}
}

func TestAssistantModelEnabled(t *testing.T) {
	clearEnv(t)
	t.Setenv("ARK_MODEL", "doubao-pro-32k")
	t.Setenv("ARK_API_KEY", "test-key")
	t.Setenv("ARK_TEMPERATURE", "0.4")
	t.Setenv("ARK_MAX_TOKENS", "2048")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if !cfg.Assistant.ModelEnabled() {
		t.Fatal("assistant model should be enabled")
	}
	if cfg.Assistant.Temperature == nil || *cfg.Assistant.Temperature != 0.4 {
		t.Fatalf("unexpected temperature %v", cfg.Assistant.Temperature)
	}
	if cfg.Assistant.MaxTokens == nil || *cfg.Assistant.MaxTokens != 2048 {
		t.Fatalf("unexpected max tokens %v", cfg.Assistant.MaxTokens)
	}
}

func TestAssistantModelRequiresCredentials(t *testing.T) {
	clearEnv(t)
	t.Setenv("ARK_MODEL", "doubao-pro-32k")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Assistant.ModelEnabled() {
		t.Fatal("model without credentials should be disabled")
	}

	t.Setenv("ARK_ACCESS_KEY", "ak")
	t.Setenv("ARK_SECRET_KEY", "sk")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.Assistant.ModelEnabled() {
		t.Fatal("AK/SK pair should enable the model")
	}
}

func TestLoadInvalidNumericEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("ARK_TEMPERATURE", "warm")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric temperature")
	}
}

func TestLoadSpeech(t *testing.T) {
	clearEnv(t)
	t.Setenv("SPEECH_API_KEY", "sk-test")
	t.Setenv("SPEECH_RETRY_ATTEMPTS", "4")
	t.Setenv("SPEECH_TIMEOUT", "10")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if !cfg.Speech.Enabled {
		t.Fatal("speech should be enabled")
	}
	if cfg.Speech.RetryAttempts != 4 {
		t.Fatalf("unexpected retry attempts %d", cfg.Speech.RetryAttempts)
	}
	if cfg.Speech.Timeout != 10*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.Speech.Timeout)
	}
}
