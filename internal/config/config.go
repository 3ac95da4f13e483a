package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
)

// Config aggregates every runtime setting of the service.
type Config struct {
	Server    ServerConfig
	Webhook   WebhookConfig
	Assistant AssistantConfig
	Speech    SpeechConfig
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	webhook, err := loadWebhookConfig()
	if err != nil {
		return nil, err
	}

	assistant, err := loadAssistantConfig()
	if err != nil {
		return nil, err
	}

	speech, err := loadSpeechConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, Webhook: webhook, Assistant: assistant, Speech: speech}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" verbatim.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// WebhookConfig describes the remote assistant workflow endpoint. An
// empty URL disables delegation; every message is then answered by the
// local engine.
type WebhookConfig struct {
	URL         string
	CallbackURL string
	ClientTag   string
	Timeout     time.Duration
}

// Enabled reports whether remote delegation is configured.
func (c WebhookConfig) Enabled() bool {
	return c.URL != ""
}

func loadWebhookConfig() (WebhookConfig, error) {
	timeout, err := parseOptionalIntEnv("WEBHOOK_TIMEOUT")
	if err != nil {
		return WebhookConfig{}, err
	}
	timeoutSeconds := 20
	if timeout != nil {
		if *timeout < 1 {
			return WebhookConfig{}, fmt.Errorf("WEBHOOK_TIMEOUT must be at least 1 second, got %d", *timeout)
		}
		timeoutSeconds = *timeout
	}

	return WebhookConfig{
		URL:         strings.TrimSpace(os.Getenv("WEBHOOK_URL")),
		CallbackURL: strings.TrimSpace(os.Getenv("API_CALLBACK_URL")),
		ClientTag:   getEnvOrDefault("CLIENT_TAG", "masraf-backend"),
		Timeout:     time.Duration(timeoutSeconds) * time.Second,
	}, nil
}

// AssistantConfig describes the optional model-backed responder.
type AssistantConfig struct {
	APIKey      string
	AccessKey   string
	SecretKey   string
	Model       string
	BaseURL     string
	Region      string
	Temperature *float64
	TopP        *float64
	MaxTokens   *int
}

// ModelEnabled reports whether the required credentials are present.
func (c AssistantConfig) ModelEnabled() bool {
	return c.Model != "" && (c.APIKey != "" || (c.AccessKey != "" && c.SecretKey != ""))
}

// NewChatModel builds a model instance from the configuration.
func (c AssistantConfig) NewChatModel(ctx context.Context) (model.ChatModel, error) {
	if !c.ModelEnabled() {
		return nil, fmt.Errorf("missing Ark credentials: provide ARK_API_KEY + ARK_MODEL or the AK/SK pair")
	}

	var temperature *float32
	if c.Temperature != nil {
		val := float32(*c.Temperature)
		temperature = &val
	}

	var topP *float32
	if c.TopP != nil {
		val := float32(*c.TopP)
		topP = &val
	}

	cfg := &ark.ChatModelConfig{
		BaseURL:     c.BaseURL,
		Region:      c.Region,
		APIKey:      c.APIKey,
		AccessKey:   c.AccessKey,
		SecretKey:   c.SecretKey,
		Model:       c.Model,
		MaxTokens:   c.MaxTokens,
		Temperature: temperature,
		TopP:        topP,
	}

	return ark.NewChatModel(ctx, cfg)
}

func loadAssistantConfig() (AssistantConfig, error) {
	temperature, err := parseOptionalFloatEnv("ARK_TEMPERATURE")
	if err != nil {
		return AssistantConfig{}, err
	}

	topP, err := parseOptionalFloatEnv("ARK_TOP_P")
	if err != nil {
		return AssistantConfig{}, err
	}

	maxTokens, err := parseOptionalIntEnv("ARK_MAX_TOKENS")
	if err != nil {
		return AssistantConfig{}, err
	}

	return AssistantConfig{
		APIKey:      strings.TrimSpace(os.Getenv("ARK_API_KEY")),
		AccessKey:   strings.TrimSpace(os.Getenv("ARK_ACCESS_KEY")),
		SecretKey:   strings.TrimSpace(os.Getenv("ARK_SECRET_KEY")),
		Model:       strings.TrimSpace(os.Getenv("ARK_MODEL")),
		BaseURL:     getEnvOrDefault("ARK_BASE_URL", "https://ark.cn-beijing.volces.com/api/v3"),
		Region:      getEnvOrDefault("ARK_REGION", "cn-beijing"),
		Temperature: temperature,
		TopP:        topP,
		MaxTokens:   maxTokens,
	}, nil
}

// SpeechConfig describes the transcription backend. The service is
// disabled when no API key is configured.
type SpeechConfig struct {
	APIKey        string
	BaseURL       string
	Model         string
	RetryAttempts int
	RetryDelay    time.Duration
	Timeout       time.Duration
	Enabled       bool
}

func loadSpeechConfig() (SpeechConfig, error) {
	attempts := 2
	if override, err := parseOptionalIntEnv("SPEECH_RETRY_ATTEMPTS"); err != nil {
		return SpeechConfig{}, err
	} else if override != nil {
		if *override < 1 {
			attempts = 1
		} else {
			attempts = *override
		}
	}

	delaySeconds := 1
	if override, err := parseOptionalIntEnv("SPEECH_RETRY_DELAY"); err != nil {
		return SpeechConfig{}, err
	} else if override != nil && *override >= 0 {
		delaySeconds = *override
	}

	timeoutSeconds := 30
	if override, err := parseOptionalIntEnv("SPEECH_TIMEOUT"); err != nil {
		return SpeechConfig{}, err
	} else if override != nil && *override > 0 {
		timeoutSeconds = *override
	}

	apiKey := strings.TrimSpace(os.Getenv("SPEECH_API_KEY"))

	return SpeechConfig{
		APIKey:        apiKey,
		BaseURL:       getEnvOrDefault("SPEECH_BASE_URL", ""),
		Model:         getEnvOrDefault("SPEECH_MODEL", "whisper-1"),
		RetryAttempts: attempts,
		RetryDelay:    time.Duration(delaySeconds) * time.Second,
		Timeout:       time.Duration(timeoutSeconds) * time.Second,
		Enabled:       apiKey != "",
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
