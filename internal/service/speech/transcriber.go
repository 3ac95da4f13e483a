// Package speech converts voice notes to text through a hosted
// transcription API.
package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/ruwais/masraf/internal/config"
)

// Transcriber sends audio to the configured transcription backend with
// bounded retries. Returns the recognized text verbatim.
type Transcriber struct {
	client   transcriptionClient
	model    string
	attempts int
	delay    time.Duration
}

// transcriptionClient is the slice of the API client we use; tests
// substitute a fake.
type transcriptionClient interface {
	CreateTranscription(ctx context.Context, request openai.AudioRequest) (openai.AudioResponse, error)
}

// NewTranscriber builds a transcriber, or nil when no API key is
// configured. Callers treat a nil transcriber as "feature off".
func NewTranscriber(cfg config.SpeechConfig) *Transcriber {
	if !cfg.Enabled {
		return nil
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Transcriber{
		client:   openai.NewClientWithConfig(clientCfg),
		model:    cfg.Model,
		attempts: cfg.RetryAttempts,
		delay:    cfg.RetryDelay,
	}
}

// Transcribe recognizes the audio in one shot. The filename carries the
// container format hint for the backend.
func (t *Transcriber) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	data, err := io.ReadAll(audio)
	if err != nil {
		return "", fmt.Errorf("read audio: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= t.attempts; attempt++ {
		resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
			Model:    t.model,
			FilePath: filename,
			Reader:   bytes.NewReader(data),
		})
		if err == nil {
			return resp.Text, nil
		}
		lastErr = err
		log.Printf("[speech] transcription attempt %d/%d failed: %v", attempt, t.attempts, err)

		if attempt < t.attempts {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(t.delay):
			}
		}
	}
	return "", fmt.Errorf("transcription failed after %d attempts: %w", t.attempts, lastErr)
}
