package speech

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/ruwais/masraf/internal/config"
)

type fakeClient struct {
	failures int
	calls    int
	received []string
}

func (f *fakeClient) CreateTranscription(_ context.Context, req openai.AudioRequest) (openai.AudioResponse, error) {
	f.calls++
	data, _ := io.ReadAll(req.Reader)
	f.received = append(f.received, string(data))
	if f.calls <= f.failures {
		return openai.AudioResponse{}, errors.New("upstream unavailable")
	}
	return openai.AudioResponse{Text: "transfer one hundred riyal"}, nil
}

func newTestTranscriber(client transcriptionClient, attempts int) *Transcriber {
	return &Transcriber{client: client, model: "whisper-1", attempts: attempts, delay: time.Millisecond}
}

func TestTranscribeRetriesThenSucceeds(t *testing.T) {
	client := &fakeClient{failures: 1}
	tr := newTestTranscriber(client, 2)

	text, err := tr.Transcribe(context.Background(), "note.m4a", strings.NewReader("audio-bytes"))
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if text != "transfer one hundred riyal" {
		t.Errorf("text = %q", text)
	}
	if client.calls != 2 {
		t.Errorf("made %d calls, want 2", client.calls)
	}
	// Each attempt must see the full audio, not a drained reader.
	for i, body := range client.received {
		if body != "audio-bytes" {
			t.Errorf("attempt %d got body %q", i+1, body)
		}
	}
}

func TestTranscribeExhaustsAttempts(t *testing.T) {
	client := &fakeClient{failures: 10}
	tr := newTestTranscriber(client, 3)

	_, err := tr.Transcribe(context.Background(), "note.m4a", strings.NewReader("x"))
	if err == nil {
		t.Fatal("expected failure after exhausting attempts")
	}
	if client.calls != 3 {
		t.Errorf("made %d calls, want 3", client.calls)
	}
}

func TestTranscribeContextCancelBetweenRetries(t *testing.T) {
	client := &fakeClient{failures: 10}
	tr := &Transcriber{client: client, model: "whisper-1", attempts: 3, delay: time.Minute}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := tr.Transcribe(ctx, "note.m4a", strings.NewReader("x"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestNewTranscriberDisabled(t *testing.T) {
	if tr := NewTranscriber(config.SpeechConfig{Enabled: false}); tr != nil {
		t.Fatal("disabled config must yield a nil transcriber")
	}
}
