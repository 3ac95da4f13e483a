package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

type fakeTranscriber struct {
	text     string
	err      error
	filename string
	audio    []byte
}

func (f *fakeTranscriber) Transcribe(_ context.Context, filename string, audio io.Reader) (string, error) {
	f.filename = filename
	f.audio, _ = io.ReadAll(audio)
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func setupRouter(transcriber Transcriber) *chi.Mux {
	r := chi.NewRouter()
	New(transcriber).RegisterRoutes(r)
	return r
}

func audioRequest(t *testing.T, field, filename string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/speech/transcriptions", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestTranscribeSuccess(t *testing.T) {
	fake := &fakeTranscriber{text: "what is my balance"}
	r := setupRouter(fake)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, audioRequest(t, "audio", "clip.wav", []byte("audio-bytes")))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var body struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Text != "what is my balance" {
		t.Fatalf("unexpected text %q", body.Text)
	}
	if fake.filename != "clip.wav" {
		t.Fatalf("expected filename forwarded, got %q", fake.filename)
	}
	if string(fake.audio) != "audio-bytes" {
		t.Fatalf("expected audio forwarded, got %q", fake.audio)
	}
}

func TestTranscribeUnconfigured(t *testing.T) {
	r := setupRouter(nil)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, audioRequest(t, "audio", "clip.wav", []byte("audio-bytes")))

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
}

func TestTranscribeMissingAudioField(t *testing.T) {
	r := setupRouter(&fakeTranscriber{text: "unused"})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, audioRequest(t, "file", "clip.wav", []byte("audio-bytes")))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestTranscribeBackendFailure(t *testing.T) {
	r := setupRouter(&fakeTranscriber{err: errors.New("upstream refused")})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, audioRequest(t, "audio", "clip.wav", []byte("audio-bytes")))

	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.Code)
	}
}
