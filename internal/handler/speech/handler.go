// Package speech exposes the audio transcription endpoint.
package speech

import (
	"context"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ruwais/masraf/pkg/utils"
)

// maxAudioBytes caps an uploaded clip at 25MB, the upstream API limit.
const maxAudioBytes = 25 << 20

// Transcriber abstracts the speech-to-text backend so tests can swap it.
type Transcriber interface {
	Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error)
}

// Handler serves speech-to-text requests. A nil transcriber means the
// feature is not configured; the route still responds, with 503.
type Handler struct {
	transcriber Transcriber
}

func New(transcriber Transcriber) *Handler {
	return &Handler{transcriber: transcriber}
}

// RegisterRoutes mounts the speech routes under the given router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/speech/transcriptions", h.handleTranscribe)
}

func (h *Handler) handleTranscribe(w http.ResponseWriter, r *http.Request) {
	if h.transcriber == nil {
		utils.RespondError(w, http.StatusServiceUnavailable, "speech transcription not configured")
		return
	}

	if err := r.ParseMultipartForm(maxAudioBytes); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "audio file is required")
		return
	}
	defer file.Close()

	text, err := h.transcriber.Transcribe(r.Context(), header.Filename, file)
	if err != nil {
		log.Printf("[speech] transcription failed: %v", err)
		utils.RespondError(w, http.StatusBadGateway, "transcription failed")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"text": text,
	})
}
