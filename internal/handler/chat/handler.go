// Package chat exposes the conversation endpoints.
package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ruwais/masraf/internal/model/chat"
	chatService "github.com/ruwais/masraf/internal/service/chat"
	"github.com/ruwais/masraf/pkg/utils"
)

// Handler serves session management and message exchange.
type Handler struct {
	chatSvc    *chatService.Service
	controller *chatService.Controller
}

func New(chatSvc *chatService.Service, controller *chatService.Controller) *Handler {
	return &Handler{chatSvc: chatSvc, controller: controller}
}

// RegisterRoutes mounts the chat routes under the given router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat/session", h.handleCreateSession)
	r.Post("/chat", h.handleSendMessage)
	r.Get("/chat/{sessionID}/messages", h.handleTranscript)
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Locale string `json:"locale"`
	}
	// An empty or absent body means an English session.
	_ = json.NewDecoder(r.Body).Decode(&payload)

	session, err := h.chatSvc.CreateSession(r.Context(), chat.ParseLocale(payload.Locale))
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusCreated, session)
}

func (h *Handler) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID string `json:"sessionId"`
		Message   string `json:"message"`
		ChatInput string `json:"chatInput"`
		Locale    string `json:"locale"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.SessionID == "" {
		utils.RespondError(w, http.StatusBadRequest, "sessionId is required")
		return
	}

	// chatInput is the field name used on the delegation wire; accept it
	// here too so workflow callbacks can reuse the same payload.
	message := payload.Message
	if message == "" {
		message = payload.ChatInput
	}

	resp, err := h.controller.Send(r.Context(), payload.SessionID, message, chat.ParseLocale(payload.Locale))
	if err != nil {
		if errors.Is(err, chatService.ErrUnrecognized) {
			utils.RespondError(w, http.StatusUnprocessableEntity, "message not recognized")
			return
		}
		utils.RespondError(w, http.StatusBadGateway, "assistant unavailable")
		return
	}

	utils.RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleTranscript(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	messages, err := h.chatSvc.LoadTranscript(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, chatService.ErrSessionNotFound) {
			utils.RespondError(w, http.StatusNotFound, "session not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"sessionId": sessionID,
		"messages":  messages,
	})
}
