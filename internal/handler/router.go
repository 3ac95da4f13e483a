package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	bankHandler "github.com/ruwais/masraf/internal/handler/bank"
	chatHandler "github.com/ruwais/masraf/internal/handler/chat"
	speechHandler "github.com/ruwais/masraf/internal/handler/speech"
	bankModel "github.com/ruwais/masraf/internal/model/bank"
	chatService "github.com/ruwais/masraf/internal/service/chat"
	"github.com/ruwais/masraf/internal/service/session"
	speechService "github.com/ruwais/masraf/internal/service/speech"
	"github.com/ruwais/masraf/pkg/utils"
)

// NewRouter wires HTTP routes to core services. A nil transcriber
// registers the speech route in its unconfigured form.
func NewRouter(store bankModel.Store, cache *session.Cache, chatSvc *chatService.Service, controller *chatService.Controller, transcriber *speechService.Transcriber) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]any{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	r.Route("/api", func(api chi.Router) {
		bankHandler.New(store, cache).RegisterRoutes(api)
		chatHandler.New(chatSvc, controller).RegisterRoutes(api)

		// A nil *Transcriber must stay a nil interface for the 503 check.
		var tr speechHandler.Transcriber
		if transcriber != nil {
			tr = transcriber
		}
		speechHandler.New(tr).RegisterRoutes(api)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusNotFound, map[string]any{
			"error": "Not Found",
			"path":  r.URL.Path,
		})
	})

	return r
}
