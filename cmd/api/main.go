package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ruwais/masraf/internal/config"
	"github.com/ruwais/masraf/internal/handler"
	"github.com/ruwais/masraf/internal/model/bank"
	"github.com/ruwais/masraf/internal/service/assistant"
	"github.com/ruwais/masraf/internal/service/chat"
	"github.com/ruwais/masraf/internal/service/rates"
	"github.com/ruwais/masraf/internal/service/responder"
	"github.com/ruwais/masraf/internal/service/session"
	"github.com/ruwais/masraf/internal/service/speech"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Reference data, session-scoped generated data, local engine
	store := bank.NewMemoryStore(bank.Seed())
	cache := session.NewCache(rand.New(rand.NewSource(time.Now().UnixNano())))
	resolver := rates.NewResolver(store.Rates())
	synth := responder.New(store, cache, resolver)
	chatService := chat.NewService()

	// Remote assistant: webhook first, model second, local engine always
	var remote assistant.Responder
	switch {
	case cfg.Webhook.Enabled():
		remote = assistant.NewWebhookResponder(cfg.Webhook)
		log.Printf("remote assistant: webhook delegation to %s", cfg.Webhook.URL)
	case cfg.Assistant.ModelEnabled():
		modelResponder, err := assistant.NewModelResponder(ctx, cfg.Assistant)
		if err != nil {
			log.Printf("warning: failed to initialize model responder: %v", err)
			log.Println("continuing with the local engine only")
		} else {
			remote = modelResponder
			log.Println("remote assistant: Ark chat model")
		}
	default:
		log.Println("no remote assistant configured, using the local engine only")
	}

	controller := chat.NewController(chatService, remote, synth, store, cache)

	var transcriber *speech.Transcriber
	if cfg.Speech.Enabled {
		transcriber = speech.NewTranscriber(cfg.Speech)
		log.Println("speech transcription enabled")
	} else {
		log.Println("speech transcription not configured, endpoint disabled")
	}

	router := handler.NewRouter(store, cache, chatService, controller, transcriber)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Masraf backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
