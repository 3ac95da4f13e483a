package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/ruwais/masraf/internal/config"
	"github.com/ruwais/masraf/internal/model/chat"
)

// WebhookResponder forwards messages to the remote workflow endpoint.
// It fails fast: any transport or parse failure surfaces to the caller,
// which owns the local fallback decision.
type WebhookResponder struct {
	cfg    config.WebhookConfig
	client *http.Client
}

func NewWebhookResponder(cfg config.WebhookConfig) *WebhookResponder {
	return &WebhookResponder{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// webhookPayload is the wire request. Field names are the contract with
// the workflow engine.
type webhookPayload struct {
	ChatInput string `json:"chatInput"`
	SessionID string `json:"sessionId"`
	Locale    string `json:"locale"`
	Client    string `json:"client"`
	APIURL    string `json:"apiUrl"`
}

// webhookEnvelope wraps the reply. The structured field may be a JSON
// object, a JSON string holding an object, or absent entirely with the
// response fields at the top level.
type webhookEnvelope struct {
	Structured json.RawMessage `json:"structured"`
}

func (w *WebhookResponder) Respond(ctx context.Context, req Request) (chat.StructuredResponse, error) {
	payload := webhookPayload{
		ChatInput: req.Message,
		SessionID: req.SessionID,
		Locale:    string(req.Locale),
		Client:    w.cfg.ClientTag,
		APIURL:    w.cfg.CallbackURL,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return chat.StructuredResponse{}, fmt.Errorf("marshal webhook payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return chat.StructuredResponse{}, fmt.Errorf("build webhook request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(httpReq)
	if err != nil {
		return chat.StructuredResponse{}, fmt.Errorf("call webhook: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return chat.StructuredResponse{}, fmt.Errorf("read webhook reply: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("[assistant] webhook error status=%d session=%s", resp.StatusCode, req.SessionID)
		return chat.StructuredResponse{}, &RequestError{Status: resp.StatusCode, Body: string(raw)}
	}

	structured, err := decodeReply(raw)
	if err != nil {
		return chat.StructuredResponse{}, err
	}
	return structured, nil
}

// decodeReply normalizes the three reply shapes the workflow engine is
// known to produce.
func decodeReply(raw []byte) (chat.StructuredResponse, error) {
	var envelope webhookEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return chat.StructuredResponse{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if len(envelope.Structured) == 0 || string(envelope.Structured) == "null" {
		// No wrapper: the top level is the response itself.
		var flat struct {
			chat.StructuredResponse
			Response string `json:"response"`
		}
		if err := json.Unmarshal(raw, &flat); err != nil {
			return chat.StructuredResponse{}, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		resp := flat.StructuredResponse
		if resp.Message == "" {
			resp.Message = flat.Response
		}
		return resp, nil
	}

	// Object form.
	if envelope.Structured[0] == '{' {
		var resp chat.StructuredResponse
		if err := json.Unmarshal(envelope.Structured, &resp); err != nil {
			return chat.StructuredResponse{}, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return resp, nil
	}

	// String form, possibly wrapped in a markdown code fence.
	var text string
	if err := json.Unmarshal(envelope.Structured, &text); err != nil {
		return chat.StructuredResponse{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return ExtractStructured(text)
}
