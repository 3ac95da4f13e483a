package assistant

import (
	"context"
	"fmt"
	"log"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/ruwais/masraf/internal/config"
	"github.com/ruwais/masraf/internal/model/chat"
)

const systemPrompt = `You are a banking assistant for STC Bank customers. Answer in the
language given by the locale ("en" for English, "ar" for Arabic).

Reply with a single JSON object, no prose around it, in this shape:
{"message": "<your answer>", "ui": {"showAccounts": false, "showBeneficiaries": false,
"showCards": false, "showBills": false, "showSpendingBreakdown": false,
"showSubscriptions": false, "showRecommendations": false, "transferPreview": null,
"transferSuccess": null, "exchangeRate": null, "requestOtp": false}}

Set a show flag to true only when the customer asked to see that data.`

// ModelResponder answers via a hosted chat model instead of the
// workflow webhook. It satisfies the same Responder contract, so the
// chat controller does not care which backend is wired in.
type ModelResponder struct {
	chain compose.Runnable[map[string]any, *schema.Message]
}

func NewModelResponder(ctx context.Context, cfg config.AssistantConfig) (*ModelResponder, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.UserMessage("locale: {locale}\nmessage: {query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("compile chat chain: %w", err)
	}

	return &ModelResponder{chain: runnable}, nil
}

func (m *ModelResponder) Respond(ctx context.Context, req Request) (chat.StructuredResponse, error) {
	input := map[string]any{
		"system": systemPrompt,
		"locale": string(req.Locale),
		"query":  req.Message,
	}

	message, err := m.chain.Invoke(ctx, input)
	if err != nil {
		return chat.StructuredResponse{}, fmt.Errorf("run assistant chain: %w", err)
	}

	resp, err := ExtractStructured(message.Content)
	if err != nil {
		return chat.StructuredResponse{}, err
	}
	log.Printf("[assistant] model response session=%s length=%d", req.SessionID, len(resp.Message))
	if resp.SessionID == "" {
		resp.SessionID = req.SessionID
	}
	return resp, nil
}
