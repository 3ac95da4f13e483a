package chat

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/ruwais/masraf/internal/analysis/intent"
	"github.com/ruwais/masraf/internal/model/bank"
	"github.com/ruwais/masraf/internal/model/chat"
	"github.com/ruwais/masraf/internal/service/assistant"
	"github.com/ruwais/masraf/internal/service/rates"
	"github.com/ruwais/masraf/internal/service/responder"
	"github.com/ruwais/masraf/internal/service/session"
)

// ErrUnrecognized means neither the remote assistant nor the local
// engine produced an answer for the message.
var ErrUnrecognized = errors.New("message not recognized")

// Controller answers chat messages. Exchange-rate questions are handled
// locally for reliability; everything else goes to the remote assistant
// when one is wired in, with the local engine as fallback.
type Controller struct {
	transcripts *Service
	remote      assistant.Responder
	synth       *responder.Synthesizer
	store       bank.Store
	cache       *session.Cache
}

// NewController wires the message-answering pipeline. remote may be nil,
// in which case every message is answered locally.
func NewController(transcripts *Service, remote assistant.Responder, synth *responder.Synthesizer, store bank.Store, cache *session.Cache) *Controller {
	return &Controller{
		transcripts: transcripts,
		remote:      remote,
		synth:       synth,
		store:       store,
		cache:       cache,
	}
}

// Send answers one user message and records both sides of the exchange
// in the transcript.
func (c *Controller) Send(ctx context.Context, sessionID, content string, locale chat.Locale) (chat.StructuredResponse, error) {
	if sess, err := c.transcripts.GetSession(ctx, sessionID); err == nil {
		locale = sess.Locale
	}

	c.record(ctx, sessionID, chat.RoleUser, content)

	resp, err := c.answer(ctx, sessionID, content, locale)
	if err != nil {
		return chat.StructuredResponse{}, err
	}
	if resp.SessionID == "" {
		resp.SessionID = sessionID
	}

	c.record(ctx, sessionID, chat.RoleAssistant, resp.Message)
	return resp, nil
}

func (c *Controller) answer(ctx context.Context, sessionID, content string, locale chat.Locale) (chat.StructuredResponse, error) {
	// Rate questions never leave the process: the remote workflow is
	// flaky on them and the table is local anyway.
	if q, ok := rates.DetectQuery(content); ok {
		return c.synth.ExchangeRate(q, sessionID, locale), nil
	}

	if c.remote != nil {
		resp, err := c.remote.Respond(ctx, assistant.Request{
			Message:   content,
			SessionID: sessionID,
			Locale:    locale,
		})
		if err == nil {
			return c.enrich(resp, sessionID), nil
		}

		log.Printf("[chat] remote assistant failed session=%s err=%v, trying local fallback", sessionID, err)
		if match, ok := intent.Detect(content); ok {
			return c.synth.Synthesize(match, sessionID, locale), nil
		}
		return chat.StructuredResponse{}, err
	}

	if match, ok := intent.Detect(content); ok {
		return c.synth.Synthesize(match, sessionID, locale), nil
	}
	return chat.StructuredResponse{}, ErrUnrecognized
}

// enrich fills in the entity data referenced by the response's show
// flags. The remote assistant sends directives only; the data lives
// here.
func (c *Controller) enrich(resp chat.StructuredResponse, sessionID string) chat.StructuredResponse {
	if resp.UI.ShowAccounts && len(resp.Accounts) == 0 {
		resp.Accounts = c.store.Accounts()
	}
	if resp.UI.ShowBeneficiaries && len(resp.Beneficiaries) == 0 {
		resp.Beneficiaries = c.store.Beneficiaries("")
	}
	if resp.UI.ShowCards && len(resp.Cards) == 0 {
		resp.Cards = c.store.Cards("")
	}
	if resp.UI.ShowBills && len(resp.Bills) == 0 {
		resp.Bills = c.store.Bills("", "")
	}
	if resp.UI.ShowSubscriptions && len(resp.Subscriptions) == 0 {
		resp.Subscriptions = c.store.Subscriptions(nil)
	}
	if resp.UI.ShowSpendingBreakdown && len(resp.SpendingBreakdown) == 0 {
		resp.SpendingBreakdown = c.cache.Spending(sessionID).Breakdown
	}

	if resp.UI.ShowSpendingBreakdown && len(resp.Recommendations) == 0 {
		resp.UI.ShowRecommendations = true
		resp.Recommendations = responder.Recommend(c.store.Products(""), responder.RecommendContext{HighSpending: true}, 3)
		if resp.RecommendationsIntro == "" {
			resp.RecommendationsIntro = "Based on your spending patterns, here are some products that might help you save:"
			resp.RecommendationsIntroAr = "بناءً على أنماط إنفاقك، إليك بعض المنتجات التي قد تساعدك على التوفير:"
		}
	} else if resp.UI.ShowRecommendations && len(resp.Recommendations) == 0 {
		resp.Recommendations = responder.Recommend(c.store.Products(""), responder.RecommendContext{}, 3)
		if resp.RecommendationsIntro == "" {
			resp.RecommendationsIntro = "Based on your recent activity, here are some products you might be interested in:"
			resp.RecommendationsIntroAr = "بناءً على نشاطك الأخير، إليك بعض المنتجات التي قد تهمك:"
		}
	}
	return resp
}

func (c *Controller) record(ctx context.Context, sessionID string, role chat.Role, content string) {
	if sessionID == "" || strings.TrimSpace(content) == "" {
		return
	}
	if err := c.transcripts.SaveMessage(ctx, chat.Message{
		SessionID: sessionID,
		Role:      role,
		Content:   content,
	}); err != nil && !errors.Is(err, ErrSessionNotFound) {
		log.Printf("[chat] save message failed session=%s err=%v", sessionID, err)
	}
}
