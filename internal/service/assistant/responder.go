// Package assistant delegates chat messages to a remote workflow engine
// and normalizes whatever shape it answers with into the structured
// response contract.
package assistant

import (
	"context"
	"errors"
	"fmt"

	"github.com/ruwais/masraf/internal/model/chat"
)

// Request is one user utterance to answer.
type Request struct {
	Message   string
	SessionID string
	Locale    chat.Locale
}

// Responder produces a structured response for a chat request. The
// webhook client and the model-backed responder both satisfy it.
type Responder interface {
	Respond(ctx context.Context, req Request) (chat.StructuredResponse, error)
}

// ErrMalformed reports a reply that could not be parsed into the
// structured contract.
var ErrMalformed = errors.New("malformed structured payload")

// RequestError is a non-2xx webhook reply.
type RequestError struct {
	Status int
	Body   string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("webhook returned status %d", e.Status)
}
