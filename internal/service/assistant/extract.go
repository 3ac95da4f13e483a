package assistant

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/ruwais/masraf/internal/model/chat"
)

var codeFenceRe = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)\\s*```")

// ExtractStructured parses a structured response out of model text.
// Markdown code fences are stripped first; failing that, the outermost
// brace pair is taken as the candidate object.
func ExtractStructured(text string) (chat.StructuredResponse, error) {
	candidate := strings.TrimSpace(text)

	if m := codeFenceRe.FindStringSubmatch(candidate); m != nil {
		candidate = m[1]
	} else if start := strings.IndexByte(candidate, '{'); start >= 0 {
		if end := strings.LastIndexByte(candidate, '}'); end > start {
			candidate = candidate[start : end+1]
		}
	}

	var resp chat.StructuredResponse
	if err := json.Unmarshal([]byte(strings.TrimSpace(candidate)), &resp); err != nil {
		return chat.StructuredResponse{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return resp, nil
}
