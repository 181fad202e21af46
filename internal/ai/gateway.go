package ai

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"smartx-backend/internal/ai/gemini"
	"smartx-backend/internal/shared/telemetry"
)

// Completer is the single text-completion primitive every gateway operation
// is built on.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

const (
	// maxContextChars caps how much document text is embedded in a prompt.
	maxContextChars = 8000
	ellipsisMarker  = "..."

	minSummaryChars = 50
	minQuizChars    = 100
)

// Fixed operation responses. AI failures are degraded content, not request
// failures, so these strings are the gateway's entire error surface.
const (
	MsgSummaryUnavailable = "AI summarization is currently unavailable. Please check your API configuration."
	MsgAnswerUnavailable  = "AI Q&A is currently unavailable. Please check your API configuration."
	MsgContentTooShort    = "Document content is too short to generate a meaningful summary."
	MsgEmptySummary       = "Unable to generate summary. The AI service returned an empty response."
	MsgEmptyAnswer        = "Unable to generate an answer. Please try rephrasing your question."
	MsgMissingQAInputs    = "Please provide both a question and document context."
)

// Gateway wraps a Completer with the study-assistant operations. A gateway
// constructed without a usable client is permanently disabled: operations
// return fixed "unavailable" messages instead of failing the request.
type Gateway struct {
	client Completer
}

// New builds a gateway backed by the Gemini API. A blank API key or a client
// construction failure yields a disabled gateway.
func New(apiKey, model string) *Gateway {
	if strings.TrimSpace(apiKey) == "" {
		telemetry.Warn("ai.gateway_disabled", map[string]any{"reason": "missing api key"})
		return &Gateway{}
	}
	client, err := gemini.NewClient(apiKey, model)
	if err != nil {
		telemetry.Error("ai.gateway_disabled", map[string]any{"reason": err.Error()})
		return &Gateway{}
	}
	return &Gateway{client: client}
}

// NewWithCompleter builds a gateway around an existing completion client.
func NewWithCompleter(client Completer) *Gateway {
	return &Gateway{client: client}
}

// Available reports whether the gateway has a usable client.
func (g *Gateway) Available() bool {
	return g != nil && g.client != nil
}

// Summarize produces a study summary of the given document text.
func (g *Gateway) Summarize(ctx context.Context, text string) string {
	if !g.Available() {
		return MsgSummaryUnavailable
	}
	if len(strings.TrimSpace(text)) < minSummaryChars {
		return MsgContentTooShort
	}

	prompt := fmt.Sprintf(`Please provide a comprehensive summary of the following text.
Focus on key concepts, main ideas, and important details that would be useful for studying.
Make the summary clear, well-structured, and easy to understand.

Text to summarize:
%s

Please provide a detailed summary:`, truncate(text))

	resp, err := g.client.Complete(ctx, prompt)
	if err != nil {
		kind := Classify(err)
		telemetry.Error("ai.summarize_failed", map[string]any{"kind": kind.String(), "err": err.Error()})
		return kind.SummaryMessage(err)
	}
	if strings.TrimSpace(resp) == "" {
		return MsgEmptySummary
	}
	return strings.TrimSpace(resp)
}

// Answer answers a question using the document text as context.
func (g *Gateway) Answer(ctx context.Context, question, docContext string) string {
	if !g.Available() {
		return MsgAnswerUnavailable
	}
	if question == "" || docContext == "" {
		return MsgMissingQAInputs
	}

	prompt := fmt.Sprintf(`Based on the following document content, please answer the user's question accurately and comprehensively.
If the answer is not clearly available in the document, please indicate that.

Document Content:
%s

Question: %s

Please provide a detailed answer based on the document content:`, truncate(docContext), question)

	resp, err := g.client.Complete(ctx, prompt)
	if err != nil {
		kind := Classify(err)
		telemetry.Error("ai.answer_failed", map[string]any{"kind": kind.String(), "err": err.Error()})
		return fmt.Sprintf("Sorry, I couldn't process your question: %v", err)
	}
	if strings.TrimSpace(resp) == "" {
		return MsgEmptyAnswer
	}
	return strings.TrimSpace(resp)
}

func truncate(text string) string {
	if len(text) <= maxContextChars {
		return text
	}
	// Back up to a rune boundary so the cut never leaves a partial UTF-8
	// sequence in the prompt.
	cut := maxContextChars
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + ellipsisMarker
}
