package ai

import (
	"fmt"
	"strings"
)

// Kind is the closed set of failure categories for the completion service.
// Classification happens once, at the gateway boundary; callers only ever see
// the resulting message strings.
type Kind int

const (
	KindUnknown Kind = iota
	KindAuth
	KindRateLimited
	KindContentFiltered
)

func (k Kind) String() string {
	switch k {
	case KindAuth:
		return "auth_failure"
	case KindRateLimited:
		return "rate_limited"
	case KindContentFiltered:
		return "content_filtered"
	default:
		return "unknown"
	}
}

// Classify buckets a transport error by message. The upstream service reports
// failures as free text, so matching is necessarily on substrings.
func Classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api_key"),
		strings.Contains(msg, "api key"),
		strings.Contains(msg, "authentication"),
		strings.Contains(msg, "unauthenticated"):
		return KindAuth
	case strings.Contains(msg, "quota"), strings.Contains(msg, "limit"):
		return KindRateLimited
	case strings.Contains(msg, "safety"):
		return KindContentFiltered
	default:
		return KindUnknown
	}
}

// SummaryMessage maps a failure kind to the user-facing summary substitute.
func (k Kind) SummaryMessage(err error) string {
	switch k {
	case KindAuth:
		return "API authentication failed. Please check your Gemini API key configuration."
	case KindRateLimited:
		return "API quota exceeded. Please try again later or check your API limits."
	case KindContentFiltered:
		return "Content was filtered for safety reasons. Please try with different content."
	default:
		return fmt.Sprintf("Error generating summary: %v", err)
	}
}
