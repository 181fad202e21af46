package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"smartx-backend/internal/shared/telemetry"
)

// QuizItem is one multiple-choice question: a prompt, exactly four labeled
// options, and the label of the correct one.
type QuizItem struct {
	Question      string            `json:"question"`
	Options       map[string]string `json:"options"`
	CorrectAnswer string            `json:"correct_answer"`
}

// ValidItem is the filtering predicate for generated quiz items: a question,
// a correct-answer label, and exactly four options. Items failing it are
// dropped, never surfaced as errors.
func ValidItem(item QuizItem) bool {
	if strings.TrimSpace(item.Question) == "" {
		return false
	}
	if strings.TrimSpace(item.CorrectAnswer) == "" {
		return false
	}
	return len(item.Options) == 4
}

// GenerateQuiz asks the completion service for count multiple-choice
// questions about the given text. It returns only the structurally valid
// items; on any failure it returns nil rather than an error.
func (g *Gateway) GenerateQuiz(ctx context.Context, text string, count int) []QuizItem {
	if !g.Available() {
		telemetry.Error("ai.quiz_unavailable", map[string]any{"reason": "gateway disabled"})
		return nil
	}
	if len(strings.TrimSpace(text)) < minQuizChars {
		telemetry.Warn("ai.quiz_skipped", map[string]any{"reason": "text too short"})
		return nil
	}

	prompt := fmt.Sprintf(`Based on the following text content, generate %d multiple choice questions for a quiz.
Each question should have 4 options (A, B, C, D) with only one correct answer.
Focus on key concepts, important facts, and main ideas from the text.

Please format your response as a JSON array with this exact structure:
[
    {
        "question": "Question text here",
        "options": {
            "A": "Option A text",
            "B": "Option B text",
            "C": "Option C text",
            "D": "Option D text"
        },
        "correct_answer": "A"
    }
]

Text Content:
%s`, count, truncate(text))

	resp, err := g.client.Complete(ctx, prompt)
	if err != nil {
		kind := Classify(err)
		telemetry.Error("ai.quiz_failed", map[string]any{"kind": kind.String(), "err": err.Error()})
		return nil
	}

	return parseQuizItems(resp)
}

// parseQuizItems locates the JSON array embedded in a raw model response and
// keeps the items that pass ValidItem.
func parseQuizItems(raw string) []QuizItem {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start < 0 || end <= start {
		telemetry.Error("ai.quiz_parse_failed", map[string]any{"reason": "no JSON array in response"})
		return nil
	}

	var items []QuizItem
	if err := json.Unmarshal([]byte(raw[start:end+1]), &items); err != nil {
		telemetry.Error("ai.quiz_parse_failed", map[string]any{"err": err.Error()})
		return nil
	}

	var valid []QuizItem
	for _, item := range items {
		if ValidItem(item) {
			valid = append(valid, item)
		}
	}
	if dropped := len(items) - len(valid); dropped > 0 {
		telemetry.Warn("ai.quiz_items_dropped", map[string]any{"dropped": dropped, "kept": len(valid)})
	}
	return valid
}
