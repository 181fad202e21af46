package tests

import (
	"fmt"
	"math"
	"time"

	"smartx-backend/internal/ai"
)

// Test is a generated multiple-choice quiz for a document.
type Test struct {
	ID         string
	UserID     string
	DocumentID string
	Title      string
	Questions  []ai.QuizItem
	CreatedAt  time.Time
}

// Attempt is one submission of answers against a test. Answers are keyed
// "question_{index}"; keys that match no question are stored but ignored
// during scoring.
type Attempt struct {
	ID             string
	UserID         string
	TestID         string
	Answers        map[string]string
	Score          int
	TotalQuestions int
	CompletedAt    time.Time
}

// Percentage is the attempt's score as a percentage rounded to two decimal
// places. An attempt with no questions scores zero.
func (a Attempt) Percentage() float64 {
	if a.TotalQuestions == 0 {
		return 0
	}
	return math.Round(float64(a.Score)/float64(a.TotalQuestions)*100*100) / 100
}

// AnswerKey returns the submission key for the question at the given index.
func AnswerKey(index int) string {
	return fmt.Sprintf("question_%d", index)
}

// CalculateScore compares submitted answers against the questions. Every
// question counts toward the total; only exact matches on the correct option
// label score.
func CalculateScore(questions []ai.QuizItem, answers map[string]string) (score, total int) {
	total = len(questions)
	for i, q := range questions {
		if answers[AnswerKey(i)] == q.CorrectAnswer {
			score++
		}
	}
	return score, total
}
