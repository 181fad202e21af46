package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"smartx-backend/internal/ai"
)

func quizFixture() []ai.QuizItem {
	options := map[string]string{"A": "1", "B": "2", "C": "3", "D": "4"}
	return []ai.QuizItem{
		{Question: "Q1", Options: options, CorrectAnswer: "A"},
		{Question: "Q2", Options: options, CorrectAnswer: "B"},
		{Question: "Q3", Options: options, CorrectAnswer: "C"},
	}
}

func TestCalculateScore(t *testing.T) {
	questions := quizFixture()

	score, total := CalculateScore(questions, map[string]string{
		"question_0": "A",
		"question_1": "B",
		"question_2": "D",
	})
	assert.Equal(t, 2, score)
	assert.Equal(t, 3, total)
}

func TestCalculateScoreIgnoresUnknownKeys(t *testing.T) {
	questions := quizFixture()

	score, total := CalculateScore(questions, map[string]string{
		"question_0":  "A",
		"question_99": "B",
		"bogus":       "C",
	})
	assert.Equal(t, 1, score)
	assert.Equal(t, 3, total)
}

func TestCalculateScoreMissingAnswers(t *testing.T) {
	score, total := CalculateScore(quizFixture(), map[string]string{})
	assert.Equal(t, 0, score)
	assert.Equal(t, 3, total)
}

func TestPercentageRounding(t *testing.T) {
	attempt := Attempt{Score: 2, TotalQuestions: 3}
	assert.Equal(t, 66.67, attempt.Percentage())

	attempt = Attempt{Score: 1, TotalQuestions: 3}
	assert.Equal(t, 33.33, attempt.Percentage())

	attempt = Attempt{Score: 3, TotalQuestions: 3}
	assert.Equal(t, 100.0, attempt.Percentage())
}

func TestPercentageZeroQuestions(t *testing.T) {
	attempt := Attempt{Score: 0, TotalQuestions: 0}
	assert.Equal(t, 0.0, attempt.Percentage())
}
