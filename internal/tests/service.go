package tests

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"smartx-backend/internal/ai"
	"smartx-backend/internal/documents"
	"smartx-backend/internal/shared/telemetry"
)

const questionsPerTest = 5

// ErrGenerationFailed reports that the AI produced no usable questions.
// Nothing is persisted in that case.
var ErrGenerationFailed = errors.New("could not generate test questions from this document")

// QuizGenerator is the slice of the AI gateway this service needs.
type QuizGenerator interface {
	GenerateQuiz(ctx context.Context, text string, count int) []ai.QuizItem
}

// DocumentReader resolves a document for its owner.
type DocumentReader interface {
	Get(ctx context.Context, userID, docID string) (documents.Document, error)
}

type Service struct {
	Repo Repo
	Docs DocumentReader
	AI   QuizGenerator
}

func NewService(repo Repo, docs DocumentReader, ai QuizGenerator) *Service {
	return &Service{Repo: repo, Docs: docs, AI: ai}
}

// Generate creates a quiz from the document's extracted text.
func (s *Service) Generate(ctx context.Context, userID, docID string) (Test, error) {
	doc, err := s.Docs.Get(ctx, userID, docID)
	if err != nil {
		return Test{}, err
	}

	questions := s.AI.GenerateQuiz(ctx, doc.Content, questionsPerTest)
	if len(questions) == 0 {
		telemetry.Warn("tests.generation_failed", map[string]any{"documentId": doc.ID})
		return Test{}, ErrGenerationFailed
	}

	test := Test{
		ID:         uuid.NewString(),
		UserID:     userID,
		DocumentID: doc.ID,
		Title:      "Test for " + doc.Title,
		Questions:  questions,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Repo.CreateTest(ctx, test); err != nil {
		return Test{}, err
	}
	telemetry.Info("tests.generated", map[string]any{
		"testId":     test.ID,
		"documentId": doc.ID,
		"questions":  len(questions),
	})
	return test, nil
}

// ListByDocument returns the quizzes generated for a document the user owns.
func (s *Service) ListByDocument(ctx context.Context, userID, docID string) ([]Test, error) {
	doc, err := s.Docs.Get(ctx, userID, docID)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListTestsByDocument(ctx, doc.ID)
}

// Get returns a test only if the given user owns it.
func (s *Service) Get(ctx context.Context, userID, testID string) (Test, error) {
	test, err := s.Repo.GetTestByID(ctx, testID)
	if err != nil {
		return Test{}, err
	}
	if test.UserID != userID {
		return Test{}, ErrNotFound
	}
	return test, nil
}

// Submit scores the answers against the test and records the attempt.
func (s *Service) Submit(ctx context.Context, userID, testID string, answers map[string]string) (Attempt, error) {
	test, err := s.Get(ctx, userID, testID)
	if err != nil {
		return Attempt{}, err
	}
	if answers == nil {
		answers = map[string]string{}
	}

	score, total := CalculateScore(test.Questions, answers)
	attempt := Attempt{
		ID:             uuid.NewString(),
		UserID:         userID,
		TestID:         test.ID,
		Answers:        answers,
		Score:          score,
		TotalQuestions: total,
		CompletedAt:    time.Now().UTC(),
	}
	if err := s.Repo.CreateAttempt(ctx, attempt); err != nil {
		return Attempt{}, err
	}
	telemetry.Info("tests.submitted", map[string]any{
		"attemptId": attempt.ID,
		"testId":    test.ID,
		"score":     score,
		"total":     total,
	})
	return attempt, nil
}

// GetAttempt returns an attempt only if the given user owns it.
func (s *Service) GetAttempt(ctx context.Context, userID, attemptID string) (Attempt, error) {
	attempt, err := s.Repo.GetAttemptByID(ctx, attemptID)
	if err != nil {
		return Attempt{}, err
	}
	if attempt.UserID != userID {
		return Attempt{}, ErrAttemptNotFound
	}
	return attempt, nil
}
