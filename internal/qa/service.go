package qa

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"smartx-backend/internal/documents"
	"smartx-backend/internal/shared/telemetry"
)

const maxQuestionChars = 500

var ErrInvalidInput = errors.New("question is required and must be at most 500 characters")

// Answerer is the slice of the AI gateway this service needs.
type Answerer interface {
	Answer(ctx context.Context, question, docContext string) string
}

// DocumentReader resolves a document for its owner.
type DocumentReader interface {
	Get(ctx context.Context, userID, docID string) (documents.Document, error)
}

type Service struct {
	Repo Repo
	Docs DocumentReader
	AI   Answerer
}

func NewService(repo Repo, docs DocumentReader, ai Answerer) *Service {
	return &Service{Repo: repo, Docs: docs, AI: ai}
}

// Ask answers a question against the document's extracted text and records
// the exchange. The answer may be a degraded gateway message; the session is
// stored either way.
func (s *Service) Ask(ctx context.Context, userID, docID, question string) (Session, error) {
	question = strings.TrimSpace(question)
	if question == "" || len(question) > maxQuestionChars {
		return Session{}, ErrInvalidInput
	}

	doc, err := s.Docs.Get(ctx, userID, docID)
	if err != nil {
		return Session{}, err
	}

	answer := s.AI.Answer(ctx, question, doc.Content)

	session := Session{
		ID:         uuid.NewString(),
		UserID:     userID,
		DocumentID: doc.ID,
		Question:   question,
		Answer:     answer,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, session); err != nil {
		return Session{}, err
	}
	telemetry.Info("qa.asked", map[string]any{"documentId": doc.ID, "sessionId": session.ID})
	return session, nil
}

// History lists past sessions for a document the user owns, newest first.
func (s *Service) History(ctx context.Context, userID, docID string) ([]Session, error) {
	doc, err := s.Docs.Get(ctx, userID, docID)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListByDocument(ctx, doc.ID)
}
