package progress

import (
	"context"
	"math"
	"time"

	"smartx-backend/internal/documents"
	"smartx-backend/internal/qa"
	"smartx-backend/internal/tests"
)

const (
	recentItemCount  = 5
	recentScoreCount = 10
)

// DocumentLister returns a user's documents, newest first.
type DocumentLister interface {
	List(ctx context.Context, userID string) ([]documents.Document, error)
}

// AttemptLister returns a user's test attempts, newest first.
type AttemptLister interface {
	ListAttemptsByUser(ctx context.Context, userID string) ([]tests.Attempt, error)
}

// SessionLister returns a user's QA sessions, newest first.
type SessionLister interface {
	ListByUser(ctx context.Context, userID string) ([]qa.Session, error)
}

// Score is one attempt as shown on the dashboard.
type Score struct {
	AttemptID      string  `json:"attemptId"`
	TestID         string  `json:"testId"`
	Score          int     `json:"score"`
	TotalQuestions int     `json:"totalQuestions"`
	Percentage     float64 `json:"percentage"`
	CompletedAt    string  `json:"completedAt"`
}

// DocumentItem is a document as shown on the dashboard.
type DocumentItem struct {
	DocumentID string    `json:"documentId"`
	Title      string    `json:"title"`
	Processed  bool      `json:"processed"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// SessionItem is a QA exchange as shown on the dashboard.
type SessionItem struct {
	SessionID  string    `json:"sessionId"`
	DocumentID string    `json:"documentId"`
	Question   string    `json:"question"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Report aggregates a user's study history: totals plus the ten most recent
// attempt scores.
type Report struct {
	TotalDocuments    int     `json:"totalDocuments"`
	TotalAttempts     int     `json:"totalAttempts"`
	AveragePercentage float64 `json:"averagePercentage"`
	RecentScores      []Score `json:"recentScores"`
}

// Dashboard is the landing-page overview.
type Dashboard struct {
	TotalDocuments     int            `json:"totalDocuments"`
	ProcessedDocuments int            `json:"processedDocuments"`
	TotalAttempts      int            `json:"totalAttempts"`
	TotalQASessions    int            `json:"totalQaSessions"`
	AveragePercentage  float64        `json:"averagePercentage"`
	RecentDocuments    []DocumentItem `json:"recentDocuments"`
	RecentScores       []Score        `json:"recentScores"`
	RecentSessions     []SessionItem  `json:"recentSessions"`
}

type Service struct {
	Docs     DocumentLister
	Attempts AttemptLister
	Sessions SessionLister
}

func NewService(docs DocumentLister, attempts AttemptLister, sessions SessionLister) *Service {
	return &Service{Docs: docs, Attempts: attempts, Sessions: sessions}
}

// Progress reports the user's totals and their most recent attempt scores.
func (s *Service) Progress(ctx context.Context, userID string) (Report, error) {
	docs, err := s.Docs.List(ctx, userID)
	if err != nil {
		return Report{}, err
	}
	attempts, err := s.Attempts.ListAttemptsByUser(ctx, userID)
	if err != nil {
		return Report{}, err
	}

	return Report{
		TotalDocuments:    len(docs),
		TotalAttempts:     len(attempts),
		AveragePercentage: averagePercentage(attempts),
		RecentScores:      toScores(attempts, recentScoreCount),
	}, nil
}

// Overview combines document, quiz and QA activity for the dashboard.
func (s *Service) Overview(ctx context.Context, userID string) (Dashboard, error) {
	docs, err := s.Docs.List(ctx, userID)
	if err != nil {
		return Dashboard{}, err
	}
	attempts, err := s.Attempts.ListAttemptsByUser(ctx, userID)
	if err != nil {
		return Dashboard{}, err
	}
	sessions, err := s.Sessions.ListByUser(ctx, userID)
	if err != nil {
		return Dashboard{}, err
	}

	processed := 0
	for _, doc := range docs {
		if doc.Processed {
			processed++
		}
	}

	recentDocs := make([]DocumentItem, 0, recentItemCount)
	for _, doc := range capLen(docs, recentItemCount) {
		recentDocs = append(recentDocs, DocumentItem{
			DocumentID: doc.ID,
			Title:      doc.Title,
			Processed:  doc.Processed,
			UploadedAt: doc.UploadedAt,
		})
	}

	recentSessions := make([]SessionItem, 0, recentItemCount)
	for _, session := range capLen(sessions, recentItemCount) {
		recentSessions = append(recentSessions, SessionItem{
			SessionID:  session.ID,
			DocumentID: session.DocumentID,
			Question:   session.Question,
			CreatedAt:  session.CreatedAt,
		})
	}

	return Dashboard{
		TotalDocuments:     len(docs),
		ProcessedDocuments: processed,
		TotalAttempts:      len(attempts),
		TotalQASessions:    len(sessions),
		AveragePercentage:  averagePercentage(attempts),
		RecentDocuments:    recentDocs,
		RecentScores:       toScores(attempts, recentItemCount),
		RecentSessions:     recentSessions,
	}, nil
}

func capLen[T any](items []T, limit int) []T {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}

func toScores(attempts []tests.Attempt, limit int) []Score {
	scores := make([]Score, 0, limit)
	for _, attempt := range capLen(attempts, limit) {
		scores = append(scores, Score{
			AttemptID:      attempt.ID,
			TestID:         attempt.TestID,
			Score:          attempt.Score,
			TotalQuestions: attempt.TotalQuestions,
			Percentage:     attempt.Percentage(),
			CompletedAt:    attempt.CompletedAt.UTC().Format(time.RFC3339),
		})
	}
	return scores
}

func averagePercentage(attempts []tests.Attempt) float64 {
	if len(attempts) == 0 {
		return 0
	}
	var sum float64
	for _, attempt := range attempts {
		sum += attempt.Percentage()
	}
	return math.Round(sum/float64(len(attempts))*100) / 100
}
