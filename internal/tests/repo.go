package tests

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "test not found" }

var ErrAttemptNotFound = errAttemptNotFound{}

type errAttemptNotFound struct{}

func (errAttemptNotFound) Error() string { return "attempt not found" }

type Repo interface {
	CreateTest(ctx context.Context, test Test) error
	GetTestByID(ctx context.Context, id string) (Test, error)
	ListTestsByDocument(ctx context.Context, documentID string) ([]Test, error)
	CreateAttempt(ctx context.Context, attempt Attempt) error
	GetAttemptByID(ctx context.Context, id string) (Attempt, error)
	ListAttemptsByUser(ctx context.Context, userID string) ([]Attempt, error)
}
