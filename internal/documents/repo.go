package documents

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "document not found" }

var ErrInvalidInput = errInvalidInput{}

type errInvalidInput struct{}

func (errInvalidInput) Error() string { return "invalid input" }

type Repo interface {
	Create(ctx context.Context, doc Document) error
	// UpdateProcessing replaces content, summary and the processed flag after
	// the extraction pipeline runs.
	UpdateProcessing(ctx context.Context, id, content, summary string, processed bool) error
	GetByID(ctx context.Context, id string) (Document, error)
	ListByUser(ctx context.Context, userID string) ([]Document, error)
}
