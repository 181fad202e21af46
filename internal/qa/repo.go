package qa

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "qa session not found" }

type Repo interface {
	Create(ctx context.Context, session Session) error
	ListByDocument(ctx context.Context, documentID string) ([]Session, error)
	ListByUser(ctx context.Context, userID string) ([]Session, error)
}
