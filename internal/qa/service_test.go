package qa

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartx-backend/internal/documents"
)

type fakeAnswerer struct {
	answer  string
	lastCtx string
}

func (f *fakeAnswerer) Answer(ctx context.Context, question, docContext string) string {
	f.lastCtx = docContext
	return f.answer
}

type fakeDocs struct {
	doc documents.Document
	err error
}

func (f *fakeDocs) Get(ctx context.Context, userID, docID string) (documents.Document, error) {
	if f.err != nil {
		return documents.Document{}, f.err
	}
	return f.doc, nil
}

func TestAskStoresSession(t *testing.T) {
	repo := NewMemoryRepo()
	docs := &fakeDocs{doc: documents.Document{ID: "doc-1", UserID: "user-1", Content: "document text"}}
	ai := &fakeAnswerer{answer: "the answer"}
	svc := NewService(repo, docs, ai)

	session, err := svc.Ask(context.Background(), "user-1", "doc-1", "  What is this?  ")
	require.NoError(t, err)

	assert.Equal(t, "What is this?", session.Question)
	assert.Equal(t, "the answer", session.Answer)
	assert.Equal(t, "document text", ai.lastCtx)

	history, err := repo.ListByDocument(context.Background(), "doc-1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, session.ID, history[0].ID)
}

func TestAskValidatesQuestion(t *testing.T) {
	svc := NewService(NewMemoryRepo(), &fakeDocs{doc: documents.Document{ID: "doc-1"}}, &fakeAnswerer{})

	_, err := svc.Ask(context.Background(), "user-1", "doc-1", "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Ask(context.Background(), "user-1", "doc-1", strings.Repeat("q", maxQuestionChars+1))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAskUnknownDocument(t *testing.T) {
	svc := NewService(NewMemoryRepo(), &fakeDocs{err: documents.ErrNotFound}, &fakeAnswerer{})

	_, err := svc.Ask(context.Background(), "user-1", "missing", "question?")
	assert.ErrorIs(t, err, documents.ErrNotFound)
}

func TestHistoryNewestFirst(t *testing.T) {
	repo := NewMemoryRepo()
	docs := &fakeDocs{doc: documents.Document{ID: "doc-1", UserID: "user-1", Content: "text"}}
	svc := NewService(repo, docs, &fakeAnswerer{answer: "a"})

	first, err := svc.Ask(context.Background(), "user-1", "doc-1", "first?")
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	second, err := svc.Ask(context.Background(), "user-1", "doc-1", "second?")
	require.NoError(t, err)

	history, err := svc.History(context.Background(), "user-1", "doc-1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, first.ID, history[1].ID)
}
