package documents

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"smartx-backend/internal/extract"
	"smartx-backend/internal/shared/storage/object"
	"smartx-backend/internal/shared/telemetry"
)

// MsgUnreadablePDF replaces the summary when no text could be extracted.
const MsgUnreadablePDF = "Unable to process this PDF. Please ensure it contains readable text."

// Summarizer is the slice of the AI gateway this service needs.
type Summarizer interface {
	Summarize(ctx context.Context, text string) string
}

// Service contains business logic for documents. Extract is swappable so the
// pipeline can be tested without real PDF bytes; when nil it defaults to
// extract.FromBytes.
type Service struct {
	Store   object.ObjectStore
	Repo    Repo
	AI      Summarizer
	Extract func(data []byte) string
}

func NewService(store object.ObjectStore, repo Repo, ai Summarizer) *Service {
	return &Service{Store: store, Repo: repo, AI: ai}
}

// Upload stores the PDF, records the document, then runs extraction and
// summarization in-line. Extraction failures degrade the document rather than
// failing the upload: the request still succeeds with processed=false.
func (s *Service) Upload(ctx context.Context, userID, title, fileName string, r io.Reader) (Document, error) {
	title = strings.TrimSpace(title)
	if title == "" || fileName == "" {
		return Document{}, ErrInvalidInput
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, err
	}

	storageKey, size, err := s.Store.Save(ctx, userID, fileName, bytes.NewReader(data))
	if err != nil {
		return Document{}, err
	}

	doc := Document{
		ID:         uuid.NewString(),
		UserID:     userID,
		Title:      title,
		FileName:   fileName,
		StorageKey: storageKey,
		UploadedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}
	telemetry.Info("documents.uploaded", map[string]any{
		"documentId": doc.ID,
		"userId":     userID,
		"sizeBytes":  size,
	})

	return s.process(ctx, doc, data), nil
}

// process extracts text and generates the summary, then persists the outcome.
// Only the error sentinel selects the degraded path: a PDF that parses but
// yields no text is stored, summarized and marked processed like any other.
func (s *Service) process(ctx context.Context, doc Document, data []byte) Document {
	text := s.extractFn()(data)

	if extract.Failed(text) {
		doc.Content = text
		doc.Summary = MsgUnreadablePDF
		doc.Processed = false
	} else {
		doc.Content = text
		doc.Summary = s.AI.Summarize(ctx, text)
		doc.Processed = true
	}

	if err := s.Repo.UpdateProcessing(ctx, doc.ID, doc.Content, doc.Summary, doc.Processed); err != nil {
		telemetry.Warn("documents.process_update_failed", map[string]any{
			"documentId": doc.ID,
			"err":        err.Error(),
		})
		diagnostic := fmt.Sprintf("Processing error: %v", err)
		if err := s.Repo.UpdateProcessing(ctx, doc.ID, doc.Content, diagnostic, false); err == nil {
			doc.Summary = diagnostic
			doc.Processed = false
		}
	}
	doc.UpdatedAt = time.Now().UTC()
	return doc
}

// Get returns a document only if the given user owns it. Documents belonging
// to other users are reported as not found.
func (s *Service) Get(ctx context.Context, userID, docID string) (Document, error) {
	if userID == "" || docID == "" {
		return Document{}, ErrInvalidInput
	}
	doc, err := s.Repo.GetByID(ctx, docID)
	if err != nil {
		return Document{}, err
	}
	if doc.UserID != userID {
		return Document{}, ErrNotFound
	}
	return doc, nil
}

// List returns the user's documents, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Document, error) {
	if userID == "" {
		return nil, errors.New("user id required")
	}
	return s.Repo.ListByUser(ctx, userID)
}

func (s *Service) extractFn() func(data []byte) string {
	if s.Extract != nil {
		return s.Extract
	}
	return extract.FromBytes
}
