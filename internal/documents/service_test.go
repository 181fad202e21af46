package documents

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartx-backend/internal/extract"
	"smartx-backend/internal/shared/storage/object/local"
)

type fakeSummarizer struct {
	summary string
	calls   int
}

func (f *fakeSummarizer) Summarize(ctx context.Context, text string) string {
	f.calls++
	return f.summary
}

func newTestService(t *testing.T, summarizer Summarizer, extractFn func([]byte) string) *Service {
	t.Helper()
	svc := NewService(local.New(t.TempDir()), NewMemoryRepo(), summarizer)
	svc.Extract = extractFn
	return svc
}

func TestUploadReadableDocument(t *testing.T) {
	summarizer := &fakeSummarizer{summary: "a concise study summary"}
	svc := newTestService(t, summarizer, func([]byte) string {
		return strings.Repeat("extracted study text. ", 20)
	})

	doc, err := svc.Upload(context.Background(), "user-1", "Biology Notes", "notes.pdf", bytes.NewReader([]byte("%PDF-1.4")))
	require.NoError(t, err)

	assert.True(t, doc.Processed)
	assert.Equal(t, "a concise study summary", doc.Summary)
	assert.Contains(t, doc.Content, "extracted study text")
	assert.Equal(t, 1, summarizer.calls)

	stored, err := svc.Repo.GetByID(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.True(t, stored.Processed)
	assert.Equal(t, "a concise study summary", stored.Summary)
}

func TestUploadUnreadablePDFDegrades(t *testing.T) {
	summarizer := &fakeSummarizer{summary: "should not be called"}
	svc := newTestService(t, summarizer, func([]byte) string {
		return "Error reading PDF file: malformed xref table"
	})

	doc, err := svc.Upload(context.Background(), "user-1", "Broken", "broken.pdf", bytes.NewReader([]byte("not a pdf")))
	require.NoError(t, err, "extraction failure must not fail the upload")

	assert.False(t, doc.Processed)
	assert.Equal(t, MsgUnreadablePDF, doc.Summary)
	assert.Equal(t, "Error reading PDF file: malformed xref table", doc.Content)
	assert.Zero(t, summarizer.calls, "summarizer must not run on unreadable PDFs")
}

func TestUploadNoTextSentinelStillProcessed(t *testing.T) {
	// A PDF that parses but contains no text is not an extraction failure:
	// the sentinel is stored as content and the document is processed.
	summarizer := &fakeSummarizer{summary: "summary of nothing"}
	svc := newTestService(t, summarizer, func([]byte) string {
		return extract.NoTextSentinel
	})

	doc, err := svc.Upload(context.Background(), "user-1", "Scanned", "scan.pdf", bytes.NewReader([]byte("%PDF-1.4")))
	require.NoError(t, err)

	assert.True(t, doc.Processed)
	assert.Equal(t, extract.NoTextSentinel, doc.Content)
	assert.Equal(t, "summary of nothing", doc.Summary)
	assert.Equal(t, 1, summarizer.calls)
}

func TestUploadDegradedSummaryStillProcessed(t *testing.T) {
	// A gateway failure message is still a summary: the document counts as
	// processed because its text was extracted successfully.
	summarizer := &fakeSummarizer{summary: "API quota exceeded. Please try again later or check your API limits."}
	svc := newTestService(t, summarizer, func([]byte) string {
		return strings.Repeat("readable text ", 10)
	})

	doc, err := svc.Upload(context.Background(), "user-1", "Notes", "notes.pdf", bytes.NewReader([]byte("%PDF-1.4")))
	require.NoError(t, err)

	assert.True(t, doc.Processed)
	assert.Equal(t, summarizer.summary, doc.Summary)
}

func TestDetailWarningOnlyWhenDegraded(t *testing.T) {
	degraded := toDetail(Document{ID: "d1", Processed: false, Summary: MsgUnreadablePDF})
	assert.Equal(t, MsgUnreadablePDF, degraded.Warning)

	healthy := toDetail(Document{ID: "d2", Processed: true, Summary: "a summary"})
	assert.Empty(t, healthy.Warning)
}

func TestUploadRequiresTitle(t *testing.T) {
	svc := newTestService(t, &fakeSummarizer{}, func([]byte) string { return "text" })

	_, err := svc.Upload(context.Background(), "user-1", "   ", "notes.pdf", bytes.NewReader([]byte("x")))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetEnforcesOwnership(t *testing.T) {
	svc := newTestService(t, &fakeSummarizer{summary: "s"}, func([]byte) string {
		return strings.Repeat("text ", 20)
	})

	doc, err := svc.Upload(context.Background(), "owner", "Notes", "notes.pdf", bytes.NewReader([]byte("x")))
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), "intruder", doc.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := svc.Get(context.Background(), "owner", doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, got.ID)
}

func TestListNewestFirst(t *testing.T) {
	svc := newTestService(t, &fakeSummarizer{summary: "s"}, func([]byte) string {
		return strings.Repeat("text ", 20)
	})

	first, err := svc.Upload(context.Background(), "user-1", "First", "a.pdf", bytes.NewReader([]byte("x")))
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	second, err := svc.Upload(context.Background(), "user-1", "Second", "b.pdf", bytes.NewReader([]byte("x")))
	require.NoError(t, err)

	docs, err := svc.List(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, []string{second.ID, first.ID}, []string{docs[0].ID, docs[1].ID})
}
