package extract

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"smartx-backend/internal/shared/telemetry"
)

const (
	// errorMarker prefixes every extraction-failure sentinel. Callers use
	// Failed instead of comparing strings themselves.
	errorMarker = "Error"

	// NoTextSentinel is returned when a structurally valid PDF yields no text.
	NoTextSentinel = "No readable text found in the PDF. Please ensure the PDF contains text content."
)

// Failed reports whether an extraction result is a failure sentinel rather
// than document text.
func Failed(text string) bool {
	return strings.HasPrefix(text, errorMarker)
}

// Text extracts text from a PDF stream, page by page. The stream is rewound
// before reading. A page that cannot be decoded is logged and skipped; a
// stream-level failure produces an error sentinel instead of an error value.
func Text(r io.ReadSeeker) string {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return errorSentinel(err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return errorSentinel(err)
	}
	return FromBytes(data)
}

// FromBytes extracts text from an in-memory PDF payload.
func FromBytes(data []byte) (result string) {
	// The pdf package panics on some malformed files; treat that the same
	// as any other unreadable stream.
	defer func() {
		if rec := recover(); rec != nil {
			result = errorSentinel(fmt.Errorf("%v", rec))
		}
	}()

	if len(data) == 0 {
		return errorSentinel(fmt.Errorf("empty file"))
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return errorSentinel(err)
	}

	var pages []string
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		text, err := pageText(reader, pageNum)
		if err != nil {
			telemetry.Warn("extract.page_failed", map[string]any{
				"page": pageNum,
				"err":  err.Error(),
			})
			continue
		}
		if text != "" {
			pages = append(pages, text)
		}
	}

	content := strings.TrimSpace(strings.Join(pages, "\n"))
	if content == "" {
		return NoTextSentinel
	}
	return content
}

func pageText(reader *pdf.Reader, pageNum int) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("page %d: %v", pageNum, rec)
		}
	}()

	page := reader.Page(pageNum)
	if page.V.IsNull() {
		return "", fmt.Errorf("page %d: missing page object", pageNum)
	}
	return page.GetPlainText(nil)
}

func errorSentinel(err error) string {
	return fmt.Sprintf("%s reading PDF file: %v", errorMarker, err)
}
