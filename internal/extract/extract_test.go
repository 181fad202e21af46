package extract

import (
	"bytes"
	"strings"
	"testing"
)

func TestFromBytesCorruptFileReturnsSentinel(t *testing.T) {
	got := FromBytes([]byte("this is not a pdf"))
	if !Failed(got) {
		t.Fatalf("expected failure sentinel, got %q", got)
	}
	if !strings.HasPrefix(got, "Error reading PDF file:") {
		t.Fatalf("expected error marker prefix, got %q", got)
	}
}

func TestFromBytesEmptyReturnsSentinel(t *testing.T) {
	got := FromBytes(nil)
	if !Failed(got) {
		t.Fatalf("expected failure sentinel, got %q", got)
	}
}

func TestTextRewindsStream(t *testing.T) {
	data := []byte("garbage bytes, definitely not a pdf")
	r := bytes.NewReader(data)

	// Simulate a stream the caller already consumed.
	if _, err := r.Seek(0, 2); err != nil {
		t.Fatalf("seek: %v", err)
	}

	got := Text(r)
	if !Failed(got) {
		t.Fatalf("expected failure sentinel, got %q", got)
	}
	// The sentinel must come from parsing the full payload, not from an
	// empty read at the old position.
	if strings.Contains(got, "empty file") {
		t.Fatalf("stream was not rewound before reading: %q", got)
	}
}

func TestFailedPredicates(t *testing.T) {
	if Failed(NoTextSentinel) {
		t.Fatal("no-text sentinel is a non-fatal outcome, not an error sentinel")
	}
	if !Failed("Error reading PDF file: broken xref") {
		t.Fatal("expected error sentinel to be detected")
	}
	if Failed("Chapter 1: Errors and how to handle them") {
		// Document text that merely mentions errors must not trip the
		// prefix check.
		t.Fatal("document text misclassified as failure")
	}
}
