package documents

import "time"

// Document is an uploaded study PDF together with its extracted text and
// generated summary.
type Document struct {
	ID         string
	UserID     string
	Title      string
	FileName   string
	StorageKey string
	Content    string
	Summary    string
	Processed  bool
	UploadedAt time.Time
	UpdatedAt  time.Time
}
