package qa

import "time"

// Session is a single question asked about a document and the answer given.
type Session struct {
	ID         string    `json:"id"`
	UserID     string    `json:"-"`
	DocumentID string    `json:"documentId"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	CreatedAt  time.Time `json:"createdAt"`
}
