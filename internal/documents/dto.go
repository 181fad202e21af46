package documents

import "time"

// DocumentSummary is the list-view representation of a document.
type DocumentSummary struct {
	DocumentID string    `json:"documentId"`
	Title      string    `json:"title"`
	FileName   string    `json:"fileName"`
	Processed  bool      `json:"processed"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// DocumentDetail adds the extracted content and summary. Warning is set only
// when processing degraded, so clients need not infer it from the flag.
type DocumentDetail struct {
	DocumentSummary
	Content   string    `json:"content"`
	Summary   string    `json:"summary"`
	Warning   string    `json:"warning,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toSummary(doc Document) DocumentSummary {
	return DocumentSummary{
		DocumentID: doc.ID,
		Title:      doc.Title,
		FileName:   doc.FileName,
		Processed:  doc.Processed,
		UploadedAt: doc.UploadedAt,
	}
}

func toDetail(doc Document) DocumentDetail {
	detail := DocumentDetail{
		DocumentSummary: toSummary(doc),
		Content:         doc.Content,
		Summary:         doc.Summary,
		UpdatedAt:       doc.UpdatedAt,
	}
	if !doc.Processed {
		detail.Warning = MsgUnreadablePDF
	}
	return detail
}
