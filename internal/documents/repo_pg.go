package documents

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type PGRepo struct {
	DB *sql.DB
}

var _ Repo = (*PGRepo)(nil)

func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO documents (id, user_id, title, file_name, storage_key, content, summary, processed, uploaded_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())`
	_, err := r.DB.ExecContext(ctx, query,
		doc.ID,
		doc.UserID,
		doc.Title,
		doc.FileName,
		doc.StorageKey,
		doc.Content,
		doc.Summary,
		doc.Processed,
	)
	return err
}

func (r *PGRepo) UpdateProcessing(ctx context.Context, id, content, summary string, processed bool) error {
	const query = `
UPDATE documents
SET content = $2, summary = $3, processed = $4, updated_at = now()
WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id, content, summary, processed)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Document, error) {
	const query = `
SELECT id, user_id, title, file_name, storage_key, content, summary, processed, uploaded_at, updated_at
FROM documents
WHERE id = $1
LIMIT 1`
	var doc Document
	var updatedAt sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&doc.ID,
		&doc.UserID,
		&doc.Title,
		&doc.FileName,
		&doc.StorageKey,
		&doc.Content,
		&doc.Summary,
		&doc.Processed,
		&doc.UploadedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	if updatedAt.Valid {
		doc.UpdatedAt = updatedAt.Time
	} else {
		doc.UpdatedAt = time.Now().UTC()
	}
	return doc, nil
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Document, error) {
	const query = `
SELECT id, user_id, title, file_name, storage_key, content, summary, processed, uploaded_at, updated_at
FROM documents
WHERE user_id = $1
ORDER BY uploaded_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make([]Document, 0)
	for rows.Next() {
		var doc Document
		var updatedAt sql.NullTime
		if err := rows.Scan(
			&doc.ID,
			&doc.UserID,
			&doc.Title,
			&doc.FileName,
			&doc.StorageKey,
			&doc.Content,
			&doc.Summary,
			&doc.Processed,
			&doc.UploadedAt,
			&updatedAt,
		); err != nil {
			return nil, err
		}
		if updatedAt.Valid {
			doc.UpdatedAt = updatedAt.Time
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}
