package qa

import (
	"context"
	"database/sql"
)

type PGRepo struct {
	DB *sql.DB
}

var _ Repo = (*PGRepo)(nil)

func (r *PGRepo) Create(ctx context.Context, session Session) error {
	const query = `
INSERT INTO qa_sessions (id, user_id, document_id, question, answer, created_at)
VALUES ($1, $2, $3, $4, $5, now())`
	_, err := r.DB.ExecContext(ctx, query,
		session.ID,
		session.UserID,
		session.DocumentID,
		session.Question,
		session.Answer,
	)
	return err
}

func (r *PGRepo) ListByDocument(ctx context.Context, documentID string) ([]Session, error) {
	const query = `
SELECT id, user_id, document_id, question, answer, created_at
FROM qa_sessions
WHERE document_id = $1
ORDER BY created_at DESC`
	return r.list(ctx, query, documentID)
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Session, error) {
	const query = `
SELECT id, user_id, document_id, question, answer, created_at
FROM qa_sessions
WHERE user_id = $1
ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

func (r *PGRepo) list(ctx context.Context, query, arg string) ([]Session, error) {
	rows, err := r.DB.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]Session, 0)
	for rows.Next() {
		var s Session
		if err := rows.Scan(&s.ID, &s.UserID, &s.DocumentID, &s.Question, &s.Answer, &s.CreatedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
