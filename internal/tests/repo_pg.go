package tests

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"smartx-backend/internal/ai"
)

type PGRepo struct {
	DB *sql.DB
}

var _ Repo = (*PGRepo)(nil)

func (r *PGRepo) CreateTest(ctx context.Context, test Test) error {
	questions, err := json.Marshal(test.Questions)
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}
	const query = `
INSERT INTO tests (id, user_id, document_id, title, questions, created_at)
VALUES ($1, $2, $3, $4, $5, now())`
	_, err = r.DB.ExecContext(ctx, query,
		test.ID,
		test.UserID,
		test.DocumentID,
		test.Title,
		questions,
	)
	return err
}

func (r *PGRepo) GetTestByID(ctx context.Context, id string) (Test, error) {
	const query = `
SELECT id, user_id, document_id, title, questions, created_at
FROM tests
WHERE id = $1
LIMIT 1`
	var test Test
	var questions []byte
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&test.ID,
		&test.UserID,
		&test.DocumentID,
		&test.Title,
		&questions,
		&test.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Test{}, ErrNotFound
		}
		return Test{}, err
	}
	if err := json.Unmarshal(questions, &test.Questions); err != nil {
		return Test{}, fmt.Errorf("unmarshal questions: %w", err)
	}
	return test, nil
}

func (r *PGRepo) ListTestsByDocument(ctx context.Context, documentID string) ([]Test, error) {
	const query = `
SELECT id, user_id, document_id, title, questions, created_at
FROM tests
WHERE document_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, documentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]Test, 0)
	for rows.Next() {
		var test Test
		var questions []byte
		if err := rows.Scan(
			&test.ID,
			&test.UserID,
			&test.DocumentID,
			&test.Title,
			&questions,
			&test.CreatedAt,
		); err != nil {
			return nil, err
		}
		var items []ai.QuizItem
		if err := json.Unmarshal(questions, &items); err != nil {
			return nil, fmt.Errorf("unmarshal questions: %w", err)
		}
		test.Questions = items
		result = append(result, test)
	}
	return result, rows.Err()
}

func (r *PGRepo) CreateAttempt(ctx context.Context, attempt Attempt) error {
	answers, err := json.Marshal(attempt.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	const query = `
INSERT INTO test_attempts (id, user_id, test_id, answers, score, total_questions, completed_at)
VALUES ($1, $2, $3, $4, $5, $6, now())`
	_, err = r.DB.ExecContext(ctx, query,
		attempt.ID,
		attempt.UserID,
		attempt.TestID,
		answers,
		attempt.Score,
		attempt.TotalQuestions,
	)
	return err
}

func (r *PGRepo) GetAttemptByID(ctx context.Context, id string) (Attempt, error) {
	const query = `
SELECT id, user_id, test_id, answers, score, total_questions, completed_at
FROM test_attempts
WHERE id = $1
LIMIT 1`
	var attempt Attempt
	var answers []byte
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&attempt.ID,
		&attempt.UserID,
		&attempt.TestID,
		&answers,
		&attempt.Score,
		&attempt.TotalQuestions,
		&attempt.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Attempt{}, ErrAttemptNotFound
		}
		return Attempt{}, err
	}
	if err := json.Unmarshal(answers, &attempt.Answers); err != nil {
		return Attempt{}, fmt.Errorf("unmarshal answers: %w", err)
	}
	return attempt, nil
}

func (r *PGRepo) ListAttemptsByUser(ctx context.Context, userID string) ([]Attempt, error) {
	const query = `
SELECT id, user_id, test_id, answers, score, total_questions, completed_at
FROM test_attempts
WHERE user_id = $1
ORDER BY completed_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]Attempt, 0)
	for rows.Next() {
		var attempt Attempt
		var answers []byte
		if err := rows.Scan(
			&attempt.ID,
			&attempt.UserID,
			&attempt.TestID,
			&answers,
			&attempt.Score,
			&attempt.TotalQuestions,
			&attempt.CompletedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(answers, &attempt.Answers); err != nil {
			return nil, fmt.Errorf("unmarshal answers: %w", err)
		}
		result = append(result, attempt)
	}
	return result, rows.Err()
}
