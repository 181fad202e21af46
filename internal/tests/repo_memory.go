package tests

import (
	"context"
	"sort"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu       sync.RWMutex
	tests    map[string]Test
	attempts map[string]Attempt
}

var _ Repo = (*MemoryRepo)(nil)

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		tests:    make(map[string]Test),
		attempts: make(map[string]Attempt),
	}
}

func (r *MemoryRepo) CreateTest(ctx context.Context, test Test) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if test.CreatedAt.IsZero() {
		test.CreatedAt = time.Now().UTC()
	}
	r.tests[test.ID] = test
	return nil
}

func (r *MemoryRepo) GetTestByID(ctx context.Context, id string) (Test, error) {
	if err := ctx.Err(); err != nil {
		return Test{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	test, ok := r.tests[id]
	if !ok {
		return Test{}, ErrNotFound
	}
	return test, nil
}

func (r *MemoryRepo) ListTestsByDocument(ctx context.Context, documentID string) ([]Test, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]Test, 0)
	for _, test := range r.tests {
		if test.DocumentID == documentID {
			result = append(result, test)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *MemoryRepo) CreateAttempt(ctx context.Context, attempt Attempt) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if attempt.CompletedAt.IsZero() {
		attempt.CompletedAt = time.Now().UTC()
	}
	r.attempts[attempt.ID] = attempt
	return nil
}

func (r *MemoryRepo) GetAttemptByID(ctx context.Context, id string) (Attempt, error) {
	if err := ctx.Err(); err != nil {
		return Attempt{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	attempt, ok := r.attempts[id]
	if !ok {
		return Attempt{}, ErrAttemptNotFound
	}
	return attempt, nil
}

func (r *MemoryRepo) ListAttemptsByUser(ctx context.Context, userID string) ([]Attempt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]Attempt, 0)
	for _, attempt := range r.attempts {
		if attempt.UserID == userID {
			result = append(result, attempt)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CompletedAt.After(result[j].CompletedAt)
	})
	return result, nil
}
