package qa

import (
	"context"
	"sort"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

var _ Repo = (*MemoryRepo)(nil)

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{sessions: make(map[string]Session)}
}

func (r *MemoryRepo) Create(ctx context.Context, session Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}
	r.sessions[session.ID] = session
	return nil
}

func (r *MemoryRepo) ListByDocument(ctx context.Context, documentID string) ([]Session, error) {
	return r.list(ctx, func(s Session) bool { return s.DocumentID == documentID })
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Session, error) {
	return r.list(ctx, func(s Session) bool { return s.UserID == userID })
}

func (r *MemoryRepo) list(ctx context.Context, match func(Session) bool) ([]Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	sessions := make([]Session, 0)
	for _, s := range r.sessions {
		if match(s) {
			sessions = append(sessions, s)
		}
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})
	return sessions, nil
}
