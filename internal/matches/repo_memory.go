package matches

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo. The optional existence
// checks stand in for the foreign keys the database enforces.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	data   []Match

	ResumeExists func(ctx context.Context, id int64) bool
	JobExists    func(ctx context.Context, id int64) bool
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{nextID: 1}
}

// Create stores a match, assigning an identifier and timestamps.
func (r *MemoryRepo) Create(ctx context.Context, m Match) (Match, error) {
	if err := ctx.Err(); err != nil {
		return Match{}, err
	}
	if r.ResumeExists != nil && !r.ResumeExists(ctx, m.ResumeID) {
		return Match{}, ErrReferenceNotFound
	}
	if r.JobExists != nil && !r.JobExists(ctx, m.JobDescriptionID) {
		return Match{}, ErrReferenceNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	m.ID = r.nextID
	m.CreatedAt = now
	m.UpdatedAt = now
	r.nextID++
	r.data = append(r.data, m)
	return m, nil
}

// GetByID returns a match by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (Match, error) {
	if err := ctx.Err(); err != nil {
		return Match{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.data {
		if r.data[i].ID == id {
			return r.data[i], nil
		}
	}
	return Match{}, ErrNotFound
}

// List returns all matches in insertion order.
func (r *MemoryRepo) List(ctx context.Context) ([]Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Match, len(r.data))
	copy(out, r.data)
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
