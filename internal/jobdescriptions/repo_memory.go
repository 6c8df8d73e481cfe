package jobdescriptions

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	data   []JobDescription
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{nextID: 1}
}

// Create stores a job description, assigning an identifier and timestamps.
func (r *MemoryRepo) Create(ctx context.Context, jd JobDescription) (JobDescription, error) {
	if err := ctx.Err(); err != nil {
		return JobDescription{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	jd.ID = r.nextID
	jd.CreatedAt = now
	jd.UpdatedAt = now
	r.nextID++
	r.data = append(r.data, jd)
	return jd, nil
}

// GetByID returns a job description by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (JobDescription, error) {
	if err := ctx.Err(); err != nil {
		return JobDescription{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.data {
		if r.data[i].ID == id {
			return r.data[i], nil
		}
	}
	return JobDescription{}, ErrNotFound
}

// List returns all job descriptions in insertion order.
func (r *MemoryRepo) List(ctx context.Context) ([]JobDescription, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]JobDescription, len(r.data))
	copy(out, r.data)
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
