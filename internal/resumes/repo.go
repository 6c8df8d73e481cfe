package resumes

import "context"

// Repo defines persistence operations for resumes. Analysis payloads are
// write-once: there is no update.
type Repo interface {
	Create(ctx context.Context, r Resume) (Resume, error)
	GetByID(ctx context.Context, id int64) (Resume, error)
	List(ctx context.Context) ([]Resume, error)
}
