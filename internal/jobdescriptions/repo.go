package jobdescriptions

import "context"

// Repo defines persistence operations for job descriptions.
type Repo interface {
	Create(ctx context.Context, jd JobDescription) (JobDescription, error)
	GetByID(ctx context.Context, id int64) (JobDescription, error)
	List(ctx context.Context) ([]JobDescription, error)
}
