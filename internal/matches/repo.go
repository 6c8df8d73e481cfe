package matches

import "context"

// Repo defines persistence operations for matches. A match is written once
// with both payloads; there is no update.
type Repo interface {
	Create(ctx context.Context, m Match) (Match, error)
	GetByID(ctx context.Context, id int64) (Match, error)
	List(ctx context.Context) ([]Match, error)
}
