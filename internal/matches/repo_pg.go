package matches

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// foreignKeyViolation is the Postgres error code raised when an insert
// references a missing resume or job description.
const foreignKeyViolation = "23503"

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new match and returns it with server-assigned fields.
// A foreign-key violation is surfaced as ErrReferenceNotFound.
func (r *PGRepo) Create(ctx context.Context, m Match) (Match, error) {
	const query = `
INSERT INTO matches (
    user_id,
    resume_id,
    job_description_id,
    match_score,
    analysis_result,
    interview_questions
) VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, created_at, updated_at`

	var analysisResult, interviewQuestions any
	if len(m.AnalysisResult) > 0 {
		analysisResult = []byte(m.AnalysisResult)
	}
	if len(m.InterviewQuestions) > 0 {
		interviewQuestions = []byte(m.InterviewQuestions)
	}

	err := r.DB.QueryRowContext(
		ctx,
		query,
		m.UserID,
		m.ResumeID,
		m.JobDescriptionID,
		m.MatchScore,
		analysisResult,
		interviewQuestions,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return Match{}, ErrReferenceNotFound
		}
		return Match{}, err
	}
	return m, nil
}

// GetByID fetches a match by ID.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (Match, error) {
	const query = `
SELECT id, user_id, resume_id, job_description_id, match_score, analysis_result, interview_questions, created_at, updated_at
FROM matches
WHERE id = $1`

	m, err := scanMatch(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Match{}, ErrNotFound
		}
		return Match{}, err
	}
	return m, nil
}

// List returns all matches in insertion order.
func (r *PGRepo) List(ctx context.Context) ([]Match, error) {
	const query = `
SELECT id, user_id, resume_id, job_description_id, match_score, analysis_result, interview_questions, created_at, updated_at
FROM matches
ORDER BY id`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Match{}
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatch(row rowScanner) (Match, error) {
	var m Match
	var analysisResult, interviewQuestions []byte
	if err := row.Scan(
		&m.ID,
		&m.UserID,
		&m.ResumeID,
		&m.JobDescriptionID,
		&m.MatchScore,
		&analysisResult,
		&interviewQuestions,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return Match{}, err
	}
	if len(analysisResult) > 0 {
		m.AnalysisResult = analysisResult
	}
	if len(interviewQuestions) > 0 {
		m.InterviewQuestions = interviewQuestions
	}
	return m, nil
}

var _ Repo = (*PGRepo)(nil)
