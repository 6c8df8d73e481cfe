package jobdescriptions

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new job description and returns it with server-assigned fields.
func (r *PGRepo) Create(ctx context.Context, jd JobDescription) (JobDescription, error) {
	const query = `
INSERT INTO job_descriptions (
    user_id,
    title,
    company,
    description,
    requirements,
    location,
    salary_range,
    analysis_result
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, created_at, updated_at`

	var analysisResult any
	if len(jd.AnalysisResult) > 0 {
		analysisResult = []byte(jd.AnalysisResult)
	}

	err := r.DB.QueryRowContext(
		ctx,
		query,
		jd.UserID,
		jd.Title,
		jd.Company,
		jd.Description,
		nullString(jd.Requirements),
		nullString(jd.Location),
		nullString(jd.SalaryRange),
		analysisResult,
	).Scan(&jd.ID, &jd.CreatedAt, &jd.UpdatedAt)
	if err != nil {
		return JobDescription{}, err
	}
	return jd, nil
}

// GetByID fetches a job description by ID.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (JobDescription, error) {
	const query = `
SELECT id, user_id, title, company, description, requirements, location, salary_range, analysis_result, created_at, updated_at
FROM job_descriptions
WHERE id = $1`

	jd, err := scanJobDescription(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return JobDescription{}, ErrNotFound
		}
		return JobDescription{}, err
	}
	return jd, nil
}

// List returns all job descriptions in insertion order.
func (r *PGRepo) List(ctx context.Context) ([]JobDescription, error) {
	const query = `
SELECT id, user_id, title, company, description, requirements, location, salary_range, analysis_result, created_at, updated_at
FROM job_descriptions
ORDER BY id`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []JobDescription{}
	for rows.Next() {
		jd, err := scanJobDescription(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, jd)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJobDescription(row rowScanner) (JobDescription, error) {
	var jd JobDescription
	var requirements, location, salaryRange sql.NullString
	var analysisResult []byte
	if err := row.Scan(
		&jd.ID,
		&jd.UserID,
		&jd.Title,
		&jd.Company,
		&jd.Description,
		&requirements,
		&location,
		&salaryRange,
		&analysisResult,
		&jd.CreatedAt,
		&jd.UpdatedAt,
	); err != nil {
		return JobDescription{}, err
	}
	if requirements.Valid {
		jd.Requirements = requirements.String
	}
	if location.Valid {
		jd.Location = location.String
	}
	if salaryRange.Valid {
		jd.SalaryRange = salaryRange.String
	}
	if len(analysisResult) > 0 {
		jd.AnalysisResult = analysisResult
	}
	return jd, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

var _ Repo = (*PGRepo)(nil)
