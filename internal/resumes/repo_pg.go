package resumes

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new resume and returns it with server-assigned fields.
func (r *PGRepo) Create(ctx context.Context, res Resume) (Resume, error) {
	const query = `
INSERT INTO resumes (
    user_id,
    file_name,
    original_name,
    mime_type,
    file_size,
    extracted_text,
    analysis_result
) VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, created_at, updated_at`

	var analysisResult any
	if len(res.AnalysisResult) > 0 {
		analysisResult = []byte(res.AnalysisResult)
	}

	err := r.DB.QueryRowContext(
		ctx,
		query,
		res.UserID,
		res.FileName,
		res.OriginalName,
		res.MimeType,
		res.FileSize,
		res.ExtractedText,
		analysisResult,
	).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return Resume{}, err
	}
	return res, nil
}

// GetByID fetches a resume by ID.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (Resume, error) {
	const query = `
SELECT id, user_id, file_name, original_name, mime_type, file_size, extracted_text, analysis_result, created_at, updated_at
FROM resumes
WHERE id = $1`

	res, err := scanResume(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return res, nil
}

// List returns all resumes in insertion order.
func (r *PGRepo) List(ctx context.Context) ([]Resume, error) {
	const query = `
SELECT id, user_id, file_name, original_name, mime_type, file_size, extracted_text, analysis_result, created_at, updated_at
FROM resumes
ORDER BY id`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Resume{}
	for rows.Next() {
		res, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (Resume, error) {
	var res Resume
	var extractedText sql.NullString
	var analysisResult []byte
	if err := row.Scan(
		&res.ID,
		&res.UserID,
		&res.FileName,
		&res.OriginalName,
		&res.MimeType,
		&res.FileSize,
		&extractedText,
		&analysisResult,
		&res.CreatedAt,
		&res.UpdatedAt,
	); err != nil {
		return Resume{}, err
	}
	if extractedText.Valid {
		res.ExtractedText = extractedText.String
	}
	if len(analysisResult) > 0 {
		res.AnalysisResult = analysisResult
	}
	return res, nil
}

var _ Repo = (*PGRepo)(nil)
