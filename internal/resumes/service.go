package resumes

import (
	"context"
	"fmt"
	"io"
	"path"

	"evalmatch-backend/internal/analysis"
	"evalmatch-backend/internal/extract"
	"evalmatch-backend/internal/llm"
	"evalmatch-backend/internal/shared/storage/object"
	"evalmatch-backend/internal/shared/telemetry"
)

// Service sequences resume ingestion: stage the upload, extract text,
// analyze it, persist the record. The staged bytes are deleted once the
// request finishes, whether or not it succeeded.
type Service struct {
	Store object.ObjectStore
	Repo  Repo
	LLM   llm.Client
}

// Ingest runs the full resume ingestion flow for one uploaded file.
func (s *Service) Ingest(ctx context.Context, userID, fileName, contentType string, file io.Reader) (Resume, analysis.Resume, error) {
	if userID == "" || fileName == "" {
		return Resume{}, analysis.Resume{}, ErrInvalidInput
	}

	stagedKey, size, sniffedMime, err := s.Store.Save(ctx, userID, fileName, file)
	if err != nil {
		return Resume{}, analysis.Resume{}, fmt.Errorf("stage upload: %w", err)
	}
	defer func() {
		// Best-effort cleanup; a leftover staged file is not worth
		// failing the request over.
		if err := s.Store.Delete(context.WithoutCancel(ctx), stagedKey); err != nil {
			telemetry.Warn("resume.staged_cleanup_failed", map[string]any{
				"storage_key": stagedKey,
				"err":         err.Error(),
			})
		}
	}()

	mimeType := contentType
	if mimeType == "" {
		mimeType = sniffedMime
	}

	// Extraction reads the staged object back, not the request body.
	staged, err := s.Store.Open(ctx, stagedKey)
	if err != nil {
		return Resume{}, analysis.Resume{}, fmt.Errorf("open staged upload: %w", err)
	}
	data, err := io.ReadAll(staged)
	staged.Close()
	if err != nil {
		return Resume{}, analysis.Resume{}, fmt.Errorf("read staged upload: %w", err)
	}

	text, err := extract.Text(ctx, data, mimeType, fileName)
	if err != nil {
		return Resume{}, analysis.Resume{}, err
	}

	raw, err := s.LLM.Analyze(ctx, llm.KindResume, text)
	if err != nil {
		return Resume{}, analysis.Resume{}, err
	}
	parsed, err := analysis.ParseResume(raw)
	if err != nil {
		return Resume{}, analysis.Resume{}, fmt.Errorf("%w: %v", llm.ErrMalformedResponse, err)
	}

	stored, err := s.Repo.Create(ctx, Resume{
		UserID:         userID,
		FileName:       path.Base(stagedKey),
		OriginalName:   fileName,
		MimeType:       mimeType,
		FileSize:       size,
		ExtractedText:  text,
		AnalysisResult: raw,
	})
	if err != nil {
		return Resume{}, analysis.Resume{}, fmt.Errorf("persist resume: %w", err)
	}
	return stored, parsed, nil
}

// Get returns one resume by ID.
func (s *Service) Get(ctx context.Context, id int64) (Resume, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns all resumes.
func (s *Service) List(ctx context.Context) ([]Resume, error) {
	return s.Repo.List(ctx)
}
