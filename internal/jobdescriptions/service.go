package jobdescriptions

import (
	"context"
	"fmt"

	"evalmatch-backend/internal/analysis"
	"evalmatch-backend/internal/llm"
)

// CreateInput carries the caller-supplied fields of a new job description.
type CreateInput struct {
	Title        string
	Company      string
	Description  string
	Requirements string
	Location     string
	SalaryRange  string
}

// Service sequences job-description ingestion: analyze the posting text,
// persist the record.
type Service struct {
	Repo Repo
	LLM  llm.Client
}

// Create analyzes and stores a job description.
func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (JobDescription, analysis.Job, error) {
	if userID == "" || in.Title == "" || in.Company == "" || in.Description == "" {
		return JobDescription{}, analysis.Job{}, ErrInvalidInput
	}

	analysisInput := in.Description
	if in.Requirements != "" {
		analysisInput += "\n" + in.Requirements
	}

	raw, err := s.LLM.Analyze(ctx, llm.KindJobDescription, analysisInput)
	if err != nil {
		return JobDescription{}, analysis.Job{}, err
	}
	parsed, err := analysis.ParseJob(raw)
	if err != nil {
		return JobDescription{}, analysis.Job{}, fmt.Errorf("%w: %v", llm.ErrMalformedResponse, err)
	}

	stored, err := s.Repo.Create(ctx, JobDescription{
		UserID:         userID,
		Title:          in.Title,
		Company:        in.Company,
		Description:    in.Description,
		Requirements:   in.Requirements,
		Location:       in.Location,
		SalaryRange:    in.SalaryRange,
		AnalysisResult: raw,
	})
	if err != nil {
		return JobDescription{}, analysis.Job{}, fmt.Errorf("persist job description: %w", err)
	}
	return stored, parsed, nil
}

// Get returns one job description by ID.
func (s *Service) Get(ctx context.Context, id int64) (JobDescription, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns all job descriptions.
func (s *Service) List(ctx context.Context) ([]JobDescription, error) {
	return s.Repo.List(ctx)
}
