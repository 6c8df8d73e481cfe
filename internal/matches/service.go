package matches

import (
	"context"
	"errors"
	"fmt"

	"evalmatch-backend/internal/analysis"
	"evalmatch-backend/internal/jobdescriptions"
	"evalmatch-backend/internal/llm"
	"evalmatch-backend/internal/resumes"
)

// Service runs the two-stage analysis: score the resume against the job,
// then generate interview questions from the comparison. Nothing is
// persisted unless both stages succeed.
type Service struct {
	Repo    Repo
	Resumes resumes.Repo
	Jobs    jobdescriptions.Repo
	LLM     llm.Client
}

// Result is a completed analysis with its decoded payloads.
type Result struct {
	Match     Match
	Analysis  analysis.Match
	Questions analysis.InterviewQuestions
}

// Analyze compares the stored analyses of a resume and a job description,
// generates interview questions, and persists the match.
func (s *Service) Analyze(ctx context.Context, userID string, resumeID, jobDescriptionID int64) (Result, error) {
	if userID == "" || resumeID <= 0 || jobDescriptionID <= 0 {
		return Result{}, ErrInvalidInput
	}

	resume, err := s.Resumes.GetByID(ctx, resumeID)
	if err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			return Result{}, fmt.Errorf("%w: resume %d", ErrReferenceNotFound, resumeID)
		}
		return Result{}, fmt.Errorf("fetch resume: %w", err)
	}
	job, err := s.Jobs.GetByID(ctx, jobDescriptionID)
	if err != nil {
		if errors.Is(err, jobdescriptions.ErrNotFound) {
			return Result{}, fmt.Errorf("%w: job description %d", ErrReferenceNotFound, jobDescriptionID)
		}
		return Result{}, fmt.Errorf("fetch job description: %w", err)
	}

	matchInput := fmt.Sprintf(
		"Resume Analysis: %s\n\nJob Description Analysis: %s",
		resume.AnalysisResult, job.AnalysisResult,
	)
	rawMatch, err := s.LLM.Analyze(ctx, llm.KindMatch, matchInput)
	if err != nil {
		return Result{}, err
	}
	parsed, err := analysis.ParseMatch(rawMatch)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", llm.ErrMalformedResponse, err)
	}

	questionsInput := fmt.Sprintf(
		"Match Analysis: %s\n\nJob Description: %s",
		rawMatch, job.Description,
	)
	rawQuestions, err := s.LLM.Analyze(ctx, llm.KindInterviewQuestions, questionsInput)
	if err != nil {
		return Result{}, err
	}
	questions, err := analysis.ParseInterviewQuestions(rawQuestions)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", llm.ErrMalformedResponse, err)
	}

	stored, err := s.Repo.Create(ctx, Match{
		UserID:             userID,
		ResumeID:           resumeID,
		JobDescriptionID:   jobDescriptionID,
		MatchScore:         analysis.ClampScore(parsed.MatchScore),
		AnalysisResult:     rawMatch,
		InterviewQuestions: rawQuestions,
	})
	if err != nil {
		if errors.Is(err, ErrReferenceNotFound) {
			return Result{}, err
		}
		return Result{}, fmt.Errorf("persist match: %w", err)
	}
	return Result{Match: stored, Analysis: parsed, Questions: questions}, nil
}

// RegenerateQuestions produces a fresh set of interview questions for an
// existing match. The stored match record is not modified.
func (s *Service) RegenerateQuestions(ctx context.Context, matchID int64) (analysis.InterviewQuestions, error) {
	if matchID <= 0 {
		return analysis.InterviewQuestions{}, ErrInvalidInput
	}

	match, err := s.Repo.GetByID(ctx, matchID)
	if err != nil {
		return analysis.InterviewQuestions{}, err
	}
	job, err := s.Jobs.GetByID(ctx, match.JobDescriptionID)
	if err != nil {
		if errors.Is(err, jobdescriptions.ErrNotFound) {
			return analysis.InterviewQuestions{}, fmt.Errorf("%w: job description %d", ErrReferenceNotFound, match.JobDescriptionID)
		}
		return analysis.InterviewQuestions{}, fmt.Errorf("fetch job description: %w", err)
	}

	input := fmt.Sprintf(
		"Match Analysis: %s\n\nJob Description: %s",
		match.AnalysisResult, job.Description,
	)
	raw, err := s.LLM.Analyze(ctx, llm.KindInterviewQuestions, input)
	if err != nil {
		return analysis.InterviewQuestions{}, err
	}
	questions, err := analysis.ParseInterviewQuestions(raw)
	if err != nil {
		return analysis.InterviewQuestions{}, fmt.Errorf("%w: %v", llm.ErrMalformedResponse, err)
	}
	return questions, nil
}

// Get returns one match by ID.
func (s *Service) Get(ctx context.Context, id int64) (Match, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns all matches.
func (s *Service) List(ctx context.Context) ([]Match, error) {
	return s.Repo.List(ctx)
}
