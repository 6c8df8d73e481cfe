package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Kind selects which fixed instruction template an analysis uses.
type Kind string

const (
	KindResume             Kind = "resume"
	KindJobDescription     Kind = "job_description"
	KindMatch              Kind = "match"
	KindInterviewQuestions Kind = "interview_questions"
)

// Client abstracts the completion-model provider. One call is one
// single-turn request; implementations hold no conversation state.
type Client interface {
	Analyze(ctx context.Context, kind Kind, input string) (json.RawMessage, error)
}

var (
	// ErrEmptyResponse is returned when the model replies with no content.
	ErrEmptyResponse = errors.New("empty model response")
	// ErrMalformedResponse is returned when the reply is not valid JSON.
	ErrMalformedResponse = errors.New("malformed model response")
)

// Temperature returns the sampling temperature for a kind: analysis and
// matching favor determinism, question generation favors variety.
func Temperature(kind Kind) float32 {
	if kind == KindInterviewQuestions {
		return 0.5
	}
	return 0.3
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("LLM provider not configured")

// PlaceholderClient is a stub implementation used when no provider is wired.
type PlaceholderClient struct{}

// Analyze returns ErrNotConfigured.
func (PlaceholderClient) Analyze(ctx context.Context, kind Kind, input string) (json.RawMessage, error) {
	_ = ctx
	_ = kind
	_ = input
	return nil, ErrNotConfigured
}
