package matches

import (
	"encoding/json"
	"time"
)

// Match is a stored comparison of one resume against one job description,
// together with the interview questions generated from it.
type Match struct {
	ID                 int64           `json:"id"`
	UserID             string          `json:"userId"`
	ResumeID           int64           `json:"resumeId"`
	JobDescriptionID   int64           `json:"jobDescriptionId"`
	MatchScore         int             `json:"matchScore"`
	AnalysisResult     json.RawMessage `json:"analysisResult,omitempty"`
	InterviewQuestions json.RawMessage `json:"interviewQuestions,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}
