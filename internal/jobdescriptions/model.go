package jobdescriptions

import (
	"encoding/json"
	"time"
)

// JobDescription is a submitted job posting with its analysis.
type JobDescription struct {
	ID             int64           `json:"id"`
	UserID         string          `json:"userId"`
	Title          string          `json:"title"`
	Company        string          `json:"company"`
	Description    string          `json:"description"`
	Requirements   string          `json:"requirements,omitempty"`
	Location       string          `json:"location,omitempty"`
	SalaryRange    string          `json:"salaryRange,omitempty"`
	AnalysisResult json.RawMessage `json:"analysisResult,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
