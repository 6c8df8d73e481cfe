package resumes

import (
	"encoding/json"
	"time"
)

// Resume is an uploaded resume with its extracted text and analysis.
// Once the analysis completes the record is never mutated.
type Resume struct {
	ID             int64           `json:"id"`
	UserID         string          `json:"userId"`
	FileName       string          `json:"fileName"`
	OriginalName   string          `json:"originalName"`
	MimeType       string          `json:"mimeType"`
	FileSize       int64           `json:"fileSize"`
	ExtractedText  string          `json:"extractedText"`
	AnalysisResult json.RawMessage `json:"analysisResult,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
