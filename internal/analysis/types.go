// Package analysis defines the typed shapes of the JSON payloads the
// completion model returns. The model does not guarantee its own output,
// so every field is optional and consumers must tolerate absent values.
package analysis

import (
	"encoding/json"
	"fmt"
	"math"
)

// PersonalInfo is the contact block extracted from a resume.
type PersonalInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

// Position is a single work-history entry.
type Position struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}

// Experience summarizes a resume's work history.
type Experience struct {
	YearsOfExperience *float64   `json:"yearsOfExperience,omitempty"`
	Positions         []Position `json:"positions,omitempty"`
}

// Education is a single education entry.
type Education struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
}

// Resume is the structured analysis of a resume.
type Resume struct {
	PersonalInfo     *PersonalInfo `json:"personalInfo,omitempty"`
	Skills           []string      `json:"skills,omitempty"`
	Experience       *Experience   `json:"experience,omitempty"`
	Education        []Education   `json:"education,omitempty"`
	Summary          string        `json:"summary,omitempty"`
	Strengths        []string      `json:"strengths,omitempty"`
	ImprovementAreas []string      `json:"improvementAreas,omitempty"`
}

// Job is the structured analysis of a job description.
type Job struct {
	RequiredSkills   []string `json:"requiredSkills,omitempty"`
	PreferredSkills  []string `json:"preferredSkills,omitempty"`
	ExperienceLevel  string   `json:"experienceLevel,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Qualifications   []string `json:"qualifications,omitempty"`
	CompanyInfo      string   `json:"companyInfo,omitempty"`
	RoleLevel        string   `json:"roleLevel,omitempty"`
	WorkType         string   `json:"workType,omitempty"`
	Summary          string   `json:"summary,omitempty"`
}

// SkillsMatch lists skills present in both documents and skills only the
// job asks for.
type SkillsMatch struct {
	Matched []string `json:"matched,omitempty"`
	Missing []string `json:"missing,omitempty"`
}

// ExperienceMatch scores how well the candidate's history fits the role.
type ExperienceMatch struct {
	Score    *float64 `json:"score,omitempty"`
	Analysis string   `json:"analysis,omitempty"`
}

// Match is the structured comparison of a resume against a job.
type Match struct {
	MatchScore      *float64         `json:"matchScore,omitempty"`
	Strengths       []string         `json:"strengths,omitempty"`
	Gaps            []string         `json:"gaps,omitempty"`
	Recommendations []string         `json:"recommendations,omitempty"`
	SkillsMatch     *SkillsMatch     `json:"skillsMatch,omitempty"`
	ExperienceMatch *ExperienceMatch `json:"experienceMatch,omitempty"`
	OverallFit      string           `json:"overallFit,omitempty"`
	InterviewFocus  []string         `json:"interviewFocus,omitempty"`
}

// InterviewQuestions groups generated questions by category.
type InterviewQuestions struct {
	Technical     []string `json:"technical,omitempty"`
	Behavioral    []string `json:"behavioral,omitempty"`
	Situational   []string `json:"situational,omitempty"`
	RoleSpecific  []string `json:"roleSpecific,omitempty"`
	GapAddressing []string `json:"gapAddressing,omitempty"`
}

// ParseResume decodes a model reply into a Resume.
func ParseResume(raw json.RawMessage) (Resume, error) {
	var out Resume
	if err := json.Unmarshal(raw, &out); err != nil {
		return Resume{}, fmt.Errorf("decode resume analysis: %w", err)
	}
	return out, nil
}

// ParseJob decodes a model reply into a Job.
func ParseJob(raw json.RawMessage) (Job, error) {
	var out Job
	if err := json.Unmarshal(raw, &out); err != nil {
		return Job{}, fmt.Errorf("decode job analysis: %w", err)
	}
	return out, nil
}

// ParseMatch decodes a model reply into a Match.
func ParseMatch(raw json.RawMessage) (Match, error) {
	var out Match
	if err := json.Unmarshal(raw, &out); err != nil {
		return Match{}, fmt.Errorf("decode match analysis: %w", err)
	}
	return out, nil
}

// ParseInterviewQuestions decodes a model reply into InterviewQuestions.
func ParseInterviewQuestions(raw json.RawMessage) (InterviewQuestions, error) {
	var out InterviewQuestions
	if err := json.Unmarshal(raw, &out); err != nil {
		return InterviewQuestions{}, fmt.Errorf("decode interview questions: %w", err)
	}
	return out, nil
}

// ClampScore rounds a model-reported score and forces it into [0,100].
// A missing score maps to 0.
func ClampScore(score *float64) int {
	if score == nil {
		return 0
	}
	rounded := int(math.Round(*score))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}
