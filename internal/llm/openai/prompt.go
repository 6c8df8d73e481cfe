package openai

import (
	"fmt"

	"evalmatch-backend/internal/llm"
)

// Message represents an OpenAI chat message.
type Message struct {
	Role    string
	Content string
}

const resumeSystemPrompt = `You are an expert HR analyst. Analyze the following resume and extract structured information. Return a JSON object with the following structure:
{
  "personalInfo": {
    "name": string,
    "email": string,
    "phone": string,
    "location": string
  },
  "skills": string[],
  "experience": {
    "yearsOfExperience": number,
    "positions": [{
      "title": string,
      "company": string,
      "duration": string,
      "description": string
    }]
  },
  "education": [{
    "degree": string,
    "institution": string,
    "year": string
  }],
  "summary": string,
  "strengths": string[],
  "improvementAreas": string[]
}`

const jobSystemPrompt = `You are an expert HR analyst. Analyze the following job description and extract structured information. Return a JSON object with the following structure:
{
  "requiredSkills": string[],
  "preferredSkills": string[],
  "experienceLevel": string,
  "responsibilities": string[],
  "qualifications": string[],
  "companyInfo": string,
  "roleLevel": string,
  "workType": string,
  "summary": string
}`

const matchSystemPrompt = `You are an expert HR analyst. Compare the resume analysis with the job description analysis and calculate a match score. Return a JSON object with the following structure:
{
  "matchScore": number (0-100),
  "strengths": string[],
  "gaps": string[],
  "recommendations": string[],
  "skillsMatch": {
    "matched": string[],
    "missing": string[]
  },
  "experienceMatch": {
    "score": number (0-100),
    "analysis": string
  },
  "overallFit": string,
  "interviewFocus": string[]
}`

const questionsSystemPrompt = `You are an expert interviewer. Based on the match analysis and job description, generate relevant interview questions. Return a JSON object with the following structure:
{
  "technical": string[],
  "behavioral": string[],
  "situational": string[],
  "roleSpecific": string[],
  "gapAddressing": string[]
}`

// BuildMessages creates the single-turn chat messages for an analysis request.
func BuildMessages(kind llm.Kind, input string) ([]Message, error) {
	system, err := systemPrompt(kind)
	if err != nil {
		return nil, err
	}
	return []Message{
		{Role: "system", Content: system},
		{Role: "user", Content: input},
	}, nil
}

func systemPrompt(kind llm.Kind) (string, error) {
	switch kind {
	case llm.KindResume:
		return resumeSystemPrompt, nil
	case llm.KindJobDescription:
		return jobSystemPrompt, nil
	case llm.KindMatch:
		return matchSystemPrompt, nil
	case llm.KindInterviewQuestions:
		return questionsSystemPrompt, nil
	default:
		return "", fmt.Errorf("unknown analysis kind %q", kind)
	}
}
