package matches_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"evalmatch-backend/internal/jobdescriptions"
	"evalmatch-backend/internal/llm"
	"evalmatch-backend/internal/matches"
	"evalmatch-backend/internal/resumes"
	"evalmatch-backend/internal/shared/config"
	"evalmatch-backend/internal/shared/server"
)

type stubLLM struct {
	responses map[llm.Kind]json.RawMessage
}

func (s *stubLLM) Analyze(ctx context.Context, kind llm.Kind, input string) (json.RawMessage, error) {
	if resp, ok := s.responses[kind]; ok {
		return resp, nil
	}
	return nil, llm.ErrEmptyResponse
}

func newTestRouter(t *testing.T, client llm.Client) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	resumeRepo := resumes.NewMemoryRepo()
	jobRepo := jobdescriptions.NewMemoryRepo()
	matchRepo := matches.NewMemoryRepo()
	matchRepo.ResumeExists = func(ctx context.Context, id int64) bool {
		_, err := resumeRepo.GetByID(ctx, id)
		return err == nil
	}
	matchRepo.JobExists = func(ctx context.Context, id int64) bool {
		_, err := jobRepo.GetByID(ctx, id)
		return err == nil
	}

	if _, err := resumeRepo.Create(context.Background(), resumes.Resume{
		UserID:         "user-1",
		OriginalName:   "resume.pdf",
		AnalysisResult: json.RawMessage(`{"skills":["Go"]}`),
	}); err != nil {
		t.Fatalf("create resume: %v", err)
	}
	if _, err := jobRepo.Create(context.Background(), jobdescriptions.JobDescription{
		UserID:         "user-1",
		Title:          "Engineer",
		Company:        "Acme",
		Description:    "Build services",
		AnalysisResult: json.RawMessage(`{"requiredSkills":["Go"]}`),
	}); err != nil {
		t.Fatalf("create job: %v", err)
	}

	svc := &matches.Service{Repo: matchRepo, Resumes: resumeRepo, Jobs: jobRepo, LLM: client}
	return server.NewRouter(server.RouterDeps{
		Config:         config.Config{CORSAllowOrigin: []string{"http://localhost:5173"}},
		MatchesHandler: matches.NewHandler(svc),
	})
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "user-1")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestAnalyzeMatchEndpoint(t *testing.T) {
	router := newTestRouter(t, &stubLLM{responses: map[llm.Kind]json.RawMessage{
		llm.KindMatch:              json.RawMessage(`{"matchScore":75,"overallFit":"good"}`),
		llm.KindInterviewQuestions: json.RawMessage(`{"technical":["q1"],"behavioral":["q2"]}`),
	}})

	resp := postJSON(t, router, "/api/analyze-match", map[string]int64{
		"resumeId":         1,
		"jobDescriptionId": 1,
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var out struct {
		Match    matches.Match `json:"match"`
		Analysis struct {
			OverallFit string `json:"overallFit"`
		} `json:"analysis"`
		InterviewQuestions struct {
			Technical []string `json:"technical"`
		} `json:"interviewQuestions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Match.MatchScore != 75 {
		t.Fatalf("expected score 75, got %d", out.Match.MatchScore)
	}
	if out.Analysis.OverallFit != "good" {
		t.Fatalf("unexpected overallFit: %q", out.Analysis.OverallFit)
	}
	if len(out.InterviewQuestions.Technical) != 1 {
		t.Fatalf("expected one technical question, got %v", out.InterviewQuestions.Technical)
	}

	reqGet := httptest.NewRequest(http.MethodGet, "/api/matches/1", nil)
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)
	if respGet.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respGet.Code)
	}
}

func TestAnalyzeMatchUnknownResume(t *testing.T) {
	router := newTestRouter(t, &stubLLM{responses: map[llm.Kind]json.RawMessage{}})

	resp := postJSON(t, router, "/api/analyze-match", map[string]int64{
		"resumeId":         99,
		"jobDescriptionId": 1,
	})
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}

	reqList := httptest.NewRequest(http.MethodGet, "/api/matches", nil)
	respList := httptest.NewRecorder()
	router.ServeHTTP(respList, reqList)
	if respList.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respList.Code)
	}
	var out []matches.Match
	if err := json.NewDecoder(respList.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected no matches, got %d", len(out))
	}
}

func TestAnalyzeMatchValidation(t *testing.T) {
	router := newTestRouter(t, &stubLLM{responses: map[llm.Kind]json.RawMessage{}})

	resp := postJSON(t, router, "/api/analyze-match", map[string]int64{
		"resumeId": 1,
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestGenerateQuestionsEndpoint(t *testing.T) {
	router := newTestRouter(t, &stubLLM{responses: map[llm.Kind]json.RawMessage{
		llm.KindMatch:              json.RawMessage(`{"matchScore":75}`),
		llm.KindInterviewQuestions: json.RawMessage(`{"situational":["q"]}`),
	}})

	resp := postJSON(t, router, "/api/analyze-match", map[string]int64{
		"resumeId":         1,
		"jobDescriptionId": 1,
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	respQ := postJSON(t, router, "/api/generate-questions", map[string]int64{"matchId": 1})
	if respQ.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", respQ.Code, respQ.Body.String())
	}
	var out struct {
		Questions struct {
			Situational []string `json:"situational"`
		} `json:"questions"`
	}
	if err := json.NewDecoder(respQ.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(out.Questions.Situational) != 1 {
		t.Fatalf("expected one situational question, got %v", out.Questions.Situational)
	}
}

func TestGenerateQuestionsUnknownMatch(t *testing.T) {
	router := newTestRouter(t, &stubLLM{responses: map[llm.Kind]json.RawMessage{}})

	resp := postJSON(t, router, "/api/generate-questions", map[string]int64{"matchId": 12})
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestMatchGetNotFound(t *testing.T) {
	router := newTestRouter(t, &stubLLM{responses: map[llm.Kind]json.RawMessage{}})

	req := httptest.NewRequest(http.MethodGet, "/api/matches/4", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}
