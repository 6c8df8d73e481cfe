package analysis

import (
	"encoding/json"
	"testing"
)

func TestParseResumeTolerantOfMissingFields(t *testing.T) {
	raw := json.RawMessage(`{"personalInfo":{"name":"Jane Doe"},"skills":["Python"]}`)
	got, err := ParseResume(raw)
	if err != nil {
		t.Fatalf("ParseResume: %v", err)
	}
	if got.PersonalInfo == nil || got.PersonalInfo.Name != "Jane Doe" {
		t.Fatalf("personalInfo = %+v", got.PersonalInfo)
	}
	if len(got.Skills) != 1 || got.Skills[0] != "Python" {
		t.Fatalf("skills = %v", got.Skills)
	}
	if got.Experience != nil || got.Summary != "" {
		t.Fatalf("expected zero values for absent fields, got %+v", got)
	}
}

func TestParseMatchRejectsNonObject(t *testing.T) {
	if _, err := ParseMatch(json.RawMessage(`["not","an","object"]`)); err == nil {
		t.Fatal("expected error for non-object payload")
	}
}

func TestClampScore(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	tests := []struct {
		name  string
		score *float64
		want  int
	}{
		{name: "nil", score: nil, want: 0},
		{name: "in range", score: f(87.4), want: 87},
		{name: "rounds up", score: f(87.5), want: 88},
		{name: "negative", score: f(-3), want: 0},
		{name: "above range", score: f(140), want: 100},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampScore(tt.score); got != tt.want {
				t.Fatalf("ClampScore = %d, want %d", got, tt.want)
			}
		})
	}
}
