package jobdescriptions

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateReturnsServerFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	mock.ExpectQuery("INSERT INTO job_descriptions").
		WithArgs(
			"user-1",
			"Backend Engineer",
			"Acme",
			"Build services",
			sqlmock.AnyArg(), // requirements
			sqlmock.AnyArg(), // location
			sqlmock.AnyArg(), // salary_range
			sqlmock.AnyArg(), // analysis_result
		).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(3), now, now))

	created, err := repo.Create(context.Background(), JobDescription{
		UserID:         "user-1",
		Title:          "Backend Engineer",
		Company:        "Acme",
		Description:    "Build services",
		Requirements:   "Go, Postgres",
		AnalysisResult: json.RawMessage(`{"requiredSkills":["Go"]}`),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != 3 {
		t.Fatalf("expected id 3, got %d", created.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT (.+) FROM job_descriptions").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetByID(context.Background(), 9)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListScansOptionalColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	cols := []string{
		"id", "user_id", "title", "company", "description",
		"requirements", "location", "salary_range", "analysis_result",
		"created_at", "updated_at",
	}
	mock.ExpectQuery("SELECT (.+) FROM job_descriptions").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int64(1), "user-1", "Engineer", "Acme", "desc",
				nil, nil, nil, nil, now, now).
			AddRow(int64(2), "user-1", "Manager", "Acme", "desc2",
				"reqs", "Remote", "$100k", []byte(`{}`), now, now))

	out, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(out))
	}
	if out[0].Requirements != "" || out[0].Location != "" || out[0].SalaryRange != "" {
		t.Fatalf("expected empty optional fields, got %+v", out[0])
	}
	if out[1].Location != "Remote" {
		t.Fatalf("expected location Remote, got %q", out[1].Location)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
