package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"evalmatch-backend/internal/jobdescriptions"
	"evalmatch-backend/internal/llm"
	openai "evalmatch-backend/internal/llm/openai"
	"evalmatch-backend/internal/matches"
	"evalmatch-backend/internal/resumes"
	"evalmatch-backend/internal/services/health"
	"evalmatch-backend/internal/shared/config"
	"evalmatch-backend/internal/shared/server"
	"evalmatch-backend/internal/shared/storage/db"
	"evalmatch-backend/internal/shared/storage/object"
	localstore "evalmatch-backend/internal/shared/storage/object/local"
	s3store "evalmatch-backend/internal/shared/storage/object/s3"
	"evalmatch-backend/internal/shared/telemetry"
)

// App holds the wired application dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	LLM    llm.Client

	ResumesRepo resumes.Repo
	JobsRepo    jobdescriptions.Repo
	MatchesRepo matches.Repo

	ResumesService *resumes.Service
	JobsService    *jobdescriptions.Service
	MatchesService *matches.Service
}

// Build prepares all application dependencies and the HTTP router.
func Build(cfg config.Config) (*App, error) {
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	llmClient, err := buildLLM(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		LLM:    llmClient,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         cfg,
		ResumesHandler: resumes.NewHandler(app.ResumesService, cfg.MaxUploadBytes),
		JobsHandler:    jobdescriptions.NewHandler(app.JobsService),
		MatchesHandler: matches.NewHandler(app.MatchesService),
		Health:         health.NewService(),
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.db_fallback", map[string]any{
				"reason": "DATABASE_URL empty; using in-memory repositories",
			})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.DefaultServerOptions())
	if err != nil {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.db_fallback", map[string]any{
				"reason": "database connect failed; using in-memory repositories",
				"error":  err.Error(),
			})
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.AWSRegion) == "" || strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires AWS_REGION and S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildLLM(cfg config.Config) (llm.Client, error) {
	if strings.TrimSpace(cfg.OpenAIAPIKey) == "" {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.llm_placeholder", map[string]any{
				"reason": "OPENAI_API_KEY empty; analysis endpoints will fail until configured",
			})
			return llm.PlaceholderClient{}, nil
		}
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	return openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
}

func buildServices(app *App) {
	if app.DB != nil {
		app.ResumesRepo = &resumes.PGRepo{DB: app.DB}
		app.JobsRepo = &jobdescriptions.PGRepo{DB: app.DB}
		app.MatchesRepo = &matches.PGRepo{DB: app.DB}
	} else {
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
		app.ResumesRepo = resumeRepo
		app.JobsRepo = jobRepo
		app.MatchesRepo = matchRepo
	}

	app.ResumesService = &resumes.Service{
		Store: app.Store,
		Repo:  app.ResumesRepo,
		LLM:   app.LLM,
	}
	app.JobsService = &jobdescriptions.Service{
		Repo: app.JobsRepo,
		LLM:  app.LLM,
	}
	app.MatchesService = &matches.Service{
		Repo:    app.MatchesRepo,
		Resumes: app.ResumesRepo,
		Jobs:    app.JobsRepo,
		LLM:     app.LLM,
	}
}
