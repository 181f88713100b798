package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"hirehand-backend/internal/admin"
	"hirehand-backend/internal/candidates"
	"hirehand-backend/internal/employers"
	"hirehand-backend/internal/extraction"
	"hirehand-backend/internal/hires"
	"hirehand-backend/internal/shared/config"
	"hirehand-backend/internal/shared/server"
	"hirehand-backend/internal/shared/storage/blob"
	localstore "hirehand-backend/internal/shared/storage/blob/local"
	s3store "hirehand-backend/internal/shared/storage/blob/s3"
	"hirehand-backend/internal/shared/storage/db"
	"hirehand-backend/internal/shared/storage/kv"
	kvmemory "hirehand-backend/internal/shared/storage/kv/memory"
	"hirehand-backend/internal/shared/storage/kv/redisstore"
	"hirehand-backend/internal/speech"
	"hirehand-backend/internal/vision"
)

// App holds shared dependencies built once at startup.
type App struct {
	Config            config.Config
	Router            *gin.Engine
	DB                *sql.DB
	KV                kv.Store
	Blob              blob.Store
	Pipeline          *candidates.Pipeline
	CandidatesRepo    *candidates.Repo
	EmployersRepo     employers.Repo
	HiresRepo         hires.Repo
	CandidatesHandler *candidates.Handler
	EmployersHandler  *employers.Handler
	HiresHandler      *hires.Handler
	AdminHandler      *admin.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	kvStore, err := buildKV(ctx, cfg)
	if err != nil {
		return nil, err
	}

	blobStore, err := buildBlob(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		KV:     kvStore,
		Blob:   blobStore,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            app.Config,
		CandidatesHandler: app.CandidatesHandler,
		EmployersHandler:  app.EmployersHandler,
		HiresHandler:      app.HiresHandler,
		AdminHandler:      app.AdminHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildKV(ctx context.Context, cfg config.Config) (kv.Store, error) {
	if strings.TrimSpace(cfg.RedisURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: REDIS_URL empty; using in-memory profile store")
			return kvmemory.New(), nil
		}
		return nil, fmt.Errorf("REDIS_URL is required")
	}

	store, err := redisstore.New(ctx, cfg.RedisURL)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: redis connect failed; using in-memory profile store: %v", err)
			return kvmemory.New(), nil
		}
		return nil, err
	}
	return store, nil
}

func buildBlob(ctx context.Context, cfg config.Config) (blob.Store, error) {
	switch cfg.BlobStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return localstore.New(cfg.LocalStoreDir, cfg.PublicBaseURL), nil
	}
}

func buildServices(app *App) error {
	cfg := app.Config

	ocrClient := vision.OCRService(vision.PlaceholderClient{})
	if cfg.OCRSpaceAPIKey != "" {
		client, err := vision.NewClient(cfg.OCRSpaceAPIKey, cfg.OCRSpaceEngine)
		if err != nil {
			return err
		}
		ocrClient = client
	} else if !isDevLike(cfg.Env) {
		return fmt.Errorf("OCR_SPACE_API_KEY is required")
	}

	transcriber := speech.Transcriber(speech.PlaceholderTranscriber{})
	extractor := extraction.Extractor(extraction.PlaceholderExtractor{})
	if cfg.OpenAIAPIKey != "" {
		t, err := speech.NewOpenAITranscriber(cfg.OpenAIAPIKey)
		if err != nil {
			return err
		}
		transcriber = t

		e, err := extraction.NewOpenAIExtractor(cfg.OpenAIAPIKey, cfg.LLMModel)
		if err != nil {
			return err
		}
		extractor = e
	} else if !isDevLike(cfg.Env) {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}

	candidatesRepo := &candidates.Repo{KV: app.KV}
	var employersRepo employers.Repo
	var hiresRepo hires.Repo
	if app.DB != nil {
		employersRepo = &employers.PGRepo{DB: app.DB}
		hiresRepo = &hires.PGRepo{DB: app.DB}
	} else {
		employersRepo = employers.NewMemoryRepo()
		hiresRepo = hires.NewMemoryRepo()
	}

	pipeline := &candidates.Pipeline{
		Blob:      app.Blob,
		OCR:       ocrClient,
		Speech:    transcriber,
		Extractor: extractor,
		Repo:      candidatesRepo,
	}

	app.Pipeline = pipeline
	app.CandidatesRepo = candidatesRepo
	app.EmployersRepo = employersRepo
	app.HiresRepo = hiresRepo
	app.CandidatesHandler = candidates.NewHandler(pipeline, candidatesRepo)
	app.EmployersHandler = employers.NewHandler(employersRepo, &employers.Matcher{Profiles: candidatesRepo})
	app.HiresHandler = hires.NewHandler(hiresRepo, candidatesRepo)
	app.AdminHandler = admin.NewHandler(candidatesRepo)

	return nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
