package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"resumebuilder-backend/internal/auth"
	"resumebuilder-backend/internal/resumes"
	sharedauth "resumebuilder-backend/internal/shared/auth"
	"resumebuilder-backend/internal/shared/config"
	"resumebuilder-backend/internal/shared/server"
	"resumebuilder-backend/internal/shared/storage/db"
	"resumebuilder-backend/internal/shared/storage/object"
	localstore "resumebuilder-backend/internal/shared/storage/object/local"
	s3store "resumebuilder-backend/internal/shared/storage/object/s3"
	"resumebuilder-backend/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config        config.Config
	Router        *gin.Engine
	DB            *sql.DB
	Store         object.ObjectStore
	Signer        *sharedauth.Signer
	UsersRepo     auth.Repo
	ResumesRepo   resumes.Repo
	AuthService   *auth.Service
	ResumeService *resumes.Service
	AuthHandler   *auth.Handler
	ResumeHandler *resumes.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	signer, err := sharedauth.NewSigner(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		Signer: signer,
	}

	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:        app.Config,
		Signer:        app.Signer,
		AuthHandler:   app.AuthHandler,
		ResumeHandler: app.ResumeHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.db_fallback", map[string]any{
				"reason": "DATABASE_URL empty; using in-memory repositories",
			})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.db_fallback", map[string]any{
				"reason": "database connect failed; using in-memory repositories",
				"error":  err.Error(),
			})
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.db_fallback", map[string]any{
				"reason": "migrations failed; using in-memory repositories",
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
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildServices(app *App) {
	var usersRepo auth.Repo
	var resumesRepo resumes.Repo

	if app.DB != nil {
		usersRepo = &auth.PGRepo{DB: app.DB}
		resumesRepo = &resumes.PGRepo{DB: app.DB}
	} else {
		usersRepo = auth.NewMemoryRepo()
		resumesRepo = resumes.NewMemoryRepo()
	}

	authSvc := auth.NewService(usersRepo, app.Signer)
	resumeSvc := resumes.NewService(resumesRepo, app.Store)

	app.UsersRepo = usersRepo
	app.ResumesRepo = resumesRepo
	app.AuthService = authSvc
	app.ResumeService = resumeSvc
	app.AuthHandler = auth.NewHandler(authSvc)
	app.ResumeHandler = resumes.NewHandler(resumeSvc)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
