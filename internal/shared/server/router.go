package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resumebuilder-backend/internal/auth"
	"resumebuilder-backend/internal/resumes"
	sharedauth "resumebuilder-backend/internal/shared/auth"
	"resumebuilder-backend/internal/shared/config"
	"resumebuilder-backend/internal/shared/metrics"
	"resumebuilder-backend/internal/shared/server/middleware"
	"resumebuilder-backend/internal/shared/server/respond"
)

// RouterDeps carries everything the router wires together.
type RouterDeps struct {
	Config        config.Config
	Signer        *sharedauth.Signer
	AuthHandler   *auth.Handler
	ResumeHandler *resumes.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")

	// Credential endpoints are rate-limited per client; everything else rides
	// on the token check alone.
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"AUTH": {Rate: 5, Burst: 20},
		},
		DefaultGroup: "AUTH",
	}))
	deps.AuthHandler.RegisterPublicRoutes(authGroup)

	authProtected := authGroup.Group("")
	authProtected.Use(middleware.Auth(deps.Signer))
	deps.AuthHandler.RegisterProtectedRoutes(authProtected)

	protected := api.Group("")
	protected.Use(middleware.Auth(deps.Signer))
	deps.ResumeHandler.RegisterRoutes(protected)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
