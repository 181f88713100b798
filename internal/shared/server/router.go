package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hirehand-backend/internal/admin"
	"hirehand-backend/internal/candidates"
	"hirehand-backend/internal/employers"
	"hirehand-backend/internal/hires"
	"hirehand-backend/internal/shared/config"
	"hirehand-backend/internal/shared/metrics"
	"hirehand-backend/internal/shared/server/middleware"
	"hirehand-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config            config.Config
	CandidatesHandler *candidates.Handler
	EmployersHandler  *employers.Handler
	HiresHandler      *hires.Handler
	AdminHandler      *admin.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	// Local blob storage serves uploaded artifacts back from this process.
	if cfg.BlobStoreType == "local" {
		r.Static("/files", cfg.LocalStoreDir)
	}

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	deps.CandidatesHandler.RegisterRoutes(api)
	deps.EmployersHandler.RegisterRoutes(api)
	deps.HiresHandler.RegisterRoutes(api)

	adminGroup := api.Group("/admin", middleware.AdminSecret(cfg.AdminSecret))
	deps.AdminHandler.RegisterRoutes(adminGroup)

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
