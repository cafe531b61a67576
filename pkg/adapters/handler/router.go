package handler

import (
	"net/http"

	"github.com/wadjakorntonsri/go-job-board/pkg/config"
	"github.com/wadjakorntonsri/go-job-board/pkg/ports"
)

// NewRouter creates and configures the main application router.
// A nil authorizer falls back to the admin key / admin token check.
func NewRouter(cfg *config.Config, jobService ports.JobService, appService ports.ApplicationService, authorize Authorizer) http.Handler {
	// Initialize Handlers
	jh := NewJobHandler(jobService)
	ah := NewApplicationHandler(appService)
	authHandler := NewAuthHandler(cfg)

	// Initialize Middleware
	mw := NewMiddleware(cfg)
	if authorize == nil {
		authorize = mw.AdminAuthorizer()
	}
	admin := func(h http.HandlerFunc) http.Handler {
		return mw.RequireAdmin(authorize, h)
	}

	mux := http.NewServeMux()

	// Public Routes
	mux.HandleFunc("GET /healthz", jh.Health)
	mux.HandleFunc("GET /api/health", jh.Health)
	mux.HandleFunc("GET /api/jobs", jh.List)
	mux.HandleFunc("GET /api/jobs/meta", jh.Meta)
	mux.HandleFunc("GET /api/jobs/{id}", jh.Get)
	mux.HandleFunc("POST /api/applications", ah.Submit)

	mux.HandleFunc("POST /api/admin/login", authHandler.Login)
	mux.HandleFunc("POST /api/admin/logout", authHandler.Logout)
	if cfg.GoogleEnabled() {
		mux.HandleFunc("GET /auth/google/login", authHandler.GoogleLogin)
		mux.HandleFunc("GET /auth/google/callback", authHandler.GoogleCallback)
	}

	// Protected Routes
	mux.Handle("POST /api/jobs", admin(jh.Create))
	mux.Handle("DELETE /api/jobs/{id}", admin(jh.Delete))
	mux.Handle("GET /api/jobs/{id}/applications", admin(ah.ListForJob))
	mux.Handle("GET /api/applications/{id}", admin(ah.Get))

	return mw.RequestID(mw.AccessLog(mw.Recover(mw.CORS(mux))))
}
