package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/mockview/mockview/internal/logging"
	"github.com/mockview/mockview/internal/server/config"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Auth      *AuthHandler
	Interview *InterviewHandler
	Fluency   *FluencyHandler
	Resume    *ResumeHandler
	Dashboard *DashboardHandler
}

// NewRouter assembles the full middleware chain and API route tree.
func NewRouter(cfg *config.Config, logger logging.Logger, denylist TokenDenylist, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestLogger(logger))
	r.Use(Recoverer(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if cfg.RateLimitEnabled {
		r.Use(RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	}

	r.Get("/", handleIndex)
	r.Get("/health", handleHealth)

	secret := []byte(cfg.SecretKey)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handleHealth)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.Auth.HandleSignup)
			r.Post("/login", h.Auth.HandleLogin)

			r.Group(func(r chi.Router) {
				r.Use(JWTAuth(secret, denylist))
				r.Post("/logout", h.Auth.HandleLogout)
				r.Get("/profile", h.Auth.HandleGetProfile)
				r.Put("/profile", h.Auth.HandleUpdateProfile)
			})
		})

		r.Route("/interview", func(r chi.Router) {
			r.Use(JWTAuth(secret, denylist))
			r.Post("/start", h.Interview.HandleStart)
			r.Get("/questions", h.Interview.HandleQuestions)
			r.Post("/submit-answer", h.Interview.HandleSubmitAnswer)
			r.Post("/voice-answer", h.Interview.HandleVoiceAnswer)
			r.Get("/feedback/{sessionID}", h.Interview.HandleFeedback)
		})

		r.Route("/fluency", func(r chi.Router) {
			r.Use(JWTAuth(secret, denylist))
			r.Post("/test", h.Fluency.HandleStart)
			r.Post("/analyze", h.Fluency.HandleAnalyze)
			r.Get("/score/{testID}", h.Fluency.HandleScore)
		})

		r.Route("/resume", func(r chi.Router) {
			r.Use(JWTAuth(secret, denylist))
			r.Post("/build", h.Resume.HandleBuild)
			r.Post("/analyze", h.Resume.HandleAnalyze)
			r.Get("/templates", h.Resume.HandleTemplates)
			r.Post("/export", h.Resume.HandleExport)
			r.Get("/feedback/{resumeID}", h.Resume.HandleFeedback)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Use(JWTAuth(secret, denylist))
			r.Get("/stats", h.Dashboard.HandleStats)
			r.Get("/history", h.Dashboard.HandleHistory)
			r.Get("/trends", h.Dashboard.HandleTrends)
		})
	})

	return r
}

func handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "MockView API is running",
		"version": "1.0.0",
	})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"status":  "healthy",
	})
}

func pathParam(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}
