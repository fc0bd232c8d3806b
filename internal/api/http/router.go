package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mind-engage/mindengage-quiz/internal/config"
	"github.com/mind-engage/mindengage-quiz/internal/quiz"
	"github.com/mind-engage/mindengage-quiz/internal/quizid"
)

var availableRoutes = []string{"GET /health", "GET /api/quiz", "POST /api/grade"}

// NewRouter wires the public API:
//
//	GET  /health
//	GET  /api/quiz
//	POST /api/grade
func NewRouter(cfg config.Config, svc *quiz.Service, ids *quizid.Issuer) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, recoverJSON(cfg.DevErrors()))
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "timestamp": time.Now().UnixMilli()})
	})

	r.Route("/api", func(ar chi.Router) {
		ar.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
		ar.Get("/quiz", GetQuizHandler(svc))
		ar.Post("/grade", GradeHandler(svc.Bank(), ids))
	})

	notFound := func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{
			Error:           "Not Found",
			Message:         "Route " + r.URL.Path + " not found",
			AvailableRoutes: availableRoutes,
		})
	}
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)
	return r
}
