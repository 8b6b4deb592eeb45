// Package rest wires the HTTP surface: catalog reads and administration,
// answer submission and classification reads.
package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"personality-backend/infrastructure/config"
	"personality-backend/interfaces/http/rest/handlers"
	"personality-backend/interfaces/http/rest/middleware"
	"personality-backend/pkg/auth"
)

// Router assembles the REST API
type Router struct {
	questions   *handlers.QuestionHandler
	submissions *handlers.SubmissionHandler
	profiles    *handlers.ProfileHandler
	validator   *auth.JWTValidator
	limiter     *auth.RateLimiter
	cfg         *config.Config
	logger      *zap.Logger
}

// NewRouter creates a new router
func NewRouter(
	questions *handlers.QuestionHandler,
	submissions *handlers.SubmissionHandler,
	profiles *handlers.ProfileHandler,
	validator *auth.JWTValidator,
	limiter *auth.RateLimiter,
	cfg *config.Config,
	logger *zap.Logger,
) *Router {
	return &Router{
		questions:   questions,
		submissions: submissions,
		profiles:    profiles,
		validator:   validator,
		limiter:     limiter,
		cfg:         cfg,
		logger:      logger,
	}
}

// Setup builds the chi mux with all routes and middleware
func (rt *Router) Setup() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logger(rt.logger))

	if rt.cfg.EnableCORS {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Route("/api/v1", func(api chi.Router) {
		api.Get("/health", healthCheck)
		api.Get("/questions", rt.questions.ListQuestions)

		api.Group(func(protected chi.Router) {
			protected.Use(middleware.Authenticate(rt.validator, rt.limiter, rt.logger))
			protected.Post("/questions", rt.questions.CreateQuestion)
			protected.Post("/submissions", rt.submissions.SubmitAnswers)
			protected.Get("/users/{userID}/personality", rt.profiles.GetPersonality)
		})
	})

	return r
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
