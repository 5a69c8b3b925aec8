package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"learnpath-backend/internal/handlers"
	"learnpath-backend/internal/middleware"
	"learnpath-backend/internal/models"
	"learnpath-backend/internal/websocket"
)

func New(
	jwtAuth *middleware.JWTAuth,
	authHandler *handlers.AuthHandler,
	activityHandler *handlers.ActivityHandler,
	goalHandler *handlers.GoalHandler,
	resourceHandler *handlers.ResourceHandler,
	recommendationHandler *handlers.RecommendationHandler,
	progressHandler *handlers.ProgressHandler,
	userHandler *handlers.UserHandler,
	wsHub *websocket.Hub,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Auth rate limiter (10 req/min per IP)
	authLimiter := middleware.NewRateLimiter(10, time.Minute)

	staffOnly := jwtAuth.RequireRole(models.RoleTeacher, models.RoleAdmin)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// ──── Auth Routes (public) ────
		r.Route("/auth", func(r chi.Router) {
			r.Use(authLimiter.Middleware)
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Get("/verify-email", authHandler.VerifyEmail)

			// Logout requires auth
			r.Group(func(r chi.Router) {
				r.Use(jwtAuth.Middleware)
				r.Post("/logout", authHandler.Logout)
			})
		})

		// ──── Activity Routes ────
		r.Route("/activities", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Post("/", activityHandler.Create)
			r.Get("/", activityHandler.List)
			r.Put("/{id}", activityHandler.Update)
			r.Delete("/{id}", activityHandler.Delete)

			r.Group(func(r chi.Router) {
				r.Use(staffOnly)
				r.Get("/students/{studentID}", activityHandler.ListForStudent)
			})
		})

		// ──── Goal Routes ────
		r.Route("/goals", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Post("/", goalHandler.Create)
			r.Get("/", goalHandler.List)
			r.Put("/{id}", goalHandler.Update)
			r.Put("/{id}/status", goalHandler.UpdateStatus)
			r.Delete("/{id}", goalHandler.Delete)
		})

		// ──── Resource Routes ────
		r.Route("/resources", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/", resourceHandler.List)
			r.Get("/popular", resourceHandler.Popular)
			r.Get("/recent", resourceHandler.Recent)
			r.Get("/{id}", resourceHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(staffOnly)
				r.Post("/", resourceHandler.Create)
				r.Put("/{id}", resourceHandler.Update)
				r.Delete("/{id}", resourceHandler.Delete)
			})
		})

		// ──── Recommendation Routes ────
		r.Route("/recommendations", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/", recommendationHandler.Mine)
			r.Post("/feedback", recommendationHandler.SubmitFeedback)

			r.Group(func(r chi.Router) {
				r.Use(staffOnly)
				r.Post("/", recommendationHandler.Recommend)
				r.Get("/students/{studentID}", recommendationHandler.ForStudent)
			})
		})

		// ──── Progress Routes ────
		r.Route("/progress", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/", progressHandler.Mine)

			r.Group(func(r chi.Router) {
				r.Use(staffOnly)
				r.Get("/students/{studentID}", progressHandler.ForStudent)
			})
		})

		// ──── User & Settings Routes ────
		r.Route("/user", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/me", userHandler.Me)
			r.Put("/digest", userHandler.UpdateDigestSettings)
		})

		// ──── WebSocket ────
		r.Get("/ws", wsHub.HandleWebSocket)
	})

	return r
}
