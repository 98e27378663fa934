package api

import (
	"net/http"

	"github.com/blogdrown/blogdrown/internal/api/handlers"
	"github.com/blogdrown/blogdrown/internal/api/middleware"
	"github.com/blogdrown/blogdrown/internal/config"
	"github.com/blogdrown/blogdrown/internal/metrics"
	"github.com/blogdrown/blogdrown/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, collector *metrics.Collector, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)
	r.Use(middleware.Metrics(collector))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Prometheus metrics
	r.Method(http.MethodGet, "/metrics", collector.Handler())

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth, cfg)
	postHandler := handlers.NewPostHandler(services.Post)
	commentHandler := handlers.NewCommentHandler(services.Comment)
	followHandler := handlers.NewFollowHandler(services.Follow)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", authHandler.Signup)
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Get("/", authHandler.Info)
			})
		})

		r.Route("/blogs", func(r chi.Router) {
			// Public reads
			r.Get("/", postHandler.List)
			r.Get("/one", postHandler.GetOne)

			// Authenticated mutations
			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Post("/", postHandler.Create)
				r.Put("/{postID}", postHandler.Update)
				r.Delete("/{postID}", postHandler.Delete)
				r.Post("/{postID}/comments", commentHandler.Create)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			r.Route("/comments", func(r chi.Router) {
				r.Put("/{commentID}", commentHandler.Update)
				r.Delete("/{commentID}", commentHandler.Delete)
			})

			r.Route("/follows", func(r chi.Router) {
				r.Get("/", followHandler.List)
				r.Post("/{userID}", followHandler.Add)
				r.Delete("/{userID}", followHandler.Remove)
			})
		})
	})

	return r
}
