package main

import (
	"encoding/json"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/CagilDisbudak/MoviePage/internal/auth"
	"github.com/CagilDisbudak/MoviePage/internal/config"
	"github.com/CagilDisbudak/MoviePage/internal/db"
	"github.com/CagilDisbudak/MoviePage/internal/handlers"
	"github.com/CagilDisbudak/MoviePage/internal/middleware"
	"github.com/CagilDisbudak/MoviePage/internal/repo"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {

	// Load configuration
	cfg := config.Load()

	setupLogger(cfg.LogFormat)

	if cfg.Env == "prod" && cfg.JWTSecret == config.DefaultJWTSecret {
		log.Fatal("JWT_SECRET must be set in prod")
	}

	// Connect to database FIRST
	database, err := db.Connect(
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		cfg.DBUser,
		cfg.DBPass,
	)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	database.SetMaxOpenConns(cfg.DBMaxOpenConns)
	database.SetMaxIdleConns(cfg.DBMaxIdleConns)

	slog.Info("connected to database", "host", cfg.DBHost, "name", cfg.DBName)

	// Apply migrations
	if err := db.Run(db.URL(cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBUser, cfg.DBPass)); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Token manager: invalid secret/TTL is a configuration error, fatal at startup.
	tokens, err := auth.NewTokenManager(auth.Config{
		Secret: []byte(cfg.JWTSecret),
		TTL:    time.Duration(cfg.JWTExpireMinutes) * time.Minute,
	})
	if err != nil {
		log.Fatalf("Invalid token configuration: %v", err)
	}

	// Repositories
	userRepo := repo.NewUserRepo(database)
	movieRepo := repo.NewMovieRepo(database)
	reviewRepo := repo.NewReviewRepo(database)

	// Handlers
	authHandler := &handlers.AuthHandler{UserRepo: userRepo, Tokens: tokens}
	movieHandler := &handlers.MovieHandler{Repo: movieRepo, Reviews: reviewRepo}
	reviewHandler := &handlers.ReviewHandler{Repo: reviewRepo, Movies: movieRepo}
	userHandler := &handlers.UserHandler{Repo: userRepo}

	authn := &middleware.Authenticator{Tokens: tokens, Users: userRepo}
	authLimiter := middleware.AuthRateLimiter()

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestLog)
	r.Use(middleware.Prometheus)
	r.Use(middleware.SecurityHeaders(cfg.TLSCertFile != "" && cfg.TLSKeyFile != ""))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.MaxBytes(middleware.DefaultMaxBodyBytes))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Movie API is running!"})
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Method("GET", "/metrics", promhttp.Handler())

	// Auth endpoints, rate limited per IP
	r.Group(func(r chi.Router) {
		r.Use(authLimiter.Middleware)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/logout", authHandler.Logout)
	})

	// Public catalog reads
	r.Get("/movies", movieHandler.ListMovies)
	r.Get("/movies/{id}", movieHandler.GetMovie)
	r.Get("/movies/{id}/reviews", reviewHandler.ListForMovie)
	r.Get("/search", movieHandler.SearchMovies)

	// Protected: any authenticated user
	r.Group(func(r chi.Router) {
		r.Use(authn.Middleware)
		r.Get("/auth/me", authHandler.Me)
		r.Post("/reviews", reviewHandler.CreateReview)
	})

	// Protected: admin only
	r.Group(func(r chi.Router) {
		r.Use(authn.Middleware)
		r.Use(middleware.RequireRole("admin"))
		r.Post("/movies", movieHandler.CreateMovie)
		r.Get("/users", userHandler.ListUsers)
		r.Get("/users/{id}", userHandler.GetUser)
	})

	addr := ":" + cfg.Port
	if cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		slog.Info("starting server with TLS", "addr", addr)
		err = http.ListenAndServeTLS(addr, cfg.TLSCertFile, cfg.TLSKeyFile, r)
	} else {
		slog.Info("starting server", "addr", addr)
		err = http.ListenAndServe(addr, r)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// setupLogger configures the default slog handler (text or json).
func setupLogger(format string) {
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, nil)
	} else {
		handler = slog.NewTextHandler(os.Stdout, nil)
	}
	slog.SetDefault(slog.New(handler))
}
