// This is the main entry point of the projtrack application.
// It initializes configuration, the document store connection, services and
// handlers, sets up the HTTP router and middleware, and starts the HTTP
// server with graceful shutdown.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/user/projtrack-go/apperror"
	"github.com/user/projtrack-go/auth"
	"github.com/user/projtrack-go/config"
	"github.com/user/projtrack-go/db"
	"github.com/user/projtrack-go/mail"
	"github.com/user/projtrack-go/projects"
)

func main() {
	// Load .env file in development; in production variables are set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading it: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store, err := db.Connect(cfg.Mongo)
	if err != nil {
		log.Fatalf("Failed to connect to document store: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := store.Close(ctx); err != nil {
			log.Printf("Error disconnecting from document store: %v", err)
		}
	}()

	// Services and handlers wired by constructor injection.
	mailer := mail.NewSMTPSender(cfg.Mail)

	authService := auth.NewAuthService(auth.NewMongoRepository(store.Database), mailer, *cfg.Auth)
	authHandlers := auth.NewHandlers(authService)

	projectService := projects.NewProjectService(projects.NewMongoRepository(store.Database))
	projectHandlers := projects.NewProjectHandlers(projectService)

	r := chi.NewRouter()

	// Global middleware. Chi requires all middleware to be registered before
	// any routes.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Panic-to-JSON middleware so even panics produce the standard error body.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				if rvr := recover(); rvr != nil {
					log.Printf("Panic: %+v", rvr)
					writeError(ww, apperror.NewInternalError("internal server error", nil))
				}
			}()
			next.ServeHTTP(ww, r)
		})
	})

	// Auth routes. Register, login and the password reset flow are public;
	// /me requires a bearer token.
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandlers.HandleRegister())
		r.Post("/login", authHandlers.HandleLogin())
		r.Post("/forgot-password", authHandlers.HandleForgotPassword())
		r.Post("/reset-password/{token}", authHandlers.HandleResetPassword())

		r.Group(func(r chi.Router) {
			r.Use(auth.JWTMiddleware(cfg.Auth))
			r.Get("/me", authHandlers.HandleMe())
		})
	})

	// Project routes, all behind the JWT middleware.
	r.Route("/api/projects", func(r chi.Router) {
		r.Use(auth.JWTMiddleware(cfg.Auth))
		projectHandlers.RegisterRoutes(r)
	})

	// Probe route to verify a token end to end.
	r.Group(func(r chi.Router) {
		r.Use(auth.JWTMiddleware(cfg.Auth))
		r.Get("/api/protected", func(w http.ResponseWriter, r *http.Request) {
			auth.WriteJSON(w, http.StatusOK, auth.MessageResponse{Message: "protected route accessed successfully"})
		})
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal, then drain in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}

// writeError is a local helper for the panic recovery middleware, kept
// separate to avoid an import cycle with the handler packages.
func writeError(w http.ResponseWriter, appErr *apperror.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode())
	if err := json.NewEncoder(w).Encode(appErr.ToResponse()); err != nil {
		http.Error(w, `{"message":"failed to encode error response"}`, http.StatusInternalServerError)
	}
}
