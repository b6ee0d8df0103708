package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/tasknest/tasknest/internal/auth"
	"github.com/tasknest/tasknest/internal/handler"
	"github.com/tasknest/tasknest/internal/middleware"
	"github.com/tasknest/tasknest/internal/service"
	"github.com/tasknest/tasknest/internal/storage/sqlite"
	"github.com/tasknest/tasknest/pkg/logging"
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	// Optional .env for local development; real deployments set env directly
	_ = godotenv.Load()

	// Setup structured logging
	logging.Setup()

	// Get paths from env or use defaults
	port := getEnv("PORT", "3000")
	dbPath := getEnv("DB_PATH", "./data/tasknest.db")
	staticPath := getEnv("STATIC_PATH", "./frontend/build")

	// Initialize SQLite storage
	store, err := sqlite.New(dbPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", dbPath)

	// Wire services: bcrypt authenticator over the store, then the two
	// services the API exposes
	authenticator := auth.NewPasswordAuthenticator(store)
	authService := service.NewAuthService(authenticator, slog.Default())
	taskService := service.NewTaskService(store)

	mux := http.NewServeMux()

	// Register API routes
	handler.New(authService, taskService).Routes(mux)

	// Prometheus exposition
	mux.Handle("GET /metrics", promhttp.Handler())

	// Serve the front-end build for all non-API routes
	staticDir, err := filepath.Abs(staticPath)
	if err != nil {
		slog.Error("Failed to resolve static path", "error", err)
		os.Exit(1)
	}
	slog.Info("Serving static files", "path", staticDir)

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(staticDir, filepath.Clean(urlPath))

		// SPA fallback: unknown paths get index.html so client routing works
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}

		http.ServeFile(w, r, filePath)
	})

	// Add metrics, CORS and logging middleware
	wrapped := middleware.Logging(middleware.CORS(middleware.Metrics(mux)))

	// Wrap with h2c for HTTP/2 without TLS
	h2cHandler := h2c.NewHandler(wrapped, &http2.Server{})

	addr := fmt.Sprintf(":%s", port)
	slog.Info("Server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
	if err := http.ListenAndServe(addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
