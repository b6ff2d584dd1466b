package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"htmlblock/internal/auth"
	"htmlblock/internal/config"
	"htmlblock/internal/handler"
	"htmlblock/internal/middleware"
	"htmlblock/internal/render"
	"htmlblock/internal/repository/postgres"
	blocksvc "htmlblock/internal/service/block"
	"htmlblock/internal/service/block/sanitizer"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	var logOutput io.Writer = os.Stdout
	if cfg.LogDir != "" {
		logFile, err := config.SetupLogFile(cfg.LogDir, 10)
		if err != nil {
			log.Fatalf("Failed to setup log file: %v", err)
		}
		defer logFile.Close()
		logOutput = io.MultiWriter(os.Stdout, logFile)
	}

	logger := slog.New(slog.NewJSONHandler(logOutput, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// JWT verifier for authoring routes. An empty JWKS URL disables auth,
	// which only makes sense for local development.
	var jwtVerifier auth.JWTVerifier
	if cfg.JWKSURL != "" {
		verifier, err := auth.NewJWTVerifier(cfg.JWKSURL, logger)
		if err != nil {
			log.Fatalf("Failed to create JWT verifier: %v", err)
		}
		defer verifier.Close()
		jwtVerifier = verifier
	} else if cfg.Environment != "dev" {
		log.Fatal("JWKS_URL is required outside dev")
	} else {
		logger.Warn("JWKS_URL not set, authentication disabled")
	}

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected")

	// Create repositories
	tables := postgres.NewTableNames(cfg.TablePrefix)
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	blockRepo := postgres.NewBlockRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Sanitization policy is embedded; a load failure is a packaging bug
	htmlSanitizer, err := sanitizer.NewHTMLSanitizer()
	if err != nil {
		log.Fatalf("Failed to load sanitization policy: %v", err)
	}

	// Create services
	blockService := blocksvc.NewBlockService(blockRepo, txManager, htmlSanitizer, logger)

	// Packaged assets and view rendering
	loader := render.NewLoader(render.DefaultAssets(), cfg.StaticBaseURL)
	renderer, err := render.NewRenderer(loader)
	if err != nil {
		log.Fatalf("Failed to parse view templates: %v", err)
	}

	// Create handlers
	blockHandler := handler.NewBlockHandler(blockService, logger)
	viewHandler := handler.NewViewHandler(blockService, renderer, cfg.DefaultLocale, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", blockHandler.HealthCheck)

	// Block routes
	mux.HandleFunc("POST /api/blocks", blockHandler.CreateBlock)
	mux.HandleFunc("GET /api/blocks", blockHandler.ListBlocks)
	mux.HandleFunc("GET /api/blocks/{id}", blockHandler.GetBlock)
	mux.HandleFunc("PATCH /api/blocks/{id}", blockHandler.UpdateBlock)
	mux.HandleFunc("DELETE /api/blocks/{id}", blockHandler.DeleteBlock)
	mux.HandleFunc("POST /api/blocks/{id}/content", blockHandler.UpdateContent)

	// View routes
	mux.HandleFunc("GET /api/blocks/{id}/views/student", viewHandler.StudentView)
	mux.HandleFunc("GET /api/blocks/{id}/views/studio", viewHandler.StudioView)

	// Demo scenarios
	mux.HandleFunc("GET /api/scenarios", handler.Scenarios)

	// Packaged static assets (css, editor js, plugins, translations)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(loader.FS())))

	// Build middleware chain
	var h http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Logging → Recovery → Auth → Routes
	if jwtVerifier != nil {
		h = middleware.Auth(jwtVerifier)(h)
	}
	h = middleware.Recovery(logger)(h)
	h = middleware.Logging(logger)(h)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization", "Accept-Language"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
