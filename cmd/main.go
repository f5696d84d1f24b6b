package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"github.com/sbilibin2017/student-records/internal/config"
	"github.com/sbilibin2017/student-records/internal/docs"
	"github.com/sbilibin2017/student-records/internal/flash"
	"github.com/sbilibin2017/student-records/internal/handlers"
	"github.com/sbilibin2017/student-records/internal/logger"
	"github.com/sbilibin2017/student-records/internal/repositories"
	"github.com/sbilibin2017/student-records/internal/services"
	"github.com/sbilibin2017/student-records/internal/storage"
	"github.com/sbilibin2017/student-records/internal/views"

	"github.com/sbilibin2017/student-records/internal/middlewares"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title student-records API
// @version 1.0.0
// @description Student record management with a read-only JSON view of single records
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, record store, flash store and HTTP server.
// It blocks until a shutdown signal arrives or the server fails.
func run(ctx context.Context, cfg *config.Config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.App.LogLevel, cfg.App.LogFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	// Open the record store, applying pending migrations
	db, err := storage.Open(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer storage.Close(db)

	// Flash messages live in Redis when configured, otherwise in a cookie
	flashes, closeFlashes, err := newFlashStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeFlashes()

	renderer, err := views.New()
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}

	docs.SwaggerInfo.Host = cfg.App.Addr()

	srv := &http.Server{
		Addr:              cfg.App.Addr(),
		Handler:           newRouter(cfg, db, renderer, flashes),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.App.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newFlashStore picks the flash message store. The returned func releases
// the resources held by the store.
func newFlashStore(ctx context.Context, cfg *config.Config) (flash.Store, func(), error) {
	if cfg.Redis.Addr == "" {
		logger.Log.Info("Flash messages stored in cookies")
		return flash.NewCookieStore(cfg.Flash.TTL()), func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, nil, fmt.Errorf("redis connection error: %w", err)
	}
	logger.Log.Infof("Flash messages stored in Redis at %s", cfg.Redis.Addr)

	return flash.NewRedisStore(rdb, cfg.Flash.TTL()), func() { rdb.Close() }, nil
}

// newRouter wires repositories, services and handlers into the HTTP routes.
// Mutating routes run inside a per-request transaction.
func newRouter(cfg *config.Config, db *sqlx.DB, renderer *views.Renderer, flashes flash.Store) http.Handler {
	// Initialize repositories
	studentReadRepo := repositories.NewStudentReadRepository(db, middlewares.GetTxFromContext)
	studentWriteRepo := repositories.NewStudentWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	studentService := services.NewStudentService(studentReadRepo, studentWriteRepo)

	// Initialize handlers
	homeHandler := handlers.NewHomeHandler(studentService, renderer, flashes)
	listHandler := handlers.NewListHandler(studentService, renderer, flashes)
	addFormHandler := handlers.NewAddFormHandler(renderer, flashes)
	addHandler := handlers.NewAddHandler(studentService, renderer, flashes)
	editFormHandler := handlers.NewEditFormHandler(studentService, renderer, flashes)
	editHandler := handlers.NewEditHandler(studentService, renderer, flashes)
	deleteHandler := handlers.NewDeleteHandler(studentService, renderer, flashes)
	getStudentAPIHandler := handlers.NewGetStudentAPIHandler(studentService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Read-only pages
	handlers.RegisterHomeHandler(r, homeHandler)
	handlers.RegisterListHandler(r, listHandler)
	handlers.RegisterAddFormHandler(r, addFormHandler)
	handlers.RegisterEditFormHandler(r, editFormHandler)

	// Mutating routes, each in its own transaction
	r.Group(func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(db))
		handlers.RegisterAddHandler(r, addHandler)
		handlers.RegisterEditHandler(r, editHandler)
		handlers.RegisterDeleteHandler(r, deleteHandler)
	})

	// JSON API
	r.Group(func(r chi.Router) {
		r.Use(cors.New(cors.Options{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet},
		}).Handler)
		handlers.RegisterGetStudentAPIHandler(r, getStudentAPIHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}
