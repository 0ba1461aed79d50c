package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/opencre/mockapi/internal/config"
	"github.com/opencre/mockapi/internal/generator"
	"github.com/opencre/mockapi/internal/handlers"
	"github.com/opencre/mockapi/internal/logger"
	"github.com/opencre/mockapi/internal/middleware"
	"github.com/opencre/mockapi/internal/openapi"
	"github.com/opencre/mockapi/internal/services"
	"github.com/opencre/mockapi/internal/store"
)

const (
	shutdownTimeout = 30 * time.Second
)

func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.Server.Env)
	log.Info("Starting CRE mock API", map[string]interface{}{
		"version":     handlers.APIVersion,
		"environment": cfg.Server.Env,
		"port":        cfg.Server.Port,
	})

	// Generate the initial dataset
	gen := generator.New(generator.Config{
		Properties:   cfg.Dataset.Properties,
		Parties:      cfg.Dataset.Parties,
		Brokers:      cfg.Dataset.Brokers,
		Transactions: cfg.Dataset.Transactions,
	})
	initial, err := gen.Generate()
	if err != nil {
		log.Fatal("Failed to generate initial dataset", err, map[string]interface{}{
			"properties":   cfg.Dataset.Properties,
			"parties":      cfg.Dataset.Parties,
			"brokers":      cfg.Dataset.Brokers,
			"transactions": cfg.Dataset.Transactions,
		})
	}
	st := store.New(initial)

	log.Info("Dataset generated", map[string]interface{}{
		"properties":   len(initial.Properties),
		"parties":      len(initial.Parties),
		"brokers":      len(initial.Brokers),
		"documents":    len(initial.Documents),
		"transactions": len(initial.Transactions),
	})

	// Setup Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware in order: RequestID -> Logger -> Recovery -> CORS
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.CORS.Origins))

	// Load the static OpenAPI spec. A failure here only disables the
	// documentation endpoints; the query API keeps serving.
	docs, docsErr := openapi.Load(cfg.Docs.SpecPath)
	if docsErr != nil {
		log.Warn("Failed to load OpenAPI spec; documentation endpoints disabled", map[string]interface{}{
			"path":  cfg.Docs.SpecPath,
			"error": docsErr.Error(),
		})
	} else {
		docs.Register(router)
		log.Info("Documentation endpoints registered", map[string]interface{}{
			"path":  cfg.Docs.SpecPath,
			"title": docs.Title(),
		})
	}

	// Initialize service and handler layers
	transactionService := services.NewTransactionService(st, gen.Generate, log)
	trendService := services.NewTrendService(log)

	transactionHandler := handlers.NewTransactionHandler(transactionService)
	trendsHandler := handlers.NewTrendsHandler(trendService)
	healthHandler := handlers.NewHealthHandler(st, cfg.Server.Env)
	rootHandler := handlers.NewRootHandler(docsErr == nil)

	// Register routes
	router.GET("/", rootHandler.Root)
	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/v1")
	{
		v1.GET("/transactions", transactionHandler.List)
		v1.GET("/transactions/:transactionId", transactionHandler.Get)
		v1.GET("/trends", trendsHandler.Trends)
		v1.POST("/reset-data", transactionHandler.Reset)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server listening", map[string]interface{}{
			"port": cfg.Server.Port,
			"addr": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", err, nil)
		}
	}()

	// Wait for interrupt signal (SIGINT or SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	log.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err, map[string]interface{}{
			"timeout": shutdownTimeout.String(),
		})
	}

	log.Info("Server exited", nil)
}
