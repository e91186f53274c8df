// @title Logistics Task API
// @version 1.0
// @description Delivery tasks, requirement submissions, reviews and dynamic checklists.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/logistics-go/internal/api/middleware"
	"github.com/linskybing/logistics-go/internal/api/routes"
	"github.com/linskybing/logistics-go/internal/application"
	"github.com/linskybing/logistics-go/internal/config"
	"github.com/linskybing/logistics-go/internal/config/db"
	"github.com/linskybing/logistics-go/internal/cron"
	"github.com/linskybing/logistics-go/internal/notify"
	"github.com/linskybing/logistics-go/internal/repository"
	"github.com/linskybing/logistics-go/internal/storage"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection and migrate
	db.Init()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.New(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize object store: %v", err)
	}

	repos := repository.New(db.DB)
	dispatcher := notify.NewDispatcher(newNotifier(repos), config.NotifyTimeout)
	services := application.New(repos, store, dispatcher)

	reconcileDone := cron.StartReconcileTask(ctx, services.Lifecycle, config.ReconcileInterval)

	if config.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.MaxMultipartMemory = config.MaxUploadSize

	routes.RegisterRoutes(router, services, repos)

	srv := &http.Server{
		Addr:              ":" + config.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Starting API server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down API server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	<-reconcileDone
	dispatcher.Wait()
	log.Println("API server stopped")
}

// newNotifier sends email when SMTP is configured and only logs otherwise.
func newNotifier(repos *repository.Repos) notify.Notifier {
	if config.SMTPHost == "" {
		log.Println("SMTP_HOST not set, notifications will only be logged")
		return notify.LogNotifier{}
	}
	return notify.NewEmailNotifier(notify.SMTPConfig{
		Host:     config.SMTPHost,
		Port:     config.SMTPPort,
		Username: config.SMTPUsername,
		Password: config.SMTPPassword,
		From:     config.SMTPFrom,
		FromName: config.SMTPFromName,
		UseTLS:   config.SMTPUseTLS,
		AppURL:   config.AppBaseURL,
	}, application.SubmitterResolver{Repos: repos})
}
