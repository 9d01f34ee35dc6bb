package main

import (
	"context"
	"destiny-global-backend/config"
	_ "destiny-global-backend/docs" // Important for Swagger
	"destiny-global-backend/internal/catalog"
	v1 "destiny-global-backend/internal/delivery/http/v1"
	"destiny-global-backend/internal/usecase"
	"destiny-global-backend/pkg/email"
	"destiny-global-backend/pkg/logger"
	"destiny-global-backend/pkg/validation"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

// @title           Destiny Global Enquiry API
// @version         1.0
// @description     Form-relay API that emails catalog enquiries to the sales team.
// @host            localhost:5000
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.Env)
	logger.Log.Info("Starting enquiry API", "port", cfg.Port, "env", cfg.Env)
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. Company profile from the compiled-in catalog
	business := catalog.Default().Company()

	// 4. Setup Mailer (built once, shared read-only by every request)
	mailer := email.NewSMTPMailer(cfg)
	if !mailer.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - enquiries will fail")
	} else if cfg.MailVerifyOnStart {
		verifyCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		if err := mailer.Verify(verifyCtx); err != nil {
			logger.Log.Error("Email configuration error", "error", err)
		} else {
			logger.Log.Info("Email server is ready to send messages", "host", cfg.SMTPHost)
		}
		cancel()
	}

	// 5. Setup UseCases
	enquiryUC := usecase.NewEnquiryUsecase(mailer, validation.New(), usecase.EnquiryConfig{
		FromEmail:      cfg.SMTPFromEmail,
		SupportEmailTo: cfg.SupportEmailTo,
		Business:       business,
	})
	healthUC := usecase.NewHealthUsecase(business.Name)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		EnquiryUC: enquiryUC,
		HealthUC:  healthUC,
		Config:    cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Info("API endpoint ready", "url", "http://localhost:"+cfg.Port+"/api/enquiry", "cors_allow_all", cfg.CORSAllowAll)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
