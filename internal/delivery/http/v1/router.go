package v1

import (
	"destiny-global-backend/config"
	"destiny-global-backend/internal/delivery/http/middleware"
	"destiny-global-backend/internal/domain"
	"destiny-global-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const docsPrefix = "/api/docs"

type RouterDeps struct {
	EnquiryUC domain.EnquiryUsecase
	HealthUC  usecase.HealthUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(middleware.CORSPolicy{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowAll:       cfg.CORSAllowAll,
	})) // CORS must be first!
	r.Use(middleware.Recovery(cfg.IsDevelopment()))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeadersMiddleware(docsPrefix))
	r.Use(middleware.ErrorHandler(cfg.IsDevelopment()))

	api := r.Group("/api")

	NewHealthHandler(r, api, deps.HealthUC)
	NewEnquiryHandler(api, deps.EnquiryUC)

	// Swagger (opt-in; otherwise the path is a plain 404)
	if cfg.SwaggerEnabled {
		r.GET(docsPrefix+"/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.NoRoute(middleware.NotFound())

	return r
}
