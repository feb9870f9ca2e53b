package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/annolab/annotator-api/api/annotations"
	"github.com/annolab/annotator-api/api/health"
	"github.com/annolab/annotator-api/api/images"
	"github.com/annolab/annotator-api/api/labels"
	"github.com/annolab/annotator-api/api/types"
	"github.com/annolab/annotator-api/api/version"
	_ "github.com/annolab/annotator-api/docs/swagger"
	imagesService "github.com/annolab/annotator-api/internal/services/images"
	labelsService "github.com/annolab/annotator-api/internal/services/labels"
	recordsService "github.com/annolab/annotator-api/internal/services/records"
	"github.com/annolab/annotator-api/internal/services/storage"
	"github.com/annolab/annotator-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")

	// Load config for API routes
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	// Initialize services if not already set
	if deps == nil {
		deps = &types.Dependencies{}
	}

	if deps.LabelService == nil || deps.ImageService == nil || deps.RecordService == nil {
		if err := initializeAnnotationServices(deps, cfg); err != nil {
			return fmt.Errorf("failed to initialize annotation services: %w", err)
		}
	}

	// Per client rate limits come from the rate_limiting.endpoints map,
	// read as sustained requests per second with double that as burst
	limited := cfg.RateLimiting.Enabled
	defaultRPS := endpointRate(cfg, "default", 20)
	uploadRPS := endpointRate(cfg, "upload", 30)
	exportRPS := endpointRate(cfg, "export", 60)

	// Register label routes with general rate limiting. Label lists are
	// small JSON bodies, so the tighter request size cap applies too.
	labelsGroup := v1.Group("/labels")
	labelsGroup.Use(RequestSizeLimit())
	if limited {
		labelsGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, defaultRPS, 2*defaultRPS))
	}
	labels.RegisterRoutes(labelsGroup, deps)

	// Register image routes with upload rate limiting
	imagesGroup := v1.Group("/images")
	if limited {
		imagesGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, uploadRPS, 2*uploadRPS))
	}
	images.RegisterRoutes(imagesGroup, deps)

	// Register annotation routes on the image resource with general rate
	// limiting; the export route carries its own allowance since training
	// pipelines poll it
	annotationGroup := v1.Group("/images")
	var exportLimit gin.HandlerFunc
	if limited {
		annotationGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, defaultRPS, 2*defaultRPS))
		exportLimit = PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, exportRPS, 2*exportRPS)
	}
	annotations.RegisterRoutes(annotationGroup, deps, exportLimit)

	// Register the annotation catalog listing. This works without a
	// database too, where it falls back to scanning the artifact store.
	catalogGroup := v1.Group("/annotations")
	if limited {
		catalogGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, defaultRPS, 2*defaultRPS))
	}
	annotations.RegisterCatalogRoutes(catalogGroup, deps)

	return nil
}

// initializeAnnotationServices builds the artifact stores and the services
// on top of them. The catalog repository is only attached when a database
// connection is available.
func initializeAnnotationServices(deps *types.Dependencies, cfg *config.Config) error {
	annotationStore, err := storage.NewLocalArtifactStore(cfg.Storage.AnnotationsDir)
	if err != nil {
		return fmt.Errorf("opening annotations dir: %w", err)
	}
	uploadStore, err := storage.NewLocalArtifactStore(cfg.Storage.UploadsDir)
	if err != nil {
		return fmt.Errorf("opening uploads dir: %w", err)
	}
	annotatedStore, err := storage.NewLocalArtifactStore(cfg.Storage.ImagesDir)
	if err != nil {
		return fmt.Errorf("opening annotated images dir: %w", err)
	}

	if deps.LabelService == nil {
		deps.LabelService = labelsService.NewService(annotationStore)
	}

	if deps.ImageService == nil {
		deps.ImageService = imagesService.NewService(uploadStore, annotatedStore)
	}

	if deps.RecordService == nil {
		var repo recordsService.Repository
		if deps.DB != nil && deps.DB.DB != nil {
			repo = recordsService.NewRepository(deps.DB.DB)
		}
		deps.RecordService = recordsService.NewService(annotationStore, deps.ImageService, repo)
	}

	return nil
}

// endpointRate reads the configured requests per second for an endpoint
// class, falling back when the key is absent or zero
func endpointRate(cfg *config.Config, name string, fallback int) int {
	if rps, ok := cfg.RateLimiting.Endpoints[name]; ok && rps > 0 {
		return rps
	}
	return fallback
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
