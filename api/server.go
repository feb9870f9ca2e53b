package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/annolab/annotator-api/api/types"
	"github.com/annolab/annotator-api/internal/database"
	"github.com/annolab/annotator-api/pkg/config"
)

// Server represents the HTTP server
type Server struct {
	engine             *gin.Engine
	httpServer         *http.Server
	db                 *database.DB
	rateLimiters       *sync.Map
	cleanupInitialized sync.Once
	cleanupStop        chan struct{}

	// Dependencies for handlers
	dependencies *types.Dependencies
}

// NewServer creates a new HTTP server
func NewServer(address string) *Server {
	// Create Gin engine with recovery middleware only
	engine := gin.New()
	engine.Use(gin.Recovery())

	httpServer := &http.Server{
		Addr:           address,
		Handler:        engine,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    30 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	// Timeouts come from config when it has been initialized
	if cfg, err := config.GetConfig(); err == nil {
		if cfg.Server.ReadTimeout > 0 {
			httpServer.ReadTimeout = cfg.Server.ReadTimeout
		}
		if cfg.Server.WriteTimeout > 0 {
			httpServer.WriteTimeout = cfg.Server.WriteTimeout
		}
		if cfg.Server.MaxHeaderBytes > 0 {
			httpServer.MaxHeaderBytes = cfg.Server.MaxHeaderBytes
		}
	}

	server := &Server{
		engine:       engine,
		rateLimiters: &sync.Map{},
		cleanupStop:  make(chan struct{}),
		httpServer:   httpServer,
	}

	return server
}

// SetDatabase sets the database connection
func (s *Server) SetDatabase(db *database.DB) {
	s.db = db
	if s.dependencies == nil {
		s.dependencies = &types.Dependencies{}
	}
	s.dependencies.DB = db
}

// SetDependencies sets all handler dependencies
func (s *Server) SetDependencies(deps *types.Dependencies) {
	s.dependencies = deps
}

// Engine returns the Gin engine for testing
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Initialize sets up middleware and routes
func (s *Server) Initialize() error {
	// Setup global middleware
	s.setupMiddleware()

	// Setup routes
	if err := s.setupRoutes(); err != nil {
		return err
	}

	return nil
}

// setupMiddleware configures global middleware
func (s *Server) setupMiddleware() {
	// Logger middleware
	s.engine.Use(gin.Logger())

	cfg, err := config.GetConfig()
	if err != nil {
		s.engine.Use(CORS())
		s.engine.Use(RequestSizeLimit())
		return
	}

	if cfg.Security.EnableCORS {
		s.engine.Use(CORSWithConfig(
			cfg.Security.CORSOrigins,
			cfg.Security.CORSMethods,
			cfg.Security.CORSHeaders,
		))
	}

	// The global body cap has to admit image uploads. Tighter per-group
	// caps for the JSON endpoints are applied during route registration.
	maxUpload := cfg.Storage.MaxUploadSize
	if maxUpload <= 0 {
		maxUpload = 20 << 20
	}
	s.engine.Use(RequestSizeLimitWithSize(maxUpload + multipartOverhead))
}

// multipartOverhead leaves room for multipart framing around an upload
// that is exactly at the configured size limit
const multipartOverhead = 1 << 20

// setupRoutes delegates to the main route registration
func (s *Server) setupRoutes() error {
	return RegisterRoutes(s.engine, s.dependencies, s.rateLimiters, s.cleanupStop, &s.cleanupInitialized)
}

// Start starts the HTTP server
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	// Stop the rate limiter cleanup goroutine
	close(s.cleanupStop)

	return s.httpServer.Shutdown(ctx)
}
