package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lexai-legal/lexai-backend/internal/di"
	"github.com/lexai-legal/lexai-backend/pkg/config"
	"github.com/lexai-legal/lexai-backend/pkg/logger"
	"github.com/lexai-legal/lexai-backend/pkg/middleware"
)

// Server wraps the HTTP server and its routes
type Server struct {
	cfg       *config.Config
	log       *logger.Logger
	container *di.Container
	engine    *gin.Engine
	http      *http.Server
}

// New creates a Server with all routes and middleware configured
func New(cfg *config.Config, log *logger.Logger, container *di.Container) (*Server, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(log))

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.CORS.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.AllowOrigins
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	httpMetrics, err := middleware.NewHTTPMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP metrics: %w", err)
	}
	engine.Use(middleware.Metrics(httpMetrics))

	s := &Server{
		cfg:       cfg,
		log:       log,
		container: container,
		engine:    engine,
		http: &http.Server{
			Addr:         cfg.Server.Addr(),
			Handler:      engine,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
	}

	s.setupRoutes()

	return s, nil
}

func (s *Server) setupRoutes() {
	c := s.container

	api := s.engine.Group("/api")

	// Public routes
	api.GET("/health", c.HealthHandler.Check)

	auth := api.Group("/auth")
	{
		auth.POST("/register", c.AuthHandler.Register)
		auth.POST("/login", c.AuthHandler.Login)
	}

	// Protected routes require a valid bearer token; everything below
	// is scoped to the organization resolved from the token
	protected := api.Group("")
	protected.Use(middleware.Auth(c.Tokens))
	{
		protected.GET("/legal-categories", c.CategoryHandler.List)

		chat := protected.Group("/chat")
		{
			chat.POST("/message", c.ChatHandler.SendMessage)
			chat.GET("/history", c.ChatHandler.History)
			chat.GET("/conversation/:id", c.ChatHandler.GetConversation)
		}

		cases := protected.Group("/cases")
		{
			cases.POST("", c.CaseHandler.Create)
			cases.GET("", c.CaseHandler.List)
			cases.GET("/:id", c.CaseHandler.Get)
		}

		documents := protected.Group("/documents")
		{
			documents.POST("/analyze", c.DocumentHandler.Analyze)
			documents.GET("/analyses", c.DocumentHandler.ListAnalyses)
		}

		protected.GET("/dashboard/stats", c.DashboardHandler.Stats)
	}
}

// Engine exposes the underlying gin engine, mainly for tests
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Start begins serving HTTP requests and blocks until the server stops
func (s *Server) Start() error {
	s.log.Info("starting HTTP server",
		zap.String("addr", s.http.Addr),
		zap.String("environment", s.cfg.App.Environment),
	)

	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

// Shutdown gracefully stops the server, waiting for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down HTTP server")
	return s.http.Shutdown(ctx)
}
