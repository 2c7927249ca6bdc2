package di

import (
	"github.com/lexai-legal/lexai-backend/internal/handler"
	"github.com/lexai-legal/lexai-backend/internal/repository"
	"github.com/lexai-legal/lexai-backend/internal/service"
	"github.com/lexai-legal/lexai-backend/pkg/database"
	"github.com/lexai-legal/lexai-backend/pkg/token"
)

// Container holds all dependencies for the backend
type Container struct {
	// Infrastructure
	DB     *database.MongoDB
	Tokens *token.Issuer

	// Repositories
	OrgRepo      repository.OrganizationRepository
	UserRepo     repository.UserRepository
	ConvRepo     repository.ConversationRepository
	CaseRepo     repository.CaseRepository
	AnalysisRepo repository.AnalysisRepository

	// Services
	AuthService      service.AuthService
	ChatService      service.ChatService
	CaseService      service.CaseService
	DocumentService  service.DocumentService
	DashboardService service.DashboardService

	// Handlers
	HealthHandler    *handler.HealthHandler
	AuthHandler      *handler.AuthHandler
	CategoryHandler  *handler.CategoryHandler
	ChatHandler      *handler.ChatHandler
	CaseHandler      *handler.CaseHandler
	DocumentHandler  *handler.DocumentHandler
	DashboardHandler *handler.DashboardHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	DB          *database.MongoDB
	Tokens      *token.Issuer
	ServiceName string
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:     cfg.DB,
		Tokens: cfg.Tokens,
	}

	// Initialize repositories
	c.OrgRepo = repository.NewMongoOrganizationRepository(c.DB.Database())
	c.UserRepo = repository.NewMongoUserRepository(c.DB.Database())
	c.ConvRepo = repository.NewMongoConversationRepository(c.DB.Database())
	c.CaseRepo = repository.NewMongoCaseRepository(c.DB.Database())
	c.AnalysisRepo = repository.NewMongoAnalysisRepository(c.DB.Database())

	// Initialize services
	c.AuthService = service.NewAuthService(c.UserRepo, c.OrgRepo, c.Tokens)
	c.ChatService = service.NewChatService(c.ConvRepo, service.NewRandomResponder())
	c.CaseService = service.NewCaseService(c.CaseRepo)
	c.DocumentService = service.NewDocumentService(c.AnalysisRepo)
	c.DashboardService = service.NewDashboardService(c.CaseRepo, c.ConvRepo)

	// Initialize handlers
	c.HealthHandler = handler.NewHealthHandler(cfg.ServiceName)
	c.AuthHandler = handler.NewAuthHandler(c.AuthService)
	c.CategoryHandler = handler.NewCategoryHandler()
	c.ChatHandler = handler.NewChatHandler(c.ChatService)
	c.CaseHandler = handler.NewCaseHandler(c.CaseService)
	c.DocumentHandler = handler.NewDocumentHandler(c.DocumentService)
	c.DashboardHandler = handler.NewDashboardHandler(c.DashboardService)

	return c
}
