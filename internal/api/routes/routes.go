package routes

import (
	"estimating-portal-backend/internal/api/handlers"
	"estimating-portal-backend/internal/api/middleware"
	"estimating-portal-backend/internal/config"
	"estimating-portal-backend/internal/database"
	"estimating-portal-backend/internal/repository"
	"estimating-portal-backend/internal/service"
	"estimating-portal-backend/internal/sheets"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, client sheets.Client) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize repositories
	projectRepo := repository.NewProjectRepository(db)
	libraryRepo := repository.NewLibraryItemRepository(db)
	configRepo := repository.NewTakeoffConfigRepository(db)
	versionRepo := repository.NewProjectVersionRepository(db)

	// On-demand schema provisioning for the relational fallback stores
	ensureSchema := func() error {
		return database.EnsureSchema(db)
	}

	// Initialize validator
	validator := validator.New()

	// Initialize services
	libraryService := service.NewLibraryService(libraryRepo)
	configService := service.NewConfigService(projectRepo, configRepo, client, cfg, ensureSchema)
	versionService := service.NewVersionService(projectRepo, versionRepo, client, cfg, validator)
	generateService := service.NewGenerateService(projectRepo, versionRepo, libraryService, versionService, client, cfg, ensureSchema)
	workbookService := service.NewWorkbookService(projectRepo, client, cfg)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	libraryHandler := handlers.NewLibraryHandler(libraryService)
	configHandler := handlers.NewConfigHandler(configService)
	generateHandler := handlers.NewGenerateHandler(generateService)
	versionsHandler := handlers.NewVersionsHandler(versionService)
	workbookHandler := handlers.NewWorkbookHandler(workbookService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		takeoff := v1.Group("/takeoff")
		{
			takeoff.GET("/library", libraryHandler.GetLibrary)

			project := takeoff.Group("/:projectId")
			{
				project.GET("/config", configHandler.GetConfig)
				project.POST("/config", configHandler.SaveConfig)
				project.DELETE("/config", configHandler.DeleteConfig)

				project.POST("/generate", generateHandler.Generate)
				project.POST("/workbook", workbookHandler.EnsureWorkbook)

				project.GET("/versions", versionsHandler.ListVersions)
				project.PUT("/versions", versionsHandler.UpdateVersion)
				project.POST("/versions", versionsHandler.CopyVersion)
				project.POST("/versions/classify", versionsHandler.ClassifyBidTypes)
				project.DELETE("/versions", versionsHandler.DeleteVersion)
			}
		}
	}

	return router
}
