package routes

import (
	"project-tracker-backend/internal/api/handlers"
	"project-tracker-backend/internal/api/middleware"
	"project-tracker-backend/internal/config"
	"project-tracker-backend/internal/repository"
	"project-tracker-backend/internal/service"
	"project-tracker-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	personRepo := repository.NewPersonRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	teamMemberRepo := repository.NewTeamMemberRepository(db)
	hardwareRepo := repository.NewHardwareRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Initialize attachment store
	store := storage.NewDiskStore(cfg.UploadDir, cfg.UploadBasePath)

	// Initialize services
	personService := service.NewPersonService(personRepo, validator)
	projectService := service.NewProjectService(projectRepo, personRepo, teamMemberRepo, validator)
	hardwareService := service.NewHardwareService(hardwareRepo, personRepo, validator)
	taskService := service.NewTaskService(taskRepo, projectRepo, validator)
	uploadService := service.NewUploadService(store)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	personHandler := handlers.NewPersonHandler(personService)
	projectHandler := handlers.NewProjectHandler(projectService)
	hardwareHandler := handlers.NewHardwareHandler(hardwareService)
	taskHandler := handlers.NewTaskHandler(taskService)
	uploadHandler := handlers.NewUploadHandler(uploadService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded blobs are served from the public static-asset path
	router.Static(cfg.UploadBasePath, cfg.UploadDir)

	// Person routes
	persons := router.Group("/persons")
	{
		persons.GET("", personHandler.GetAllPersons)
		persons.POST("", personHandler.CreatePerson)
		persons.GET("/:id", personHandler.GetPerson)
		persons.PUT("/:id", personHandler.UpdatePerson)
		persons.DELETE("/:id", personHandler.DeletePerson)
	}

	// Project routes
	projects := router.Group("/projects")
	{
		projects.GET("", projectHandler.GetAllProjects)
		projects.POST("", projectHandler.CreateProject)
		projects.GET("/:id", projectHandler.GetProject)
		projects.PUT("/:id", projectHandler.UpdateProject)
		projects.DELETE("/:id", projectHandler.DeleteProject)
		projects.PUT("/:id/team", projectHandler.ReplaceTeam)
	}

	// Hardware routes
	hardware := router.Group("/hardware")
	{
		hardware.GET("", hardwareHandler.GetAllHardware)
		hardware.POST("", hardwareHandler.CreateHardware)
		hardware.GET("/:id", hardwareHandler.GetHardware)
		hardware.PUT("/:id", hardwareHandler.UpdateHardware)
		hardware.DELETE("/:id", hardwareHandler.DeleteHardware)
	}

	// Task routes
	tasks := router.Group("/tasks")
	{
		tasks.GET("", taskHandler.GetAllTasks)
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("/:id", taskHandler.GetTask)
		tasks.PUT("/:id", taskHandler.UpdateTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
	}

	// Upload route
	router.POST("/upload", uploadHandler.Upload)

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}
