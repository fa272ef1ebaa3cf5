package main

import (
	"log"
	"os"

	"backend/config"
	"backend/controllers"
	_ "backend/docs" // swagger generated docs
	"backend/middleware"
	"backend/models"
	"backend/services/activity"
	"backend/services/comments"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Movie Catalog API
// @version         1.0
// @description     Backend API for the movie and series catalog
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Enter the Bearer token here
func main() {
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Error initializing logger:", err)
	}

	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file")
	}

	db, err := config.InitDB()
	if err != nil {
		log.Fatal("Error connecting to database:", err)
	}

	models.SetDB(db)

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.Static("/uploads", "./uploads")

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	activityService := activity.NewActivityService(db)
	commentService := comments.NewCommentService(db)

	authController := controllers.NewAuthController(db, activityService)
	userManagementController := controllers.NewUserManagementController(db)
	activityController := controllers.NewActivityController(activityService)
	movieController := controllers.NewMovieController(db, activityService)
	seriesController := controllers.NewSeriesController(db, activityService)
	commentController := controllers.NewCommentController(commentService, activityService)
	maintenanceController := controllers.NewMaintenanceController(activityService)

	// Public catalog listing, mounted outside the API group on purpose:
	// it is the endpoint site frontends and crawlers consume.
	r.GET("/movies-list/", movieController.ListMovies)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/register", authController.Register)
		v1.POST("/login", authController.Login)
		v1.GET("/maintenance/status", maintenanceController.GetMaintenanceStatus)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/user/info", authController.GetUserInfo)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.AuthMiddleware())
		admin.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleEditor))
		admin.Use(middleware.MaintenanceMiddleware())
		{
			admin.GET("/genres", controllers.GetAllGenres)
			admin.GET("/genres/:id", controllers.GetGenreByID)
			admin.POST("/genres", controllers.CreateGenre)
			admin.PUT("/genres/:id", controllers.UpdateGenre)
			admin.DELETE("/genres/:id", controllers.DeleteGenre)

			admin.GET("/platforms", controllers.GetAllPlatforms)
			admin.GET("/platforms/:id", controllers.GetPlatformByID)
			admin.POST("/platforms", controllers.CreatePlatform)
			admin.PUT("/platforms/:id", controllers.UpdatePlatform)
			admin.DELETE("/platforms/:id", controllers.DeletePlatform)

			admin.GET("/countries", controllers.GetAllCountries)
			admin.GET("/countries/:id", controllers.GetCountryByID)
			admin.POST("/countries", controllers.CreateCountry)
			admin.PUT("/countries/:id", controllers.UpdateCountry)
			admin.DELETE("/countries/:id", controllers.DeleteCountry)

			admin.GET("/age-limits", controllers.GetAllAgeLimits)
			admin.GET("/age-limits/:id", controllers.GetAgeLimitByID)
			admin.POST("/age-limits", controllers.CreateAgeLimit)
			admin.PUT("/age-limits/:id", controllers.UpdateAgeLimit)
			admin.DELETE("/age-limits/:id", controllers.DeleteAgeLimit)

			admin.GET("/directors", controllers.GetAllDirectors)
			admin.GET("/directors/:id", controllers.GetDirectorByID)
			admin.POST("/directors", controllers.CreateDirector)
			admin.PUT("/directors/:id", controllers.UpdateDirector)
			admin.DELETE("/directors/:id", controllers.DeleteDirector)
			admin.POST("/directors/:id/portrait", controllers.UploadDirectorPortrait)

			admin.GET("/actors", controllers.GetAllActors)
			admin.GET("/actors/:id", controllers.GetActorByID)
			admin.POST("/actors", controllers.CreateActor)
			admin.PUT("/actors/:id", controllers.UpdateActor)
			admin.DELETE("/actors/:id", controllers.DeleteActor)
			admin.POST("/actors/:id/portrait", controllers.UploadActorPortrait)

			admin.GET("/movies", movieController.GetAllMovies)
			admin.GET("/movies/:id", movieController.GetMovieByID)
			admin.POST("/movies", movieController.CreateMovie)
			admin.PUT("/movies/:id", movieController.UpdateMovie)
			admin.DELETE("/movies/:id", movieController.DeleteMovie)

			admin.GET("/series", seriesController.GetAllSeries)
			admin.GET("/series/:id", seriesController.GetSeriesByID)
			admin.POST("/series", seriesController.CreateSeries)
			admin.PUT("/series/:id", seriesController.UpdateSeries)
			admin.DELETE("/series/:id", seriesController.DeleteSeries)

			admin.GET("/comments", commentController.GetAllComments)
			admin.GET("/comments/:id", commentController.GetCommentByID)
			admin.POST("/comments", commentController.CreateComment)
			admin.PUT("/comments/:id", commentController.EditComment)
			admin.DELETE("/comments/:id", commentController.DeleteComment)

			admin.GET("/stats", controllers.GetCatalogStats)
			admin.GET("/system/status", controllers.GetSystemStatus)
			admin.GET("/logs", controllers.GetLogs)
			admin.GET("/activities", activityController.GetRecentActivities)
		}

		adminOnly := v1.Group("/admin")
		adminOnly.Use(middleware.AuthMiddleware())
		adminOnly.Use(middleware.RequireRoles(models.RoleAdmin))
		{
			adminOnly.GET("/users", userManagementController.GetAllUsers)
			adminOnly.GET("/users/:id", userManagementController.GetUser)
			adminOnly.PUT("/users/:id", userManagementController.UpdateUser)
			adminOnly.DELETE("/users/:id", userManagementController.DeleteUser)

			// Registered outside the maintenance gate so maintenance
			// mode can always be switched off again.
			adminOnly.GET("/maintenance", maintenanceController.GetMaintenanceStatus)
			adminOnly.POST("/maintenance/toggle", maintenanceController.ToggleMaintenance)
		}

		// WebSocket route stays middleware-free: browsers cannot send the
		// Authorization header during the upgrade, so the handler itself
		// authenticates via a token query parameter.
		v1.GET("/admin/logs/watch", controllers.WatchLogs)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r.Run(":" + port)
}
