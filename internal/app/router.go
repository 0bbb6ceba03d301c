package app

import (
	"lingua_placement/docs"
	"lingua_placement/internal/config"
	"lingua_placement/internal/middleware"
	"lingua_placement/internal/model"
	"lingua_placement/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/api/health", c.health.HealthCheck)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerLearnerRoutes(authGroup, c)
		a.registerInstructorRoutes(authGroup, c)
	}
}

func (a *App) registerLearnerRoutes(group *gin.RouterGroup, c *controllers) {
	learner := group.Group("/learner")
	{
		learner.GET("/test", c.placement.GetTest)
		learner.POST("/test/submit", c.placement.SubmitTest)
		learner.GET("/test/result", c.placement.GetResult)
	}
}

func (a *App) registerInstructorRoutes(group *gin.RouterGroup, c *controllers) {
	instructor := group.Group("/instructor")
	instructor.Use(middleware.RoleMiddleware(model.Instructor))
	{
		instructor.GET("/test-questions", c.testQuestion.ListQuestions)
		instructor.POST("/test-questions", c.testQuestion.CreateQuestion)
		instructor.GET("/test-questions/stats", c.testQuestion.Stats)
		instructor.PUT("/test-questions/:id", c.testQuestion.ReplaceQuestion)
		instructor.DELETE("/test-questions/:id", c.testQuestion.DeleteQuestion)
	}
}
