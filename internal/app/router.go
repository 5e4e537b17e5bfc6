package app

import (
	"lms_backend/docs"
	"lms_backend/internal/config"
	"lms_backend/internal/middleware"
	"lms_backend/internal/model"
	"lms_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c, cfg)
	a.registerAuthRoutes(router, c, cfg)
}

// registerPublicRoutes covers everything a guest may reach. Course reads
// take the optional token so a logged-in caller gets the projection the
// policy grants them.
func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.POST("/password/forgot", c.auth.ForgotPassword)
		public.POST("/password/reset", c.auth.ResetPassword)

		public.GET("/categories", c.category.List)

		public.GET("/courses", middleware.TryAuthMiddleware(cfg), c.course.List)
		public.GET("/courses/:id", middleware.TryAuthMiddleware(cfg), c.course.Detail)
	}
}

func (a *App) registerAuthRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.GetProfile)
		authGroup.PUT("/profile", c.user.UpdateProfile)
		authGroup.POST("/profile/avatar", c.user.UploadAvatar)

		authGroup.GET("/users", c.user.ListUsers)
		authGroup.GET("/users/:id", c.user.GetUser)

		// Content reads; the policy narrows them to the owner, admins and
		// enrolled students.
		authGroup.GET("/courses/:id/lessons", c.lesson.ListByCourse)
		authGroup.GET("/lessons/:id", c.lesson.Get)
		authGroup.GET("/lessons/:id/materials", c.material.ListByLesson)
		authGroup.GET("/lessons/:id/questions", c.question.ListByLesson)
		authGroup.GET("/materials/:id", c.material.Get)

		authGroup.GET("/enrollments", c.enrollment.List)
		authGroup.POST("/enrollments", middleware.RoleMiddleware(model.Student), c.enrollment.Enroll)

		authGroup.GET("/questions/:id", c.question.Get)
		authGroup.POST("/questions", middleware.RoleMiddleware(model.Student), c.question.Ask)
		authGroup.PUT("/questions/:id", c.question.Update)
		authGroup.DELETE("/questions/:id", c.question.Delete)

		authGroup.POST("/categories", middleware.RoleMiddleware(model.Admin), c.category.Create)

		teacher := authGroup.Group("")
		teacher.Use(middleware.RoleMiddleware(model.Teacher, model.Admin))
		{
			teacher.POST("/courses", c.course.Create)
			teacher.PUT("/courses/:id", c.course.Update)
			teacher.DELETE("/courses/:id", c.course.Delete)
			teacher.POST("/courses/:id/banner", c.course.UploadBanner)

			teacher.POST("/lessons", c.lesson.Create)
			teacher.PUT("/lessons/:id", c.lesson.Update)
			teacher.DELETE("/lessons/:id", c.lesson.Delete)
			teacher.POST("/lessons/:id/video", c.lesson.UploadVideo)

			teacher.POST("/materials", c.material.Create)
			teacher.PUT("/materials/:id", c.material.Update)
			teacher.DELETE("/materials/:id", c.material.Delete)
		}
	}
}
