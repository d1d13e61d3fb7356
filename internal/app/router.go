package app

import (
	"academy_backend/docs"
	"academy_backend/internal/config"
	"academy_backend/internal/middleware"
	"academy_backend/internal/model"

	"academy_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c, repos)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerStudentRoutes(authGroup, c)
		a.registerInstructorRoutes(authGroup, c)
		a.registerAdminRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers, repos *repositories) {
	public := router.Group("/api")
	public.Use(middleware.ActivityMiddleware(repos.user))
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// Catalog is browsable by guests; unpublished courses stay hidden.
		public.GET("/courses", middleware.TryAuthMiddleware(a.Config), c.course.ListPublic)
		public.GET("/courses/:courseId", middleware.TryAuthMiddleware(a.Config), c.course.GetPublic)
		public.GET("/comments", middleware.TryAuthMiddleware(a.Config), c.comment.ListForLesson)
	}
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)

	rg.POST("/enroll", c.enrollment.Enroll)
	rg.POST("/enroll/status", c.enrollment.Status)
	rg.GET("/enrollments", c.enrollment.ListMine)

	rg.GET("/exams/:id", c.exam.GetStudentView)
	rg.POST("/exams/submit", c.submission.Submit)
	// legacy client path
	rg.POST("/submit-exam", c.submission.Submit)
	rg.GET("/submissions", c.submission.ListMine)
	rg.GET("/submissions/:id", c.submission.Get)

	rg.POST("/comments", c.comment.Create)

	rg.POST("/videos/secure-url", c.video.SecureURL)
	// legacy client path
	rg.POST("/video/getMinioSecureUrl", c.video.SecureURL)
	rg.GET("/videos/:id", c.video.Get)

	// Interactive package assets. The token query fallback in the auth
	// middleware covers player asset requests that cannot set headers.
	rg.GET("/courses/:courseId/package/*filepath", c.content.ServePackageFile)
}

func (a *App) registerInstructorRoutes(rg *gin.RouterGroup, c *controllers) {
	instructor := rg.Group("/instructor")
	instructor.Use(middleware.RoleMiddleware(model.Instructor))
	{
		instructor.GET("/courses", c.course.ListMine)
		instructor.POST("/courses", c.course.Create)
		instructor.PUT("/courses/:id", c.course.Update)
		instructor.DELETE("/courses/:id", c.course.Delete)
		instructor.POST("/courses/:id/sections", c.course.AddSection)
		instructor.DELETE("/sections/:id", c.course.DeleteSection)
		instructor.POST("/sections/:id/lessons", c.course.AddLesson)
		instructor.PUT("/lessons/:id", c.course.UpdateLesson)
		instructor.DELETE("/lessons/:id", c.course.DeleteLesson)

		instructor.GET("/exams", c.exam.ListMine)
		instructor.POST("/exams", c.exam.Create)
		instructor.GET("/exams/:id", c.exam.Get)
		instructor.PUT("/exams/:id", c.exam.Update)
		instructor.DELETE("/exams/:id", c.exam.Delete)
		instructor.POST("/exams/:id/publish", c.exam.Publish)
		instructor.POST("/exams/:id/archive", c.exam.Archive)
		instructor.GET("/exams/:id/submissions", c.submission.ListForExam)

		instructor.GET("/courses/:id/enrollments", c.enrollment.ListForCourse)

		instructor.GET("/courses/:id/comments", c.comment.ListForCourse)
		instructor.POST("/comments/:id/moderate", c.comment.Moderate)

		instructor.GET("/videos", c.video.ListMine)
		instructor.POST("/videos", c.video.Upload)
		instructor.DELETE("/videos/:id", c.video.Delete)

		instructor.POST("/attachments", c.content.UploadAttachment)
	}
}

func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	admin := rg.Group("/admin")
	admin.Use(middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/users", c.user.List)
		admin.POST("/users/:id/disable", c.user.SetDisabled)

		admin.POST("/participations/:id/paid", c.enrollment.MarkPaid)

		admin.DELETE("/comments/:id", c.comment.Delete)
	}
}
