package routes

import (
	"net/http"
	"time"

	"classtrack/handlers"
	"classtrack/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the admin login endpoint.
func RegisterAuthRoutes(r *gin.Engine) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", handlers.AdminLoginHandler)
		api.POST("/logout", middleware.JWTAuthAdminMiddleware(), handlers.AdminLogoutHandler)
	}
}

// RegisterClassRoutes registers class management endpoints.
func RegisterClassRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/classes")
	{
		api.GET("", hb.Class.ListClassesHandler)
		api.GET("/:classID", hb.Class.GetClassHandler)

		// Mutations require admin authentication.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.POST("", hb.Class.CreateClassHandler)
		protected.PUT("/:classID", hb.Class.UpdateClassHandler)
		protected.DELETE("/:classID", hb.Class.DeleteClassHandler)
	}
}

// RegisterStudentRoutes registers student, grade and attendance endpoints.
func RegisterStudentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/students")
	{
		api.GET("/:id", hb.Student.GetStudentHandler)
		api.GET("/:id/grades", hb.Student.ListGradesHandler)
		api.GET("/:id/attendance", hb.Student.ListAttendanceHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.POST("", hb.Student.CreateStudentHandler)
		protected.PUT("/:id", hb.Student.UpdateStudentHandler)
		protected.DELETE("/:id", hb.Student.DeleteStudentHandler)
		protected.POST("/:id/grades", hb.Student.AddGradeHandler)
		protected.POST("/:id/attendance", hb.Student.MarkAttendanceHandler)
	}

	r.GET("/api/classes/:classID/students", hb.Student.ListStudentsHandler)
}

// RegisterScheduleRoutes registers schedule and exception endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	classes := r.Group("/api/classes/:classID")
	{
		classes.GET("/schedules", hb.Schedule.ListSchedulesHandler)
		classes.GET("/schedules/overview", hb.Schedule.WeeklyOverviewHandler)
		classes.GET("/schedules/stats", hb.Schedule.ScheduleStatsHandler)
	}

	api := r.Group("/api/schedules")
	{
		api.GET("/:id", hb.Schedule.GetScheduleHandler)
		api.GET("/:id/exceptions", hb.Schedule.ListExceptionsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.POST("", hb.Schedule.CreateScheduleHandler)
		protected.POST("/bulk", hb.Schedule.BulkCreateSchedulesHandler)
		protected.PUT("/:id", hb.Schedule.UpdateScheduleHandler)
		protected.DELETE("/:id", hb.Schedule.DeleteScheduleHandler)
	}

	exceptions := r.Group("/api/exceptions")
	{
		exceptions.Use(middleware.JWTAuthAdminMiddleware())
		exceptions.POST("", hb.Schedule.CreateExceptionHandler)
		exceptions.PUT("/:id", hb.Schedule.UpdateExceptionHandler)
		exceptions.DELETE("/:id", hb.Schedule.DeleteExceptionHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm ClassTrack"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r)
	RegisterClassRoutes(r, hb)
	RegisterStudentRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterHealthRoute(r)
}
