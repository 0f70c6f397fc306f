package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/akademik/internal/app/controllers"
	"github.com/yigit/akademik/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	healthController *controllers.HealthController,
	authController *controllers.AuthController,
	identifierController *controllers.IdentifierController,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/", healthController.Root)

	// API version group
	v1 := router.Group("/api/v1")
	v1.GET("/health", healthController.Health)

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Program catalog and identifier tools ---
	v1.GET("/programs", identifierController.ListPrograms)
	identifiers := v1.Group("/identifiers")
	{
		identifiers.GET("/:id", identifierController.ParseIdentifier)
		identifiers.POST("/allocate", identifierController.PreviewIdentifier)
	}

	admin := authMiddleware.AdminRequired()

	students := v1.Group("/students")
	{
		students.GET("", studentController.ListStudents)
		students.GET("/:id", studentController.GetStudent)
		students.GET("/:id/transcript", studentController.GetTranscript)
		students.POST("", admin, studentController.CreateStudent)
		students.PUT("/:id", admin, studentController.UpdateStudent)
		students.DELETE("/:id", admin, studentController.DeleteStudent)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.GET("/:id", courseController.GetCourse)
		courses.POST("", admin, courseController.CreateCourse)
		courses.PUT("/:id", admin, courseController.UpdateCourse)
		courses.DELETE("/:id", admin, courseController.DeleteCourse)
	}

	enrollments := v1.Group("/enrollments")
	{
		enrollments.GET("", enrollmentController.ListEnrollments)
		enrollments.GET("/:id", enrollmentController.GetEnrollment)
		enrollments.POST("", admin, enrollmentController.CreateEnrollment)
		enrollments.PUT("/:id", admin, enrollmentController.UpdateEnrollment)
		enrollments.DELETE("/:id", admin, enrollmentController.DeleteEnrollment)
	}
}
