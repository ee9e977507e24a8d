package enrollmentRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupEnrollmentRoutes sets up enrollment listing and progress routes
func SetupEnrollmentRoutes(app *fiber.App) {
	enrollGroup := app.Group("/enrollments", middleware.JWTMiddleware)

	enrollGroup.Get("/my",
		middleware.RequireRole(middleware.RoleStudent),
		controllers.GetMyEnrollments)
	enrollGroup.Get("/course/:courseId/students",
		middleware.RequireRole(middleware.RoleAdmin),
		validators.CourseIDParam("courseId"), controllers.GetCourseEnrollments)
	enrollGroup.Get("/:courseId",
		middleware.RequireRole(middleware.RoleStudent),
		validators.CourseIDParam("courseId"), controllers.GetEnrollmentByCourse)
	enrollGroup.Put("/:courseId/progress",
		middleware.RequireRole(middleware.RoleStudent),
		validators.MarkProgress(), controllers.MarkLessonComplete)
}
