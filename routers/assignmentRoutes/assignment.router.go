package assignmentRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAssignmentRoutes sets up assignment submission and grading routes
func SetupAssignmentRoutes(app *fiber.App) {
	assignmentGroup := app.Group("/assignments", middleware.JWTMiddleware)

	assignmentGroup.Post("/:courseId",
		middleware.RequireRole(middleware.RoleStudent),
		validators.SubmitAssignment(), controllers.SubmitAssignment)
	assignmentGroup.Get("/:courseId/my",
		middleware.RequireRole(middleware.RoleStudent),
		validators.CourseIDParam("courseId"), controllers.GetMySubmissions)
	assignmentGroup.Get("/:courseId/all",
		middleware.RequireRole(middleware.RoleAdmin),
		validators.CourseIDParam("courseId"), controllers.GetAllSubmissions)
	assignmentGroup.Put("/:id/review",
		middleware.RequireRole(middleware.RoleAdmin),
		validators.ReviewAssignment(), controllers.ReviewAssignment)
}
