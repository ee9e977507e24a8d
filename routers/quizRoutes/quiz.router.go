package quizRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupQuizRoutes sets up quiz submission and result routes
func SetupQuizRoutes(app *fiber.App) {
	quizGroup := app.Group("/quizzes", middleware.JWTMiddleware)

	quizGroup.Post("/:courseId",
		middleware.RequireRole(middleware.RoleStudent),
		validators.SubmitQuiz(), controllers.SubmitQuiz)
	quizGroup.Get("/:courseId/my",
		middleware.RequireRole(middleware.RoleStudent),
		validators.CourseIDParam("courseId"), controllers.GetMyQuizResults)
	quizGroup.Get("/:courseId/all",
		middleware.RequireRole(middleware.RoleAdmin),
		validators.CourseIDParam("courseId"), controllers.GetAllQuizResults)
}
