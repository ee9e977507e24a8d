package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the public catalog, admin course management and
// enrollment creation routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses")

	// Public catalog. Static route registered before :id.
	courseGroup.Get("/categories", controllers.GetCourseCategories)
	courseGroup.Get("/", middleware.OptionalJWT, validators.CatalogList(), controllers.GetAllCourses)

	// Admin course management
	courseGroup.Post("/",
		middleware.JWTMiddleware, middleware.RequireRole(middleware.RoleAdmin),
		validators.CreateCourse(), controllers.AdminCreateCourse)
	courseGroup.Put("/:id",
		middleware.JWTMiddleware, middleware.RequireRole(middleware.RoleAdmin),
		validators.UpdateCourse(), controllers.AdminUpdateCourse)
	courseGroup.Delete("/:id",
		middleware.JWTMiddleware, middleware.RequireRole(middleware.RoleAdmin),
		validators.CourseIDParam("id"), controllers.AdminDeleteCourse)

	courseGroup.Get("/:id", middleware.OptionalJWT, validators.CourseIDParam("id"), controllers.GetCourseDetails)

	// Enrollment
	courseGroup.Post("/:courseId/enroll",
		middleware.JWTMiddleware, middleware.RequireRole(middleware.RoleStudent),
		validators.CourseIDParam("courseId"), controllers.EnrollInCourse)
}
