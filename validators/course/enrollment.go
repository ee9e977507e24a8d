package courseValidator

import (
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// ProgressRequest marks one lesson complete, addressed by syllabus indices
type ProgressRequest struct {
	ModuleIndex *int `json:"moduleIndex"`
	LessonIndex *int `json:"lessonIndex"`
}

func MarkProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := parseID(c, "courseId")
		if courseID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(ProgressRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ModuleIndex == nil || *reqData.ModuleIndex < 0 {
			errors["moduleIndex"] = "Module index must be 0 or greater!"
		}
		if reqData.LessonIndex == nil || *reqData.LessonIndex < 0 {
			errors["lessonIndex"] = "Lesson index must be 0 or greater!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
