package courseValidator

import (
	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

// QuizSubmission is the student quiz answer sheet for one module
type QuizSubmission struct {
	ModuleIndex *int                `json:"moduleIndex"`
	Answers     []models.QuizAnswer `json:"answers"`
}

func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := parseID(c, "courseId")
		if courseID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(QuizSubmission)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ModuleIndex == nil || *reqData.ModuleIndex < 0 {
			errors["moduleIndex"] = "Module index must be 0 or greater!"
		}
		if len(reqData.Answers) == 0 {
			errors["answers"] = "Please answer at least one question!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}
