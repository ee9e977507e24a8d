package courseValidator

import (
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// SubmissionRequest is the student assignment submission body. File-type
// submissions may carry the payload as a multipart upload instead of
// submissionContent.
type SubmissionRequest struct {
	ModuleIndex       *int   `json:"moduleIndex" form:"moduleIndex"`
	SubmissionType    string `json:"submissionType" form:"submissionType"`
	SubmissionContent string `json:"submissionContent" form:"submissionContent"`
}

// ReviewRequest is the admin grading body
type ReviewRequest struct {
	Grade    *int   `json:"grade"`
	Feedback string `json:"feedback"`
}

func SubmitAssignment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := parseID(c, "courseId")
		if courseID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(SubmissionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ModuleIndex == nil || *reqData.ModuleIndex < 0 {
			errors["moduleIndex"] = "Module index must be 0 or greater!"
		}

		switch reqData.SubmissionType {
		case "text":
			if strings.TrimSpace(reqData.SubmissionContent) == "" {
				errors["submissionContent"] = "Submission content is required!"
			}
		case "file":
			// Content may arrive as a multipart upload; the controller
			// stores the file and fills in the reference.
			if _, err := c.FormFile("file"); err != nil && strings.TrimSpace(reqData.SubmissionContent) == "" {
				errors["submissionContent"] = "A file upload or file reference is required!"
			}
		default:
			errors["submissionType"] = "Submission type must be text or file!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}

func ReviewAssignment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		submissionID := parseID(c, "id")
		if submissionID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Submission ID!", nil)
		}

		reqData := new(ReviewRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Grade == nil {
			errors["grade"] = "Grade is required!"
		} else if *reqData.Grade < 0 || *reqData.Grade > 100 {
			errors["grade"] = "Grade must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("submissionID", submissionID)
		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}
