package courseValidator

import (
	"strconv"
	"strings"

	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

// CoursePayload is the admin create/update body, syllabus included
type CoursePayload struct {
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Instructor  string                  `json:"instructor"`
	Price       *float64                `json:"price"`
	Category    string                  `json:"category"`
	Tags        []string                `json:"tags"`
	Thumbnail   string                  `json:"thumbnail"`
	Syllabus    []models.SyllabusModule `json:"syllabus"`
	Batch       *models.Batch           `json:"batch"`
	IsPublished *bool                   `json:"is_published"`
}

// CatalogQuery is the parsed catalog listing request
type CatalogQuery struct {
	Search   string
	Category string
	Tags     []string
	Sort     string
	Order    string
	Page     int
	Limit    int
}

func validCategory(category string) bool {
	for _, c := range models.CourseCategories {
		if category == c {
			return true
		}
	}
	return false
}

// parseID extracts a positive integer route parameter, 0 when invalid
func parseID(c *fiber.Ctx, name string) int {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params(name)))
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

func validateSyllabus(syllabus []models.SyllabusModule, errors map[string]string) {
	for i, module := range syllabus {
		prefix := "syllabus[" + strconv.Itoa(i) + "]"

		if strings.TrimSpace(module.ModuleTitle) == "" {
			errors[prefix+".moduleTitle"] = "Module title is required!"
		}

		for j, lesson := range module.Lessons {
			lp := prefix + ".lessons[" + strconv.Itoa(j) + "]"
			if strings.TrimSpace(lesson.LessonTitle) == "" {
				errors[lp+".lessonTitle"] = "Lesson title is required!"
			}
			if strings.TrimSpace(lesson.VideoURL) == "" {
				errors[lp+".videoUrl"] = "Video URL is required!"
			}
		}

		if module.Assignment != nil {
			if module.Assignment.Type != "text" && module.Assignment.Type != "file" {
				errors[prefix+".assignment.type"] = "Assignment type must be text or file!"
			}
		}

		for j, question := range module.Quiz {
			qp := prefix + ".quiz[" + strconv.Itoa(j) + "]"
			if strings.TrimSpace(question.Question) == "" {
				errors[qp+".question"] = "Question text is required!"
			}
			if len(question.Options) < 2 {
				errors[qp+".options"] = "A question needs at least 2 options!"
			}
			if question.CorrectAnswer == nil {
				errors[qp+".correctAnswer"] = "Correct answer index is required!"
			} else if *question.CorrectAnswer < 0 || *question.CorrectAnswer >= len(question.Options) {
				errors[qp+".correctAnswer"] = "Correct answer index is out of range!"
			}
		}
	}
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CoursePayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}
		if strings.TrimSpace(reqData.Instructor) == "" {
			errors["instructor"] = "Instructor is required!"
		}
		if reqData.Price == nil || *reqData.Price < 0 {
			errors["price"] = "Price must be 0 or greater!"
		}
		if !validCategory(reqData.Category) {
			errors["category"] = "Category must be one of: " + strings.Join(models.CourseCategories, ", ")
		}
		if reqData.Batch == nil {
			errors["batch"] = "Batch is required!"
		} else {
			if reqData.Batch.BatchNumber <= 0 {
				errors["batch.batchNumber"] = "Batch number must be greater than 0!"
			}
			if reqData.Batch.StartDate.IsZero() {
				errors["batch.startDate"] = "Batch start date is required!"
			}
		}

		validateSyllabus(reqData.Syllabus, errors)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := parseID(c, "id")
		if courseID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(CoursePayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Category != "" && !validCategory(reqData.Category) {
			errors["category"] = "Category must be one of: " + strings.Join(models.CourseCategories, ", ")
		}
		if reqData.Price != nil && *reqData.Price < 0 {
			errors["price"] = "Price must be 0 or greater!"
		}

		validateSyllabus(reqData.Syllabus, errors)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CatalogList validates the public catalog query parameters
func CatalogList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := &CatalogQuery{
			Search:   strings.TrimSpace(c.Query("search")),
			Category: strings.TrimSpace(c.Query("category")),
			Sort:     strings.TrimSpace(c.Query("sort")),
			Order:    strings.TrimSpace(c.Query("order")),
			Page:     c.QueryInt("page", 1),
			Limit:    c.QueryInt("limit", 10),
		}

		if tags := strings.TrimSpace(c.Query("tags")); tags != "" {
			for _, tag := range strings.Split(tags, ",") {
				if tag = strings.TrimSpace(tag); tag != "" {
					query.Tags = append(query.Tags, tag)
				}
			}
		}

		errors := make(map[string]string)

		if query.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if query.Limit < 1 || query.Limit > 100 {
			errors["limit"] = "Limit must be between 1 and 100!"
		}
		if query.Category != "" && !validCategory(query.Category) {
			errors["category"] = "Unknown category!"
		}
		if query.Order != "" && query.Order != "asc" && query.Order != "desc" {
			errors["order"] = "Order must be asc or desc!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCatalogQuery", query)
		return c.Next()
	}
}

// CourseIDParam validates a course ID under the given route parameter name
func CourseIDParam(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := parseID(c, name)
		if courseID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}
