package controllers

import (
	"math"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// sortFields whitelists catalog sort keys against column names
var sortFields = map[string]string{
	"title":     "title",
	"price":     "price",
	"createdAt": "created_at",
}

// GetAllCourses lists published courses with search, filters, sorting and
// pagination. Quiz correct answers are stripped for everyone but admins.
func GetAllCourses(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCatalogQuery").(*courseValidator.CatalogQuery)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	query := database.Database.Db.Model(&models.Course{}).
		Where("is_published = ? AND is_deleted = ?", true, false)

	// Search by title or instructor
	if reqData.Search != "" {
		pattern := "%" + reqData.Search + "%"
		query = query.Where("title ILIKE ? OR instructor ILIKE ?", pattern, pattern)
	}

	// Filter by category
	if reqData.Category != "" {
		query = query.Where("category = ?", reqData.Category)
	}

	// Filter by tags, any match against the JSON-encoded tag list. The cast
	// keeps the clause portable between the jsonb column and sqlite tests.
	if len(reqData.Tags) > 0 {
		tagQuery := database.Database.Db.Where("CAST(tags AS TEXT) LIKE ?", `%"`+reqData.Tags[0]+`"%`)
		for _, tag := range reqData.Tags[1:] {
			tagQuery = tagQuery.Or("CAST(tags AS TEXT) LIKE ?", `%"`+tag+`"%`)
		}
		query = query.Where(tagQuery)
	}

	// Sort, newest first by default
	orderClause := "created_at desc"
	if column, ok := sortFields[reqData.Sort]; ok {
		direction := "asc"
		if reqData.Order == "desc" {
			direction = "desc"
		}
		orderClause = column + " " + direction
	}

	var total int64
	query.Count(&total)

	offset := (reqData.Page - 1) * reqData.Limit

	var courses []models.Course
	if err := query.Order(orderClause).Offset(offset).Limit(reqData.Limit).Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	if !isAdmin(c) {
		for i := range courses {
			courses[i] = courses[i].Redacted()
		}
	}

	pagination := middleware.Pagination{
		Page:  reqData.Page,
		Limit: reqData.Limit,
		Total: total,
		Pages: int(math.Ceil(float64(total) / float64(reqData.Limit))),
	}

	return middleware.JsonPageResponse(c, fiber.StatusOK, "Courses fetched successfully!", courses, pagination)
}

// GetCourseCategories lists the distinct categories in use
func GetCourseCategories(c *fiber.Ctx) error {
	var categories []string
	err := database.Database.Db.Model(&models.Course{}).
		Where("is_published = ? AND is_deleted = ?", true, false).
		Distinct().Pluck("category", &categories).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", categories)
}

// GetCourseDetails returns a single published course. The enrolled-student
// count is derived from enrollments, not a maintained list on the course.
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_published = ? AND is_deleted = ?", courseID, true, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var enrolledCount int64
	database.Database.Db.Model(&models.Enrollment{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Count(&enrolledCount)

	if !isAdmin(c) {
		course = course.Redacted()
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":            course,
		"enrolled_students": enrolledCount,
	})
}

// isAdmin reports whether the (possibly anonymous) caller holds the admin role
func isAdmin(c *fiber.Ctx) bool {
	role, ok := c.Locals("role").(string)
	return ok && role == middleware.RoleAdmin
}

// findCourse loads a live course by ID
func findCourse(courseID int) (*models.Course, error) {
	var course models.Course
	err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// currentUser resolves the authenticated caller, nil when the account is gone
func currentUser(c *fiber.Ctx) *models.User {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return nil
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return nil
	}
	return &user
}
