package controllers

import (
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// EnrollInCourse creates the enrollment for (caller, course). The Enrollment
// row is the single source of truth for the relation; nothing is written to
// the user or course records.
func EnrollInCourse(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	// Check if course exists and is published
	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Check if user is already enrolled
	var existingEnrollment models.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", user.ID, courseID, false).First(&existingEnrollment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this course!", nil)
	}

	enrollment := models.Enrollment{
		UserID:     user.ID,
		CourseID:   uint(courseID),
		EnrolledAt: time.Now(),
	}

	if err := database.Database.Db.Create(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	utils.SendEnrollmentEmail(user, &course)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully!", enrollment)
}

// GetMyEnrollments lists the caller's enrollments with their courses
func GetMyEnrollments(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var enrollments []models.Enrollment
	err := database.Database.Db.
		Where("user_id = ? AND is_deleted = ?", user.ID, false).
		Preload("Course").
		Order("enrolled_at desc").
		Find(&enrollments).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	for i := range enrollments {
		enrollments[i].Course = enrollments[i].Course.Redacted()
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", enrollments)
}

// GetEnrollmentByCourse returns the caller's enrollment for one course
func GetEnrollmentByCourse(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var enrollment models.Enrollment
	err := database.Database.Db.
		Where("user_id = ? AND course_id = ? AND is_deleted = ?", user.ID, courseID, false).
		Preload("Course").
		First(&enrollment).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	enrollment.Course = enrollment.Course.Redacted()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment fetched successfully!", enrollment)
}

// MarkLessonComplete upserts one progress entry and recomputes the derived
// completion percentage from the course's current syllabus.
func MarkLessonComplete(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedProgress").(*courseValidator.ProgressRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var enrollment models.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", user.ID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	course, err := findCourse(courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	moduleIndex := *reqData.ModuleIndex
	lessonIndex := *reqData.LessonIndex

	// Resolve the lesson's stable ID when the indices land inside the
	// current syllabus; indices outside it still record progress, matching
	// the index-addressed contract.
	lessonID := ""
	if module := course.ModuleAt(moduleIndex); module != nil && lessonIndex < len(module.Lessons) {
		lessonID = module.Lessons[lessonIndex].LessonID
	}

	enrollment.MarkLesson(moduleIndex, lessonIndex, lessonID, time.Now())
	enrollment.RecomputePercentage(course.TotalLessons())

	if err := database.Database.Db.Save(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", enrollment)
}

// StudentSummary is the roster entry exposed to admins
type StudentSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// GetCourseEnrollments lists a course's roster for admins, derived from the
// enrollment rows.
func GetCourseEnrollments(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var enrollments []models.Enrollment
	err := database.Database.Db.
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("enrolled_at desc").
		Find(&enrollments).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	students := studentsByID(enrollments, func(e models.Enrollment) uint { return e.UserID })

	type rosterEntry struct {
		Student              StudentSummary `json:"student"`
		EnrolledAt           time.Time      `json:"enrolledAt"`
		CompletionPercentage int            `json:"completionPercentage"`
	}

	roster := make([]rosterEntry, 0, len(enrollments))
	for _, e := range enrollments {
		roster = append(roster, rosterEntry{
			Student:              students[e.UserID],
			EnrolledAt:           e.EnrolledAt,
			CompletionPercentage: e.CompletionPercentage,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course enrollments fetched successfully!", roster)
}

// studentsByID batch-loads the student summaries referenced by a result set
func studentsByID[T any](rows []T, userID func(T) uint) map[uint]StudentSummary {
	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, userID(row))
	}

	students := make(map[uint]StudentSummary, len(ids))
	if len(ids) == 0 {
		return students
	}

	var users []models.User
	database.Database.Db.Where("id IN ?", ids).Find(&users)
	for _, u := range users {
		students[u.ID] = StudentSummary{ID: u.ID, Name: u.Name, Email: u.Email}
	}
	return students
}
