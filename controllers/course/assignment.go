package controllers

import (
	"errors"
	"time"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SubmitAssignment records a student's single submission for one module.
// File-type submissions may arrive as multipart uploads, which are stored
// under the configured upload directory.
func SubmitAssignment(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedSubmission").(*courseValidator.SubmissionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Access gate: submissions require an enrollment
	enrolled, err := middleware.IsEnrolled(user.ID, uint(courseID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check enrollment!", nil)
	}
	if !enrolled {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not enrolled in this course!", nil)
	}

	moduleIndex := *reqData.ModuleIndex

	// One submission per (student, course, module)
	var existing models.AssignmentSubmission
	err = database.Database.Db.
		Where("user_id = ? AND course_id = ? AND module_index = ? AND is_deleted = ?", user.ID, courseID, moduleIndex, false).
		First(&existing).Error
	if err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Assignment already submitted for this module!", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check submissions!", nil)
	}

	content := reqData.SubmissionContent
	if reqData.SubmissionType == "file" {
		if file, ferr := c.FormFile("file"); ferr == nil {
			path, serr := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
			if serr != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store uploaded file!", nil)
			}
			content = utils.GetFileURL(path)
		}
	}

	submission := models.AssignmentSubmission{
		UserID:            user.ID,
		CourseID:          uint(courseID),
		ModuleIndex:       moduleIndex,
		SubmissionType:    reqData.SubmissionType,
		SubmissionContent: content,
		SubmittedAt:       time.Now(),
		Status:            "pending",
	}

	if err := database.Database.Db.Create(&submission).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit assignment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assignment submitted successfully!", submission)
}

// GetMySubmissions lists the caller's submissions for one course
func GetMySubmissions(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var submissions []models.AssignmentSubmission
	err := database.Database.Db.
		Where("user_id = ? AND course_id = ? AND is_deleted = ?", user.ID, courseID, false).
		Order("module_index asc").
		Find(&submissions).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch submissions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submissions fetched successfully!", submissions)
}

// GetAllSubmissions lists every submission for a course with student info (admin)
func GetAllSubmissions(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var submissions []models.AssignmentSubmission
	err := database.Database.Db.
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("submitted_at desc").
		Find(&submissions).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch submissions!", nil)
	}

	students := studentsByID(submissions, func(s models.AssignmentSubmission) uint { return s.UserID })

	type submissionEntry struct {
		models.AssignmentSubmission
		Student StudentSummary `json:"student"`
	}

	entries := make([]submissionEntry, 0, len(submissions))
	for _, s := range submissions {
		entries = append(entries, submissionEntry{AssignmentSubmission: s, Student: students[s.UserID]})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submissions fetched successfully!", entries)
}

// ReviewAssignment sets grade, feedback and status on a submission. Reviews
// are repeatable; re-grading simply overwrites the previous review.
func ReviewAssignment(c *fiber.Ctx) error {
	submissionID := c.Locals("submissionID").(int)

	reqData, ok := c.Locals("validatedReview").(*courseValidator.ReviewRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var submission models.AssignmentSubmission
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", submissionID, false).First(&submission).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment submission not found!", nil)
	}

	submission.Grade = reqData.Grade
	submission.Feedback = reqData.Feedback
	submission.Status = "graded"

	if err := database.Database.Db.Save(&submission).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to review assignment!", nil)
	}

	// Notify the student, best effort
	var student models.User
	if err := database.Database.Db.Where("id = ?", submission.UserID).First(&student).Error; err == nil {
		utils.SendGradeEmail(&student, &submission)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignment reviewed successfully!", submission)
}
