package controllers_test

import (
	"encoding/json"
	"testing"

	"lms/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitAssignment(t *testing.T, app *fiber.App, token string, courseID uint, moduleIndex int) (int, models.AssignmentSubmission) {
	t.Helper()

	resp, env := doJSON(t, app, fiber.MethodPost, "/assignments/"+itoaU(courseID), token, fiber.Map{
		"moduleIndex":       moduleIndex,
		"submissionType":    "text",
		"submissionContent": "my essay",
	})

	var submission models.AssignmentSubmission
	if resp.StatusCode == fiber.StatusCreated {
		require.NoError(t, json.Unmarshal(env.Data, &submission))
	}
	return resp.StatusCode, submission
}

func TestAssignmentDuplicateSubmissionConflict(t *testing.T) {
	app := setupTestApp(t)
	course := seedCourse(t, "Go Fundamentals")
	_, token := createStudent(t, "s1@test.dev")
	enroll(t, app, token, course.ID)

	status, submission := submitAssignment(t, app, token, course.ID, 0)
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "pending", submission.Status)

	// Same module again is rejected
	status, _ = submitAssignment(t, app, token, course.ID, 0)
	assert.Equal(t, fiber.StatusConflict, status)

	// A different module goes through
	status, _ = submitAssignment(t, app, token, course.ID, 1)
	assert.Equal(t, fiber.StatusCreated, status)
}

func TestAssignmentRequiresEnrollment(t *testing.T) {
	app := setupTestApp(t)
	course := seedCourse(t, "Go Fundamentals")
	_, token := createStudent(t, "s1@test.dev")

	status, _ := submitAssignment(t, app, token, course.ID, 0)
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestAssignmentReview(t *testing.T) {
	app := setupTestApp(t)
	course := seedCourse(t, "Go Fundamentals")
	_, studentToken := createStudent(t, "s1@test.dev")
	_, adminToken := createAdmin(t, "a1@test.dev")
	enroll(t, app, studentToken, course.ID)

	status, submission := submitAssignment(t, app, studentToken, course.ID, 0)
	require.Equal(t, fiber.StatusCreated, status)

	resp, env := doJSON(t, app, fiber.MethodPut, "/assignments/"+itoaU(submission.ID)+"/review", adminToken, fiber.Map{
		"grade":    88,
		"feedback": "Nice work",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var graded models.AssignmentSubmission
	require.NoError(t, json.Unmarshal(env.Data, &graded))
	assert.Equal(t, "graded", graded.Status)
	require.NotNil(t, graded.Grade)
	assert.Equal(t, 88, *graded.Grade)
	assert.Equal(t, "Nice work", graded.Feedback)

	// Review is repeatable
	resp, env = doJSON(t, app, fiber.MethodPut, "/assignments/"+itoaU(submission.ID)+"/review", adminToken, fiber.Map{
		"grade":    95,
		"feedback": "Even better on second look",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &graded))
	require.NotNil(t, graded.Grade)
	assert.Equal(t, 95, *graded.Grade)
}

func TestAssignmentReviewUnknownSubmission(t *testing.T) {
	app := setupTestApp(t)
	_, adminToken := createAdmin(t, "a1@test.dev")

	resp, _ := doJSON(t, app, fiber.MethodPut, "/assignments/9999/review", adminToken, fiber.Map{
		"grade": 50,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAssignmentReviewRequiresAdmin(t *testing.T) {
	app := setupTestApp(t)
	course := seedCourse(t, "Go Fundamentals")
	_, studentToken := createStudent(t, "s1@test.dev")
	enroll(t, app, studentToken, course.ID)

	status, submission := submitAssignment(t, app, studentToken, course.ID, 0)
	require.Equal(t, fiber.StatusCreated, status)

	resp, _ := doJSON(t, app, fiber.MethodPut, "/assignments/"+itoaU(submission.ID)+"/review", studentToken, fiber.Map{
		"grade": 10,
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAssignmentGradeValidation(t *testing.T) {
	app := setupTestApp(t)
	_, adminToken := createAdmin(t, "a1@test.dev")

	resp, env := doJSON(t, app, fiber.MethodPut, "/assignments/1/review", adminToken, fiber.Map{
		"grade": 150,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, env.Errors, "grade")
}
