package controllers_test

import (
	"encoding/json"
	"testing"

	"lms/database"
	"lms/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quizResponse struct {
	Score          int               `json:"score"`
	CorrectAnswers int               `json:"correctAnswers"`
	TotalQuestions int               `json:"totalQuestions"`
	Result         models.QuizResult `json:"result"`
}

func submitQuiz(t *testing.T, app *fiber.App, token string, courseID uint, moduleIndex int, answers []fiber.Map) (int, quizResponse) {
	t.Helper()

	resp, env := doJSON(t, app, fiber.MethodPost, "/quizzes/"+itoaU(courseID), token, fiber.Map{
		"moduleIndex": moduleIndex,
		"answers":     answers,
	})

	var result quizResponse
	if resp.StatusCode == fiber.StatusCreated {
		require.NoError(t, json.Unmarshal(env.Data, &result))
	}
	return resp.StatusCode, result
}

func TestQuizThreeOfFourScoresSeventyFive(t *testing.T) {
	app := setupTestApp(t)
	course := seedCourse(t, "Go Fundamentals")
	_, token := createStudent(t, "s1@test.dev")
	enroll(t, app, token, course.ID)

	status, result := submitQuiz(t, app, token, course.ID, 0, []fiber.Map{
		{"questionIndex": 0, "selectedAnswer": 0}, // correct
		{"questionIndex": 1, "selectedAnswer": 1}, // correct
		{"questionIndex": 2, "selectedAnswer": 0}, // wrong, answer is 2
		{"questionIndex": 3, "selectedAnswer": 0}, // correct
	})

	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, 75, result.Score)
	assert.Equal(t, 3, result.CorrectAnswers)
	assert.Equal(t, 4, result.TotalQuestions)
}

func TestQuizOutOfRangeAnswersIgnored(t *testing.T) {
	app := setupTestApp(t)
	course := seedCourse(t, "Go Fundamentals")
	_, token := createStudent(t, "s1@test.dev")
	enroll(t, app, token, course.ID)

	status, result := submitQuiz(t, app, token, course.ID, 0, []fiber.Map{
		{"questionIndex": 0, "selectedAnswer": 0},  // correct
		{"questionIndex": 42, "selectedAnswer": 0}, // out of range, ignored
		{"questionIndex": -1, "selectedAnswer": 0}, // out of range, ignored
	})

	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, 25, result.Score)
	assert.Equal(t, 1, result.CorrectAnswers)
}

func TestQuizRetakesAppendRows(t *testing.T) {
	app := setupTestApp(t)
	course := seedCourse(t, "Go Fundamentals")
	student, token := createStudent(t, "s1@test.dev")
	enroll(t, app, token, course.ID)

	answers := []fiber.Map{{"questionIndex": 0, "selectedAnswer": 0}}

	status, _ := submitQuiz(t, app, token, course.ID, 0, answers)
	require.Equal(t, fiber.StatusCreated, status)
	status, _ = submitQuiz(t, app, token, course.ID, 0, answers)
	require.Equal(t, fiber.StatusCreated, status)

	var count int64
	database.Database.Db.Model(&models.QuizResult{}).
		Where("user_id = ? AND course_id = ?", student.ID, course.ID).
		Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestQuizRequiresEnrollment(t *testing.T) {
	app := setupTestApp(t)
	course := seedCourse(t, "Go Fundamentals")
	_, token := createStudent(t, "s1@test.dev")

	status, _ := submitQuiz(t, app, token, course.ID, 0, []fiber.Map{
		{"questionIndex": 0, "selectedAnswer": 0},
	})
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestQuizMissingModuleQuiz(t *testing.T) {
	app := setupTestApp(t)
	course := seedCourse(t, "Go Fundamentals")
	_, token := createStudent(t, "s1@test.dev")
	enroll(t, app, token, course.ID)

	// Module 1 has no quiz; module 5 does not exist
	status, _ := submitQuiz(t, app, token, course.ID, 1, []fiber.Map{{"questionIndex": 0, "selectedAnswer": 0}})
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = submitQuiz(t, app, token, course.ID, 5, []fiber.Map{{"questionIndex": 0, "selectedAnswer": 0}})
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestQuizSummaryReportsBestScore(t *testing.T) {
	app := setupTestApp(t)
	course := seedCourse(t, "Go Fundamentals")
	_, token := createStudent(t, "s1@test.dev")
	enroll(t, app, token, course.ID)

	// First attempt: 1 of 4. Second attempt: 3 of 4.
	status, _ := submitQuiz(t, app, token, course.ID, 0, []fiber.Map{{"questionIndex": 0, "selectedAnswer": 0}})
	require.Equal(t, fiber.StatusCreated, status)
	status, _ = submitQuiz(t, app, token, course.ID, 0, []fiber.Map{
		{"questionIndex": 0, "selectedAnswer": 0},
		{"questionIndex": 1, "selectedAnswer": 1},
		{"questionIndex": 3, "selectedAnswer": 0},
	})
	require.Equal(t, fiber.StatusCreated, status)

	resp, env := doJSON(t, app, fiber.MethodGet, "/quizzes/"+itoaU(course.ID)+"/my", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var data struct {
		Results []models.QuizResult `json:"results"`
		Summary []struct {
			ModuleIndex int `json:"moduleIndex"`
			BestScore   int `json:"bestScore"`
			Attempts    int `json:"attempts"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Results, 2)
	require.Len(t, data.Summary, 1)
	assert.Equal(t, 75, data.Summary[0].BestScore)
	assert.Equal(t, 2, data.Summary[0].Attempts)
}
