package controllers

import (
	"math"
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SubmitQuiz scores a student's answer sheet against the module quiz and
// appends a new result row. Retakes are allowed; earlier attempts stay.
func SubmitQuiz(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedQuiz").(*courseValidator.QuizSubmission)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Access gate: quizzes require an enrollment
	enrolled, err := middleware.IsEnrolled(user.ID, uint(courseID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check enrollment!", nil)
	}
	if !enrolled {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not enrolled in this course!", nil)
	}

	course, err := findCourse(courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	moduleIndex := *reqData.ModuleIndex

	module := course.ModuleAt(moduleIndex)
	if module == nil || len(module.Quiz) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found for this module!", nil)
	}

	// Linear scan: answers referencing question indices outside the quiz
	// are ignored, they neither score nor error.
	quiz := module.Quiz
	correctAnswers := 0
	for _, answer := range reqData.Answers {
		if answer.QuestionIndex < 0 || answer.QuestionIndex >= len(quiz) {
			continue
		}
		question := quiz[answer.QuestionIndex]
		if question.CorrectAnswer != nil && *question.CorrectAnswer == answer.SelectedAnswer {
			correctAnswers++
		}
	}

	score := int(math.Round(float64(correctAnswers) / float64(len(quiz)) * 100))

	result := models.QuizResult{
		UserID:         user.ID,
		CourseID:       uint(courseID),
		ModuleIndex:    moduleIndex,
		Answers:        reqData.Answers,
		Score:          score,
		TotalQuestions: len(quiz),
		SubmittedAt:    time.Now(),
	}

	if err := database.Database.Db.Create(&result).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz submitted successfully!", fiber.Map{
		"score":          score,
		"correctAnswers": correctAnswers,
		"totalQuestions": len(quiz),
		"result":         result,
	})
}

// ModuleQuizSummary reports a student's standing on one module quiz. The
// official score is the highest attempt.
type ModuleQuizSummary struct {
	ModuleIndex int `json:"moduleIndex"`
	BestScore   int `json:"bestScore"`
	Attempts    int `json:"attempts"`
}

// GetMyQuizResults lists the caller's attempts for one course plus a
// per-module summary.
func GetMyQuizResults(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var results []models.QuizResult
	err := database.Database.Db.
		Where("user_id = ? AND course_id = ?", user.ID, courseID).
		Order("module_index asc, submitted_at asc").
		Find(&results).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quiz results!", nil)
	}

	byModule := make(map[int]*ModuleQuizSummary)
	order := []int{}
	for _, r := range results {
		summary, ok := byModule[r.ModuleIndex]
		if !ok {
			summary = &ModuleQuizSummary{ModuleIndex: r.ModuleIndex}
			byModule[r.ModuleIndex] = summary
			order = append(order, r.ModuleIndex)
		}
		summary.Attempts++
		if r.Score > summary.BestScore {
			summary.BestScore = r.Score
		}
	}

	summaries := make([]ModuleQuizSummary, 0, len(order))
	for _, idx := range order {
		summaries = append(summaries, *byModule[idx])
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz results fetched successfully!", fiber.Map{
		"results": results,
		"summary": summaries,
	})
}

// GetAllQuizResults lists every attempt for a course with student info (admin)
func GetAllQuizResults(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var results []models.QuizResult
	err := database.Database.Db.
		Where("course_id = ?", courseID).
		Order("submitted_at desc").
		Find(&results).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quiz results!", nil)
	}

	students := studentsByID(results, func(r models.QuizResult) uint { return r.UserID })

	type resultEntry struct {
		models.QuizResult
		Student StudentSummary `json:"student"`
	}

	entries := make([]resultEntry, 0, len(results))
	for _, r := range results {
		entries = append(entries, resultEntry{QuizResult: r, Student: students[r.UserID]})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz results fetched successfully!", entries)
}
