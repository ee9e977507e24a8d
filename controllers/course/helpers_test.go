package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	assignmentRoutes "lms/routers/assignmentRoutes"
	authRoutes "lms/routers/authRoutes"
	courseRoutes "lms/routers/courseRoutes"
	enrollmentRoutes "lms/routers/enrollmentRoutes"
	quizRoutes "lms/routers/quizRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// envelope mirrors the standard JSON response body
type envelope struct {
	Success    bool                   `json:"success"`
	Message    string                 `json:"message"`
	Data       json.RawMessage        `json:"data"`
	Pagination *middleware.Pagination `json:"pagination"`
	Errors     map[string]string      `json:"errors"`
}

// setupTestApp wires the full route surface against a fresh in-memory database
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:      "0",
		JWTKey:    "test-secret",
		SaltRound: 4,
		UploadDir: t.TempDir(),
	}

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	enrollmentRoutes.SetupEnrollmentRoutes(app)
	assignmentRoutes.SetupAssignmentRoutes(app)
	quizRoutes.SetupQuizRoutes(app)
	return app
}

// createUser inserts a user and returns it with a valid bearer token
func createUser(t *testing.T, name, email, role string) (models.User, string) {
	t.Helper()

	user := models.User{Name: name, Email: email, Role: role, Password: "hashed"}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return user, token
}

func createStudent(t *testing.T, email string) (models.User, string) {
	return createUser(t, "Student "+email, email, middleware.RoleStudent)
}

func createAdmin(t *testing.T, email string) (models.User, string) {
	return createUser(t, "Admin "+email, email, middleware.RoleAdmin)
}

func intPtr(v int) *int { return &v }

// testCourse builds a published course with two modules of two lessons each.
// The first module carries a four-question quiz and a text assignment.
func testCourse(title string) models.Course {
	quiz := []models.QuizQuestion{
		{Question: "Q1", Options: []string{"a", "b", "c"}, CorrectAnswer: intPtr(0)},
		{Question: "Q2", Options: []string{"a", "b", "c"}, CorrectAnswer: intPtr(1)},
		{Question: "Q3", Options: []string{"a", "b", "c"}, CorrectAnswer: intPtr(2)},
		{Question: "Q4", Options: []string{"a", "b", "c"}, CorrectAnswer: intPtr(0)},
	}

	course := models.Course{
		Title:       title,
		Description: "A course used in tests",
		Instructor:  "Jane Doe",
		Price:       49.99,
		Category:    "Programming",
		Tags:        []string{"go", "backend"},
		Batch:       models.Batch{BatchNumber: 1, StartDate: time.Now()},
		IsPublished: true,
		Syllabus: []models.SyllabusModule{
			{
				ModuleTitle: "Module One",
				Lessons: []models.Lesson{
					{LessonTitle: "Intro", VideoURL: "https://videos/intro"},
					{LessonTitle: "Basics", VideoURL: "https://videos/basics"},
				},
				Assignment: &models.Assignment{Question: "Write an essay", Type: "text"},
				Quiz:       quiz,
			},
			{
				ModuleTitle: "Module Two",
				Lessons: []models.Lesson{
					{LessonTitle: "Advanced", VideoURL: "https://videos/advanced"},
					{LessonTitle: "Wrap up", VideoURL: "https://videos/wrapup"},
				},
			},
		},
	}
	course.AssignSyllabusIDs()
	return course
}

// seedCourse persists a test course and returns it
func seedCourse(t *testing.T, title string) models.Course {
	t.Helper()

	course := testCourse(title)
	require.NoError(t, database.Database.Db.Create(&course).Error)
	return course
}

// doJSON performs a request with an optional JSON body and bearer token,
// returning the raw response and the decoded envelope
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env), "body: %s", string(raw))
	return resp, env
}

// bodyString performs a request and returns the raw response body
func bodyString(t *testing.T, app *fiber.App, method, path, token string) (int, string) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

// enroll creates an enrollment over the API and fails the test on error
func enroll(t *testing.T, app *fiber.App, token string, courseID uint) {
	t.Helper()

	resp, _ := doJSON(t, app, fiber.MethodPost, courseURL(courseID)+"/enroll", token, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func courseURL(courseID uint) string {
	return "/courses/" + itoaU(courseID)
}

func itoaU(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

// seedCourseModel persists an arbitrary course model
func seedCourseModel(t *testing.T, course models.Course) models.Course {
	t.Helper()

	require.NoError(t, database.Database.Db.Create(&course).Error)
	return course
}
