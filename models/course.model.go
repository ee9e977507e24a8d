package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CourseCategories is the allowed set for Course.Category
var CourseCategories = []string{"Programming", "Design", "Business", "Marketing", "Data Science", "Other"}

// Lesson is a single video lesson inside a module
type Lesson struct {
	LessonID    string `json:"lessonId"`
	LessonTitle string `json:"lessonTitle"`
	VideoURL    string `json:"videoUrl"`
	Duration    string `json:"duration,omitempty"`
}

// Assignment is an optional per-module assignment prompt
type Assignment struct {
	Question string `json:"question"`
	Type     string `json:"type"` // text, file
}

// QuizQuestion holds one question of a module quiz. CorrectAnswer is a
// pointer so redacted copies can drop it without losing index 0.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer *int     `json:"correctAnswer,omitempty"`
}

// SyllabusModule is one ordered unit of a course syllabus. Downstream
// records (progress, submissions, quiz results) address modules and lessons
// by array index; the UUIDs are assigned server-side at write time so the
// data survives a future move to stable addressing.
type SyllabusModule struct {
	ModuleID    string         `json:"moduleId"`
	ModuleTitle string         `json:"moduleTitle"`
	Lessons     []Lesson       `json:"lessons"`
	Assignment  *Assignment    `json:"assignment,omitempty"`
	Quiz        []QuizQuestion `json:"quiz,omitempty"`
}

// Batch carries cohort scheduling info for a course
type Batch struct {
	BatchNumber int        `json:"batchNumber"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
}

// Course represents a marketplace course with its embedded syllabus
type Course struct {
	gorm.Model
	Title       string                              `json:"title"`
	Description string                              `json:"description"`
	Instructor  string                              `json:"instructor"`
	Price       float64                             `json:"price" gorm:"default:0"`
	Category    string                              `json:"category" gorm:"index"`
	Tags        datatypes.JSONSlice[string]         `json:"tags"`
	Thumbnail   string                              `json:"thumbnail"`
	Syllabus    datatypes.JSONSlice[SyllabusModule] `json:"syllabus"`
	Batch       Batch                               `json:"batch" gorm:"embedded;embeddedPrefix:batch_"`
	IsPublished bool                                `json:"is_published" gorm:"default:true"`
	IsDeleted   bool                                `json:"-" gorm:"default:false"`
}

// TotalLessons sums lesson counts across all syllabus modules
func (c *Course) TotalLessons() int {
	total := 0
	for _, m := range c.Syllabus {
		total += len(m.Lessons)
	}
	return total
}

// ModuleAt returns the syllabus module at the given index, or nil when out of range
func (c *Course) ModuleAt(index int) *SyllabusModule {
	if index < 0 || index >= len(c.Syllabus) {
		return nil
	}
	return &c.Syllabus[index]
}

// AssignSyllabusIDs gives every module and lesson a stable identifier.
// Entries that already carry one keep it, so syllabus updates do not churn IDs.
func (c *Course) AssignSyllabusIDs() {
	for i := range c.Syllabus {
		if c.Syllabus[i].ModuleID == "" {
			c.Syllabus[i].ModuleID = uuid.NewString()
		}
		for j := range c.Syllabus[i].Lessons {
			if c.Syllabus[i].Lessons[j].LessonID == "" {
				c.Syllabus[i].Lessons[j].LessonID = uuid.NewString()
			}
		}
	}
}

// Redacted returns a copy of the course with quiz correct answers stripped.
// Used for every non-admin read so answers never reach students.
func (c Course) Redacted() Course {
	syllabus := make([]SyllabusModule, len(c.Syllabus))
	for i, m := range c.Syllabus {
		copied := m
		if len(m.Quiz) > 0 {
			quiz := make([]QuizQuestion, len(m.Quiz))
			for j, q := range m.Quiz {
				q.CorrectAnswer = nil
				quiz[j] = q
			}
			copied.Quiz = quiz
		}
		syllabus[i] = copied
	}
	c.Syllabus = syllabus
	return c
}
