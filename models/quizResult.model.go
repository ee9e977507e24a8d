package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuizAnswer is one submitted answer, addressing a question by its index
// within the module quiz
type QuizAnswer struct {
	QuestionIndex  int `json:"questionIndex"`
	SelectedAnswer int `json:"selectedAnswer"`
}

// QuizResult is one quiz attempt. Rows are append-only: retakes insert new
// rows and earlier attempts are never mutated.
type QuizResult struct {
	gorm.Model
	UserID         uint                            `json:"user_id" gorm:"index;not null"`
	CourseID       uint                            `json:"course_id" gorm:"index;not null"`
	ModuleIndex    int                             `json:"moduleIndex" gorm:"not null"`
	Answers        datatypes.JSONSlice[QuizAnswer] `json:"answers"`
	Score          int                             `json:"score"` // 0-100, rounded
	TotalQuestions int                             `json:"totalQuestions"`
	SubmittedAt    time.Time                       `json:"submittedAt"`
}
