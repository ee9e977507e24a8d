package models

import (
	"time"

	"gorm.io/gorm"
)

// AssignmentSubmission is a student's single submission for one course
// module. The unique index enforces one submission per
// (student, course, moduleIndex).
type AssignmentSubmission struct {
	gorm.Model
	UserID            uint      `json:"user_id" gorm:"index;not null;uniqueIndex:idx_submission_user_course_module"`
	CourseID          uint      `json:"course_id" gorm:"index;not null;uniqueIndex:idx_submission_user_course_module"`
	ModuleIndex       int       `json:"moduleIndex" gorm:"not null;uniqueIndex:idx_submission_user_course_module"`
	SubmissionType    string    `json:"submissionType"` // text, file
	SubmissionContent string    `json:"submissionContent" gorm:"type:text"`
	SubmittedAt       time.Time `json:"submittedAt"`
	Status            string    `json:"status" gorm:"default:'pending'"` // pending, graded
	Grade             *int      `json:"grade,omitempty"`                 // 0-100, set on review
	Feedback          string    `json:"feedback,omitempty"`
	IsDeleted         bool      `json:"-" gorm:"default:false"`
}
