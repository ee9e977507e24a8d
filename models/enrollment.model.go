package models

import (
	"math"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProgressEntry records completion of one lesson, addressed by syllabus
// array indices. LessonID mirrors the stable identifier when resolvable.
type ProgressEntry struct {
	ModuleIndex int        `json:"moduleIndex"`
	LessonIndex int        `json:"lessonIndex"`
	LessonID    string     `json:"lessonId,omitempty"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// Enrollment links one student to one course and carries their progress.
// It is the single source of truth for the relation; course rosters and
// "my courses" lists are derived by querying it.
type Enrollment struct {
	gorm.Model
	UserID               uint                               `json:"user_id" gorm:"index;not null;uniqueIndex:idx_enrollment_user_course"`
	CourseID             uint                               `json:"course_id" gorm:"index;not null;uniqueIndex:idx_enrollment_user_course"`
	Course               Course                             `json:"course,omitempty" gorm:"foreignKey:CourseID"`
	EnrolledAt           time.Time                          `json:"enrolledAt"`
	Progress             datatypes.JSONSlice[ProgressEntry] `json:"progress"`
	CompletionPercentage int                                `json:"completionPercentage" gorm:"default:0"`
	IsDeleted            bool                               `json:"-" gorm:"default:false"`
}

// MarkLesson upserts the progress entry for (moduleIndex, lessonIndex).
// Re-marking a completed lesson only refreshes the timestamp.
func (e *Enrollment) MarkLesson(moduleIndex, lessonIndex int, lessonID string, at time.Time) {
	for i := range e.Progress {
		if e.Progress[i].ModuleIndex == moduleIndex && e.Progress[i].LessonIndex == lessonIndex {
			e.Progress[i].Completed = true
			e.Progress[i].CompletedAt = &at
			if lessonID != "" {
				e.Progress[i].LessonID = lessonID
			}
			return
		}
	}
	e.Progress = append(e.Progress, ProgressEntry{
		ModuleIndex: moduleIndex,
		LessonIndex: lessonIndex,
		LessonID:    lessonID,
		Completed:   true,
		CompletedAt: &at,
	})
}

// RecomputePercentage derives the completion percentage from the progress
// entries against the course's current total lesson count. A course with no
// lessons yields 0.
func (e *Enrollment) RecomputePercentage(totalLessons int) {
	if totalLessons <= 0 {
		e.CompletionPercentage = 0
		return
	}
	completed := 0
	for _, p := range e.Progress {
		if p.Completed {
			completed++
		}
	}
	e.CompletionPercentage = int(math.Round(float64(completed) / float64(totalLessons) * 100))
}
