// models/progress.go
package models

import "time"

// Progress holds the per-user state of a single lesson. One row per
// (user, lesson) pair; updates mutate the row in place.
//
// Score and BestScore are nullable: nil means the lesson has never been
// scored, while 0 is a real (failed) quiz result.
type Progress struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	UserID   uint `gorm:"not null;uniqueIndex:idx_progress_user_lesson" json:"user_id"`
	LessonID uint `gorm:"not null;uniqueIndex:idx_progress_user_lesson" json:"lesson_id"`

	Completed bool `gorm:"default:false" json:"completed"`
	Score     *int `json:"score"`
	BestScore *int `json:"best_score"`
	Attempts  int  `gorm:"default:0" json:"attempts"`

	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	LastPracticed time.Time  `json:"last_practiced"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Progress) TableName() string {
	return "progress"
}
