package types

import (
	"time"

	"github.com/google/uuid"
)

// LessonScore holds a student's latest quiz result for a lesson as a
// percentage. The composite unique index keeps one row per (lesson, user)
// even under concurrent submissions.
type LessonScore struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	LessonID  string    `gorm:"size:8;not null;uniqueIndex:idx_lesson_user" json:"lesson_id"`
	Lesson    *Lesson   `gorm:"constraint:OnDelete:CASCADE;foreignKey:LessonID;references:ID" json:"lesson,omitempty"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_lesson_user" json:"user_id"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	Score     float64   `gorm:"column:score;not null" json:"score"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (LessonScore) TableName() string { return "lesson_score" }
