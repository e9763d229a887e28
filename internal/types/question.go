package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Question struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Title         string                      `gorm:"column:title;not null" json:"title"`
	CorrectAnswer string                      `gorm:"column:correct_answer;not null" json:"correct_answer"`
	WrongAnswers  datatypes.JSONSlice[string] `gorm:"column:wrong_answers" json:"wrong_answers"`
	LessonID      string                      `gorm:"size:8;not null;index" json:"lesson_id"`
	Lesson        *Lesson                     `gorm:"constraint:OnDelete:CASCADE;foreignKey:LessonID;references:ID" json:"lesson,omitempty"`
	CreatedAt     time.Time                   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time                   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Question) TableName() string { return "question" }
