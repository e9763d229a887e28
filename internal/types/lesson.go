package types

import (
	"time"

	"github.com/google/uuid"
)

// Lesson is keyed by its 8-char join code directly; there is no surrogate id.
type Lesson struct {
	ID        string    `gorm:"primaryKey;size:8" json:"id"`
	Title     string    `gorm:"column:title;not null" json:"title"`
	ClassID   uuid.UUID `gorm:"type:uuid;not null;index" json:"class_id"`
	Class     *Class    `gorm:"constraint:OnDelete:CASCADE;foreignKey:ClassID;references:ID" json:"class,omitempty"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Questions []*Question    `gorm:"constraint:OnDelete:CASCADE;foreignKey:LessonID;references:ID" json:"questions,omitempty"`
	Scores    []*LessonScore `gorm:"constraint:OnDelete:CASCADE;foreignKey:LessonID;references:ID" json:"scores,omitempty"`
}

func (Lesson) TableName() string { return "lesson" }
