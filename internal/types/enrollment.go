package types

import (
	"time"

	"github.com/google/uuid"
)

// Enrollment links a student to a class. Existence implies membership;
// the composite key keeps a student enrolled at most once.
type Enrollment struct {
	ClassID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"class_id"`
	StudentID uuid.UUID `gorm:"type:uuid;primaryKey" json:"student_id"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Enrollment) TableName() string { return "enrollment" }
