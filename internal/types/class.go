package types

import (
	"time"

	"github.com/google/uuid"
)

type Class struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Code      string    `gorm:"column:code;uniqueIndex;not null;size:8" json:"code"`
	TeacherID uuid.UUID `gorm:"type:uuid;not null;index" json:"teacher_id"`
	Teacher   *User     `gorm:"foreignKey:TeacherID;references:ID" json:"teacher,omitempty"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Students []*User   `gorm:"many2many:enrollment;joinForeignKey:ClassID;joinReferences:StudentID" json:"students,omitempty"`
	Lessons  []*Lesson `gorm:"constraint:OnDelete:CASCADE;foreignKey:ClassID;references:ID" json:"lessons,omitempty"`
}

func (Class) TableName() string { return "class" }
