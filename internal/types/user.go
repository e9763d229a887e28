package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

func ValidRole(role string) bool {
	return role == RoleTeacher || role == RoleStudent
}

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	GoogleSub string    `gorm:"column:google_sub;uniqueIndex;not null" json:"google_sub"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Email     string    `gorm:"column:email;not null" json:"email"`
	Picture   string    `gorm:"column:picture" json:"picture"`
	Role      string    `gorm:"column:role;not null" json:"role"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	ClassesTaught   []*Class `gorm:"foreignKey:TeacherID;references:ID" json:"classes_taught,omitempty"`
	ClassesEnrolled []*Class `gorm:"many2many:enrollment;joinForeignKey:StudentID;joinReferences:ClassID" json:"classes_enrolled,omitempty"`
}

func (User) TableName() string { return "user" }
