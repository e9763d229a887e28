package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bloomlms/bloom-backend/internal/types"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, role string) *types.User {
	tb.Helper()
	id := uuid.New()
	u := &types.User{
		ID:        id,
		GoogleSub: fmt.Sprintf("sub-%s", id),
		Name:      "Seed User",
		Email:     fmt.Sprintf("%s@example.com", id),
		Role:      role,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedClass(tb testing.TB, ctx context.Context, tx *gorm.DB, teacherID uuid.UUID) *types.Class {
	tb.Helper()
	id := uuid.New()
	c := &types.Class{
		ID:        id,
		Name:      "Seed Class",
		Code:      codeFromUUID(id),
		TeacherID: teacherID,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed class: %v", err)
	}
	return c
}

func SeedEnrollment(tb testing.TB, ctx context.Context, tx *gorm.DB, classID, studentID uuid.UUID) *types.Enrollment {
	tb.Helper()
	e := &types.Enrollment{ClassID: classID, StudentID: studentID}
	if err := tx.WithContext(ctx).Create(e).Error; err != nil {
		tb.Fatalf("seed enrollment: %v", err)
	}
	return e
}

func SeedLesson(tb testing.TB, ctx context.Context, tx *gorm.DB, classID uuid.UUID) *types.Lesson {
	tb.Helper()
	l := &types.Lesson{
		ID:      codeFromUUID(uuid.New()),
		Title:   "Seed Lesson",
		ClassID: classID,
	}
	if err := tx.WithContext(ctx).Create(l).Error; err != nil {
		tb.Fatalf("seed lesson: %v", err)
	}
	return l
}

func SeedQuestion(tb testing.TB, ctx context.Context, tx *gorm.DB, lessonID string) *types.Question {
	tb.Helper()
	q := &types.Question{
		ID:            uuid.New(),
		Title:         "Seed question?",
		CorrectAnswer: "yes",
		WrongAnswers:  []string{"no", "maybe"},
		LessonID:      lessonID,
	}
	if err := tx.WithContext(ctx).Create(q).Error; err != nil {
		tb.Fatalf("seed question: %v", err)
	}
	return q
}

func SeedScore(tb testing.TB, ctx context.Context, tx *gorm.DB, lessonID string, userID uuid.UUID, score float64) *types.LessonScore {
	tb.Helper()
	s := &types.LessonScore{
		ID:       uuid.New(),
		LessonID: lessonID,
		UserID:   userID,
		Score:    score,
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed score: %v", err)
	}
	return s
}

// codeFromUUID derives a stable 8-char uppercase code for seeded rows.
func codeFromUUID(id uuid.UUID) string {
	hex := fmt.Sprintf("%X", [16]byte(id))
	return hex[:8]
}
