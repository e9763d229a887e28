package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	apperrors "github.com/bloomlms/bloom-backend/internal/pkg/errors"
	"github.com/bloomlms/bloom-backend/internal/repos/testutil"
	"github.com/bloomlms/bloom-backend/internal/types"
)

func TestCreateLesson(t *testing.T) {
	svcs := newServices(t)
	ctx := context.Background()

	teacher := testutil.SeedUser(t, ctx, svcs.db, types.RoleTeacher)
	class := testutil.SeedClass(t, ctx, svcs.db, teacher.ID)

	lesson, err := svcs.lessons.Create(ctx, class.ID, "Fractions")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(lesson.ID) != 8 {
		t.Fatalf("expected 8-char lesson id, got %q", lesson.ID)
	}
	if lesson.Title != "Fractions" || lesson.ClassID != class.ID {
		t.Fatalf("unexpected lesson: %+v", lesson)
	}
	if len(lesson.Questions) != 0 || len(lesson.Scores) != 0 {
		t.Fatalf("expected empty questions and scores")
	}

	if _, err := svcs.lessons.Create(ctx, uuid.New(), "Orphan"); !apperrors.IsNotFound(err) {
		t.Fatalf("expected not found for missing class, got %v", err)
	}
}

func TestDeleteLessonOwnershipMismatch(t *testing.T) {
	svcs := newServices(t)
	ctx := context.Background()

	teacher := testutil.SeedUser(t, ctx, svcs.db, types.RoleTeacher)
	classA := testutil.SeedClass(t, ctx, svcs.db, teacher.ID)
	classB := testutil.SeedClass(t, ctx, svcs.db, teacher.ID)
	lessonA := testutil.SeedLesson(t, ctx, svcs.db, classA.ID)
	lessonB := testutil.SeedLesson(t, ctx, svcs.db, classB.ID)

	deleted, err := svcs.lessons.Delete(ctx, classA.ID, lessonB.ID)
	if err != nil {
		t.Fatalf("Delete (mismatch): %v", err)
	}
	if deleted {
		t.Fatalf("expected false when lesson belongs to another class")
	}

	// Both lessons must be intact after the mismatch attempt.
	if _, err := svcs.lessons.ByID(ctx, lessonA.ID); err != nil {
		t.Fatalf("lesson A should survive: %v", err)
	}
	if _, err := svcs.lessons.ByID(ctx, lessonB.ID); err != nil {
		t.Fatalf("lesson B should survive: %v", err)
	}

	deleted, err = svcs.lessons.Delete(ctx, classB.ID, lessonB.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !deleted {
		t.Fatalf("expected true for matching class and lesson")
	}
	if _, err := svcs.lessons.ByID(ctx, lessonB.ID); !apperrors.IsNotFound(err) {
		t.Fatalf("expected lesson B gone, got %v", err)
	}

	deleted, err = svcs.lessons.Delete(ctx, uuid.New(), lessonA.ID)
	if err != nil || deleted {
		t.Fatalf("expected false for missing class, got %v/%v", deleted, err)
	}
	deleted, err = svcs.lessons.Delete(ctx, classA.ID, "GONE0000")
	if err != nil || deleted {
		t.Fatalf("expected false for missing lesson, got %v/%v", deleted, err)
	}
}

func TestLessonByIDAssembled(t *testing.T) {
	svcs := newServices(t)
	ctx := context.Background()

	teacher := testutil.SeedUser(t, ctx, svcs.db, types.RoleTeacher)
	student := testutil.SeedUser(t, ctx, svcs.db, types.RoleStudent)
	class := testutil.SeedClass(t, ctx, svcs.db, teacher.ID)
	testutil.SeedEnrollment(t, ctx, svcs.db, class.ID, student.ID)
	lesson := testutil.SeedLesson(t, ctx, svcs.db, class.ID)
	question := testutil.SeedQuestion(t, ctx, svcs.db, lesson.ID)
	testutil.SeedScore(t, ctx, svcs.db, lesson.ID, student.ID, 90)

	got, err := svcs.lessons.ByID(ctx, lesson.ID)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if len(got.Questions) != 1 || got.Questions[0].ID != question.ID {
		t.Fatalf("questions not assembled: %+v", got.Questions)
	}
	if len(got.Scores) != 1 || got.Scores[0].Score != 90 {
		t.Fatalf("scores not assembled: %+v", got.Scores)
	}
	if got.Class == nil || got.Class.ID != class.ID || got.Class.Teacher == nil {
		t.Fatalf("owning class not assembled: %+v", got.Class)
	}

	if _, err := svcs.lessons.ByID(ctx, "NOLESSON"); !apperrors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
