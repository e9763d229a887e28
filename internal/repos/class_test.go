package repos

import (
	"context"
	"testing"

	"github.com/bloomlms/bloom-backend/internal/repos/testutil"
)

func TestClassRepoAssembly(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewClassRepo(db, testutil.Logger(t))
	ctx := context.Background()

	teacher := testutil.SeedUser(t, ctx, tx, "teacher")
	student := testutil.SeedUser(t, ctx, tx, "student")
	class := testutil.SeedClass(t, ctx, tx, teacher.ID)
	testutil.SeedEnrollment(t, ctx, tx, class.ID, student.ID)
	lesson := testutil.SeedLesson(t, ctx, tx, class.ID)
	testutil.SeedQuestion(t, ctx, tx, lesson.ID)
	testutil.SeedScore(t, ctx, tx, lesson.ID, student.ID, 80)

	got, err := repo.GetAssembledByID(ctx, tx, class.ID)
	if err != nil {
		t.Fatalf("GetAssembledByID: %v", err)
	}
	if got == nil {
		t.Fatalf("GetAssembledByID: expected class")
	}
	if got.Teacher == nil || got.Teacher.ID != teacher.ID {
		t.Fatalf("GetAssembledByID: teacher not loaded: %+v", got.Teacher)
	}
	if len(got.Students) != 1 || got.Students[0].ID != student.ID {
		t.Fatalf("GetAssembledByID: students not loaded: %+v", got.Students)
	}
	if len(got.Lessons) != 1 || got.Lessons[0].ID != lesson.ID {
		t.Fatalf("GetAssembledByID: lessons not loaded: %+v", got.Lessons)
	}
	if len(got.Lessons[0].Questions) != 1 {
		t.Fatalf("GetAssembledByID: lesson questions not loaded")
	}
	if len(got.Lessons[0].Scores) != 1 {
		t.Fatalf("GetAssembledByID: lesson scores not loaded")
	}

	byCode, err := repo.GetByCode(ctx, tx, class.Code)
	if err != nil {
		t.Fatalf("GetByCode: %v", err)
	}
	if byCode == nil || byCode.ID != class.ID {
		t.Fatalf("GetByCode: unexpected result: %+v", byCode)
	}

	missing, err := repo.GetByCode(ctx, tx, "ZZZZZZZZ")
	if err != nil {
		t.Fatalf("GetByCode (missing): %v", err)
	}
	if missing != nil {
		t.Fatalf("GetByCode (missing): expected nil")
	}

	taught, err := repo.GetAssembledByTeacherID(ctx, tx, teacher.ID)
	if err != nil {
		t.Fatalf("GetAssembledByTeacherID: %v", err)
	}
	if len(taught) != 1 || taught[0].ID != class.ID {
		t.Fatalf("GetAssembledByTeacherID: unexpected: %+v", taught)
	}

	enrolled, err := repo.GetAssembledByStudentID(ctx, tx, student.ID)
	if err != nil {
		t.Fatalf("GetAssembledByStudentID: %v", err)
	}
	if len(enrolled) != 1 || enrolled[0].ID != class.ID {
		t.Fatalf("GetAssembledByStudentID: unexpected: %+v", enrolled)
	}

	exists, err := repo.CodeExists(ctx, tx, class.Code)
	if err != nil {
		t.Fatalf("CodeExists: %v", err)
	}
	if !exists {
		t.Fatalf("CodeExists: expected true")
	}
}
