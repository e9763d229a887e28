package services

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"

	apperrors "github.com/bloomlms/bloom-backend/internal/pkg/errors"
	"github.com/bloomlms/bloom-backend/internal/repos/testutil"
	"github.com/bloomlms/bloom-backend/internal/types"
)

func TestSubmitLessonScoreUpsert(t *testing.T) {
	svcs := newServices(t)
	ctx := context.Background()

	teacher := testutil.SeedUser(t, ctx, svcs.db, types.RoleTeacher)
	student := testutil.SeedUser(t, ctx, svcs.db, types.RoleStudent)
	class := testutil.SeedClass(t, ctx, svcs.db, teacher.ID)
	lesson := testutil.SeedLesson(t, ctx, svcs.db, class.ID)

	first, err := svcs.scores.Submit(ctx, lesson.ID, student.ID, 80)
	if err != nil {
		t.Fatalf("Submit (first): %v", err)
	}
	second, err := svcs.scores.Submit(ctx, lesson.ID, student.ID, 95)
	if err != nil {
		t.Fatalf("Submit (second): %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected score overwritten in place, got new row")
	}
	if second.Score != 95 {
		t.Fatalf("score = %v, want 95", second.Score)
	}

	var count int64
	if err := svcs.db.Model(&types.LessonScore{}).
		Where("lesson_id = ? AND user_id = ?", lesson.ID, student.ID).
		Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one score row, got %d", count)
	}
}

func TestSubmitLessonScoreValidation(t *testing.T) {
	svcs := newServices(t)
	ctx := context.Background()

	teacher := testutil.SeedUser(t, ctx, svcs.db, types.RoleTeacher)
	student := testutil.SeedUser(t, ctx, svcs.db, types.RoleStudent)
	class := testutil.SeedClass(t, ctx, svcs.db, teacher.ID)
	lesson := testutil.SeedLesson(t, ctx, svcs.db, class.ID)

	if _, err := svcs.scores.Submit(ctx, lesson.ID, student.ID, -1); !apperrors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument for score < 0, got %v", err)
	}
	if _, err := svcs.scores.Submit(ctx, lesson.ID, student.ID, 100.5); !apperrors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument for score > 100, got %v", err)
	}
	if _, err := svcs.scores.Submit(ctx, "NOLESSON", student.ID, 50); !apperrors.IsNotFound(err) {
		t.Fatalf("expected not found for missing lesson, got %v", err)
	}
	if _, err := svcs.scores.Submit(ctx, lesson.ID, uuid.New(), 50); !apperrors.IsNotFound(err) {
		t.Fatalf("expected not found for missing user, got %v", err)
	}
}

func TestSubmitLessonScoreConcurrent(t *testing.T) {
	if os.Getenv("TEST_POSTGRES_DSN") == "" {
		t.Skip("set TEST_POSTGRES_DSN to run the concurrent upsert test")
	}

	svcs := newServices(t)
	ctx := context.Background()

	teacher := testutil.SeedUser(t, ctx, svcs.db, types.RoleTeacher)
	student := testutil.SeedUser(t, ctx, svcs.db, types.RoleStudent)
	class := testutil.SeedClass(t, ctx, svcs.db, teacher.ID)
	lesson := testutil.SeedLesson(t, ctx, svcs.db, class.ID)

	const submitters = 8
	var wg sync.WaitGroup
	errs := make(chan error, submitters)
	for i := 0; i < submitters; i++ {
		wg.Add(1)
		go func(score float64) {
			defer wg.Done()
			if _, err := svcs.scores.Submit(ctx, lesson.ID, student.ID, score); err != nil {
				errs <- err
			}
		}(float64(10 * (i + 1)))
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent Submit: %v", err)
	}

	var count int64
	if err := svcs.db.Model(&types.LessonScore{}).
		Where("lesson_id = ? AND user_id = ?", lesson.ID, student.ID).
		Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("concurrent submissions produced %d rows, want 1", count)
	}
}
