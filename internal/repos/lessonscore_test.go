package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/bloomlms/bloom-backend/internal/repos/testutil"
	"github.com/bloomlms/bloom-backend/internal/types"
)

func TestLessonScoreRepoUpsert(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewLessonScoreRepo(db, testutil.Logger(t))
	ctx := context.Background()

	teacher := testutil.SeedUser(t, ctx, tx, "teacher")
	student := testutil.SeedUser(t, ctx, tx, "student")
	class := testutil.SeedClass(t, ctx, tx, teacher.ID)
	lesson := testutil.SeedLesson(t, ctx, tx, class.ID)

	first, err := repo.Upsert(ctx, tx, &types.LessonScore{
		ID:       uuid.New(),
		LessonID: lesson.ID,
		UserID:   student.ID,
		Score:    80,
	})
	if err != nil {
		t.Fatalf("Upsert (insert): %v", err)
	}
	if first.Score != 80 {
		t.Fatalf("Upsert (insert): score = %v, want 80", first.Score)
	}

	second, err := repo.Upsert(ctx, tx, &types.LessonScore{
		ID:       uuid.New(),
		LessonID: lesson.ID,
		UserID:   student.ID,
		Score:    95,
	})
	if err != nil {
		t.Fatalf("Upsert (update): %v", err)
	}
	if second.Score != 95 {
		t.Fatalf("Upsert (update): score = %v, want 95", second.Score)
	}
	if second.ID != first.ID {
		t.Fatalf("Upsert (update): expected row to be overwritten in place, got new id")
	}

	var count int64
	if err := tx.Model(&types.LessonScore{}).
		Where("lesson_id = ? AND user_id = ?", lesson.ID, student.ID).
		Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one score row, got %d", count)
	}

	if err := repo.FullDeleteByLessonIDsAndUser(ctx, tx, []string{lesson.ID}, student.ID); err != nil {
		t.Fatalf("FullDeleteByLessonIDsAndUser: %v", err)
	}
	gone, err := repo.GetByLessonAndUser(ctx, tx, lesson.ID, student.ID)
	if err != nil {
		t.Fatalf("GetByLessonAndUser after delete: %v", err)
	}
	if gone != nil {
		t.Fatalf("expected score row removed, got %+v", gone)
	}
}
