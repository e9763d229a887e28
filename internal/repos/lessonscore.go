package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bloomlms/bloom-backend/internal/pkg/logger"
	"github.com/bloomlms/bloom-backend/internal/types"
)

type LessonScoreRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, score *types.LessonScore) (*types.LessonScore, error)
	GetByLessonAndUser(ctx context.Context, tx *gorm.DB, lessonID string, userID uuid.UUID) (*types.LessonScore, error)
	FullDeleteByLessonIDs(ctx context.Context, tx *gorm.DB, lessonIDs []string) error
	FullDeleteByLessonIDsAndUser(ctx context.Context, tx *gorm.DB, lessonIDs []string, userID uuid.UUID) error
}

type lessonScoreRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLessonScoreRepo(db *gorm.DB, baseLog *logger.Logger) LessonScoreRepo {
	repoLog := baseLog.With("repo", "LessonScoreRepo")
	return &lessonScoreRepo{db: db, log: repoLog}
}

// Upsert inserts the score or overwrites an existing row for the same
// (lesson_id, user_id). The conflict target rides on the composite unique
// index, so two concurrent submissions cannot produce two rows.
func (sr *lessonScoreRepo) Upsert(ctx context.Context, tx *gorm.DB, score *types.LessonScore) (*types.LessonScore, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	if err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "lesson_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
		}).
		Create(score).Error; err != nil {
		return nil, err
	}
	// On conflict the stored row keeps its original id; re-read so callers
	// see the row as persisted.
	return sr.GetByLessonAndUser(ctx, transaction, score.LessonID, score.UserID)
}

func (sr *lessonScoreRepo) GetByLessonAndUser(ctx context.Context, tx *gorm.DB, lessonID string, userID uuid.UUID) (*types.LessonScore, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var result types.LessonScore
	err := transaction.WithContext(ctx).
		Where("lesson_id = ? AND user_id = ?", lessonID, userID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (sr *lessonScoreRepo) FullDeleteByLessonIDs(ctx context.Context, tx *gorm.DB, lessonIDs []string) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	if len(lessonIDs) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Where("lesson_id IN ?", lessonIDs).
		Delete(&types.LessonScore{}).Error
}

func (sr *lessonScoreRepo) FullDeleteByLessonIDsAndUser(ctx context.Context, tx *gorm.DB, lessonIDs []string, userID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	if len(lessonIDs) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Where("lesson_id IN ? AND user_id = ?", lessonIDs, userID).
		Delete(&types.LessonScore{}).Error
}
