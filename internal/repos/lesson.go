package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bloomlms/bloom-backend/internal/pkg/logger"
	"github.com/bloomlms/bloom-backend/internal/types"
)

type LessonRepo interface {
	Create(ctx context.Context, tx *gorm.DB, lesson *types.Lesson) (*types.Lesson, error)
	GetByID(ctx context.Context, tx *gorm.DB, lessonID string) (*types.Lesson, error)
	GetAssembledByID(ctx context.Context, tx *gorm.DB, lessonID string) (*types.Lesson, error)
	IDExists(ctx context.Context, tx *gorm.DB, lessonID string) (bool, error)
	GetIDsByClassID(ctx context.Context, tx *gorm.DB, classID uuid.UUID) ([]string, error)
	FullDelete(ctx context.Context, tx *gorm.DB, lessonID string) error
	FullDeleteByClassID(ctx context.Context, tx *gorm.DB, classID uuid.UUID) error
}

type lessonRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLessonRepo(db *gorm.DB, baseLog *logger.Logger) LessonRepo {
	repoLog := baseLog.With("repo", "LessonRepo")
	return &lessonRepo{db: db, log: repoLog}
}

func (lr *lessonRepo) Create(ctx context.Context, tx *gorm.DB, lesson *types.Lesson) (*types.Lesson, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	if err := transaction.WithContext(ctx).Create(lesson).Error; err != nil {
		return nil, err
	}
	return lesson, nil
}

func (lr *lessonRepo) GetByID(ctx context.Context, tx *gorm.DB, lessonID string) (*types.Lesson, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var result types.Lesson
	err := transaction.WithContext(ctx).
		Where("id = ?", lessonID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (lr *lessonRepo) GetAssembledByID(ctx context.Context, tx *gorm.DB, lessonID string) (*types.Lesson, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var result types.Lesson
	err := transaction.WithContext(ctx).
		Preload("Questions").
		Preload("Scores").
		Preload("Class").
		Preload("Class.Teacher").
		Preload("Class.Students").
		Preload("Class.Lessons").
		Where("id = ?", lessonID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (lr *lessonRepo) IDExists(ctx context.Context, tx *gorm.DB, lessonID string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Lesson{}).
		Where("id = ?", lessonID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (lr *lessonRepo) GetIDsByClassID(ctx context.Context, tx *gorm.DB, classID uuid.UUID) ([]string, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var ids []string
	if err := transaction.WithContext(ctx).
		Model(&types.Lesson{}).
		Where("class_id = ?", classID).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (lr *lessonRepo) FullDelete(ctx context.Context, tx *gorm.DB, lessonID string) error {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	return transaction.WithContext(ctx).
		Where("id = ?", lessonID).
		Delete(&types.Lesson{}).Error
}

func (lr *lessonRepo) FullDeleteByClassID(ctx context.Context, tx *gorm.DB, classID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	return transaction.WithContext(ctx).
		Where("class_id = ?", classID).
		Delete(&types.Lesson{}).Error
}
