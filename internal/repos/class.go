package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bloomlms/bloom-backend/internal/pkg/logger"
	"github.com/bloomlms/bloom-backend/internal/types"
)

type ClassRepo interface {
	Create(ctx context.Context, tx *gorm.DB, class *types.Class) (*types.Class, error)
	GetByID(ctx context.Context, tx *gorm.DB, classID uuid.UUID) (*types.Class, error)
	GetByCode(ctx context.Context, tx *gorm.DB, code string) (*types.Class, error)
	CodeExists(ctx context.Context, tx *gorm.DB, code string) (bool, error)
	GetAssembledByID(ctx context.Context, tx *gorm.DB, classID uuid.UUID) (*types.Class, error)
	GetAssembledByTeacherID(ctx context.Context, tx *gorm.DB, teacherID uuid.UUID) ([]*types.Class, error)
	GetAssembledByStudentID(ctx context.Context, tx *gorm.DB, studentID uuid.UUID) ([]*types.Class, error)
	FullDelete(ctx context.Context, tx *gorm.DB, classID uuid.UUID) error
}

type classRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewClassRepo(db *gorm.DB, baseLog *logger.Logger) ClassRepo {
	repoLog := baseLog.With("repo", "ClassRepo")
	return &classRepo{db: db, log: repoLog}
}

// assembled eager-loads the full class graph: teacher, student roster and
// lessons with their questions and scores.
func assembled(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Teacher").
		Preload("Students").
		Preload("Lessons").
		Preload("Lessons.Questions").
		Preload("Lessons.Scores")
}

func (cr *classRepo) Create(ctx context.Context, tx *gorm.DB, class *types.Class) (*types.Class, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	if err := transaction.WithContext(ctx).Create(class).Error; err != nil {
		return nil, err
	}
	return class, nil
}

func (cr *classRepo) GetByID(ctx context.Context, tx *gorm.DB, classID uuid.UUID) (*types.Class, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var result types.Class
	err := transaction.WithContext(ctx).
		Where("id = ?", classID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (cr *classRepo) GetByCode(ctx context.Context, tx *gorm.DB, code string) (*types.Class, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var result types.Class
	err := assembled(transaction.WithContext(ctx)).
		Where("code = ?", code).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (cr *classRepo) CodeExists(ctx context.Context, tx *gorm.DB, code string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Class{}).
		Where("code = ?", code).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (cr *classRepo) GetAssembledByID(ctx context.Context, tx *gorm.DB, classID uuid.UUID) (*types.Class, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var result types.Class
	err := assembled(transaction.WithContext(ctx)).
		Where("id = ?", classID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (cr *classRepo) GetAssembledByTeacherID(ctx context.Context, tx *gorm.DB, teacherID uuid.UUID) ([]*types.Class, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.Class
	if err := assembled(transaction.WithContext(ctx)).
		Where("teacher_id = ?", teacherID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *classRepo) GetAssembledByStudentID(ctx context.Context, tx *gorm.DB, studentID uuid.UUID) ([]*types.Class, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.Class
	if err := assembled(transaction.WithContext(ctx)).
		Joins("JOIN enrollment ON enrollment.class_id = class.id").
		Where("enrollment.student_id = ?", studentID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *classRepo) FullDelete(ctx context.Context, tx *gorm.DB, classID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	return transaction.WithContext(ctx).
		Where("id = ?", classID).
		Delete(&types.Class{}).Error
}
