package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bloomlms/bloom-backend/internal/pkg/logger"
	"github.com/bloomlms/bloom-backend/internal/types"
)

type EnrollmentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, enrollment *types.Enrollment) error
	Exists(ctx context.Context, tx *gorm.DB, classID, studentID uuid.UUID) (bool, error)
	Delete(ctx context.Context, tx *gorm.DB, classID, studentID uuid.UUID) error
	DeleteByClassID(ctx context.Context, tx *gorm.DB, classID uuid.UUID) error
}

type enrollmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEnrollmentRepo(db *gorm.DB, baseLog *logger.Logger) EnrollmentRepo {
	repoLog := baseLog.With("repo", "EnrollmentRepo")
	return &enrollmentRepo{db: db, log: repoLog}
}

func (er *enrollmentRepo) Create(ctx context.Context, tx *gorm.DB, enrollment *types.Enrollment) error {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	return transaction.WithContext(ctx).Create(enrollment).Error
}

func (er *enrollmentRepo) Exists(ctx context.Context, tx *gorm.DB, classID, studentID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Enrollment{}).
		Where("class_id = ? AND student_id = ?", classID, studentID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (er *enrollmentRepo) Delete(ctx context.Context, tx *gorm.DB, classID, studentID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	return transaction.WithContext(ctx).
		Where("class_id = ? AND student_id = ?", classID, studentID).
		Delete(&types.Enrollment{}).Error
}

func (er *enrollmentRepo) DeleteByClassID(ctx context.Context, tx *gorm.DB, classID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	return transaction.WithContext(ctx).
		Where("class_id = ?", classID).
		Delete(&types.Enrollment{}).Error
}
