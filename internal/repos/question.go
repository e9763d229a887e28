package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bloomlms/bloom-backend/internal/pkg/logger"
	"github.com/bloomlms/bloom-backend/internal/types"
)

type QuestionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, question *types.Question) (*types.Question, error)
	GetByID(ctx context.Context, tx *gorm.DB, questionID uuid.UUID) (*types.Question, error)
	Update(ctx context.Context, tx *gorm.DB, question *types.Question) (*types.Question, error)
	FullDelete(ctx context.Context, tx *gorm.DB, questionID uuid.UUID) error
	FullDeleteByLessonIDs(ctx context.Context, tx *gorm.DB, lessonIDs []string) error
}

type questionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuestionRepo(db *gorm.DB, baseLog *logger.Logger) QuestionRepo {
	repoLog := baseLog.With("repo", "QuestionRepo")
	return &questionRepo{db: db, log: repoLog}
}

func (qr *questionRepo) Create(ctx context.Context, tx *gorm.DB, question *types.Question) (*types.Question, error) {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}

	if err := transaction.WithContext(ctx).Create(question).Error; err != nil {
		return nil, err
	}
	return question, nil
}

func (qr *questionRepo) GetByID(ctx context.Context, tx *gorm.DB, questionID uuid.UUID) (*types.Question, error) {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}

	var result types.Question
	err := transaction.WithContext(ctx).
		Where("id = ?", questionID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (qr *questionRepo) Update(ctx context.Context, tx *gorm.DB, question *types.Question) (*types.Question, error) {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}

	if err := transaction.WithContext(ctx).
		Model(&types.Question{}).
		Where("id = ?", question.ID).
		Updates(map[string]interface{}{
			"title":          question.Title,
			"correct_answer": question.CorrectAnswer,
			"wrong_answers":  question.WrongAnswers,
		}).Error; err != nil {
		return nil, err
	}
	return qr.GetByID(ctx, transaction, question.ID)
}

func (qr *questionRepo) FullDelete(ctx context.Context, tx *gorm.DB, questionID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}

	return transaction.WithContext(ctx).
		Where("id = ?", questionID).
		Delete(&types.Question{}).Error
}

func (qr *questionRepo) FullDeleteByLessonIDs(ctx context.Context, tx *gorm.DB, lessonIDs []string) error {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}

	if len(lessonIDs) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Where("lesson_id IN ?", lessonIDs).
		Delete(&types.Question{}).Error
}
