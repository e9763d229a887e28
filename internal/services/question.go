package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/bloomlms/bloom-backend/internal/pkg/errors"
	"github.com/bloomlms/bloom-backend/internal/pkg/logger"
	"github.com/bloomlms/bloom-backend/internal/repos"
	"github.com/bloomlms/bloom-backend/internal/types"
)

type QuestionService interface {
	Add(ctx context.Context, lessonID, title, correctAnswer string, wrongAnswers []string) (*types.Question, error)
	// Update overwrites every authored field. Returns nil without error
	// when the question does not exist.
	Update(ctx context.Context, questionID uuid.UUID, title, correctAnswer string, wrongAnswers []string) (*types.Question, error)
	// Delete returns false when the question does not exist.
	Delete(ctx context.Context, questionID uuid.UUID) (bool, error)
}

type questionService struct {
	db           *gorm.DB
	log          *logger.Logger
	lessonRepo   repos.LessonRepo
	questionRepo repos.QuestionRepo
}

func NewQuestionService(db *gorm.DB, log *logger.Logger, lessonRepo repos.LessonRepo, questionRepo repos.QuestionRepo) QuestionService {
	serviceLog := log.With("service", "QuestionService")
	return &questionService{db: db, log: serviceLog, lessonRepo: lessonRepo, questionRepo: questionRepo}
}

func (qs *questionService) Add(ctx context.Context, lessonID, title, correctAnswer string, wrongAnswers []string) (*types.Question, error) {
	var result *types.Question
	err := qs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lesson, err := qs.lessonRepo.GetByID(ctx, tx, lessonID)
		if err != nil {
			return fmt.Errorf("fetch lesson: %w", err)
		}
		if lesson == nil {
			return apperrors.NotFoundf("lesson %s", lessonID)
		}

		created, err := qs.questionRepo.Create(ctx, tx, &types.Question{
			ID:            uuid.New(),
			Title:         title,
			CorrectAnswer: correctAnswer,
			WrongAnswers:  wrongAnswers,
			LessonID:      lessonID,
		})
		if err != nil {
			return fmt.Errorf("create question: %w", err)
		}
		created.Lesson = lesson
		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (qs *questionService) Update(ctx context.Context, questionID uuid.UUID, title, correctAnswer string, wrongAnswers []string) (*types.Question, error) {
	var result *types.Question
	err := qs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := qs.questionRepo.GetByID(ctx, tx, questionID)
		if err != nil {
			return fmt.Errorf("fetch question: %w", err)
		}
		if existing == nil {
			return nil
		}

		updated, err := qs.questionRepo.Update(ctx, tx, &types.Question{
			ID:            questionID,
			Title:         title,
			CorrectAnswer: correctAnswer,
			WrongAnswers:  wrongAnswers,
		})
		if err != nil {
			return fmt.Errorf("update question: %w", err)
		}
		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (qs *questionService) Delete(ctx context.Context, questionID uuid.UUID) (bool, error) {
	deleted := false
	err := qs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := qs.questionRepo.GetByID(ctx, tx, questionID)
		if err != nil {
			return fmt.Errorf("fetch question: %w", err)
		}
		if existing == nil {
			return nil
		}
		if err := qs.questionRepo.FullDelete(ctx, tx, questionID); err != nil {
			return fmt.Errorf("delete question: %w", err)
		}
		deleted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
