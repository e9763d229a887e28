package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bloomlms/bloom-backend/internal/db"
	apperrors "github.com/bloomlms/bloom-backend/internal/pkg/errors"
	"github.com/bloomlms/bloom-backend/internal/pkg/logger"
	"github.com/bloomlms/bloom-backend/internal/repos"
	"github.com/bloomlms/bloom-backend/internal/types"
)

type LessonService interface {
	Create(ctx context.Context, classID uuid.UUID, title string) (*types.Lesson, error)
	// Delete returns false when the class or lesson is missing or when the
	// lesson belongs to a different class. It never deletes across classes.
	Delete(ctx context.Context, classID uuid.UUID, lessonID string) (bool, error)
	ByID(ctx context.Context, lessonID string) (*types.Lesson, error)
}

type lessonService struct {
	db           *gorm.DB
	log          *logger.Logger
	classRepo    repos.ClassRepo
	lessonRepo   repos.LessonRepo
	questionRepo repos.QuestionRepo
	scoreRepo    repos.LessonScoreRepo
}

func NewLessonService(db *gorm.DB, log *logger.Logger, classRepo repos.ClassRepo, lessonRepo repos.LessonRepo, questionRepo repos.QuestionRepo, scoreRepo repos.LessonScoreRepo) LessonService {
	serviceLog := log.With("service", "LessonService")
	return &lessonService{
		db:           db,
		log:          serviceLog,
		classRepo:    classRepo,
		lessonRepo:   lessonRepo,
		questionRepo: questionRepo,
		scoreRepo:    scoreRepo,
	}
}

func (ls *lessonService) Create(ctx context.Context, classID uuid.UUID, title string) (*types.Lesson, error) {
	var result *types.Lesson
	err := ls.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		class, err := ls.classRepo.GetByID(ctx, tx, classID)
		if err != nil {
			return fmt.Errorf("fetch class: %w", err)
		}
		if class == nil {
			return apperrors.NotFoundf("class %s", classID)
		}

		// Lesson codes double as primary keys, so uniqueness is global.
		for attempt := 0; attempt < maxCodeAttempts; attempt++ {
			code, err := generateCode()
			if err != nil {
				return err
			}
			taken, err := ls.lessonRepo.IDExists(ctx, tx, code)
			if err != nil {
				return fmt.Errorf("check lesson code: %w", err)
			}
			if taken {
				continue
			}
			created, err := ls.lessonRepo.Create(ctx, tx, &types.Lesson{
				ID:      code,
				Title:   title,
				ClassID: classID,
			})
			if err != nil {
				if db.IsUniqueViolation(err) {
					continue
				}
				return fmt.Errorf("create lesson: %w", err)
			}
			created.Class = class
			created.Questions = []*types.Question{}
			created.Scores = []*types.LessonScore{}
			result = created
			return nil
		}
		return fmt.Errorf("%w: no unique lesson code after %d attempts", apperrors.ErrCodeGeneration, maxCodeAttempts)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (ls *lessonService) Delete(ctx context.Context, classID uuid.UUID, lessonID string) (bool, error) {
	deleted := false
	err := ls.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		class, err := ls.classRepo.GetByID(ctx, tx, classID)
		if err != nil {
			return fmt.Errorf("fetch class: %w", err)
		}
		if class == nil {
			return nil
		}
		lesson, err := ls.lessonRepo.GetByID(ctx, tx, lessonID)
		if err != nil {
			return fmt.Errorf("fetch lesson: %w", err)
		}
		if lesson == nil || lesson.ClassID != classID {
			return nil
		}

		if err := ls.scoreRepo.FullDeleteByLessonIDs(ctx, tx, []string{lessonID}); err != nil {
			return fmt.Errorf("delete lesson scores: %w", err)
		}
		if err := ls.questionRepo.FullDeleteByLessonIDs(ctx, tx, []string{lessonID}); err != nil {
			return fmt.Errorf("delete lesson questions: %w", err)
		}
		if err := ls.lessonRepo.FullDelete(ctx, tx, lessonID); err != nil {
			return fmt.Errorf("delete lesson: %w", err)
		}
		deleted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func (ls *lessonService) ByID(ctx context.Context, lessonID string) (*types.Lesson, error) {
	lesson, err := ls.lessonRepo.GetAssembledByID(ctx, nil, lessonID)
	if err != nil {
		return nil, fmt.Errorf("fetch lesson: %w", err)
	}
	if lesson == nil {
		return nil, apperrors.NotFoundf("lesson %s", lessonID)
	}
	return lesson, nil
}
