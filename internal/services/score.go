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

type ScoreService interface {
	// Submit upserts the user's score for a lesson: one row per
	// (lesson, user), latest submission wins.
	Submit(ctx context.Context, lessonID string, userID uuid.UUID, score float64) (*types.LessonScore, error)
}

type scoreService struct {
	db         *gorm.DB
	log        *logger.Logger
	userRepo   repos.UserRepo
	lessonRepo repos.LessonRepo
	scoreRepo  repos.LessonScoreRepo
}

func NewScoreService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, lessonRepo repos.LessonRepo, scoreRepo repos.LessonScoreRepo) ScoreService {
	serviceLog := log.With("service", "ScoreService")
	return &scoreService{db: db, log: serviceLog, userRepo: userRepo, lessonRepo: lessonRepo, scoreRepo: scoreRepo}
}

func (ss *scoreService) Submit(ctx context.Context, lessonID string, userID uuid.UUID, score float64) (*types.LessonScore, error) {
	if score < 0 || score > 100 {
		return nil, apperrors.InvalidArgumentf("score must be between 0 and 100, got %v", score)
	}

	var result *types.LessonScore
	err := ss.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := ss.lessonRepo.IDExists(ctx, tx, lessonID)
		if err != nil {
			return fmt.Errorf("check lesson: %w", err)
		}
		if !exists {
			return apperrors.NotFoundf("lesson %s", lessonID)
		}
		user, err := ss.userRepo.GetByID(ctx, tx, userID)
		if err != nil {
			return fmt.Errorf("fetch user: %w", err)
		}
		if user == nil {
			return apperrors.NotFoundf("user %s", userID)
		}

		upserted, err := ss.scoreRepo.Upsert(ctx, tx, &types.LessonScore{
			ID:       uuid.New(),
			LessonID: lessonID,
			UserID:   userID,
			Score:    score,
		})
		if err != nil {
			return fmt.Errorf("upsert score: %w", err)
		}
		result = upserted
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
