package app

import (
	"gorm.io/gorm"

	"github.com/bloomlms/bloom-backend/internal/pkg/logger"
	"github.com/bloomlms/bloom-backend/internal/services"
)

type Services struct {
	Users     services.UserService
	Classes   services.ClassService
	Lessons   services.LessonService
	Questions services.QuestionService
	Scores    services.ScoreService
}

func wireServices(db *gorm.DB, log *logger.Logger, r Repos) Services {
	return Services{
		Users:     services.NewUserService(db, log, r.Users),
		Classes:   services.NewClassService(db, log, r.Users, r.Classes, r.Enrollments, r.Lessons, r.Questions, r.Scores),
		Lessons:   services.NewLessonService(db, log, r.Classes, r.Lessons, r.Questions, r.Scores),
		Questions: services.NewQuestionService(db, log, r.Lessons, r.Questions),
		Scores:    services.NewScoreService(db, log, r.Users, r.Lessons, r.Scores),
	}
}
