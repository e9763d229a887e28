package app

import (
	"gorm.io/gorm"

	"github.com/bloomlms/bloom-backend/internal/pkg/logger"
	"github.com/bloomlms/bloom-backend/internal/repos"
)

type Repos struct {
	Users       repos.UserRepo
	Classes     repos.ClassRepo
	Enrollments repos.EnrollmentRepo
	Lessons     repos.LessonRepo
	Questions   repos.QuestionRepo
	Scores      repos.LessonScoreRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		Users:       repos.NewUserRepo(db, log),
		Classes:     repos.NewClassRepo(db, log),
		Enrollments: repos.NewEnrollmentRepo(db, log),
		Lessons:     repos.NewLessonRepo(db, log),
		Questions:   repos.NewQuestionRepo(db, log),
		Scores:      repos.NewLessonScoreRepo(db, log),
	}
}
