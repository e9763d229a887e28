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

type ClassService interface {
	Create(ctx context.Context, name string, teacherID uuid.UUID) (*types.Class, error)
	// Join enrolls a student by class code. Joining a class the student
	// already belongs to is a no-op returning the current class.
	Join(ctx context.Context, userID uuid.UUID, classCode string) (*types.Class, error)
	// Leave removes the enrollment and the student's scores across every
	// lesson of the class in one transaction. Returns false when the
	// student was not enrolled.
	Leave(ctx context.Context, classID, studentID uuid.UUID) (bool, error)
	Delete(ctx context.Context, classID uuid.UUID) (bool, error)
	ForUser(ctx context.Context, userID uuid.UUID) ([]*types.Class, error)
	TaughtBy(ctx context.Context, teacherID uuid.UUID) ([]*types.Class, error)
	EnrolledBy(ctx context.Context, studentID uuid.UUID) ([]*types.Class, error)
	// ByCode returns nil without error when no class matches.
	ByCode(ctx context.Context, code string) (*types.Class, error)
}

type classService struct {
	db             *gorm.DB
	log            *logger.Logger
	userRepo       repos.UserRepo
	classRepo      repos.ClassRepo
	enrollmentRepo repos.EnrollmentRepo
	lessonRepo     repos.LessonRepo
	questionRepo   repos.QuestionRepo
	scoreRepo      repos.LessonScoreRepo
}

func NewClassService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	classRepo repos.ClassRepo,
	enrollmentRepo repos.EnrollmentRepo,
	lessonRepo repos.LessonRepo,
	questionRepo repos.QuestionRepo,
	scoreRepo repos.LessonScoreRepo,
) ClassService {
	serviceLog := log.With("service", "ClassService")
	return &classService{
		db:             db,
		log:            serviceLog,
		userRepo:       userRepo,
		classRepo:      classRepo,
		enrollmentRepo: enrollmentRepo,
		lessonRepo:     lessonRepo,
		questionRepo:   questionRepo,
		scoreRepo:      scoreRepo,
	}
}

func (cs *classService) Create(ctx context.Context, name string, teacherID uuid.UUID) (*types.Class, error) {
	var result *types.Class
	err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		teacher, err := cs.userRepo.GetByID(ctx, tx, teacherID)
		if err != nil {
			return fmt.Errorf("fetch teacher: %w", err)
		}
		if err := authorize(teacher, ActionCreateClass); err != nil {
			return err
		}

		for attempt := 0; attempt < maxCodeAttempts; attempt++ {
			code, err := generateCode()
			if err != nil {
				return err
			}
			taken, err := cs.classRepo.CodeExists(ctx, tx, code)
			if err != nil {
				return fmt.Errorf("check class code: %w", err)
			}
			if taken {
				continue
			}
			created, err := cs.classRepo.Create(ctx, tx, &types.Class{
				ID:        uuid.New(),
				Name:      name,
				Code:      code,
				TeacherID: teacherID,
			})
			if err != nil {
				if db.IsUniqueViolation(err) {
					continue
				}
				return fmt.Errorf("create class: %w", err)
			}
			created.Teacher = teacher
			created.Students = []*types.User{}
			created.Lessons = []*types.Lesson{}
			result = created
			return nil
		}
		return fmt.Errorf("%w: no unique class code after %d attempts", apperrors.ErrCodeGeneration, maxCodeAttempts)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (cs *classService) Join(ctx context.Context, userID uuid.UUID, classCode string) (*types.Class, error) {
	var result *types.Class
	err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		student, err := cs.userRepo.GetByID(ctx, tx, userID)
		if err != nil {
			return fmt.Errorf("fetch student: %w", err)
		}
		if err := authorize(student, ActionJoinClass); err != nil {
			return err
		}

		class, err := cs.classRepo.GetByCode(ctx, tx, classCode)
		if err != nil {
			return fmt.Errorf("fetch class by code: %w", err)
		}
		if class == nil {
			return apperrors.NotFoundf("class with code %q", classCode)
		}

		enrolled, err := cs.enrollmentRepo.Exists(ctx, tx, class.ID, userID)
		if err != nil {
			return fmt.Errorf("check enrollment: %w", err)
		}
		if !enrolled {
			err := cs.enrollmentRepo.Create(ctx, tx, &types.Enrollment{
				ClassID:   class.ID,
				StudentID: userID,
			})
			// A concurrent join for the same pair is the same membership.
			if err != nil && !db.IsUniqueViolation(err) {
				return fmt.Errorf("create enrollment: %w", err)
			}
			if err == nil {
				class.Students = append(class.Students, student)
			}
		}
		result = class
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (cs *classService) Leave(ctx context.Context, classID, studentID uuid.UUID) (bool, error) {
	left := false
	err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		class, err := cs.classRepo.GetByID(ctx, tx, classID)
		if err != nil {
			return fmt.Errorf("fetch class: %w", err)
		}
		if class == nil {
			return apperrors.NotFoundf("class %s", classID)
		}
		student, err := cs.userRepo.GetByID(ctx, tx, studentID)
		if err != nil {
			return fmt.Errorf("fetch student: %w", err)
		}
		if student == nil {
			return apperrors.NotFoundf("user %s", studentID)
		}

		enrolled, err := cs.enrollmentRepo.Exists(ctx, tx, classID, studentID)
		if err != nil {
			return fmt.Errorf("check enrollment: %w", err)
		}
		if !enrolled {
			return nil
		}

		// Scores are owned by lessons, not the enrollment, so they are
		// cleaned up explicitly before the membership goes away.
		lessonIDs, err := cs.lessonRepo.GetIDsByClassID(ctx, tx, classID)
		if err != nil {
			return fmt.Errorf("fetch class lessons: %w", err)
		}
		if err := cs.scoreRepo.FullDeleteByLessonIDsAndUser(ctx, tx, lessonIDs, studentID); err != nil {
			return fmt.Errorf("delete student scores: %w", err)
		}
		if err := cs.enrollmentRepo.Delete(ctx, tx, classID, studentID); err != nil {
			return fmt.Errorf("delete enrollment: %w", err)
		}
		left = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return left, nil
}

func (cs *classService) Delete(ctx context.Context, classID uuid.UUID) (bool, error) {
	err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		class, err := cs.classRepo.GetByID(ctx, tx, classID)
		if err != nil {
			return fmt.Errorf("fetch class: %w", err)
		}
		if class == nil {
			return apperrors.NotFoundf("class %s", classID)
		}

		lessonIDs, err := cs.lessonRepo.GetIDsByClassID(ctx, tx, classID)
		if err != nil {
			return fmt.Errorf("fetch class lessons: %w", err)
		}
		if err := cs.scoreRepo.FullDeleteByLessonIDs(ctx, tx, lessonIDs); err != nil {
			return fmt.Errorf("delete lesson scores: %w", err)
		}
		if err := cs.questionRepo.FullDeleteByLessonIDs(ctx, tx, lessonIDs); err != nil {
			return fmt.Errorf("delete lesson questions: %w", err)
		}
		if err := cs.lessonRepo.FullDeleteByClassID(ctx, tx, classID); err != nil {
			return fmt.Errorf("delete lessons: %w", err)
		}
		if err := cs.enrollmentRepo.DeleteByClassID(ctx, tx, classID); err != nil {
			return fmt.Errorf("delete enrollments: %w", err)
		}
		if err := cs.classRepo.FullDelete(ctx, tx, classID); err != nil {
			return fmt.Errorf("delete class: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (cs *classService) ForUser(ctx context.Context, userID uuid.UUID) ([]*types.Class, error) {
	user, err := cs.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch user: %w", err)
	}
	if user == nil {
		return nil, apperrors.NotFoundf("user %s", userID)
	}
	if user.Role == types.RoleTeacher {
		return cs.TaughtBy(ctx, userID)
	}
	return cs.EnrolledBy(ctx, userID)
}

func (cs *classService) TaughtBy(ctx context.Context, teacherID uuid.UUID) ([]*types.Class, error) {
	return cs.classRepo.GetAssembledByTeacherID(ctx, nil, teacherID)
}

func (cs *classService) EnrolledBy(ctx context.Context, studentID uuid.UUID) ([]*types.Class, error) {
	return cs.classRepo.GetAssembledByStudentID(ctx, nil, studentID)
}

func (cs *classService) ByCode(ctx context.Context, code string) (*types.Class, error) {
	return cs.classRepo.GetByCode(ctx, nil, code)
}
