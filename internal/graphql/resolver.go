package graphql

import (
	"context"

	gql "github.com/graph-gophers/graphql-go"

	apperrors "github.com/bloomlms/bloom-backend/internal/pkg/errors"
	"github.com/bloomlms/bloom-backend/internal/services"
	"github.com/bloomlms/bloom-backend/internal/types"
	"github.com/google/uuid"
)

// Services bundles the domain services the resolvers dispatch to.
type Services struct {
	Users     services.UserService
	Classes   services.ClassService
	Lessons   services.LessonService
	Questions services.QuestionService
	Scores    services.ScoreService
}

// Resolver is the root query/mutation resolver.
type Resolver struct {
	svcs *Services
}

func NewResolver(svcs *Services) *Resolver {
	return &Resolver{svcs: svcs}
}

// NewSchema parses the wire schema against the root resolver.
func NewSchema(svcs *Services) (*gql.Schema, error) {
	return gql.ParseSchema(Schema, NewResolver(svcs))
}

func parseUUID(id gql.ID, field string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(string(id))
	if err != nil {
		return uuid.Nil, apperrors.InvalidArgumentf("%s is not a valid id: %v", field, err)
	}
	return parsed, nil
}

// ----- Query -----

func (r *Resolver) UserByGoogleSub(ctx context.Context, args struct{ GoogleSub string }) (*UserResolver, error) {
	user, err := r.svcs.Users.ByGoogleSub(ctx, args.GoogleSub)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return &UserResolver{svcs: r.svcs, user: user}, nil
}

func (r *Resolver) ClassesForUser(ctx context.Context, args struct{ UserId gql.ID }) ([]*ClassResolver, error) {
	userID, err := parseUUID(args.UserId, "userId")
	if err != nil {
		return nil, err
	}
	classes, err := r.svcs.Classes.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return wrapClasses(r.svcs, classes), nil
}

func (r *Resolver) ClassByCode(ctx context.Context, args struct{ Code string }) (*ClassResolver, error) {
	class, err := r.svcs.Classes.ByCode(ctx, args.Code)
	if err != nil {
		return nil, err
	}
	if class == nil {
		return nil, nil
	}
	return &ClassResolver{svcs: r.svcs, class: class}, nil
}

func (r *Resolver) LessonById(ctx context.Context, args struct{ Id gql.ID }) (*LessonResolver, error) {
	lesson, err := r.svcs.Lessons.ByID(ctx, string(args.Id))
	if err != nil {
		return nil, err
	}
	return &LessonResolver{svcs: r.svcs, lesson: lesson}, nil
}

// ----- Mutation -----

func (r *Resolver) CreateOrUpdateUser(ctx context.Context, args struct {
	GoogleSub string
	Name      string
	Email     string
	Role      string
	Picture   *string
}) (*UserResolver, error) {
	input := services.CreateOrUpdateUserInput{
		GoogleSub: args.GoogleSub,
		Name:      args.Name,
		Email:     args.Email,
		Role:      args.Role,
	}
	if args.Picture != nil {
		input.Picture = *args.Picture
	}
	user, err := r.svcs.Users.CreateOrUpdate(ctx, input)
	if err != nil {
		return nil, err
	}
	return &UserResolver{svcs: r.svcs, user: user}, nil
}

func (r *Resolver) CreateClass(ctx context.Context, args struct {
	Name      string
	TeacherId gql.ID
}) (*ClassResolver, error) {
	teacherID, err := parseUUID(args.TeacherId, "teacherId")
	if err != nil {
		return nil, err
	}
	class, err := r.svcs.Classes.Create(ctx, args.Name, teacherID)
	if err != nil {
		return nil, err
	}
	return &ClassResolver{svcs: r.svcs, class: class}, nil
}

func (r *Resolver) JoinClass(ctx context.Context, args struct {
	UserId    gql.ID
	ClassCode string
}) (*ClassResolver, error) {
	userID, err := parseUUID(args.UserId, "userId")
	if err != nil {
		return nil, err
	}
	class, err := r.svcs.Classes.Join(ctx, userID, args.ClassCode)
	if err != nil {
		return nil, err
	}
	return &ClassResolver{svcs: r.svcs, class: class}, nil
}

func (r *Resolver) LeaveClass(ctx context.Context, args struct {
	ClassId   gql.ID
	StudentId gql.ID
}) (bool, error) {
	classID, err := parseUUID(args.ClassId, "classId")
	if err != nil {
		return false, err
	}
	studentID, err := parseUUID(args.StudentId, "studentId")
	if err != nil {
		return false, err
	}
	return r.svcs.Classes.Leave(ctx, classID, studentID)
}

func (r *Resolver) CreateLesson(ctx context.Context, args struct {
	ClassId gql.ID
	Title   string
}) (*LessonResolver, error) {
	classID, err := parseUUID(args.ClassId, "classId")
	if err != nil {
		return nil, err
	}
	lesson, err := r.svcs.Lessons.Create(ctx, classID, args.Title)
	if err != nil {
		return nil, err
	}
	return &LessonResolver{svcs: r.svcs, lesson: lesson}, nil
}

func (r *Resolver) DeleteLesson(ctx context.Context, args struct {
	ClassId  gql.ID
	LessonId gql.ID
}) (bool, error) {
	classID, err := parseUUID(args.ClassId, "classId")
	if err != nil {
		return false, err
	}
	return r.svcs.Lessons.Delete(ctx, classID, string(args.LessonId))
}

func (r *Resolver) DeleteClass(ctx context.Context, args struct{ ClassId gql.ID }) (bool, error) {
	classID, err := parseUUID(args.ClassId, "classId")
	if err != nil {
		return false, err
	}
	return r.svcs.Classes.Delete(ctx, classID)
}

func (r *Resolver) AddQuestionToLesson(ctx context.Context, args struct {
	LessonId      gql.ID
	Title         string
	CorrectAnswer string
	WrongAnswers  []string
}) (*QuestionResolver, error) {
	question, err := r.svcs.Questions.Add(ctx, string(args.LessonId), args.Title, args.CorrectAnswer, args.WrongAnswers)
	if err != nil {
		return nil, err
	}
	return &QuestionResolver{svcs: r.svcs, question: question}, nil
}

func (r *Resolver) UpdateQuestion(ctx context.Context, args struct {
	QuestionId    gql.ID
	Title         string
	CorrectAnswer string
	WrongAnswers  []string
}) (*QuestionResolver, error) {
	questionID, err := parseUUID(args.QuestionId, "questionId")
	if err != nil {
		return nil, err
	}
	question, err := r.svcs.Questions.Update(ctx, questionID, args.Title, args.CorrectAnswer, args.WrongAnswers)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, nil
	}
	return &QuestionResolver{svcs: r.svcs, question: question}, nil
}

func (r *Resolver) DeleteQuestion(ctx context.Context, args struct{ QuestionId gql.ID }) (bool, error) {
	questionID, err := parseUUID(args.QuestionId, "questionId")
	if err != nil {
		return false, err
	}
	return r.svcs.Questions.Delete(ctx, questionID)
}

func (r *Resolver) SubmitLessonScore(ctx context.Context, args struct {
	LessonId gql.ID
	UserId   gql.ID
	Score    float64
}) (*LessonScoreResolver, error) {
	userID, err := parseUUID(args.UserId, "userId")
	if err != nil {
		return nil, err
	}
	score, err := r.svcs.Scores.Submit(ctx, string(args.LessonId), userID, args.Score)
	if err != nil {
		return nil, err
	}
	return &LessonScoreResolver{score: score}, nil
}

// ----- Type resolvers -----

type UserResolver struct {
	svcs *Services
	user *types.User
}

func (r *UserResolver) Id() gql.ID         { return gql.ID(r.user.ID.String()) }
func (r *UserResolver) Google_sub() string { return r.user.GoogleSub }
func (r *UserResolver) Name() string       { return r.user.Name }
func (r *UserResolver) Email() string      { return r.user.Email }
func (r *UserResolver) Picture() string    { return r.user.Picture }
func (r *UserResolver) Role() string       { return r.user.Role }

func (r *UserResolver) Classes_taught(ctx context.Context) ([]*ClassResolver, error) {
	if r.user.Role != types.RoleTeacher {
		return []*ClassResolver{}, nil
	}
	classes, err := r.svcs.Classes.TaughtBy(ctx, r.user.ID)
	if err != nil {
		return nil, err
	}
	return wrapClasses(r.svcs, classes), nil
}

func (r *UserResolver) Classes_enrolled(ctx context.Context) ([]*ClassResolver, error) {
	if r.user.Role != types.RoleStudent {
		return []*ClassResolver{}, nil
	}
	classes, err := r.svcs.Classes.EnrolledBy(ctx, r.user.ID)
	if err != nil {
		return nil, err
	}
	return wrapClasses(r.svcs, classes), nil
}

type ClassResolver struct {
	svcs  *Services
	class *types.Class
}

func (r *ClassResolver) Id() gql.ID   { return gql.ID(r.class.ID.String()) }
func (r *ClassResolver) Name() string { return r.class.Name }
func (r *ClassResolver) Code() string { return r.class.Code }

func (r *ClassResolver) Teacher() *UserResolver {
	if r.class.Teacher == nil {
		return nil
	}
	return &UserResolver{svcs: r.svcs, user: r.class.Teacher}
}

func (r *ClassResolver) Students() []*UserResolver {
	students := make([]*UserResolver, 0, len(r.class.Students))
	for _, s := range r.class.Students {
		students = append(students, &UserResolver{svcs: r.svcs, user: s})
	}
	return students
}

func (r *ClassResolver) Lessons() []*LessonResolver {
	lessons := make([]*LessonResolver, 0, len(r.class.Lessons))
	for _, l := range r.class.Lessons {
		lessons = append(lessons, &LessonResolver{svcs: r.svcs, lesson: l, parentClass: r})
	}
	return lessons
}

type LessonResolver struct {
	svcs        *Services
	lesson      *types.Lesson
	parentClass *ClassResolver
}

func (r *LessonResolver) Id() gql.ID    { return gql.ID(r.lesson.ID) }
func (r *LessonResolver) Title() string { return r.lesson.Title }

func (r *LessonResolver) Class_() *ClassResolver {
	if r.parentClass != nil {
		return r.parentClass
	}
	if r.lesson.Class == nil {
		return nil
	}
	return &ClassResolver{svcs: r.svcs, class: r.lesson.Class}
}

func (r *LessonResolver) Questions() []*QuestionResolver {
	questions := make([]*QuestionResolver, 0, len(r.lesson.Questions))
	for _, q := range r.lesson.Questions {
		questions = append(questions, &QuestionResolver{svcs: r.svcs, question: q, parentLesson: r})
	}
	return questions
}

func (r *LessonResolver) Scores() []*LessonScoreResolver {
	scores := make([]*LessonScoreResolver, 0, len(r.lesson.Scores))
	for _, s := range r.lesson.Scores {
		scores = append(scores, &LessonScoreResolver{score: s})
	}
	return scores
}

type QuestionResolver struct {
	svcs         *Services
	question     *types.Question
	parentLesson *LessonResolver
}

func (r *QuestionResolver) Id() gql.ID             { return gql.ID(r.question.ID.String()) }
func (r *QuestionResolver) Title() string          { return r.question.Title }
func (r *QuestionResolver) Correct_answer() string { return r.question.CorrectAnswer }

func (r *QuestionResolver) Wrong_answers() []string {
	return []string(r.question.WrongAnswers)
}

func (r *QuestionResolver) Lesson() *LessonResolver {
	if r.parentLesson != nil {
		return r.parentLesson
	}
	if r.question.Lesson == nil {
		return nil
	}
	return &LessonResolver{svcs: r.svcs, lesson: r.question.Lesson}
}

type LessonScoreResolver struct {
	score *types.LessonScore
}

func (r *LessonScoreResolver) Lesson_id() gql.ID { return gql.ID(r.score.LessonID) }
func (r *LessonScoreResolver) User_id() gql.ID   { return gql.ID(r.score.UserID.String()) }
func (r *LessonScoreResolver) Score() float64    { return r.score.Score }

func wrapClasses(svcs *Services, classes []*types.Class) []*ClassResolver {
	resolvers := make([]*ClassResolver, 0, len(classes))
	for _, c := range classes {
		resolvers = append(resolvers, &ClassResolver{svcs: svcs, class: c})
	}
	return resolvers
}
