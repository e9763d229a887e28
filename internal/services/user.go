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

type CreateOrUpdateUserInput struct {
	GoogleSub string
	Name      string
	Email     string
	Role      string
	Picture   string
}

type UserService interface {
	// CreateOrUpdate upserts a user by its external identity subject. On
	// update only name/email/picture change; role is immutable after the
	// first sign-in.
	CreateOrUpdate(ctx context.Context, input CreateOrUpdateUserInput) (*types.User, error)
	// ByGoogleSub returns nil without error when no user matches.
	ByGoogleSub(ctx context.Context, googleSub string) (*types.User, error)
}

type userService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo) UserService {
	serviceLog := log.With("service", "UserService")
	return &userService{db: db, log: serviceLog, userRepo: userRepo}
}

func (us *userService) CreateOrUpdate(ctx context.Context, input CreateOrUpdateUserInput) (*types.User, error) {
	if input.GoogleSub == "" {
		return nil, apperrors.InvalidArgumentf("google_sub is required")
	}

	var result *types.User
	err := us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := us.userRepo.GetByGoogleSub(ctx, tx, input.GoogleSub)
		if err != nil {
			return fmt.Errorf("fetch user by google_sub: %w", err)
		}
		if existing != nil {
			return us.updateProfile(ctx, tx, existing, input, &result)
		}

		if !types.ValidRole(input.Role) {
			return apperrors.InvalidArgumentf("role must be %s or %s, got %q", types.RoleTeacher, types.RoleStudent, input.Role)
		}
		created, err := us.userRepo.Create(ctx, tx, &types.User{
			ID:        uuid.New(),
			GoogleSub: input.GoogleSub,
			Name:      input.Name,
			Email:     input.Email,
			Picture:   input.Picture,
			Role:      input.Role,
		})
		if err == nil {
			result = created
			return nil
		}
		if !db.IsUniqueViolation(err) {
			return fmt.Errorf("create user: %w", err)
		}

		// Lost a sign-in race for the same subject: the row exists now,
		// degrade to the update path.
		existing, ferr := us.userRepo.GetByGoogleSub(ctx, tx, input.GoogleSub)
		if ferr != nil {
			return fmt.Errorf("fetch user after duplicate create: %w", ferr)
		}
		if existing == nil {
			return fmt.Errorf("create user: %w", err)
		}
		return us.updateProfile(ctx, tx, existing, input, &result)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (us *userService) updateProfile(ctx context.Context, tx *gorm.DB, existing *types.User, input CreateOrUpdateUserInput, result **types.User) error {
	if err := us.userRepo.UpdateProfile(ctx, tx, existing.ID, input.Name, input.Email, input.Picture); err != nil {
		return fmt.Errorf("update user profile: %w", err)
	}
	existing.Name = input.Name
	existing.Email = input.Email
	existing.Picture = input.Picture
	*result = existing
	return nil
}

func (us *userService) ByGoogleSub(ctx context.Context, googleSub string) (*types.User, error) {
	return us.userRepo.GetByGoogleSub(ctx, nil, googleSub)
}
