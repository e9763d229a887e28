package services

import (
	"context"
	"testing"

	apperrors "github.com/bloomlms/bloom-backend/internal/pkg/errors"
	"github.com/bloomlms/bloom-backend/internal/repos"
	"github.com/bloomlms/bloom-backend/internal/repos/testutil"
	"github.com/bloomlms/bloom-backend/internal/types"
)

func newUserService(t *testing.T) UserService {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	return NewUserService(db, log, repos.NewUserRepo(db, log))
}

func TestCreateOrUpdateUserUpsert(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	first, err := svc.CreateOrUpdate(ctx, CreateOrUpdateUserInput{
		GoogleSub: "sub-upsert",
		Name:      "First Name",
		Email:     "first@example.com",
		Role:      types.RoleTeacher,
	})
	if err != nil {
		t.Fatalf("CreateOrUpdate (create): %v", err)
	}

	second, err := svc.CreateOrUpdate(ctx, CreateOrUpdateUserInput{
		GoogleSub: "sub-upsert",
		Name:      "Second Name",
		Email:     "second@example.com",
		Role:      types.RoleStudent, // must be ignored on update
		Picture:   "pic.png",
	})
	if err != nil {
		t.Fatalf("CreateOrUpdate (update): %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("expected same user row, got ids %s and %s", first.ID, second.ID)
	}
	if second.Role != types.RoleTeacher {
		t.Fatalf("role changed on update: got %q", second.Role)
	}
	if second.Name != "Second Name" || second.Email != "second@example.com" || second.Picture != "pic.png" {
		t.Fatalf("profile not updated: %+v", second)
	}

	got, err := svc.ByGoogleSub(ctx, "sub-upsert")
	if err != nil {
		t.Fatalf("ByGoogleSub: %v", err)
	}
	if got == nil || got.Name != "Second Name" {
		t.Fatalf("ByGoogleSub: unexpected result: %+v", got)
	}
}

func TestCreateOrUpdateUserRejectsUnknownRole(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.CreateOrUpdate(context.Background(), CreateOrUpdateUserInput{
		GoogleSub: "sub-badrole",
		Name:      "X",
		Email:     "x@example.com",
		Role:      "admin",
	})
	if !apperrors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument error, got %v", err)
	}
}

func TestByGoogleSubMissingIsNil(t *testing.T) {
	svc := newUserService(t)

	got, err := svc.ByGoogleSub(context.Background(), "sub-nobody")
	if err != nil {
		t.Fatalf("ByGoogleSub: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for unknown subject, got %+v", got)
	}
}
