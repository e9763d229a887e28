package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/bloomlms/bloom-backend/internal/repos/testutil"
	"github.com/bloomlms/bloom-backend/internal/types"
)

func TestUserRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewUserRepo(db, testutil.Logger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, tx, &types.User{
		ID:        uuid.New(),
		GoogleSub: "sub-userrepo",
		Name:      "Ada",
		Email:     "ada@example.com",
		Role:      types.RoleTeacher,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	gotByID, err := repo.GetByID(ctx, tx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if gotByID == nil || gotByID.ID != created.ID {
		t.Fatalf("GetByID: unexpected result: %+v", gotByID)
	}

	gotBySub, err := repo.GetByGoogleSub(ctx, tx, "sub-userrepo")
	if err != nil {
		t.Fatalf("GetByGoogleSub: %v", err)
	}
	if gotBySub == nil || gotBySub.Email != "ada@example.com" {
		t.Fatalf("GetByGoogleSub: unexpected result: %+v", gotBySub)
	}

	missing, err := repo.GetByGoogleSub(ctx, tx, "sub-missing")
	if err != nil {
		t.Fatalf("GetByGoogleSub (missing): %v", err)
	}
	if missing != nil {
		t.Fatalf("GetByGoogleSub (missing): expected nil, got %+v", missing)
	}

	if err := repo.UpdateProfile(ctx, tx, created.ID, "Ada L", "ada.l@example.com", "pic"); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	updated, err := repo.GetByID(ctx, tx, created.ID)
	if err != nil {
		t.Fatalf("GetByID after update: %v", err)
	}
	if updated.Name != "Ada L" || updated.Email != "ada.l@example.com" || updated.Picture != "pic" {
		t.Fatalf("UpdateProfile: fields not applied: %+v", updated)
	}
	if updated.Role != types.RoleTeacher {
		t.Fatalf("UpdateProfile: role must not change, got %q", updated.Role)
	}
}
