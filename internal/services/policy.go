package services

import (
	apperrors "github.com/bloomlms/bloom-backend/internal/pkg/errors"
	"github.com/bloomlms/bloom-backend/internal/types"
)

// Action names a mutation gated by a role requirement. Authorization is one
// predicate applied before the mutation body instead of ad hoc checks inside
// each mutation.
type Action string

const (
	ActionCreateClass Action = "create class"
	ActionJoinClass   Action = "join class"
)

// requiredRole maps each gated action to the role that may perform it.
// Actions absent from the table are open to any caller; lesson creation has
// no entry because its wire contract carries no caller identity.
var requiredRole = map[Action]string{
	ActionCreateClass: types.RoleTeacher,
	ActionJoinClass:   types.RoleStudent,
}

func authorize(user *types.User, action Action) error {
	role, gated := requiredRole[action]
	if !gated {
		return nil
	}
	if user == nil {
		return apperrors.Unauthorizedf("%s requires an existing %s", action, role)
	}
	if user.Role != role {
		return apperrors.Unauthorizedf("%s requires role %s, caller has role %s", action, role, user.Role)
	}
	return nil
}
