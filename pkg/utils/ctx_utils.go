package utils

import (
	"context"

	apperrors "hr-system/pkg/errors"
	"hr-system/pkg/contextkeys"
)

// Actor su podaci o prijavljenom korisniku izvučeni iz JWT tokena.
type Actor struct {
	UserID      int
	UserName    string
	Role        string
	ZaposleniID *int
}

func ActorFromContext(ctx context.Context) (*Actor, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(int)
	if !ok || userID == 0 {
		return nil, apperrors.ErrUserIDNotFoundInContext
	}

	actor := &Actor{UserID: userID}
	if name, ok := ctx.Value(contextkeys.UserNameKey).(string); ok {
		actor.UserName = name
	}
	if role, ok := ctx.Value(contextkeys.UserRoleKey).(string); ok {
		actor.Role = role
	}
	if zid, ok := ctx.Value(contextkeys.ZaposleniIDKey).(int); ok && zid != 0 {
		actor.ZaposleniID = &zid
	}

	return actor, nil
}
