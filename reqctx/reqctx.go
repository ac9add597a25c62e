// Package reqctx carries the authenticated actor through context.Context.
// The auth middleware resolves the actor once per request; services read it
// fresh on every permission check and audit write, so there is no cached or
// global role state.
package reqctx

import (
	"context"

	"dentalpro-backend/models"
)

type ctxKey int

const keyActor ctxKey = iota

// Actor is the staff member performing the current operation.
type Actor struct {
	UserID string
	Name   string
	Role   models.UserRole
}

// WithActor stores the actor in the context.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, keyActor, actor)
}

// ActorFrom retrieves the actor from the context.
func ActorFrom(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(keyActor).(Actor)
	return actor, ok
}

// UserName returns the actor's display name, or "system" for contexts
// without an authenticated actor (schedulers, migrations).
func UserName(ctx context.Context) string {
	if actor, ok := ActorFrom(ctx); ok && actor.Name != "" {
		return actor.Name
	}
	return "system"
}

// Role returns the actor's role. An empty role matches no permission set.
func Role(ctx context.Context) models.UserRole {
	actor, _ := ActorFrom(ctx)
	return actor.Role
}
