package users

import (
	"context"
)

// NameResolver adapts a users gateway to the actor name lookup embedded
// in delivery history entries.
type NameResolver struct {
	gw gateway
}

// NewNameResolver creates a NameResolver. Returns nil when the gateway is
// not configured.
func NewNameResolver(gw *RetryingGateway) *NameResolver {
	if gw == nil {
		return nil
	}
	return &NameResolver{gw: gw}
}

// ResolveName returns the display name of an actor, empty when the
// account no longer exists.
func (r *NameResolver) ResolveName(ctx context.Context, actorType, actorID string) (string, error) {
	if r == nil {
		return "", nil
	}
	u, err := r.gw.GetUser(ctx, actorType, actorID)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", nil
	}
	return u.Name, nil
}
