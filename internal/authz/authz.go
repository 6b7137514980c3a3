package authz

import (
	"context"
	"errors"

	"github.com/teamtrack/teamtrack/internal/domain/user"
)

// Keep this small interface so tests can fake it easily.
type UserGetter interface {
	GetByID(ctx context.Context, id string) (user.User, error)
}

type Authorizer struct {
	users UserGetter
}

func New(users UserGetter) *Authorizer {
	return &Authorizer{users: users}
}

// IsTechLead reports whether userID belongs to a TECH_LEAD. An empty or
// unknown id is simply not a lead, not an error; only store failures
// propagate. Every call re-queries the store.
func (a *Authorizer) IsTechLead(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}

	u, err := a.users.GetByID(ctx, userID)

	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return false, nil
		}

		return false, err
	}

	return u.Role == user.RoleTechLead, nil
}
