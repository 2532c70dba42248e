// Package access holds the per-request session and the role checks applied to it.
package access

import (
	"context"

	apperrors "sedbms/internal/errors"
	"sedbms/internal/model"
)

// Action names something a screen or endpoint does.
type Action string

const (
	ActionView          Action = "view"
	ActionCreateStudent Action = "create_student"
	ActionCreateSubject Action = "create_subject"
	ActionUpsertMark    Action = "upsert_mark"
	ActionDeleteStudent Action = "delete_student"
	ActionSeed          Action = "seed"
)

// roleGated lists actions restricted to specific roles. Anything not listed
// only requires an authenticated session.
var roleGated = map[Action][]model.Role{
	ActionDeleteStudent: {model.RoleAdmin},
	ActionSeed:          {model.RoleAdmin},
}

// Session is the Authenticated state. A nil *Session is Anonymous.
type Session struct {
	Username string     `json:"username"`
	Role     model.Role `json:"role"`
	TokenID  string     `json:"-"`
}

// Authorize returns ErrUnauthenticated for an anonymous session and
// ErrForbidden when the role may not perform action.
func Authorize(action Action, s *Session) error {
	if s == nil || s.Username == "" {
		return apperrors.ErrUnauthenticated
	}
	allowed, gated := roleGated[action]
	if !gated {
		return nil
	}
	for _, r := range allowed {
		if s.Role == r {
			return nil
		}
	}
	return apperrors.ErrForbidden
}

type sessionKey struct{}

// WithSession stores s in ctx.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext returns the session stored in ctx, or nil.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(sessionKey{}).(*Session)
	return s
}
