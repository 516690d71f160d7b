// Package identity describes who a request is evaluated for.
package identity

import "context"

// Viewer is the identity a read or a mutation is evaluated on behalf of. The zero value
// is the anonymous viewer.
type Viewer struct {
	UserID   int
	Username string
}

// Anonymous is distinguishable from every real user: real user ids start at 1.
var Anonymous = Viewer{}

func (v Viewer) IsAnonymous() bool {
	return v.UserID <= 0
}

// SameIdentity reports whether two viewers are the same authenticated user. Two
// anonymous viewers are never the same identity.
func SameIdentity(a, b Viewer) bool {
	return !a.IsAnonymous() && !b.IsAnonymous() && a.UserID == b.UserID
}

// Is reports whether v is the user with the given id, e.g. an entity's author.
func (v Viewer) Is(userID int) bool {
	return SameIdentity(v, Viewer{UserID: userID})
}

type viewerKey struct{}

func NewContext(ctx context.Context, v Viewer) context.Context {
	return context.WithValue(ctx, viewerKey{}, v)
}

// FromContext returns the viewer stored in ctx, or Anonymous.
func FromContext(ctx context.Context) Viewer {
	if v, ok := ctx.Value(viewerKey{}).(Viewer); ok {
		return v
	}

	return Anonymous
}
