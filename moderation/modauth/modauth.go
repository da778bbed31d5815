package modauth

import (
	"context"
)

// Authorizer answers "may this user moderate this forum". Moderation
// capability is scoped per forum, never global; the concrete backend
// (group membership, static config, ...) is an injected dependency.
type Authorizer interface {
	Authorized(ctx context.Context, uid uint64, forumID uint64) (bool, error)
}
