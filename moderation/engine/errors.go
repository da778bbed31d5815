package engine

import (
	"errors"
)

// A spam-flagged account attempted to create content. User-visible and
// non-retryable; nothing is persisted.
var ErrCreationForbidden = errors.New("account flagged for spam, creation forbidden")

// The acting user lacks moderator capability for the relevant forum.
var ErrUnauthorized = errors.New("not a moderator for this forum")

// Returned both for truly absent items and for items the viewer may not
// see. The two cases are deliberately indistinguishable so unapproved
// content can't leak its existence.
var ErrNotFound = errors.New("content not found")

var ErrInvalidVerdict = errors.New("invalid verdict")
