package truststore

import (
	"context"
	"errors"
	"fmt"
)

// Per-user reputation flag. Every user starts as "new"; a moderator verdict
// on any of their content promotes them to "approved" or demotes them to
// "spam". The value is sticky: nothing reverts it automatically.
type TrustState string

const (
	StateNew      = TrustState("new")
	StateApproved = TrustState("approved")
	StateSpam     = TrustState("spam")
)

// Indicates a trust state value outside the enumerated set. This is a data
// or programming error (eg, store corruption), not a user-facing condition.
var ErrInvalidTrustState = errors.New("invalid trust state")

func ParseTrustState(raw string) (TrustState, error) {
	switch TrustState(raw) {
	case StateNew, StateApproved, StateSpam:
		return TrustState(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTrustState, raw)
	}
}

// TrustStore holds the trust state for each user.
//
// Get on a user with no stored state returns StateNew; users are born "new"
// and only ever get a row written when a verdict cascades to them. Set
// overwrites unconditionally and validates nothing beyond the enum.
type TrustStore interface {
	Get(ctx context.Context, uid uint64) (TrustState, error)
	Set(ctx context.Context, uid uint64, state TrustState) error
}
