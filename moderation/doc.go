// Content-moderation core for forum software.
//
// This package (`github.com/fora-social/fora/moderation`) holds the decision
// engine that governs whether a user's topics and posts are immediately
// visible or held for review, gated on the author's trust state (new /
// approved / spam). Moderator verdicts transition content state and cascade
// to author trust state. The engine is a library: routing, rendering, and
// session handling live in the calling web layer, which injects the trust
// store, content store, and moderator-capability backend.
//
// See `cmd/fora-mod` for an operator CLI built on this package.
package moderation
