package engine

import (
	"log/slog"
	"sync"

	"github.com/fora-social/fora/moderation/contentstore"
	"github.com/fora-social/fora/moderation/modauth"
	"github.com/fora-social/fora/moderation/truststore"

	"github.com/puzpuzpuz/xsync/v3"
)

// Moderation decision core: creation gating by author trust state, the
// visibility filter, queue views over pending content, and the verdict
// processor which mutates content state and cascades to author trust state.
//
// All fields should be non-nil. The engine holds no state of its own beyond
// short-lived per-key locks; everything durable lives in the injected stores.
type Engine struct {
	Logger     *slog.Logger
	Trust      truststore.TrustStore
	Content    contentstore.ContentStore
	Authorizer modauth.Authorizer

	userLks keyedLocks
	itemLks keyedLocks
}

// Viewer identifies who is reading content: an authenticated user or an
// anonymous visitor. Moderator capability is not carried here; it is
// resolved per forum through the Authorizer.
type Viewer struct {
	Uid       uint64
	Anonymous bool
}

func UserViewer(uid uint64) Viewer {
	return Viewer{Uid: uid}
}

func AnonymousViewer() Viewer {
	return Viewer{Anonymous: true}
}

// Per-key mutual exclusion for read-modify-write sequences on users and
// items. There is deliberately no global lock.
type keyedLocks struct {
	init sync.Once
	lks  *xsync.MapOf[uint64, *sync.Mutex]
}

func (kl *keyedLocks) lock(key uint64) func() {
	kl.init.Do(func() {
		kl.lks = xsync.NewMapOf[uint64, *sync.Mutex]()
	})
	lk, _ := kl.lks.LoadOrCompute(key, func() *sync.Mutex {
		return &sync.Mutex{}
	})
	lk.Lock()
	return lk.Unlock
}

func (eng *Engine) logger() *slog.Logger {
	if eng.Logger == nil {
		return slog.Default()
	}
	return eng.Logger
}
