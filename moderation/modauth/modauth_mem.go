package modauth

import (
	"context"
	"sync"
)

// MemAuthorizer models the group-membership scheme in memory: users belong
// to groups, forums list groups as moderator teams.
type MemAuthorizer struct {
	lk          sync.RWMutex
	groupsByUid map[uint64]map[uint64]bool
	forumGroups map[uint64]map[uint64]bool
}

var _ Authorizer = (*MemAuthorizer)(nil)

func NewMemAuthorizer() *MemAuthorizer {
	return &MemAuthorizer{
		groupsByUid: make(map[uint64]map[uint64]bool),
		forumGroups: make(map[uint64]map[uint64]bool),
	}
}

func (a *MemAuthorizer) AddMember(groupID, uid uint64) {
	a.lk.Lock()
	defer a.lk.Unlock()
	if a.groupsByUid[uid] == nil {
		a.groupsByUid[uid] = make(map[uint64]bool)
	}
	a.groupsByUid[uid][groupID] = true
}

func (a *MemAuthorizer) AddForumModerators(forumID, groupID uint64) {
	a.lk.Lock()
	defer a.lk.Unlock()
	if a.forumGroups[forumID] == nil {
		a.forumGroups[forumID] = make(map[uint64]bool)
	}
	a.forumGroups[forumID][groupID] = true
}

func (a *MemAuthorizer) Authorized(ctx context.Context, uid uint64, forumID uint64) (bool, error) {
	a.lk.RLock()
	defer a.lk.RUnlock()
	for groupID := range a.groupsByUid[uid] {
		if a.forumGroups[forumID][groupID] {
			return true, nil
		}
	}
	return false, nil
}
