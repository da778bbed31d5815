package engine

import (
	"log/slog"

	"github.com/fora-social/fora/moderation/contentstore"
	"github.com/fora-social/fora/moderation/modauth"
	"github.com/fora-social/fora/moderation/truststore"
)

// Fixture uids shared by tests in this and other packages.
const (
	TestForumID      = uint64(1)
	TestOtherForumID = uint64(2)
	TestModeratorUid = uint64(500)
	TestModGroupID   = uint64(10)
)

// EngineTestFixture returns an engine over in-memory stores, with one
// moderator (TestModeratorUid) covering TestForumID only.
func EngineTestFixture() Engine {
	auth := modauth.NewMemAuthorizer()
	auth.AddMember(TestModGroupID, TestModeratorUid)
	auth.AddForumModerators(TestForumID, TestModGroupID)
	return Engine{
		Logger:     slog.Default(),
		Trust:      truststore.NewMemTrustStore(),
		Content:    contentstore.NewMemContentStore(),
		Authorizer: auth,
	}
}
