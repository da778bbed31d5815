package modauth

import (
	"context"
	"fmt"

	"github.com/fora-social/fora/models"

	"gorm.io/gorm"
)

// GormAuthorizer resolves moderator capability through the group_members /
// forum_moderators join.
type GormAuthorizer struct {
	DB *gorm.DB
}

var _ Authorizer = (*GormAuthorizer)(nil)

func NewGormAuthorizer(db *gorm.DB) *GormAuthorizer {
	return &GormAuthorizer{DB: db}
}

func (a *GormAuthorizer) Authorized(ctx context.Context, uid uint64, forumID uint64) (bool, error) {
	var count int64
	err := a.DB.WithContext(ctx).
		Model(&models.GroupMember{}).
		Joins("JOIN forum_moderators ON forum_moderators.group_id = group_members.group_id").
		Where("group_members.uid = ? AND forum_moderators.forum_id = ?", uid, forumID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("checking moderator capability for uid %d on forum %d: %w", uid, forumID, err)
	}
	return count > 0, nil
}
