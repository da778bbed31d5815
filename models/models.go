package models

import (
	"gorm.io/gorm"
)

// User carries the per-account trust state. Rows are written lazily: an
// account with no row is in the "new" state.
type User struct {
	gorm.Model
	Uid        uint64 `gorm:"uniqueindex"`
	Handle     string
	TrustState string `gorm:"default:new"`
}

type Forum struct {
	gorm.Model
	Name string
}

// Group is a named collection of users; a forum lists groups as its
// moderator teams.
type Group struct {
	gorm.Model
	Name string
}

type GroupMember struct {
	ID      uint   `gorm:"primarykey"`
	GroupID uint   `gorm:"index:idx_group_member,unique"`
	Uid     uint64 `gorm:"index:idx_group_member,unique"`
}

type ForumModerator struct {
	ID      uint `gorm:"primarykey"`
	ForumID uint `gorm:"index:idx_forum_moderator,unique"`
	GroupID uint `gorm:"index:idx_forum_moderator,unique"`
}

// Content is the uniform topic/post row. Posts reference their topic and
// carry the forum id denormalized so forum-wide moderation queries stay
// single-table. CreatedAt (from gorm.Model) is the queue ordering key.
type Content struct {
	gorm.Model
	Kind     string `gorm:"index"`
	ForumID  uint64 `gorm:"index"`
	TopicID  uint64 `gorm:"index"`
	AuthorID uint64 `gorm:"index"`
	State    string `gorm:"index"`
	Subject  string
	Body     string
}
