package contentstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/fora-social/fora/models"

	"gorm.io/gorm"
)

type GormContentStore struct {
	DB *gorm.DB
}

var _ ContentStore = (*GormContentStore)(nil)

func NewGormContentStore(db *gorm.DB) *GormContentStore {
	return &GormContentStore{DB: db}
}

func rowToContent(row *models.Content) (*Content, error) {
	state, err := ParseState(row.State)
	if err != nil {
		return nil, fmt.Errorf("content row %d: %w", row.ID, err)
	}
	return &Content{
		ID:        uint64(row.ID),
		Kind:      Kind(row.Kind),
		ForumID:   row.ForumID,
		TopicID:   row.TopicID,
		AuthorID:  row.AuthorID,
		State:     state,
		CreatedAt: row.CreatedAt,
		Subject:   row.Subject,
		Body:      row.Body,
	}, nil
}

func (s *GormContentStore) Create(ctx context.Context, item *Content) error {
	if _, err := ParseState(string(item.State)); err != nil {
		return err
	}
	row := models.Content{
		Kind:     string(item.Kind),
		ForumID:  item.ForumID,
		TopicID:  item.TopicID,
		AuthorID: item.AuthorID,
		State:    string(item.State),
		Subject:  item.Subject,
		Body:     item.Body,
	}
	if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("creating content item: %w", err)
	}
	item.ID = uint64(row.ID)
	item.CreatedAt = row.CreatedAt
	return nil
}

func (s *GormContentStore) Get(ctx context.Context, id uint64) (*Content, error) {
	var row models.Content
	err := s.DB.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrContentNotFound
	} else if err != nil {
		return nil, fmt.Errorf("reading content item %d: %w", id, err)
	}
	return rowToContent(&row)
}

func (s *GormContentStore) SetState(ctx context.Context, id uint64, state State) error {
	if _, err := ParseState(string(state)); err != nil {
		return err
	}
	res := s.DB.WithContext(ctx).Model(&models.Content{}).Where("id = ?", id).Update("state", string(state))
	if res.Error != nil {
		return fmt.Errorf("setting state on item %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("setting state on item %d: %w", id, ErrContentNotFound)
	}
	return nil
}

func (s *GormContentStore) listRows(ctx context.Context, query *gorm.DB) ([]*Content, error) {
	var rows []models.Content
	if err := query.Order("created_at asc, id asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing content: %w", err)
	}
	out := make([]*Content, 0, len(rows))
	for i := range rows {
		item, err := rowToContent(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *GormContentStore) ListForum(ctx context.Context, forumID uint64) ([]*Content, error) {
	return s.listRows(ctx, s.DB.WithContext(ctx).Where("kind = ? AND forum_id = ?", string(KindTopic), forumID))
}

func (s *GormContentStore) ListTopic(ctx context.Context, topicID uint64) ([]*Content, error) {
	return s.listRows(ctx, s.DB.WithContext(ctx).Where("kind = ? AND topic_id = ?", string(KindPost), topicID))
}

func (s *GormContentStore) ListPendingForum(ctx context.Context, forumID uint64) ([]*Content, error) {
	return s.listRows(ctx, s.DB.WithContext(ctx).Where("forum_id = ? AND state = ?", forumID, string(StatePending)))
}

func (s *GormContentStore) ListPendingTopic(ctx context.Context, topicID uint64) ([]*Content, error) {
	return s.listRows(ctx, s.DB.WithContext(ctx).Where("kind = ? AND topic_id = ? AND state = ?", string(KindPost), topicID, string(StatePending)))
}
