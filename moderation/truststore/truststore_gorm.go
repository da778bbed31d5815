package truststore

import (
	"context"
	"errors"
	"fmt"

	"github.com/fora-social/fora/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormTrustStore struct {
	DB *gorm.DB
}

var _ TrustStore = (*GormTrustStore)(nil)

func NewGormTrustStore(db *gorm.DB) *GormTrustStore {
	return &GormTrustStore{DB: db}
}

func (s *GormTrustStore) Get(ctx context.Context, uid uint64) (TrustState, error) {
	var user models.User
	err := s.DB.WithContext(ctx).Where("uid = ?", uid).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return StateNew, nil
	} else if err != nil {
		return "", fmt.Errorf("reading trust state for uid %d: %w", uid, err)
	}
	return ParseTrustState(user.TrustState)
}

func (s *GormTrustStore) Set(ctx context.Context, uid uint64, state TrustState) error {
	if _, err := ParseTrustState(string(state)); err != nil {
		return fmt.Errorf("setting trust state for uid %d: %w", uid, err)
	}
	err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "uid"}},
		DoUpdates: clause.AssignmentColumns([]string{"trust_state", "updated_at"}),
	}).Create(&models.User{
		Uid:        uid,
		TrustState: string(state),
	}).Error
	if err != nil {
		return fmt.Errorf("writing trust state for uid %d: %w", uid, err)
	}
	return nil
}
