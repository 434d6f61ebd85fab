package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "peerlend-gateway/internal/domain/session"
)

type SessionRepository struct{ db *gorm.DB }

func NewSessionRepository(db *gorm.DB) (*SessionRepository, error) {
	if err := db.AutoMigrate(&domain.Session{}); err != nil {
		return nil, err
	}
	return &SessionRepository{db: db}, nil
}

func (r *SessionRepository) Save(ctx context.Context, s *domain.Session) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *SessionRepository) Find(ctx context.Context, token string) (*domain.Session, error) {
	var out domain.Session
	res := r.db.WithContext(ctx).Where("token = ?", token).First(&out)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, res.Error
	}
	return &out, nil
}

func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Where("token = ?", token).Delete(&domain.Session{}).Error
}
