package session

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("session not found")

// Session is the durable client state: the upstream credential and the
// serialized profile live in one record and are always written and deleted
// together, so an authenticated-but-profileless state cannot exist.
type Session struct {
	Token      string    `gorm:"primaryKey;size:32;column:token"`
	Credential string    `gorm:"type:text;column:credential"`
	Profile    []byte    `gorm:"type:blob;column:profile"`
	Demo       bool      `gorm:"column:demo"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (Session) TableName() string { return "client_sessions" }

type Repository interface {
	Save(ctx context.Context, s *Session) error
	Find(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}
