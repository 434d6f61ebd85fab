package notification

import (
	"context"
	"time"
)

type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message,omitempty"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// API is the notifications surface of the platform collaborator.
type API interface {
	All(ctx context.Context, credential string) ([]Notification, error)
}
