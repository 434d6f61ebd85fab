package user

import (
	"context"
	"errors"
)

var ErrUnauthenticated = errors.New("unauthenticated")

type RegisterInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      Role   `json:"role"`
	Phone     string `json:"phone,omitempty"`
}

// AuthAPI is the authentication surface of the platform collaborator.
// Login and Register return the upstream credential alongside the profile.
type AuthAPI interface {
	GetProfile(ctx context.Context, credential string) (*Profile, error)
	Login(ctx context.Context, email, password string) (*Profile, string, error)
	Register(ctx context.Context, in RegisterInput) (*Profile, string, error)
}
