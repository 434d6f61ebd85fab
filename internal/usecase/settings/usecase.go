// Package settings drives the admin platform-settings screen: fetch merged
// over defaults, save, reset to defaults.
package settings

import (
	"context"

	domain "peerlend-gateway/internal/domain/settings"
)

type Usecase struct{ api domain.API }

func NewUsecase(api domain.API) *Usecase { return &Usecase{api: api} }

// Get returns the platform document merged over defaults: fields the
// upstream omits keep their default values.
func (u *Usecase) Get(ctx context.Context, credential string) (*domain.Settings, error) {
	s := domain.Defaults()
	if err := u.api.Get(ctx, credential, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Update saves the document and then re-fetches it, so the caller always
// sees what the platform actually stored.
func (u *Usecase) Update(ctx context.Context, credential string, s domain.Settings) (*domain.Settings, error) {
	if _, err := u.api.Update(ctx, credential, s); err != nil {
		return nil, err
	}
	return u.Get(ctx, credential)
}

// Reset returns pristine defaults without touching the network; saving them
// is a separate, explicit Update.
func (u *Usecase) Reset() domain.Settings { return domain.Defaults() }
