package session

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	domain "peerlend-gateway/internal/domain/session"
	"peerlend-gateway/internal/domain/user"
	"peerlend-gateway/pkg/id"
)

var ErrDemoDisabled = errors.New("demo login is disabled")

// State is what a resolved session exposes to the rest of the gateway: the
// session token, the cached profile and the upstream credential for
// forwarding calls.
type State struct {
	Token      string
	Credential string
	User       *user.Profile
	Demo       bool
}

type Usecase struct {
	repo        domain.Repository
	auth        user.AuthAPI
	lg          *zap.Logger
	demoEnabled bool
}

func NewUsecase(repo domain.Repository, auth user.AuthAPI, lg *zap.Logger, demoEnabled bool) *Usecase {
	return &Usecase{repo: repo, auth: auth, lg: lg, demoEnabled: demoEnabled}
}

func (u *Usecase) persist(ctx context.Context, credential string, p *user.Profile, demo bool) (*State, error) {
	blob, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	s := &domain.Session{
		Token:      id.NewID32(),
		Credential: credential,
		Profile:    blob,
		Demo:       demo,
	}
	if err := u.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	return &State{Token: s.Token, Credential: credential, User: p, Demo: demo}, nil
}

// Login exchanges credentials with the platform. Upstream failures propagate
// untouched; nothing is persisted on failure.
func (u *Usecase) Login(ctx context.Context, email, password string) (*State, error) {
	p, credential, err := u.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return u.persist(ctx, credential, p, false)
}

func (u *Usecase) Register(ctx context.Context, in user.RegisterInput) (*State, error) {
	p, credential, err := u.auth.Register(ctx, in)
	if err != nil {
		return nil, err
	}
	return u.persist(ctx, credential, p, false)
}

func (u *Usecase) load(ctx context.Context, token string) (*domain.Session, *user.Profile, error) {
	s, err := u.repo.Find(ctx, token)
	if err != nil {
		return nil, nil, user.ErrUnauthenticated
	}
	var p user.Profile
	if err := json.Unmarshal(s.Profile, &p); err != nil {
		// a corrupt row is as good as no row: clear it
		_ = u.repo.Delete(ctx, token)
		return nil, nil, user.ErrUnauthenticated
	}
	return s, &p, nil
}

// Resolve returns the persisted state without touching the network. Request
// middleware uses this on every call.
func (u *Usecase) Resolve(ctx context.Context, token string) (*State, error) {
	s, p, err := u.load(ctx, token)
	if err != nil {
		return nil, err
	}
	return &State{Token: s.Token, Credential: s.Credential, User: p, Demo: s.Demo}, nil
}

// Restore re-validates a persisted session against the platform: the profile
// is re-fetched with the stored credential, and any failure clears credential
// and profile together. Demo sessions skip the network entirely. The outcome
// is always definite: an authenticated State or ErrUnauthenticated.
func (u *Usecase) Restore(ctx context.Context, token string) (*State, error) {
	s, cached, err := u.load(ctx, token)
	if err != nil {
		return nil, err
	}
	if s.Demo {
		return &State{Token: s.Token, Credential: s.Credential, User: cached, Demo: true}, nil
	}

	p, err := u.auth.GetProfile(ctx, s.Credential)
	if err != nil {
		_ = u.repo.Delete(ctx, token)
		return nil, user.ErrUnauthenticated
	}
	if blob, merr := json.Marshal(p); merr == nil {
		s.Profile = blob
		if serr := u.repo.Save(ctx, s); serr != nil {
			u.lg.Warn("failed to persist restored profile", zap.Error(serr))
		}
	}
	return &State{Token: s.Token, Credential: s.Credential, User: p}, nil
}

// Logout clears the persisted credential and profile. It has no failure mode
// from the caller's point of view.
func (u *Usecase) Logout(ctx context.Context, token string) {
	if err := u.repo.Delete(ctx, token); err != nil {
		u.lg.Warn("failed to delete session on logout", zap.Error(err))
	}
}

// UpdateUser overwrites the cached profile locally, no network involved.
func (u *Usecase) UpdateUser(ctx context.Context, token string, p *user.Profile) error {
	s, _, err := u.load(ctx, token)
	if err != nil {
		return err
	}
	blob, err := json.Marshal(p)
	if err != nil {
		return err
	}
	s.Profile = blob
	return u.repo.Save(ctx, s)
}

// RefreshUser re-fetches the profile best-effort: a failed fetch is logged
// and the cached profile returned unchanged.
func (u *Usecase) RefreshUser(ctx context.Context, token string) (*user.Profile, error) {
	s, cached, err := u.load(ctx, token)
	if err != nil {
		return nil, err
	}
	if s.Demo {
		return cached, nil
	}
	p, err := u.auth.GetProfile(ctx, s.Credential)
	if err != nil {
		u.lg.Warn("profile refresh failed", zap.Error(err))
		return cached, nil
	}
	if blob, merr := json.Marshal(p); merr == nil {
		s.Profile = blob
		if serr := u.repo.Save(ctx, s); serr != nil {
			u.lg.Warn("failed to persist refreshed profile", zap.Error(serr))
		}
	}
	return p, nil
}
