package session

import (
	"context"
	"fmt"

	"peerlend-gateway/internal/domain/user"
)

// DemoCredential is the sentinel stored instead of a real upstream token for
// demo sessions; it must never reach the collaborator.
const DemoCredential = "demo-token"

func demoProfile(role user.Role) *user.Profile {
	names := map[user.Role]string{
		user.RoleAdmin:    "Admin",
		user.RoleLender:   "Lender",
		user.RoleBorrower: "Borrower",
	}
	return &user.Profile{
		ID:                   "demo-" + string(role),
		Email:                string(role) + "@demo.com",
		FirstName:            names[role],
		LastName:             "User",
		Role:                 role,
		IsOnboardingComplete: true,
	}
}

// LoginDemo synthesizes a canned session for the given role without any
// network call. Only for demonstration flows, never production auth.
func (u *Usecase) LoginDemo(ctx context.Context, role user.Role) (*State, error) {
	if !u.demoEnabled {
		return nil, ErrDemoDisabled
	}
	if !role.Valid() {
		return nil, fmt.Errorf("unknown demo role %q", role)
	}
	return u.persist(ctx, DemoCredential, demoProfile(role), true)
}
