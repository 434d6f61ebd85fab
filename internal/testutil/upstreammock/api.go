// Package upstreammock provides function-field fakes of the collaborator
// ports. Unset functions fail loudly so tests only stub what they use.
package upstreammock

import (
	"context"
	"errors"

	"peerlend-gateway/internal/domain/loan"
	"peerlend-gateway/internal/domain/notification"
	"peerlend-gateway/internal/domain/settings"
	"peerlend-gateway/internal/domain/user"
)

var errNotStubbed = errors.New("upstreammock: call not stubbed")

type Auth struct {
	GetProfileFn func(ctx context.Context, credential string) (*user.Profile, error)
	LoginFn      func(ctx context.Context, email, password string) (*user.Profile, string, error)
	RegisterFn   func(ctx context.Context, in user.RegisterInput) (*user.Profile, string, error)

	// Calls counts every invocation, for the no-network assertions.
	Calls int
}

func (m *Auth) GetProfile(ctx context.Context, credential string) (*user.Profile, error) {
	m.Calls++
	if m.GetProfileFn != nil {
		return m.GetProfileFn(ctx, credential)
	}
	return nil, errNotStubbed
}

func (m *Auth) Login(ctx context.Context, email, password string) (*user.Profile, string, error) {
	m.Calls++
	if m.LoginFn != nil {
		return m.LoginFn(ctx, email, password)
	}
	return nil, "", errNotStubbed
}

func (m *Auth) Register(ctx context.Context, in user.RegisterInput) (*user.Profile, string, error) {
	m.Calls++
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, in)
	}
	return nil, "", errNotStubbed
}

type Loans struct {
	MyBorrowingsFn    func(ctx context.Context, credential string) ([]loan.Record, error)
	CreateRequestFn   func(ctx context.Context, credential string, in loan.CreateRequestInput) (*loan.Record, error)
	DetailsFn         func(ctx context.Context, credential, loanID string) (*loan.Record, error)
	AcceptRequestFn   func(ctx context.Context, credential, loanID string) (*loan.Record, error)
	MarkFulfilledFn   func(ctx context.Context, credential, loanID string) (*loan.Record, error)
	RecordRepaymentFn func(ctx context.Context, credential, loanID string, in loan.RepaymentInput) (*loan.Record, error)
	RateUserFn        func(ctx context.Context, credential, loanID string, in loan.RatingInput) (*loan.Record, error)
}

func (m *Loans) MyBorrowings(ctx context.Context, credential string) ([]loan.Record, error) {
	if m.MyBorrowingsFn != nil {
		return m.MyBorrowingsFn(ctx, credential)
	}
	return nil, errNotStubbed
}

func (m *Loans) CreateRequest(ctx context.Context, credential string, in loan.CreateRequestInput) (*loan.Record, error) {
	if m.CreateRequestFn != nil {
		return m.CreateRequestFn(ctx, credential, in)
	}
	return nil, errNotStubbed
}

func (m *Loans) Details(ctx context.Context, credential, loanID string) (*loan.Record, error) {
	if m.DetailsFn != nil {
		return m.DetailsFn(ctx, credential, loanID)
	}
	return nil, errNotStubbed
}

func (m *Loans) AcceptRequest(ctx context.Context, credential, loanID string) (*loan.Record, error) {
	if m.AcceptRequestFn != nil {
		return m.AcceptRequestFn(ctx, credential, loanID)
	}
	return nil, errNotStubbed
}

func (m *Loans) MarkFulfilled(ctx context.Context, credential, loanID string) (*loan.Record, error) {
	if m.MarkFulfilledFn != nil {
		return m.MarkFulfilledFn(ctx, credential, loanID)
	}
	return nil, errNotStubbed
}

func (m *Loans) RecordRepayment(ctx context.Context, credential, loanID string, in loan.RepaymentInput) (*loan.Record, error) {
	if m.RecordRepaymentFn != nil {
		return m.RecordRepaymentFn(ctx, credential, loanID, in)
	}
	return nil, errNotStubbed
}

func (m *Loans) RateUser(ctx context.Context, credential, loanID string, in loan.RatingInput) (*loan.Record, error) {
	if m.RateUserFn != nil {
		return m.RateUserFn(ctx, credential, loanID, in)
	}
	return nil, errNotStubbed
}

type Notifications struct {
	AllFn func(ctx context.Context, credential string) ([]notification.Notification, error)
}

func (m *Notifications) All(ctx context.Context, credential string) ([]notification.Notification, error) {
	if m.AllFn != nil {
		return m.AllFn(ctx, credential)
	}
	return nil, errNotStubbed
}

type Admin struct {
	GetFn    func(ctx context.Context, credential string, into *settings.Settings) error
	UpdateFn func(ctx context.Context, credential string, s settings.Settings) (*settings.Settings, error)
}

func (m *Admin) Get(ctx context.Context, credential string, into *settings.Settings) error {
	if m.GetFn != nil {
		return m.GetFn(ctx, credential, into)
	}
	return errNotStubbed
}

func (m *Admin) Update(ctx context.Context, credential string, s settings.Settings) (*settings.Settings, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, credential, s)
	}
	return nil, errNotStubbed
}
