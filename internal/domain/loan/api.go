package loan

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound         = errors.New("loan not found")
	ErrActionNotAllowed = errors.New("action not allowed for this loan")
)

type CreateRequestInput struct {
	Amount       float64 `json:"amount"`
	DurationDays int     `json:"duration"`
	Purpose      string  `json:"purpose"`
	Description  string  `json:"description"`
}

type RepaymentInput struct {
	Amount               float64       `json:"amount"`
	PaymentMethod        PaymentMethod `json:"paymentMethod"`
	TransactionReference string        `json:"transactionReference,omitempty"`
	Remarks              string        `json:"remarks,omitempty"`
	// nil means the upstream dates the payment itself
	PaymentDate *time.Time `json:"paymentDate,omitempty"`
}

type RatingInput struct {
	Rating int    `json:"rating"`
	Review string `json:"review,omitempty"`
}

// API is the loans surface of the platform collaborator. Every call carries
// the viewer's upstream credential; the upstream enforces the actual
// transition rules and is the sole source of truth for loan state.
type API interface {
	MyBorrowings(ctx context.Context, credential string) ([]Record, error)
	CreateRequest(ctx context.Context, credential string, in CreateRequestInput) (*Record, error)
	Details(ctx context.Context, credential, loanID string) (*Record, error)
	AcceptRequest(ctx context.Context, credential, loanID string) (*Record, error)
	MarkFulfilled(ctx context.Context, credential, loanID string) (*Record, error)
	RecordRepayment(ctx context.Context, credential, loanID string, in RepaymentInput) (*Record, error)
	RateUser(ctx context.Context, credential, loanID string, in RatingInput) (*Record, error)
}
