package loan

import (
	"time"

	"peerlend-gateway/internal/domain/user"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusAccepted   Status = "accepted"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusOverdue    Status = "overdue"
	StatusDefaulted  Status = "defaulted"
	StatusDisputed   Status = "disputed"
	StatusRejected   Status = "rejected"
)

// Statuses lists every lifecycle state the platform reports, in lifecycle order.
var Statuses = []Status{
	StatusPending, StatusAccepted, StatusInProgress, StatusCompleted,
	StatusOverdue, StatusDefaulted, StatusDisputed, StatusRejected,
}

func (s Status) Known() bool {
	for _, k := range Statuses {
		if s == k {
			return true
		}
	}
	return false
}

type PaymentMethod string

const (
	MethodUPI          PaymentMethod = "upi"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodCash         PaymentMethod = "cash"
	MethodCheque       PaymentMethod = "cheque"
	MethodOther        PaymentMethod = "other"
)

// Repayment is one payment the lender has recorded against a loan.
type Repayment struct {
	ID                   string
	Amount               float64
	PaymentDate          time.Time
	PaymentMethod        PaymentMethod
	TransactionReference string
	Remarks              string
	ConfirmedByLender    bool
	IsLate               bool
	DaysLate             int
}

// Record is one borrow/lend agreement as reported by the platform. The
// gateway never fabricates or mutates these; it only reflects what the
// upstream returned and asks the upstream to transition them.
type Record struct {
	ID              string
	Amount          float64
	DurationDays    int
	InterestRate    float64
	TotalRepayable  float64
	AmountRepaid    float64
	DueDate         *time.Time
	Status          Status
	Purpose         string
	Description     string
	Borrower        *user.Profile
	Lender          *user.Profile
	IsContactShared bool
	BorrowerRating  *int
	LenderRating    *int
	Repayments      []Repayment
	CreatedAt       time.Time
}

// Remaining is the outstanding balance, clamped at zero even when the
// upstream reports more repaid than repayable.
func (r *Record) Remaining() float64 {
	rem := r.TotalRepayable - r.AmountRepaid
	if rem < 0 {
		return 0
	}
	return rem
}

// Counterparty returns the other side of the agreement from the viewer's
// perspective: the borrower for a lender, the lender for a borrower.
func (r *Record) Counterparty(viewer user.Role) *user.Profile {
	if viewer == user.RoleLender {
		return r.Borrower
	}
	return r.Lender
}
