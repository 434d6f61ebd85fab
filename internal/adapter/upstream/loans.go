package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"peerlend-gateway/internal/domain/loan"
	"peerlend-gateway/internal/domain/user"
)

// wireLoan mirrors the collaborator's loan JSON. Amount-like fields go
// through flexAmount; everything else decodes strictly.
type wireLoan struct {
	ID              string          `json:"id"`
	Amount          flexAmount      `json:"amount"`
	Duration        int             `json:"duration"`
	InterestRate    float64         `json:"interestRate"`
	TotalRepayable  flexAmount      `json:"totalRepayable"`
	AmountRepaid    flexAmount      `json:"amountRepaid"`
	DueDate         *time.Time      `json:"dueDate"`
	Status          string          `json:"status"`
	Purpose         string          `json:"purpose"`
	Description     string          `json:"description"`
	Borrower        *user.Profile   `json:"borrower"`
	Lender          *user.Profile   `json:"lender"`
	IsContactShared bool            `json:"isContactShared"`
	BorrowerRating  *int            `json:"borrowerRating"`
	LenderRating    *int            `json:"lenderRating"`
	Repayments      []wireRepayment `json:"Repayments"`
	CreatedAt       time.Time       `json:"createdAt"`
}

type wireRepayment struct {
	ID                   string     `json:"id"`
	Amount               flexAmount `json:"amount"`
	PaymentDate          time.Time  `json:"paymentDate"`
	PaymentMethod        string     `json:"paymentMethod"`
	TransactionReference string     `json:"transactionReference"`
	Remarks              string     `json:"remarks"`
	ConfirmedByLender    bool       `json:"confirmedByLender"`
	IsLate               bool       `json:"isLate"`
	DaysLate             int        `json:"daysLate"`
}

func (c *Client) amount(f flexAmount, loanID, field string) float64 {
	if f.Bad && c.lg != nil {
		c.lg.Warn("non-numeric amount from upstream",
			zap.String("loan_id", loanID),
			zap.String("field", field),
			zap.String("raw", f.Raw))
	}
	return f.Value
}

func (c *Client) toRecord(w wireLoan) loan.Record {
	st := loan.Status(w.Status)
	if !st.Known() && c.lg != nil {
		c.lg.Warn("unknown loan status from upstream",
			zap.String("loan_id", w.ID),
			zap.String("status", w.Status))
	}
	rec := loan.Record{
		ID:              w.ID,
		Amount:          c.amount(w.Amount, w.ID, "amount"),
		DurationDays:    w.Duration,
		InterestRate:    w.InterestRate,
		TotalRepayable:  c.amount(w.TotalRepayable, w.ID, "totalRepayable"),
		AmountRepaid:    c.amount(w.AmountRepaid, w.ID, "amountRepaid"),
		DueDate:         w.DueDate,
		Status:          st,
		Purpose:         w.Purpose,
		Description:     w.Description,
		Borrower:        w.Borrower,
		Lender:          w.Lender,
		IsContactShared: w.IsContactShared,
		BorrowerRating:  w.BorrowerRating,
		LenderRating:    w.LenderRating,
		CreatedAt:       w.CreatedAt,
	}
	rec.Repayments = make([]loan.Repayment, 0, len(w.Repayments))
	for _, r := range w.Repayments {
		rec.Repayments = append(rec.Repayments, loan.Repayment{
			ID:                   r.ID,
			Amount:               c.amount(r.Amount, w.ID, "repayment.amount"),
			PaymentDate:          r.PaymentDate,
			PaymentMethod:        loan.PaymentMethod(r.PaymentMethod),
			TransactionReference: r.TransactionReference,
			Remarks:              r.Remarks,
			ConfirmedByLender:    r.ConfirmedByLender,
			IsLate:               r.IsLate,
			DaysLate:             r.DaysLate,
		})
	}
	return rec
}

func (c *Client) MyBorrowings(ctx context.Context, credential string) ([]loan.Record, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/loans/my-borrowings", credential, nil, &raw); err != nil {
		return nil, err
	}
	wires, err := decodeList[wireLoan](c.lg, raw, "loans", "requests")
	if err != nil {
		return nil, err
	}
	out := make([]loan.Record, 0, len(wires))
	for _, w := range wires {
		out = append(out, c.toRecord(w))
	}
	return out, nil
}

func (c *Client) CreateRequest(ctx context.Context, credential string, in loan.CreateRequestInput) (*loan.Record, error) {
	return c.loanCall(ctx, http.MethodPost, "/loans/requests", credential, in)
}

func (c *Client) Details(ctx context.Context, credential, loanID string) (*loan.Record, error) {
	rec, err := c.loanCall(ctx, http.MethodGet, "/loans/"+loanID, credential, nil)
	var ae *APIError
	if errors.As(err, &ae) && ae.Status == http.StatusNotFound {
		return nil, errors.Join(loan.ErrNotFound, err)
	}
	return rec, err
}

func (c *Client) AcceptRequest(ctx context.Context, credential, loanID string) (*loan.Record, error) {
	return c.loanCall(ctx, http.MethodPost, "/loans/"+loanID+"/accept", credential, nil)
}

func (c *Client) MarkFulfilled(ctx context.Context, credential, loanID string) (*loan.Record, error) {
	return c.loanCall(ctx, http.MethodPost, "/loans/"+loanID+"/fulfill", credential, nil)
}

func (c *Client) RecordRepayment(ctx context.Context, credential, loanID string, in loan.RepaymentInput) (*loan.Record, error) {
	return c.loanCall(ctx, http.MethodPost, "/loans/"+loanID+"/repayments", credential, in)
}

func (c *Client) RateUser(ctx context.Context, credential, loanID string, in loan.RatingInput) (*loan.Record, error) {
	return c.loanCall(ctx, http.MethodPost, "/loans/"+loanID+"/rate", credential, in)
}

func (c *Client) loanCall(ctx context.Context, method, path, credential string, body any) (*loan.Record, error) {
	var w wireLoan
	if err := c.do(ctx, method, path, credential, body, &w); err != nil {
		return nil, err
	}
	rec := c.toRecord(w)
	return &rec, nil
}
