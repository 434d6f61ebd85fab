package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	mw "peerlend-gateway/internal/adapter/middleware"
	"peerlend-gateway/internal/domain/loan"
	"peerlend-gateway/internal/usecase/loanview"
)

type LoanHandler struct{ loans loan.API }

func NewLoanHandler(loans loan.API) *LoanHandler { return &LoanHandler{loans: loans} }

func (h *LoanHandler) GetLoan(c echo.Context) error {
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	st := mw.CurrentSession(c)
	rec, err := h.loans.Details(c.Request().Context(), st.Credential, loanID)
	if err != nil {
		return respondUpstreamError(c, err, "Failed to load loan details")
	}
	return c.JSON(http.StatusOK, loanview.NewView(rec, st.User.Role))
}

// act is the shared shape of every loan action: fetch, gate on the derived
// permission, dispatch exactly one upstream call, then re-fetch the record so
// the response reflects the platform's state, never an optimistic local one.
func (h *LoanHandler) act(
	c echo.Context,
	permitted func(loanview.Actions) bool,
	call func(ctx context.Context, credential, loanID string) (*loan.Record, error),
	fallback string,
) error {
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	st := mw.CurrentSession(c)
	ctx := c.Request().Context()

	rec, err := h.loans.Details(ctx, st.Credential, loanID)
	if err != nil {
		return respondUpstreamError(c, err, "Failed to load loan details")
	}
	if !permitted(loanview.PermittedActions(rec, st.User.Role)) {
		return respondUpstreamError(c, loan.ErrActionNotAllowed, fallback)
	}

	if _, err := call(ctx, st.Credential, loanID); err != nil {
		return respondUpstreamError(c, err, fallback)
	}

	refreshed, err := h.loans.Details(ctx, st.Credential, loanID)
	if err != nil {
		return respondUpstreamError(c, err, "Failed to reload loan details")
	}
	return c.JSON(http.StatusOK, loanview.NewView(refreshed, st.User.Role))
}

func (h *LoanHandler) Accept(c echo.Context) error {
	return h.act(c,
		func(a loanview.Actions) bool { return a.CanAccept },
		h.loans.AcceptRequest,
		"Failed to accept loan")
}

func (h *LoanHandler) MarkFulfilled(c echo.Context) error {
	return h.act(c,
		func(a loanview.Actions) bool { return a.CanMarkFulfilled },
		h.loans.MarkFulfilled,
		"Failed to mark as fulfilled")
}

type repaymentReq struct {
	Amount               float64 `json:"amount"               validate:"required,gt=0"`
	PaymentMethod        string  `json:"paymentMethod"        validate:"required,oneof=upi bank_transfer cash cheque other"`
	TransactionReference string  `json:"transactionReference"`
	Remarks              string  `json:"remarks"`
}

func (h *LoanHandler) RecordRepayment(c echo.Context) error {
	var req repaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	return h.act(c,
		func(a loanview.Actions) bool { return a.CanRecordRepayment },
		func(ctx context.Context, credential, loanID string) (*loan.Record, error) {
			return h.loans.RecordRepayment(ctx, credential, loanID, loan.RepaymentInput{
				Amount:               req.Amount,
				PaymentMethod:        loan.PaymentMethod(req.PaymentMethod),
				TransactionReference: req.TransactionReference,
				Remarks:              req.Remarks,
			})
		},
		"Failed to record repayment")
}

type ratingReq struct {
	Rating int    `json:"rating" validate:"required,gte=1,lte=5"`
	Review string `json:"review"`
}

func (h *LoanHandler) SubmitRating(c echo.Context) error {
	var req ratingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	return h.act(c,
		func(a loanview.Actions) bool { return a.CanRate },
		func(ctx context.Context, credential, loanID string) (*loan.Record, error) {
			return h.loans.RateUser(ctx, credential, loanID, loan.RatingInput{
				Rating: req.Rating,
				Review: req.Review,
			})
		},
		"Failed to submit rating")
}
