package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	mw "peerlend-gateway/internal/adapter/middleware"
	"peerlend-gateway/internal/domain/loan"
	dashboarduc "peerlend-gateway/internal/usecase/dashboard"
)

type DashboardHandler struct {
	dashboards *dashboarduc.Usecase
	loans      loan.API
}

func NewDashboardHandler(dashboards *dashboarduc.Usecase, loans loan.API) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards, loans: loans}
}

func (h *DashboardHandler) Borrower(c echo.Context) error {
	st := mw.CurrentSession(c)
	v, err := h.dashboards.Borrower(c.Request().Context(), st.Credential, st.User)
	if err != nil {
		return respondUpstreamError(c, err, "Failed to load dashboard data")
	}
	return c.JSON(http.StatusOK, v)
}

type createLoanReq struct {
	Amount      float64 `json:"amount"   validate:"required,gt=0"`
	Duration    int     `json:"duration" validate:"omitempty,gte=1"`
	Purpose     string  `json:"purpose"  validate:"required,notblank"`
	Description string  `json:"description"`
}

const defaultLoanDurationDays = 30

func (h *DashboardHandler) CreateRequest(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	if req.Duration == 0 {
		req.Duration = defaultLoanDurationDays
	}

	st := mw.CurrentSession(c)
	rec, err := h.loans.CreateRequest(c.Request().Context(), st.Credential, loan.CreateRequestInput{
		Amount:       req.Amount,
		DurationDays: req.Duration,
		Purpose:      req.Purpose,
		Description:  req.Description,
	})
	if err != nil {
		return respondUpstreamError(c, err, "Failed to submit request")
	}
	return c.JSON(http.StatusCreated, rec)
}
