package loanview

import (
	"testing"

	"peerlend-gateway/internal/domain/loan"
	"peerlend-gateway/internal/domain/user"
	"peerlend-gateway/pkg/money"
)

func intPtr(v int) *int { return &v }

func TestNewView_RemainingClampedAtZero(t *testing.T) {
	r := &loan.Record{
		ID:             "l1",
		Status:         loan.StatusInProgress,
		TotalRepayable: 1000,
		AmountRepaid:   1500, // upstream over-reports
	}
	v := NewView(r, user.RoleLender)
	if v.Remaining != money.FormatINR(0) {
		t.Fatalf("Remaining = %q, want zero display", v.Remaining)
	}
}

func TestNewView_ContactOnlyWhenShared(t *testing.T) {
	borrower := &user.Profile{
		ID: "b1", FirstName: "Ravi", Phone: "9999", Email: "r@x.y",
		TrustScore: intPtr(80),
	}
	r := &loan.Record{Status: loan.StatusInProgress, Borrower: borrower}

	v := NewView(r, user.RoleLender)
	if v.Counterparty == nil {
		t.Fatalf("counterparty missing")
	}
	if v.Counterparty.Contact != nil {
		t.Fatalf("contact exposed without sharing")
	}

	r.IsContactShared = true
	v = NewView(r, user.RoleLender)
	if v.Counterparty.Contact == nil || v.Counterparty.Contact.Phone != "9999" {
		t.Fatalf("contact = %+v", v.Counterparty.Contact)
	}
}

func TestNewView_CounterpartyDependsOnViewer(t *testing.T) {
	r := &loan.Record{
		Status:   loan.StatusInProgress,
		Borrower: &user.Profile{ID: "b1"},
		Lender:   &user.Profile{ID: "ln1"},
	}
	if v := NewView(r, user.RoleLender); v.Counterparty.ID != "b1" {
		t.Fatalf("lender sees %q, want borrower", v.Counterparty.ID)
	}
	if v := NewView(r, user.RoleBorrower); v.Counterparty.ID != "ln1" {
		t.Fatalf("borrower sees %q, want lender", v.Counterparty.ID)
	}
}

func TestNewView_ScoresDefaultAndBand(t *testing.T) {
	// no scores reported: platform default applies, which bands medium
	r := &loan.Record{Status: loan.StatusPending, Borrower: &user.Profile{ID: "b1"}}
	v := NewView(r, user.RoleLender)
	if v.Counterparty.TrustScore != user.DefaultScore {
		t.Fatalf("trustScore = %d, want default %d", v.Counterparty.TrustScore, user.DefaultScore)
	}
	if v.Counterparty.TrustBand != BandMedium {
		t.Fatalf("trustBand = %s", v.Counterparty.TrustBand)
	}

	r.Borrower.TrustScore = intPtr(82)
	v = NewView(r, user.RoleLender)
	if v.Counterparty.TrustBand != BandHigh {
		t.Fatalf("trustBand = %s, want high", v.Counterparty.TrustBand)
	}
}

func TestNewView_RepaymentRows(t *testing.T) {
	r := &loan.Record{
		Status: loan.StatusInProgress,
		Repayments: []loan.Repayment{
			{ID: "r1", Amount: 1000, PaymentMethod: loan.MethodUPI, ConfirmedByLender: true},
			{ID: "r2", Amount: 500, PaymentMethod: loan.MethodCash, IsLate: true, DaysLate: 4},
		},
	}
	v := NewView(r, user.RoleLender)
	if len(v.Repayments) != 2 {
		t.Fatalf("rows = %d", len(v.Repayments))
	}
	if !v.Repayments[0].Confirmed || v.Repayments[0].Method != "upi" {
		t.Fatalf("row 0 = %+v", v.Repayments[0])
	}
	if !v.Repayments[1].IsLate || v.Repayments[1].DaysLate != 4 {
		t.Fatalf("row 1 = %+v", v.Repayments[1])
	}
}
