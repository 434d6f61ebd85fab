package loanview

import (
	"time"

	"peerlend-gateway/internal/domain/loan"
	"peerlend-gateway/internal/domain/user"
	"peerlend-gateway/pkg/money"
)

// ContactView is exposed only when the loan has contact sharing enabled.
type ContactView struct {
	Phone    string `json:"phone,omitempty"`
	Whatsapp string `json:"whatsapp,omitempty"`
	Email    string `json:"email,omitempty"`
}

// PartyView is the counterparty card: scores with their bands, rating
// summary, verification flags and the gated contact block.
type PartyView struct {
	ID             string       `json:"id"`
	FirstName      string       `json:"firstName"`
	LastName       string       `json:"lastName"`
	City           string       `json:"city,omitempty"`
	State          string       `json:"state,omitempty"`
	ProfilePhoto   string       `json:"profilePhoto,omitempty"`
	TrustScore     int          `json:"trustScore"`
	TrustBand      Band         `json:"trustBand"`
	RepaymentScore int          `json:"repaymentScore"`
	RepaymentBand  Band         `json:"repaymentBand"`
	AverageRating  float64      `json:"averageRating"`
	TotalRatings   int          `json:"totalRatings"`
	IsIDVerified   bool         `json:"isIdVerified"`
	IsFaceVerified bool         `json:"isFaceVerified"`
	Contact        *ContactView `json:"contact,omitempty"`
}

type RepaymentView struct {
	ID          string     `json:"id"`
	Amount      string     `json:"amount"`
	PaymentDate *time.Time `json:"paymentDate,omitempty"`
	Method      string     `json:"method"`
	Reference   string     `json:"reference,omitempty"`
	Confirmed   bool       `json:"confirmed"`
	IsLate      bool       `json:"isLate"`
	DaysLate    int        `json:"daysLate,omitempty"`
}

// View is the full loan-detail screen state for one viewer.
type View struct {
	ID             string          `json:"id"`
	Badge          Badge           `json:"badge"`
	Status         loan.Status     `json:"status"`
	Amount         string          `json:"amount"`
	DurationDays   int             `json:"duration"`
	InterestRate   float64         `json:"interestRate"`
	TotalRepayable string          `json:"totalRepayable"`
	AmountRepaid   string          `json:"amountRepaid"`
	Remaining      string          `json:"remaining"`
	DueDate        *time.Time      `json:"dueDate,omitempty"`
	Purpose        string          `json:"purpose"`
	Description    string          `json:"description,omitempty"`
	Actions        Actions         `json:"actions"`
	Counterparty   *PartyView      `json:"counterparty,omitempty"`
	Repayments     []RepaymentView `json:"repayments"`
}

func newPartyView(p *user.Profile, contactShared bool) *PartyView {
	if p == nil {
		return nil
	}
	pv := &PartyView{
		ID:             p.ID,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		City:           p.City,
		State:          p.State,
		ProfilePhoto:   p.ProfilePhoto,
		TrustScore:     p.TrustScoreValue(),
		TrustBand:      ScoreBand(p.TrustScoreValue()),
		RepaymentScore: p.RepaymentScoreValue(),
		RepaymentBand:  ScoreBand(p.RepaymentScoreValue()),
		AverageRating:  p.AverageRatingValue(),
		TotalRatings:   p.TotalRatings,
		IsIDVerified:   p.IsIDVerified,
		IsFaceVerified: p.IsFaceVerified,
	}
	if contactShared {
		pv.Contact = &ContactView{Phone: p.Phone, Whatsapp: p.Whatsapp, Email: p.Email}
	}
	return pv
}

// NewView assembles the detail screen for the given viewer role. Contact
// details of the counterparty appear only when the loan shares them.
func NewView(r *loan.Record, viewer user.Role) View {
	v := View{
		ID:             r.ID,
		Badge:          StatusBadge(r.Status),
		Status:         r.Status,
		Amount:         money.FormatINR(r.Amount),
		DurationDays:   r.DurationDays,
		InterestRate:   r.InterestRate,
		TotalRepayable: money.FormatINR(r.TotalRepayable),
		AmountRepaid:   money.FormatINR(r.AmountRepaid),
		Remaining:      money.FormatINR(r.Remaining()),
		DueDate:        r.DueDate,
		Purpose:        r.Purpose,
		Description:    r.Description,
		Actions:        PermittedActions(r, viewer),
		Counterparty:   newPartyView(r.Counterparty(viewer), r.IsContactShared),
	}
	v.Repayments = make([]RepaymentView, 0, len(r.Repayments))
	for _, rp := range r.Repayments {
		rv := RepaymentView{
			ID:        rp.ID,
			Amount:    money.FormatINR(rp.Amount),
			Method:    string(rp.PaymentMethod),
			Reference: rp.TransactionReference,
			Confirmed: rp.ConfirmedByLender,
			IsLate:    rp.IsLate,
			DaysLate:  rp.DaysLate,
		}
		if !rp.PaymentDate.IsZero() {
			d := rp.PaymentDate
			rv.PaymentDate = &d
		}
		v.Repayments = append(v.Repayments, rv)
	}
	return v
}
